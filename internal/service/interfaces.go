package service

import (
	"context"
	"time"

	"github.com/alexanderramin/cptrack/internal/domain"
)

// CSESPatch holds optional edits to a CSES problem; nil fields are unchanged.
type CSESPatch struct {
	Name     *string
	Category *string
	Status   *domain.ProblemStatus
	Notes    *string
	Approach *string
}

type CSESService interface {
	List(filter domain.CSESFilter) []domain.CSESProblem
	Add(ctx context.Context, p domain.CSESProblem) (domain.CSESProblem, error)
	Toggle(ctx context.Context, id int64) (domain.CSESProblem, error)
	Edit(ctx context.Context, id int64, patch CSESPatch) (domain.CSESProblem, error)
	Delete(ctx context.Context, id int64) error

	Progress(ctx context.Context) (domain.CSESProgress, error)
	Increment(ctx context.Context) (domain.CSESProgress, error)
	Decrement(ctx context.Context) (domain.CSESProgress, error)
	Reset(ctx context.Context) (domain.CSESProgress, error)
}

// ProblemPatch holds optional edits to a Codeforces problem.
type ProblemPatch struct {
	Contest     *string
	Division    *domain.Division
	ProblemID   *string
	ProblemName *string
	Notes       *string
	Tricks      *string
}

type CodeforcesService interface {
	List(filter domain.ProblemFilter) []domain.Problem
	Add(ctx context.Context, p domain.Problem) (domain.Problem, error)
	Edit(ctx context.Context, id int64, patch ProblemPatch) (domain.Problem, error)
	Delete(ctx context.Context, id int64) error
	SetHandle(ctx context.Context, handle string) error
}

// SyncResult reports a completed sync.
type SyncResult struct {
	Handle   string
	Fetched  int
	Accepted int
	Added    int
	SyncedAt time.Time
}

type SyncService interface {
	// Sync imports accepted submissions for handle, or for the remembered
	// handle when handle is blank.
	Sync(ctx context.Context, handle string) (SyncResult, error)
}

type CourseService interface {
	List() []domain.CourseStat
	Set(ctx context.Context, key string, completed int) (domain.CourseProgress, error)
}

type RoutineService interface {
	List() []domain.RoutineDay
	Today(ctx context.Context) (domain.RoutineDay, error)
	Add(ctx context.Context, date string, t domain.DayType) (domain.RoutineDay, error)
	Duplicate(ctx context.Context, dayID int64) (domain.RoutineDay, error)
	ChangeType(ctx context.Context, dayID int64, t domain.DayType) (domain.RoutineDay, bool, error)
	ToggleTask(ctx context.Context, dayID, taskID int64) (bool, error)
	Remove(ctx context.Context, dayID int64) error
}

type TaskService interface {
	List(ctx context.Context) ([]domain.TaskItem, error)
	Add(ctx context.Context, text string) ([]domain.TaskItem, error)
	Toggle(ctx context.Context, index int) ([]domain.TaskItem, error)
	Remove(ctx context.Context, index int) ([]domain.TaskItem, error)
}

type ThemeService interface {
	Current() domain.Theme
	Set(ctx context.Context, t domain.Theme) error
	Toggle(ctx context.Context) (domain.Theme, error)
}

type StatusService interface {
	Dashboard(ctx context.Context) (domain.DashboardStats, error)
}
