package repository

import (
	"context"

	"github.com/alexanderramin/cptrack/internal/docstore"
	"github.com/alexanderramin/cptrack/internal/domain"
)

// Document addresses used by the tracker.
var (
	StateRef        = docstore.Ref{Collection: "state", ID: "userState"}
	CSESProgressRef = docstore.Ref{Collection: "progress", ID: "cses"}
	TaskListRef     = docstore.Ref{Collection: "data", ID: "tasks"}
)

type StateRepo interface {
	// Load shallow-merges the stored aggregate over defaults. found is false
	// when no document exists, in which case defaults are returned as is.
	Load(ctx context.Context, defaults domain.AppState) (st domain.AppState, found bool, err error)
	// Save overwrites the stored aggregate.
	Save(ctx context.Context, st domain.AppState) error
}

type CSESProgressRepo interface {
	// LoadOrInit returns the progress document, creating or repairing it
	// when it is absent or not yet initialized.
	LoadOrInit(ctx context.Context) (domain.CSESProgress, error)
	// SetSolved updates the solved counter of an existing document.
	SetSolved(ctx context.Context, solved int) error
}

type TaskListRepo interface {
	// Load returns the task list, creating an empty document when absent.
	Load(ctx context.Context) ([]domain.TaskItem, error)
	Save(ctx context.Context, items []domain.TaskItem) error
}
