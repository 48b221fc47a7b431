package testutil

import (
	"fmt"
	"sync/atomic"
	"time"

	"github.com/alexanderramin/cptrack/internal/domain"
)

var testIDCounter atomic.Int64

// FixedNow is the reference instant fixtures and fake clocks use.
// 2025-06-15 is a Sunday.
var FixedNow = time.Date(2025, 6, 15, 10, 0, 0, 0, time.UTC)

// FixedClock returns a clock that always reports FixedNow.
func FixedClock() func() time.Time {
	return func() time.Time { return FixedNow }
}

func nextTestID() int64 {
	return 1_000 + testIDCounter.Add(1)
}

// Problem options
type ProblemOption func(*domain.Problem)

func WithDivision(d domain.Division) ProblemOption {
	return func(p *domain.Problem) {
		p.Division = d
	}
}

func WithNotes(notes string) ProblemOption {
	return func(p *domain.Problem) {
		p.Notes = notes
	}
}

func WithSource(s domain.ProblemSource) ProblemOption {
	return func(p *domain.Problem) {
		p.Source = s
	}
}

func NewTestProblem(contestID int, index string, opts ...ProblemOption) domain.Problem {
	p := domain.Problem{
		ID:          nextTestID(),
		Contest:     domain.ContestLabel(contestID),
		Division:    domain.ClassifyDivision(contestID),
		ProblemID:   index,
		ProblemName: fmt.Sprintf("Problem %d%s", contestID, index),
		DateAdded:   FixedNow,
		Source:      domain.SourceManual,
	}
	for _, o := range opts {
		o(&p)
	}
	return p
}

// CSES problem options
type CSESOption func(*domain.CSESProblem)

func WithStatus(s domain.ProblemStatus) CSESOption {
	return func(p *domain.CSESProblem) {
		p.Status = s
	}
}

func NewTestCSESProblem(name, category string, opts ...CSESOption) domain.CSESProblem {
	p := domain.CSESProblem{
		ID:        nextTestID(),
		Name:      name,
		Category:  category,
		Status:    domain.StatusUnsolved,
		DateAdded: FixedNow,
	}
	for _, o := range opts {
		o(&p)
	}
	return p
}

// Accepted returns an accepted submission for contestID/index at t.
func Accepted(contestID int, index string, t time.Time) domain.Submission {
	return domain.Submission{
		ContestID: contestID,
		Index:     index,
		Name:      fmt.Sprintf("Problem %d%s", contestID, index),
		Verdict:   domain.VerdictAccepted,
		CreatedAt: t,
	}
}
