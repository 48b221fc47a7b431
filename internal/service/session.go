package service

import (
	"context"
	"sync"
	"time"

	"github.com/alexanderramin/cptrack/internal/domain"
	"github.com/alexanderramin/cptrack/internal/repository"
)

// Session owns the in-memory AppState for one process. The store is read
// once at Load; afterwards every mutation writes the whole aggregate back.
// All methods are safe for concurrent use.
type Session struct {
	mu       sync.Mutex
	state    domain.AppState
	states   repository.StateRepo
	courses  []domain.CourseSpec
	observer UseCaseObserver
	now      func() time.Time

	lastID       int64
	lastStoreErr error
}

type SessionOption func(*Session)

// WithClock replaces time.Now, for tests.
func WithClock(now func() time.Time) SessionOption {
	return func(s *Session) { s.now = now }
}

// WithObserver sets the use-case observer.
func WithObserver(o UseCaseObserver) SessionOption {
	return func(s *Session) {
		if o != nil {
			s.observer = o
		}
	}
}

func NewSession(states repository.StateRepo, courses []domain.CourseSpec, opts ...SessionOption) *Session {
	s := &Session{
		states:   states,
		courses:  courses,
		observer: NoopUseCaseObserver{},
		now:      time.Now,
	}
	for _, o := range opts {
		o(s)
	}
	s.state = domain.DefaultState(courses)
	return s
}

// Load hydrates the session from the store. A missing document is created
// from defaults. Read failures keep the defaults and are recorded, never
// returned.
func (s *Session) Load(ctx context.Context) {
	s.mu.Lock()
	defer s.mu.Unlock()

	startedAt := s.now()
	defaults := domain.DefaultState(s.courses)
	st, found, err := s.states.Load(ctx, defaults)
	s.emit(ctx, "load-state", startedAt, map[string]any{"found": found}, err)
	if err != nil {
		s.lastStoreErr = err
		s.state = defaults
		return
	}
	s.state = st
	if !found {
		s.saveLocked(ctx)
	}
}

// Save writes the current aggregate. Failures are recorded, never returned.
func (s *Session) Save(ctx context.Context) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.saveLocked(ctx)
}

func (s *Session) saveLocked(ctx context.Context) {
	startedAt := s.now()
	err := s.states.Save(ctx, s.state)
	s.emit(ctx, "save-state", startedAt, nil, err)
	if err != nil {
		s.lastStoreErr = err
	}
}

// Snapshot returns a deep copy of the current state.
func (s *Session) Snapshot() domain.AppState {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.state.Clone()
}

// Courses returns the configured course catalog.
func (s *Session) Courses() []domain.CourseSpec {
	return s.courses
}

// Now returns the session clock's current time.
func (s *Session) Now() time.Time {
	return s.now()
}

// LastStoreError returns the most recent recorded store failure, if any.
func (s *Session) LastStoreError() error {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.lastStoreErr
}

// RecordStoreError notes a store failure that happened outside the session's
// own document and reports it to the observer under name.
func (s *Session) RecordStoreError(ctx context.Context, name string, err error) {
	if err == nil {
		return
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	s.lastStoreErr = err
	s.emit(ctx, name, s.now(), nil, err)
}

// Mutation is the view of the session a mutate callback works on.
type Mutation struct {
	State  *domain.AppState
	Now    time.Time
	Fields map[string]any
	nextID func() int64
}

// NextID returns a session-unique millisecond id.
func (m *Mutation) NextID() int64 {
	return m.nextID()
}

// Mutate runs fn on a copy of the state. When fn succeeds the copy replaces
// the state and is saved once; when it fails the state is left untouched.
// Only fn's error is returned; a failed save is recorded.
func (s *Session) Mutate(ctx context.Context, name string, fn func(m *Mutation) error) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	startedAt := s.now()
	next := s.state.Clone()
	m := &Mutation{
		State:  &next,
		Now:    startedAt,
		Fields: map[string]any{},
		nextID: s.nextIDLocked,
	}
	err := fn(m)
	s.emit(ctx, name, startedAt, m.Fields, err)
	if err != nil {
		return err
	}
	s.state = next
	s.saveLocked(ctx)
	return nil
}

// nextIDLocked returns max(now in ms, last+1).
func (s *Session) nextIDLocked() int64 {
	id := s.now().UnixMilli()
	if id <= s.lastID {
		id = s.lastID + 1
	}
	s.lastID = id
	return id
}

func (s *Session) emit(ctx context.Context, name string, startedAt time.Time, fields map[string]any, err error) {
	s.observer.ObserveUseCase(ctx, UseCaseEvent{
		Name:      name,
		StartedAt: startedAt,
		Duration:  s.now().Sub(startedAt),
		Success:   err == nil,
		Err:       err,
		Fields:    fields,
	})
}
