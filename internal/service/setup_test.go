package service

import (
	"bytes"
	"context"
	"sync"
	"testing"

	"github.com/alexanderramin/cptrack/internal/domain"
	"github.com/alexanderramin/cptrack/internal/repository"
	"github.com/alexanderramin/cptrack/internal/testutil"
)

type recordingObserver struct {
	mu     sync.Mutex
	events []UseCaseEvent
}

func (o *recordingObserver) ObserveUseCase(_ context.Context, e UseCaseEvent) {
	o.mu.Lock()
	defer o.mu.Unlock()
	o.events = append(o.events, e)
}

func (o *recordingObserver) named(name string) []UseCaseEvent {
	o.mu.Lock()
	defer o.mu.Unlock()
	var out []UseCaseEvent
	for _, e := range o.events {
		if e.Name == name {
			out = append(out, e)
		}
	}
	return out
}

type fakeFetcher struct {
	mu      sync.Mutex
	subs    []domain.Submission
	err     error
	handles []string
}

func (f *fakeFetcher) UserStatus(_ context.Context, handle string, _, _ int) ([]domain.Submission, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.handles = append(f.handles, handle)
	if f.err != nil {
		return nil, f.err
	}
	return append([]domain.Submission(nil), f.subs...), nil
}

func (f *fakeFetcher) calls() int {
	f.mu.Lock()
	defer f.mu.Unlock()
	return len(f.handles)
}

type harness struct {
	store    *testutil.FailingStore
	observer *recordingObserver
	fetcher  *fakeFetcher
	progress *repository.DocCSESProgressRepo
	session  *Session

	cses    CSESService
	cf      CodeforcesService
	sync    SyncService
	courses CourseService
	routine RoutineService
	tasks   TaskService
	theme   ThemeService
	status  StatusService
}

// newHarness wires every service over an in-memory store and loads the
// session the way the app does at startup.
func newHarness(t *testing.T) *harness {
	t.Helper()
	return newHarnessWithTotal(t, domain.DefaultCSESTotal)
}

// newHarnessWithTotal is newHarness with a custom CSES problem-set size.
func newHarnessWithTotal(t *testing.T, csesTotal int) *harness {
	t.Helper()
	h := &harness{
		store:    &testutil.FailingStore{Store: testutil.NewTestStore(t)},
		observer: &recordingObserver{},
		fetcher:  &fakeFetcher{},
	}
	h.progress = repository.NewDocCSESProgressRepo(h.store, csesTotal)
	h.session = NewSession(
		repository.NewDocStateRepo(h.store),
		domain.DefaultCourses(),
		WithClock(testutil.FixedClock()),
		WithObserver(h.observer),
	)
	h.session.Load(context.Background())

	h.cses = NewCSESService(h.session, h.progress)
	h.cf = NewCodeforcesService(h.session)
	h.sync = NewSyncService(h.session, h.fetcher, 0, h.observer)
	h.courses = NewCourseService(h.session)
	h.routine = NewRoutineService(h.session)
	h.tasks = NewTaskService(h.session, repository.NewDocTaskListRepo(h.store))
	h.theme = NewThemeService(h.session)
	h.status = NewStatusService(h.session, h.progress)

	if _, err := h.cses.Progress(context.Background()); err != nil {
		t.Fatalf("bootstrapping cses progress: %v", err)
	}
	return h
}

// reload opens a second session on the same store.
func (h *harness) reload(t *testing.T) *Session {
	t.Helper()
	s := NewSession(repository.NewDocStateRepo(h.store), domain.DefaultCourses(), WithClock(testutil.FixedClock()))
	s.Load(context.Background())
	if err := s.LastStoreError(); err != nil {
		t.Fatalf("reloading session: %v", err)
	}
	return s
}

type lockedBuffer struct {
	mu  sync.Mutex
	buf bytes.Buffer
}

func (b *lockedBuffer) Write(p []byte) (int, error) {
	b.mu.Lock()
	defer b.mu.Unlock()
	return b.buf.Write(p)
}

func (b *lockedBuffer) String() string {
	b.mu.Lock()
	defer b.mu.Unlock()
	return b.buf.String()
}
