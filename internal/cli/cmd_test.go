package cli

import (
	"bytes"
	"context"
	"strconv"
	"sync"
	"testing"

	"github.com/alexanderramin/cptrack/internal/access"
	"github.com/alexanderramin/cptrack/internal/domain"
	"github.com/alexanderramin/cptrack/internal/repository"
	"github.com/alexanderramin/cptrack/internal/service"
	"github.com/alexanderramin/cptrack/internal/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type stubFetcher struct {
	mu   sync.Mutex
	subs []domain.Submission
}

func (f *stubFetcher) UserStatus(_ context.Context, _ string, _, _ int) ([]domain.Submission, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	return append([]domain.Submission(nil), f.subs...), nil
}

type testEnv struct {
	app     *App
	store   *testutil.FailingStore
	fetcher *stubFetcher
}

// testApp wires a full App backed by an in-memory store for CLI tests.
func testApp(t *testing.T) *testEnv {
	t.Helper()
	env := &testEnv{
		store:   &testutil.FailingStore{Store: testutil.NewTestStore(t)},
		fetcher: &stubFetcher{},
	}
	ctx := context.Background()

	progress := repository.NewDocCSESProgressRepo(env.store, domain.DefaultCSESTotal)
	session := service.NewSession(repository.NewDocStateRepo(env.store), domain.DefaultCourses(),
		service.WithClock(testutil.FixedClock()))
	session.Load(ctx)

	env.app = &App{
		CSES:       service.NewCSESService(session, progress),
		Codeforces: service.NewCodeforcesService(session),
		Sync:       service.NewSyncService(session, env.fetcher, 0),
		Courses:    service.NewCourseService(session),
		Routine:    service.NewRoutineService(session),
		Tasks:      service.NewTaskService(session, repository.NewDocTaskListRepo(env.store)),
		Theme:      service.NewThemeService(session),
		Status:     service.NewStatusService(session, progress),
		Health:     session,
	}
	_, err := env.app.CSES.Progress(ctx)
	require.NoError(t, err)
	return env
}

func formatID(id int64) string {
	return strconv.FormatInt(id, 10)
}

// executeCmd runs a cobra command and captures stdout/stderr.
func executeCmd(t *testing.T, app *App, args ...string) (string, error) {
	t.Helper()
	root := NewRootCmd(app)
	buf := new(bytes.Buffer)
	root.SetOut(buf)
	root.SetErr(buf)
	root.SetArgs(args)
	err := ExecuteContext(context.Background(), root, app)
	return buf.String(), err
}

func TestRootCmd_NoArgs_ShowsHelp(t *testing.T) {
	env := testApp(t)

	out, err := executeCmd(t, env.app)
	require.NoError(t, err)
	assert.Contains(t, out, "cptrack")
	assert.Contains(t, out, "routine")
}

func TestStatusCmd(t *testing.T) {
	env := testApp(t)

	out, err := executeCmd(t, env.app, "status")
	require.NoError(t, err)
	assert.Contains(t, out, "CSES")
	assert.Contains(t, out, "0/400")
	assert.Contains(t, out, "GFG DSA")
}

func TestCSESCmd_AddListToggle(t *testing.T) {
	env := testApp(t)

	out, err := executeCmd(t, env.app, "cses", "add", "--name", "Weird Algorithm", "--category", "Introductory", "--solved")
	require.NoError(t, err)
	assert.Contains(t, out, "Added Weird Algorithm")

	id := env.app.CSES.List(domain.CSESFilter{})[0].ID

	out, err = executeCmd(t, env.app, "cses", "list")
	require.NoError(t, err)
	assert.Contains(t, out, "Weird Algorithm")
	assert.Contains(t, out, "1 of 1 solved")

	out, err = executeCmd(t, env.app, "cses", "progress")
	require.NoError(t, err)
	assert.Contains(t, out, "1/400")

	out, err = executeCmd(t, env.app, "cses", "toggle", formatID(id))
	require.NoError(t, err)
	assert.Contains(t, out, "unsolved")

	_, err = executeCmd(t, env.app, "cses", "toggle", "abc")
	assert.ErrorContains(t, err, "invalid id")
}

func TestCSESCmd_CounterAndReset(t *testing.T) {
	env := testApp(t)

	out, err := executeCmd(t, env.app, "cses", "inc")
	require.NoError(t, err)
	assert.Contains(t, out, "1/400")

	_, err = executeCmd(t, env.app, "cses", "reset")
	require.Error(t, err, "non-interactive reset needs --yes")
	assert.Contains(t, err.Error(), "--yes")

	out, err = executeCmd(t, env.app, "cses", "reset", "--yes")
	require.NoError(t, err)
	assert.Contains(t, out, "0/400")
}

func TestCSESCmd_ResetDeclinedOnPrompt(t *testing.T) {
	env := testApp(t)
	env.app.IsInteractive = func() bool { return true }
	env.app.Confirm = func(string) (bool, error) { return false, nil }
	_, err := executeCmd(t, env.app, "cses", "inc")
	require.NoError(t, err)

	out, err := executeCmd(t, env.app, "cses", "reset")
	require.NoError(t, err)
	assert.Contains(t, out, "Cancelled")

	p, err := env.app.CSES.Progress(context.Background())
	require.NoError(t, err)
	assert.Equal(t, 1, p.Solved)
}

func TestCFCmd_AddClassifiesAndLists(t *testing.T) {
	env := testApp(t)

	out, err := executeCmd(t, env.app, "cf", "add", "--contest", "Contest 1350", "--index", "B", "--name", "Orac and Models")
	require.NoError(t, err)
	assert.Contains(t, out, "Educational")

	out, err = executeCmd(t, env.app, "cf", "list", "--division", "Educational")
	require.NoError(t, err)
	assert.Contains(t, out, "Orac and Models")

	out, err = executeCmd(t, env.app, "cf", "list", "--division", "Div. 1")
	require.NoError(t, err)
	assert.Contains(t, out, "No Codeforces problems")
}

func TestCFCmd_AddWithoutFlagsNeedsTerminal(t *testing.T) {
	env := testApp(t)

	_, err := executeCmd(t, env.app, "cf", "add")
	assert.ErrorContains(t, err, "non-interactive")
}

func TestCFCmd_SyncUsesRememberedHandle(t *testing.T) {
	env := testApp(t)
	env.fetcher.subs = []domain.Submission{testutil.Accepted(1350, "A", testutil.FixedNow)}

	_, err := executeCmd(t, env.app, "cf", "sync")
	assert.ErrorIs(t, err, service.ErrEmptyHandle)

	_, err = executeCmd(t, env.app, "cf", "handle", "x")
	require.NoError(t, err)

	out, err := executeCmd(t, env.app, "cf", "sync")
	require.NoError(t, err)
	assert.Contains(t, out, "1 added")

	out, err = executeCmd(t, env.app, "cf", "sync", "x")
	require.NoError(t, err)
	assert.Contains(t, out, "nothing new")
}

func TestCourseCmd(t *testing.T) {
	env := testApp(t)

	out, err := executeCmd(t, env.app, "course", "set", "gfg", "99")
	require.NoError(t, err)
	assert.Contains(t, out, "32/32")

	_, err = executeCmd(t, env.app, "course", "set", "gfg", "many")
	assert.ErrorContains(t, err, "invalid completed count")

	out, err = executeCmd(t, env.app, "course", "list")
	require.NoError(t, err)
	assert.Contains(t, out, "codingBlocks")
}

func TestRoutineCmd_TodayToggleRemove(t *testing.T) {
	env := testApp(t)

	out, err := executeCmd(t, env.app, "routine", "today")
	require.NoError(t, err)
	assert.Contains(t, out, "2025-06-15")
	assert.Contains(t, out, "grind")

	day := env.app.Routine.List()[0]
	out, err = executeCmd(t, env.app, "routine", "toggle", formatID(day.ID), formatID(day.Tasks[0].ID))
	require.NoError(t, err)
	assert.Contains(t, out, "[x]")

	out, err = executeCmd(t, env.app, "routine", "type", formatID(day.ID), "grind")
	require.NoError(t, err)
	assert.Contains(t, out, "already a grind day")

	out, err = executeCmd(t, env.app, "routine", "duplicate", formatID(day.ID))
	require.NoError(t, err)
	assert.Contains(t, out, "2025-06-16")

	_, err = executeCmd(t, env.app, "routine", "remove", formatID(day.ID))
	assert.ErrorContains(t, err, "--yes")

	_, err = executeCmd(t, env.app, "routine", "remove", "-y", formatID(day.ID))
	require.NoError(t, err)
	assert.Len(t, env.app.Routine.List(), 1)

	_, err = executeCmd(t, env.app, "routine", "add", "not-a-date")
	assert.ErrorIs(t, err, service.ErrInvalidInput)
}

func TestTaskCmd(t *testing.T) {
	env := testApp(t)

	out, err := executeCmd(t, env.app, "task", "add", "upsolve", "round", "900")
	require.NoError(t, err)
	assert.Contains(t, out, "upsolve round 900")

	out, err = executeCmd(t, env.app, "task", "toggle", "1")
	require.NoError(t, err)
	assert.Contains(t, out, "[x]")

	_, err = executeCmd(t, env.app, "task", "toggle", "0")
	assert.ErrorContains(t, err, "invalid position")

	out, err = executeCmd(t, env.app, "task", "remove", "1")
	require.NoError(t, err)
	assert.Contains(t, out, "No tasks")
}

func TestThemeCmd(t *testing.T) {
	env := testApp(t)

	out, err := executeCmd(t, env.app, "theme")
	require.NoError(t, err)
	assert.Contains(t, out, "light")

	out, err = executeCmd(t, env.app, "theme", "toggle")
	require.NoError(t, err)
	assert.Contains(t, out, "dark")
	assert.Equal(t, domain.ThemeDark, env.app.Theme.Current())

	_, err = executeCmd(t, env.app, "theme", "sepia")
	assert.ErrorIs(t, err, service.ErrInvalidInput)
}

func TestEditGuard(t *testing.T) {
	env := testApp(t)
	guard, err := access.NewGuard(access.HashSHA256("hunter2"))
	require.NoError(t, err)
	env.app.Guard = guard

	_, err = executeCmd(t, env.app, "task", "add", "x")
	assert.ErrorIs(t, err, access.ErrPasswordRequired)

	_, err = executeCmd(t, env.app, "task", "add", "x", "--password", "wrong")
	assert.ErrorIs(t, err, access.ErrEditDenied)

	_, err = executeCmd(t, env.app, "task", "add", "x", "--password", "hunter2")
	require.NoError(t, err)

	_, err = executeCmd(t, env.app, "task", "list")
	require.NoError(t, err, "reads are not guarded")

	env.app.Password = "hunter2"
	_, err = executeCmd(t, env.app, "theme", "dark")
	require.NoError(t, err, "default password comes from the app")
}

func TestHashPasswordCmd(t *testing.T) {
	env := testApp(t)

	out, err := executeCmd(t, env.app, "hash-password", "hunter2")
	require.NoError(t, err)
	assert.Equal(t, access.HashSHA256("hunter2")+"\n", out)
}

func TestStoreErrorWarning(t *testing.T) {
	env := testApp(t)
	env.store.WriteErr = assert.AnError

	out, err := executeCmd(t, env.app, "theme", "dark")
	require.NoError(t, err, "store failures never fail the command")
	assert.Contains(t, out, "warning: changes may not be saved")
}

func TestStoreErrorWarning_AfterFailedCommand(t *testing.T) {
	env := testApp(t)
	env.store.ReadErr = assert.AnError

	out, err := executeCmd(t, env.app, "cses", "inc")
	require.ErrorIs(t, err, repository.ErrStoreRead)
	assert.Contains(t, out, "warning: changes may not be saved")
}
