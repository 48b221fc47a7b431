package cli

import (
	"context"
	"testing"

	"github.com/alexanderramin/cptrack/internal/access"
	"github.com/alexanderramin/cptrack/internal/domain"
	"github.com/alexanderramin/cptrack/internal/teatest"
	"github.com/alexanderramin/cptrack/internal/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestUI(t *testing.T, env *testEnv, password string) *teatest.Driver {
	t.Helper()
	m := newUIModel(context.Background(), env.app, password, testutil.FixedClock())
	d := teatest.New(t, m, teatest.WithSize(120, 40))
	d.DrainInit()
	return d
}

func uiOf(d *teatest.Driver) uiModel {
	return d.Model.(uiModel)
}

func TestUI_LoadsDashboard(t *testing.T) {
	env := testApp(t)
	d := newTestUI(t, env, "")

	require.True(t, uiOf(d).loaded)
	view := d.View()
	assert.Contains(t, view, "1 Dashboard")
	assert.Contains(t, view, "CSES")
	assert.Contains(t, view, "0/400")
}

func TestUI_TabSwitching(t *testing.T) {
	env := testApp(t)
	d := newTestUI(t, env, "")

	d.PressTab()
	assert.Equal(t, tabCSES, uiOf(d).active)

	d.PressKey('6')
	assert.Equal(t, tabTasks, uiOf(d).active)

	d.PressTab()
	assert.Equal(t, tabDashboard, uiOf(d).active, "tab wraps around")

	d.PressKey('h')
	assert.Equal(t, tabTasks, uiOf(d).active)
}

func TestUI_ToggleCSESProblem(t *testing.T) {
	env := testApp(t)
	_, err := env.app.CSES.Add(context.Background(), testutil.NewTestCSESProblem("Weird Algorithm", "Introductory"))
	require.NoError(t, err)
	d := newTestUI(t, env, "")

	d.PressKey('2')
	assert.Contains(t, d.View(), "Weird Algorithm")

	d.PressSpace()
	problems := env.app.CSES.List(domain.CSESFilter{})
	require.Len(t, problems, 1)
	assert.Equal(t, domain.StatusSolved, problems[0].Status)
	assert.Equal(t, domain.StatusSolved, uiOf(d).data.cses[0].Status, "view reloads after the action")
}

func TestUI_CounterKeys(t *testing.T) {
	env := testApp(t)
	d := newTestUI(t, env, "")

	d.Type("++-+")
	assert.Equal(t, 2, uiOf(d).data.stats.CSES.Solved)
	assert.Contains(t, uiOf(d).status, "CSES 2/400")
}

func TestUI_SyncUsesRememberedHandle(t *testing.T) {
	env := testApp(t)
	require.NoError(t, env.app.Codeforces.SetHandle(context.Background(), "x"))
	env.fetcher.subs = []domain.Submission{
		testutil.Accepted(1350, "A", testutil.FixedNow),
		testutil.Accepted(1350, "A", testutil.FixedNow),
	}
	d := newTestUI(t, env, "")

	d.PressKey('s')
	m := uiOf(d)
	assert.False(t, m.syncing)
	require.NoError(t, m.err)
	assert.Contains(t, m.status, "Synced x: 1 new of 1 accepted")
	require.Len(t, m.data.problems, 1)
	assert.Equal(t, domain.SourceAPI, m.data.problems[0].Source)
}

func TestUI_SyncWithoutHandleShowsError(t *testing.T) {
	env := testApp(t)
	d := newTestUI(t, env, "")

	d.PressKey('s')
	assert.Error(t, uiOf(d).err)
	assert.Contains(t, d.View(), "Error:")
}

func TestUI_ThemeToggle(t *testing.T) {
	env := testApp(t)
	d := newTestUI(t, env, "")

	d.PressKey('t')
	assert.Equal(t, domain.ThemeDark, env.app.Theme.Current())
	assert.Equal(t, domain.ThemeDark, uiOf(d).data.stats.Theme)
}

func TestUI_RoutineTodayAndToggle(t *testing.T) {
	env := testApp(t)
	d := newTestUI(t, env, "")

	d.PressKey('5')
	d.PressKey('n')
	days := env.app.Routine.List()
	require.Len(t, days, 1)
	assert.Equal(t, "2025-06-15", days[0].Date)

	d.PressDown()
	d.PressSpace()
	days = env.app.Routine.List()
	assert.True(t, days[0].Tasks[1].Completed)
	assert.False(t, days[0].Tasks[0].Completed)
}

func TestUI_TasksToggleAndDelete(t *testing.T) {
	env := testApp(t)
	_, err := env.app.Tasks.Add(context.Background(), "upsolve")
	require.NoError(t, err)
	d := newTestUI(t, env, "")

	d.PressKey('6')
	d.PressSpace()
	items, err := env.app.Tasks.List(context.Background())
	require.NoError(t, err)
	require.Len(t, items, 1)
	assert.True(t, items[0].Done)

	d.PressKey('x')
	items, err = env.app.Tasks.List(context.Background())
	require.NoError(t, err)
	assert.Empty(t, items)
}

func TestUI_GuardBlocksEdits(t *testing.T) {
	env := testApp(t)
	guard, err := access.NewGuard(access.HashSHA256("hunter2"))
	require.NoError(t, err)
	env.app.Guard = guard
	d := newTestUI(t, env, "")

	d.PressKey('+')
	assert.ErrorIs(t, uiOf(d).err, access.ErrPasswordRequired)
	assert.Equal(t, 0, uiOf(d).data.stats.CSES.Solved)

	unlocked := newTestUI(t, env, "hunter2")
	unlocked.PressKey('+')
	assert.NoError(t, uiOf(unlocked).err)
	assert.Equal(t, 1, uiOf(unlocked).data.stats.CSES.Solved)
}

func TestUI_Quit(t *testing.T) {
	env := testApp(t)
	d := newTestUI(t, env, "")

	d.PressKey('q')
	assert.True(t, d.Quitting)
	assert.Empty(t, d.View())
}
