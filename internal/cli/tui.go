package cli

import (
	"context"
	"fmt"
	"time"

	"github.com/alexanderramin/cptrack/internal/cli/formatter"
	"github.com/alexanderramin/cptrack/internal/domain"
	"github.com/alexanderramin/cptrack/internal/service"
	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/spf13/cobra"
)

type tab int

const (
	tabDashboard tab = iota
	tabCSES
	tabCodeforces
	tabCourses
	tabRoutine
	tabTasks
	tabCount
)

var tabNames = [tabCount]string{"Dashboard", "CSES", "Codeforces", "Courses", "Routine", "Tasks"}

// uiData is everything the dashboard renders, read from the services in one
// pass.
type uiData struct {
	stats    domain.DashboardStats
	cses     []domain.CSESProblem
	problems []domain.Problem
	courses  []domain.CourseStat
	days     []domain.RoutineDay
	tasks    []domain.TaskItem
}

type loadedMsg struct {
	data uiData
	err  error
}

type actionDoneMsg struct {
	status string
	err    error
}

type syncDoneMsg struct {
	result service.SyncResult
	err    error
}

// uiModel is the root bubbletea model for `cptrack ui`.
type uiModel struct {
	app      *App
	password string
	ctx      context.Context
	now      func() time.Time

	keys keyMap
	help help.Model

	active  tab
	cursor  [tabCount]int
	width   int
	height  int
	data    uiData
	loaded  bool
	syncing bool
	status  string
	err     error

	quitting bool
}

func newUIModel(ctx context.Context, app *App, password string, now func() time.Time) uiModel {
	if now == nil {
		now = time.Now
	}
	return uiModel{
		app:      app,
		password: password,
		ctx:      ctx,
		now:      now,
		keys:     defaultKeyMap(),
		help:     help.New(),
	}
}

func newUICmd(app *App) *cobra.Command {
	return &cobra.Command{
		Use:   "ui",
		Short: "Open the interactive dashboard",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			password, _ := cmd.Flags().GetString("password")
			m := newUIModel(cmd.Context(), app, password, time.Now)
			_, err := tea.NewProgram(m, tea.WithAltScreen(), tea.WithContext(cmd.Context())).Run()
			return err
		},
	}
}

func (m uiModel) Init() tea.Cmd {
	return m.load()
}

// load reads every slice the tabs need.
func (m uiModel) load() tea.Cmd {
	app, ctx := m.app, m.ctx
	return func() tea.Msg {
		stats, err := app.Status.Dashboard(ctx)
		if err != nil {
			return loadedMsg{err: err}
		}
		tasks, err := app.Tasks.List(ctx)
		if err != nil {
			return loadedMsg{err: err}
		}
		return loadedMsg{data: uiData{
			stats:    stats,
			cses:     app.CSES.List(domain.CSESFilter{}),
			problems: app.Codeforces.List(domain.ProblemFilter{}),
			courses:  app.Courses.List(),
			days:     app.Routine.List(),
			tasks:    tasks,
		}}
	}
}

// act runs a mutation behind the edit guard and reports its outcome.
func (m uiModel) act(fn func(ctx context.Context) (string, error)) tea.Cmd {
	if err := m.app.Guard.Check(m.password); err != nil {
		return func() tea.Msg { return actionDoneMsg{err: err} }
	}
	ctx := m.ctx
	return func() tea.Msg {
		status, err := fn(ctx)
		return actionDoneMsg{status: status, err: err}
	}
}

func (m uiModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width, m.height = msg.Width, msg.Height
		m.help.Width = msg.Width
		return m, nil

	case loadedMsg:
		if msg.err != nil {
			m.err = msg.err
			return m, nil
		}
		m.data = msg.data
		m.loaded = true
		formatter.ApplyTheme(m.data.stats.Theme)
		m.clampCursors()
		return m, nil

	case actionDoneMsg:
		m.err = msg.err
		if msg.err == nil {
			m.status = msg.status
		}
		return m, m.load()

	case syncDoneMsg:
		m.syncing = false
		m.err = msg.err
		if msg.err == nil {
			m.status = fmt.Sprintf("Synced %s: %d new of %d accepted", msg.result.Handle, msg.result.Added, msg.result.Accepted)
		}
		return m, m.load()

	case tea.KeyMsg:
		return m.handleKey(msg)
	}
	return m, nil
}

func (m uiModel) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch {
	case key.Matches(msg, m.keys.Quit):
		m.quitting = true
		return m, tea.Quit
	case key.Matches(msg, m.keys.Help):
		m.help.ShowAll = !m.help.ShowAll
		return m, nil
	case key.Matches(msg, m.keys.NextTab):
		m.active = (m.active + 1) % tabCount
		return m, nil
	case key.Matches(msg, m.keys.PrevTab):
		m.active = (m.active + tabCount - 1) % tabCount
		return m, nil
	case key.Matches(msg, m.keys.Up):
		if m.cursor[m.active] > 0 {
			m.cursor[m.active]--
		}
		return m, nil
	case key.Matches(msg, m.keys.Down):
		if m.cursor[m.active] < m.rowCount(m.active)-1 {
			m.cursor[m.active]++
		}
		return m, nil
	case key.Matches(msg, m.keys.Reload):
		return m, m.load()
	case key.Matches(msg, m.keys.Theme):
		return m, m.act(func(ctx context.Context) (string, error) {
			t, err := m.app.Theme.Toggle(ctx)
			return "Theme: " + string(t), err
		})
	case key.Matches(msg, m.keys.Sync):
		return m.startSync()
	}

	if len(msg.Runes) == 1 && msg.Runes[0] >= '1' && msg.Runes[0] < '1'+rune(tabCount) {
		m.active = tab(msg.Runes[0] - '1')
		return m, nil
	}
	return m, m.tabAction(msg)
}

func (m uiModel) startSync() (tea.Model, tea.Cmd) {
	if m.syncing {
		return m, nil
	}
	if err := m.app.Guard.Check(m.password); err != nil {
		m.err = err
		return m, nil
	}
	m.syncing = true
	m.status = "Syncing..."
	m.err = nil
	app, ctx := m.app, m.ctx
	return m, func() tea.Msg {
		res, err := app.Sync.Sync(ctx, "")
		return syncDoneMsg{result: res, err: err}
	}
}

// tabAction handles keys whose meaning depends on the active tab.
func (m uiModel) tabAction(msg tea.KeyMsg) tea.Cmd {
	app := m.app
	row := m.cursor[m.active]

	switch m.active {
	case tabDashboard, tabCSES:
		switch {
		case key.Matches(msg, m.keys.Increment):
			return m.act(func(ctx context.Context) (string, error) {
				p, err := app.CSES.Increment(ctx)
				return fmt.Sprintf("CSES %d/%d", p.Solved, p.Total), err
			})
		case key.Matches(msg, m.keys.Decrement):
			return m.act(func(ctx context.Context) (string, error) {
				p, err := app.CSES.Decrement(ctx)
				return fmt.Sprintf("CSES %d/%d", p.Solved, p.Total), err
			})
		case m.active == tabCSES && key.Matches(msg, m.keys.Toggle) && row < len(m.data.cses):
			id := m.data.cses[row].ID
			return m.act(func(ctx context.Context) (string, error) {
				p, err := app.CSES.Toggle(ctx, id)
				return fmt.Sprintf("%s: %s", p.Name, p.Status), err
			})
		}

	case tabCourses:
		if row >= len(m.data.courses) {
			return nil
		}
		c := m.data.courses[row]
		delta := 0
		switch {
		case key.Matches(msg, m.keys.Increment):
			delta = 1
		case key.Matches(msg, m.keys.Decrement):
			delta = -1
		}
		if delta != 0 {
			return m.act(func(ctx context.Context) (string, error) {
				p, err := app.Courses.Set(ctx, c.Spec.Key, c.Progress.Completed+delta)
				return fmt.Sprintf("%s %d/%d", c.Spec.Name, p.Completed, p.Total), err
			})
		}

	case tabRoutine:
		if key.Matches(msg, m.keys.Today) {
			return m.act(func(ctx context.Context) (string, error) {
				d, err := app.Routine.Today(ctx)
				return "Routine for " + d.Date, err
			})
		}
		day, ok := m.shownDay()
		if !ok {
			return nil
		}
		switch {
		case key.Matches(msg, m.keys.Toggle) && row < len(day.Tasks):
			taskID := day.Tasks[row].ID
			return m.act(func(ctx context.Context) (string, error) {
				_, err := app.Routine.ToggleTask(ctx, day.ID, taskID)
				return "", err
			})
		case key.Matches(msg, m.keys.Duplicate):
			return m.act(func(ctx context.Context) (string, error) {
				d, err := app.Routine.Duplicate(ctx, day.ID)
				return "Copied into " + d.Date, err
			})
		}

	case tabTasks:
		if row >= len(m.data.tasks) {
			return nil
		}
		switch {
		case key.Matches(msg, m.keys.Toggle):
			return m.act(func(ctx context.Context) (string, error) {
				_, err := app.Tasks.Toggle(ctx, row)
				return "", err
			})
		case key.Matches(msg, m.keys.Delete):
			return m.act(func(ctx context.Context) (string, error) {
				_, err := app.Tasks.Remove(ctx, row)
				return "Task removed", err
			})
		}
	}
	return nil
}

// shownDay is today's routine day when it exists, else the newest day.
func (m uiModel) shownDay() (domain.RoutineDay, bool) {
	if len(m.data.days) == 0 {
		return domain.RoutineDay{}, false
	}
	today := m.now().UTC().Format(domain.DateLayout)
	for _, d := range m.data.days {
		if d.Date == today {
			return d, true
		}
	}
	return m.data.days[0], true
}

func (m uiModel) rowCount(t tab) int {
	switch t {
	case tabCSES:
		return len(m.data.cses)
	case tabCodeforces:
		return len(m.data.problems)
	case tabCourses:
		return len(m.data.courses)
	case tabRoutine:
		if d, ok := m.shownDay(); ok {
			return len(d.Tasks)
		}
	case tabTasks:
		return len(m.data.tasks)
	}
	return 0
}

func (m *uiModel) clampCursors() {
	for t := tab(0); t < tabCount; t++ {
		n := m.rowCount(t)
		if m.cursor[t] >= n {
			m.cursor[t] = n - 1
		}
		if m.cursor[t] < 0 {
			m.cursor[t] = 0
		}
	}
}
