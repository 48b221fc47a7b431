package cli

import (
	"fmt"
	"strings"

	"github.com/alexanderramin/cptrack/internal/cli/formatter"
	"github.com/charmbracelet/lipgloss"
)

// chromeHeight is the rows taken by the tab bar, status line and help.
const chromeHeight = 6

func (m uiModel) View() string {
	if m.quitting {
		return ""
	}

	var b strings.Builder
	b.WriteString(m.renderTabs() + "\n\n")

	if !m.loaded && m.err == nil {
		b.WriteString(formatter.Dim("Loading..."))
	} else {
		b.WriteString(m.renderBody())
	}
	b.WriteString("\n\n")

	switch {
	case m.err != nil:
		b.WriteString(formatter.StyleRed.Render("Error: " + m.err.Error()))
	case m.status != "":
		b.WriteString(formatter.Dim(m.status))
	}
	b.WriteString("\n" + m.help.View(m.keys))
	return b.String()
}

func (m uiModel) renderTabs() string {
	active := lipgloss.NewStyle().Foreground(formatter.ColorHeader).Bold(true).Underline(true)
	parts := make([]string, 0, len(tabNames))
	for i, name := range tabNames {
		label := fmt.Sprintf("%d %s", i+1, name)
		if tab(i) == m.active {
			parts = append(parts, active.Render(label))
		} else {
			parts = append(parts, formatter.Dim(label))
		}
	}
	return strings.Join(parts, "   ")
}

func (m uiModel) renderBody() string {
	switch m.active {
	case tabDashboard:
		return formatter.FormatDashboard(m.data.stats, m.now())
	case tabCSES:
		return m.renderCSES()
	case tabCodeforces:
		return m.renderCodeforces()
	case tabCourses:
		return m.renderCourses()
	case tabRoutine:
		return m.renderRoutine()
	case tabTasks:
		return m.renderTasks()
	}
	return ""
}

func (m uiModel) renderCSES() string {
	p := m.data.stats.CSES
	head := formatter.FormatCSESProgress(p)
	if len(m.data.cses) == 0 {
		return head + formatter.Dim("No CSES problems recorded. Add one with `cptrack cses add`.")
	}
	lines := make([]string, 0, len(m.data.cses))
	for _, c := range m.data.cses {
		lines = append(lines, fmt.Sprintf("%-32s %-24s %s",
			formatter.Truncate(c.Name, 32), formatter.Truncate(c.Category, 24), formatter.StatusMark(c.Status)))
	}
	return head + "\n" + m.renderList(lines, m.cursor[tabCSES])
}

func (m uiModel) renderCodeforces() string {
	var head string
	switch {
	case m.syncing:
		head = formatter.StylePurple.Render("Syncing...")
	case m.data.stats.CodeforcesHandle == "":
		head = formatter.Dim("No handle set. Run `cptrack cf handle <name>` to enable sync.")
	default:
		head = fmt.Sprintf("%s  %s", formatter.StyleBlue.Render(m.data.stats.CodeforcesHandle),
			formatter.SyncAge(m.data.stats.LastSync, m.now()))
	}
	head += fmt.Sprintf("\n%d solved across %d contests\n", m.data.stats.CFSolved, m.data.stats.CFContests)

	if len(m.data.problems) == 0 {
		return head
	}
	lines := make([]string, 0, len(m.data.problems))
	for _, p := range m.data.problems {
		lines = append(lines, fmt.Sprintf("%-14s %-3s %-30s %s",
			formatter.Truncate(p.Contest, 14), p.ProblemID, formatter.Truncate(p.ProblemName, 30), formatter.DivisionBadge(p.Division)))
	}
	return head + "\n" + m.renderList(lines, m.cursor[tabCodeforces])
}

func (m uiModel) renderCourses() string {
	lines := make([]string, 0, len(m.data.courses))
	for _, c := range m.data.courses {
		lines = append(lines, fmt.Sprintf("%-16s %s", formatter.Truncate(c.Spec.Name, 16),
			formatter.RenderCount(c.Progress.Completed, c.Progress.Total, c.Progress.Percent(), 20)))
	}
	return m.renderList(lines, m.cursor[tabCourses])
}

func (m uiModel) renderRoutine() string {
	day, ok := m.shownDay()
	if !ok {
		return formatter.Dim("No routine days yet. Press n to start today's.")
	}
	head := fmt.Sprintf("%s  %s  %d/%d\n", formatter.Bold(day.Date), day.Type, day.CompletedCount(), len(day.Tasks))
	lines := make([]string, 0, len(day.Tasks))
	for _, t := range day.Tasks {
		lines = append(lines, formatter.Check(t.Completed)+" "+t.Text)
	}
	return head + "\n" + m.renderList(lines, m.cursor[tabRoutine]) +
		fmt.Sprintf("\n\nStreak: %d", m.data.stats.Streak)
}

func (m uiModel) renderTasks() string {
	if len(m.data.tasks) == 0 {
		return formatter.Dim("No tasks. Add one with `cptrack task add`.")
	}
	lines := make([]string, 0, len(m.data.tasks))
	for _, t := range m.data.tasks {
		text := t.Text
		if t.Done {
			text = formatter.Dim(text)
		}
		lines = append(lines, formatter.Check(t.Done)+" "+text)
	}
	return m.renderList(lines, m.cursor[tabTasks])
}

// renderList marks the cursor row and scrolls so it stays visible.
func (m uiModel) renderList(lines []string, cursor int) string {
	visible := m.height - chromeHeight - 4
	if visible < 3 {
		visible = len(lines)
	}
	start := 0
	if cursor >= visible {
		start = cursor - visible + 1
	}
	end := start + visible
	if end > len(lines) {
		end = len(lines)
	}

	var b strings.Builder
	for i := start; i < end; i++ {
		marker := "  "
		if i == cursor {
			marker = formatter.StyleHeader.Render("› ")
		}
		b.WriteString(marker + lines[i])
		if i < end-1 {
			b.WriteString("\n")
		}
	}
	return b.String()
}
