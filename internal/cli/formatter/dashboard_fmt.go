package formatter

import (
	"fmt"
	"strings"
	"time"

	"github.com/alexanderramin/cptrack/internal/domain"
)

const dashboardBarWidth = 20

// FormatDashboard renders the summary box shown by `cptrack status` and the
// dashboard tab.
func FormatDashboard(stats domain.DashboardStats, now time.Time) string {
	var b strings.Builder

	b.WriteString(Header("Practice") + "\n")
	fmt.Fprintf(&b, "%-12s %s\n", "CSES",
		RenderCount(stats.CSES.Solved, stats.CSES.Total, stats.CSES.Percent(), dashboardBarWidth))
	fmt.Fprintf(&b, "%-12s %s solved across %s contests\n", "Codeforces",
		Bold(fmt.Sprint(stats.CFSolved)), Bold(fmt.Sprint(stats.CFContests)))

	handle := Dim("no handle set")
	if stats.CodeforcesHandle != "" {
		handle = StyleBlue.Render(stats.CodeforcesHandle)
	}
	fmt.Fprintf(&b, "%-12s %s, %s\n", "", handle, SyncAge(stats.LastSync, now))

	if len(stats.Courses) > 0 {
		b.WriteString("\n" + Header("Courses") + "\n")
		b.WriteString(formatCourseLines(stats.Courses))
	}

	b.WriteString("\n" + Header("Today") + "\n")
	if stats.TodayTotal == 0 {
		b.WriteString(Dim("no routine for today yet") + "\n")
	} else {
		pct := stats.TodayCompleted * 100 / stats.TodayTotal
		fmt.Fprintf(&b, "%-12s %s\n", "Routine",
			RenderCount(stats.TodayCompleted, stats.TodayTotal, pct, dashboardBarWidth))
	}
	fmt.Fprintf(&b, "%-12s %s\n", "Streak", streakLabel(stats.Streak))

	return RenderBox("cptrack", strings.TrimRight(b.String(), "\n"))
}

func streakLabel(days int) string {
	switch days {
	case 0:
		return Dim("0 days")
	case 1:
		return StyleYellow.Render("1 day")
	default:
		return StyleGreen.Render(fmt.Sprintf("%d days", days))
	}
}

func formatCourseLines(courses []domain.CourseStat) string {
	var b strings.Builder
	for _, c := range courses {
		fmt.Fprintf(&b, "%-12s %s\n", Truncate(c.Spec.Name, 12),
			RenderCount(c.Progress.Completed, c.Progress.Total, c.Progress.Percent(), dashboardBarWidth))
	}
	return b.String()
}

// FormatCourses renders the course list with keys, for `cptrack course list`.
func FormatCourses(courses []domain.CourseStat) string {
	rows := make([][]string, 0, len(courses))
	for _, c := range courses {
		rows = append(rows, []string{
			StyleBlue.Render(c.Spec.Key),
			c.Spec.Name,
			RenderCount(c.Progress.Completed, c.Progress.Total, c.Progress.Percent(), 10),
		})
	}
	return RenderTable([]string{"KEY", "COURSE", "PROGRESS"}, rows)
}

// FormatTheme renders the current theme with a swatch of its palette.
func FormatTheme(t domain.Theme) string {
	swatch := StyleGreen.Render("■") + StyleYellow.Render("■") + StyleRed.Render("■") +
		StyleBlue.Render("■") + StylePurple.Render("■")
	return fmt.Sprintf("Theme: %s %s\n", Bold(string(t)), swatch)
}
