package formatter

import (
	"fmt"
	"strings"

	"github.com/alexanderramin/cptrack/internal/domain"
)

// FormatRoutineDay renders one day with its checklist.
func FormatRoutineDay(d domain.RoutineDay) string {
	var b strings.Builder
	kind := StyleBlue.Render(string(d.Type))
	if d.Type == domain.DayGrind {
		kind = StylePurple.Render(string(d.Type))
	}
	fmt.Fprintf(&b, "%s  %s  %s  %s\n", Bold(d.Date), kind,
		Dim(fmt.Sprintf("#%d", d.ID)), Dim(fmt.Sprintf("%d/%d", d.CompletedCount(), len(d.Tasks))))
	for _, t := range d.Tasks {
		fmt.Fprintf(&b, "  %s %s %s\n", Check(t.Completed), t.Text, Dim(fmt.Sprintf("(%d)", t.ID)))
	}
	return b.String()
}

// FormatRoutineList renders days newest first.
func FormatRoutineList(days []domain.RoutineDay) string {
	if len(days) == 0 {
		return Dim("No routine days yet. Run `cptrack routine today`.") + "\n"
	}
	parts := make([]string, 0, len(days))
	for _, d := range days {
		parts = append(parts, FormatRoutineDay(d))
	}
	return strings.Join(parts, "\n")
}

// FormatTasks renders the task list with 1-based positions.
func FormatTasks(items []domain.TaskItem) string {
	if len(items) == 0 {
		return Dim("No tasks.") + "\n"
	}
	var b strings.Builder
	for i, it := range items {
		text := it.Text
		if it.Done {
			text = Dim(text)
		}
		fmt.Fprintf(&b, "%3d. %s %s\n", i+1, Check(it.Done), text)
	}
	return b.String()
}
