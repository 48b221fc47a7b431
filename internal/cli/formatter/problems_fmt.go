package formatter

import (
	"fmt"
	"strings"

	"github.com/alexanderramin/cptrack/internal/domain"
)

const notesWidth = 40

// FormatCSESList renders CSES problems as a table.
func FormatCSESList(problems []domain.CSESProblem) string {
	if len(problems) == 0 {
		return Dim("No CSES problems recorded.") + "\n"
	}
	rows := make([][]string, 0, len(problems))
	for _, p := range problems {
		rows = append(rows, []string{
			Dim(fmt.Sprint(p.ID)),
			Bold(p.Name),
			p.Category,
			StatusMark(p.Status),
			Dim(Truncate(notesOf(p.Notes, p.Approach), notesWidth)),
		})
	}
	solved := domain.CountSolved(problems)
	return RenderTable([]string{"ID", "NAME", "CATEGORY", "STATUS", "NOTES"}, rows) +
		fmt.Sprintf("\n%s of %d solved\n", StyleGreen.Render(fmt.Sprint(solved)), len(problems))
}

// FormatCSESProgress renders the counter from progress/cses.
func FormatCSESProgress(p domain.CSESProgress) string {
	return fmt.Sprintf("CSES %s\n", RenderCount(p.Solved, p.Total, p.Percent(), dashboardBarWidth))
}

// FormatProblemList renders Codeforces problems as a table.
func FormatProblemList(problems []domain.Problem) string {
	if len(problems) == 0 {
		return Dim("No Codeforces problems recorded.") + "\n"
	}
	rows := make([][]string, 0, len(problems))
	for _, p := range problems {
		source := Dim(string(p.Source))
		if p.Source == domain.SourceAPI {
			source = StyleBlue.Render(string(p.Source))
		}
		rows = append(rows, []string{
			Dim(fmt.Sprint(p.ID)),
			p.Contest,
			Bold(p.ProblemID),
			Truncate(p.ProblemName, 32),
			DivisionBadge(p.Division),
			source,
			Dim(Truncate(notesOf(p.Notes, p.Tricks), notesWidth)),
		})
	}
	return RenderTable([]string{"ID", "CONTEST", "IDX", "NAME", "DIVISION", "SOURCE", "NOTES"}, rows) +
		fmt.Sprintf("\n%d problems across %d contests\n", len(problems), domain.DistinctContests(problems))
}

// FormatProblem renders one Codeforces problem.
func FormatProblem(p domain.Problem) string {
	var b strings.Builder
	fmt.Fprintf(&b, "%s %s  %s\n", Bold(p.Contest+" "+p.ProblemID), p.ProblemName, DivisionBadge(p.Division))
	if p.Rating != nil {
		fmt.Fprintf(&b, "  rating %d\n", *p.Rating)
	}
	if len(p.Tags) > 0 {
		fmt.Fprintf(&b, "  %s\n", Dim(strings.Join(p.Tags, ", ")))
	}
	if p.Notes != "" {
		fmt.Fprintf(&b, "  notes: %s\n", p.Notes)
	}
	if p.Tricks != "" {
		fmt.Fprintf(&b, "  tricks: %s\n", p.Tricks)
	}
	return b.String()
}

// FormatSyncResult renders the outcome of a Codeforces sync.
func FormatSyncResult(handle string, fetched, accepted, added int) string {
	if added == 0 {
		return fmt.Sprintf("Synced %s: %d submissions, %d unique accepted, %s\n",
			StyleBlue.Render(handle), fetched, accepted, Dim("nothing new"))
	}
	return fmt.Sprintf("Synced %s: %d submissions, %d unique accepted, %s\n",
		StyleBlue.Render(handle), fetched, accepted, StyleGreen.Render(fmt.Sprintf("%d added", added)))
}

func notesOf(notes, extra string) string {
	switch {
	case notes != "" && extra != "":
		return notes + " | " + extra
	case notes != "":
		return notes
	default:
		return extra
	}
}
