package cli

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/alexanderramin/cptrack/internal/cli/formatter"
	"github.com/alexanderramin/cptrack/internal/domain"
	"github.com/charmbracelet/huh"
	"github.com/charmbracelet/lipgloss"
)

// cptrackHuhTheme styles huh forms with the active palette.
func cptrackHuhTheme() *huh.Theme {
	t := huh.ThemeBase()

	t.Focused.Title = lipgloss.NewStyle().Foreground(formatter.ColorHeader).Bold(true)
	t.Focused.SelectSelector = lipgloss.NewStyle().Foreground(formatter.ColorHeader)
	t.Focused.SelectedOption = lipgloss.NewStyle().Foreground(formatter.ColorGreen)
	t.Focused.UnselectedOption = lipgloss.NewStyle().Foreground(formatter.ColorFg)
	t.Focused.FocusedButton = lipgloss.NewStyle().Foreground(formatter.ColorFg).Background(formatter.ColorHeader).Padding(0, 1)
	t.Focused.BlurredButton = lipgloss.NewStyle().Foreground(formatter.ColorDim).Padding(0, 1)
	t.Focused.TextInput.Cursor = lipgloss.NewStyle().Foreground(formatter.ColorHeader)
	t.Focused.TextInput.Prompt = lipgloss.NewStyle().Foreground(formatter.ColorHeader)
	t.Focused.TextInput.Text = lipgloss.NewStyle().Foreground(formatter.ColorFg)
	t.Focused.TextInput.Placeholder = lipgloss.NewStyle().Foreground(formatter.ColorDim)
	t.Focused.Description = lipgloss.NewStyle().Foreground(formatter.ColorDim)

	t.Blurred.Title = lipgloss.NewStyle().Foreground(formatter.ColorDim)
	t.Blurred.SelectSelector = lipgloss.NewStyle().Foreground(formatter.ColorDim)
	t.Blurred.SelectedOption = lipgloss.NewStyle().Foreground(formatter.ColorDim)
	t.Blurred.UnselectedOption = lipgloss.NewStyle().Foreground(formatter.ColorDim)
	t.Blurred.TextInput.Prompt = lipgloss.NewStyle().Foreground(formatter.ColorDim)
	t.Blurred.TextInput.Text = lipgloss.NewStyle().Foreground(formatter.ColorDim)

	return t
}

// confirmDestructive returns true when the action may proceed: --yes was
// given, or the user agreed on an interactive terminal.
func confirmDestructive(app *App, yes bool, title string) (bool, error) {
	if yes {
		return true, nil
	}
	if !app.interactive() {
		return false, fmt.Errorf("%s: pass --yes to confirm on a non-interactive terminal", strings.TrimSuffix(title, "?"))
	}
	if app.Confirm != nil {
		return app.Confirm(title)
	}
	var ok bool
	err := huh.NewForm(
		huh.NewGroup(
			huh.NewConfirm().
				Title(title).
				Affirmative("Yes").
				Negative("No").
				Value(&ok),
		),
	).WithTheme(cptrackHuhTheme()).WithShowHelp(false).Run()
	if err != nil {
		return false, err
	}
	return ok, nil
}

// problemForm collects a Codeforces problem interactively. A blank division
// is classified from the contest label.
func problemForm(p *domain.Problem) *huh.Form {
	divisions := []huh.Option[domain.Division]{huh.NewOption("Auto (from contest number)", domain.Division(""))}
	for _, d := range []domain.Division{
		domain.DivisionOne, domain.DivisionTwo, domain.DivisionThree,
		domain.DivisionFour, domain.DivisionEducational,
	} {
		divisions = append(divisions, huh.NewOption(string(d), d))
	}

	return huh.NewForm(
		huh.NewGroup(
			huh.NewInput().Title("Contest").Placeholder("Contest 1350").Value(&p.Contest).Validate(validateRequired),
			huh.NewInput().Title("Problem index").Placeholder("A").Value(&p.ProblemID).Validate(validateRequired),
			huh.NewInput().Title("Problem name").Value(&p.ProblemName).Validate(validateRequired),
		),
		huh.NewGroup(
			huh.NewSelect[domain.Division]().Title("Division").Options(divisions...).Value(&p.Division),
			huh.NewText().Title("Notes").Value(&p.Notes),
			huh.NewText().Title("Tricks").Value(&p.Tricks),
		),
	).WithTheme(cptrackHuhTheme()).WithShowHelp(false)
}

func validateRequired(s string) error {
	if strings.TrimSpace(s) == "" {
		return fmt.Errorf("required")
	}
	return nil
}

// parseID parses a numeric id argument.
func parseID(s string) (int64, error) {
	id, err := strconv.ParseInt(strings.TrimPrefix(strings.TrimSpace(s), "#"), 10, 64)
	if err != nil {
		return 0, fmt.Errorf("invalid id %q", s)
	}
	return id, nil
}

// parsePosition parses a 1-based list position into an index.
func parsePosition(s string) (int, error) {
	n, err := strconv.Atoi(strings.TrimSpace(s))
	if err != nil || n < 1 {
		return 0, fmt.Errorf("invalid position %q: use the number shown by list", s)
	}
	return n - 1, nil
}
