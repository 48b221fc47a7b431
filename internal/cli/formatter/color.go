package formatter

import (
	"fmt"
	"strings"

	"github.com/alexanderramin/cptrack/internal/domain"
	"github.com/charmbracelet/lipgloss"
)

// Palette is the set of colors one theme renders with.
type Palette struct {
	Green  lipgloss.Color
	Yellow lipgloss.Color
	Red    lipgloss.Color
	Blue   lipgloss.Color
	Purple lipgloss.Color
	Dim    lipgloss.Color
	Fg     lipgloss.Color
	Header lipgloss.Color
}

// Gruvbox dark and light variants.
var (
	DarkPalette = Palette{
		Green:  "#8ec07c",
		Yellow: "#fabd2f",
		Red:    "#fb4934",
		Blue:   "#83a598",
		Purple: "#d3869b",
		Dim:    "#928374",
		Fg:     "#ebdbb2",
		Header: "#fe8019",
	}
	LightPalette = Palette{
		Green:  "#79740e",
		Yellow: "#b57614",
		Red:    "#9d0006",
		Blue:   "#076678",
		Purple: "#8f3f71",
		Dim:    "#7c6f64",
		Fg:     "#3c3836",
		Header: "#af3a03",
	}
)

// Active colors. ApplyTheme swaps them.
var (
	ColorGreen  = LightPalette.Green
	ColorYellow = LightPalette.Yellow
	ColorRed    = LightPalette.Red
	ColorBlue   = LightPalette.Blue
	ColorPurple = LightPalette.Purple
	ColorDim    = LightPalette.Dim
	ColorFg     = LightPalette.Fg
	ColorHeader = LightPalette.Header
)

var (
	StyleGreen  lipgloss.Style
	StyleYellow lipgloss.Style
	StyleRed    lipgloss.Style
	StyleBlue   lipgloss.Style
	StylePurple lipgloss.Style
	StyleDim    lipgloss.Style
	StyleFg     lipgloss.Style
	StyleHeader lipgloss.Style
	StyleBold   lipgloss.Style
)

func init() {
	usePalette(LightPalette)
}

// ApplyTheme switches the package styles to the palette for t. It is not
// safe to call while another goroutine renders.
func ApplyTheme(t domain.Theme) {
	if t == domain.ThemeDark {
		usePalette(DarkPalette)
		return
	}
	usePalette(LightPalette)
}

func usePalette(p Palette) {
	ColorGreen, ColorYellow, ColorRed = p.Green, p.Yellow, p.Red
	ColorBlue, ColorPurple, ColorDim = p.Blue, p.Purple, p.Dim
	ColorFg, ColorHeader = p.Fg, p.Header

	StyleGreen = lipgloss.NewStyle().Foreground(ColorGreen)
	StyleYellow = lipgloss.NewStyle().Foreground(ColorYellow)
	StyleRed = lipgloss.NewStyle().Foreground(ColorRed)
	StyleBlue = lipgloss.NewStyle().Foreground(ColorBlue)
	StylePurple = lipgloss.NewStyle().Foreground(ColorPurple)
	StyleDim = lipgloss.NewStyle().Foreground(ColorDim)
	StyleFg = lipgloss.NewStyle().Foreground(ColorFg)
	StyleHeader = lipgloss.NewStyle().Foreground(ColorHeader).Bold(true)
	StyleBold = lipgloss.NewStyle().Foreground(ColorFg).Bold(true)
}

// DivisionBadge renders a division label in its color.
func DivisionBadge(d domain.Division) string {
	switch d {
	case domain.DivisionOne:
		return StyleRed.Render(string(d))
	case domain.DivisionTwo:
		return StyleYellow.Render(string(d))
	case domain.DivisionThree:
		return StyleBlue.Render(string(d))
	case domain.DivisionFour:
		return StyleGreen.Render(string(d))
	case domain.DivisionEducational:
		return StylePurple.Render(string(d))
	default:
		return StyleDim.Render(string(d))
	}
}

// StatusMark renders a solved/unsolved marker.
func StatusMark(s domain.ProblemStatus) string {
	if s == domain.StatusSolved {
		return StyleGreen.Render("✓ solved")
	}
	return StyleDim.Render("· unsolved")
}

// Check renders a checkbox.
func Check(done bool) string {
	if done {
		return StyleGreen.Render("[x]")
	}
	return StyleDim.Render("[ ]")
}

// Header renders a section header with an underline.
func Header(text string) string {
	upper := strings.ToUpper(text)
	line := strings.Repeat("─", len([]rune(upper)))
	return fmt.Sprintf("%s\n%s", StyleHeader.Render(upper), StyleDim.Render(line))
}

// Dim renders text in the muted color.
func Dim(text string) string {
	return StyleDim.Render(text)
}

// Bold renders text in bold.
func Bold(text string) string {
	return StyleBold.Render(text)
}

// Warn renders a warning line.
func Warn(text string) string {
	return StyleYellow.Render("warning: " + text)
}
