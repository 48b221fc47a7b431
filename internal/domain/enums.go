package domain

type Division string

const (
	DivisionOne         Division = "Div. 1"
	DivisionTwo         Division = "Div. 2"
	DivisionThree       Division = "Div. 3"
	DivisionFour        Division = "Div. 4"
	DivisionEducational Division = "Educational"
)

// ValidDivisions is the canonical set of accepted division labels.
var ValidDivisions = map[Division]bool{
	DivisionOne: true, DivisionTwo: true, DivisionThree: true,
	DivisionFour: true, DivisionEducational: true,
}

type ProblemSource string

const (
	SourceManual ProblemSource = "manual"
	SourceAPI    ProblemSource = "api"
)

type ProblemStatus string

const (
	StatusSolved   ProblemStatus = "solved"
	StatusUnsolved ProblemStatus = "unsolved"
)

type DayType string

const (
	DayRegular DayType = "regular"
	DayGrind   DayType = "grind"
)

// ValidDayTypes is the canonical set of accepted routine day types.
var ValidDayTypes = map[DayType]bool{
	DayRegular: true,
	DayGrind:   true,
}

type Theme string

const (
	ThemeLight Theme = "light"
	ThemeDark  Theme = "dark"
)

// Toggled returns the opposite theme. Unknown values toggle to dark.
func (t Theme) Toggled() Theme {
	if t == ThemeDark {
		return ThemeLight
	}
	return ThemeDark
}
