package domain

import (
	"strconv"
	"strings"
)

// educationalPrefixes are the two-digit prefixes treated as Educational rounds.
var educationalPrefixes = []string{"13", "14", "15", "16", "17", "18", "19"}

// ClassifyDivision guesses a contest's division from its numeric identifier.
// Rules are applied in order and the first match wins, so four-digit ids at or
// above 1800 that escape the Educational prefix rule still resolve to Div. 2.
func ClassifyDivision(contestID int) Division {
	id := strconv.Itoa(contestID)

	if len(id) >= 4 && hasAnyPrefix(id, educationalPrefixes) {
		return DivisionEducational
	}
	if len(id) == 4 && contestID >= 1400 {
		return DivisionTwo
	}
	if len(id) >= 4 && contestID >= 1200 && contestID < 1400 {
		return DivisionThree
	}
	if contestID >= 1800 {
		return DivisionFour
	}
	if contestID < 1000 {
		return DivisionOne
	}
	return DivisionTwo
}

// ClassifyContestLabel classifies a free-form contest label such as
// "Round 1850" by its first run of digits. Labels without digits are Div. 2.
func ClassifyContestLabel(label string) Division {
	start := strings.IndexFunc(label, isDigit)
	if start < 0 {
		return DivisionTwo
	}
	end := start
	for end < len(label) && isDigit(rune(label[end])) {
		end++
	}
	n, err := strconv.Atoi(label[start:end])
	if err != nil {
		return DivisionTwo
	}
	return ClassifyDivision(n)
}

func hasAnyPrefix(s string, prefixes []string) bool {
	for _, p := range prefixes {
		if strings.HasPrefix(s, p) {
			return true
		}
	}
	return false
}

func isDigit(r rune) bool {
	return r >= '0' && r <= '9'
}
