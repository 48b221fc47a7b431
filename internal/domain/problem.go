package domain

import (
	"fmt"
	"strings"
	"time"
)

// Problem is a solved Codeforces problem, entered manually or synced.
type Problem struct {
	ID          int64         `json:"id"`
	Contest     string        `json:"contest"`
	Division    Division      `json:"division"`
	ProblemID   string        `json:"problemId"`
	ProblemName string        `json:"problemName"`
	Notes       string        `json:"notes"`
	Tricks      string        `json:"tricks"`
	DateAdded   time.Time     `json:"dateAdded"`
	Source      ProblemSource `json:"source"`
	Rating      *int          `json:"rating,omitempty"`
	Tags        []string      `json:"tags,omitempty"`
}

// Clone returns a copy that shares no memory with p.
func (p Problem) Clone() Problem {
	out := p
	if p.Rating != nil {
		r := *p.Rating
		out.Rating = &r
	}
	out.Tags = append([]string(nil), p.Tags...)
	return out
}

// Validate checks the fields a manual entry must carry.
func (p *Problem) Validate() error {
	if strings.TrimSpace(p.Contest) == "" {
		return fmt.Errorf("contest is required")
	}
	if strings.TrimSpace(p.ProblemID) == "" {
		return fmt.Errorf("problem index is required")
	}
	if strings.TrimSpace(p.ProblemName) == "" {
		return fmt.Errorf("problem name is required")
	}
	if !ValidDivisions[p.Division] {
		return fmt.Errorf("invalid division %q", p.Division)
	}
	return nil
}

// CSESProblem is a manually tracked CSES problem.
type CSESProblem struct {
	ID        int64         `json:"id"`
	Name      string        `json:"name"`
	Category  string        `json:"category"`
	Status    ProblemStatus `json:"status"`
	Notes     string        `json:"notes"`
	Approach  string        `json:"approach"`
	DateAdded time.Time     `json:"dateAdded"`
}

// Validate checks the fields a CSES entry must carry.
func (p *CSESProblem) Validate() error {
	if strings.TrimSpace(p.Name) == "" {
		return fmt.Errorf("problem name is required")
	}
	if strings.TrimSpace(p.Category) == "" {
		return fmt.Errorf("category is required")
	}
	return nil
}

// ToggleStatus flips between solved and unsolved.
func (p *CSESProblem) ToggleStatus() {
	if p.Status == StatusSolved {
		p.Status = StatusUnsolved
		return
	}
	p.Status = StatusSolved
}

// CountSolved returns how many problems are marked solved.
func CountSolved(problems []CSESProblem) int {
	n := 0
	for _, p := range problems {
		if p.Status == StatusSolved {
			n++
		}
	}
	return n
}

// CSESFilter narrows the CSES table. Zero values match everything.
type CSESFilter struct {
	Search   string
	Category string
}

// FilterCSES returns the problems matching f. Search is case-insensitive over
// name, category and notes.
func FilterCSES(problems []CSESProblem, f CSESFilter) []CSESProblem {
	term := strings.ToLower(strings.TrimSpace(f.Search))
	var out []CSESProblem
	for _, p := range problems {
		if f.Category != "" && f.Category != "all" && p.Category != f.Category {
			continue
		}
		if term != "" &&
			!strings.Contains(strings.ToLower(p.Name), term) &&
			!strings.Contains(strings.ToLower(p.Category), term) &&
			!strings.Contains(strings.ToLower(p.Notes), term) {
			continue
		}
		out = append(out, p)
	}
	return out
}

// ProblemFilter narrows the Codeforces table. Zero values match everything.
type ProblemFilter struct {
	Search   string
	Division Division
	Index    string
}

// FilterProblems returns the problems matching f. Search is case-insensitive
// over contest, problem name and notes.
func FilterProblems(problems []Problem, f ProblemFilter) []Problem {
	term := strings.ToLower(strings.TrimSpace(f.Search))
	var out []Problem
	for _, p := range problems {
		if f.Division != "" && p.Division != f.Division {
			continue
		}
		if f.Index != "" && !strings.EqualFold(p.ProblemID, f.Index) {
			continue
		}
		if term != "" &&
			!strings.Contains(strings.ToLower(p.Contest), term) &&
			!strings.Contains(strings.ToLower(p.ProblemName), term) &&
			!strings.Contains(strings.ToLower(p.Notes), term) {
			continue
		}
		out = append(out, p)
	}
	return out
}

// DistinctContests counts unique contest labels.
func DistinctContests(problems []Problem) int {
	seen := make(map[string]struct{}, len(problems))
	for _, p := range problems {
		seen[p.Contest] = struct{}{}
	}
	return len(seen)
}
