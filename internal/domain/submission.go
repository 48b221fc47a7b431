package domain

import (
	"fmt"
	"strconv"
	"strings"
	"time"
)

// VerdictAccepted is the judge verdict for an accepted submission.
const VerdictAccepted = "OK"

// Submission is one judged attempt fetched from the judge.
type Submission struct {
	ContestID int
	Index     string
	Name      string
	Tags      []string
	Rating    *int
	Verdict   string
	CreatedAt time.Time
}

// SolvedProblem is the first accepted submission for a dedup key.
type SolvedProblem struct {
	ContestID int
	Index     string
	Name      string
	Tags      []string
	Rating    *int
	SolvedAt  time.Time
}

// Key returns the dedup key "contestId-index".
func (s SolvedProblem) Key() string {
	return fmt.Sprintf("%d-%s", s.ContestID, s.Index)
}

// UniqueAccepted keeps accepted submissions only and reduces them to one entry
// per (contestId, index). The first submission seen for a key wins; later
// ones are discarded, not merged. Output order follows first appearance.
func UniqueAccepted(subs []Submission) []SolvedProblem {
	seen := make(map[string]struct{})
	var out []SolvedProblem
	for _, sub := range subs {
		if sub.Verdict != VerdictAccepted {
			continue
		}
		sp := SolvedProblem{
			ContestID: sub.ContestID,
			Index:     sub.Index,
			Name:      sub.Name,
			Tags:      append([]string{}, sub.Tags...),
			Rating:    sub.Rating,
			SolvedAt:  sub.CreatedAt,
		}
		if _, dup := seen[sp.Key()]; dup {
			continue
		}
		seen[sp.Key()] = struct{}{}
		out = append(out, sp)
	}
	return out
}

// HasProblem reports whether some record's contest label contains the
// contest id and its problem id equals index. The contest match is a
// substring test, so "Contest 1350" also matches contest 135.
func HasProblem(problems []Problem, contestID int, index string) bool {
	id := strconv.Itoa(contestID)
	for _, p := range problems {
		if strings.Contains(p.Contest, id) && p.ProblemID == index {
			return true
		}
	}
	return false
}

// ContestLabel is the contest label given to synced problems.
func ContestLabel(contestID int) string {
	return fmt.Sprintf("Contest %d", contestID)
}

// MergeSolved appends every solved problem not already present as an
// api-sourced record and returns how many were added. nextID supplies ids.
func (c *CodeforcesState) MergeSolved(solved []SolvedProblem, nextID func() int64) int {
	added := 0
	for _, sp := range solved {
		if HasProblem(c.Problems, sp.ContestID, sp.Index) {
			continue
		}
		c.Problems = append(c.Problems, Problem{
			ID:          nextID(),
			Contest:     ContestLabel(sp.ContestID),
			Division:    ClassifyDivision(sp.ContestID),
			ProblemID:   sp.Index,
			ProblemName: sp.Name,
			DateAdded:   sp.SolvedAt,
			Source:      SourceAPI,
			Rating:      sp.Rating,
			Tags:        sp.Tags,
		})
		added++
	}
	return added
}
