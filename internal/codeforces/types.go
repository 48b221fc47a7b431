package codeforces

import (
	"encoding/json"
	"time"

	"github.com/alexanderramin/cptrack/internal/domain"
)

// envelope is the wrapper every API response uses.
type envelope struct {
	Status  string          `json:"status"`
	Comment string          `json:"comment"`
	Result  json.RawMessage `json:"result"`
}

// Submission is one entry of a user.status result.
type Submission struct {
	ID                  int64   `json:"id"`
	ContestID           int     `json:"contestId"`
	CreationTimeSeconds int64   `json:"creationTimeSeconds"`
	Problem             Problem `json:"problem"`
	Verdict             string  `json:"verdict"`
}

type Problem struct {
	ContestID int      `json:"contestId"`
	Index     string   `json:"index"`
	Name      string   `json:"name"`
	Rating    *int     `json:"rating"`
	Tags      []string `json:"tags"`
}

// ToDomain converts the wire form. The problem's contest id is preferred
// because gym and problemset submissions may omit the outer one.
func (s Submission) ToDomain() domain.Submission {
	contest := s.Problem.ContestID
	if contest == 0 {
		contest = s.ContestID
	}
	return domain.Submission{
		ContestID: contest,
		Index:     s.Problem.Index,
		Name:      s.Problem.Name,
		Tags:      append([]string(nil), s.Problem.Tags...),
		Rating:    s.Problem.Rating,
		Verdict:   s.Verdict,
		CreatedAt: time.Unix(s.CreationTimeSeconds, 0).UTC(),
	}
}
