package domain

import (
	"encoding/json"
	"time"
)

// DateLayout is the calendar-date format used for routine days.
const DateLayout = "2006-01-02"

// DefaultCSESTotal is the size of the CSES problem set.
const DefaultCSESTotal = 400

// AppState is the aggregate mirrored to the state/userState document.
type AppState struct {
	CSES       CSESState                 `json:"cses"`
	Codeforces CodeforcesState           `json:"codeforces"`
	Courses    map[string]CourseProgress `json:"courses"`
	Routine    RoutineState              `json:"routine"`
	Theme      Theme                     `json:"theme"`

	// Extra holds stored top-level fields this version does not model.
	// They are written back unchanged on save.
	Extra map[string]json.RawMessage `json:"-"`
}

type CSESState struct {
	Problems []CSESProblem `json:"problems"`
	Solved   int           `json:"solved"`
}

type CodeforcesState struct {
	Problems []Problem `json:"problems"`
	Contests int       `json:"contests"`
	Username string    `json:"username"`
	// LastSync is nil until the first successful sync.
	LastSync *time.Time `json:"lastSync"`
}

type RoutineState struct {
	Days []RoutineDay `json:"days"`
}

// DefaultState returns the aggregate a fresh session starts from.
func DefaultState(courses []CourseSpec) AppState {
	progress := make(map[string]CourseProgress, len(courses))
	for _, c := range courses {
		progress[c.Key] = CourseProgress{Completed: 0, Total: c.Total}
	}
	return AppState{
		CSES:       CSESState{Problems: []CSESProblem{}},
		Codeforces: CodeforcesState{Problems: []Problem{}},
		Courses:    progress,
		Routine:    RoutineState{Days: []RoutineDay{}},
		Theme:      ThemeLight,
	}
}

// Clone returns a deep copy so views can read state without holding locks.
func (s AppState) Clone() AppState {
	out := s

	out.CSES.Problems = make([]CSESProblem, len(s.CSES.Problems))
	copy(out.CSES.Problems, s.CSES.Problems)

	out.Codeforces.Problems = make([]Problem, len(s.Codeforces.Problems))
	for i, p := range s.Codeforces.Problems {
		out.Codeforces.Problems[i] = p.Clone()
	}
	if s.Codeforces.LastSync != nil {
		t := *s.Codeforces.LastSync
		out.Codeforces.LastSync = &t
	}

	if s.Courses != nil {
		out.Courses = make(map[string]CourseProgress, len(s.Courses))
		for k, v := range s.Courses {
			out.Courses[k] = v
		}
	}

	out.Routine.Days = make([]RoutineDay, len(s.Routine.Days))
	for i, d := range s.Routine.Days {
		out.Routine.Days[i] = d.clone()
	}

	if s.Extra != nil {
		out.Extra = make(map[string]json.RawMessage, len(s.Extra))
		for k, v := range s.Extra {
			out.Extra[k] = append(json.RawMessage(nil), v...)
		}
	}
	return out
}
