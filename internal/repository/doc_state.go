package repository

import (
	"context"
	"encoding/json"

	"github.com/alexanderramin/cptrack/internal/docstore"
	"github.com/alexanderramin/cptrack/internal/domain"
)

// knownStateKeys are the top-level fields AppState models.
var knownStateKeys = map[string]bool{
	"cses":       true,
	"codeforces": true,
	"courses":    true,
	"routine":    true,
	"theme":      true,
}

// DocStateRepo implements StateRepo on the state/userState document.
type DocStateRepo struct {
	store docstore.Store
}

func NewDocStateRepo(store docstore.Store) *DocStateRepo {
	return &DocStateRepo{store: store}
}

func (r *DocStateRepo) Load(ctx context.Context, defaults domain.AppState) (domain.AppState, bool, error) {
	snap, err := r.store.Get(ctx, StateRef)
	if err != nil {
		return defaults, false, &StoreReadError{Ref: StateRef, Err: err}
	}
	if !snap.Exists {
		return defaults, false, nil
	}

	base, err := docstore.EncodeFields(defaults)
	if err != nil {
		return defaults, true, &StoreReadError{Ref: StateRef, Err: err}
	}
	extra := map[string]json.RawMessage{}
	for k, v := range snap.Fields {
		// Stored top-level values win wholesale, nested values included.
		base[k] = v
		if !knownStateKeys[k] {
			extra[k] = v
		}
	}

	var st domain.AppState
	if err := (docstore.Snapshot{Ref: StateRef, Exists: true, Fields: base}).DataTo(&st); err != nil {
		return defaults, true, &StoreReadError{Ref: StateRef, Err: err}
	}
	normalizeState(&st, defaults)
	if len(extra) > 0 {
		st.Extra = extra
	}
	return st, true, nil
}

func (r *DocStateRepo) Save(ctx context.Context, st domain.AppState) error {
	fields, err := docstore.EncodeFields(st)
	if err != nil {
		return &StoreWriteError{Ref: StateRef, Err: err}
	}
	for k, v := range st.Extra {
		if _, modeled := fields[k]; !modeled {
			fields[k] = v
		}
	}
	if err := r.store.Set(ctx, StateRef, fields); err != nil {
		return &StoreWriteError{Ref: StateRef, Err: err}
	}
	return nil
}

// normalizeState replaces stored nulls with empty collections so callers can
// append and assign without nil checks.
func normalizeState(st *domain.AppState, defaults domain.AppState) {
	if st.Courses == nil {
		st.Courses = map[string]domain.CourseProgress{}
	}
	if st.CSES.Problems == nil {
		st.CSES.Problems = []domain.CSESProblem{}
	}
	if st.Codeforces.Problems == nil {
		st.Codeforces.Problems = []domain.Problem{}
	}
	if st.Routine.Days == nil {
		st.Routine.Days = []domain.RoutineDay{}
	}
	if st.Theme != domain.ThemeLight && st.Theme != domain.ThemeDark {
		st.Theme = defaults.Theme
	}
}

var _ StateRepo = (*DocStateRepo)(nil)
