package repository

import (
	"bytes"
	"context"
	"encoding/json"

	"github.com/alexanderramin/cptrack/internal/docstore"
	"github.com/alexanderramin/cptrack/internal/domain"
)

// DocCSESProgressRepo implements CSESProgressRepo on progress/cses.
type DocCSESProgressRepo struct {
	store        docstore.Store
	defaultTotal int
}

// NewDocCSESProgressRepo uses defaultTotal when the stored document carries
// no total. A non-positive value means domain.DefaultCSESTotal.
func NewDocCSESProgressRepo(store docstore.Store, defaultTotal int) *DocCSESProgressRepo {
	if defaultTotal <= 0 {
		defaultTotal = domain.DefaultCSESTotal
	}
	return &DocCSESProgressRepo{store: store, defaultTotal: defaultTotal}
}

type storedProgress struct {
	Solved      *int            `json:"solved"`
	Total       *int            `json:"total"`
	Initialized json.RawMessage `json:"initialized"`
}

func (r *DocCSESProgressRepo) LoadOrInit(ctx context.Context) (domain.CSESProgress, error) {
	snap, err := r.store.Get(ctx, CSESProgressRef)
	if err != nil {
		return domain.CSESProgress{}, &StoreReadError{Ref: CSESProgressRef, Err: err}
	}

	if !snap.Exists {
		p := domain.CSESProgress{Solved: 0, Total: r.defaultTotal, Initialized: true}
		if err := r.write(ctx, p); err != nil {
			return p, err
		}
		return p, nil
	}

	var stored storedProgress
	if err := snap.DataTo(&stored); err != nil {
		return domain.CSESProgress{}, &StoreReadError{Ref: CSESProgressRef, Err: err}
	}
	total := r.defaultTotal
	if stored.Total != nil {
		total = *stored.Total
	}

	if !truthy(stored.Initialized) {
		// One-time repair: zero the counter and mark the document.
		p := domain.CSESProgress{Solved: 0, Total: total, Initialized: true}
		if err := r.write(ctx, p, docstore.Merge()); err != nil {
			return p, err
		}
		return p, nil
	}

	p := domain.CSESProgress{Total: total, Initialized: true}
	if stored.Solved != nil {
		p.Solved = *stored.Solved
	}
	p.Clamp()
	return p, nil
}

func (r *DocCSESProgressRepo) SetSolved(ctx context.Context, solved int) error {
	fields, err := docstore.EncodeFields(map[string]int{"solved": solved})
	if err != nil {
		return &StoreWriteError{Ref: CSESProgressRef, Err: err}
	}
	if err := r.store.Update(ctx, CSESProgressRef, fields); err != nil {
		return &StoreWriteError{Ref: CSESProgressRef, Err: err}
	}
	return nil
}

func (r *DocCSESProgressRepo) write(ctx context.Context, p domain.CSESProgress, opts ...docstore.SetOption) error {
	fields, err := docstore.EncodeFields(p)
	if err != nil {
		return &StoreWriteError{Ref: CSESProgressRef, Err: err}
	}
	if err := r.store.Set(ctx, CSESProgressRef, fields, opts...); err != nil {
		return &StoreWriteError{Ref: CSESProgressRef, Err: err}
	}
	return nil
}

// truthy reports whether a raw JSON value is truthy: absent, null, false, 0
// and "" are not.
func truthy(raw json.RawMessage) bool {
	raw = bytes.TrimSpace(raw)
	if len(raw) == 0 {
		return false
	}
	var v any
	if err := json.Unmarshal(raw, &v); err != nil {
		return false
	}
	switch x := v.(type) {
	case nil:
		return false
	case bool:
		return x
	case float64:
		return x != 0
	case string:
		return x != ""
	default:
		return true
	}
}

var _ CSESProgressRepo = (*DocCSESProgressRepo)(nil)
