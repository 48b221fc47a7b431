// Package docstore is a small document store addressed by collection and
// document id. Documents are flat JSON objects; each top-level field is kept
// as raw JSON so callers can merge at field granularity.
package docstore

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
)

// ErrNotFound is returned by Update when the document does not exist.
var ErrNotFound = errors.New("document not found")

// Ref addresses one document.
type Ref struct {
	Collection string
	ID         string
}

func (r Ref) String() string {
	return r.Collection + "/" + r.ID
}

// Fields holds a document's top-level fields as raw JSON values.
type Fields map[string]json.RawMessage

// EncodeFields marshals v, which must encode to a JSON object, into Fields.
func EncodeFields(v any) (Fields, error) {
	raw, err := json.Marshal(v)
	if err != nil {
		return nil, fmt.Errorf("encoding document: %w", err)
	}
	var f Fields
	if err := json.Unmarshal(raw, &f); err != nil {
		return nil, fmt.Errorf("document is not a JSON object: %w", err)
	}
	if f == nil {
		f = Fields{}
	}
	return f, nil
}

// Snapshot is the result of a Get. Fields is nil when Exists is false.
type Snapshot struct {
	Ref    Ref
	Exists bool
	Fields Fields
}

// DataTo decodes the snapshot's fields into v.
func (s Snapshot) DataTo(v any) error {
	if !s.Exists {
		return fmt.Errorf("decoding %s: %w", s.Ref, ErrNotFound)
	}
	raw, err := json.Marshal(s.Fields)
	if err != nil {
		return fmt.Errorf("decoding %s: %w", s.Ref, err)
	}
	if err := json.Unmarshal(raw, v); err != nil {
		return fmt.Errorf("decoding %s: %w", s.Ref, err)
	}
	return nil
}

type setOptions struct {
	merge bool
}

// SetOption configures a Set call.
type SetOption func(*setOptions)

// Merge makes Set keep stored fields that are not being written.
func Merge() SetOption {
	return func(o *setOptions) { o.merge = true }
}

func applySetOptions(opts []SetOption) setOptions {
	var o setOptions
	for _, opt := range opts {
		opt(&o)
	}
	return o
}

// Store is a strongly consistent per-document key-value store. There are no
// cross-document transactions.
type Store interface {
	// Get reads a document. A missing document is not an error.
	Get(ctx context.Context, ref Ref) (Snapshot, error)
	// Set writes fields, replacing the whole document unless Merge is given.
	// The document is created when absent.
	Set(ctx context.Context, ref Ref, fields Fields, opts ...SetOption) error
	// Update overwrites the given fields of an existing document and returns
	// ErrNotFound when it does not exist.
	Update(ctx context.Context, ref Ref, fields Fields) error
	Close() error
}

// mergeFields overlays src onto a copy of dst.
func mergeFields(dst, src Fields) Fields {
	out := make(Fields, len(dst)+len(src))
	for k, v := range dst {
		out[k] = v
	}
	for k, v := range src {
		out[k] = v
	}
	return out
}

func encodeBody(f Fields) (string, error) {
	if f == nil {
		f = Fields{}
	}
	raw, err := json.Marshal(f)
	if err != nil {
		return "", err
	}
	return string(raw), nil
}

func decodeBody(body []byte) (Fields, error) {
	f := Fields{}
	if err := json.Unmarshal(body, &f); err != nil {
		return nil, err
	}
	return f, nil
}
