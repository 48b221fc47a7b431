package testutil

import (
	"context"
	"sync/atomic"

	"github.com/alexanderramin/cptrack/internal/docstore"
)

// FailingStore wraps a Store and injects errors. When ReadErr is set every
// Get fails with it. When WriteErr is set, the FailOnWrite-th Set or Update
// fails (counted from 1); a FailOnWrite of 0 fails every write.
type FailingStore struct {
	docstore.Store
	ReadErr     error
	WriteErr    error
	FailOnWrite int32

	writes atomic.Int32
}

func (f *FailingStore) Get(ctx context.Context, ref docstore.Ref) (docstore.Snapshot, error) {
	if f.ReadErr != nil {
		return docstore.Snapshot{}, f.ReadErr
	}
	return f.Store.Get(ctx, ref)
}

func (f *FailingStore) Set(ctx context.Context, ref docstore.Ref, fields docstore.Fields, opts ...docstore.SetOption) error {
	if err := f.countWrite(); err != nil {
		return err
	}
	return f.Store.Set(ctx, ref, fields, opts...)
}

func (f *FailingStore) Update(ctx context.Context, ref docstore.Ref, fields docstore.Fields) error {
	if err := f.countWrite(); err != nil {
		return err
	}
	return f.Store.Update(ctx, ref, fields)
}

// Writes returns how many Set and Update calls were attempted.
func (f *FailingStore) Writes() int {
	return int(f.writes.Load())
}

func (f *FailingStore) countWrite() error {
	n := f.writes.Add(1)
	if f.WriteErr == nil {
		return nil
	}
	if f.FailOnWrite == 0 || n == f.FailOnWrite {
		return f.WriteErr
	}
	return nil
}
