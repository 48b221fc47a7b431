package repository

import (
	"errors"
	"fmt"

	"github.com/alexanderramin/cptrack/internal/docstore"
)

var (
	// ErrStoreRead matches every StoreReadError.
	ErrStoreRead = errors.New("store read failed")
	// ErrStoreWrite matches every StoreWriteError.
	ErrStoreWrite = errors.New("store write failed")
)

// StoreReadError reports a failed or undecodable document read.
type StoreReadError struct {
	Ref docstore.Ref
	Err error
}

func (e *StoreReadError) Error() string {
	return fmt.Sprintf("reading %s: %v", e.Ref, e.Err)
}

func (e *StoreReadError) Unwrap() error { return e.Err }

func (e *StoreReadError) Is(target error) bool { return target == ErrStoreRead }

// StoreWriteError reports a failed document write.
type StoreWriteError struct {
	Ref docstore.Ref
	Err error
}

func (e *StoreWriteError) Error() string {
	return fmt.Sprintf("writing %s: %v", e.Ref, e.Err)
}

func (e *StoreWriteError) Unwrap() error { return e.Err }

func (e *StoreWriteError) Is(target error) bool { return target == ErrStoreWrite }
