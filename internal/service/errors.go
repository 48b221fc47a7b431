package service

import (
	"errors"

	"github.com/alexanderramin/cptrack/internal/codeforces"
)

var (
	// ErrNotFound is returned when an id or position names nothing.
	ErrNotFound = errors.New("not found")
	// ErrInvalidInput wraps validation failures.
	ErrInvalidInput = errors.New("invalid input")
	// ErrEmptyHandle is returned by sync when no handle is given or remembered.
	ErrEmptyHandle = codeforces.ErrEmptyHandle
)
