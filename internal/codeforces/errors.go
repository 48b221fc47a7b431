package codeforces

import (
	"errors"
	"fmt"
)

// ErrNetwork matches every NetworkError.
var ErrNetwork = errors.New("codeforces request failed")

// ErrEmptyHandle is returned before any request when the handle is blank.
var ErrEmptyHandle = errors.New("codeforces handle is required")

// NetworkError reports a transport failure, a non-2xx status, an undecodable
// body or a FAILED envelope. Comment carries the API's explanation if any.
type NetworkError struct {
	StatusCode int
	Comment    string
	Err        error
}

func (e *NetworkError) Error() string {
	switch {
	case e.Comment != "" && e.StatusCode != 0:
		return fmt.Sprintf("codeforces: status %d: %s", e.StatusCode, e.Comment)
	case e.Comment != "":
		return "codeforces: " + e.Comment
	case e.StatusCode != 0:
		return fmt.Sprintf("codeforces: status %d", e.StatusCode)
	case e.Err != nil:
		return "codeforces: " + e.Err.Error()
	default:
		return ErrNetwork.Error()
	}
}

func (e *NetworkError) Unwrap() error { return e.Err }

func (e *NetworkError) Is(target error) bool { return target == ErrNetwork }
