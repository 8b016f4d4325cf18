package terminal

import (
	"errors"
	"fmt"
)

// Error represents a command failure.
type Error struct {
	// Err is the underlying error.
	Err error

	// Code is the exit code. A value of 0 does not indicate success.
	Code int
}

func (e *Error) Error() string {
	if e.Err != nil {
		return e.Err.Error()
	}
	return fmt.Sprintf("exit status %d", e.Code)
}

func (e *Error) Unwrap() error { return e.Err }

// NotFound returns true if err represents a command that never ran,
// which for a shell means no handler is registered under its name.
//
// An Error is considered "not found" when Err is non-nil and Code is 0.
//
// NotFound uses errors.As to probe the error chain for an Error.
// If no Error exists in the chain, NotFound returns false.
func NotFound(err error) bool {
	var cmdErr *Error
	if !errors.As(err, &cmdErr) {
		return false
	}
	return cmdErr.Err != nil && cmdErr.Code == 0
}
