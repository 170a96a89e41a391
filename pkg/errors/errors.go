// Package errors defines the search engine's error taxonomy: two sentinel
// kinds, InvalidArgument and OutOfRange, wrapped with contextual messages.
// All other failure conditions the engine can hit (missing id on remove,
// empty ratings, empty query, empty document body) are defined to be
// non-errors that produce empty results or defaults instead.
package errors

import (
	"errors"
	"fmt"
)

var (
	// ErrInvalidArgument marks a negative or duplicate document id, a
	// control byte in a document or query word, a malformed minus-word
	// (--x, -, "- "), or a stop-word set containing a control byte.
	ErrInvalidArgument = errors.New("invalid argument")

	// ErrOutOfRange marks a positional document-id lookup past the end
	// of (or before the start of) the live id set.
	ErrOutOfRange = errors.New("index out of range")
)

// AppError pairs one of the sentinel kinds above with a human-readable
// message, while still satisfying errors.Is/errors.As against the
// sentinel via Unwrap.
type AppError struct {
	Err     error
	Message string
}

func (e *AppError) Error() string {
	return fmt.Sprintf("%s: %s", e.Err.Error(), e.Message)
}

func (e *AppError) Unwrap() error {
	return e.Err
}

// InvalidArgument builds an AppError wrapping ErrInvalidArgument.
func InvalidArgument(format string, args ...any) *AppError {
	return &AppError{Err: ErrInvalidArgument, Message: fmt.Sprintf(format, args...)}
}

// OutOfRange builds an AppError wrapping ErrOutOfRange.
func OutOfRange(format string, args ...any) *AppError {
	return &AppError{Err: ErrOutOfRange, Message: fmt.Sprintf(format, args...)}
}

// IsInvalidArgument reports whether err (or something it wraps) is ErrInvalidArgument.
func IsInvalidArgument(err error) bool {
	return errors.Is(err, ErrInvalidArgument)
}

// IsOutOfRange reports whether err (or something it wraps) is ErrOutOfRange.
func IsOutOfRange(err error) bool {
	return errors.Is(err, ErrOutOfRange)
}
