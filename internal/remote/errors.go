package remote

import (
	"errors"
	"fmt"
	"strings"
)

// Class tags an error from the remote boundary so nothing above this package
// ever re-parses error text.
type Class int

const (
	// ClassTransient is a network-level failure worth retrying
	ClassTransient Class = iota

	// ClassConflict is a remote/local state disagreement needing recovery
	ClassConflict

	// ClassInvalid is a locally rejected request that never reached the network
	ClassInvalid

	// ClassFatal is anything unrecognized; propagated without retry or recovery
	ClassFatal
)

// String returns a human-readable name for the class
func (c Class) String() string {
	switch c {
	case ClassTransient:
		return "transient"
	case ClassConflict:
		return "conflict"
	case ClassInvalid:
		return "invalid"
	default:
		return "fatal"
	}
}

// Error is the tagged variant of a remote API failure
type Error struct {
	// Class is the error category
	Class Class

	// Attempts is how many attempts were made before surfacing, zero if
	// the error was not retried
	Attempts int

	// Err is the underlying error
	Err error
}

// Error implements the error interface
func (e *Error) Error() string {
	if e.Attempts > 0 {
		return fmt.Sprintf("%s error after %d attempts: %v", e.Class, e.Attempts, e.Err)
	}
	return fmt.Sprintf("%s error: %v", e.Class, e.Err)
}

// Unwrap returns the underlying error
func (e *Error) Unwrap() error {
	return e.Err
}

// Define errors
var (
	ErrMutationInFlight = errors.New("another mutation is already in flight")
)

// The remote service exposes no structured error codes; these substrings are
// the sole classification signal.
var (
	transientMarkers = []string{
		"connection closed",
		"connection reset",
		"timeout",
		"socket",
		"network",
	}

	joinConflictMarkers = []string{
		"already in game session",
		"player already in",
		"already in room",
	}

	membershipConflictMarkers = []string{
		"not in game session",
		"player not in",
	}
)

func matchesAny(text string, markers []string) bool {
	for _, marker := range markers {
		if strings.Contains(text, marker) {
			return true
		}
	}
	return false
}

// Classify converts a raw error from the remote API into a tagged Error.
// Already-classified errors pass through unchanged.
func Classify(err error) *Error {
	var classified *Error
	if errors.As(err, &classified) {
		return classified
	}

	text := strings.ToLower(err.Error())
	switch {
	case matchesAny(text, transientMarkers):
		return &Error{Class: ClassTransient, Err: err}
	case matchesAny(text, joinConflictMarkers), matchesAny(text, membershipConflictMarkers):
		return &Error{Class: ClassConflict, Err: err}
	default:
		return &Error{Class: ClassFatal, Err: err}
	}
}

// IsClass reports whether err is a tagged remote error of the given class
func IsClass(err error, class Class) bool {
	var classified *Error
	if !errors.As(err, &classified) {
		return false
	}
	return classified.Class == class
}

// IsJoinConflict reports whether err is the "already in session" conflict
func IsJoinConflict(err error) bool {
	var classified *Error
	if !errors.As(err, &classified) || classified.Class != ClassConflict {
		return false
	}
	return matchesAny(strings.ToLower(classified.Err.Error()), joinConflictMarkers)
}

// IsMembershipConflict reports whether err is the "not in session" conflict
func IsMembershipConflict(err error) bool {
	var classified *Error
	if !errors.As(err, &classified) || classified.Class != ClassConflict {
		return false
	}
	return matchesAny(strings.ToLower(classified.Err.Error()), membershipConflictMarkers)
}

// NewInvalid wraps a locally rejected request in the Invalid class
func NewInvalid(err error) *Error {
	return &Error{Class: ClassInvalid, Err: err}
}
