package apperrors

import (
	"errors"
	"fmt"
)

// Classification sentinels. Domain errors are wrapped with exactly one of
// these so callers can branch with errors.Is regardless of the underlying
// cause.
var (
	// ErrValidation marks bad input data; never retried.
	ErrValidation = errors.New("validation error")
	// ErrRetriable marks transient provider failures (timeout, transport,
	// 5xx); the operation is safe to retry for that single item.
	ErrRetriable = errors.New("retriable provider error")
	// ErrNotFound marks an unknown entity, local or provider-side.
	ErrNotFound = errors.New("not found")
	// ErrInvariant marks a data-integrity violation such as a disallowed
	// status regression; never auto-corrected.
	ErrInvariant = errors.New("invariant violation")
	// ErrStore marks persistence-layer failure; fatal for the current run.
	ErrStore = errors.New("store error")
)

// Validation creates a validation error with a formatted message
func Validation(format string, args ...interface{}) error {
	return fmt.Errorf("%w: %s", ErrValidation, fmt.Sprintf(format, args...))
}

// Retriable wraps a transient provider failure
func Retriable(err error) error {
	return fmt.Errorf("%w: %v", ErrRetriable, err)
}

// NotFound creates a not-found error with a formatted message
func NotFound(format string, args ...interface{}) error {
	return fmt.Errorf("%w: %s", ErrNotFound, fmt.Sprintf(format, args...))
}

// Invariant creates an invariant-violation error with a formatted message
func Invariant(format string, args ...interface{}) error {
	return fmt.Errorf("%w: %s", ErrInvariant, fmt.Sprintf(format, args...))
}

// Store wraps a persistence failure
func Store(err error) error {
	return fmt.Errorf("%w: %v", ErrStore, err)
}

// IsValidation reports whether err is a validation error
func IsValidation(err error) bool { return errors.Is(err, ErrValidation) }

// IsRetriable reports whether err is safe to retry
func IsRetriable(err error) bool { return errors.Is(err, ErrRetriable) }

// IsNotFound reports whether err is a not-found error
func IsNotFound(err error) bool { return errors.Is(err, ErrNotFound) }

// IsInvariant reports whether err is an invariant violation
func IsInvariant(err error) bool { return errors.Is(err, ErrInvariant) }

// IsStore reports whether err is a persistence failure
func IsStore(err error) bool { return errors.Is(err, ErrStore) }
