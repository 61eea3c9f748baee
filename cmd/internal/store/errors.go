// Package store defines the error taxonomy shared by the appointment
// storage backends. Callers branch on these with errors.Is so that a
// broken backend is never mistaken for an empty agenda.
package store

import (
	"errors"
	"fmt"
)

var (
	// ErrUnavailable marks a backend that could not be reached or read.
	// Distinct from an empty result on purpose.
	ErrUnavailable = errors.New("appointment store unavailable")

	// ErrConflict is returned by the versioned sheet backend when the
	// table kept changing underneath an add and retries ran out.
	ErrConflict = errors.New("appointment store write conflict")
)

// Unavailable wraps cause so that errors.Is(err, ErrUnavailable) holds
// while the underlying failure stays visible in logs.
func Unavailable(cause error) error {
	return fmt.Errorf("%w: %v", ErrUnavailable, cause)
}
