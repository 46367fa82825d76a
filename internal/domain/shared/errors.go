// Package shared holds the error values and validation helpers used by every
// domain aggregate.
package shared

import "errors"

var (
	// ErrNilRequest is returned when a required request or identifier is missing entirely.
	ErrNilRequest = errors.New("request must not be nil")
	// ErrInvalidArgument is returned when a request is present but carries invalid values.
	ErrInvalidArgument = errors.New("invalid argument")
	// ErrNotFound is returned by repositories when no row matches an identifier.
	ErrNotFound = errors.New("not found")
)
