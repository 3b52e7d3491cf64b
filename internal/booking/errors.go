// Package booking implements the transactional core of the service: it
// validates an enrollment request, atomically reserves a seat and persists
// the enrollment record with a verification code.  Error kinds are exposed
// as sentinel values so that handlers can translate each failure into a
// specific HTTP response instead of a generic one.
package booking

import "errors"

// ErrValidation is returned when a required field of the booking request
// is missing or empty.  The caller must correct the input; retrying the
// same request cannot succeed.
var ErrValidation = errors.New("missing required field")

// ErrCourseNotFound is returned when the requested course does not exist.
// Not retryable.
var ErrCourseNotFound = errors.New("course not found")

// ErrNoSeats is returned when the course has no seats left.  Terminal for
// that course since no seat-release path exists.
var ErrNoSeats = errors.New("no seats available")

// ErrDuplicateCode is returned by the store when an enrollment insert
// collides with an existing verification code.  The coordinator handles
// it internally by regenerating the code; it only surfaces to callers
// after repeated collisions, which indicates a randomness problem.
var ErrDuplicateCode = errors.New("verification code already in use")
