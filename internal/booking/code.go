package booking

import (
	"strings"

	"github.com/google/uuid"
)

// NewVerificationCode returns an 8-character uppercase alphanumeric code
// derived from a random v4 UUID.  UUIDs are generated from a
// cryptographically strong source, so codes are not guessable from one
// another; global uniqueness is enforced at insert time by the store,
// not by construction.
func NewVerificationCode() string {
	return strings.ToUpper(uuid.NewString()[:8])
}
