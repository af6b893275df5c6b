package auth

import (
	"time"

	"github.com/google/uuid"
)

// TokenTTL is the fixed lifetime of an issued token. There is no sliding
// expiry and no refresh: a token older than this is rejected on sight.
const TokenTTL = 48 * time.Hour

// NewTokenValue returns an opaque, unguessable token value.
func NewTokenValue() string {
	return uuid.NewString()
}

// TokenValid reports whether a token issued at issuedAt is still valid at
// now. A token aged exactly TokenTTL counts as expired.
func TokenValid(issuedAt, now time.Time) bool {
	return now.Sub(issuedAt) < TokenTTL
}
