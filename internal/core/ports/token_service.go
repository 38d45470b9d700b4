package ports

import (
	"errors"
	"time"
)

var ErrTokenInvalid = errors.New("invalid token")
var ErrTokenExpired = errors.New("token expired")

// Claims is the decoded payload of a verified bearer token. Role reflects
// the user's role at issuance time; it is not re-checked against the store.
type Claims struct {
	Subject string
	Role    string
}

// TokenService issues and verifies signed, self-expiring bearer tokens.
type TokenService interface {
	// Issue signs a token embedding the claims plus an absolute expiry.
	// A non-positive ttl falls back to the service default.
	Issue(claims Claims, ttl time.Duration) (string, error)
	// Verify checks the signature and expiry. It fails with ErrTokenExpired
	// past expiry and ErrTokenInvalid for any other defect.
	Verify(token string) (Claims, error)
}
