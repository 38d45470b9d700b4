package ports

import (
	"context"

	"github.com/sweetshop/sweet-shop-api/internal/core/domain"
)

type AuthService interface {
	// Register creates a user with a hashed password. An empty role defaults
	// to domain.RoleUser.
	Register(ctx context.Context, email, password, role string) (*domain.User, error)
	// Login verifies credentials and returns a signed bearer token.
	Login(ctx context.Context, email, password string) (string, error)
}

// PasswordHasher hashes and verifies user passwords. Hash output is salted,
// so hashing the same plaintext twice yields different strings.
type PasswordHasher interface {
	Hash(plaintext string) (string, error)
	// Verify returns false on mismatch or on a malformed encoded hash; it
	// never returns an error to the caller.
	Verify(plaintext, encoded string) bool
}

// LoginLimiter throttles repeated failed login attempts per account.
type LoginLimiter interface {
	// Allow reports whether a login attempt for the key may proceed.
	Allow(ctx context.Context, key string) (bool, error)
	// RecordFailure counts a failed attempt against the key.
	RecordFailure(ctx context.Context, key string) error
	// Reset clears the failure count after a successful login.
	Reset(ctx context.Context, key string) error
}
