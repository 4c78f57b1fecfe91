package ports

import "github.com/sikeu/finance-api/internal/core/domain"

// PasswordHasher hashes and verifies plaintext credentials.
type PasswordHasher interface {
	Hash(plaintext string) (string, error)
	// Verify never fails on mismatched input; it only reports false.
	Verify(plaintext, hash string) bool
}

// TokenIssuer mints signed access tokens.
type TokenIssuer interface {
	Issue(claims domain.Claims) (string, error)
}

// TokenVerifier validates access tokens and returns their claims.
type TokenVerifier interface {
	Verify(token string) (domain.Claims, error)
}
