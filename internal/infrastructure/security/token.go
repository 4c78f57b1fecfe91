package security

import (
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/golang-jwt/jwt/v5"

	"github.com/sikeu/finance-api/internal/core/domain"
)

// accessClaims is the JWT payload of an access token.
type accessClaims struct {
	UserID string `json:"id_pengguna"`
	Role   string `json:"peran_pengguna"`
	jwt.RegisteredClaims
}

// TokenManager issues and verifies HS256 access tokens.
// A zero ttl issues tokens without an exp claim.
type TokenManager struct {
	secret []byte
	ttl    time.Duration
	now    func() time.Time
}

// NewTokenManager fails when the secret is blank so that the process never
// issues tokens it cannot verify.
func NewTokenManager(secret string, ttl time.Duration) (*TokenManager, error) {
	if strings.TrimSpace(secret) == "" {
		return nil, errors.New("token secret must not be empty")
	}
	if ttl < 0 {
		ttl = 0
	}
	return &TokenManager{secret: []byte(secret), ttl: ttl, now: time.Now}, nil
}

func (tm *TokenManager) Issue(claims domain.Claims) (string, error) {
	now := tm.now()
	payload := accessClaims{
		UserID: claims.UserID,
		Role:   claims.Role.String(),
		RegisteredClaims: jwt.RegisteredClaims{
			IssuedAt: jwt.NewNumericDate(now),
		},
	}
	if tm.ttl > 0 {
		payload.ExpiresAt = jwt.NewNumericDate(now.Add(tm.ttl))
	}

	signed, err := jwt.NewWithClaims(jwt.SigningMethodHS256, payload).SignedString(tm.secret)
	if err != nil {
		return "", fmt.Errorf("sign token: %w", err)
	}
	return signed, nil
}

func (tm *TokenManager) Verify(token string) (domain.Claims, error) {
	var payload accessClaims
	_, err := jwt.ParseWithClaims(token, &payload,
		func(*jwt.Token) (interface{}, error) { return tm.secret, nil },
		jwt.WithValidMethods([]string{jwt.SigningMethodHS256.Alg()}),
		jwt.WithTimeFunc(tm.now),
	)
	switch {
	case err == nil:
	case errors.Is(err, jwt.ErrTokenExpired):
		return domain.Claims{}, fmt.Errorf("%w: %w", domain.ErrTokenExpired, err)
	case errors.Is(err, jwt.ErrTokenSignatureInvalid):
		return domain.Claims{}, fmt.Errorf("%w: %w", domain.ErrInvalidSignature, err)
	default:
		return domain.Claims{}, fmt.Errorf("%w: %w", domain.ErrMalformedToken, err)
	}

	if payload.UserID == "" {
		return domain.Claims{}, fmt.Errorf("%w: missing id_pengguna", domain.ErrMalformedToken)
	}
	role, err := domain.ParseRole(payload.Role)
	if err != nil {
		return domain.Claims{}, fmt.Errorf("%w: %w", domain.ErrMalformedToken, err)
	}
	return domain.Claims{UserID: payload.UserID, Role: role}, nil
}
