package middleware

import (
	"errors"
	"net/http"
	"strings"

	"github.com/labstack/echo/v4"

	"github.com/sikeu/finance-api/internal/api/metrics"
	"github.com/sikeu/finance-api/internal/core/domain"
	"github.com/sikeu/finance-api/internal/core/ports"
)

const claimsKey = "claims"

// Auth validates the bearer token and injects its claims into context.
func Auth(verifier ports.TokenVerifier) echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			authHeader := c.Request().Header.Get("Authorization")
			if authHeader == "" {
				metrics.AuthRejectionsTotal.WithLabelValues("missing_token").Inc()
				return echo.NewHTTPError(http.StatusUnauthorized, "missing authorization header").
					SetInternal(domain.ErrMissingToken)
			}

			parts := strings.SplitN(authHeader, " ", 2)
			if len(parts) != 2 || !strings.EqualFold(parts[0], "bearer") || strings.TrimSpace(parts[1]) == "" {
				metrics.AuthRejectionsTotal.WithLabelValues("missing_token").Inc()
				return echo.NewHTTPError(http.StatusUnauthorized, "invalid authorization header").
					SetInternal(domain.ErrMissingToken)
			}

			claims, err := verifier.Verify(strings.TrimSpace(parts[1]))
			if err != nil {
				reason, msg := rejection(err)
				metrics.AuthRejectionsTotal.WithLabelValues(reason).Inc()
				return echo.NewHTTPError(http.StatusUnauthorized, msg).SetInternal(err)
			}

			SetClaims(c, claims)
			return next(c)
		}
	}
}

// SetClaims stores verified claims on the request context.
func SetClaims(c echo.Context, claims domain.Claims) {
	c.Set(claimsKey, claims)
}

// ClaimsFromContext returns the claims stored by Auth.
func ClaimsFromContext(c echo.Context) (domain.Claims, bool) {
	claims, ok := c.Get(claimsKey).(domain.Claims)
	return claims, ok
}

func rejection(err error) (reason, msg string) {
	switch {
	case errors.Is(err, domain.ErrTokenExpired):
		return "token_expired", "token expired"
	case errors.Is(err, domain.ErrInvalidSignature):
		return "invalid_signature", "invalid token"
	default:
		return "malformed_token", "invalid token"
	}
}
