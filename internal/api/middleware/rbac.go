package middleware

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/sikeu/finance-api/internal/api/metrics"
	"github.com/sikeu/finance-api/internal/core/domain"
)

// RequireRole lets the request through only when the authenticated role is
// exactly the required one. It must run after Auth.
func RequireRole(required domain.Role) echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			claims, ok := ClaimsFromContext(c)
			if !ok {
				return echo.NewHTTPError(http.StatusUnauthorized, "missing authentication claims")
			}
			if !claims.HasRole(required) {
				metrics.AuthRejectionsTotal.WithLabelValues("forbidden").Inc()
				return c.JSON(http.StatusForbidden, map[string]string{"error": "forbidden"})
			}
			return next(c)
		}
	}
}
