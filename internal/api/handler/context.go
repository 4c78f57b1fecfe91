package handler

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/sikeu/finance-api/internal/api/middleware"
)

// actorID returns the id of the authenticated caller. The claims are only
// absent when the route was registered without the Auth middleware.
func actorID(c echo.Context) (string, error) {
	claims, ok := middleware.ClaimsFromContext(c)
	if !ok || claims.UserID == "" {
		return "", echo.NewHTTPError(http.StatusUnauthorized, "missing authentication claims")
	}
	return claims.UserID, nil
}
