package handler

import (
	"errors"
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/sikeu/finance-api/internal/api/metrics"
	"github.com/sikeu/finance-api/internal/core/domain"
	"github.com/sikeu/finance-api/internal/core/ports"
)

type AuthHandler struct {
	authService ports.AuthService
}

func NewAuthHandler(authService ports.AuthService) *AuthHandler {
	return &AuthHandler{authService: authService}
}

type registerRequest struct {
	Username string `json:"nama_pengguna" validate:"required"`
	Password string `json:"kata_sandi" validate:"required"`
	Role     string `json:"peran_pengguna" validate:"required"`
}

type loginRequest struct {
	Username string `json:"nama_pengguna" validate:"required"`
	Password string `json:"kata_sandi" validate:"required"`
}

type loginResponse struct {
	AccessToken string `json:"accessToken"`
}

// messageResponse is the envelope used by login failures and deletions.
type messageResponse struct {
	Message string `json:"message"`
}

// Register creates a new user account.
//
// @Summary      Register a new user
// @Tags         auth
// @Accept       json
// @Produce      json
// @Param        body  body      registerRequest  true  "User registration details"
// @Success      201   {object}  domain.User
// @Failure      400   {object}  map[string]string
// @Failure      409   {object}  map[string]string
// @Failure      500   {object}  map[string]string
// @Router       /register [post]
func (h *AuthHandler) Register(c echo.Context) error {
	var req registerRequest
	if err := c.Bind(&req); err != nil {
		metrics.AuthRegistrationsTotal.WithLabelValues("invalid_payload").Inc()
		return c.JSON(http.StatusBadRequest, map[string]string{"error": "invalid payload"})
	}
	if err := c.Validate(&req); err != nil {
		metrics.AuthRegistrationsTotal.WithLabelValues("invalid_payload").Inc()
		return c.JSON(http.StatusBadRequest, map[string]string{"error": err.Error()})
	}

	user, err := h.authService.Register(c.Request().Context(), ports.RegisterInput{
		Username: req.Username,
		Password: req.Password,
		Role:     req.Role,
	})
	switch {
	case err == nil:
	case errors.Is(err, domain.ErrValidation):
		metrics.AuthRegistrationsTotal.WithLabelValues("invalid_payload").Inc()
		return c.JSON(http.StatusBadRequest, map[string]string{"error": err.Error()})
	case errors.Is(err, domain.ErrUserExists):
		metrics.AuthRegistrationsTotal.WithLabelValues("conflict").Inc()
		return c.JSON(http.StatusConflict, map[string]string{"error": err.Error()})
	default:
		metrics.AuthRegistrationsTotal.WithLabelValues("error").Inc()
		return err
	}

	metrics.AuthRegistrationsTotal.WithLabelValues("success").Inc()
	return c.JSON(http.StatusCreated, user)
}

// Login authenticates a user and returns a signed access token.
//
// @Summary      Login
// @Tags         auth
// @Accept       json
// @Produce      json
// @Param        body  body      loginRequest  true  "Login credentials"
// @Success      200   {object}  loginResponse
// @Failure      400   {object}  map[string]string
// @Failure      401   {object}  messageResponse
// @Failure      404   {object}  messageResponse
// @Failure      429   {object}  map[string]string
// @Router       /login [post]
func (h *AuthHandler) Login(c echo.Context) error {
	var req loginRequest
	if err := c.Bind(&req); err != nil {
		metrics.AuthLoginsTotal.WithLabelValues("invalid_payload").Inc()
		return c.JSON(http.StatusBadRequest, map[string]string{"error": "invalid payload"})
	}
	if err := c.Validate(&req); err != nil {
		metrics.AuthLoginsTotal.WithLabelValues("invalid_payload").Inc()
		return c.JSON(http.StatusBadRequest, map[string]string{"error": err.Error()})
	}

	token, err := h.authService.Login(c.Request().Context(), req.Username, req.Password)
	switch {
	case err == nil:
	case errors.Is(err, domain.ErrValidation):
		metrics.AuthLoginsTotal.WithLabelValues("invalid_payload").Inc()
		return c.JSON(http.StatusBadRequest, map[string]string{"error": err.Error()})
	case errors.Is(err, domain.ErrUserNotFound):
		metrics.AuthLoginsTotal.WithLabelValues("user_not_found").Inc()
		return c.JSON(http.StatusNotFound, messageResponse{Message: "User not found"})
	case errors.Is(err, domain.ErrInvalidCredentials):
		metrics.AuthLoginsTotal.WithLabelValues("invalid_password").Inc()
		return c.JSON(http.StatusUnauthorized, messageResponse{Message: "Invalid password"})
	case errors.Is(err, domain.ErrTooManyAttempts):
		metrics.AuthLoginsTotal.WithLabelValues("throttled").Inc()
		return c.JSON(http.StatusTooManyRequests, map[string]string{"error": err.Error()})
	default:
		metrics.AuthLoginsTotal.WithLabelValues("error").Inc()
		return err
	}

	metrics.AuthLoginsTotal.WithLabelValues("success").Inc()
	return c.JSON(http.StatusOK, loginResponse{AccessToken: token})
}
