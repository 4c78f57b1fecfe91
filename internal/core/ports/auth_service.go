package ports

import (
	"context"

	"github.com/sikeu/finance-api/internal/core/domain"
)

// RegisterInput carries the registration payload.
type RegisterInput struct {
	Username string
	Password string
	Role     string
}

type AuthService interface {
	Register(ctx context.Context, input RegisterInput) (*domain.User, error)
	Login(ctx context.Context, username, password string) (string, error)
}
