package ports

import (
	"context"

	"github.com/sikeu/finance-api/internal/core/domain"
)

// UserRepository defines the persistence contract for credentials.
// Create must enforce username uniqueness atomically and report collisions
// as domain.ErrUserExists; FindByUsername reports domain.ErrUserNotFound.
type UserRepository interface {
	Create(ctx context.Context, user *domain.User) (*domain.User, error)
	FindByUsername(ctx context.Context, username string) (*domain.User, error)
}
