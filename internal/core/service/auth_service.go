package service

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/rs/zerolog"

	"github.com/sikeu/finance-api/internal/core/domain"
	"github.com/sikeu/finance-api/internal/core/ports"
)

// AuthDependencies groups the collaborators of AuthService.
// Throttle is optional; a nil throttle disables login rate limiting.
type AuthDependencies struct {
	Users    ports.UserRepository
	Hasher   ports.PasswordHasher
	Tokens   ports.TokenIssuer
	Throttle ports.LoginThrottle
	Log      zerolog.Logger
}

// AuthService implements registration and login.
type AuthService struct {
	users    ports.UserRepository
	hasher   ports.PasswordHasher
	tokens   ports.TokenIssuer
	throttle ports.LoginThrottle
	log      zerolog.Logger
}

func NewAuthService(deps AuthDependencies) *AuthService {
	return &AuthService{
		users:    deps.Users,
		hasher:   deps.Hasher,
		tokens:   deps.Tokens,
		throttle: deps.Throttle,
		log:      deps.Log,
	}
}

func (s *AuthService) Register(ctx context.Context, in ports.RegisterInput) (*domain.User, error) {
	username := strings.TrimSpace(in.Username)
	if username == "" || in.Password == "" {
		return nil, fmt.Errorf("%w: nama_pengguna and kata_sandi are required", domain.ErrValidation)
	}
	role, err := domain.ParseRole(in.Role)
	if err != nil {
		return nil, err
	}

	hash, err := s.hasher.Hash(in.Password)
	if err != nil {
		return nil, err
	}

	now := time.Now().UTC()
	created, err := s.users.Create(ctx, &domain.User{
		ID:           uuid.NewString(),
		Username:     username,
		PasswordHash: hash,
		Role:         role,
		CreatedAt:    now,
		UpdatedAt:    now,
	})
	if err != nil {
		return nil, err
	}

	s.log.Info().Str("user_id", created.ID).Str("role", created.Role.String()).Msg("user registered")
	return created, nil
}

func (s *AuthService) Login(ctx context.Context, username, password string) (string, error) {
	username = strings.TrimSpace(username)
	if username == "" || password == "" {
		return "", fmt.Errorf("%w: nama_pengguna and kata_sandi are required", domain.ErrValidation)
	}

	if s.throttle != nil {
		allowed, err := s.throttle.Allowed(ctx, username)
		if err != nil {
			s.log.Warn().Err(err).Str("username", username).Msg("login throttle check failed, allowing attempt")
		} else if !allowed {
			return "", domain.ErrTooManyAttempts
		}
	}

	user, err := s.users.FindByUsername(ctx, username)
	if err != nil {
		return "", err
	}

	if !s.hasher.Verify(password, user.PasswordHash) {
		s.recordFailure(ctx, username)
		return "", domain.ErrInvalidCredentials
	}

	if s.throttle != nil {
		if err := s.throttle.Reset(ctx, username); err != nil {
			s.log.Warn().Err(err).Str("username", username).Msg("login throttle reset failed")
		}
	}

	token, err := s.tokens.Issue(domain.Claims{UserID: user.ID, Role: user.Role})
	if err != nil {
		return "", fmt.Errorf("issue token: %w", err)
	}
	return token, nil
}

func (s *AuthService) recordFailure(ctx context.Context, username string) {
	if s.throttle == nil {
		return
	}
	if err := s.throttle.RecordFailure(ctx, username); err != nil && !errors.Is(err, context.Canceled) {
		s.log.Warn().Err(err).Str("username", username).Msg("login throttle update failed")
	}
}
