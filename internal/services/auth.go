package services

import (
	"context"
	"errors"

	"github.com/rs/zerolog"

	"github.com/trouvaille/lostfound/internal/auth"
	"github.com/trouvaille/lostfound/internal/model"
	"github.com/trouvaille/lostfound/internal/store"
)

// AuthService issues tokens and bootstraps the initial admin account.
type AuthService struct {
	users  store.Users
	tokens *auth.TokenManager
	log    zerolog.Logger
}

func NewAuthService(users store.Users, tokens *auth.TokenManager, log zerolog.Logger) *AuthService {
	return &AuthService{users: users, tokens: tokens, log: log}
}

// Login verifies the credentials and returns a signed token. Unknown users
// and wrong passwords are indistinguishable to the caller.
func (s *AuthService) Login(ctx context.Context, username, password string) (string, error) {
	u, err := s.users.GetByUsername(ctx, username)
	if errors.Is(err, model.ErrNotFound) {
		return "", auth.ErrInvalidCredentials
	}
	if err != nil {
		return "", err
	}
	if !auth.VerifyPassword(u.PasswordHash, password) {
		return "", auth.ErrInvalidCredentials
	}
	return s.tokens.Generate(u)
}

// EnsureAdmin creates the admin user on first startup. Subsequent runs are
// no-ops so a changed password env var never overwrites an existing account.
func (s *AuthService) EnsureAdmin(ctx context.Context, username, password string) error {
	_, err := s.users.GetByUsername(ctx, username)
	if err == nil {
		return nil
	}
	if !errors.Is(err, model.ErrNotFound) {
		return err
	}

	hash, err := auth.HashPassword(password)
	if err != nil {
		return err
	}
	if _, err := s.users.Create(ctx, &model.User{
		Username:     username,
		PasswordHash: hash,
		IsAdmin:      true,
	}); err != nil {
		return err
	}
	s.log.Info().Str("username", username).Msg("admin user created")
	return nil
}
