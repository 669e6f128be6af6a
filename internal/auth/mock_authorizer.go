package auth

import (
	"context"

	"github.com/trouvaille/lostfound/internal/model"
)

// MockAuthorizer maps fixed tokens to fixed users, for handler tests that do
// not want the JWT and user-store machinery.
type MockAuthorizer struct {
	Users map[string]*model.User
}

func NewMockAuthorizer() *MockAuthorizer {
	return &MockAuthorizer{Users: make(map[string]*model.User)}
}

func (m *MockAuthorizer) Authorize(ctx context.Context, token string) (*model.User, error) {
	if token == "" {
		return nil, ErrMissingToken
	}
	if u, ok := m.Users[token]; ok {
		return u, nil
	}
	return nil, ErrInvalidToken
}
