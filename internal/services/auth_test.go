package services

import (
	"context"
	"testing"
	"time"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/trouvaille/lostfound/internal/auth"
	"github.com/trouvaille/lostfound/internal/store"
	"github.com/trouvaille/lostfound/internal/store/sqlite"
)

func newAuthService(t *testing.T) (*AuthService, store.Store) {
	t.Helper()
	st, err := sqlite.New(":memory:")
	require.NoError(t, err)
	t.Cleanup(func() { _ = st.Close() })
	tokens := auth.NewTokenManager("test-secret", time.Hour)
	return NewAuthService(st.Users(), tokens, zerolog.Nop()), st
}

func TestEnsureAdminIsIdempotent(t *testing.T) {
	svc, st := newAuthService(t)
	ctx := context.Background()

	require.NoError(t, svc.EnsureAdmin(ctx, "admin", "admin123"))
	first, err := st.Users().GetByUsername(ctx, "admin")
	require.NoError(t, err)
	assert.True(t, first.IsAdmin)

	// Second run must not replace the account or its password.
	require.NoError(t, svc.EnsureAdmin(ctx, "admin", "different-password"))
	second, err := st.Users().GetByUsername(ctx, "admin")
	require.NoError(t, err)
	assert.Equal(t, first.ID, second.ID)
	assert.Equal(t, first.PasswordHash, second.PasswordHash)
}

func TestLogin(t *testing.T) {
	svc, _ := newAuthService(t)
	ctx := context.Background()
	require.NoError(t, svc.EnsureAdmin(ctx, "admin", "admin123"))

	token, err := svc.Login(ctx, "admin", "admin123")
	require.NoError(t, err)
	assert.NotEmpty(t, token)

	_, err = svc.Login(ctx, "admin", "wrong")
	assert.ErrorIs(t, err, auth.ErrInvalidCredentials)

	_, err = svc.Login(ctx, "ghost", "admin123")
	assert.ErrorIs(t, err, auth.ErrInvalidCredentials)
}
