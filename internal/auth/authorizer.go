// Package auth covers credentials, tokens and the admin capability check.
package auth

import (
	"context"

	"github.com/trouvaille/lostfound/internal/model"
)

// Authorizer resolves a bearer token to the acting user. Handlers use the
// returned user's IsAdmin flag to gate mutating operations.
type Authorizer interface {
	Authorize(ctx context.Context, token string) (*model.User, error)
}
