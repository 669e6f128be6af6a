package api

import (
	"context"
	"net/http"

	"github.com/trouvaille/lostfound/internal/api/respond"
	"github.com/trouvaille/lostfound/internal/auth"
	"github.com/trouvaille/lostfound/internal/model"
)

type contextKey string

const userContextKey contextKey = "authenticated-user"

// userFrom returns the user the auth middleware attached to the request.
func userFrom(r *http.Request) (*model.User, bool) {
	u, ok := r.Context().Value(userContextKey).(*model.User)
	return u, ok
}

// requireUser resolves the bearer token and attaches the user to the request
// context. Requests without a valid token get 401.
func requireUser(az auth.Authorizer, next http.HandlerFunc) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		token, err := auth.ExtractBearer(r)
		if err != nil {
			respond.WriteUnauthorized(w, "missing bearer token")
			return
		}
		u, err := az.Authorize(r.Context(), token)
		if err != nil {
			respond.WriteUnauthorized(w, "invalid or expired token")
			return
		}
		ctx := context.WithValue(r.Context(), userContextKey, u)
		next(w, r.WithContext(ctx))
	}
}

// requireAdmin is requireUser plus an admin check.
func requireAdmin(az auth.Authorizer, next http.HandlerFunc) http.HandlerFunc {
	return requireUser(az, func(w http.ResponseWriter, r *http.Request) {
		u, ok := userFrom(r)
		if !ok || !u.IsAdmin {
			respond.WriteForbidden(w, "admin privileges required")
			return
		}
		next(w, r)
	})
}
