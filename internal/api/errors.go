package api

import (
	"errors"
	"net/http"

	"github.com/rs/zerolog/log"

	"github.com/trouvaille/lostfound/internal/api/respond"
	"github.com/trouvaille/lostfound/internal/auth"
	"github.com/trouvaille/lostfound/internal/model"
)

// writeDomainError maps service-layer errors onto HTTP statuses.
func writeDomainError(w http.ResponseWriter, err error) {
	switch {
	case errors.Is(err, model.ErrValidation):
		respond.WriteBadRequest(w, err.Error())
	case errors.Is(err, model.ErrNotFound):
		respond.WriteNotFound(w, "item not found")
	case errors.Is(err, model.ErrForbidden):
		respond.WriteForbidden(w, "not allowed")
	case errors.Is(err, model.ErrConflict):
		respond.WriteError(w, http.StatusConflict, err.Error())
	case errors.Is(err, auth.ErrInvalidCredentials):
		respond.WriteUnauthorized(w, "incorrect username or password")
	case errors.Is(err, auth.ErrInvalidToken), errors.Is(err, auth.ErrMissingToken):
		respond.WriteUnauthorized(w, "invalid or expired token")
	default:
		log.Error().Err(err).Msg("request failed")
		respond.WriteInternalError(w, "internal server error")
	}
}
