package api

import (
	"net/http"

	"github.com/trouvaille/lostfound/internal/api/respond"
	"github.com/trouvaille/lostfound/internal/services"
)

// MatchHandler exposes the manual relation recompute.
type MatchHandler struct {
	items *services.ItemService
}

func NewMatchHandler(items *services.ItemService) *MatchHandler {
	return &MatchHandler{items: items}
}

// Rematch recomputes the full candidate-match relation on demand. Mutations
// already keep the relation fresh; this exists for recovery after manual
// database edits or a policy change.
func (h *MatchHandler) Rematch(w http.ResponseWriter, r *http.Request) {
	if err := h.items.Rematch(r.Context()); err != nil {
		writeDomainError(w, err)
		return
	}
	respond.WriteJSON(w, http.StatusOK, respond.MessageResponse{Detail: "match relation recomputed"})
}
