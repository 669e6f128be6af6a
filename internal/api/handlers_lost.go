package api

import (
	"encoding/json"
	"net/http"

	"github.com/gorilla/mux"

	"github.com/trouvaille/lostfound/internal/api/respond"
	"github.com/trouvaille/lostfound/internal/api/validate"
	"github.com/trouvaille/lostfound/internal/model"
	"github.com/trouvaille/lostfound/internal/services"
)

// LostHandler serves the lost-item endpoints. Lost reports carry no photo so
// the bodies are plain JSON.
type LostHandler struct {
	items *services.ItemService
}

func NewLostHandler(items *services.ItemService) *LostHandler {
	return &LostHandler{items: items}
}

type createLostRequest struct {
	Description string  `json:"description"`
	LostDate    string  `json:"lost_date"`
	LostTime    string  `json:"lost_time"`
	Location    string  `json:"location"`
	ContentInfo *string `json:"content_info"`
}

type updateLostRequest struct {
	Description *string `json:"description"`
	LostDate    *string `json:"lost_date"`
	LostTime    *string `json:"lost_time"`
	Location    *string `json:"location"`
	ContentInfo *string `json:"content_info"`
}

func (h *LostHandler) List(w http.ResponseWriter, r *http.Request) {
	items, err := h.items.ListLostItems(r.Context())
	if err != nil {
		writeDomainError(w, err)
		return
	}
	respond.WriteJSON(w, http.StatusOK, items)
}

func (h *LostHandler) Get(w http.ResponseWriter, r *http.Request) {
	item, err := h.items.GetLostItem(r.Context(), mux.Vars(r)["id"])
	if err != nil {
		writeDomainError(w, err)
		return
	}
	respond.WriteJSON(w, http.StatusOK, item)
}

func (h *LostHandler) Create(w http.ResponseWriter, r *http.Request) {
	var req createLostRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		respond.WriteBadRequest(w, "invalid JSON body")
		return
	}

	if err := validate.Description(req.Description); err != nil {
		respond.WriteBadRequest(w, err.Error())
		return
	}
	if err := validate.Date("lost_date", req.LostDate); err != nil {
		respond.WriteBadRequest(w, err.Error())
		return
	}
	if err := validate.Time("lost_time", req.LostTime); err != nil {
		respond.WriteBadRequest(w, err.Error())
		return
	}

	item, err := h.items.CreateLostItem(r.Context(), services.CreateLostInput{
		Description: req.Description,
		LostDate:    req.LostDate,
		LostTime:    req.LostTime,
		Location:    req.Location,
		ContentInfo: req.ContentInfo,
	})
	if err != nil {
		writeDomainError(w, err)
		return
	}
	respond.WriteJSON(w, http.StatusCreated, item)
}

func (h *LostHandler) Update(w http.ResponseWriter, r *http.Request) {
	var req updateLostRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		respond.WriteBadRequest(w, "invalid JSON body")
		return
	}

	if req.Description != nil {
		if err := validate.Description(*req.Description); err != nil {
			respond.WriteBadRequest(w, err.Error())
			return
		}
	}
	if req.LostDate != nil {
		if err := validate.Date("lost_date", *req.LostDate); err != nil {
			respond.WriteBadRequest(w, err.Error())
			return
		}
	}
	if req.LostTime != nil {
		if err := validate.Time("lost_time", *req.LostTime); err != nil {
			respond.WriteBadRequest(w, err.Error())
			return
		}
	}

	item, err := h.items.UpdateLostItem(r.Context(), mux.Vars(r)["id"], model.LostItemUpdate{
		Description: req.Description,
		LostDate:    req.LostDate,
		LostTime:    req.LostTime,
		Location:    req.Location,
		ContentInfo: req.ContentInfo,
	})
	if err != nil {
		writeDomainError(w, err)
		return
	}
	respond.WriteJSON(w, http.StatusOK, item)
}

func (h *LostHandler) Delete(w http.ResponseWriter, r *http.Request) {
	ok, err := h.items.DeleteLostItem(r.Context(), mux.Vars(r)["id"])
	if err != nil {
		writeDomainError(w, err)
		return
	}
	if !ok {
		respond.WriteNotFound(w, "item not found")
		return
	}
	respond.WriteJSON(w, http.StatusOK, respond.MessageResponse{Detail: "item deleted"})
}
