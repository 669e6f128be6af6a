package api

import (
	"io"
	"net/http"

	"github.com/gorilla/mux"

	"github.com/trouvaille/lostfound/internal/api/respond"
	"github.com/trouvaille/lostfound/internal/api/validate"
	"github.com/trouvaille/lostfound/internal/services"
)

// maxImageBytes bounds the multipart memory buffer for item photos.
const maxImageBytes = 10 << 20

// FoundHandler serves the found-item endpoints. Creates and updates arrive as
// multipart forms so a photo can ride along with the fields.
type FoundHandler struct {
	items *services.ItemService
}

func NewFoundHandler(items *services.ItemService) *FoundHandler {
	return &FoundHandler{items: items}
}

func (h *FoundHandler) List(w http.ResponseWriter, r *http.Request) {
	items, err := h.items.ListFoundItems(r.Context())
	if err != nil {
		writeDomainError(w, err)
		return
	}
	respond.WriteJSON(w, http.StatusOK, items)
}

func (h *FoundHandler) Get(w http.ResponseWriter, r *http.Request) {
	item, err := h.items.GetFoundItem(r.Context(), mux.Vars(r)["id"])
	if err != nil {
		writeDomainError(w, err)
		return
	}
	respond.WriteJSON(w, http.StatusOK, item)
}

func (h *FoundHandler) Create(w http.ResponseWriter, r *http.Request) {
	if err := r.ParseMultipartForm(maxImageBytes); err != nil {
		respond.WriteBadRequest(w, "expected multipart form data")
		return
	}

	in := services.CreateFoundInput{
		Description: r.FormValue("description"),
		FoundDate:   r.FormValue("found_date"),
		FoundTime:   r.FormValue("found_time"),
		Location:    r.FormValue("location"),
	}
	if v := r.FormValue("content_info"); v != "" {
		in.ContentInfo = &v
	}

	if err := validate.Description(in.Description); err != nil {
		respond.WriteBadRequest(w, err.Error())
		return
	}
	if err := validate.Date("found_date", in.FoundDate); err != nil {
		respond.WriteBadRequest(w, err.Error())
		return
	}
	if err := validate.Time("found_time", in.FoundTime); err != nil {
		respond.WriteBadRequest(w, err.Error())
		return
	}

	img, err := readImage(r)
	if err != nil {
		respond.WriteBadRequest(w, err.Error())
		return
	}
	in.Image = img

	item, err := h.items.CreateFoundItem(r.Context(), in)
	if err != nil {
		writeDomainError(w, err)
		return
	}
	respond.WriteJSON(w, http.StatusCreated, item)
}

func (h *FoundHandler) Update(w http.ResponseWriter, r *http.Request) {
	if err := r.ParseMultipartForm(maxImageBytes); err != nil {
		respond.WriteBadRequest(w, "expected multipart form data")
		return
	}

	upd := foundUpdateFromForm(r)
	if upd.Description != nil {
		if err := validate.Description(*upd.Description); err != nil {
			respond.WriteBadRequest(w, err.Error())
			return
		}
	}
	if upd.FoundDate != nil {
		if err := validate.Date("found_date", *upd.FoundDate); err != nil {
			respond.WriteBadRequest(w, err.Error())
			return
		}
	}
	if upd.FoundTime != nil {
		if err := validate.Time("found_time", *upd.FoundTime); err != nil {
			respond.WriteBadRequest(w, err.Error())
			return
		}
	}

	img, err := readImage(r)
	if err != nil {
		respond.WriteBadRequest(w, err.Error())
		return
	}

	item, err := h.items.UpdateFoundItem(r.Context(), mux.Vars(r)["id"], upd, img)
	if err != nil {
		writeDomainError(w, err)
		return
	}
	respond.WriteJSON(w, http.StatusOK, item)
}

func (h *FoundHandler) Delete(w http.ResponseWriter, r *http.Request) {
	ok, err := h.items.DeleteFoundItem(r.Context(), mux.Vars(r)["id"])
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

// readImage pulls the optional "image" part out of a parsed multipart form.
// A missing part is not an error.
func readImage(r *http.Request) (*services.ImageUpload, error) {
	file, header, err := r.FormFile("image")
	if err == http.ErrMissingFile {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	defer func() { _ = file.Close() }()

	data, err := io.ReadAll(io.LimitReader(file, maxImageBytes+1))
	if err != nil {
		return nil, err
	}
	if len(data) > maxImageBytes {
		return nil, errImageTooLarge
	}
	return &services.ImageUpload{
		Data:        data,
		ContentType: header.Header.Get("Content-Type"),
		Filename:    header.Filename,
	}, nil
}
