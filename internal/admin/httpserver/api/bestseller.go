package api

import (
	"encoding/json"
	"errors"
	"net/http"

	"github.com/go-chi/chi/v5"

	"nainikaessentials.in/admin/internal/admin/bestseller"
	"nainikaessentials.in/admin/internal/admin/httpserver/middleware"
)

// BestsellerHandler serves the featured rails CRUD endpoints.
type BestsellerHandler struct {
	svc bestseller.Service
}

// NewBestsellerHandler builds the handler over the given service.
func NewBestsellerHandler(svc bestseller.Service) *BestsellerHandler {
	return &BestsellerHandler{svc: svc}
}

// Mount registers the featured entry routes.
func (h *BestsellerHandler) Mount(r chi.Router) {
	r.Get("/bestsellers", h.list)
	r.Get("/bestsellers/{entryID}", h.get)
	r.Post("/bestsellers", h.create)
	r.Put("/bestsellers/{entryID}", h.update)
	r.Delete("/bestsellers/{entryID}", h.remove)
}

func (h *BestsellerHandler) list(w http.ResponseWriter, r *http.Request) {
	token := middleware.TokenFromContext(r.Context())
	entries, err := h.svc.Entries(r.Context(), token)
	if err != nil {
		respondServiceError(w, err)
		return
	}
	respondJSON(w, http.StatusOK, entries)
}

func (h *BestsellerHandler) get(w http.ResponseWriter, r *http.Request) {
	entryID, ok := urlInt(r, "entryID")
	if !ok {
		respondError(w, http.StatusBadRequest, "invalid entry id")
		return
	}
	token := middleware.TokenFromContext(r.Context())
	entry, err := h.svc.Entry(r.Context(), token, entryID)
	if err != nil {
		h.respondEntryError(w, err)
		return
	}
	respondJSON(w, http.StatusOK, entry)
}

func (h *BestsellerHandler) create(w http.ResponseWriter, r *http.Request) {
	input, ok := h.decodeInput(w, r)
	if !ok {
		return
	}
	token := middleware.TokenFromContext(r.Context())
	created, err := h.svc.Create(r.Context(), token, input)
	if err != nil {
		h.respondEntryError(w, err)
		return
	}
	respondJSON(w, http.StatusCreated, created)
}

func (h *BestsellerHandler) update(w http.ResponseWriter, r *http.Request) {
	entryID, ok := urlInt(r, "entryID")
	if !ok {
		respondError(w, http.StatusBadRequest, "invalid entry id")
		return
	}
	input, ok := h.decodeInput(w, r)
	if !ok {
		return
	}
	token := middleware.TokenFromContext(r.Context())
	updated, err := h.svc.Update(r.Context(), token, entryID, input)
	if err != nil {
		h.respondEntryError(w, err)
		return
	}
	respondJSON(w, http.StatusOK, updated)
}

func (h *BestsellerHandler) remove(w http.ResponseWriter, r *http.Request) {
	entryID, ok := urlInt(r, "entryID")
	if !ok {
		respondError(w, http.StatusBadRequest, "invalid entry id")
		return
	}
	token := middleware.TokenFromContext(r.Context())
	if err := h.svc.Delete(r.Context(), token, entryID); err != nil {
		h.respondEntryError(w, err)
		return
	}
	respondJSON(w, http.StatusOK, map[string]string{"message": "entry deleted"})
}

// decodeInput parses the multipart form the console submits for both rails.
func (h *BestsellerHandler) decodeInput(w http.ResponseWriter, r *http.Request) (bestseller.EntryInput, bool) {
	if err := r.ParseMultipartForm(productFormMemory); err != nil {
		respondError(w, http.StatusBadRequest, "malformed multipart form")
		return bestseller.EntryInput{}, false
	}

	input := bestseller.EntryInput{
		Name:        r.FormValue("name"),
		Category:    r.FormValue("category"),
		Description: r.FormValue("description"),
		Type:        bestseller.Rail(r.FormValue("type")),
	}
	if raw := r.FormValue("variants"); raw != "" {
		if err := json.Unmarshal([]byte(raw), &input.Variants); err != nil {
			respondError(w, http.StatusBadRequest, "invalid variants")
			return bestseller.EntryInput{}, false
		}
	}

	if headers := r.MultipartForm.File["mainImage"]; len(headers) > 0 {
		image, ok := openUpload(w, headers[0])
		if !ok {
			return bestseller.EntryInput{}, false
		}
		input.MainImage = &bestseller.Image{Filename: image.Filename, Reader: image.Reader}
	}
	for _, header := range r.MultipartForm.File["thumbnails"] {
		image, ok := openUpload(w, header)
		if !ok {
			return bestseller.EntryInput{}, false
		}
		input.Thumbnails = append(input.Thumbnails, bestseller.Image{Filename: image.Filename, Reader: image.Reader})
	}
	return input, true
}

func (h *BestsellerHandler) respondEntryError(w http.ResponseWriter, err error) {
	switch {
	case errors.Is(err, bestseller.ErrEntryNotFound):
		respondError(w, http.StatusNotFound, err.Error())
	case errors.Is(err, bestseller.ErrUnknownRail):
		respondError(w, http.StatusBadRequest, err.Error())
	default:
		respondServiceError(w, err)
	}
}
