package api

import (
	"errors"
	"net/http"

	"github.com/go-chi/chi/v5"

	"nainikaessentials.in/admin/internal/admin/contact"
	"nainikaessentials.in/admin/internal/admin/httpserver/middleware"
)

// ContactHandler serves the contact inbox endpoints.
type ContactHandler struct {
	svc contact.Service
}

// NewContactHandler builds the handler over the given service.
func NewContactHandler(svc contact.Service) *ContactHandler {
	return &ContactHandler{svc: svc}
}

// Mount registers the inbox routes.
func (h *ContactHandler) Mount(r chi.Router) {
	r.Get("/contact/messages", h.list)
	r.Put("/contact/messages/{messageID}/status", h.setStatus)
	r.Delete("/contact/messages/{messageID}", h.remove)
}

func (h *ContactHandler) list(w http.ResponseWriter, r *http.Request) {
	token := middleware.TokenFromContext(r.Context())
	messages, err := h.svc.Messages(r.Context(), token)
	if err != nil {
		respondServiceError(w, err)
		return
	}
	respondJSON(w, http.StatusOK, messages)
}

func (h *ContactHandler) setStatus(w http.ResponseWriter, r *http.Request) {
	messageID, ok := urlInt(r, "messageID")
	if !ok {
		respondError(w, http.StatusBadRequest, "invalid message id")
		return
	}
	var body struct {
		Status contact.Status `json:"status"`
	}
	if !decodeBody(w, r, &body) {
		return
	}
	token := middleware.TokenFromContext(r.Context())
	if err := h.svc.SetStatus(r.Context(), token, messageID, body.Status); err != nil {
		h.respondMessageError(w, err)
		return
	}
	respondJSON(w, http.StatusOK, map[string]string{"message": "status updated"})
}

func (h *ContactHandler) remove(w http.ResponseWriter, r *http.Request) {
	messageID, ok := urlInt(r, "messageID")
	if !ok {
		respondError(w, http.StatusBadRequest, "invalid message id")
		return
	}
	token := middleware.TokenFromContext(r.Context())
	if err := h.svc.Delete(r.Context(), token, messageID); err != nil {
		h.respondMessageError(w, err)
		return
	}
	respondJSON(w, http.StatusOK, map[string]string{"message": "message deleted"})
}

func (h *ContactHandler) respondMessageError(w http.ResponseWriter, err error) {
	switch {
	case errors.Is(err, contact.ErrMessageNotFound):
		respondError(w, http.StatusNotFound, err.Error())
	case errors.Is(err, contact.ErrUnknownStatus):
		respondError(w, http.StatusBadRequest, err.Error())
	default:
		respondServiceError(w, err)
	}
}
