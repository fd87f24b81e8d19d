package api

import (
	"errors"
	"net/http"

	"github.com/go-chi/chi/v5"

	"nainikaessentials.in/admin/internal/admin/cod"
	"nainikaessentials.in/admin/internal/admin/httpserver/middleware"
)

// CODHandler serves the cash-on-delivery charge endpoints.
type CODHandler struct {
	svc cod.Service
}

// NewCODHandler builds the handler over the given service.
func NewCODHandler(svc cod.Service) *CODHandler {
	return &CODHandler{svc: svc}
}

// Mount registers the COD routes.
func (h *CODHandler) Mount(r chi.Router) {
	r.Get("/cod", h.list)
	r.Post("/cod", h.save)
	r.Put("/cod/{chargeID}", h.update)
	r.Delete("/cod/{chargeID}", h.remove)
}

func (h *CODHandler) list(w http.ResponseWriter, r *http.Request) {
	token := middleware.TokenFromContext(r.Context())
	charges, err := h.svc.Charges(r.Context(), token)
	if err != nil {
		respondServiceError(w, err)
		return
	}
	respondJSON(w, http.StatusOK, cod.Visible(charges))
}

// save upserts the charge: updates the first configured row when one exists,
// adds a row otherwise.
func (h *CODHandler) save(w http.ResponseWriter, r *http.Request) {
	var body struct {
		Amount float64 `json:"cod_charge"`
	}
	if !decodeBody(w, r, &body) {
		return
	}
	token := middleware.TokenFromContext(r.Context())
	existing, err := h.svc.Charges(r.Context(), token)
	if err != nil {
		respondServiceError(w, err)
		return
	}
	message, err := cod.Save(r.Context(), h.svc, token, existing, body.Amount)
	if err != nil {
		respondServiceError(w, err)
		return
	}
	respondJSON(w, http.StatusOK, map[string]string{"message": message})
}

func (h *CODHandler) update(w http.ResponseWriter, r *http.Request) {
	chargeID, ok := urlInt(r, "chargeID")
	if !ok {
		respondError(w, http.StatusBadRequest, "invalid charge id")
		return
	}
	var body struct {
		Amount float64 `json:"cod_charge"`
	}
	if !decodeBody(w, r, &body) {
		return
	}
	token := middleware.TokenFromContext(r.Context())
	message, err := h.svc.Update(r.Context(), token, chargeID, body.Amount)
	if err != nil {
		h.respondChargeError(w, err)
		return
	}
	respondJSON(w, http.StatusOK, map[string]string{"message": message})
}

func (h *CODHandler) remove(w http.ResponseWriter, r *http.Request) {
	chargeID, ok := urlInt(r, "chargeID")
	if !ok {
		respondError(w, http.StatusBadRequest, "invalid charge id")
		return
	}
	token := middleware.TokenFromContext(r.Context())
	message, err := h.svc.Delete(r.Context(), token, chargeID)
	if err != nil {
		h.respondChargeError(w, err)
		return
	}
	respondJSON(w, http.StatusOK, map[string]string{"message": message})
}

func (h *CODHandler) respondChargeError(w http.ResponseWriter, err error) {
	if errors.Is(err, cod.ErrChargeNotFound) {
		respondError(w, http.StatusNotFound, err.Error())
		return
	}
	respondServiceError(w, err)
}
