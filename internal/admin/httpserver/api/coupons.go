package api

import (
	"errors"
	"net/http"

	"github.com/go-chi/chi/v5"

	"nainikaessentials.in/admin/internal/admin/coupons"
	"nainikaessentials.in/admin/internal/admin/httpserver/middleware"
)

// CouponsHandler serves the coupon CRUD endpoints.
type CouponsHandler struct {
	svc coupons.Service
}

// NewCouponsHandler builds the handler over the given service.
func NewCouponsHandler(svc coupons.Service) *CouponsHandler {
	return &CouponsHandler{svc: svc}
}

// Mount registers the coupon routes.
func (h *CouponsHandler) Mount(r chi.Router) {
	r.Get("/coupons", h.list)
	r.Post("/coupons", h.create)
	r.Delete("/coupons/{couponID}", h.remove)
}

func (h *CouponsHandler) list(w http.ResponseWriter, r *http.Request) {
	token := middleware.TokenFromContext(r.Context())
	list, err := h.svc.Coupons(r.Context(), token)
	if err != nil {
		respondServiceError(w, err)
		return
	}
	respondJSON(w, http.StatusOK, list)
}

func (h *CouponsHandler) create(w http.ResponseWriter, r *http.Request) {
	var input coupons.CouponInput
	if !decodeBody(w, r, &input) {
		return
	}
	token := middleware.TokenFromContext(r.Context())
	created, err := h.svc.Create(r.Context(), token, input)
	if err != nil {
		var vErr *coupons.ValidationError
		if errors.As(err, &vErr) {
			respondJSON(w, http.StatusUnprocessableEntity, map[string]any{
				"error":  vErr.Error(),
				"fields": vErr.FieldErrors,
			})
			return
		}
		respondServiceError(w, err)
		return
	}
	respondJSON(w, http.StatusCreated, created)
}

func (h *CouponsHandler) remove(w http.ResponseWriter, r *http.Request) {
	couponID, ok := urlInt(r, "couponID")
	if !ok {
		respondError(w, http.StatusBadRequest, "invalid coupon id")
		return
	}
	token := middleware.TokenFromContext(r.Context())
	if err := h.svc.Delete(r.Context(), token, couponID); err != nil {
		if errors.Is(err, coupons.ErrCouponNotFound) {
			respondError(w, http.StatusNotFound, err.Error())
			return
		}
		respondServiceError(w, err)
		return
	}
	respondJSON(w, http.StatusOK, map[string]string{"message": "coupon deleted"})
}
