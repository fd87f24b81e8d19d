// Package api implements the JSON endpoints the console's single-page
// frontend calls. Handlers read the caller's bearer token from the request
// context and pass it through to the commerce backend.
package api

import (
	"encoding/json"
	"errors"
	"log"
	"net/http"
	"strconv"

	"github.com/go-chi/chi/v5"

	"nainikaessentials.in/admin/internal/admin/backend"
)

// respondJSON writes the payload with the given status.
func respondJSON(w http.ResponseWriter, status int, payload any) {
	w.Header().Set("Content-Type", "application/json; charset=utf-8")
	w.WriteHeader(status)
	if payload == nil {
		return
	}
	if err := json.NewEncoder(w).Encode(payload); err != nil {
		log.Printf("api: encode response: %v", err)
	}
}

// respondError writes a JSON error envelope.
func respondError(w http.ResponseWriter, status int, message string) {
	respondJSON(w, status, map[string]string{"error": message})
}

// respondServiceError maps a service failure onto an HTTP response. Backend
// errors keep their status and wording so the operator sees what the server
// said; everything else is a 502 with the local error text.
func respondServiceError(w http.ResponseWriter, err error) {
	var backendErr *backend.Error
	if errors.As(err, &backendErr) {
		status := backendErr.StatusCode
		if status < 400 || status > 599 {
			status = http.StatusBadGateway
		}
		respondError(w, status, backendErr.Error())
		return
	}
	respondError(w, http.StatusBadGateway, err.Error())
}

// urlInt parses a numeric chi route parameter.
func urlInt(r *http.Request, name string) (int, bool) {
	v, err := strconv.Atoi(chi.URLParam(r, name))
	if err != nil {
		return 0, false
	}
	return v, true
}

// decodeBody decodes a JSON request body into out.
func decodeBody(w http.ResponseWriter, r *http.Request, out any) bool {
	if err := json.NewDecoder(r.Body).Decode(out); err != nil {
		respondError(w, http.StatusBadRequest, "malformed request body")
		return false
	}
	return true
}
