package web

import (
	"encoding/json"
	"errors"
	"net/http"

	"showroom-payments/internal/app"
	"showroom-payments/internal/core"
)

type errorResponse struct {
	Error     string `json:"error"`
	Code      string `json:"code"`
	RequestID string `json:"request_id,omitempty"`
}

// writeError writes a structured JSON error response.
func writeError(w http.ResponseWriter, r *http.Request, message, code string, status int) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	resp := errorResponse{
		Error:     message,
		Code:      code,
		RequestID: requestIDFromContext(r.Context()),
	}
	_ = json.NewEncoder(w).Encode(resp)
}

// writeJSON writes a JSON response with status 200.
func writeJSON(w http.ResponseWriter, v any) {
	w.Header().Set("Content-Type", "application/json")
	_ = json.NewEncoder(w).Encode(v)
}

// writeBody encodes v after the caller has already written headers and status.
func writeBody(w http.ResponseWriter, v any) {
	_ = json.NewEncoder(w).Encode(v)
}

// writeServiceError maps domain errors onto HTTP statuses:
// validation → 400, terminal-state conflicts → 409, missing records → 404,
// failed webhook-only operations → 502, everything else (store failures) → 500.
func writeServiceError(w http.ResponseWriter, r *http.Request, err error) {
	var vErr *core.ValidationError
	if errors.As(err, &vErr) {
		writeError(w, r, vErr.Error(), "VALIDATION_ERROR", http.StatusBadRequest)
		return
	}
	var stateErr *core.InvalidStateError
	if errors.As(err, &stateErr) {
		writeError(w, r, stateErr.Error(), "INVALID_STATE", http.StatusConflict)
		return
	}
	var nfErr *core.NotFoundError
	if errors.As(err, &nfErr) {
		writeError(w, r, nfErr.Error(), "NOT_FOUND", http.StatusNotFound)
		return
	}
	if errors.Is(err, app.ErrDeliveryFailed) {
		writeError(w, r, err.Error(), "NOTIFY_FAILED", http.StatusBadGateway)
		return
	}
	writeError(w, r, err.Error(), "STORE_ERROR", http.StatusInternalServerError)
}
