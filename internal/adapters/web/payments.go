package web

import (
	"net/http"
	"strconv"

	"showroom-payments/internal/app"
)

// defaultCompletedLimit bounds the recent-transactions table when the client
// does not pass an explicit limit.
const defaultCompletedLimit = 10

// apiListDealers handles GET /api/dealers.
func (h *Handler) apiListDealers(w http.ResponseWriter, r *http.Request) {
	result, err := h.svc.ListDealers(r.Context())
	if err != nil {
		writeServiceError(w, r, err)
		return
	}
	writeJSON(w, result)
}

// apiListVehicles handles GET /api/vehicles.
func (h *Handler) apiListVehicles(w http.ResponseWriter, r *http.Request) {
	result, err := h.svc.ListVehicles(r.Context())
	if err != nil {
		writeServiceError(w, r, err)
		return
	}
	writeJSON(w, result)
}

// apiSubmitPayment handles POST /api/payments.
func (h *Handler) apiSubmitPayment(w http.ResponseWriter, r *http.Request) {
	var req app.SubmitPaymentRequest
	if !decodeJSON(w, r, &req) {
		return
	}

	result, err := h.svc.SubmitPayment(r.Context(), req)
	if err != nil {
		writeServiceError(w, r, err)
		return
	}

	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusCreated)
	writeBody(w, result)
}

// apiGetPayment handles GET /api/payments/{id}.
func (h *Handler) apiGetPayment(w http.ResponseWriter, r *http.Request) {
	result, err := h.svc.GetPayment(r.Context(), paymentID(r))
	if err != nil {
		writeServiceError(w, r, err)
		return
	}
	writeJSON(w, result)
}

// apiListPending handles GET /api/payments/pending.
func (h *Handler) apiListPending(w http.ResponseWriter, r *http.Request) {
	result, err := h.svc.ListPendingPayments(r.Context())
	if err != nil {
		writeServiceError(w, r, err)
		return
	}
	writeJSON(w, result)
}

// apiListCompleted handles GET /api/payments/completed?limit=N.
func (h *Handler) apiListCompleted(w http.ResponseWriter, r *http.Request) {
	limit := defaultCompletedLimit
	if raw := r.URL.Query().Get("limit"); raw != "" {
		n, err := strconv.Atoi(raw)
		if err != nil || n <= 0 {
			writeError(w, r, "limit must be a positive integer", "BAD_REQUEST", http.StatusBadRequest)
			return
		}
		limit = n
	}

	result, err := h.svc.ListCompletedPayments(r.Context(), limit)
	if err != nil {
		writeServiceError(w, r, err)
		return
	}
	writeJSON(w, result)
}

// apiMarkSold handles POST /api/payments/{id}/sold.
func (h *Handler) apiMarkSold(w http.ResponseWriter, r *http.Request) {
	result, err := h.svc.MarkSold(r.Context(), paymentID(r))
	if err != nil {
		writeServiceError(w, r, err)
		return
	}
	writeJSON(w, result)
}

// apiMarkReturned handles POST /api/payments/{id}/returned.
func (h *Handler) apiMarkReturned(w http.ResponseWriter, r *http.Request) {
	result, err := h.svc.MarkReturned(r.Context(), paymentID(r))
	if err != nil {
		writeServiceError(w, r, err)
		return
	}
	writeJSON(w, result)
}
