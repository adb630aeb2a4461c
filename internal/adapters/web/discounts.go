package web

import (
	"net/http"

	"showroom-payments/internal/app"
)

// apiListDiscountCandidates handles GET /api/discounts/candidates.
// An empty candidate list is a valid response, not an error.
func (h *Handler) apiListDiscountCandidates(w http.ResponseWriter, r *http.Request) {
	result, err := h.svc.ListDiscountCandidates(r.Context())
	if err != nil {
		writeServiceError(w, r, err)
		return
	}
	writeJSON(w, result)
}

// apiSubmitDiscount handles POST /api/discounts/submit.
func (h *Handler) apiSubmitDiscount(w http.ResponseWriter, r *http.Request) {
	var req app.SubmitDiscountRequest
	if !decodeJSON(w, r, &req) {
		return
	}

	result, err := h.svc.SubmitDiscount(r.Context(), req)
	if err != nil {
		writeServiceError(w, r, err)
		return
	}
	writeJSON(w, result)
}
