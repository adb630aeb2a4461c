package web

import (
	"encoding/json"
	"errors"
	"io/fs"
	"net/http"

	"showroom-payments/internal/app"
	webui "showroom-payments/web"

	"github.com/go-chi/chi/v5"
)

// Handler holds the ApplicationService and the chi router.
type Handler struct {
	svc        app.ApplicationService
	router     chi.Router
	fileServer http.Handler
}

// NewHandler creates and wires the chi router with all routes.
func NewHandler(svc app.ApplicationService, allowedOrigins string) http.Handler {
	staticFS, err := fs.Sub(webui.Static, "static")
	if err != nil {
		panic("web/static embed sub-FS failed: " + err.Error())
	}

	h := &Handler{
		svc:        svc,
		fileServer: http.FileServer(http.FS(staticFS)),
	}

	r := chi.NewRouter()
	r.Use(RequestID)
	r.Use(Logger)
	r.Use(Recoverer)
	r.Use(CORS(allowedOrigins))

	// ── Health ────────────────────────────────────────────────────────────────
	r.Get("/api/health", h.health)

	// ── Form frontend ─────────────────────────────────────────────────────────
	r.Get("/", h.index)
	r.Get("/static/*", func(w http.ResponseWriter, req *http.Request) {
		http.StripPrefix("/static", h.fileServer).ServeHTTP(w, req)
	})

	// API endpoints: 1 MB body limit to prevent unbounded request abuse.
	r.Group(func(r chi.Router) {
		r.Use(RequestBodyLimit(1 << 20)) // 1 MB

		// ── Reference data ────────────────────────────────────────────────────
		r.Get("/api/dealers", h.apiListDealers)
		r.Get("/api/vehicles", h.apiListVehicles)

		// ── Payment lifecycle ─────────────────────────────────────────────────
		r.Post("/api/payments", h.apiSubmitPayment)
		r.Get("/api/payments/pending", h.apiListPending)
		r.Get("/api/payments/completed", h.apiListCompleted)
		r.Get("/api/payments/{id}", h.apiGetPayment)
		r.Post("/api/payments/{id}/sold", h.apiMarkSold)
		r.Post("/api/payments/{id}/returned", h.apiMarkReturned)

		// ── Discounts ─────────────────────────────────────────────────────────
		r.Get("/api/discounts/candidates", h.apiListDiscountCandidates)
		r.Post("/api/discounts/submit", h.apiSubmitDiscount)
	})

	h.router = r
	return r
}

// health returns service status.
func (h *Handler) health(w http.ResponseWriter, r *http.Request) {
	type response struct {
		Status string `json:"status"`
	}
	writeJSON(w, response{Status: "ok"})
}

// index serves the embedded payment form page.
func (h *Handler) index(w http.ResponseWriter, r *http.Request) {
	req := r.Clone(r.Context())
	req.URL.Path = "/index.html"
	h.fileServer.ServeHTTP(w, req)
}

// paymentID extracts the {id} URL parameter.
func paymentID(r *http.Request) string {
	return chi.URLParam(r, "id")
}

// decodeJSON decodes the request body into v and returns false + writes an
// appropriate error response on failure. Returns HTTP 413 when the body
// exceeds the RequestBodyLimit; HTTP 400 for all other decode errors.
func decodeJSON(w http.ResponseWriter, r *http.Request, v any) bool {
	if err := json.NewDecoder(r.Body).Decode(v); err != nil {
		var maxBytesErr *http.MaxBytesError
		if errors.As(err, &maxBytesErr) {
			writeError(w, r, "request body too large", "REQUEST_TOO_LARGE", http.StatusRequestEntityTooLarge)
			return false
		}
		writeError(w, r, "invalid JSON body: "+err.Error(), "BAD_REQUEST", http.StatusBadRequest)
		return false
	}
	return true
}
