package web

import (
	"net/http"
	"strconv"

	"github.com/go-chi/chi/v5"

	"wms/internal/app"
	"wms/internal/core"
)

// lowStock handles GET /api/reports/low-stock.
func (h *Handler) lowStock(w http.ResponseWriter, r *http.Request) {
	result, err := h.svc.LowStockReport(r.Context())
	if err != nil {
		writeServiceError(w, r, err)
		return
	}
	writeJSON(w, result)
}

// topProducts handles GET /api/reports/top-products?n=5. Out-of-range
// values of n are clamped by the reporting service.
func (h *Handler) topProducts(w http.ResponseWriter, r *http.Request) {
	n := core.TopProductsDefault
	if raw := r.URL.Query().Get("n"); raw != "" {
		parsed, err := strconv.Atoi(raw)
		if err != nil {
			writeError(w, r, "n must be an integer", "BAD_REQUEST", http.StatusBadRequest)
			return
		}
		n = parsed
	}

	result, err := h.svc.TopProducts(r.Context(), n)
	if err != nil {
		writeServiceError(w, r, err)
		return
	}
	writeJSON(w, result)
}

// revenue handles GET /api/reports/revenue?kind=product|store|month.
func (h *Handler) revenue(w http.ResponseWriter, r *http.Request) {
	kind, err := app.ParseRevenueKind(r.URL.Query().Get("kind"))
	if err != nil {
		writeError(w, r, err.Error(), "BAD_REQUEST", http.StatusBadRequest)
		return
	}

	result, err := h.svc.Revenue(r.Context(), kind)
	if err != nil {
		writeServiceError(w, r, err)
		return
	}
	writeJSON(w, result)
}

// listClients handles GET /api/clients.
func (h *Handler) listClients(w http.ResponseWriter, r *http.Request) {
	result, err := h.svc.ListClients(r.Context())
	if err != nil {
		writeServiceError(w, r, err)
		return
	}
	writeJSON(w, result)
}

// clientHistory handles GET /api/clients/{id}/history.
func (h *Handler) clientHistory(w http.ResponseWriter, r *http.Request) {
	id, err := strconv.Atoi(chi.URLParam(r, "id"))
	if err != nil {
		writeError(w, r, "client id must be an integer", "BAD_REQUEST", http.StatusBadRequest)
		return
	}

	result, err := h.svc.ClientHistory(r.Context(), id)
	if err != nil {
		writeServiceError(w, r, err)
		return
	}
	writeJSON(w, result)
}
