package web

import (
	"net/http"

	"github.com/go-chi/chi/v5"
)

// browseTable handles GET /api/tables/{name} — full contents of one table,
// ordered by primary key.
func (h *Handler) browseTable(w http.ResponseWriter, r *http.Request) {
	name := chi.URLParam(r, "name")

	result, err := h.svc.BrowseTable(r.Context(), name)
	if err != nil {
		writeServiceError(w, r, err)
		return
	}
	writeJSON(w, result)
}
