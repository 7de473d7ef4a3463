package web

import (
	"net/http"

	"github.com/go-chi/chi/v5"

	"wms/internal/app"
)

// Handler serves the warehouse HTTP API.
type Handler struct {
	svc       app.ApplicationService
	jwtSecret string
}

// NewHandler builds the chi router with all API routes mounted.
func NewHandler(svc app.ApplicationService, allowedOrigins, jwtSecret string) http.Handler {
	h := &Handler{svc: svc, jwtSecret: jwtSecret}

	r := chi.NewRouter()
	r.Use(RequestID)
	r.Use(Logger)
	r.Use(Recoverer)
	r.Use(CORS(allowedOrigins))

	r.Get("/api/health", h.health)

	r.Route("/api/auth", func(r chi.Router) {
		r.Use(RequestBodyLimit(1 << 20))
		r.Post("/login", h.login)
		r.Post("/logout", h.logout)
		r.Post("/register", h.register)

		r.Group(func(r chi.Router) {
			r.Use(h.RequireAuth)
			r.Get("/me", h.me)
		})
	})

	r.Group(func(r chi.Router) {
		r.Use(h.RequireAuth)
		r.Use(RequestBodyLimit(1 << 20))

		r.Get("/api/tables/{name}", h.browseTable)

		r.Get("/api/clients", h.listClients)
		r.Get("/api/clients/{id}/history", h.clientHistory)

		r.Get("/api/reports/low-stock", h.lowStock)
		r.Get("/api/reports/top-products", h.topProducts)
		r.Get("/api/reports/revenue", h.revenue)

		r.Post("/api/orders", h.createOrder)
		r.Post("/api/orders/{id}/payment", h.recordPayment)
	})

	return r
}

func (h *Handler) health(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, map[string]string{"status": "ok"})
}
