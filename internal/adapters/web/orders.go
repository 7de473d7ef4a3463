package web

import (
	"net/http"
	"strconv"

	"github.com/go-chi/chi/v5"

	"wms/internal/app"
)

// createOrder handles POST /api/orders. The acting user is taken from the
// session, never from the request body.
func (h *Handler) createOrder(w http.ResponseWriter, r *http.Request) {
	claims := authFromContext(r.Context())
	if claims == nil {
		writeError(w, r, "not authenticated", "UNAUTHORIZED", http.StatusUnauthorized)
		return
	}

	var req app.CreateOrderRequest
	if !decodeJSON(w, r, &req) {
		return
	}
	req.UserID = claims.UserID

	result, err := h.svc.CreateOrder(r.Context(), req)
	if err != nil {
		writeServiceError(w, r, err)
		return
	}
	writeJSONStatus(w, http.StatusCreated, result)
}

// recordPayment handles POST /api/orders/{id}/payment — settles the order
// in full. A second payment for the same order is rejected by the schema's
// unique constraint.
func (h *Handler) recordPayment(w http.ResponseWriter, r *http.Request) {
	saleID, err := strconv.Atoi(chi.URLParam(r, "id"))
	if err != nil {
		writeError(w, r, "order id must be an integer", "BAD_REQUEST", http.StatusBadRequest)
		return
	}

	var req app.PaymentRequest
	if !decodeJSON(w, r, &req) {
		return
	}
	req.SaleID = saleID

	result, err := h.svc.RecordPayment(r.Context(), req)
	if err != nil {
		writeServiceError(w, r, err)
		return
	}
	writeJSONStatus(w, http.StatusCreated, result)
}
