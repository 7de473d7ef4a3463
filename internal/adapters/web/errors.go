package web

import (
	"encoding/json"
	"errors"
	"net/http"

	"wms/internal/app"
	"wms/internal/core"
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

// writeJSONStatus writes a JSON response with an explicit status code.
func writeJSONStatus(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(v)
}

// decodeJSON decodes the request body into v. On failure it writes a 400
// response and returns false.
func decodeJSON(w http.ResponseWriter, r *http.Request, v any) bool {
	dec := json.NewDecoder(r.Body)
	dec.DisallowUnknownFields()
	if err := dec.Decode(v); err != nil {
		writeError(w, r, "invalid request body", "BAD_REQUEST", http.StatusBadRequest)
		return false
	}
	return true
}

// writeServiceError maps the core error taxonomy onto HTTP statuses.
func writeServiceError(w http.ResponseWriter, r *http.Request, err error) {
	var (
		unknownTable *core.UnknownTableError
		duplicate    *core.DuplicateUsernameError
		constraint   *core.ConstraintViolationError
		connection   *core.ConnectionError
	)
	switch {
	case errors.Is(err, app.ErrInvalidCredentials):
		writeError(w, r, err.Error(), "UNAUTHORIZED", http.StatusUnauthorized)
	case errors.As(err, &unknownTable):
		writeError(w, r, err.Error(), "UNKNOWN_TABLE", http.StatusBadRequest)
	case errors.As(err, &duplicate):
		writeError(w, r, err.Error(), "DUPLICATE_USERNAME", http.StatusConflict)
	case errors.As(err, &constraint):
		writeError(w, r, err.Error(), "CONSTRAINT_VIOLATION", http.StatusUnprocessableEntity)
	case errors.As(err, &connection):
		writeError(w, r, "database unavailable", "DATABASE_UNAVAILABLE", http.StatusServiceUnavailable)
	default:
		writeError(w, r, err.Error(), "BAD_REQUEST", http.StatusBadRequest)
	}
}
