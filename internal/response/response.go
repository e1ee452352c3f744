// Package response provides shared JSON response helpers for HTTP handlers.
package response

import (
	"encoding/json"
	"net/http"
)

// ErrorBody is the wire shape of every error reply: ok is always false and
// error carries a short, stable reason.
type ErrorBody struct {
	OK    bool   `json:"ok" example:"false"`
	Error string `json:"error" example:"file not found"`
}

// JSON writes a JSON-encoded payload with the given HTTP status code.
func JSON(w http.ResponseWriter, status int, payload interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(payload)
}

// Error writes an error response with the given status and reason.
func Error(w http.ResponseWriter, status int, reason string) {
	JSON(w, status, ErrorBody{OK: false, Error: reason})
}

// BadRequest writes a 400 response.
func BadRequest(w http.ResponseWriter, reason string) {
	Error(w, http.StatusBadRequest, reason)
}

// Unauthorized writes a 401 response.
func Unauthorized(w http.ResponseWriter, reason string) {
	Error(w, http.StatusUnauthorized, reason)
}

// Forbidden writes a 403 response.
func Forbidden(w http.ResponseWriter, reason string) {
	Error(w, http.StatusForbidden, reason)
}

// NotFound writes a 404 response.
func NotFound(w http.ResponseWriter, reason string) {
	Error(w, http.StatusNotFound, reason)
}

// InternalError writes a 500 response with a generic reason.
func InternalError(w http.ResponseWriter) {
	Error(w, http.StatusInternalServerError, "internal server error")
}
