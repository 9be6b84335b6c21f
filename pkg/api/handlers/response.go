// Package handlers provides HTTP handlers for the wizzzey admin API.
package handlers

import (
	"bytes"
	"encoding/json"
	"net/http"

	"github.com/wizzzeystore/wizzzey-api/internal/logger"
)

// Envelope type markers.
const (
	// TypeOK marks a successful response.
	TypeOK = "OK"
	// TypeError marks a failed response.
	TypeError = "ERROR"
)

// Response is the envelope every API endpoint answers with.
//
// Type is "OK" or "ERROR", Message is a short human-readable summary, and
// Data carries the endpoint-specific payload (null on errors and on
// endpoints that have nothing further to say).
type Response struct {
	Type    string `json:"type"`
	Message string `json:"message"`
	Data    any    `json:"data"`
}

// WriteOK writes a success envelope with the given status code.
func WriteOK(w http.ResponseWriter, status int, message string, data any) {
	writeJSON(w, status, Response{
		Type:    TypeOK,
		Message: message,
		Data:    data,
	})
}

// WriteError writes an error envelope with the given status code.
// The Data field is always null on errors.
func WriteError(w http.ResponseWriter, status int, message string) {
	writeJSON(w, status, Response{
		Type:    TypeError,
		Message: message,
	})
}

// writeJSON writes a JSON response with the given status code.
//
// The body is encoded to a buffer first so an encoding failure can still
// produce an error response before any headers are sent.
func writeJSON(w http.ResponseWriter, status int, body Response) {
	var buf bytes.Buffer
	if err := json.NewEncoder(&buf).Encode(body); err != nil {
		logger.Error("Failed to encode JSON response", logger.Err(err))
		http.Error(w, `{"type":"ERROR","message":"failed to encode response","data":null}`, http.StatusInternalServerError)
		return
	}

	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_, _ = w.Write(buf.Bytes())
}

// Convenience writers for standard HTTP errors.

// BadRequest writes a 400 error envelope.
func BadRequest(w http.ResponseWriter, message string) {
	WriteError(w, http.StatusBadRequest, message)
}

// Unauthorized writes a 401 error envelope.
func Unauthorized(w http.ResponseWriter, message string) {
	WriteError(w, http.StatusUnauthorized, message)
}

// Forbidden writes a 403 error envelope.
func Forbidden(w http.ResponseWriter, message string) {
	WriteError(w, http.StatusForbidden, message)
}

// NotFound writes a 404 error envelope.
func NotFound(w http.ResponseWriter, message string) {
	WriteError(w, http.StatusNotFound, message)
}

// InternalServerError writes a 500 error envelope.
func InternalServerError(w http.ResponseWriter, message string) {
	WriteError(w, http.StatusInternalServerError, message)
}

// ServiceUnavailable writes a 503 error envelope.
func ServiceUnavailable(w http.ResponseWriter, message string) {
	WriteError(w, http.StatusServiceUnavailable, message)
}

// decodeJSONBody decodes a JSON request body into the provided pointer.
// Returns true if successful, false if decoding fails (an error response
// is written automatically).
func decodeJSONBody(w http.ResponseWriter, r *http.Request, v any) bool {
	if err := json.NewDecoder(r.Body).Decode(v); err != nil {
		BadRequest(w, "Invalid request body")
		return false
	}
	return true
}
