// Package httpx carries the shared HTTP plumbing: the JSON response
// envelope, the middleware chain, and the authentication/authorization
// gates applied to protected routes.
package httpx

import (
	"encoding/json"
	"net/http"
)

// Response is the envelope every stationhub endpoint answers with.
type Response struct {
	Message string `json:"message"`
	Data    any    `json:"data"`
	Meta    *Meta  `json:"meta,omitempty"`
}

// Meta describes pagination for list responses.
type Meta struct {
	Current    int   `json:"current"`
	Total      int64 `json:"total"`
	TotalPages int64 `json:"totalPages"`
}

// WriteJSON writes v as a JSON response with the given status code.
func WriteJSON(w http.ResponseWriter, code int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(code)
	_ = json.NewEncoder(w).Encode(v)
}

// WriteData writes a success envelope.
func WriteData(w http.ResponseWriter, code int, message string, data any) {
	WriteJSON(w, code, Response{Message: message, Data: data})
}

// WritePage writes a success envelope with pagination meta.
func WritePage(w http.ResponseWriter, code int, message string, data any, meta Meta) {
	WriteJSON(w, code, Response{Message: message, Data: data, Meta: &meta})
}

// WriteError writes an error envelope with a null data field.
func WriteError(w http.ResponseWriter, code int, message string) {
	WriteJSON(w, code, Response{Message: message, Data: nil})
}

// NoCache prevents caching of sensitive responses like tokens.
func NoCache(w http.ResponseWriter) {
	w.Header().Set("Cache-Control", "no-store")
	w.Header().Set("Pragma", "no-cache")
}
