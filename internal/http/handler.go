// Package http exposes the REST surface: auth, categories, stations,
// regions, media and health routes behind the shared response envelope.
package http

import (
	"encoding/json"
	"errors"
	"io"
	"log/slog"
	"net/http"

	"github.com/opentransit/stationhub/internal/service"
	"github.com/opentransit/stationhub/pkg/httpx"
	"github.com/opentransit/stationhub/pkg/slogx"
)

// decodeJSON parses a request body into dst. A malformed or empty body is a
// client error, reported through the envelope.
func decodeJSON(w http.ResponseWriter, r *http.Request, dst any) bool {
	err := json.NewDecoder(r.Body).Decode(dst)
	switch {
	case errors.Is(err, io.EOF):
		httpx.WriteError(w, http.StatusBadRequest, "request body is required")
		return false
	case err != nil:
		httpx.WriteError(w, http.StatusBadRequest, "invalid request body")
		return false
	}
	return true
}

// writeInternal logs the full failure server-side and answers with a
// generic 500. The raw error text never reaches the client.
func writeInternal(w http.ResponseWriter, r *http.Request, msg string, err error) {
	slogx.FromContext(r.Context()).Error(msg, slog.Any("error", err))
	httpx.WriteError(w, http.StatusInternalServerError, "internal server error")
}

// writeValidation answers a failed payload check with the first violated
// rule's message.
func writeValidation(w http.ResponseWriter, ve *service.ValidationError) {
	httpx.WriteError(w, http.StatusBadRequest, ve.Message)
}
