// Package service implements the dashboard's HTTP API on top of the record
// store, the derived-metrics calculator, and the insight requesters.
package service

import (
	"encoding/json"
	"fmt"
	"io"
	"log/slog"
	"net/http"
)

// maxBodySize caps request bodies; dashboard payloads are small.
const maxBodySize = 1 << 20 // 1MB

// writeJSON encodes v as the response body with the given status.
func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(v); err != nil {
		slog.Error("Failed to encode response", "error", err)
	}
}

// writeError sends a JSON error body. The message is rider-facing, so it
// should name the field or action, not the internals.
func writeError(w http.ResponseWriter, status int, message string) {
	writeJSON(w, status, map[string]string{"error": message})
}

// decodeJSON decodes the request body into dst, rejecting unknown fields
// would be too strict for a browser client that may send extra UI state,
// so any valid JSON that fits dst is accepted.
func decodeJSON(r *http.Request, dst any) error {
	body := http.MaxBytesReader(nil, r.Body, maxBodySize)
	if err := json.NewDecoder(body).Decode(dst); err != nil {
		return fmt.Errorf("invalid request body: %w", err)
	}
	// Drain so the connection can be reused.
	_, _ = io.Copy(io.Discard, body)
	return nil
}
