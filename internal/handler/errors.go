package handler

import (
	"encoding/json"
	"log/slog"
	"net/http"
)

// detailBody is the error envelope every non-2xx response uses:
// {"detail": "<message>"}.
type detailBody struct {
	Detail string `json:"detail"`
}

// writeJSON serializes v as the response body with the given status.
// Encoding failures are logged; by then the status line has been sent, so
// nothing more can be done for the client.
func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(v); err != nil {
		slog.Error("write response", "error", err)
	}
}

// writeDetail writes the {"detail": message} error envelope.
func writeDetail(w http.ResponseWriter, status int, message string) {
	writeJSON(w, status, detailBody{Detail: message})
}

// writeInternalError logs err and sends an opaque 500. Persistence failures
// and other unexpected errors all land here — they are terminal per request,
// never retried.
func writeInternalError(w http.ResponseWriter, err error) {
	slog.Error("request failed", "error", err)
	writeDetail(w, http.StatusInternalServerError, "internal server error")
}
