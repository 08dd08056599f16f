// Package handlers writes the JSON envelope shared by every API response:
// {"status":"success","data":...} or {"status":"error","message":...}.
package handlers

import (
	"encoding/json"
	"log/slog"
	"net/http"
)

const (
	StatusSuccess = "success"
	StatusError   = "error"
)

// Envelope is the wire shape of every API response.
type Envelope struct {
	Status  string `json:"status"`
	Data    any    `json:"data,omitempty"`
	Message string `json:"message,omitempty"`
}

// RespondJSON writes data as JSON with the given status code.
func RespondJSON(w http.ResponseWriter, status int, data any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	json.NewEncoder(w).Encode(data)
}

// RespondOK wraps data in a success envelope. A nil data value is written
// as an explicit null.
func RespondOK(w http.ResponseWriter, data any) {
	RespondJSON(w, http.StatusOK, struct {
		Status string `json:"status"`
		Data   any    `json:"data"`
	}{StatusSuccess, data})
}

// RespondError logs err and writes an error envelope carrying its message.
func RespondError(w http.ResponseWriter, logger *slog.Logger, status int, err error) {
	if status >= http.StatusInternalServerError {
		logger.Error("handler error", "error", err, "status", status)
	} else {
		logger.Warn("request rejected", "error", err, "status", status)
	}
	RespondJSON(w, status, Envelope{Status: StatusError, Message: err.Error()})
}
