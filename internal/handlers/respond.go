package handlers

import (
	"encoding/json"
	"net/http"

	"go.uber.org/zap"

	"github.com/arcmarket/arc-api/internal/apperr"
)

// errorEnvelope is the wire shape of every error response
type errorEnvelope struct {
	Message    string `json:"message"`
	IsError    bool   `json:"isError"`
	StatusCode int    `json:"statusCode"`
}

// respondJSON writes a success payload
func respondJSON(w http.ResponseWriter, status int, payload interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if payload == nil {
		return
	}
	if err := json.NewEncoder(w).Encode(payload); err != nil {
		zap.L().Error("encoding response failed", zap.Error(err))
	}
}

// respondError writes the error envelope with the status mapped from
// the error's kind
func respondError(w http.ResponseWriter, err error) {
	status := apperr.StatusOf(err)
	if status >= http.StatusInternalServerError {
		zap.L().Error("request failed", zap.Int("status", status), zap.Error(err))
	}
	respondJSON(w, status, errorEnvelope{
		Message:    apperr.MessageOf(err),
		IsError:    true,
		StatusCode: status,
	})
}

// respondValidation writes a 422 envelope for request decode failures
func respondValidation(w http.ResponseWriter, message string) {
	respondJSON(w, http.StatusUnprocessableEntity, errorEnvelope{
		Message:    message,
		IsError:    true,
		StatusCode: http.StatusUnprocessableEntity,
	})
}
