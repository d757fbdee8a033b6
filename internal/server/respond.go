package server

import (
	"encoding/json"
	"net/http"

	"github.com/rs/zerolog"
)

type errorResponse struct {
	Error   string `json:"error"`
	Message string `json:"message"`
	Code    int    `json:"code"`
	Field   string `json:"field,omitempty"`
}

func respondJSON(w http.ResponseWriter, logger zerolog.Logger, status int, data any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)

	if err := json.NewEncoder(w).Encode(data); err != nil {
		logger.Error().Err(err).Msg("error encoding response")
	}
}

func respondError(w http.ResponseWriter, logger zerolog.Logger, status int, message, field string, err error) {
	if err != nil {
		logger.Warn().Err(err).Int("status", status).Msg(message)
	}

	respondJSON(w, logger, status, errorResponse{
		Error:   http.StatusText(status),
		Message: message,
		Code:    status,
		Field:   field,
	})
}
