package handler

import (
	"encoding/json"
	"errors"
	"net/http"

	"github.com/dtroode/filesmanager-server/internal/apperr"
	"github.com/dtroode/filesmanager-server/internal/logger"
)

type errorResponse struct {
	Error string `json:"error"`
}

// WriteError writes err as a JSON error body. Errors without a client-facing
// kind are logged and reported as a generic internal error.
func WriteError(w http.ResponseWriter, logger *logger.Logger, err error) {
	var appErr *apperr.Error
	if !errors.As(err, &appErr) {
		logger.Error("HTTP handler: internal error", "error", err.Error())
		appErr = apperr.NewErrInternal()
	}

	writeJSON(w, logger, appErr.HTTPStatus(), errorResponse{Error: appErr.Message})
}

func writeJSON(w http.ResponseWriter, logger *logger.Logger, status int, body any) {
	w.Header().Set("Content-Type", "application/json; charset=utf-8")
	w.WriteHeader(status)

	if err := json.NewEncoder(w).Encode(body); err != nil {
		logger.Warn("HTTP handler: failed to write response", "error", err.Error())
	}
}
