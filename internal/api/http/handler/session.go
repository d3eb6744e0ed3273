package handler

import (
	"context"
	"net/http"

	"github.com/google/uuid"

	"github.com/dtroode/filesmanager-server/internal/apperr"
	"github.com/dtroode/filesmanager-server/internal/logger"
)

// SessionService defines session lifecycle operations.
type SessionService interface {
	Authenticate(ctx context.Context, email, password string) (string, error)
	Validate(ctx context.Context, token string) (uuid.UUID, error)
	Invalidate(ctx context.Context, token string) error
}

// Session handles sign-in and sign-out.
type Session struct {
	sessionService SessionService
	logger         *logger.Logger
}

func NewSession(sessionService SessionService, logger *logger.Logger) *Session {
	return &Session{
		sessionService: sessionService,
		logger:         logger,
	}
}

// Connect handles GET /connect with Basic credentials.
func (h *Session) Connect(w http.ResponseWriter, r *http.Request) {
	email, password, ok := r.BasicAuth()
	if !ok {
		WriteError(w, h.logger, apperr.NewErrUnauthorized())
		return
	}

	token, err := h.sessionService.Authenticate(r.Context(), email, password)
	if err != nil {
		WriteError(w, h.logger, err)
		return
	}

	writeJSON(w, h.logger, http.StatusOK, tokenResponse{Token: token})
}

// Disconnect handles GET /disconnect. The route is authenticated,
// so the token is known to be valid here.
func (h *Session) Disconnect(w http.ResponseWriter, r *http.Request) {
	if err := h.sessionService.Invalidate(r.Context(), r.Header.Get(TokenHeader)); err != nil {
		WriteError(w, h.logger, err)
		return
	}

	w.WriteHeader(http.StatusNoContent)
}
