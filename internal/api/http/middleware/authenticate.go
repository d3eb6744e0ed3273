package middleware

import (
	"context"
	"net/http"

	"github.com/google/uuid"

	"github.com/dtroode/filesmanager-server/internal/api/http/handler"
	"github.com/dtroode/filesmanager-server/internal/apperr"
	"github.com/dtroode/filesmanager-server/internal/logger"
	"github.com/dtroode/filesmanager-server/internal/model"
)

// TokenService resolves user ID from session tokens.
type TokenService interface {
	Validate(ctx context.Context, token string) (uuid.UUID, error)
}

// Authenticate validates the X-Token header and injects the user ID into the request context.
type Authenticate struct {
	tokenService   TokenService
	contextManager model.ContextManager
	logger         *logger.Logger
}

func NewAuthenticate(tokenService TokenService, contextManager model.ContextManager, logger *logger.Logger) *Authenticate {
	return &Authenticate{tokenService: tokenService, contextManager: contextManager, logger: logger}
}

func (m *Authenticate) Handle(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		token := r.Header.Get(handler.TokenHeader)
		if token == "" {
			handler.WriteError(w, m.logger, apperr.NewErrUnauthorized())
			return
		}

		userID, err := m.tokenService.Validate(r.Context(), token)
		if err != nil {
			handler.WriteError(w, m.logger, err)
			return
		}

		if userID == uuid.Nil {
			handler.WriteError(w, m.logger, apperr.NewErrUnauthorized())
			return
		}

		next.ServeHTTP(w, r.WithContext(m.contextManager.SetUserIDToContext(r.Context(), userID)))
	})
}
