package handler

import (
	"context"
	"encoding/json"
	"net/http"

	"github.com/google/uuid"

	"github.com/dtroode/filesmanager-server/internal/apperr"
	"github.com/dtroode/filesmanager-server/internal/logger"
	"github.com/dtroode/filesmanager-server/internal/model"
)

// UserService defines account operations.
type UserService interface {
	Register(ctx context.Context, email, password string) (model.User, error)
	Whoami(ctx context.Context, userID uuid.UUID) (model.User, error)
}

// User handles account endpoints.
type User struct {
	userService    UserService
	contextManager model.ContextManager
	logger         *logger.Logger
}

func NewUser(userService UserService, contextManager model.ContextManager, logger *logger.Logger) *User {
	return &User{
		userService:    userService,
		contextManager: contextManager,
		logger:         logger,
	}
}

// Register handles POST /users.
func (h *User) Register(w http.ResponseWriter, r *http.Request) {
	var req userRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		h.logger.Debug("User handler: malformed body", "error", err.Error())
		WriteError(w, h.logger, apperr.NewErrInvalidField("request body"))
		return
	}

	user, err := h.userService.Register(r.Context(), req.Email, req.Password)
	if err != nil {
		WriteError(w, h.logger, err)
		return
	}

	writeJSON(w, h.logger, http.StatusCreated, toUserResponse(user))
}

// Me handles GET /users/me.
func (h *User) Me(w http.ResponseWriter, r *http.Request) {
	userID, ok := h.contextManager.GetUserIDFromContext(r.Context())
	if !ok {
		WriteError(w, h.logger, apperr.NewErrUnauthorized())
		return
	}

	user, err := h.userService.Whoami(r.Context(), userID)
	if err != nil {
		WriteError(w, h.logger, err)
		return
	}

	writeJSON(w, h.logger, http.StatusOK, toUserResponse(user))
}
