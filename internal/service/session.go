package service

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"

	"github.com/dtroode/filesmanager-server/internal/apperr"
	"github.com/dtroode/filesmanager-server/internal/logger"
	"github.com/dtroode/filesmanager-server/internal/model"
)

const sessionKeyPrefix = "auth_"

// Session issues opaque tokens and resolves them through the cache.
type Session struct {
	userStore model.UserStore
	cache     model.Cache
	ttl       time.Duration
	logger    *logger.Logger
}

func NewSession(userStore model.UserStore, cache model.Cache, ttl time.Duration, logger *logger.Logger) *Session {
	if ttl <= 0 {
		ttl = model.SessionTTL
	}
	return &Session{
		userStore: userStore,
		cache:     cache,
		ttl:       ttl,
		logger:    logger,
	}
}

func sessionKey(token string) string {
	return sessionKeyPrefix + token
}

// Authenticate checks the credentials and starts a new session.
// Every failure caused by the credentials is reported as Unauthenticated.
func (s *Session) Authenticate(ctx context.Context, email, password string) (string, error) {
	if email == "" || password == "" || !storableText(email) {
		return "", apperr.NewErrUnauthorized()
	}

	user, err := s.userStore.GetByEmail(ctx, email)
	if err != nil {
		if errors.Is(err, model.ErrNotFound) {
			s.logger.Debug("Session service: unknown email", "email", email)
			return "", apperr.NewErrUnauthorized()
		}
		s.logger.Error("Session service: failed to get user by email",
			"email", email,
			"error", err.Error())
		return "", fmt.Errorf("failed to get user by email: %w", err)
	}

	if err := checkPassword(user.PasswordHash, password); err != nil {
		s.logger.Debug("Session service: password mismatch", "user_id", user.ID)
		return "", apperr.NewErrUnauthorized()
	}

	token := uuid.NewString()
	if err := s.cache.Set(ctx, sessionKey(token), user.ID.String(), s.ttl); err != nil {
		s.logger.Error("Session service: failed to store session",
			"user_id", user.ID,
			"error", err.Error())
		return "", fmt.Errorf("failed to store session: %w", err)
	}

	s.logger.Info("Session service: session started", "user_id", user.ID)

	return token, nil
}

// Validate resolves token to the user it was issued for.
func (s *Session) Validate(ctx context.Context, token string) (uuid.UUID, error) {
	if token == "" {
		return uuid.Nil, apperr.NewErrUnauthorized()
	}

	value, err := s.cache.Get(ctx, sessionKey(token))
	if err != nil {
		if errors.Is(err, model.ErrNotFound) {
			return uuid.Nil, apperr.NewErrUnauthorized()
		}
		s.logger.Error("Session service: failed to read session", "error", err.Error())
		return uuid.Nil, fmt.Errorf("failed to read session: %w", err)
	}

	userID, err := uuid.Parse(value)
	if err != nil {
		s.logger.Warn("Session service: corrupt session value", "error", err.Error())
		return uuid.Nil, apperr.NewErrUnauthorized()
	}

	return userID, nil
}

// Invalidate ends the session. Unknown tokens are not an error.
func (s *Session) Invalidate(ctx context.Context, token string) error {
	if err := s.cache.Delete(ctx, sessionKey(token)); err != nil {
		s.logger.Error("Session service: failed to delete session", "error", err.Error())
		return fmt.Errorf("failed to delete session: %w", err)
	}

	return nil
}
