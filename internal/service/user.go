package service

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"
	"golang.org/x/crypto/bcrypt"

	"github.com/dtroode/filesmanager-server/internal/apperr"
	"github.com/dtroode/filesmanager-server/internal/logger"
	"github.com/dtroode/filesmanager-server/internal/model"
)

type User struct {
	userStore model.UserStore
	cost      int
	logger    *logger.Logger
}

func NewUser(userStore model.UserStore, logger *logger.Logger) *User {
	return &User{
		userStore: userStore,
		cost:      bcrypt.DefaultCost,
		logger:    logger,
	}
}

func (u *User) Register(ctx context.Context, email, password string) (model.User, error) {
	if email == "" {
		return model.User{}, apperr.NewErrMissingField("email")
	}
	if password == "" {
		return model.User{}, apperr.NewErrMissingField("password")
	}
	if !storableText(email) {
		return model.User{}, apperr.NewErrInvalidField("email")
	}

	_, err := u.userStore.GetByEmail(ctx, email)
	if err == nil {
		u.logger.Info("User service: user already exists", "email", email)
		return model.User{}, apperr.NewErrAlreadyExists()
	}
	if !errors.Is(err, model.ErrNotFound) {
		u.logger.Error("User service: failed to get user by email",
			"email", email,
			"error", err.Error())
		return model.User{}, fmt.Errorf("failed to get user by email: %w", err)
	}

	hash, err := hashPassword(password, u.cost)
	if err != nil {
		return model.User{}, fmt.Errorf("failed to hash password: %w", err)
	}

	user, err := u.userStore.Create(ctx, model.User{
		ID:           uuid.New(),
		Email:        email,
		PasswordHash: hash,
		CreatedAt:    time.Now(),
	})
	if err != nil {
		// lost a race against a concurrent registration
		if errors.Is(err, model.ErrAlreadyExists) {
			return model.User{}, apperr.NewErrAlreadyExists()
		}
		u.logger.Error("User service: failed to create user",
			"email", email,
			"error", err.Error())
		return model.User{}, fmt.Errorf("failed to create user: %w", err)
	}

	u.logger.Info("User service: user registered", "user_id", user.ID)

	return user, nil
}

// Whoami returns the user behind an authenticated request.
func (u *User) Whoami(ctx context.Context, userID uuid.UUID) (model.User, error) {
	user, err := u.userStore.GetByID(ctx, userID)
	if err != nil {
		if errors.Is(err, model.ErrNotFound) {
			return model.User{}, apperr.NewErrUnauthorized()
		}
		u.logger.Error("User service: failed to get user by id",
			"user_id", userID,
			"error", err.Error())
		return model.User{}, fmt.Errorf("failed to get user by id: %w", err)
	}

	return user, nil
}
