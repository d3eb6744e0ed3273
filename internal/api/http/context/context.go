package context

import (
	"context"

	"github.com/google/uuid"
)

type userIDKey struct{}

// Manager stores the authenticated user ID in request contexts.
type Manager struct{}

func NewManager() *Manager {
	return &Manager{}
}

// SetUserIDToContext returns a copy of ctx carrying userID.
func (m *Manager) SetUserIDToContext(ctx context.Context, userID uuid.UUID) context.Context {
	return context.WithValue(ctx, userIDKey{}, userID)
}

// GetUserIDFromContext reports false when no user was set or the ID is nil.
func (m *Manager) GetUserIDFromContext(ctx context.Context) (uuid.UUID, bool) {
	userID, ok := ctx.Value(userIDKey{}).(uuid.UUID)
	if !ok || userID == uuid.Nil {
		return uuid.Nil, false
	}

	return userID, true
}
