package service

import (
	"context"
	"errors"
	"fmt"
	"mime"
	"path/filepath"
	"slices"

	"github.com/google/uuid"

	"github.com/dtroode/filesmanager-server/internal/apperr"
	"github.com/dtroode/filesmanager-server/internal/logger"
	"github.com/dtroode/filesmanager-server/internal/model"
)

const defaultContentType = "application/octet-stream"

// TokenValidator resolves a session token to a user.
type TokenValidator interface {
	Validate(ctx context.Context, token string) (uuid.UUID, error)
}

// Access decides who may read node content.
type Access struct {
	nodeStore model.NodeStore
	blobStore model.BlobStore
	sessions  TokenValidator
	logger    *logger.Logger
}

func NewAccess(nodeStore model.NodeStore, blobStore model.BlobStore, sessions TokenValidator, logger *logger.Logger) *Access {
	return &Access{
		nodeStore: nodeStore,
		blobStore: blobStore,
		sessions:  sessions,
		logger:    logger,
	}
}

// Authorize returns the content of nodeID, or of its rendition when size > 0.
// Unauthorized readers get NotFound, same as for absent content.
func (a *Access) Authorize(ctx context.Context, token, nodeID string, size int) (model.Content, error) {
	if size != 0 && !slices.Contains(model.RenditionWidths, size) {
		return model.Content{}, apperr.NewErrInvalidField("size")
	}

	id, err := uuid.Parse(nodeID)
	if err != nil {
		return model.Content{}, apperr.NewErrNotFound()
	}

	node, err := a.nodeStore.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, model.ErrNotFound) {
			return model.Content{}, apperr.NewErrNotFound()
		}
		a.logger.Error("Access service: failed to get node",
			"node_id", id,
			"error", err.Error())
		return model.Content{}, fmt.Errorf("failed to get node: %w", err)
	}

	if node.Kind == model.NodeKindFolder {
		return model.Content{}, apperr.NewErrNoContent()
	}

	if !node.IsPublic {
		allowed, err := a.isOwner(ctx, token, node.OwnerID)
		if err != nil {
			return model.Content{}, err
		}
		if !allowed {
			return model.Content{}, apperr.NewErrNotFound()
		}
	}

	if node.StorageHandle == "" {
		return model.Content{}, apperr.NewErrNotFound()
	}

	ext := filepath.Ext(node.Name)
	handle := node.StorageHandle
	if size > 0 {
		handle = model.RenditionHandle(handle, size, ext)
	}

	exists, err := a.blobStore.Exists(ctx, handle)
	if err != nil {
		a.logger.Error("Access service: failed to probe content",
			"node_id", id,
			"storage_handle", handle,
			"error", err.Error())
		return model.Content{}, fmt.Errorf("failed to probe content: %w", err)
	}
	if !exists {
		a.logger.Debug("Access service: content is missing",
			"node_id", id,
			"storage_handle", handle)
		return model.Content{}, apperr.NewErrNotFound()
	}

	// The blob may still vanish before Read.
	data, err := a.blobStore.Read(ctx, handle)
	if err != nil {
		if errors.Is(err, model.ErrNotFound) {
			a.logger.Debug("Access service: content is missing",
				"node_id", id,
				"storage_handle", handle)
			return model.Content{}, apperr.NewErrNotFound()
		}
		a.logger.Error("Access service: failed to read content",
			"node_id", id,
			"storage_handle", handle,
			"error", err.Error())
		return model.Content{}, fmt.Errorf("failed to read content: %w", err)
	}

	return model.Content{Data: data, ContentType: contentType(ext)}, nil
}

func (a *Access) isOwner(ctx context.Context, token string, ownerID uuid.UUID) (bool, error) {
	if token == "" {
		return false, nil
	}

	userID, err := a.sessions.Validate(ctx, token)
	if err != nil {
		if apperr.KindOf(err) == apperr.KindUnauthenticated {
			return false, nil
		}
		return false, fmt.Errorf("failed to validate token: %w", err)
	}

	return userID == ownerID, nil
}

func contentType(ext string) string {
	if ct := mime.TypeByExtension(ext); ct != "" {
		return ct
	}
	return defaultContentType
}
