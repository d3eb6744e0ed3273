package service

import (
	"context"
	"encoding/base64"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"

	"github.com/dtroode/filesmanager-server/internal/apperr"
	"github.com/dtroode/filesmanager-server/internal/logger"
	"github.com/dtroode/filesmanager-server/internal/model"
)

// rootParentID is the wire form of the hierarchy root.
const rootParentID = "0"

// Catalog manages the per-user file hierarchy.
type Catalog struct {
	nodeStore              model.NodeStore
	blobStore              model.BlobStore
	publisher              model.JobPublisher
	requireParentOwnership bool
	logger                 *logger.Logger
}

func NewCatalog(
	nodeStore model.NodeStore,
	blobStore model.BlobStore,
	publisher model.JobPublisher,
	requireParentOwnership bool,
	logger *logger.Logger,
) *Catalog {
	return &Catalog{
		nodeStore:              nodeStore,
		blobStore:              blobStore,
		publisher:              publisher,
		requireParentOwnership: requireParentOwnership,
		logger:                 logger,
	}
}

func (c *Catalog) CreateNode(ctx context.Context, params model.CreateNodeParams) (model.Node, error) {
	if params.Name == "" {
		return model.Node{}, apperr.NewErrMissingField("name")
	}
	if !storableText(params.Name) {
		return model.Node{}, apperr.NewErrInvalidField("name")
	}
	if params.Kind == "" {
		return model.Node{}, apperr.NewErrMissingField("type")
	}
	if !params.Kind.Valid() {
		return model.Node{}, apperr.NewErrInvalidField("type")
	}
	if params.Kind.HasContent() && params.Data == "" {
		return model.Node{}, apperr.NewErrMissingField("data")
	}
	if !params.Kind.HasContent() && params.Data != "" {
		return model.Node{}, apperr.NewErrFolderData()
	}

	parent, err := c.resolveParent(ctx, params.OwnerID, params.ParentID)
	if err != nil {
		return model.Node{}, err
	}

	node := model.Node{
		ID:        uuid.New(),
		OwnerID:   params.OwnerID,
		Name:      params.Name,
		Kind:      params.Kind,
		Parent:    parent,
		IsPublic:  params.IsPublic,
		CreatedAt: time.Now(),
	}

	if node.Kind.HasContent() {
		payload, err := base64.StdEncoding.DecodeString(params.Data)
		if err != nil {
			return model.Node{}, apperr.NewErrInvalidField("data")
		}

		node.StorageHandle, err = c.blobStore.Store(ctx, payload)
		if err != nil {
			c.logger.Error("Catalog service: failed to store payload",
				"owner_id", params.OwnerID,
				"error", err.Error())
			return model.Node{}, fmt.Errorf("failed to store payload: %w", err)
		}
	}

	saved, err := c.nodeStore.Create(ctx, node)
	if err != nil {
		// the blob is not rolled back
		c.logger.Error("Catalog service: failed to create node, payload left orphaned",
			"owner_id", params.OwnerID,
			"storage_handle", node.StorageHandle,
			"error", err.Error())
		return model.Node{}, fmt.Errorf("failed to create node: %w", err)
	}

	if saved.Kind == model.NodeKindImage {
		job := model.Job{UserID: saved.OwnerID.String(), FileID: saved.ID.String()}
		if err := c.publisher.Enqueue(ctx, job); err != nil {
			c.logger.Warn("Catalog service: failed to enqueue thumbnail job",
				"node_id", saved.ID,
				"error", err.Error())
		}
	}

	c.logger.Info("Catalog service: node created",
		"node_id", saved.ID,
		"kind", saved.Kind)

	return saved, nil
}

func (c *Catalog) resolveParent(ctx context.Context, ownerID uuid.UUID, raw string) (model.ParentRef, error) {
	if raw == "" || raw == rootParentID {
		return model.RootParent(), nil
	}

	id, err := uuid.Parse(raw)
	if err != nil {
		return model.ParentRef{}, apperr.NewErrParentMalformed()
	}

	parent, err := c.nodeStore.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, model.ErrNotFound) {
			return model.ParentRef{}, apperr.NewErrParentNotFound()
		}
		c.logger.Error("Catalog service: failed to get parent",
			"parent_id", id,
			"error", err.Error())
		return model.ParentRef{}, fmt.Errorf("failed to get parent: %w", err)
	}

	if c.requireParentOwnership && parent.OwnerID != ownerID {
		return model.ParentRef{}, apperr.NewErrParentNotFound()
	}

	if parent.Kind != model.NodeKindFolder {
		return model.ParentRef{}, apperr.NewErrParentNotFolder()
	}

	return model.ParentOf(parent.ID), nil
}

// GetNode returns NotFound for malformed, absent and foreign ids alike.
func (c *Catalog) GetNode(ctx context.Context, ownerID uuid.UUID, nodeID string) (model.Node, error) {
	id, err := uuid.Parse(nodeID)
	if err != nil {
		return model.Node{}, apperr.NewErrNotFound()
	}

	node, err := c.nodeStore.GetByIDAndOwner(ctx, id, ownerID)
	if err != nil {
		if errors.Is(err, model.ErrNotFound) {
			return model.Node{}, apperr.NewErrNotFound()
		}
		c.logger.Error("Catalog service: failed to get node",
			"node_id", id,
			"error", err.Error())
		return model.Node{}, fmt.Errorf("failed to get node: %w", err)
	}

	return node, nil
}

// ListChildren returns one page of the children of parentID.
// A parent that cannot be resolved yields an empty page.
func (c *Catalog) ListChildren(ctx context.Context, ownerID uuid.UUID, parentID string, page int) ([]model.Node, error) {
	if page < 0 {
		return nil, apperr.NewErrInvalidPage()
	}

	parent := model.RootParent()
	if parentID != "" && parentID != rootParentID {
		id, err := uuid.Parse(parentID)
		if err != nil {
			return []model.Node{}, nil
		}
		parent = model.ParentOf(id)
	}

	nodes, err := c.nodeStore.ListByParent(ctx, ownerID, parent, model.PageSize, page*model.PageSize)
	if err != nil {
		c.logger.Error("Catalog service: failed to list nodes",
			"parent_id", parentID,
			"page", page,
			"error", err.Error())
		return nil, fmt.Errorf("failed to list nodes: %w", err)
	}

	return nodes, nil
}

// SetVisibility is idempotent. The update is conditional on ownership.
func (c *Catalog) SetVisibility(ctx context.Context, ownerID uuid.UUID, nodeID string, public bool) (model.Node, error) {
	id, err := uuid.Parse(nodeID)
	if err != nil {
		return model.Node{}, apperr.NewErrNotFound()
	}

	node, err := c.nodeStore.SetPublic(ctx, id, ownerID, public)
	if err != nil {
		if errors.Is(err, model.ErrNotFound) {
			return model.Node{}, apperr.NewErrNotFound()
		}
		c.logger.Error("Catalog service: failed to update visibility",
			"node_id", id,
			"error", err.Error())
		return model.Node{}, fmt.Errorf("failed to update visibility: %w", err)
	}

	c.logger.Info("Catalog service: visibility changed",
		"node_id", id,
		"is_public", public)

	return node, nil
}
