package service

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"path/filepath"

	"github.com/disintegration/imaging"
	"github.com/google/uuid"

	"github.com/dtroode/filesmanager-server/internal/apperr"
	"github.com/dtroode/filesmanager-server/internal/logger"
	"github.com/dtroode/filesmanager-server/internal/model"
)

// Thumbnail renders resized copies of image nodes.
type Thumbnail struct {
	nodeStore model.NodeStore
	blobStore model.BlobStore
	widths    []int
	logger    *logger.Logger
}

func NewThumbnail(nodeStore model.NodeStore, blobStore model.BlobStore, logger *logger.Logger) *Thumbnail {
	return &Thumbnail{
		nodeStore: nodeStore,
		blobStore: blobStore,
		widths:    model.RenditionWidths,
		logger:    logger,
	}
}

// Process generates every rendition for the job's node.
// An error means the job is not processable and should be rejected.
// Problems with the image data itself are logged and the job still completes.
func (t *Thumbnail) Process(ctx context.Context, job model.Job) ([]model.Rendition, error) {
	node, err := t.resolve(ctx, job)
	if err != nil {
		return nil, err
	}

	data, err := t.blobStore.Read(ctx, node.StorageHandle)
	if err != nil {
		t.logger.Error("Thumbnail service: failed to read original",
			"node_id", node.ID,
			"storage_handle", node.StorageHandle,
			"error", err.Error())
		return nil, nil
	}

	img, err := imaging.Decode(bytes.NewReader(data), imaging.AutoOrientation(true))
	if err != nil {
		t.logger.Error("Thumbnail service: failed to decode original",
			"node_id", node.ID,
			"error", err.Error())
		return nil, nil
	}

	ext := filepath.Ext(node.Name)
	format, err := imaging.FormatFromExtension(ext)
	if err != nil {
		format = imaging.PNG
	}

	renditions := make([]model.Rendition, 0, len(t.widths))
	for _, width := range t.widths {
		handle := model.RenditionHandle(node.StorageHandle, width, ext)

		var buf bytes.Buffer
		if err := imaging.Encode(&buf, imaging.Resize(img, width, 0, imaging.Lanczos), format); err != nil {
			t.logger.Warn("Thumbnail service: failed to encode rendition",
				"node_id", node.ID,
				"width", width,
				"error", err.Error())
			continue
		}

		if err := t.blobStore.Put(ctx, handle, buf.Bytes()); err != nil {
			t.logger.Warn("Thumbnail service: failed to store rendition",
				"node_id", node.ID,
				"width", width,
				"error", err.Error())
			continue
		}

		renditions = append(renditions, model.Rendition{NodeID: node.ID, Width: width, StorageHandle: handle})
	}

	t.logger.Info("Thumbnail service: renditions generated",
		"node_id", node.ID,
		"count", len(renditions))

	return renditions, nil
}

func (t *Thumbnail) resolve(ctx context.Context, job model.Job) (model.Node, error) {
	if job.FileID == "" {
		return model.Node{}, apperr.NewErrMissingField("fileId")
	}
	if job.UserID == "" {
		return model.Node{}, apperr.NewErrMissingField("userId")
	}

	nodeID, err := uuid.Parse(job.FileID)
	if err != nil {
		return model.Node{}, apperr.NewErrNotFound()
	}
	ownerID, err := uuid.Parse(job.UserID)
	if err != nil {
		return model.Node{}, apperr.NewErrNotFound()
	}

	node, err := t.nodeStore.GetByIDAndOwner(ctx, nodeID, ownerID)
	if err != nil {
		if errors.Is(err, model.ErrNotFound) {
			return model.Node{}, apperr.NewErrNotFound()
		}
		return model.Node{}, fmt.Errorf("failed to get node: %w", err)
	}

	if node.Kind != model.NodeKindImage {
		return model.Node{}, apperr.NewErrInvalidField("type")
	}
	if node.StorageHandle == "" {
		return model.Node{}, apperr.NewErrMissingField("storage handle")
	}

	return node, nil
}
