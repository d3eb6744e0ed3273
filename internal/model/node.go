package model

import (
	"context"
	"time"

	"github.com/google/uuid"
)

// PageSize is the fixed number of nodes returned per listing page.
const PageSize = 20

// NodeStore defines persistence operations for catalog nodes.
type NodeStore interface {
	Create(ctx context.Context, node Node) (Node, error)
	GetByID(ctx context.Context, id uuid.UUID) (Node, error)
	GetByIDAndOwner(ctx context.Context, id, ownerID uuid.UUID) (Node, error)
	ListByParent(ctx context.Context, ownerID uuid.UUID, parent ParentRef, limit, offset int) ([]Node, error)
	SetPublic(ctx context.Context, id, ownerID uuid.UUID, public bool) (Node, error)
	Count(ctx context.Context) (int64, error)
}

// NodeKind enumerates node kinds.
type NodeKind string

const (
	// NodeKindFolder groups other nodes and never carries content.
	NodeKindFolder NodeKind = "folder"
	// NodeKindFile is an opaque uploaded payload.
	NodeKindFile NodeKind = "file"
	// NodeKindImage is a payload eligible for thumbnail generation.
	NodeKindImage NodeKind = "image"
)

// Valid reports whether k is one of the known kinds.
func (k NodeKind) Valid() bool {
	switch k {
	case NodeKindFolder, NodeKindFile, NodeKindImage:
		return true
	}
	return false
}

// HasContent reports whether nodes of kind k carry a storage handle.
func (k NodeKind) HasContent() bool {
	return k == NodeKindFile || k == NodeKindImage
}

// ParentRef is either the hierarchy root or a reference to a folder node.
// The zero value is the root.
type ParentRef struct {
	id uuid.UUID
	ok bool
}

// RootParent returns the reference used by top-level nodes.
func RootParent() ParentRef {
	return ParentRef{}
}

// ParentOf returns a reference to the node with the given ID.
func ParentOf(id uuid.UUID) ParentRef {
	return ParentRef{id: id, ok: true}
}

// IsRoot reports whether the reference has no parent node.
func (p ParentRef) IsRoot() bool {
	return !p.ok
}

// ID returns the parent node ID and false for the root.
func (p ParentRef) ID() (uuid.UUID, bool) {
	return p.id, p.ok
}

// Node is an entry of the file hierarchy.
type Node struct {
	ID            uuid.UUID
	OwnerID       uuid.UUID
	Name          string
	Kind          NodeKind
	Parent        ParentRef
	IsPublic      bool
	StorageHandle string
	CreatedAt     time.Time
}

// CreateNodeParams contains the raw inputs of a node upload.
// Data is the base64 transport encoding of the payload.
type CreateNodeParams struct {
	OwnerID  uuid.UUID
	Name     string
	Kind     NodeKind
	ParentID string
	IsPublic bool
	Data     string
}

// Rendition is a resized derivative of an image node.
type Rendition struct {
	NodeID        uuid.UUID
	Width         int
	StorageHandle string
}

// RenditionWidths lists the generated thumbnail widths, largest first.
var RenditionWidths = []int{500, 250, 100}

// Content is the payload returned to an authorized reader.
type Content struct {
	Data        []byte
	ContentType string
}
