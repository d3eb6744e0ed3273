package model

import (
	"context"
	"strconv"
)

// BlobStore persists opaque payloads under generated handles.
type BlobStore interface {
	// Store writes data under a freshly generated unique handle.
	Store(ctx context.Context, data []byte) (string, error)
	// Put writes data under a caller-chosen handle, replacing any previous content.
	Put(ctx context.Context, handle string, data []byte) error
	// Read returns ErrNotFound when the handle does not resolve.
	Read(ctx context.Context, handle string) ([]byte, error)
	// Exists reports false, not an error, for a handle that does not resolve.
	Exists(ctx context.Context, handle string) (bool, error)
}

// RenditionHandle derives the storage handle of a resized rendition.
func RenditionHandle(handle string, width int, ext string) string {
	return handle + "_" + strconv.Itoa(width) + ext
}
