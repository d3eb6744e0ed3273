// Package fs keeps blobs as files under a single content root.
package fs

import (
	"context"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/google/uuid"

	"github.com/dtroode/filesmanager-server/internal/model"
)

var _ model.BlobStore = (*Store)(nil)

// Store handles are absolute file paths inside root.
type Store struct {
	root string
}

func NewStore(root string) (*Store, error) {
	abs, err := filepath.Abs(root)
	if err != nil {
		return nil, fmt.Errorf("failed to resolve content root: %w", err)
	}
	return &Store{root: abs}, nil
}

func (s *Store) Root() string {
	return s.root
}

// Store creates the root if needed and writes data under a random name.
func (s *Store) Store(ctx context.Context, data []byte) (string, error) {
	if err := ctx.Err(); err != nil {
		return "", err
	}

	if err := os.MkdirAll(s.root, 0o755); err != nil {
		return "", fmt.Errorf("failed to create content root: %w", err)
	}

	handle := filepath.Join(s.root, uuid.NewString())
	if err := writeFile(handle, data); err != nil {
		return "", err
	}

	return handle, nil
}

func (s *Store) Put(ctx context.Context, handle string, data []byte) error {
	if err := ctx.Err(); err != nil {
		return err
	}

	path, ok := s.resolve(handle)
	if !ok {
		return fmt.Errorf("handle %q is outside content root", handle)
	}

	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return fmt.Errorf("failed to create content root: %w", err)
	}

	return writeFile(path, data)
}

func (s *Store) Read(ctx context.Context, handle string) ([]byte, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	path, ok := s.resolve(handle)
	if !ok {
		return nil, model.ErrNotFound
	}

	data, err := os.ReadFile(path)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return nil, model.ErrNotFound
		}
		return nil, fmt.Errorf("failed to read blob: %w", err)
	}

	return data, nil
}

// Exists reports false for anything that is not a regular file under root.
func (s *Store) Exists(ctx context.Context, handle string) (bool, error) {
	if err := ctx.Err(); err != nil {
		return false, err
	}

	path, ok := s.resolve(handle)
	if !ok {
		return false, nil
	}

	info, err := os.Stat(path)
	if err != nil {
		return false, nil
	}

	return info.Mode().IsRegular(), nil
}

func (s *Store) resolve(handle string) (string, bool) {
	if handle == "" {
		return "", false
	}

	path := filepath.Clean(handle)
	if !filepath.IsAbs(path) {
		path = filepath.Join(s.root, path)
	}

	rel, err := filepath.Rel(s.root, path)
	if err != nil || rel == "." || rel == ".." || strings.HasPrefix(rel, ".."+string(filepath.Separator)) {
		return "", false
	}

	return path, true
}

// writeFile replaces path atomically through a temp file in the same directory.
func writeFile(path string, data []byte) error {
	tmp, err := os.CreateTemp(filepath.Dir(path), ".tmp-*")
	if err != nil {
		return fmt.Errorf("failed to create temp file: %w", err)
	}
	tmpPath := tmp.Name()

	success := false
	defer func() {
		if !success {
			os.Remove(tmpPath)
		}
	}()

	if _, err := tmp.Write(data); err != nil {
		tmp.Close()
		return fmt.Errorf("failed to write data: %w", err)
	}

	if err := tmp.Close(); err != nil {
		return fmt.Errorf("failed to close temp file: %w", err)
	}

	if err := os.Rename(tmpPath, path); err != nil {
		return fmt.Errorf("failed to rename temp file: %w", err)
	}

	success = true
	return nil
}
