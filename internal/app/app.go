// Package app opens the backing connections shared by the server and worker binaries.
package app

import (
	"context"
	"errors"
	"fmt"

	"github.com/minio/minio-go/v7"
	"github.com/minio/minio-go/v7/pkg/credentials"
	goredis "github.com/redis/go-redis/v9"

	cache "github.com/dtroode/filesmanager-server/internal/cache/redis"
	"github.com/dtroode/filesmanager-server/internal/config"
	"github.com/dtroode/filesmanager-server/internal/model"
	"github.com/dtroode/filesmanager-server/internal/repository/postgres"
	"github.com/dtroode/filesmanager-server/internal/storage/fs"
	storage "github.com/dtroode/filesmanager-server/internal/storage/minio"
)

// Deps holds the live connections of a process.
type Deps struct {
	DB    *postgres.Connection
	Redis *goredis.Client
	Blobs model.BlobStore
}

// Close releases every connection that was opened.
func (d *Deps) Close() error {
	var errs []error
	if d.Redis != nil {
		errs = append(errs, d.Redis.Close())
	}
	if d.DB != nil {
		errs = append(errs, d.DB.Close())
	}
	return errors.Join(errs...)
}

// Open connects to postgres, redis and the configured blob store.
// Connections opened before a failure are closed.
func Open(ctx context.Context, cfg *config.Config) (*Deps, error) {
	d := &Deps{}

	db, err := postgres.NewConnection(ctx, cfg.Database.DSN())
	if err != nil {
		return nil, fmt.Errorf("failed to initialize metadata store: %w", err)
	}
	d.DB = db

	rdb, err := cache.NewClient(ctx, cfg.Redis.Addr(), cfg.Redis.Password, cfg.Redis.DB)
	if err != nil {
		d.Close()
		return nil, fmt.Errorf("failed to initialize redis: %w", err)
	}
	d.Redis = rdb

	blobs, err := NewBlobStore(ctx, cfg)
	if err != nil {
		d.Close()
		return nil, err
	}
	d.Blobs = blobs

	return d, nil
}

// NewBlobStore builds the blob store selected by STORAGE_BACKEND.
func NewBlobStore(ctx context.Context, cfg *config.Config) (model.BlobStore, error) {
	switch cfg.Storage.Backend {
	case "minio":
		minioClient, err := minio.New(cfg.Minio.Endpoint, &minio.Options{
			Creds:  credentials.NewStaticV4(cfg.Minio.AccessKey, cfg.Minio.SecretKey, ""),
			Secure: cfg.Minio.UseSSL,
		})
		if err != nil {
			return nil, fmt.Errorf("failed to create minio client: %w", err)
		}

		client, err := storage.NewClient(ctx, minioClient, cfg.Minio.Bucket)
		if err != nil {
			return nil, fmt.Errorf("failed to initialize storage client: %w", err)
		}
		return client, nil
	case "fs":
		store, err := fs.NewStore(cfg.Folder)
		if err != nil {
			return nil, fmt.Errorf("failed to initialize content root: %w", err)
		}
		return store, nil
	default:
		return nil, fmt.Errorf("unknown storage backend %q", cfg.Storage.Backend)
	}
}
