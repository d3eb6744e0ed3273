package minio

import (
	"bytes"
	"context"
	"fmt"
	"io"

	"github.com/google/uuid"
	"github.com/minio/minio-go/v7"

	"github.com/dtroode/filesmanager-server/internal/model"
)

const codeNoSuchKey = "NoSuchKey"

// Internal adapter interface to enable mocking without a real MinIO server.
type minioAPI interface {
	BucketExists(ctx context.Context, bucketName string) (bool, error)
	MakeBucket(ctx context.Context, bucketName string, opts minio.MakeBucketOptions) error
	PutObject(ctx context.Context, bucketName, objectName string, reader io.Reader, objectSize int64, opts minio.PutObjectOptions) (minio.UploadInfo, error)
	GetObject(ctx context.Context, bucketName, objectName string, opts minio.GetObjectOptions) (io.ReadCloser, error)
	StatObject(ctx context.Context, bucketName, objectName string, opts minio.StatObjectOptions) (minio.ObjectInfo, error)
	ListBuckets(ctx context.Context) ([]minio.BucketInfo, error)
}

type minioClientWrapper struct{ c *minio.Client }

func (w minioClientWrapper) BucketExists(ctx context.Context, bucketName string) (bool, error) {
	return w.c.BucketExists(ctx, bucketName)
}

func (w minioClientWrapper) MakeBucket(ctx context.Context, bucketName string, opts minio.MakeBucketOptions) error {
	return w.c.MakeBucket(ctx, bucketName, opts)
}

func (w minioClientWrapper) PutObject(ctx context.Context, bucketName, objectName string, reader io.Reader, objectSize int64, opts minio.PutObjectOptions) (minio.UploadInfo, error) {
	return w.c.PutObject(ctx, bucketName, objectName, reader, objectSize, opts)
}

func (w minioClientWrapper) GetObject(ctx context.Context, bucketName, objectName string, opts minio.GetObjectOptions) (io.ReadCloser, error) {
	obj, err := w.c.GetObject(ctx, bucketName, objectName, opts)
	if err != nil {
		return nil, err
	}
	return obj, nil
}

func (w minioClientWrapper) StatObject(ctx context.Context, bucketName, objectName string, opts minio.StatObjectOptions) (minio.ObjectInfo, error) {
	return w.c.StatObject(ctx, bucketName, objectName, opts)
}

func (w minioClientWrapper) ListBuckets(ctx context.Context) ([]minio.BucketInfo, error) {
	return w.c.ListBuckets(ctx)
}

var (
	_ model.BlobStore = (*Client)(nil)
	_ model.Pinger    = (*Client)(nil)
)

// Client keeps blobs as objects in one bucket. Handles are object keys.
type Client struct {
	api    minioAPI
	bucket string
}

func NewClient(ctx context.Context, client *minio.Client, bucket string) (*Client, error) {
	return NewClientWithAPI(ctx, minioClientWrapper{c: client}, bucket)
}

// NewClientWithAPI allows injecting a mockable API (used in tests).
func NewClientWithAPI(ctx context.Context, api minioAPI, bucket string) (*Client, error) {
	c := &Client{
		api:    api,
		bucket: bucket,
	}

	if err := c.ensureBucketExists(ctx); err != nil {
		return nil, fmt.Errorf("failed to ensure bucket exists: %w", err)
	}

	return c, nil
}

func (c *Client) ensureBucketExists(ctx context.Context) error {
	exists, err := c.api.BucketExists(ctx, c.bucket)
	if err != nil {
		return fmt.Errorf("failed to check bucket existence: %w", err)
	}

	if !exists {
		err = c.api.MakeBucket(ctx, c.bucket, minio.MakeBucketOptions{})
		if err != nil {
			return fmt.Errorf("failed to create bucket: %w", err)
		}
	}

	return nil
}

// Store uploads data under a fresh random key and returns that key.
func (c *Client) Store(ctx context.Context, data []byte) (string, error) {
	if err := c.ensureBucketExists(ctx); err != nil {
		return "", fmt.Errorf("failed to ensure bucket exists: %w", err)
	}

	key := uuid.NewString()
	if err := c.Put(ctx, key, data); err != nil {
		return "", err
	}

	return key, nil
}

func (c *Client) Put(ctx context.Context, handle string, data []byte) error {
	_, err := c.api.PutObject(ctx, c.bucket, handle, bytes.NewReader(data), int64(len(data)), minio.PutObjectOptions{})
	if err != nil {
		return fmt.Errorf("failed to upload object: %w", err)
	}
	return nil
}

func (c *Client) Read(ctx context.Context, handle string) ([]byte, error) {
	if handle == "" {
		return nil, model.ErrNotFound
	}

	obj, err := c.api.GetObject(ctx, c.bucket, handle, minio.GetObjectOptions{})
	if err != nil {
		if isNoSuchKey(err) {
			return nil, model.ErrNotFound
		}
		return nil, fmt.Errorf("failed to get object: %w", err)
	}
	defer obj.Close()

	// GetObject is lazy; a missing key only surfaces on the first read.
	data, err := io.ReadAll(obj)
	if err != nil {
		if isNoSuchKey(err) {
			return nil, model.ErrNotFound
		}
		return nil, fmt.Errorf("failed to read object: %w", err)
	}

	return data, nil
}

func (c *Client) Exists(ctx context.Context, handle string) (bool, error) {
	if handle == "" {
		return false, nil
	}

	_, err := c.api.StatObject(ctx, c.bucket, handle, minio.StatObjectOptions{})
	if err != nil {
		if isNoSuchKey(err) {
			return false, nil
		}
		return false, fmt.Errorf("failed to stat object: %w", err)
	}
	return true, nil
}

func (c *Client) Ping(ctx context.Context) error {
	if _, err := c.api.ListBuckets(ctx); err != nil {
		return fmt.Errorf("failed to reach object storage: %w", err)
	}
	return nil
}

func isNoSuchKey(err error) bool {
	return minio.ToErrorResponse(err).Code == codeNoSuchKey
}
