// Package gcs syncs the local data directory with a Google Cloud Storage
// bucket using application default credentials. Objects live under a data/
// prefix mirroring the local layout.
package gcs

import (
	"context"
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"

	"cloud.google.com/go/storage"

	"jackpotiq/internal"
	apperrors "jackpotiq/internal/errors"
)

const objectPrefix = "data/"

// ObjectStore is the GCS-backed implementation of ports.ObjectStore.
type ObjectStore struct {
	client *storage.Client
	bucket string
	dir    string
	log    *internal.Logger
}

// NewObjectStore dials GCS with default credentials. bucket is the target
// bucket; dir the local data directory the objects mirror.
func NewObjectStore(ctx context.Context, bucket, dir string) (*ObjectStore, error) {
	client, err := storage.NewClient(ctx)
	if err != nil {
		return nil, apperrors.SyncFailed(bucket, err)
	}
	return &ObjectStore{
		client: client,
		bucket: bucket,
		dir:    dir,
		log:    internal.DefaultLogger,
	}, nil
}

// Download pulls one object into the data directory. A missing object is
// skipped: the caller continues with whatever local file exists.
func (s *ObjectStore) Download(ctx context.Context, name string) error {
	obj := s.client.Bucket(s.bucket).Object(objectPrefix + name)
	reader, err := obj.NewReader(ctx)
	if errors.Is(err, storage.ErrObjectNotExist) {
		s.log.Info("object %s%s not in bucket %s, using local file", objectPrefix, name, s.bucket)
		return nil
	}
	if err != nil {
		return apperrors.SyncFailed(name, err)
	}
	defer reader.Close()

	if err := os.MkdirAll(s.dir, 0755); err != nil {
		return apperrors.SyncFailed(name, err)
	}
	dest, err := os.Create(filepath.Join(s.dir, name))
	if err != nil {
		return apperrors.SyncFailed(name, err)
	}
	defer dest.Close()

	if _, err := io.Copy(dest, reader); err != nil {
		return apperrors.SyncFailed(name, err)
	}
	s.log.Info("downloaded %s from bucket %s", name, s.bucket)
	return nil
}

// Upload pushes one local file into the bucket. A file missing locally is
// skipped with a warning.
func (s *ObjectStore) Upload(ctx context.Context, name string) error {
	path := filepath.Join(s.dir, name)
	src, err := os.Open(path)
	if os.IsNotExist(err) {
		s.log.Warn("%s not found locally, skipping upload", path)
		return nil
	}
	if err != nil {
		return apperrors.SyncFailed(name, err)
	}
	defer src.Close()

	writer := s.client.Bucket(s.bucket).Object(objectPrefix + name).NewWriter(ctx)
	if _, err := io.Copy(writer, src); err != nil {
		writer.Close()
		return apperrors.SyncFailed(name, err)
	}
	if err := writer.Close(); err != nil {
		return apperrors.SyncFailed(name, fmt.Errorf("finalizing object: %w", err))
	}
	s.log.Info("uploaded %s to bucket %s", name, s.bucket)
	return nil
}

// Close releases the underlying client.
func (s *ObjectStore) Close() error {
	return s.client.Close()
}
