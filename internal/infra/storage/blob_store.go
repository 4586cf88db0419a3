// Package storage implements the image-hosting adapter on top of a
// gocloud.dev blob bucket. The bucket URL decides the backend: file:// for
// local disk, mem:// in tests, or a cloud bucket in deployment.
package storage

import (
	"context"
	"io"
	"log/slog"
	"path"
	"strings"

	"storefront/config"
	"storefront/internal/domain/service"
	"storefront/internal/errors"

	"github.com/google/uuid"
	"go.uber.org/fx"
	"gocloud.dev/blob"
	_ "gocloud.dev/blob/fileblob"
	_ "gocloud.dev/blob/memblob"
)

const imageKeyPrefix = "products/"

// blobImageStore stores product images in a blob bucket and serves them from
// a configured public base URL.
type blobImageStore struct {
	bucket    *blob.Bucket
	publicURL string
	logger    *slog.Logger
}

// Params defines the required parameters
type Params struct {
	fx.In
	fx.Lifecycle

	Config *config.Config
	Logger *slog.Logger
}

// New opens the configured bucket and registers its teardown.
func New(params Params) (service.ImageStore, error) {
	if params.Config.Storage == nil || params.Config.Storage.BucketURL == "" {
		return nil, errors.New("storage.bucketUrl is required")
	}

	bucket, err := blob.OpenBucket(context.Background(), params.Config.Storage.BucketURL)
	if err != nil {
		return nil, errors.Wrap(err, "failed to open image bucket")
	}

	params.Append(fx.Hook{
		OnStop: func(_ context.Context) error {
			return bucket.Close()
		},
	})

	return &blobImageStore{
		bucket:    bucket,
		publicURL: strings.TrimSuffix(params.Config.Storage.PublicURL, "/"),
		logger:    params.Logger,
	}, nil
}

// NewWithBucket builds an image store around an already-open bucket.
// Used by tests with a mem:// bucket.
func NewWithBucket(bucket *blob.Bucket, publicURL string, logger *slog.Logger) service.ImageStore {
	return &blobImageStore{
		bucket:    bucket,
		publicURL: strings.TrimSuffix(publicURL, "/"),
		logger:    logger,
	}
}

// Upload writes the image under a fresh key and returns its public URL.
func (s *blobImageStore) Upload(ctx context.Context, filename, contentType string, content io.Reader) (string, error) {
	key := imageKeyPrefix + uuid.NewString() + path.Ext(filename)

	writer, err := s.bucket.NewWriter(ctx, key, &blob.WriterOptions{ContentType: contentType})
	if err != nil {
		return "", errors.Wrap(err, "failed to open bucket writer")
	}

	if _, err := io.Copy(writer, content); err != nil {
		// Abort the write; a half-written object must not become visible.
		_ = writer.Close()
		_ = s.bucket.Delete(ctx, key)

		return "", errors.Wrap(err, "failed to write image content")
	}

	if err := writer.Close(); err != nil {
		return "", errors.Wrap(err, "failed to finalize image upload")
	}

	return s.publicURL + "/" + key, nil
}

// Delete removes a previously uploaded image by its public URL.
func (s *blobImageStore) Delete(ctx context.Context, url string) error {
	key := s.keyFromURL(url)
	if key == "" {
		return errors.Errorf("url %q does not belong to this image store", url)
	}

	if err := s.bucket.Delete(ctx, key); err != nil {
		return errors.Wrap(err, "failed to delete image")
	}

	return nil
}

// keyFromURL recovers the bucket key from a public URL produced by Upload.
func (s *blobImageStore) keyFromURL(url string) string {
	if s.publicURL != "" && strings.HasPrefix(url, s.publicURL+"/") {
		return strings.TrimPrefix(url, s.publicURL+"/")
	}

	if idx := strings.Index(url, imageKeyPrefix); idx >= 0 {
		return url[idx:]
	}

	return ""
}
