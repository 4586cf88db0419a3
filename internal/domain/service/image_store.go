package service

import (
	"context"
	"io"
)

// ImageStore abstracts the external image-hosting service. Uploads must
// complete before any local record change that references the URL; deletes
// of replaced or orphaned images are best-effort.
type ImageStore interface {
	// Upload stores the image content and returns the public URL it will be
	// served from.
	Upload(ctx context.Context, filename, contentType string, content io.Reader) (string, error)

	// Delete removes a previously uploaded image by its public URL.
	Delete(ctx context.Context, url string) error
}
