package documents

import (
	"context"
	"io"
	"time"
)

// ObjectStorage is the port to the binary store holding uploaded files.
// Implemented by infrastructure/gcs.
type ObjectStorage interface {
	// Upload writes the object under key and returns the detected content type.
	Upload(ctx context.Context, key string, r io.Reader) (contentType string, err error)
	// Delete removes the object. Callers treat failure as best-effort.
	Delete(ctx context.Context, key string) error
	// SignedURL returns a time-limited download link for the object.
	SignedURL(ctx context.Context, key string, ttl time.Duration) (string, error)
}
