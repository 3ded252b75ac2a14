package gcs

import (
	"context"
	"errors"
	"fmt"
	"io"
	"net/http"
	"strings"
	"time"

	"cloud.google.com/go/storage"
	"google.golang.org/api/option"

	"github.com/wanjiru-dev/consultpro-api/internal/application/documents"
)

var _ documents.ObjectStorage = (*Storage)(nil)

// Storage stores document binaries in a Google Cloud Storage bucket.
type Storage struct {
	client *storage.Client
	bucket string
}

// New builds a Storage over the given bucket. When credentialsJSON is empty
// the client falls back to application default credentials.
func New(ctx context.Context, bucket, credentialsJSON string) (*Storage, error) {
	if strings.TrimSpace(bucket) == "" {
		return nil, errors.New("gcs: bucket is required")
	}

	var (
		client *storage.Client
		err    error
	)
	if strings.TrimSpace(credentialsJSON) != "" {
		client, err = storage.NewClient(ctx, option.WithCredentialsJSON([]byte(credentialsJSON)))
	} else {
		client, err = storage.NewClient(ctx)
	}
	if err != nil {
		return nil, fmt.Errorf("gcs: create client: %w", err)
	}

	return &Storage{client: client, bucket: bucket}, nil
}

// Upload writes the object under key and returns the detected content type.
func (s *Storage) Upload(ctx context.Context, key string, r io.Reader) (string, error) {
	data, err := io.ReadAll(r)
	if err != nil {
		return "", fmt.Errorf("gcs: read upload: %w", err)
	}

	contentType := detectContentType(key, data)

	wc := s.client.Bucket(s.bucket).Object(key).NewWriter(ctx)
	wc.ContentType = contentType
	if _, err := wc.Write(data); err != nil {
		return "", fmt.Errorf("gcs: write object %s: %w", key, err)
	}
	if err := wc.Close(); err != nil {
		return "", fmt.Errorf("gcs: close object %s: %w", key, err)
	}
	return contentType, nil
}

// Delete removes the object. A missing object is not an error.
func (s *Storage) Delete(ctx context.Context, key string) error {
	err := s.client.Bucket(s.bucket).Object(key).Delete(ctx)
	if err != nil {
		if errors.Is(err, storage.ErrObjectNotExist) {
			return nil
		}
		return fmt.Errorf("gcs: delete object %s: %w", key, err)
	}
	return nil
}

// SignedURL returns a V4 signed download link for the object. The bucket
// handle signs with the client's credentials.
func (s *Storage) SignedURL(_ context.Context, key string, ttl time.Duration) (string, error) {
	opts := &storage.SignedURLOptions{
		Scheme:  storage.SigningSchemeV4,
		Method:  http.MethodGet,
		Expires: time.Now().Add(ttl),
	}
	url, err := s.client.Bucket(s.bucket).SignedURL(key, opts)
	if err != nil {
		return "", fmt.Errorf("gcs: sign url for %s: %w", key, err)
	}
	return url, nil
}

// Close releases the underlying client.
func (s *Storage) Close() error {
	return s.client.Close()
}

// detectContentType sniffs the payload, then patches the office formats that
// sniff as plain zip archives.
func detectContentType(key string, data []byte) string {
	contentType := http.DetectContentType(data)
	if contentType == "application/zip" {
		switch {
		case strings.HasSuffix(key, ".docx"):
			contentType = "application/vnd.openxmlformats-officedocument.wordprocessingml.document"
		case strings.HasSuffix(key, ".xlsx"):
			contentType = "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet"
		}
	}
	return contentType
}
