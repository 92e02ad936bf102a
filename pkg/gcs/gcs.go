package gcs

import (
	"context"
	"fmt"
	"io"

	"cloud.google.com/go/storage"
)

// Uploader puts product images somewhere buyers can fetch them and
// returns the public URL. Services depend on this interface so tests can
// substitute a stub instead of a real bucket.
type Uploader interface {
	Upload(ctx context.Context, objectName, contentType string, r io.Reader) (string, error)
	Close() error
}

// Client uploads objects to a Google Cloud Storage bucket. Credentials
// come from the environment (GOOGLE_APPLICATION_CREDENTIALS or ambient
// service account).
type Client struct {
	client *storage.Client
	bucket string
}

// Config holds Google Cloud Storage settings.
type Config struct {
	Bucket string
}

// NewClient creates a new Google Cloud Storage client for the configured
// bucket.
func NewClient(ctx context.Context, cfg Config) (*Client, error) {
	client, err := storage.NewClient(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to create GCS client: %w", err)
	}
	return &Client{
		client: client,
		bucket: cfg.Bucket,
	}, nil
}

// Upload streams r into the bucket under objectName and returns the
// object's public URL.
func (c *Client) Upload(ctx context.Context, objectName, contentType string, r io.Reader) (string, error) {
	w := c.client.Bucket(c.bucket).Object(objectName).NewWriter(ctx)
	w.ContentType = contentType

	if _, err := io.Copy(w, r); err != nil {
		w.Close()
		return "", fmt.Errorf("failed to upload object %s: %w", objectName, err)
	}
	// Close flushes the write; upload errors surface here.
	if err := w.Close(); err != nil {
		return "", fmt.Errorf("failed to finalize object %s: %w", objectName, err)
	}

	return fmt.Sprintf("https://storage.googleapis.com/%s/%s", c.bucket, objectName), nil
}

// Close releases the underlying GCS client.
func (c *Client) Close() error {
	return c.client.Close()
}
