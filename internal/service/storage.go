package service

import (
	"bytes"
	"context"
	"fmt"
	"io"
	"path"
	"strings"

	"cloud.google.com/go/storage"
	"google.golang.org/api/option"
)

// GCSBlobStore stores evidence binaries in a Google Cloud Storage bucket and
// hands back gs:// URLs for the database rows.
type GCSBlobStore struct {
	client *storage.Client
	bucket string
}

// NewGCSBlobStore creates a blob store against one bucket. An empty credential
// file path falls back to application default credentials.
func NewGCSBlobStore(ctx context.Context, bucket, credentialFile string) (*GCSBlobStore, error) {
	var opts []option.ClientOption
	if credentialFile != "" {
		opts = append(opts, option.WithCredentialsFile(credentialFile))
	}
	client, err := storage.NewClient(ctx, opts...)
	if err != nil {
		return nil, fmt.Errorf("failed to create GCS storage client: %w", err)
	}
	return &GCSBlobStore{client: client, bucket: bucket}, nil
}

// Upload writes one object under the joined path segments and returns its URL
func (s *GCSBlobStore) Upload(ctx context.Context, name, contentType string, data []byte, pathSegments ...string) (string, error) {
	objectPath := path.Join(append(pathSegments, name)...)

	writer := s.client.Bucket(s.bucket).Object(objectPath).NewWriter(ctx)
	writer.ContentType = contentType
	writer.CacheControl = "no-cache, no-store, must-revalidate"

	if _, err := io.Copy(writer, bytes.NewReader(data)); err != nil {
		return "", fmt.Errorf("failed to write GCS object %s: %w", objectPath, err)
	}
	if err := writer.Close(); err != nil {
		return "", fmt.Errorf("failed to close GCS writer for %s: %w", objectPath, err)
	}

	return fmt.Sprintf("gs://%s/%s", s.bucket, objectPath), nil
}

// Delete removes the object a previously returned URL points at
func (s *GCSBlobStore) Delete(ctx context.Context, url string) error {
	objectPath := strings.TrimPrefix(url, fmt.Sprintf("gs://%s/", s.bucket))
	if objectPath == url {
		return fmt.Errorf("blob URL %s does not belong to bucket %s", url, s.bucket)
	}
	if err := s.client.Bucket(s.bucket).Object(objectPath).Delete(ctx); err != nil {
		return fmt.Errorf("failed to delete GCS object %s: %w", objectPath, err)
	}
	return nil
}

// Close releases the underlying storage client
func (s *GCSBlobStore) Close() error {
	return s.client.Close()
}
