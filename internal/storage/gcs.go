package storage

import (
	"context"
	"errors"
	"fmt"
	"time"

	"personal-finance/internal/models"

	"cloud.google.com/go/storage"
	"github.com/google/uuid"
	"google.golang.org/api/option"
)

const gcsUploadTimeout = 2 * time.Minute

// GCSStore uploads receipts to a Google Cloud Storage bucket
type GCSStore struct {
	client   *storage.Client
	bucket   string
	maxBytes int64
}

// NewGCSStore uses Application Default Credentials unless credentialsFile is set
func NewGCSStore(ctx context.Context, bucket, credentialsFile string, maxBytes int64) (*GCSStore, error) {
	var opts []option.ClientOption
	if credentialsFile != "" {
		opts = append(opts, option.WithCredentialsFile(credentialsFile))
	}

	client, err := storage.NewClient(ctx, opts...)
	if err != nil {
		return nil, fmt.Errorf("create storage client: %w", err)
	}

	return &GCSStore{client: client, bucket: bucket, maxBytes: maxBytes}, nil
}

// Save uploads the file and returns its gs:// URI
func (s *GCSStore) Save(ctx context.Context, userID uuid.UUID, file *models.ReceiptFile) (string, error) {
	if err := ValidateReceipt(file, s.maxBytes); err != nil {
		return "", err
	}

	ctx, cancel := context.WithTimeout(ctx, gcsUploadTimeout)
	defer cancel()

	name := objectName(userID, file)
	w := s.client.Bucket(s.bucket).Object(name).NewWriter(ctx)
	w.ContentType = file.ContentType

	if _, err := w.Write(file.Data); err != nil {
		_ = w.Close()
		return "", fmt.Errorf("write receipt to GCS: %w", err)
	}
	if err := w.Close(); err != nil {
		return "", fmt.Errorf("finalize receipt upload: %w", err)
	}

	return GCSURI(s.bucket, name), nil
}

// Delete removes an object uploaded by Save. A missing object is not an error.
func (s *GCSStore) Delete(ctx context.Context, url string) error {
	name, err := objectFromURL(url, GCSURI(s.bucket, ""))
	if err != nil {
		return err
	}

	ctx, cancel := context.WithTimeout(ctx, gcsUploadTimeout)
	defer cancel()

	err = s.client.Bucket(s.bucket).Object(name).Delete(ctx)
	if err != nil && !errors.Is(err, storage.ErrObjectNotExist) {
		return fmt.Errorf("delete receipt from GCS: %w", err)
	}
	return nil
}

// Close releases the storage client
func (s *GCSStore) Close() error {
	return s.client.Close()
}

// GCSURI formats a gs://bucket/object reference
func GCSURI(bucket, object string) string {
	return fmt.Sprintf("gs://%s/%s", bucket, object)
}
