package storage

import (
	"context"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"personal-finance/internal/models"

	"github.com/google/uuid"
)

// LocalStore writes receipts below a directory on the local filesystem
type LocalStore struct {
	dir      string
	baseURL  string
	maxBytes int64
}

// NewLocalStore creates the root directory if needed
func NewLocalStore(dir, baseURL string, maxBytes int64) (*LocalStore, error) {
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return nil, fmt.Errorf("create receipt directory: %w", err)
	}
	return &LocalStore{
		dir:      dir,
		baseURL:  strings.TrimRight(baseURL, "/"),
		maxBytes: maxBytes,
	}, nil
}

// Save validates and writes the file, returning its public URL
func (s *LocalStore) Save(ctx context.Context, userID uuid.UUID, file *models.ReceiptFile) (string, error) {
	if err := ValidateReceipt(file, s.maxBytes); err != nil {
		return "", err
	}
	if err := ctx.Err(); err != nil {
		return "", err
	}

	name := objectName(userID, file)
	fullPath := filepath.Join(s.dir, filepath.FromSlash(name))

	if err := os.MkdirAll(filepath.Dir(fullPath), 0o755); err != nil {
		return "", fmt.Errorf("create receipt directory: %w", err)
	}
	if err := os.WriteFile(fullPath, file.Data, 0o644); err != nil {
		return "", fmt.Errorf("write receipt: %w", err)
	}

	return s.baseURL + "/" + name, nil
}

// Delete removes a file written by Save. A file that is already gone is not an error.
func (s *LocalStore) Delete(ctx context.Context, url string) error {
	name, err := objectFromURL(url, s.baseURL+"/")
	if err != nil {
		return err
	}
	err = os.Remove(filepath.Join(s.dir, filepath.FromSlash(name)))
	if err != nil && !errors.Is(err, os.ErrNotExist) {
		return fmt.Errorf("remove receipt: %w", err)
	}
	return nil
}
