package storage

import (
	"errors"
	"fmt"
	"net/http"
	"path"
	"path/filepath"
	"strings"

	"personal-finance/internal/models"

	"github.com/google/uuid"
)

var (
	ErrReceiptEmpty           = errors.New("receipt file is empty")
	ErrReceiptTooLarge        = errors.New("receipt file exceeds the maximum size")
	ErrUnsupportedReceiptType = errors.New("receipt file type is not supported")
	ErrForeignReceiptURL      = errors.New("receipt url does not belong to this store")
)

var allowedReceiptTypes = map[string]string{
	"image/jpeg":      ".jpg",
	"image/png":       ".png",
	"application/pdf": ".pdf",
}

// ValidateReceipt checks size and sniffed content type, filling ContentType when it is missing
func ValidateReceipt(file *models.ReceiptFile, maxBytes int64) error {
	if file == nil || file.Size() == 0 {
		return ErrReceiptEmpty
	}
	if file.Size() > maxBytes {
		return fmt.Errorf("%w: %d bytes (max %d)", ErrReceiptTooLarge, file.Size(), maxBytes)
	}

	detected := http.DetectContentType(file.Data)
	if idx := strings.Index(detected, ";"); idx >= 0 {
		detected = detected[:idx]
	}
	if _, ok := allowedReceiptTypes[detected]; !ok {
		return fmt.Errorf("%w: %s", ErrUnsupportedReceiptType, detected)
	}

	file.ContentType = detected
	return nil
}

// objectName builds receipts/<user>/<random><ext>, ignoring the client's file name
func objectName(userID uuid.UUID, file *models.ReceiptFile) string {
	ext := allowedReceiptTypes[file.ContentType]
	if ext == "" {
		ext = strings.ToLower(filepath.Ext(file.Filename))
	}
	return path.Join("receipts", userID.String(), uuid.NewString()+ext)
}

// objectFromURL strips prefix from url and checks the rest is a name built by objectName
func objectFromURL(url, prefix string) (string, error) {
	name, ok := strings.CutPrefix(url, prefix)
	if !ok || name == "" || path.Clean(name) != name || !strings.HasPrefix(name, "receipts/") {
		return "", fmt.Errorf("%w: %s", ErrForeignReceiptURL, url)
	}
	return name, nil
}
