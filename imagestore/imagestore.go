// Package imagestore relays uploaded images to an external hosting
// provider behind a small capability interface, so the concrete provider
// is swappable without touching handler code.
package imagestore

import (
	"context"
	"errors"
	"fmt"
	"io"
	"path/filepath"
	"strings"

	"github.com/google/uuid"
)

// ErrUnsupportedFormat is returned for files outside the allow-list.
var ErrUnsupportedFormat = errors.New("unsupported image format")

// Store uploads one file per call and returns its hosted URL.
type Store interface {
	Upload(ctx context.Context, src io.Reader, filename string) (string, error)
}

var allowedExtensions = map[string]string{
	".jpg":  "image/jpeg",
	".jpeg": "image/jpeg",
	".png":  "image/png",
	".webp": "image/webp",
}

// ContentType maps an allow-listed filename to its MIME type.
// Returns ErrUnsupportedFormat for anything else.
func ContentType(filename string) (string, error) {
	ext := strings.ToLower(filepath.Ext(filename))
	contentType, ok := allowedExtensions[ext]
	if !ok {
		return "", fmt.Errorf("%w: %s", ErrUnsupportedFormat, ext)
	}
	return contentType, nil
}

// ObjectKey builds a collision-free key under the configured folder
// namespace, keeping the original extension.
func ObjectKey(folder, filename string) string {
	ext := strings.ToLower(filepath.Ext(filename))
	key := uuid.New().String() + ext
	if folder == "" {
		return key
	}
	return strings.TrimSuffix(folder, "/") + "/" + key
}
