// Package media stores uploaded product images on a third-party media host
// (S3) or, for local development, on the file system.
package media

import (
	"context"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/google/uuid"
	"github.com/rs/zerolog"
)

// Storage persists an uploaded image and returns its public URL.
type Storage interface {
	// Store writes the image bytes under a generated name and returns the URL
	// clients should use to reference it.
	Store(ctx context.Context, filename, contentType string, body io.Reader) (string, error)
}

// objectName builds a collision-free object name keeping the original
// extension so the media host serves the right content type.
func objectName(filename string) string {
	ext := strings.ToLower(filepath.Ext(filename))
	return uuid.New().String() + ext
}

// fileStorage implements Storage on the local file system.
type fileStorage struct {
	dir     string
	baseURL string
	logger  zerolog.Logger
}

// NewFileStorage creates a file-system backed image store rooted at dir.
// Stored URLs are baseURL + "/" + object name.
func NewFileStorage(dir, baseURL string, logger zerolog.Logger) Storage {
	return &fileStorage{
		dir:     dir,
		baseURL: strings.TrimRight(baseURL, "/"),
		logger:  logger.With().Str("component", "file-media-storage").Logger(),
	}
}

// Store writes the image to dir and returns its URL.
func (s *fileStorage) Store(ctx context.Context, filename, contentType string, body io.Reader) (string, error) {
	if err := os.MkdirAll(s.dir, 0o755); err != nil {
		s.logger.Error().Err(err).Str("dir", s.dir).Msg("failed to create media directory")
		return "", fmt.Errorf("failed to create media directory %s: %w", s.dir, err)
	}

	name := objectName(filename)
	path := filepath.Join(s.dir, name)

	f, err := os.Create(path)
	if err != nil {
		s.logger.Error().Err(err).Str("path", path).Msg("failed to create media file")
		return "", fmt.Errorf("failed to create media file %s: %w", path, err)
	}
	defer f.Close()

	written, err := io.Copy(f, body)
	if err != nil {
		os.Remove(path)
		s.logger.Error().Err(err).Str("path", path).Msg("failed to write media file")
		return "", fmt.Errorf("failed to write media file %s: %w", path, err)
	}

	s.logger.Info().
		Str("path", path).
		Int64("bytes", written).
		Str("content_type", contentType).
		Msg("image stored on local file system")

	return s.baseURL + "/" + name, nil
}
