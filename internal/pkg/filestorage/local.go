package filestorage

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/mertc/coursehub/internal/pkg/logger"
)

// LocalStorage persists generated artifacts (certificate documents) on the
// local filesystem.
type LocalStorage struct {
	basePath string // Root directory where files are stored
	baseURL  string // Base URL to access the stored files
}

// NewLocalStorage creates a new LocalStorage instance rooted at basePath.
func NewLocalStorage(basePath, baseURL string) (*LocalStorage, error) {
	if err := os.MkdirAll(basePath, os.ModePerm); err != nil {
		logger.Error().Err(err).Str("path", basePath).Msg("Failed to create storage directory")
		return nil, fmt.Errorf("failed to create storage directory %s: %w", basePath, err)
	}
	logger.Info().Str("path", basePath).Msg("Local storage directory ensured")

	return &LocalStorage{
		basePath: basePath,
		baseURL:  baseURL,
	}, nil
}

// SaveBytes writes data under subPath/name and returns the relative path.
func (ls *LocalStorage) SaveBytes(data []byte, subPath, name string) (string, error) {
	dir := ls.basePath
	if subPath != "" {
		dir = filepath.Join(ls.basePath, subPath)
		if err := os.MkdirAll(dir, os.ModePerm); err != nil {
			return "", fmt.Errorf("failed to create subdirectory: %w", err)
		}
	}

	fullPath := filepath.Join(dir, name)
	if err := os.WriteFile(fullPath, data, 0o644); err != nil {
		logger.Error().Err(err).Str("path", fullPath).Msg("Failed to write file")
		return "", fmt.Errorf("failed to write file: %w", err)
	}

	return filepath.Join(subPath, name), nil
}

// DeleteFile removes a previously stored file.
func (ls *LocalStorage) DeleteFile(relPath string) error {
	fullPath := filepath.Join(ls.basePath, relPath)
	if err := os.Remove(fullPath); err != nil && !os.IsNotExist(err) {
		return fmt.Errorf("failed to delete file: %w", err)
	}
	return nil
}

// FileURL returns the public URL for a stored file.
func (ls *LocalStorage) FileURL(relPath string) string {
	return ls.baseURL + "/" + filepath.ToSlash(relPath)
}

// GetFullPath returns the filesystem path for a stored file.
func (ls *LocalStorage) GetFullPath(relPath string) string {
	return filepath.Join(ls.basePath, relPath)
}
