package filestorage

import (
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/selimk/coursehub/internal/pkg/logger"
)

// ErrFileExists reports that a file is already stored at the target path.
// Save never overwrites; the first writer owns the path.
var ErrFileExists = errors.New("file already exists at path")

// LocalStorage persists files on the local filesystem under a base directory.
// Callers supply the relative path; this layer never invents names, so the
// same inputs always land in the same place.
type LocalStorage struct {
	basePath string // root directory for stored files
	baseURL  string // optional URL prefix for serving stored files
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

// Save writes the content of src to relPath under the base directory and
// returns the number of bytes written. Parent directories are created as
// needed. The file is created exclusively: a concurrent Save to the same
// path loses with ErrFileExists instead of truncating the winner's bytes.
// A partially written file is removed on copy failure.
func (ls *LocalStorage) Save(relPath string, src io.Reader) (int64, error) {
	dstPath, err := ls.resolve(relPath)
	if err != nil {
		return 0, err
	}

	if err := os.MkdirAll(filepath.Dir(dstPath), os.ModePerm); err != nil {
		logger.Error().Err(err).Str("path", dstPath).Msg("Failed to create subdirectory")
		return 0, fmt.Errorf("failed to create subdirectory: %w", err)
	}

	dst, err := os.OpenFile(dstPath, os.O_WRONLY|os.O_CREATE|os.O_EXCL, 0o644)
	if err != nil {
		if os.IsExist(err) {
			return 0, ErrFileExists
		}
		logger.Error().Err(err).Str("path", dstPath).Msg("Failed to create destination file")
		return 0, fmt.Errorf("failed to create destination file: %w", err)
	}
	defer dst.Close()

	written, err := io.Copy(dst, src)
	if err != nil {
		logger.Error().Err(err).Str("path", dstPath).Msg("Failed to copy file content")
		_ = os.Remove(dstPath)
		return 0, fmt.Errorf("failed to save file content: %w", err)
	}

	logger.Info().Str("path", relPath).Int64("size", written).Msg("File saved")
	return written, nil
}

// Exists reports whether a file is already stored at relPath.
func (ls *LocalStorage) Exists(relPath string) (bool, error) {
	fullPath, err := ls.resolve(relPath)
	if err != nil {
		return false, err
	}

	if _, err := os.Stat(fullPath); err != nil {
		if os.IsNotExist(err) {
			return false, nil
		}
		return false, err
	}
	return true, nil
}

// Remove deletes the file at relPath. Removing a missing file is not an
// error; the operation is idempotent.
func (ls *LocalStorage) Remove(relPath string) error {
	if relPath == "" {
		return nil
	}

	fullPath, err := ls.resolve(relPath)
	if err != nil {
		return err
	}

	if _, err := os.Stat(fullPath); os.IsNotExist(err) {
		logger.Warn().Str("path", fullPath).Msg("File to delete does not exist")
		return nil
	}

	if err := os.Remove(fullPath); err != nil {
		logger.Error().Err(err).Str("path", fullPath).Msg("Failed to delete file")
		return fmt.Errorf("failed to delete file: %w", err)
	}

	logger.Info().Str("path", fullPath).Msg("File deleted")
	return nil
}

// URL returns the serving URL for a stored relative path, or the relative
// path itself when no base URL is configured.
func (ls *LocalStorage) URL(relPath string) string {
	if ls.baseURL == "" {
		return relPath
	}
	return strings.TrimRight(ls.baseURL, "/") + "/" + strings.TrimLeft(filepath.ToSlash(relPath), "/")
}

// resolve joins relPath onto the base directory, rejecting traversal out of it.
func (ls *LocalStorage) resolve(relPath string) (string, error) {
	cleaned := filepath.Clean(filepath.FromSlash(relPath))
	if cleaned == "." || strings.HasPrefix(cleaned, "..") || filepath.IsAbs(cleaned) {
		return "", fmt.Errorf("invalid file path: %s", relPath)
	}
	return filepath.Join(ls.basePath, cleaned), nil
}
