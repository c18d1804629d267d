package ledger

import (
	"context"
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"strings"
)

// LocalStore implements Store on the local filesystem.
// All objects are confined to baseDir.
type LocalStore struct {
	baseDir string // absolute
}

// NewLocalStore creates a filesystem store rooted at baseDir, creating it if needed.
func NewLocalStore(baseDir string) (*LocalStore, error) {
	if baseDir == "" {
		return nil, fmt.Errorf("%w: base directory is required", ErrInvalidConfig)
	}

	absBaseDir, err := filepath.Abs(baseDir)
	if err != nil {
		return nil, fmt.Errorf("%w: failed to resolve base directory: %v", ErrFailedToGetAbsolutePath, err)
	}

	if err := os.MkdirAll(absBaseDir, 0755); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrFailedToCreateDirectory, err)
	}

	return &LocalStore{baseDir: absBaseDir}, nil
}

// Put writes data to key through a temporary file and rename, so readers never
// observe a partially written result.
func (s *LocalStore) Put(ctx context.Context, key string, data []byte) error {
	if err := ctx.Err(); err != nil {
		return err
	}

	absPath, err := s.resolvePath(key)
	if err != nil {
		return err
	}

	dir := filepath.Dir(absPath)
	if err := os.MkdirAll(dir, 0755); err != nil {
		return fmt.Errorf("%w: %v", ErrFailedToCreateDirectory, err)
	}

	tmp, err := os.CreateTemp(dir, "."+filepath.Base(absPath)+".*")
	if err != nil {
		return fmt.Errorf("%w: %v", ErrFailedToWriteFile, err)
	}
	tmpName := tmp.Name()
	defer func() { _ = os.Remove(tmpName) }()

	if _, err := tmp.Write(data); err != nil {
		_ = tmp.Close()
		return fmt.Errorf("%w: %v", ErrFailedToWriteFile, err)
	}
	if err := tmp.Chmod(0644); err != nil {
		_ = tmp.Close()
		return fmt.Errorf("%w: %v", ErrFailedToWriteFile, err)
	}
	if err := tmp.Close(); err != nil {
		return fmt.Errorf("%w: %v", ErrFailedToWriteFile, err)
	}
	if err := os.Rename(tmpName, absPath); err != nil {
		return fmt.Errorf("%w: %v", ErrFailedToWriteFile, err)
	}
	return nil
}

// Get reads the object stored under key.
func (s *LocalStore) Get(ctx context.Context, key string) ([]byte, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	absPath, err := s.resolvePath(key)
	if err != nil {
		return nil, err
	}

	data, err := os.ReadFile(absPath)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return nil, fmt.Errorf("%w: %s", ErrNotFound, key)
		}
		return nil, fmt.Errorf("%w: %v", ErrFailedToReadFile, err)
	}
	return data, nil
}

// Location returns the absolute path of key, or key itself if it is invalid.
func (s *LocalStore) Location(key string) string {
	absPath, err := s.resolvePath(key)
	if err != nil {
		return key
	}
	return absPath
}

// resolvePath keeps every resolved path inside baseDir.
func (s *LocalStore) resolvePath(key string) (string, error) {
	if key == "" {
		return "", fmt.Errorf("%w: empty key", ErrInvalidPath)
	}
	key = filepath.Clean(key)
	absPath, err := filepath.Abs(filepath.Join(s.baseDir, key))
	if err != nil {
		return "", fmt.Errorf("%w: %v", ErrFailedToGetAbsolutePath, err)
	}

	rel, err := filepath.Rel(s.baseDir, absPath)
	if err != nil || rel == "." || rel == ".." || strings.HasPrefix(rel, ".."+string(filepath.Separator)) {
		return "", fmt.Errorf("%w: %s", ErrInvalidPath, key)
	}
	return absPath, nil
}
