package storage

import (
	"context"
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"
	"unicode"
)

// ErrInvalidName is returned for names that would escape the storage root
var ErrInvalidName = errors.New("invalid storage name")

// Backend defines the file operations used for uploaded videos and exports
type Backend interface {
	// Save writes data under name and returns the full path. Nothing is left
	// at the path when the write fails.
	Save(ctx context.Context, data io.Reader, name string) (string, int64, error)

	// Open opens a stored file for reading
	Open(ctx context.Context, path string) (*os.File, error)

	// Delete removes a stored file. Missing files are not an error.
	Delete(ctx context.Context, path string) error

	// Exists checks if a file exists in storage
	Exists(ctx context.Context, path string) (bool, error)

	// Root returns the directory files are stored under
	Root() string
}

// FilesystemStorage implements Backend on a local directory
type FilesystemStorage struct {
	basePath string
}

// NewFilesystemStorage creates the base directory if needed
func NewFilesystemStorage(basePath string) (*FilesystemStorage, error) {
	if strings.TrimSpace(basePath) == "" {
		return nil, fmt.Errorf("storage directory is required")
	}
	if err := os.MkdirAll(basePath, 0755); err != nil {
		return nil, fmt.Errorf("failed to create storage directory: %w", err)
	}
	abs, err := filepath.Abs(basePath)
	if err != nil {
		return nil, fmt.Errorf("failed to resolve storage directory: %w", err)
	}
	return &FilesystemStorage{basePath: abs}, nil
}

// Root returns the storage directory
func (fs *FilesystemStorage) Root() string {
	return fs.basePath
}

// Save streams data to a temporary file and renames it into place
func (fs *FilesystemStorage) Save(ctx context.Context, data io.Reader, name string) (string, int64, error) {
	fullPath, err := fs.resolve(name)
	if err != nil {
		return "", 0, err
	}

	tmp, err := os.CreateTemp(fs.basePath, ".upload-*")
	if err != nil {
		return "", 0, fmt.Errorf("failed to create file: %w", err)
	}
	tmpPath := tmp.Name()

	written, copyErr := io.Copy(tmp, contextReader{ctx: ctx, r: data})
	closeErr := tmp.Close()
	if copyErr != nil || closeErr != nil {
		os.Remove(tmpPath)
		if copyErr != nil {
			return "", 0, fmt.Errorf("failed to write file: %w", copyErr)
		}
		return "", 0, fmt.Errorf("failed to write file: %w", closeErr)
	}

	if err := os.Rename(tmpPath, fullPath); err != nil {
		os.Remove(tmpPath)
		return "", 0, fmt.Errorf("failed to move file into place: %w", err)
	}

	return fullPath, written, nil
}

// Open opens a stored file
func (fs *FilesystemStorage) Open(ctx context.Context, path string) (*os.File, error) {
	if err := fs.contains(path); err != nil {
		return nil, err
	}
	file, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("failed to open file: %w", err)
	}
	return file, nil
}

// Delete removes a stored file
func (fs *FilesystemStorage) Delete(ctx context.Context, path string) error {
	if err := fs.contains(path); err != nil {
		return err
	}
	if err := os.Remove(path); err != nil && !os.IsNotExist(err) {
		return fmt.Errorf("failed to delete file: %w", err)
	}
	return nil
}

// Exists checks if a file exists
func (fs *FilesystemStorage) Exists(ctx context.Context, path string) (bool, error) {
	if err := fs.contains(path); err != nil {
		return false, err
	}
	_, err := os.Stat(path)
	if err != nil {
		if os.IsNotExist(err) {
			return false, nil
		}
		return false, fmt.Errorf("failed to stat file: %w", err)
	}
	return true, nil
}

func (fs *FilesystemStorage) resolve(name string) (string, error) {
	if name == "" || name != filepath.Base(name) || name == "." || name == ".." {
		return "", fmt.Errorf("%w: %q", ErrInvalidName, name)
	}
	return filepath.Join(fs.basePath, name), nil
}

func (fs *FilesystemStorage) contains(path string) error {
	rel, err := filepath.Rel(fs.basePath, filepath.Clean(path))
	if err != nil || rel == "." || strings.HasPrefix(rel, "..") {
		return fmt.Errorf("%w: %q is outside %s", ErrInvalidName, path, fs.basePath)
	}
	return nil
}

// SanitizeName replaces characters that are unsafe in file names and trims
// the result to maxLen runes
func SanitizeName(s string, maxLen int) string {
	var b strings.Builder
	for _, r := range s {
		if unicode.IsControl(r) {
			continue
		}
		if isAllowedNameRune(r) {
			b.WriteRune(r)
		} else {
			b.WriteRune('_')
		}
	}

	cleaned := strings.Trim(strings.TrimSpace(b.String()), ".")
	if maxLen > 0 {
		runes := []rune(cleaned)
		if len(runes) > maxLen {
			cleaned = string(runes[:maxLen])
		}
	}
	return cleaned
}

func isAllowedNameRune(r rune) bool {
	if unicode.IsLetter(r) || unicode.IsDigit(r) {
		return true
	}
	switch r {
	case ' ', '-', '_', '.', ',', '(', ')':
		return true
	default:
		return false
	}
}

// contextReader stops a copy once ctx is done
type contextReader struct {
	ctx context.Context
	r   io.Reader
}

func (c contextReader) Read(p []byte) (int, error) {
	if err := c.ctx.Err(); err != nil {
		return 0, err
	}
	return c.r.Read(p)
}
