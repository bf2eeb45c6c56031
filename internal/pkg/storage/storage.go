package storage

import (
	"context"
	"errors"
	"io"
)

var (
	ErrFileNotFound = errors.New("file not found")
	ErrInvalidPath  = errors.New("invalid file path")
)

type FileStorage interface {
	// Upload stores a file and returns its storage path
	Upload(ctx context.Context, file io.Reader, path string, contentType string) (string, error)

	// Download opens a stored file. Returns ErrFileNotFound if absent.
	Download(ctx context.Context, path string) (io.ReadCloser, error)

	// Delete removes a file; deleting a missing file is not an error
	Delete(ctx context.Context, path string) error

	// URL is the public link for a stored path
	URL(path string) string

	// Exists checks if file exists
	Exists(ctx context.Context, path string) (bool, error)
}
