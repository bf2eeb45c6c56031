package storage

import (
	"context"
	"errors"
	"fmt"
	"io"
	"io/fs"
	"os"
	"path"
	"path/filepath"
	"strings"
)

type LocalStorage struct {
	basePath string
	baseURL  string // e.g. "/uploads"
}

func NewLocalStorage(basePath, baseURL string) (*LocalStorage, error) {
	abs, err := filepath.Abs(basePath)
	if err != nil {
		return nil, fmt.Errorf("resolve storage directory: %w", err)
	}
	if err := os.MkdirAll(abs, 0755); err != nil {
		return nil, fmt.Errorf("failed to create storage directory: %w", err)
	}

	return &LocalStorage{
		basePath: abs,
		baseURL:  strings.TrimRight(baseURL, "/"),
	}, nil
}

// resolve maps a slash separated storage path to a file under basePath,
// rejecting anything that would escape it.
func (s *LocalStorage) resolve(p string) (clean string, full string, err error) {
	clean = strings.TrimPrefix(path.Clean("/"+filepath.ToSlash(p)), "/")
	if clean == "" || clean == "." {
		return "", "", fmt.Errorf("%w: %q", ErrInvalidPath, p)
	}
	full = filepath.Join(s.basePath, filepath.FromSlash(clean))
	rel, err := filepath.Rel(s.basePath, full)
	if err != nil || rel == ".." || strings.HasPrefix(rel, ".."+string(filepath.Separator)) {
		return "", "", fmt.Errorf("%w: %q", ErrInvalidPath, p)
	}
	return clean, full, nil
}

func (s *LocalStorage) Upload(ctx context.Context, file io.Reader, p string, contentType string) (string, error) {
	clean, fullPath, err := s.resolve(p)
	if err != nil {
		return "", err
	}

	if err := os.MkdirAll(filepath.Dir(fullPath), 0755); err != nil {
		return "", fmt.Errorf("failed to create directory: %w", err)
	}

	dst, err := os.Create(fullPath)
	if err != nil {
		return "", fmt.Errorf("failed to create file: %w", err)
	}
	defer dst.Close()

	if _, err := io.Copy(dst, file); err != nil {
		os.Remove(fullPath)
		return "", fmt.Errorf("failed to write file: %w", err)
	}

	return clean, nil
}

func (s *LocalStorage) Download(ctx context.Context, p string) (io.ReadCloser, error) {
	_, fullPath, err := s.resolve(p)
	if err != nil {
		return nil, err
	}

	file, err := os.Open(fullPath)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return nil, fmt.Errorf("%w: %s", ErrFileNotFound, p)
		}
		return nil, fmt.Errorf("failed to open file: %w", err)
	}

	info, err := file.Stat()
	if err != nil || info.IsDir() {
		file.Close()
		return nil, fmt.Errorf("%w: %s", ErrFileNotFound, p)
	}

	return file, nil
}

func (s *LocalStorage) Delete(ctx context.Context, p string) error {
	_, fullPath, err := s.resolve(p)
	if err != nil {
		return err
	}

	if err := os.Remove(fullPath); err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return nil
		}
		return fmt.Errorf("failed to delete file: %w", err)
	}

	return nil
}

func (s *LocalStorage) URL(p string) string {
	if p == "" {
		return ""
	}
	clean, _, err := s.resolve(p)
	if err != nil {
		return ""
	}
	return s.baseURL + "/" + clean
}

func (s *LocalStorage) Exists(ctx context.Context, p string) (bool, error) {
	_, fullPath, err := s.resolve(p)
	if err != nil {
		return false, err
	}

	_, err = os.Stat(fullPath)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return false, nil
		}
		return false, err
	}

	return true, nil
}
