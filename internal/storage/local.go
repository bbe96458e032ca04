package storage

import (
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"
)

// LocalStorage écrit les médias dans un répertoire servi en statique
// sous /uploads.
type LocalStorage struct {
	dir string
}

func NewLocalStorage(dir string) (*LocalStorage, error) {
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return nil, fmt.Errorf("création du répertoire d'upload: %w", err)
	}
	return &LocalStorage{dir: dir}, nil
}

func (l *LocalStorage) Store(file io.Reader, filename, contentType string) (string, error) {
	path := filepath.Join(l.dir, filename)

	dst, err := os.Create(path)
	if err != nil {
		return "", fmt.Errorf("%w: %v", ErrIngestFailed, err)
	}
	defer dst.Close()

	if _, err := io.Copy(dst, file); err != nil {
		_ = os.Remove(path)
		return "", fmt.Errorf("%w: %v", ErrIngestFailed, err)
	}

	return "/uploads/" + filename, nil
}

func (l *LocalStorage) Delete(mediaRef string) error {
	filename := strings.TrimPrefix(mediaRef, "/uploads/")
	if filename == "" || strings.Contains(filename, "..") {
		return nil
	}
	return os.Remove(filepath.Join(l.dir, filename))
}
