package storage

import (
	"fmt"
	"io"
	"os"
	"path/filepath"
	"time"
)

// FileStore persists uploaded attachments and returns the name they
// were stored under.
type FileStore interface {
	Save(file io.Reader, originalName string) (string, error)
}

// DiskStore writes attachments to a single directory, naming each file
// <epochMillis>-<originalName>. The millisecond prefix is the historic
// uniqueness scheme; two uploads landing in the same millisecond with
// the same original name would collide. Known limitation.
type DiskStore struct {
	dir string
}

func NewDiskStore(dir string) (*DiskStore, error) {
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return nil, fmt.Errorf("failed to create upload directory %s: %w", dir, err)
	}
	return &DiskStore{dir: dir}, nil
}

func (s *DiskStore) Save(file io.Reader, originalName string) (string, error) {
	name := fmt.Sprintf("%d-%s", time.Now().UnixMilli(), filepath.Base(originalName))

	dst, err := os.Create(filepath.Join(s.dir, name))
	if err != nil {
		return "", fmt.Errorf("failed to create upload file: %w", err)
	}
	defer dst.Close()

	if _, err := io.Copy(dst, file); err != nil {
		return "", fmt.Errorf("failed to write upload file: %w", err)
	}

	return name, nil
}

// Dir returns the directory files are stored in, for static serving.
func (s *DiskStore) Dir() string {
	return s.dir
}
