package storage

import (
	"encoding/base64"
	"errors"
	"fmt"
	"os"
	"path/filepath"

	"github.com/google/uuid"
)

// ErrNotFound is returned by Read when the blob is missing on disk. It is
// distinct from a metadata miss: the record exists but its content does not.
var ErrNotFound = errors.New("content not found")

// Store persists decoded file content as individually named blobs under a
// configurable root directory.
type Store struct {
	root string
}

func New(root string) *Store {
	return &Store{root: root}
}

// Write base64-decodes data and writes it to a freshly generated path under the
// store root, creating the root if needed. It returns the absolute local path
// of the written blob.
func (s *Store) Write(data string) (string, error) {
	decoded, err := base64.StdEncoding.DecodeString(data)
	if err != nil {
		return "", fmt.Errorf("decode content: %w", err)
	}

	if err := os.MkdirAll(s.root, 0o755); err != nil {
		return "", fmt.Errorf("create storage root: %w", err)
	}

	localPath := filepath.Join(s.root, uuid.NewString())
	if err := os.WriteFile(localPath, decoded, 0o644); err != nil {
		return "", fmt.Errorf("write content: %w", err)
	}
	return localPath, nil
}

// Read returns the raw bytes stored at localPath.
func (s *Store) Read(localPath string) ([]byte, error) {
	data, err := os.ReadFile(localPath)
	if err != nil {
		if os.IsNotExist(err) {
			return nil, ErrNotFound
		}
		return nil, err
	}
	return data, nil
}
