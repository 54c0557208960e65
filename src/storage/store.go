package storage

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"sync"
)

// Asset is a locally selected blob plus its original name. Created at
// selection time, never mutated; replaced wholesale.
type Asset struct {
	Name string
	Data []byte
}

// BlobStore is the object-storage boundary. Upload stores the blob under
// path and returns its public URL.
type BlobStore interface {
	Upload(ctx context.Context, path string, data []byte, overwrite bool) (string, error)
}

// MemoryStore keeps uploads in memory and serves synthetic public URLs.
type MemoryStore struct {
	BaseURL string

	mu      sync.RWMutex
	objects map[string][]byte
}

func NewMemoryStore(baseURL string) *MemoryStore {
	if baseURL == "" {
		baseURL = "https://storage.local"
	}
	return &MemoryStore{BaseURL: strings.TrimRight(baseURL, "/"), objects: make(map[string][]byte)}
}

func (s *MemoryStore) Upload(ctx context.Context, path string, data []byte, overwrite bool) (string, error) {
	if err := ctx.Err(); err != nil {
		return "", err
	}
	s.mu.Lock()
	defer s.mu.Unlock()

	if _, exists := s.objects[path]; exists && !overwrite {
		return "", fmt.Errorf("object %s already exists", path)
	}
	s.objects[path] = append([]byte(nil), data...)
	return s.BaseURL + "/" + path, nil
}

// Get returns a stored object, for tests and local serving.
func (s *MemoryStore) Get(path string) ([]byte, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	data, ok := s.objects[path]
	return data, ok
}

// LocalStore writes uploads to a directory and maps them onto a public
// base URL, for running the module against a static file server.
type LocalStore struct {
	Dir     string
	BaseURL string
}

func NewLocalStore(dir, baseURL string) *LocalStore {
	return &LocalStore{Dir: dir, BaseURL: strings.TrimRight(baseURL, "/")}
}

func (s *LocalStore) Upload(ctx context.Context, path string, data []byte, overwrite bool) (string, error) {
	if err := ctx.Err(); err != nil {
		return "", err
	}
	full := filepath.Join(s.Dir, filepath.FromSlash(path))
	if !overwrite {
		if _, err := os.Stat(full); err == nil {
			return "", fmt.Errorf("object %s already exists", path)
		}
	}
	if err := os.MkdirAll(filepath.Dir(full), 0o755); err != nil {
		return "", err
	}
	if err := os.WriteFile(full, data, 0o644); err != nil {
		return "", err
	}
	return s.BaseURL + "/" + path, nil
}
