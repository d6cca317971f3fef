package memory

import (
	"context"
	"fmt"
	"io"
	"strings"
	"sync"

	"github.com/heartmarshall/eventorias-backend/internal/domain"
)

// Blob is a stored object.
type Blob struct {
	ContentType string
	Data        []byte
}

// BlobStore keeps uploaded objects in memory.
type BlobStore struct {
	baseURL string

	mu       sync.RWMutex
	objects  map[string]Blob
	failures map[string]error
}

// NewBlobStore creates a store whose public URLs start with baseURL.
func NewBlobStore(baseURL string) *BlobStore {
	return &BlobStore{
		baseURL:  strings.TrimRight(baseURL, "/"),
		objects:  make(map[string]Blob),
		failures: make(map[string]error),
	}
}

// Upload stores the body of f under key and returns its public URL.
func (s *BlobStore) Upload(ctx context.Context, key string, f domain.File) (string, error) {
	if err := ctx.Err(); err != nil {
		return "", err
	}

	s.mu.RLock()
	for prefix, err := range s.failures {
		if strings.HasPrefix(key, prefix) {
			s.mu.RUnlock()
			return "", err
		}
	}
	s.mu.RUnlock()

	data, err := io.ReadAll(f.Body)
	if err != nil {
		return "", fmt.Errorf("memory: read %s: %w", key, err)
	}

	s.mu.Lock()
	s.objects[key] = Blob{ContentType: f.ContentType, Data: data}
	s.mu.Unlock()

	return s.baseURL + "/" + key, nil
}

// Get returns the object stored under key.
func (s *BlobStore) Get(key string) (Blob, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	b, ok := s.objects[key]
	return b, ok
}

// Len reports how many objects are stored.
func (s *BlobStore) Len() int {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return len(s.objects)
}

// FailUploads makes uploads whose key starts with prefix return err.
func (s *BlobStore) FailUploads(prefix string, err error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if err == nil {
		delete(s.failures, prefix)
		return
	}
	s.failures[prefix] = err
}
