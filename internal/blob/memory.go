package blob

import (
	"context"
	"fmt"
	"sync"
)

// MemStore is an in-memory Store for tests. It records every delete so tests
// can assert cleanup happened exactly once.
type MemStore struct {
	mu      sync.Mutex
	objects map[string][]byte
	deleted []string
}

func NewMem() *MemStore {
	return &MemStore{objects: make(map[string][]byte)}
}

func (s *MemStore) Upload(ctx context.Context, data []byte, contentType, filename string) (string, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	url := "mem://" + objectKey(filename)
	s.objects[url] = append([]byte(nil), data...)
	return url, nil
}

func (s *MemStore) Delete(ctx context.Context, url string) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.deleted = append(s.deleted, url)
	if _, ok := s.objects[url]; !ok {
		return fmt.Errorf("no object at %s", url)
	}
	delete(s.objects, url)
	return nil
}

// Has reports whether an object is currently stored at url.
func (s *MemStore) Has(url string) bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	_, ok := s.objects[url]
	return ok
}

// Deleted returns every URL Delete has been called with, in order.
func (s *MemStore) Deleted() []string {
	s.mu.Lock()
	defer s.mu.Unlock()
	return append([]string(nil), s.deleted...)
}
