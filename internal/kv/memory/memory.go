package memory

import (
	"context"
	"os"
	"path/filepath"
	"sync"
)

// Store keeps values in process memory.
type Store struct {
	mu     sync.Mutex
	values map[string]string
}

func New() *Store {
	return &Store{values: map[string]string{}}
}

// NewFromFiles seeds the store from base/<key>.json files, if any. Missing
// or unreadable files are skipped.
func NewFromFiles(base string, keys ...string) *Store {
	s := New()
	for _, k := range keys {
		if v, ok := readFile(filepath.Join(base, k+".json")); ok {
			s.values[k] = v
		}
	}
	return s
}

func (s *Store) Get(_ context.Context, key string) (string, bool, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	v, ok := s.values[key]
	return v, ok, nil
}

func (s *Store) Set(_ context.Context, key, value string) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.values[key] = value
	return nil
}

func readFile(path string) (string, bool) {
	b, err := os.ReadFile(path)
	if err != nil {
		return "", false
	}
	return string(b), true
}
