package storage

import (
	"context"
	"sync"

	"github.com/CreativeUnicorns/switcherprefs"
)

// MemoryStorage keeps the entries of one settings domain in a map.
// This is useful for testing or simple applications where persistence is not required.
type MemoryStorage struct {
	mu     sync.RWMutex
	values map[string]string
	closed bool
}

// NewMemoryStorage creates a new instance of MemoryStorage.
func NewMemoryStorage() *MemoryStorage {
	return &MemoryStorage{
		values: make(map[string]string),
	}
}

// NewMemoryStorageFrom creates a MemoryStorage holding a copy of entries.
func NewMemoryStorageFrom(entries map[string]string) *MemoryStorage {
	return &MemoryStorage{
		values: copyEntries(entries),
	}
}

// Get returns switcherprefs.ErrNotFound if key was never set.
func (s *MemoryStorage) Get(_ context.Context, key string) (string, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	if s.closed {
		return "", switcherprefs.ErrStorageUnavailable
	}
	v, ok := s.values[key]
	if !ok {
		return "", switcherprefs.ErrNotFound
	}
	return v, nil
}

func (s *MemoryStorage) Set(_ context.Context, key, value string) error {
	if key == "" {
		return switcherprefs.ErrInvalidKey
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	if s.closed {
		return switcherprefs.ErrStorageUnavailable
	}
	s.values[key] = value
	return nil
}

// Delete returns switcherprefs.ErrNotFound if key was never set.
func (s *MemoryStorage) Delete(_ context.Context, key string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.closed {
		return switcherprefs.ErrStorageUnavailable
	}
	if _, ok := s.values[key]; !ok {
		return switcherprefs.ErrNotFound
	}
	delete(s.values, key)
	return nil
}

// GetAll returns a copy of every entry.
func (s *MemoryStorage) GetAll(_ context.Context) (map[string]string, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	if s.closed {
		return nil, switcherprefs.ErrStorageUnavailable
	}
	return copyEntries(s.values), nil
}

func (s *MemoryStorage) DeleteAll(_ context.Context) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.closed {
		return switcherprefs.ErrStorageUnavailable
	}
	s.values = make(map[string]string)
	return nil
}

// Close makes every later call fail with switcherprefs.ErrStorageUnavailable.
func (s *MemoryStorage) Close() error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.closed = true
	return nil
}
