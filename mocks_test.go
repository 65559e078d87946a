package switcherprefs

import (
	"context"
	"fmt"
	"strings"
	"sync"
	"time"

	"github.com/CreativeUnicorns/switcherprefs/cache"
)

// MockBackend implements the Backend interface for testing. It counts
// mutations so tests can assert that an operation wrote nothing.
type MockBackend struct {
	mu      sync.RWMutex
	data    map[string]string
	closed  bool
	getErr  error
	setErrs map[string]error
	writes  int
	deletes int
}

func NewMockBackend() *MockBackend {
	return &MockBackend{data: make(map[string]string)}
}

// NewMockBackendFrom seeds the backend with a copy of entries.
func NewMockBackendFrom(entries map[string]string) *MockBackend {
	m := NewMockBackend()
	for k, v := range entries {
		m.data[k] = v
	}
	return m
}

func (m *MockBackend) Get(ctx context.Context, key string) (string, error) {
	_, _ = ctx.Deadline()
	m.mu.RLock()
	defer m.mu.RUnlock()

	if m.closed {
		return "", ErrStorageUnavailable
	}
	if m.getErr != nil {
		return "", m.getErr
	}
	v, ok := m.data[key]
	if !ok {
		return "", ErrNotFound
	}
	return v, nil
}

func (m *MockBackend) Set(ctx context.Context, key, value string) error {
	_, _ = ctx.Deadline()
	m.mu.Lock()
	defer m.mu.Unlock()

	if m.closed {
		return ErrStorageUnavailable
	}
	if err := m.setErrs[key]; err != nil {
		return err
	}
	m.data[key] = value
	m.writes++
	return nil
}

func (m *MockBackend) Delete(ctx context.Context, key string) error {
	_, _ = ctx.Deadline()
	m.mu.Lock()
	defer m.mu.Unlock()

	if m.closed {
		return ErrStorageUnavailable
	}
	if _, ok := m.data[key]; !ok {
		return ErrNotFound
	}
	delete(m.data, key)
	m.deletes++
	return nil
}

func (m *MockBackend) GetAll(ctx context.Context) (map[string]string, error) {
	_, _ = ctx.Deadline()
	m.mu.RLock()
	defer m.mu.RUnlock()

	if m.closed {
		return nil, ErrStorageUnavailable
	}
	out := make(map[string]string, len(m.data))
	for k, v := range m.data {
		out[k] = v
	}
	return out, nil
}

func (m *MockBackend) DeleteAll(ctx context.Context) error {
	_, _ = ctx.Deadline()
	m.mu.Lock()
	defer m.mu.Unlock()

	if m.closed {
		return ErrStorageUnavailable
	}
	m.deletes += len(m.data)
	m.data = make(map[string]string)
	return nil
}

func (m *MockBackend) Close() error {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.closed = true
	return nil
}

// SetGetError makes every later Get fail with err.
func (m *MockBackend) SetGetError(err error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.getErr = err
}

// SetSetError makes later writes of key fail with err. A nil err clears it.
func (m *MockBackend) SetSetError(key string, err error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	if m.setErrs == nil {
		m.setErrs = make(map[string]error)
	}
	if err == nil {
		delete(m.setErrs, key)
		return
	}
	m.setErrs[key] = err
}

// Mutations returns the number of writes and deletes so far.
func (m *MockBackend) Mutations() int {
	m.mu.RLock()
	defer m.mu.RUnlock()
	return m.writes + m.deletes
}

// Raw returns the persisted value of key, bypassing error injection.
func (m *MockBackend) Raw(key string) (string, bool) {
	m.mu.RLock()
	defer m.mu.RUnlock()
	v, ok := m.data[key]
	return v, ok
}

// MockCache implements the Cache interface for testing.
type MockCache struct {
	mu     sync.RWMutex
	data   map[string]interface{}
	hits   int
	closed bool
}

// NewMockCache creates a new MockCache for testing.
func NewMockCache() *MockCache {
	return &MockCache{
		data: make(map[string]interface{}),
	}
}

func (m *MockCache) Get(ctx context.Context, key string) (interface{}, error) {
	_, _ = ctx.Deadline()
	m.mu.Lock()
	defer m.mu.Unlock()

	if m.closed {
		return nil, ErrCacheUnavailable
	}
	v, ok := m.data[key]
	if !ok {
		return nil, cache.ErrMiss
	}
	m.hits++
	return v, nil
}

// Set ignores the TTL.
func (m *MockCache) Set(ctx context.Context, key string, value interface{}, _ time.Duration) error {
	_, _ = ctx.Deadline()
	m.mu.Lock()
	defer m.mu.Unlock()

	if m.closed {
		return ErrCacheUnavailable
	}
	m.data[key] = value
	return nil
}

func (m *MockCache) Delete(ctx context.Context, key string) error {
	_, _ = ctx.Deadline()
	m.mu.Lock()
	defer m.mu.Unlock()

	if m.closed {
		return ErrCacheUnavailable
	}
	delete(m.data, key)
	return nil
}

func (m *MockCache) Close() error {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.closed = true
	return nil
}

// Hits returns the number of successful lookups.
func (m *MockCache) Hits() int {
	m.mu.RLock()
	defer m.mu.RUnlock()
	return m.hits
}

// Has reports whether key is cached.
func (m *MockCache) Has(key string) bool {
	m.mu.RLock()
	defer m.mu.RUnlock()
	_, ok := m.data[key]
	return ok
}

// MockLogger implements the Logger interface for testing
type MockLogger struct {
	mu       sync.Mutex
	Messages []string
}

func (m *MockLogger) Debug(msg string, args ...interface{}) {
	m.record("DEBUG", msg, args...)
}

func (m *MockLogger) Info(msg string, args ...interface{}) {
	m.record("INFO", msg, args...)
}

func (m *MockLogger) Warn(msg string, args ...interface{}) {
	m.record("WARN", msg, args...)
}

func (m *MockLogger) Error(msg string, args ...any) {
	m.record("ERROR", msg, args...)
}

// SetLevel records the attempt to set the log level for test verification.
func (m *MockLogger) SetLevel(level LogLevel) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.Messages = append(m.Messages, fmt.Sprintf("SET_LEVEL: %v", level))
}

func (m *MockLogger) record(level, msg string, args ...interface{}) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.Messages = append(m.Messages, formatMessage(level, msg, args...))
}

// Count returns the number of messages logged at level.
func (m *MockLogger) Count(level string) int {
	m.mu.Lock()
	defer m.mu.Unlock()
	n := 0
	for _, msg := range m.Messages {
		if strings.HasPrefix(msg, level+":") {
			n++
		}
	}
	return n
}

func formatMessage(level, msg string, args ...interface{}) string {
	if len(args) > 0 {
		return fmt.Sprintf("%s: %s %v", level, msg, args)
	}
	return fmt.Sprintf("%s: %s", level, msg)
}

// mockLoginItems records RemoveApp calls and can be made to fail or panic.
type mockLoginItems struct {
	calls int
	err   error
	panic bool
}

func (m *mockLoginItems) RemoveApp(context.Context) error {
	m.calls++
	if m.panic {
		panic("login items unavailable")
	}
	return m.err
}

// newTestStore returns a store over backend with a mock cache and logger.
func newTestStore(backend Backend, opts ...Option) (*Store, *MockCache, *MockLogger) {
	c := NewMockCache()
	l := &MockLogger{}
	all := append([]Option{WithCache(c), WithLogger(l)}, opts...)
	return New(backend, all...), c, l
}
