package storage

import (
	"context"
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"sort"
	"sync"

	"github.com/fsnotify/fsnotify"
	"gopkg.in/yaml.v3"

	"github.com/CreativeUnicorns/switcherprefs"
)

// settingsFile is the on-disk layout of a FileStorage.
type settingsFile struct {
	Domain string            `yaml:"domain"`
	Values map[string]string `yaml:"values"`
}

// FileStorage keeps one settings domain in a YAML file, the way a desktop
// application keeps a plist. Every write rewrites the file atomically.
type FileStorage struct {
	mu     sync.RWMutex
	path   string
	domain string
	values map[string]string
	logger switcherprefs.Logger
	closed bool
}

// NewFileStorage loads the settings file at path, creating its directory if
// needed. A missing file is an empty domain.
func NewFileStorage(path, domain string, logger switcherprefs.Logger) (*FileStorage, error) {
	if path == "" || domain == "" {
		return nil, switcherprefs.ErrInvalidInput
	}
	if logger == nil {
		logger = switcherprefs.NopLogger()
	}
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return nil, fmt.Errorf("file: failed to create settings directory: %w", err)
	}

	s := &FileStorage{
		path:   path,
		domain: domain,
		logger: logger,
	}
	values, err := s.load()
	if err != nil {
		return nil, err
	}
	s.values = values
	return s, nil
}

// Path returns the settings file path.
func (s *FileStorage) Path() string { return s.path }

func (s *FileStorage) load() (map[string]string, error) {
	data, err := os.ReadFile(s.path)
	if errors.Is(err, fs.ErrNotExist) {
		return make(map[string]string), nil
	}
	if err != nil {
		return nil, fmt.Errorf("file: failed to read %s: %w", s.path, err)
	}

	var f settingsFile
	if err := yaml.Unmarshal(data, &f); err != nil {
		return nil, fmt.Errorf("%w: file: failed to parse %s: %v", switcherprefs.ErrSerialization, s.path, err)
	}
	if f.Domain != "" && f.Domain != s.domain {
		return nil, fmt.Errorf("%w: file %s belongs to domain %q", switcherprefs.ErrInvalidInput, s.path, f.Domain)
	}
	if f.Values == nil {
		f.Values = make(map[string]string)
	}
	return f.Values, nil
}

// save writes values through a temporary file renamed over the settings file.
// Callers hold s.mu.
func (s *FileStorage) save(values map[string]string) error {
	data, err := yaml.Marshal(settingsFile{Domain: s.domain, Values: values})
	if err != nil {
		return fmt.Errorf("%w: file: %v", switcherprefs.ErrSerialization, err)
	}

	tmp, err := os.CreateTemp(filepath.Dir(s.path), filepath.Base(s.path)+".*.tmp")
	if err != nil {
		return fmt.Errorf("file: failed to create temporary file: %w", err)
	}
	if _, err := tmp.Write(data); err != nil {
		tmp.Close()
		os.Remove(tmp.Name())
		return fmt.Errorf("file: failed to write settings: %w", err)
	}
	if err := tmp.Close(); err != nil {
		os.Remove(tmp.Name())
		return fmt.Errorf("file: failed to write settings: %w", err)
	}
	if err := os.Rename(tmp.Name(), s.path); err != nil {
		os.Remove(tmp.Name())
		return fmt.Errorf("file: failed to replace settings: %w", err)
	}
	return nil
}

// Get returns switcherprefs.ErrNotFound if the key does not exist.
func (s *FileStorage) Get(_ context.Context, key string) (string, error) {
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

func (s *FileStorage) Set(_ context.Context, key, value string) error {
	if key == "" {
		return switcherprefs.ErrInvalidKey
	}
	return s.mutate(func(values map[string]string) error {
		values[key] = value
		return nil
	})
}

// Delete returns switcherprefs.ErrNotFound if the key does not exist.
func (s *FileStorage) Delete(_ context.Context, key string) error {
	return s.mutate(func(values map[string]string) error {
		if _, ok := values[key]; !ok {
			return switcherprefs.ErrNotFound
		}
		delete(values, key)
		return nil
	})
}

func (s *FileStorage) GetAll(_ context.Context) (map[string]string, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	if s.closed {
		return nil, switcherprefs.ErrStorageUnavailable
	}
	return copyEntries(s.values), nil
}

func (s *FileStorage) DeleteAll(_ context.Context) error {
	return s.mutate(func(values map[string]string) error {
		for k := range values {
			delete(values, k)
		}
		return nil
	})
}

// mutate applies fn to a copy of the values and persists the result. The
// in-memory state only changes once the file is written.
func (s *FileStorage) mutate(fn func(values map[string]string) error) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.closed {
		return switcherprefs.ErrStorageUnavailable
	}
	next := copyEntries(s.values)
	if err := fn(next); err != nil {
		return err
	}
	if err := s.save(next); err != nil {
		return err
	}
	s.values = next
	return nil
}

// Close makes every later call fail with switcherprefs.ErrStorageUnavailable.
func (s *FileStorage) Close() error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.closed = true
	return nil
}

// Reload rereads the settings file and returns the keys whose value changed.
func (s *FileStorage) Reload() ([]string, error) {
	values, err := s.load()
	if err != nil {
		return nil, err
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	changed := diffKeys(s.values, values)
	s.values = values
	return changed, nil
}

// Watch reloads the settings file whenever another process modifies it and
// reports the changed keys to onChange. It blocks until ctx is done.
func (s *FileStorage) Watch(ctx context.Context, onChange func(changed []string)) error {
	watcher, err := fsnotify.NewWatcher()
	if err != nil {
		return fmt.Errorf("file: failed to create watcher: %w", err)
	}
	defer watcher.Close()

	// The directory is watched because atomic saves replace the file.
	if err := watcher.Add(filepath.Dir(s.path)); err != nil {
		return fmt.Errorf("file: failed to watch settings directory: %w", err)
	}

	for {
		select {
		case <-ctx.Done():
			return nil
		case event, ok := <-watcher.Events:
			if !ok {
				return nil
			}
			if filepath.Clean(event.Name) != filepath.Clean(s.path) {
				continue
			}
			if event.Op&(fsnotify.Write|fsnotify.Create|fsnotify.Rename|fsnotify.Remove) == 0 {
				continue
			}

			changed, err := s.Reload()
			if err != nil {
				s.logger.Warn("Failed to reload settings file", "path", s.path, "error", err)
				continue
			}
			if len(changed) > 0 {
				s.logger.Info("Settings file changed", "path", s.path, "keys", len(changed))
				onChange(changed)
			}
		case err, ok := <-watcher.Errors:
			if !ok {
				return nil
			}
			s.logger.Error("Settings file watcher error", "path", s.path, "error", err)
		}
	}
}

// diffKeys returns the sorted keys added, removed or modified between a and b.
func diffKeys(a, b map[string]string) []string {
	var changed []string
	for k, v := range a {
		if nv, ok := b[k]; !ok || nv != v {
			changed = append(changed, k)
		}
	}
	for k := range b {
		if _, ok := a[k]; !ok {
			changed = append(changed, k)
		}
	}
	sort.Strings(changed)
	return changed
}
