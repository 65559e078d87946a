// store.go
package switcherprefs

import (
	"context"
	"errors"
	"fmt"
	"sync"

	"github.com/CreativeUnicorns/switcherprefs/appearance"
	"github.com/CreativeUnicorns/switcherprefs/cache"
)

// Store is the preferences store of one settings domain. It layers a per-key
// read cache and a registered-defaults fallback over a persisted Backend.
type Store struct {
	mu       sync.RWMutex
	config   *Config
	backend  Backend
	defaults map[string]string
}

// New creates a Store over backend. It panics if backend is nil.
func New(backend Backend, opts ...Option) *Store {
	if backend == nil {
		panic("switcherprefs: nil backend")
	}

	cfg := &Config{
		logger:      NewDefaultLogger(),
		domain:      DefaultDomain,
		appVersion:  DefaultAppVersion,
		cacheTTL:    defaultCacheTTL,
		keyAboveTab: DefaultKeyAboveTab,
	}

	for _, opt := range opts {
		opt(cfg)
	}

	if cfg.logger == nil {
		cfg.logger = NopLogger()
	}
	if cfg.cache == nil {
		cfg.cache = cache.NewMemoryCache()
	}

	return &Store{
		config:  cfg,
		backend: backend,
	}
}

// Domain returns the settings domain this store serves.
func (s *Store) Domain() string { return s.config.domain }

// AppVersion returns the running application version.
func (s *Store) AppVersion() string { return s.config.appVersion }

// Logger returns the store's logger.
func (s *Store) Logger() Logger { return s.config.logger }

// Initialize prepares the domain for use: corrupted values are removed,
// migrations run and defaults are registered.
func (s *Store) Initialize(ctx context.Context) error {
	if err := s.RemoveCorrupted(ctx); err != nil {
		return err
	}
	if err := s.Migrate(ctx); err != nil {
		return err
	}
	s.RegisterDefaults()
	return nil
}

// RemoveCorrupted deletes hold shortcuts persisted as the empty string.
func (s *Store) RemoveCorrupted(ctx context.Context) error {
	for _, k := range KeyHoldShortcut.Keys() {
		raw, ok, err := s.persisted(ctx, k.name)
		if err != nil {
			return err
		}
		if ok && raw == "" {
			s.config.logger.Warn("Removing corrupted preference", "key", k.name)
			if err := s.Remove(ctx, k.name); err != nil {
				return err
			}
		}
	}
	return nil
}

// RegisterDefaults installs the default table as the fallback layer. Host
// dependent defaults are evaluated now. Defaults are never persisted.
func (s *Store) RegisterDefaults() {
	m := make(map[string]string, len(definitionList))
	for _, d := range definitionList {
		m[d.Key] = s.evalDefault(d)
	}

	s.mu.Lock()
	s.defaults = m
	s.mu.Unlock()
}

// Default returns the registered default of key.
func (s *Store) Default(key string) (string, bool) {
	s.mu.RLock()
	registered := s.defaults
	s.mu.RUnlock()

	if registered != nil {
		v, ok := registered[key]
		return v, ok
	}
	d, ok := definitionsByKey[key]
	if !ok {
		return "", false
	}
	return s.evalDefault(d), true
}

func (s *Store) evalDefault(d Definition) string {
	if d.dynamic != nil {
		return d.dynamic(s)
	}
	return d.Default
}

// GetString returns the raw value of key: the cached value, else the persisted
// value, else the registered default. Keys with neither yield ErrNotFound.
func (s *Store) GetString(ctx context.Context, key string) (string, error) {
	if key == "" {
		return "", ErrInvalidKey
	}

	if v, ok := s.getFromCache(ctx, key); ok {
		return v, nil
	}

	v, err := s.backend.Get(ctx, key)
	if err == nil {
		s.setToCache(ctx, key, v)
		return v, nil
	}
	if !errors.Is(err, ErrNotFound) {
		return "", fmt.Errorf("get %q: %w", key, err)
	}

	if d, ok := s.Default(key); ok {
		return d, nil
	}
	return "", ErrNotFound
}

// SetString validates raw against the key's definition and persists it.
func (s *Store) SetString(ctx context.Context, key, raw string) error {
	if key == "" {
		return ErrInvalidKey
	}
	def, ok := LookupDefinition(key)
	if !ok {
		return ErrPreferenceNotDefined
	}
	if err := def.Validate(raw); err != nil {
		return fmt.Errorf("%s: %w", key, err)
	}
	return s.put(ctx, key, raw)
}

// put persists raw without validation and invalidates the cached value.
func (s *Store) put(ctx context.Context, key, raw string) error {
	if err := s.backend.Set(ctx, key, raw); err != nil {
		return fmt.Errorf("set %q: %w", key, err)
	}
	s.deleteFromCache(ctx, key)
	return nil
}

// Remove deletes the persisted value of key so reads fall back to its default.
// Removing a key that was never written is not an error.
func (s *Store) Remove(ctx context.Context, key string) error {
	if key == "" {
		return ErrInvalidKey
	}
	if err := s.backend.Delete(ctx, key); err != nil && !errors.Is(err, ErrNotFound) {
		return fmt.Errorf("remove %q: %w", key, err)
	}
	s.deleteFromCache(ctx, key)
	return nil
}

// Invalidate drops cached values so the next reads go to the backend. Used
// when the backend is modified behind the store's back.
func (s *Store) Invalidate(ctx context.Context, keys ...string) {
	for _, k := range keys {
		s.deleteFromCache(ctx, k)
	}
}

// InvalidateAll drops the cached value of every known and persisted key.
func (s *Store) InvalidateAll(ctx context.Context) {
	for _, d := range definitionList {
		s.deleteFromCache(ctx, d.Key)
	}
	if all, err := s.backend.GetAll(ctx); err == nil {
		for k := range all {
			s.deleteFromCache(ctx, k)
		}
	}
}

// All returns the persisted entries of the domain. Registered defaults are
// not included.
func (s *Store) All(ctx context.Context) (map[string]string, error) {
	all, err := s.backend.GetAll(ctx)
	if err != nil {
		return nil, fmt.Errorf("get all: %w", err)
	}
	return all, nil
}

// ResetAll removes every persisted entry of the domain.
func (s *Store) ResetAll(ctx context.Context) error {
	s.InvalidateAll(ctx)
	if err := s.backend.DeleteAll(ctx); err != nil {
		return fmt.Errorf("reset all: %w", err)
	}
	s.config.logger.Info("Reset all preferences", "domain", s.config.domain)
	return nil
}

// Blacklist returns the blacklist. A stored value that cannot be decoded is
// reset to the default list.
func (s *Store) Blacklist(ctx context.Context) []BlacklistEntry {
	return Get(ctx, s, KeyBlacklist)
}

// SetBlacklist replaces the blacklist.
func (s *Store) SetBlacklist(ctx context.Context, entries []BlacklistEntry) error {
	return Set(ctx, s, KeyBlacklist, entries)
}

// Close closes the cache and the backend.
func (s *Store) Close() error {
	var errs []error
	if err := s.config.cache.Close(); err != nil {
		errs = append(errs, err)
	}
	if err := s.backend.Close(); err != nil {
		errs = append(errs, err)
	}
	return errors.Join(errs...)
}

// Get reads k and converts it. A value that cannot be converted is treated as
// corrupted: it is removed and the read is retried once against the default.
// Get never fails; backend errors are logged and the default is returned.
func Get[T any](ctx context.Context, s *Store, k Key[T]) T {
	raw, err := s.GetString(ctx, k.name)
	if err == nil {
		v, perr := k.parse(raw)
		if perr == nil {
			return v
		}
		s.config.logger.Warn("Resetting corrupted preference",
			"key", k.name, "error", &CorruptionError{Key: k.name, Raw: raw, Err: perr})
		if rerr := s.Remove(ctx, k.name); rerr != nil {
			s.config.logger.Error("Failed to remove corrupted preference", "key", k.name, "error", rerr)
		}
		raw, err = s.GetString(ctx, k.name)
		if err == nil {
			if v, perr := k.parse(raw); perr == nil {
				return v
			}
		}
	}
	if err != nil && !errors.Is(err, ErrNotFound) {
		s.config.logger.Error("Failed to read preference", "key", k.name, "error", err)
	}
	return fallback(s, k)
}

func fallback[T any](s *Store, k Key[T]) T {
	if d, ok := s.Default(k.name); ok {
		if v, err := k.parse(d); err == nil {
			return v
		}
	}
	var zero T
	return zero
}

// Set encodes v and persists it under k.
func Set[T any](ctx context.Context, s *Store, k Key[T], v T) error {
	raw, err := k.format(v)
	if err != nil {
		return err
	}
	return s.put(ctx, k.name, raw)
}

// persisted reads key from the backend only, bypassing cache and defaults.
func (s *Store) persisted(ctx context.Context, key string) (string, bool, error) {
	v, err := s.backend.Get(ctx, key)
	if errors.Is(err, ErrNotFound) {
		return "", false, nil
	}
	if err != nil {
		return "", false, fmt.Errorf("get %q: %w", key, err)
	}
	return v, true, nil
}

// screenRatio treats a missing or unknown screen as a 16:10 display.
func (s *Store) screenRatio() float64 {
	if s.config.screen == nil {
		return 1.6
	}
	if r := s.config.screen.Ratio(); r > 0 {
		return r
	}
	return 1.6
}

// screenIsHorizontal is false only for portrait screens.
func (s *Store) screenIsHorizontal() bool { return s.screenRatio() >= 1 }

func (s *Store) systemTheme() func() appearance.ThemeName {
	if s.config.system == nil {
		return nil
	}
	return s.config.system.ThemeName
}

func (s *Store) cacheKey(key string) string {
	return fmt.Sprintf("pref:%s:%s", s.config.domain, key)
}

func (s *Store) getFromCache(ctx context.Context, key string) (string, bool) {
	data, err := s.config.cache.Get(ctx, s.cacheKey(key))
	if err != nil {
		if !errors.Is(err, cache.ErrMiss) {
			s.config.logger.Error("Failed to read cached preference", "key", key, "error", err)
		}
		return "", false
	}
	v, ok := data.(string)
	return v, ok
}

func (s *Store) setToCache(ctx context.Context, key, value string) {
	if err := s.config.cache.Set(ctx, s.cacheKey(key), value, s.config.cacheTTL); err != nil {
		s.config.logger.Error("Failed to cache preference", "key", key, "error", err)
	}
}

func (s *Store) deleteFromCache(ctx context.Context, key string) {
	if err := s.config.cache.Delete(ctx, s.cacheKey(key)); err != nil {
		s.config.logger.Error("Failed to delete preference from cache", "key", key, "error", err)
	}
}
