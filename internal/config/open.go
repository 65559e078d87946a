package config

import (
	"context"
	"fmt"
	"io"

	"github.com/CreativeUnicorns/switcherprefs"
	"github.com/CreativeUnicorns/switcherprefs/appearance"
	"github.com/CreativeUnicorns/switcherprefs/cache"
	"github.com/CreativeUnicorns/switcherprefs/storage"
)

// Runtime is a Store wired from a Config.
type Runtime struct {
	Store  *switcherprefs.Store
	Logger switcherprefs.Logger

	file  *storage.FileStorage
	watch bool
}

// Open builds the logger, backend and cache named by cfg and returns a Store
// over them. Logs go to logOut. The store is not initialized.
func Open(cfg *Config, logOut io.Writer) (*Runtime, error) {
	level, err := switcherprefs.ParseLogLevel(cfg.LogLevel)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", switcherprefs.ErrInvalidInput, err)
	}
	logger := switcherprefs.NewLogger(logOut, level)

	rt := &Runtime{Logger: logger, watch: cfg.Watch}

	var backend switcherprefs.Backend
	switch cfg.Backend {
	case BackendMemory:
		backend = storage.NewMemoryStorage()
	case BackendSQLite:
		backend, err = storage.NewSQLiteStorage(cfg.DSN, cfg.Domain)
	case BackendPostgres:
		backend, err = storage.NewPostgresStorage(cfg.DSN, cfg.Domain)
	case BackendFile:
		rt.file, err = storage.NewFileStorage(cfg.DSN, cfg.Domain, logger)
		backend = rt.file
	default:
		err = fmt.Errorf("%w: unknown backend %q", switcherprefs.ErrInvalidInput, cfg.Backend)
	}
	if err != nil {
		return nil, fmt.Errorf("open %s backend: %w", cfg.Backend, err)
	}

	var c switcherprefs.Cache
	switch cfg.Cache {
	case CacheRedis:
		rc, err := cache.NewRedisCache(cfg.Redis.Addr, cfg.Redis.Password, cfg.Redis.DB)
		if err != nil {
			_ = backend.Close()
			return nil, fmt.Errorf("open redis cache: %w: %v", switcherprefs.ErrCacheUnavailable, err)
		}
		c = rc
	default:
		c = cache.NewMemoryCache()
	}

	screen := switcherprefs.StaticScreen{Width: 16, Height: 9}
	if !cfg.Screen.Horizontal {
		screen = switcherprefs.StaticScreen{Width: 9, Height: 16}
	}

	rt.Store = switcherprefs.New(backend,
		switcherprefs.WithCache(c),
		switcherprefs.WithLogger(logger),
		switcherprefs.WithDomain(cfg.Domain),
		switcherprefs.WithAppVersion(cfg.AppVersion),
		switcherprefs.WithScreen(screen),
		switcherprefs.WithSystemAppearance(switcherprefs.StaticAppearance(appearance.ThemeName(cfg.SystemTheme))),
	)
	logger.Debug("Store opened", "backend", cfg.Backend, "cache", cfg.Cache, "domain", cfg.Domain)
	return rt, nil
}

// Watch invalidates cached values when the settings file is edited by
// another process. It blocks until ctx is done and returns immediately when
// watching is disabled or the backend is not a file.
func (r *Runtime) Watch(ctx context.Context) error {
	if !r.watch || r.file == nil {
		return nil
	}
	return r.file.Watch(ctx, func(changed []string) {
		r.Store.Invalidate(ctx, changed...)
	})
}

// Close closes the store.
func (r *Runtime) Close() error {
	return r.Store.Close()
}
