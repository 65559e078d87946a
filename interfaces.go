// Package switcherprefs defines interfaces for storage, caching, logging and the
// host capabilities the preferences store consults.
package switcherprefs

import (
	"context"
	"time"

	"github.com/CreativeUnicorns/switcherprefs/appearance"
)

// Backend is a persisted, flat string key-value settings domain.
// Get returns ErrNotFound for keys that were never written or were deleted.
type Backend interface {
	Get(ctx context.Context, key string) (string, error)
	Set(ctx context.Context, key, value string) error
	Delete(ctx context.Context, key string) error
	GetAll(ctx context.Context) (map[string]string, error)
	DeleteAll(ctx context.Context) error
	Close() error
}

// Cache defines the methods required for a caching backend.
type Cache interface {
	Get(ctx context.Context, key string) (interface{}, error)
	Set(ctx context.Context, key string, value interface{}, ttl time.Duration) error
	Delete(ctx context.Context, key string) error
	Close() error
}

// Logger defines the methods required for logging within the preferences system.
// The args should be alternating key-value pairs, similar to slog.
type Logger interface {
	Debug(msg string, args ...any)
	Info(msg string, args ...any)
	Warn(msg string, args ...any)
	Error(msg string, args ...any)
	SetLevel(level LogLevel)
}

// Screen answers questions about the screen the switcher is shown on.
type Screen interface {
	// Ratio is width divided by height. A value <= 0 means unknown.
	Ratio() float64
}

// SystemAppearance resolves the operating system's current light/dark mode.
type SystemAppearance interface {
	ThemeName() appearance.ThemeName
}

// LoginItems is the legacy OS login-items list. Only used by a one-time migration.
type LoginItems interface {
	RemoveApp(ctx context.Context) error
}

// StaticScreen is a Screen with fixed dimensions.
type StaticScreen struct {
	Width  float64
	Height float64
}

func (s StaticScreen) Ratio() float64 {
	if s.Height <= 0 {
		return 0
	}
	return s.Width / s.Height
}

// StaticAppearance is a SystemAppearance that always reports the same theme.
type StaticAppearance appearance.ThemeName

func (a StaticAppearance) ThemeName() appearance.ThemeName {
	return appearance.ThemeName(a)
}
