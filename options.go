package switcherprefs

import (
	"time"
)

const (
	// DefaultDomain is the settings domain used when WithDomain is not given.
	DefaultDomain = "com.lwouis.alt-tab-macos"
	// DefaultAppVersion is the running application version used for migrations.
	DefaultAppVersion = "7.0.0"
	// DefaultKeyAboveTab is the key above Tab on a US keyboard.
	DefaultKeyAboveTab = "`"

	defaultCacheTTL = 24 * time.Hour
)

// Config holds the internal configuration for a Store instance.
// It is populated by applying functional Options when a new Store is created with New().
type Config struct {
	cache       Cache
	logger      Logger
	domain      string
	appVersion  string
	cacheTTL    time.Duration
	screen      Screen
	system      SystemAppearance
	loginItems  LoginItems
	keyAboveTab string
}

// Option defines the signature for a functional option that configures a Store.
type Option func(*Config)

// WithCache sets the read cache. Without it the Store uses an in-memory cache.
func WithCache(c Cache) Option {
	return func(cfg *Config) {
		cfg.cache = c
	}
}

// WithLogger sets the Logger implementation for the Store.
func WithLogger(l Logger) Option {
	return func(cfg *Config) {
		cfg.logger = l
	}
}

// WithDomain names the settings domain. It namespaces cache entries so several
// stores can share one cache.
func WithDomain(domain string) Option {
	return func(cfg *Config) {
		cfg.domain = domain
	}
}

// WithAppVersion sets the running application version that migrations compare
// the persisted version against.
func WithAppVersion(v string) Option {
	return func(cfg *Config) {
		cfg.appVersion = v
	}
}

// WithCacheTTL sets how long a read value stays cached.
func WithCacheTTL(ttl time.Duration) Option {
	return func(cfg *Config) {
		cfg.cacheTTL = ttl
	}
}

// WithScreen sets the screen used for screen-dependent defaults and parameters.
func WithScreen(s Screen) Option {
	return func(cfg *Config) {
		cfg.screen = s
	}
}

// WithSystemAppearance sets how the System theme is resolved.
func WithSystemAppearance(a SystemAppearance) Option {
	return func(cfg *Config) {
		cfg.system = a
	}
}

// WithLoginItems sets the legacy login-items list cleaned up by migrations.
func WithLoginItems(l LoginItems) Option {
	return func(cfg *Config) {
		cfg.loginItems = l
	}
}

// WithKeyAboveTab sets the character of the key above Tab for the current
// keyboard layout. It is the default of the second profile's next-window shortcut.
func WithKeyAboveTab(key string) Option {
	return func(cfg *Config) {
		cfg.keyAboveTab = key
	}
}
