// Package config loads the runtime configuration shared by the server and
// the CLI, and wires a Store from it.
package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/spf13/pflag"
	"github.com/spf13/viper"

	"github.com/CreativeUnicorns/switcherprefs"
)

// Backend names.
const (
	BackendMemory   = "memory"
	BackendSQLite   = "sqlite"
	BackendPostgres = "postgres"
	BackendFile     = "file"
)

// Cache names.
const (
	CacheMemory = "memory"
	CacheRedis  = "redis"
)

const (
	appName   = "switcherprefs"
	envPrefix = "SWITCHERPREFS"
)

// Config is the runtime configuration.
type Config struct {
	Backend     string       `mapstructure:"backend"`
	DSN         string       `mapstructure:"dsn"`
	Domain      string       `mapstructure:"domain"`
	AppVersion  string       `mapstructure:"app_version"`
	Cache       string       `mapstructure:"cache"`
	Redis       RedisConfig  `mapstructure:"redis"`
	LogLevel    string       `mapstructure:"log_level"`
	ListenAddr  string       `mapstructure:"listen_addr"`
	Screen      ScreenConfig `mapstructure:"screen"`
	SystemTheme string       `mapstructure:"system_theme"`
	Watch       bool         `mapstructure:"watch"`
}

// RedisConfig locates the shared cache.
type RedisConfig struct {
	Addr     string `mapstructure:"addr"`
	Password string `mapstructure:"password"`
	DB       int    `mapstructure:"db"`
}

// ScreenConfig describes the host screen for screen dependent defaults.
type ScreenConfig struct {
	Horizontal bool `mapstructure:"horizontal"`
}

// flagKeys maps command line flag names to configuration keys.
var flagKeys = map[string]string{
	"backend":     "backend",
	"dsn":         "dsn",
	"domain":      "domain",
	"app-version": "app_version",
	"cache":       "cache",
	"log-level":   "log_level",
	"listen-addr": "listen_addr",
	"watch":       "watch",
}

func setDefaults(v *viper.Viper) {
	v.SetDefault("backend", BackendSQLite)
	v.SetDefault("dsn", "")
	v.SetDefault("domain", switcherprefs.DefaultDomain)
	v.SetDefault("app_version", switcherprefs.DefaultAppVersion)
	v.SetDefault("cache", CacheMemory)
	v.SetDefault("redis.addr", "localhost:6379")
	v.SetDefault("redis.password", "")
	v.SetDefault("redis.db", 0)
	v.SetDefault("log_level", "info")
	v.SetDefault("listen_addr", ":8080")
	v.SetDefault("screen.horizontal", true)
	v.SetDefault("system_theme", "light")
	v.SetDefault("watch", false)
}

// configDir returns the directory holding config.yaml and the default
// database, following the XDG layout.
func configDir() string {
	dir, err := os.UserConfigDir()
	if err != nil {
		home, herr := os.UserHomeDir()
		if herr != nil {
			return ""
		}
		dir = filepath.Join(home, ".config")
	}
	return filepath.Join(dir, appName)
}

// Load reads the configuration from defaults, the config file, the
// environment and flags, in increasing precedence. cfgFile overrides the
// config file lookup; a missing default config file is not an error. flags may
// be nil; only flags the user set override other sources.
func Load(cfgFile string, flags *pflag.FlagSet) (*Config, error) {
	v := viper.New()
	setDefaults(v)

	if cfgFile != "" {
		v.SetConfigFile(cfgFile)
	} else {
		if dir := configDir(); dir != "" {
			v.AddConfigPath(dir)
		}
		if home, err := os.UserHomeDir(); err == nil {
			v.AddConfigPath(filepath.Join(home, ".config", appName))
		}
		v.SetConfigType("yaml")
		v.SetConfigName("config")
	}

	v.SetEnvPrefix(envPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	if err := v.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if cfgFile != "" || !errors.As(err, &notFound) {
			return nil, fmt.Errorf("read config: %w", err)
		}
	}

	if flags != nil {
		for name, key := range flagKeys {
			if f := flags.Lookup(name); f != nil && f.Changed {
				if err := v.BindPFlag(key, f); err != nil {
					return nil, fmt.Errorf("bind flag %q: %w", name, err)
				}
			}
		}
	}

	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return nil, fmt.Errorf("decode config: %w", err)
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return &cfg, nil
}

// Validate checks enumerated fields and fills the default SQLite and file
// locations when dsn is empty.
func (c *Config) Validate() error {
	switch c.Backend {
	case BackendMemory, BackendPostgres:
	case BackendSQLite:
		if c.DSN == "" {
			c.DSN = filepath.Join(configDir(), "preferences.db")
		}
	case BackendFile:
		if c.DSN == "" {
			c.DSN = filepath.Join(configDir(), c.Domain+".yaml")
		}
	default:
		return fmt.Errorf("%w: unknown backend %q", switcherprefs.ErrInvalidInput, c.Backend)
	}
	if c.Backend == BackendPostgres && c.DSN == "" {
		return fmt.Errorf("%w: postgres backend requires dsn", switcherprefs.ErrInvalidInput)
	}

	switch c.Cache {
	case CacheMemory, CacheRedis:
	default:
		return fmt.Errorf("%w: unknown cache %q", switcherprefs.ErrInvalidInput, c.Cache)
	}

	switch c.SystemTheme {
	case "light", "dark":
	default:
		return fmt.Errorf("%w: unknown system theme %q", switcherprefs.ErrInvalidInput, c.SystemTheme)
	}

	if c.Domain == "" {
		return fmt.Errorf("%w: empty domain", switcherprefs.ErrInvalidInput)
	}
	if _, err := switcherprefs.ParseLogLevel(c.LogLevel); err != nil {
		return fmt.Errorf("%w: %v", switcherprefs.ErrInvalidInput, err)
	}
	return nil
}
