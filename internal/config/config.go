// Package config loads pathviz settings.
//
// Config file locations (priority order):
//  1. $PATHVIZ_CONFIG
//  2. ./pathviz.toml
//  3. $XDG_CONFIG_HOME/pathviz/config.toml
//  4. ~/.config/pathviz/config.toml
//
// A missing file is not an error: defaults apply. PATHVIZ_* environment
// variables override file values, and command-line flags override both.
package config

import (
	"fmt"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/BurntSushi/toml"
)

// Cache backends.
const (
	CacheFile  = "file"
	CacheRedis = "redis"
	CacheNone  = "none"
)

// Session backends.
const (
	SessionMemory = "memory"
	SessionRedis  = "redis"
)

// Config is the full settings tree.
type Config struct {
	Render  RenderConfig  `toml:"render"`
	Server  ServerConfig  `toml:"server"`
	Cache   CacheConfig   `toml:"cache"`
	Redis   RedisConfig   `toml:"redis"`
	Session SessionConfig `toml:"session"`
}

// RenderConfig sets canvas defaults.
type RenderConfig struct {
	Width   float64  `toml:"width"`
	Height  float64  `toml:"height"`
	Scale   float64  `toml:"scale"`
	Arrows  bool     `toml:"arrows"`
	Formats []string `toml:"formats"`
}

// ServerConfig configures the HTTP API.
type ServerConfig struct {
	Addr         string   `toml:"addr"`
	ReadTimeout  Duration `toml:"read_timeout"`
	WriteTimeout Duration `toml:"write_timeout"`
}

// CacheConfig picks the artifact cache backend.
type CacheConfig struct {
	Backend string   `toml:"backend"`
	Dir     string   `toml:"dir"`
	TTL     Duration `toml:"ttl"`
}

// RedisConfig is shared by the Redis cache and session store.
type RedisConfig struct {
	Addr     string `toml:"addr"`
	Password string `toml:"password"`
	DB       int    `toml:"db"`
}

// SessionConfig picks the API session store.
type SessionConfig struct {
	Backend string   `toml:"backend"`
	TTL     Duration `toml:"ttl"`
}

// Duration is a time.Duration written as a string ("30s") in TOML.
type Duration struct{ time.Duration }

// UnmarshalText parses a duration string.
func (d *Duration) UnmarshalText(text []byte) error {
	v, err := time.ParseDuration(string(text))
	if err != nil {
		return err
	}
	d.Duration = v
	return nil
}

// MarshalText formats the duration.
func (d Duration) MarshalText() ([]byte, error) {
	return []byte(d.Duration.String()), nil
}

// Default returns the built-in settings.
func Default() *Config {
	return &Config{
		Render: RenderConfig{
			Width:   800,
			Height:  600,
			Scale:   2,
			Formats: []string{"svg"},
		},
		Server: ServerConfig{
			Addr:         ":8080",
			ReadTimeout:  Duration{15 * time.Second},
			WriteTimeout: Duration{30 * time.Second},
		},
		Cache: CacheConfig{
			Backend: CacheFile,
			TTL:     Duration{7 * 24 * time.Hour},
		},
		Redis: RedisConfig{
			Addr: "localhost:6379",
		},
		Session: SessionConfig{
			Backend: SessionMemory,
			TTL:     Duration{2 * time.Hour},
		},
	}
}

// Load finds and loads the config file, then applies environment overrides.
// It returns the path that was read, or "" when defaults were used.
func Load() (*Config, string, error) {
	return LoadFrom(FindConfigPath())
}

// LoadFrom loads path (or defaults when path is empty), then applies
// environment overrides.
func LoadFrom(path string) (*Config, string, error) {
	cfg := Default()
	if path != "" {
		data, err := os.ReadFile(path)
		if err != nil {
			return nil, path, fmt.Errorf("read config: %w", err)
		}
		if _, err := toml.Decode(string(data), cfg); err != nil {
			return nil, path, fmt.Errorf("parse config %s: %w", path, err)
		}
	}
	if err := cfg.applyEnv(os.LookupEnv); err != nil {
		return nil, path, err
	}
	if err := cfg.Validate(); err != nil {
		return nil, path, err
	}
	return cfg, path, nil
}

// Validate checks enumerated fields and canvas sizes.
func (c *Config) Validate() error {
	switch c.Cache.Backend {
	case CacheFile, CacheRedis, CacheNone:
	default:
		return fmt.Errorf("cache.backend: unknown backend %q", c.Cache.Backend)
	}
	switch c.Session.Backend {
	case SessionMemory, SessionRedis:
	default:
		return fmt.Errorf("session.backend: unknown backend %q", c.Session.Backend)
	}
	if c.Render.Width <= 0 || c.Render.Height <= 0 {
		return fmt.Errorf("render: canvas must be positive, got %vx%v", c.Render.Width, c.Render.Height)
	}
	return nil
}

// Encode writes c as TOML.
func (c *Config) Encode() (string, error) {
	var b strings.Builder
	if err := toml.NewEncoder(&b).Encode(c); err != nil {
		return "", err
	}
	return b.String(), nil
}

// Environment variable names.
const (
	EnvServerAddr     = "PATHVIZ_SERVER_ADDR"
	EnvRedisAddr      = "PATHVIZ_REDIS_ADDR"
	EnvRedisPassword  = "PATHVIZ_REDIS_PASSWORD"
	EnvRedisDB        = "PATHVIZ_REDIS_DB"
	EnvCacheBackend   = "PATHVIZ_CACHE_BACKEND"
	EnvCacheDir       = "PATHVIZ_CACHE_DIR"
	EnvSessionBackend = "PATHVIZ_SESSION_BACKEND"
)

func (c *Config) applyEnv(lookup func(string) (string, bool)) error {
	str := map[string]*string{
		EnvServerAddr:     &c.Server.Addr,
		EnvRedisAddr:      &c.Redis.Addr,
		EnvRedisPassword:  &c.Redis.Password,
		EnvCacheBackend:   &c.Cache.Backend,
		EnvCacheDir:       &c.Cache.Dir,
		EnvSessionBackend: &c.Session.Backend,
	}
	for name, dst := range str {
		if v, ok := lookup(name); ok && v != "" {
			*dst = v
		}
	}
	if v, ok := lookup(EnvRedisDB); ok && v != "" {
		db, err := strconv.Atoi(v)
		if err != nil {
			return fmt.Errorf("%s: %w", EnvRedisDB, err)
		}
		c.Redis.DB = db
	}
	return nil
}
