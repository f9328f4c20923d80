// Package cli implements the pathviz command-line interface.
//
// The CLI loads adjacency matrices from files, answers shortest-path queries,
// renders the graph with its path overlay, and serves the HTTP API. It is
// built on cobra and logs through charmbracelet/log.
//
// # Commands
//
//   - solve: print the shortest path and the distance table for a query
//   - render: write SVG, PNG, PDF, JSON, DOT, or text artifacts
//   - interactive: pick start and end nodes in the terminal
//   - convert: rewrite a matrix file in another format
//   - serve: run the HTTP API
//   - cache: inspect or clear the artifact cache
//   - config: show the effective configuration
//
// # Logging
//
// All commands support --verbose (-v) for debug-level logging. Loggers are
// passed through context.Context to allow structured progress tracking.
package cli

import (
	"context"
	"fmt"
	"io"
	"strings"

	"github.com/charmbracelet/log"

	"github.com/matzehuels/pathviz/internal/config"
	"github.com/matzehuels/pathviz/pkg/cache"
	"github.com/matzehuels/pathviz/pkg/pipeline"
)

// =============================================================================
// Constants
// =============================================================================

// appName is the application name used for directories and display.
const appName = "pathviz"

// Log levels exported for use in main.go.
const (
	LogDebug = log.DebugLevel
	LogInfo  = log.InfoLevel
)

// =============================================================================
// CLI - Central CLI State
// =============================================================================

// CLI holds shared state for all commands.
type CLI struct {
	Logger *log.Logger

	// Config is loaded before any command runs.
	Config *config.Config

	// ConfigPath is the file Config was read from, or "" for defaults.
	ConfigPath string
}

// New creates a new CLI instance with a default logger and configuration.
func New(w io.Writer, level log.Level) *CLI {
	return &CLI{
		Logger: newLogger(w, level),
		Config: config.Default(),
	}
}

// SetLogLevel updates the logger's level.
func (c *CLI) SetLogLevel(level log.Level) {
	c.Logger.SetLevel(level)
}

// LoadConfig reads the configuration from path, or from the standard
// locations when path is empty.
func (c *CLI) LoadConfig(path string) error {
	var (
		cfg  *config.Config
		used string
		err  error
	)
	if path != "" {
		cfg, used, err = config.LoadFrom(path)
	} else {
		cfg, used, err = config.Load()
	}
	if err != nil {
		return err
	}
	c.Config = cfg
	c.ConfigPath = used
	if used != "" {
		c.Logger.Debug("loaded config", "path", used)
	}
	return nil
}

// =============================================================================
// Runner Factory
// =============================================================================

// newRunner creates a pipeline runner for CLI use.
func (c *CLI) newRunner(ctx context.Context, noCache bool) (*pipeline.Runner, error) {
	ch, err := c.newCache(ctx, noCache)
	if err != nil {
		return nil, err
	}
	runner := pipeline.NewRunner(ch, nil, c.Logger)
	runner.TTL = c.Config.Cache.TTL.Duration
	return runner, nil
}

// newCache opens the configured cache backend. An unusable file cache
// directory degrades to no caching; an unreachable Redis is an error.
func (c *CLI) newCache(ctx context.Context, noCache bool) (cache.Cache, error) {
	if noCache {
		return cache.NewNullCache(), nil
	}
	switch c.Config.Cache.Backend {
	case config.CacheNone:
		return cache.NewNullCache(), nil
	case config.CacheRedis:
		return cache.NewRedisCache(ctx, cache.RedisConfig{
			Addr:     c.Config.Redis.Addr,
			Password: c.Config.Redis.Password,
			DB:       c.Config.Redis.DB,
		})
	default:
		fc, err := cache.NewFileCache(c.Config.Cache.Dir)
		if err != nil {
			c.Logger.Warn("file cache unavailable, caching disabled", "error", err)
			return cache.NewNullCache(), nil
		}
		return fc, nil
	}
}

// cacheDir returns the file cache directory in effect.
func (c *CLI) cacheDir() (string, error) {
	if c.Config.Cache.Dir != "" {
		return c.Config.Cache.Dir, nil
	}
	return cache.DefaultDir()
}

// =============================================================================
// Options Helpers
// =============================================================================

// parseFormats parses a comma-separated format string into a slice.
// An empty string yields the configured default formats.
func parseFormats(s string, defaults []string) []string {
	if s == "" {
		if len(defaults) == 0 {
			return []string{pipeline.FormatSVG}
		}
		return defaults
	}
	parts := strings.Split(s, ",")
	for i, p := range parts {
		parts[i] = strings.TrimSpace(p)
	}
	return parts
}

// queryFlags holds the --from/--to pair shared by several commands.
type queryFlags struct {
	from, to int
}

// pointers returns the query as pipeline options expect it, or nils when
// the query was not given (both negative).
func (q queryFlags) pointers() (*int, *int, error) {
	switch {
	case q.from < 0 && q.to < 0:
		return nil, nil, nil
	case q.from < 0 || q.to < 0:
		return nil, nil, fmt.Errorf("--from and --to must be given together")
	}
	from, to := q.from, q.to
	return &from, &to, nil
}
