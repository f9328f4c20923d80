package pipeline

import (
	"context"
	"encoding/json"
	"time"

	"github.com/charmbracelet/log"

	"github.com/matzehuels/pathviz/pkg/cache"
	"github.com/matzehuels/pathviz/pkg/errors"
	"github.com/matzehuels/pathviz/pkg/graph"
	"github.com/matzehuels/pathviz/pkg/layout"
	"github.com/matzehuels/pathviz/pkg/observability"
	"github.com/matzehuels/pathviz/pkg/render"
	"github.com/matzehuels/pathviz/pkg/shortest"
)

// Runner encapsulates pipeline execution with caching.
// Both CLI and API use this to avoid duplicating caching logic.
//
// The Runner is stateless except for the cache and logger - it doesn't
// store pipeline results. Multiple goroutines can safely use the same
// Runner with different options.
type Runner struct {
	Cache  cache.Cache
	Keyer  cache.Keyer
	Logger *log.Logger

	// TTL overrides cache.ResultTTL and cache.ArtifactTTL when positive.
	TTL time.Duration
}

// NewRunner creates a runner with the given cache and keyer.
// If keyer is nil, a DefaultKeyer is used.
// If cache is nil, a NullCache is used (caching disabled).
func NewRunner(c cache.Cache, keyer cache.Keyer, logger *log.Logger) *Runner {
	if keyer == nil {
		keyer = cache.NewDefaultKeyer()
	}
	if c == nil {
		c = cache.NewNullCache()
	}
	if logger == nil {
		logger = log.Default()
	}
	return &Runner{
		Cache:  c,
		Keyer:  keyer,
		Logger: logger,
	}
}

// Execute runs the complete layout → solve → render pipeline with caching.
// An unreachable end is a successful run: the artifacts simply carry no
// path overlay.
func (r *Runner) Execute(ctx context.Context, g *graph.Model, opts Options) (*Result, error) {
	if g == nil {
		return nil, errors.New(errors.ErrCodeInvalidInput, "pipeline requires a graph")
	}
	r.applyLogger(&opts)
	if err := opts.ValidateAndSetDefaults(); err != nil {
		return nil, err
	}

	result := &Result{
		Graph:     g,
		GraphHash: g.Hash(),
		Artifacts: make(map[string][]byte),
	}
	result.Stats.NodeCount = g.Size()
	result.Stats.EdgeCount = g.EdgeCount()

	// Stage 1: Layout
	layoutStart := time.Now()
	l, err := r.ComputeLayout(ctx, g, opts)
	if err != nil {
		return nil, err
	}
	result.Layout = l
	result.Stats.LayoutTime = time.Since(layoutStart)

	opts.Logger.Debug("computed layout",
		"nodes", l.Size(),
		"radius", l.Radius,
		"duration", result.Stats.LayoutTime)

	// Stage 2: Solve
	if opts.HasQuery() {
		solveStart := time.Now()
		res, hit, err := r.SolveWithCacheInfo(ctx, g, *opts.Start, *opts.End, opts.Refresh)
		if err != nil {
			return nil, err
		}
		result.Path = &res
		result.Stats.SolveTime = time.Since(solveStart)
		result.CacheInfo.SolveHit = hit

		opts.Logger.Info("solved shortest path",
			"start", graph.Label(res.Start),
			"end", graph.Label(res.End),
			"cost", res.Cost,
			"hops", res.Hops(),
			"duration", result.Stats.SolveTime)
	}

	// Stage 3: Render
	result.Plan = render.Build(g, l, result.Path)

	renderStart := time.Now()
	artifacts, hit, err := r.RenderWithCacheInfo(ctx, result.Plan, result.GraphHash, opts)
	if err != nil {
		return nil, err
	}
	result.Artifacts = artifacts
	result.Stats.RenderTime = time.Since(renderStart)
	result.CacheInfo.RenderHit = hit

	opts.Logger.Info("rendered outputs",
		"formats", opts.Formats,
		"cached", hit,
		"duration", result.Stats.RenderTime)

	return result, nil
}

// ComputeLayout places the nodes of g on the configured canvas.
func (r *Runner) ComputeLayout(ctx context.Context, g *graph.Model, opts Options) (layout.Layout, error) {
	opts.SetLayoutDefaults()

	hooks := observability.Pipeline()
	hooks.OnLayoutStart(ctx, g.Size())
	start := time.Now()
	l, err := layout.Circular(g.Size(), opts.Width, opts.Height)
	hooks.OnLayoutComplete(ctx, g.Size(), time.Since(start), err)
	return l, err
}

// SolveWithCacheInfo computes the shortest path with caching and returns
// cache hit info.
func (r *Runner) SolveWithCacheInfo(ctx context.Context, g *graph.Model, start, end int, refresh bool) (shortest.Result, bool, error) {
	cacheKey := r.Keyer.ResultKey(g.Hash(), start, end)

	if !refresh {
		if data, hit, err := r.Cache.Get(ctx, cacheKey); err == nil && hit {
			var cached shortest.Result
			if err := json.Unmarshal(data, &cached); err == nil {
				observability.Cache().OnCacheHit(ctx, "result")
				return cached, true, nil
			}
		}
		observability.Cache().OnCacheMiss(ctx, "result")
	}

	hooks := observability.Pipeline()
	hooks.OnSolveStart(ctx, g.Size(), start, end)
	began := time.Now()
	res, err := shortest.Path(g, start, end)
	hooks.OnSolveComplete(ctx, g.Size(), err == nil && res.Reachable(), time.Since(began), err)
	if err != nil {
		return shortest.Result{}, false, err
	}

	if data, err := json.Marshal(res); err == nil {
		if err := r.Cache.Set(ctx, cacheKey, data, r.ttl(cache.ResultTTL)); err == nil {
			observability.Cache().OnCacheSet(ctx, "result", len(data))
		} else {
			r.Logger.Warn("cache write failed", "key", "result", "error", err)
		}
	}

	return res, false, nil
}

// Solve is a convenience wrapper that calls SolveWithCacheInfo and discards
// the cache hit info.
func (r *Runner) Solve(ctx context.Context, g *graph.Model, start, end int) (shortest.Result, error) {
	res, _, err := r.SolveWithCacheInfo(ctx, g, start, end, false)
	return res, err
}

// RenderWithCacheInfo generates artifacts with caching and returns cache hit info.
func (r *Runner) RenderWithCacheInfo(ctx context.Context, p render.Plan, graphHash string, opts Options) (map[string][]byte, bool, error) {
	r.applyLogger(&opts)
	opts.SetRenderDefaults()
	if err := ValidateFormats(opts.Formats); err != nil {
		return nil, false, err
	}

	artifacts := make(map[string][]byte)
	if !opts.Refresh {
		for _, format := range opts.Formats {
			key := r.Keyer.ArtifactKey(graphHash, opts.ArtifactKeyOpts(format))
			data, hit, err := r.Cache.Get(ctx, key)
			if err != nil || !hit {
				observability.Cache().OnCacheMiss(ctx, "artifact")
				break
			}
			observability.Cache().OnCacheHit(ctx, "artifact")
			artifacts[format] = data
		}
		if len(artifacts) == len(opts.Formats) {
			return artifacts, true, nil
		}
	}

	hooks := observability.Pipeline()
	hooks.OnRenderStart(ctx, opts.Formats)
	start := time.Now()
	rendered, err := Render(ctx, p, opts)
	hooks.OnRenderComplete(ctx, opts.Formats, time.Since(start), err)
	if err != nil {
		return nil, false, err
	}

	for format, data := range rendered {
		key := r.Keyer.ArtifactKey(graphHash, opts.ArtifactKeyOpts(format))
		if err := r.Cache.Set(ctx, key, data, r.ttl(cache.ArtifactTTL)); err != nil {
			r.Logger.Warn("cache write failed", "key", "artifact", "format", format, "error", err)
			continue
		}
		observability.Cache().OnCacheSet(ctx, "artifact", len(data))
	}

	return rendered, false, nil
}

// Close releases resources held by the runner (primarily the cache).
func (r *Runner) Close() error {
	if r.Cache != nil {
		return r.Cache.Close()
	}
	return nil
}

func (r *Runner) ttl(def time.Duration) time.Duration {
	if r.TTL > 0 {
		return r.TTL
	}
	return def
}

// applyLogger sets the runner's logger on options if not already set.
func (r *Runner) applyLogger(opts *Options) {
	if opts.Logger == nil {
		opts.Logger = r.Logger
	}
}
