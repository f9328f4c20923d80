// Package pipeline provides the layout → solve → render pipeline for pathviz.
//
// The CLI and the HTTP API both go through this package so the same matrix
// and query always produce the same artifacts, with the same cache keys.
//
// # Stages
//
//  1. Layout: place nodes on a circle for the requested canvas
//  2. Solve: run the shortest-path search when a start/end pair is given
//  3. Render: derive a plan and write it in every requested format
//
// # Usage
//
//	runner := pipeline.NewRunner(cache, nil, logger)
//	start, end := 0, 2
//	result, err := runner.Execute(ctx, g, pipeline.Options{
//	    Start:   &start,
//	    End:     &end,
//	    Formats: []string{"svg", "json"},
//	})
//	svg := result.Artifacts["svg"]
//
// The solve stage caches results by graph hash and query, and the render
// stage caches each artifact by graph hash, query, canvas, and format.
package pipeline

import (
	"io"
	"time"

	"github.com/charmbracelet/log"

	"github.com/matzehuels/pathviz/pkg/cache"
	"github.com/matzehuels/pathviz/pkg/errors"
	"github.com/matzehuels/pathviz/pkg/graph"
	"github.com/matzehuels/pathviz/pkg/layout"
	"github.com/matzehuels/pathviz/pkg/render"
	"github.com/matzehuels/pathviz/pkg/shortest"
)

// =============================================================================
// Default Values - Single Source of Truth for CLI and API
// =============================================================================

const (
	// DefaultWidth is the default canvas width in pixels.
	DefaultWidth = 800.0

	// DefaultHeight is the default canvas height in pixels.
	DefaultHeight = 600.0

	// DefaultScale is the PNG scale factor.
	DefaultScale = 2.0
)

// Format constants for output formats.
const (
	FormatSVG  = "svg"
	FormatPNG  = "png"
	FormatPDF  = "pdf"
	FormatJSON = "json"
	FormatDOT  = "dot"
	FormatText = "text"
)

// SVG engines.
const (
	// EngineNative draws SVG directly from the plan.
	EngineNative = "native"

	// EngineGraphviz renders the plan's DOT form with Graphviz neato.
	EngineGraphviz = "graphviz"
)

// ValidFormats is the set of supported output formats.
var ValidFormats = map[string]bool{
	FormatSVG:  true,
	FormatPNG:  true,
	FormatPDF:  true,
	FormatJSON: true,
	FormatDOT:  true,
	FormatText: true,
}

// ValidEngines is the set of supported SVG engines.
var ValidEngines = map[string]bool{
	EngineNative:   true,
	EngineGraphviz: true,
}

// =============================================================================
// Options - Pipeline Configuration
// =============================================================================

// Options contains all configuration for one pipeline run.
// This struct supports JSON serialization for API requests.
type Options struct {
	// Query options. Both nil renders the graph without a path.
	Start *int `json:"start,omitempty"`
	End   *int `json:"end,omitempty"`

	// Layout options
	Width  float64 `json:"width,omitempty"`
	Height float64 `json:"height,omitempty"`

	// Render options
	Formats []string `json:"formats,omitempty"`
	Engine  string   `json:"engine,omitempty"`
	Scale   float64  `json:"scale,omitempty"`
	Arrows  bool     `json:"arrows,omitempty"`

	// Refresh bypasses cached results and artifacts.
	Refresh bool `json:"refresh,omitempty"`

	// Runtime options (not serialized)
	Logger *log.Logger `json:"-"`
}

// Result contains the outputs of a pipeline run.
type Result struct {
	// Graph is the input model.
	Graph *graph.Model

	// GraphHash is the content hash of the graph.
	GraphHash string

	// Layout holds node coordinates.
	Layout layout.Layout

	// Path is the shortest-path result, or nil when no query was given.
	Path *shortest.Result

	// Plan is the draw list every artifact was rendered from.
	Plan render.Plan

	// Artifacts contains rendered outputs keyed by format.
	Artifacts map[string][]byte

	// Stats contains timing and size information.
	Stats Stats

	// CacheInfo tracks which stages hit the cache.
	CacheInfo CacheInfo
}

// Stats contains pipeline execution statistics.
type Stats struct {
	NodeCount  int
	EdgeCount  int
	LayoutTime time.Duration
	SolveTime  time.Duration
	RenderTime time.Duration
}

// CacheInfo tracks cache hits for each pipeline stage.
type CacheInfo struct {
	SolveHit  bool // Whether the path result came from cache
	RenderHit bool // Whether all artifacts came from cache
}

// =============================================================================
// Validation Functions
// =============================================================================

// ValidateFormat checks that a format is valid.
func ValidateFormat(format string) error {
	if !ValidFormats[format] {
		return errors.New(errors.ErrCodeInvalidFormat,
			"invalid format: %q (must be one of: svg, png, pdf, json, dot, text)", format)
	}
	return nil
}

// ValidateFormats checks that all formats are valid.
func ValidateFormats(formats []string) error {
	for _, f := range formats {
		if err := ValidateFormat(f); err != nil {
			return err
		}
	}
	return nil
}

// ValidateEngine checks that an SVG engine is valid.
func ValidateEngine(engine string) error {
	if !ValidEngines[engine] {
		return errors.New(errors.ErrCodeInvalidFormat,
			"invalid engine: %q (must be one of: native, graphviz)", engine)
	}
	return nil
}

// =============================================================================
// Options Methods
// =============================================================================

// ValidateAndSetDefaults checks the query shape and applies defaults.
// Node ranges are checked by the solve stage, which knows the graph size.
func (o *Options) ValidateAndSetDefaults() error {
	if (o.Start == nil) != (o.End == nil) {
		return errors.New(errors.ErrCodeInvalidInput, "start and end must be given together")
	}
	o.SetLayoutDefaults()
	o.SetRenderDefaults()
	if err := ValidateFormats(o.Formats); err != nil {
		return err
	}
	return ValidateEngine(o.Engine)
}

// SetLayoutDefaults sets default values for layout computation.
func (o *Options) SetLayoutDefaults() {
	if o.Width == 0 {
		o.Width = DefaultWidth
	}
	if o.Height == 0 {
		o.Height = DefaultHeight
	}
	if o.Logger == nil {
		o.Logger = log.NewWithOptions(io.Discard, log.Options{})
	}
}

// SetRenderDefaults sets default values for rendering.
func (o *Options) SetRenderDefaults() {
	if len(o.Formats) == 0 {
		o.Formats = []string{FormatSVG}
	}
	if o.Engine == "" {
		o.Engine = EngineNative
	}
	if o.Scale == 0 {
		o.Scale = DefaultScale
	}
	if o.Logger == nil {
		o.Logger = log.NewWithOptions(io.Discard, log.Options{})
	}
}

// HasQuery reports whether a start/end pair was given.
func (o *Options) HasQuery() bool {
	return o.Start != nil && o.End != nil
}

// ArtifactKeyOpts returns cache key options for artifact rendering.
func (o *Options) ArtifactKeyOpts(format string) cache.ArtifactKeyOpts {
	k := cache.ArtifactKeyOpts{
		Format: format,
		Width:  o.Width,
		Height: o.Height,
		Start:  o.Start,
		End:    o.End,
		Arrows: o.Arrows,
	}
	if format == FormatPNG {
		k.Scale = o.Scale
	}
	if format == FormatSVG || format == FormatPNG || format == FormatPDF {
		k.Engine = o.Engine
	}
	return k
}
