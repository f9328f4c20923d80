package cli

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"slices"
	"strings"

	"github.com/spf13/cobra"

	"github.com/matzehuels/pathviz/pkg/pipeline"
	"github.com/matzehuels/pathviz/pkg/render"
)

// renderOpts holds the command-line flags for the render command.
type renderOpts struct {
	query       queryFlags
	inputFormat string  // matrix format override
	output      string  // output file (single format) or base path (multiple)
	formats     string  // comma-separated output formats
	width       float64 // canvas width in pixels
	height      float64 // canvas height in pixels
	engine      string  // SVG engine: native or graphviz
	scale       float64 // PNG scale factor
	arrows      bool    // draw direction markers on edges
	noCache     bool
	refresh     bool
}

// renderCommand creates the render command for generating visualizations.
// Unset flags fall back to the [render] section of the config file.
func (c *CLI) renderCommand() *cobra.Command {
	opts := renderOpts{query: queryFlags{from: -1, to: -1}}

	cmd := &cobra.Command{
		Use:   "render [matrix-file]",
		Short: "Draw the graph and its shortest path",
		Long: `Render lays the graph out on a circle and writes it in one or more formats.

With --from and --to the shortest path is drawn in red with its total cost.
Without them the plain graph is drawn.`,
		Example: `  pathviz render graph.json --from 0 --to 2
  pathviz render graph.txt -f svg,png,json -o out/graph
  pathviz render graph.yaml --engine graphviz --arrows`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			c.applyRenderConfig(cmd, &opts)
			return c.runRender(cmd.Context(), args[0], opts)
		},
	}

	cmd.Flags().IntVar(&opts.query.from, "from", -1, "start node index")
	cmd.Flags().IntVar(&opts.query.to, "to", -1, "end node index")
	cmd.Flags().StringVar(&opts.inputFormat, "input-format", "", "matrix format: json, yaml, toml, text (default: from extension)")
	cmd.Flags().StringVarP(&opts.output, "output", "o", "", "output file (single format) or base path (multiple)")
	cmd.Flags().StringVarP(&opts.formats, "format", "f", "", "output format(s): svg, png, pdf, json, dot, text (comma-separated)")
	cmd.Flags().Float64Var(&opts.width, "width", pipeline.DefaultWidth, "canvas width")
	cmd.Flags().Float64Var(&opts.height, "height", pipeline.DefaultHeight, "canvas height")
	cmd.Flags().StringVar(&opts.engine, "engine", pipeline.EngineNative, "SVG engine: native, graphviz")
	cmd.Flags().Float64Var(&opts.scale, "scale", pipeline.DefaultScale, "PNG scale factor")
	cmd.Flags().BoolVar(&opts.arrows, "arrows", false, "draw direction markers on edges")
	cmd.Flags().BoolVar(&opts.noCache, "no-cache", false, "disable caching")
	cmd.Flags().BoolVar(&opts.refresh, "refresh", false, "ignore cached artifacts")

	return cmd
}

// applyRenderConfig fills flags the user did not set from the config file.
func (c *CLI) applyRenderConfig(cmd *cobra.Command, opts *renderOpts) {
	rc := c.Config.Render
	flags := cmd.Flags()
	if !flags.Changed("width") && rc.Width > 0 {
		opts.width = rc.Width
	}
	if !flags.Changed("height") && rc.Height > 0 {
		opts.height = rc.Height
	}
	if !flags.Changed("scale") && rc.Scale > 0 {
		opts.scale = rc.Scale
	}
	if !flags.Changed("arrows") {
		opts.arrows = rc.Arrows
	}
	if !flags.Changed("format") {
		opts.formats = strings.Join(rc.Formats, ",")
	}
}

// pipelineOptions converts flags to pipeline options.
func (o renderOpts) pipelineOptions() (pipeline.Options, error) {
	start, end, err := o.query.pointers()
	if err != nil {
		return pipeline.Options{}, err
	}
	opts := pipeline.Options{
		Start:   start,
		End:     end,
		Width:   o.width,
		Height:  o.height,
		Formats: parseFormats(o.formats, nil),
		Engine:  o.engine,
		Scale:   o.scale,
		Arrows:  o.arrows,
		Refresh: o.refresh,
	}
	if err := opts.ValidateAndSetDefaults(); err != nil {
		return pipeline.Options{}, err
	}
	return opts, nil
}

func (c *CLI) runRender(ctx context.Context, input string, ro renderOpts) error {
	logger := loggerFromContext(ctx)

	opts, err := ro.pipelineOptions()
	if err != nil {
		return err
	}
	if needsConverter(opts) && !render.ConverterAvailable() {
		return fmt.Errorf("png and pdf output need rsvg-convert on PATH")
	}

	g, err := loadMatrix(input, ro.inputFormat)
	if err != nil {
		return err
	}
	logger.Debug("loaded matrix", "path", input, "nodes", g.Size(), "edges", g.EdgeCount())

	runner, err := c.newRunner(ctx, ro.noCache)
	if err != nil {
		return err
	}
	defer runner.Close()
	opts.Logger = logger

	prog := newProgress(logger, "render")
	spinner := newSpinner(ctx, os.Stderr, "Rendering "+strings.Join(opts.Formats, ", ")+"...")
	spinner.Start()
	result, err := runner.Execute(ctx, g, opts)
	spinner.Stop()
	if err != nil {
		return err
	}
	prog.done("formats", strings.Join(opts.Formats, ","), "cached", result.CacheInfo.RenderHit)

	if result.Path != nil {
		printResult(*result.Path)
	}
	printStats(result.Stats.NodeCount, result.Stats.EdgeCount, result.CacheInfo.RenderHit)

	paths := outputPaths(ro.output, input, opts.Formats)
	for _, format := range opts.Formats {
		if err := writeArtifact(paths[format], result.Artifacts[format]); err != nil {
			return err
		}
		printFile(paths[format])
	}
	return nil
}

// needsConverter reports whether any format is rasterised from SVG.
func needsConverter(opts pipeline.Options) bool {
	return slices.Contains(opts.Formats, pipeline.FormatPNG) ||
		slices.Contains(opts.Formats, pipeline.FormatPDF)
}

// extension returns the file extension for a format.
func extension(format string) string {
	if format == pipeline.FormatText {
		return "txt"
	}
	return format
}

// basePath derives the base output path from the output and input file paths.
// If output is empty, it strips the extension from input.
// If output has a format extension (.svg, .pdf, etc.), it strips that extension.
func basePath(output, input string) string {
	if output == "" {
		return strings.TrimSuffix(input, filepath.Ext(input))
	}
	ext := filepath.Ext(output)
	trimmed := strings.TrimPrefix(ext, ".")
	if pipeline.ValidFormats[trimmed] || trimmed == "txt" {
		return strings.TrimSuffix(output, ext)
	}
	return output
}

// outputPaths maps each format to the file it is written to. A single format
// with an explicit output path is written there verbatim. A derived path
// never overwrites the input matrix.
func outputPaths(output, input string, formats []string) map[string]string {
	paths := make(map[string]string, len(formats))
	if len(formats) == 1 && output != "" && filepath.Ext(output) != "" {
		paths[formats[0]] = output
		return paths
	}
	base := basePath(output, input)
	for _, f := range formats {
		path := base + "." + extension(f)
		if path == input {
			path = base + "-render." + extension(f)
		}
		paths[f] = path
	}
	return paths
}

// writeArtifact writes data to path, creating parent directories.
func writeArtifact(path string, data []byte) error {
	if dir := filepath.Dir(path); dir != "." {
		if err := os.MkdirAll(dir, 0o755); err != nil {
			return fmt.Errorf("create output directory: %w", err)
		}
	}
	if err := os.WriteFile(path, data, 0o644); err != nil {
		return fmt.Errorf("write %s: %w", path, err)
	}
	return nil
}
