package pipeline

import (
	"context"
	"fmt"

	"github.com/matzehuels/pathviz/pkg/render"
	"github.com/matzehuels/pathviz/pkg/render/nodelink"
	"github.com/matzehuels/pathviz/pkg/render/sink"
)

// Render generates output artifacts in the requested formats.
func Render(ctx context.Context, p render.Plan, opts Options) (map[string][]byte, error) {
	opts.SetRenderDefaults()

	var svg []byte
	svgFor := func() ([]byte, error) {
		if svg != nil {
			return svg, nil
		}
		var err error
		svg, err = renderSVG(ctx, p, opts)
		return svg, err
	}

	artifacts := make(map[string][]byte, len(opts.Formats))
	for _, format := range opts.Formats {
		var data []byte
		var err error

		switch format {
		case FormatSVG:
			data, err = svgFor()
		case FormatPNG:
			if data, err = svgFor(); err == nil {
				data, err = render.ToPNG(ctx, data, opts.Scale)
			}
		case FormatPDF:
			if data, err = svgFor(); err == nil {
				data, err = render.ToPDF(ctx, data)
			}
		case FormatJSON:
			data, err = sink.RenderJSON(p)
		case FormatDOT:
			data = []byte(nodelink.ToDOT(p))
		case FormatText:
			data = []byte(sink.RenderText(p))
		default:
			return nil, ValidateFormat(format)
		}

		if err != nil {
			return nil, fmt.Errorf("render %s: %w", format, err)
		}
		artifacts[format] = data
	}

	return artifacts, nil
}

// renderSVG draws the plan with the configured engine.
func renderSVG(ctx context.Context, p render.Plan, opts Options) ([]byte, error) {
	if opts.Engine == EngineGraphviz {
		return nodelink.RenderSVG(ctx, nodelink.ToDOT(p))
	}
	var svgOpts []sink.SVGOption
	if opts.Arrows {
		svgOpts = append(svgOpts, sink.WithArrows())
	}
	return sink.RenderSVG(p, svgOpts...), nil
}
