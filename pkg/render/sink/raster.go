package sink

import (
	"context"

	"github.com/matzehuels/pathviz/pkg/render"
)

// DefaultScale is the PNG scale factor (2x for high-DPI displays).
const DefaultScale = 2.0

// RenderPNG renders the plan as PNG via SVG conversion.
func RenderPNG(ctx context.Context, p render.Plan, scale float64, opts ...SVGOption) ([]byte, error) {
	if scale <= 0 {
		scale = DefaultScale
	}
	return render.ToPNG(ctx, RenderSVG(p, opts...), scale)
}

// RenderPDF renders the plan as PDF via SVG conversion.
func RenderPDF(ctx context.Context, p render.Plan, opts ...SVGOption) ([]byte, error) {
	return render.ToPDF(ctx, RenderSVG(p, opts...))
}
