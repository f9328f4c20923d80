package sink

import (
	"bytes"
	"fmt"
	"html"
	"math"

	"github.com/matzehuels/pathviz/pkg/layout"
	"github.com/matzehuels/pathviz/pkg/render"
)

// Palette shared by every drawing.
const (
	colorBackground = "#ffffff"
	colorEdge       = "#808080"
	colorNode       = "#b4cde6"
	colorText       = "#000000"
	colorPath       = "#ff0000"
	colorCost       = "#1450b4"

	edgeWidth    = 1.0
	pathWidth    = 3.0
	arrowLength  = 10.0
	fontFamily   = "Arial, Helvetica, sans-serif"
	nodeFontSize = 12
	edgeFontSize = 11
	costFontSize = 18
)

// SVGOption configures SVG rendering.
type SVGOption func(*svgRenderer)

type svgRenderer struct {
	arrows     bool
	background string
}

// WithArrows draws an arrowhead at the target end of every directed edge.
func WithArrows() SVGOption { return func(r *svgRenderer) { r.arrows = true } }

// WithBackground sets the canvas fill. An empty string leaves it transparent.
func WithBackground(color string) SVGOption {
	return func(r *svgRenderer) { r.background = color }
}

// RenderSVG draws the plan as a standalone SVG document.
func RenderSVG(p render.Plan, opts ...SVGOption) []byte {
	r := svgRenderer{background: colorBackground}
	for _, opt := range opts {
		opt(&r)
	}

	var buf bytes.Buffer
	fmt.Fprintf(&buf, `<svg xmlns="http://www.w3.org/2000/svg" viewBox="0 0 %.1f %.1f" width="%.0f" height="%.0f">`+"\n",
		p.Width, p.Height, p.Width, p.Height)

	if r.background != "" {
		fmt.Fprintf(&buf, `  <rect x="0" y="0" width="%.1f" height="%.1f" fill="%s"/>`+"\n", p.Width, p.Height, r.background)
	}

	renderEdges(&buf, p, r.arrows)
	renderHighlights(&buf, p)
	renderNodes(&buf, p)
	renderCost(&buf, p)

	buf.WriteString("</svg>\n")
	return buf.Bytes()
}

func renderEdges(buf *bytes.Buffer, p render.Plan, arrows bool) {
	buf.WriteString(`  <g id="edges">` + "\n")
	for _, e := range p.Edges {
		fmt.Fprintf(buf, `    <line class="edge" data-from="%d" data-to="%d" x1="%.2f" y1="%.2f" x2="%.2f" y2="%.2f" stroke="%s" stroke-width="%.0f"/>`+"\n",
			e.From, e.To, e.A.X, e.A.Y, e.B.X, e.B.Y, colorEdge, edgeWidth)
		if arrows {
			r := nodeRadius(p, e.From)
			if e.Forward > 0 {
				renderArrow(buf, e.A, e.B, r, colorEdge)
			}
			if e.Reverse > 0 {
				renderArrow(buf, e.B, e.A, r, colorEdge)
			}
		}
		fmt.Fprintf(buf, `    <text class="weight" x="%.2f" y="%.2f" font-family="%s" font-size="%d" fill="%s">%s</text>`+"\n",
			e.LabelAt.X, e.LabelAt.Y, fontFamily, edgeFontSize, colorText, html.EscapeString(e.Label))
	}
	buf.WriteString("  </g>\n")
}

func renderHighlights(buf *bytes.Buffer, p render.Plan) {
	if len(p.Highlights) == 0 {
		return
	}
	buf.WriteString(`  <g id="path">` + "\n")
	for _, s := range p.Highlights {
		fmt.Fprintf(buf, `    <line class="path-segment" data-from="%d" data-to="%d" x1="%.2f" y1="%.2f" x2="%.2f" y2="%.2f" stroke="%s" stroke-width="%.0f" stroke-linecap="round"/>`+"\n",
			s.From, s.To, s.A.X, s.A.Y, s.B.X, s.B.Y, colorPath, pathWidth)
	}
	buf.WriteString("  </g>\n")
}

func renderNodes(buf *bytes.Buffer, p render.Plan) {
	buf.WriteString(`  <g id="nodes">` + "\n")
	for _, n := range p.Nodes {
		stroke := ""
		if n.OnPath {
			stroke = fmt.Sprintf(` stroke="%s" stroke-width="2"`, colorPath)
		}
		fmt.Fprintf(buf, `    <circle class="node" id="node-%d" cx="%.2f" cy="%.2f" r="%.2f" fill="%s"%s/>`+"\n",
			n.Index, n.At.X, n.At.Y, n.Radius, colorNode, stroke)
		fmt.Fprintf(buf, `    <text class="node-label" x="%.2f" y="%.2f" text-anchor="middle" dominant-baseline="central" font-family="%s" font-size="%d" font-weight="bold" fill="%s">%s</text>`+"\n",
			n.At.X, n.At.Y, fontFamily, nodeFontSize, colorText, html.EscapeString(n.Label))
	}
	buf.WriteString("  </g>\n")
}

func renderCost(buf *bytes.Buffer, p render.Plan) {
	if p.Cost == nil {
		return
	}
	fmt.Fprintf(buf, `  <text id="cost" x="%.2f" y="%.2f" font-family="%s" font-size="%d" font-weight="bold" fill="%s">%s</text>`+"\n",
		p.Cost.At.X, p.Cost.At.Y, fontFamily, costFontSize, colorCost, html.EscapeString(p.Cost.Text))
}

// renderArrow draws a filled arrowhead touching the rim of the node at to.
func renderArrow(buf *bytes.Buffer, from, to layout.Point, radius float64, color string) {
	dx, dy := to.X-from.X, to.Y-from.Y
	length := math.Hypot(dx, dy)
	if length <= radius+arrowLength {
		return
	}
	ux, uy := dx/length, dy/length
	tip := layout.Point{X: to.X - ux*radius, Y: to.Y - uy*radius}
	base := layout.Point{X: tip.X - ux*arrowLength, Y: tip.Y - uy*arrowLength}
	half := arrowLength / 2
	left := layout.Point{X: base.X - uy*half, Y: base.Y + ux*half}
	right := layout.Point{X: base.X + uy*half, Y: base.Y - ux*half}
	fmt.Fprintf(buf, `    <polygon class="arrow" points="%.2f,%.2f %.2f,%.2f %.2f,%.2f" fill="%s"/>`+"\n",
		tip.X, tip.Y, left.X, left.Y, right.X, right.Y, color)
}

func nodeRadius(p render.Plan, i int) float64 {
	if i < len(p.Nodes) {
		return p.Nodes[i].Radius
	}
	return layout.DefaultNodeRadius
}
