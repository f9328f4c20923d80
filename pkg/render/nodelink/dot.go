package nodelink

import (
	"bytes"
	"context"
	"fmt"
	"regexp"
	"strconv"

	"github.com/goccy/go-graphviz"

	"github.com/matzehuels/pathviz/pkg/layout"
	"github.com/matzehuels/pathviz/pkg/render"
)

// pointsPerInch converts plan pixels to Graphviz inches.
const pointsPerInch = 72.0

// ToDOT converts a plan to Graphviz DOT with pinned node positions.
func ToDOT(p render.Plan) string {
	var buf bytes.Buffer
	buf.WriteString("graph G {\n")
	buf.WriteString("  layout=neato;\n")
	buf.WriteString("  bgcolor=\"white\";\n")
	buf.WriteString("  splines=false;\n")
	if p.Cost != nil {
		fmt.Fprintf(&buf, "  label=%q;\n  labelloc=t;\n  labeljust=l;\n  fontname=\"Arial Bold\";\n  fontcolor=\"#1450b4\";\n", p.Cost.Text)
	}
	buf.WriteString("  node [shape=circle, style=filled, fillcolor=\"#b4cde6\", color=\"#b4cde6\", fontname=\"Arial Bold\", fontsize=12, fixedsize=true];\n")
	buf.WriteString("  edge [color=gray, fontname=\"Arial\", fontsize=11];\n")
	buf.WriteString("\n")

	for _, n := range p.Nodes {
		fmt.Fprintf(&buf, "  %q [pos=%q, width=%s];\n", n.Label, pos(n.At, p.Height), inches(2*n.Radius))
	}

	buf.WriteString("\n")
	for _, e := range p.Edges {
		fmt.Fprintf(&buf, "  %q -- %q [label=%q];\n", p.Nodes[e.From].Label, p.Nodes[e.To].Label, e.Label)
	}

	if len(p.Highlights) > 0 {
		buf.WriteString("\n")
		for _, s := range p.Highlights {
			fmt.Fprintf(&buf, "  %q -- %q [color=red, penwidth=3];\n", p.Nodes[s.From].Label, p.Nodes[s.To].Label)
		}
	}

	buf.WriteString("}\n")
	return buf.String()
}

func pos(pt layout.Point, height float64) string {
	return fmt.Sprintf("%s,%s!", inches(pt.X), inches(height-pt.Y))
}

func inches(px float64) string {
	return strconv.FormatFloat(px/pointsPerInch, 'f', 4, 64)
}

// RenderSVG renders DOT to SVG using Graphviz's neato engine.
// Returns the SVG bytes ready for display or further conversion with
// [render.ToPDF] or [render.ToPNG].
func RenderSVG(ctx context.Context, dot string) ([]byte, error) {
	gv, err := graphviz.New(ctx)
	if err != nil {
		return nil, fmt.Errorf("init graphviz: %w", err)
	}
	defer gv.Close()
	gv.SetLayout(graphviz.NEATO)

	g, err := graphviz.ParseBytes([]byte(dot))
	if err != nil {
		return nil, fmt.Errorf("parse DOT: %w", err)
	}
	defer g.Close()

	var buf bytes.Buffer
	if err := gv.Render(ctx, g, graphviz.SVG, &buf); err != nil {
		return nil, fmt.Errorf("render: %w", err)
	}
	return normalizeViewBox(buf.Bytes()), nil
}

var (
	svgTagRe  = regexp.MustCompile(`<svg[^>]*>`)
	viewBoxRe = regexp.MustCompile(`viewBox="([0-9.]+)\s+([0-9.]+)\s+([0-9.]+)\s+([0-9.]+)"`)
)

// normalizeViewBox rewrites the root tag so width and height match the
// viewBox in pixels instead of Graphviz's point units.
func normalizeViewBox(svg []byte) []byte {
	match := viewBoxRe.FindSubmatch(svg)
	if match == nil {
		return svg
	}

	w, _ := strconv.ParseFloat(string(match[3]), 64)
	h, _ := strconv.ParseFloat(string(match[4]), 64)
	if w == 0 || h == 0 {
		return svg
	}

	newSvg := fmt.Sprintf(`<svg xmlns="http://www.w3.org/2000/svg" viewBox="0 0 %.2f %.2f" width="%.0f" height="%.0f">`,
		w, h, w, h)

	return svgTagRe.ReplaceAll(svg, []byte(newSvg))
}
