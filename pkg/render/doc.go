// Package render turns a graph, its layout, and a shortest-path result into a
// display-ready [Plan].
//
// # Overview
//
// A Plan is a flat draw list: one entry per node, one entry per connected node
// pair, the highlighted path segments, and the total-cost annotation. It is
// derived on demand and never stored. Build it again whenever the graph, the
// layout, or the query changes.
//
//	l, _ := layout.Circular(g.Size(), 800, 600)
//	res, _ := shortest.Path(g, 0, 2)
//	plan := render.Build(g, l, &res)
//
// # Edges
//
// The model is directed but the picture draws one line per unordered pair
// {i, j} whenever either i→j or j→i exists. The entry keeps both directed
// weights so sinks can annotate them. The model itself is never made
// symmetric.
//
// # Path Overlay
//
// When the path has at least two nodes the plan carries one [Segment] per hop
// and a [CostLabel]. An empty or single-node path (unreachable destination,
// or start == end) produces neither.
//
// # Output Formats
//
// Sinks live in subpackages:
//
//   - [sink]: SVG, PNG, PDF, JSON and terminal text
//   - [nodelink]: Graphviz DOT with pinned positions, rendered via go-graphviz
//
// [ToPDF] and [ToPNG] convert SVG through the external rsvg-convert tool.
//
// [sink]: github.com/matzehuels/pathviz/pkg/render/sink
// [nodelink]: github.com/matzehuels/pathviz/pkg/render/nodelink
package render
