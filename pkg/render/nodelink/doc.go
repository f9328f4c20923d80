// Package nodelink renders a [render.Plan] through Graphviz.
//
// # Overview
//
// [ToDOT] writes the plan as an undirected DOT graph whose node positions are
// pinned to the circular layout (pos="x,y!"), so Graphviz only draws and never
// re-arranges. Path segments are emitted as extra red, bold edges on top of
// the grey base edges. The cost annotation becomes the graph label.
//
//	dot := nodelink.ToDOT(plan)
//	svg, err := nodelink.RenderSVG(ctx, dot)
//
// The DOT text is also useful on its own: save it and feed it to any Graphviz
// tool with `neato -n2`.
//
// # Coordinates
//
// Graphviz puts the origin at the bottom-left and measures positions in
// inches, while the plan uses top-left pixel coordinates. ToDOT flips the y
// axis and divides by 72 points per inch.
//
// # Dependencies
//
// This package uses [github.com/goccy/go-graphviz] for in-process SVG
// rendering with the neato engine.
package nodelink
