// Package sink provides output format renderers for [render.Plan] values.
//
// # Overview
//
// A "sink" transforms a computed plan into a final output format:
//
//   - SVG: vector drawing of nodes, edges, path overlay, cost text
//   - JSON: the plan itself, for external drawing surfaces
//   - PDF and PNG: SVG converted with rsvg-convert
//   - Text: a terminal summary table
//
// # SVG Output
//
// [RenderSVG] draws, bottom to top: grey edge lines with weight labels at
// their midpoints, red 3px path segments, light-blue node discs labelled
// "U{index}", and the total cost in bold blue at the top-left.
//
//	svg := sink.RenderSVG(plan, sink.WithArrows())
//
// Output is deterministic: identical plans produce identical bytes.
//
// # PDF and PNG Output
//
// [RenderPNG] and [RenderPDF] need librsvg on PATH:
// brew install librsvg (macOS), apt install librsvg2-bin (Linux).
package sink
