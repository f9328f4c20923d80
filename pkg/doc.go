// Package pkg provides the core libraries for pathviz shortest-path
// visualization.
//
// # Overview
//
// Pathviz takes a square matrix of non-negative integer edge weights, finds
// the cheapest route between two nodes with Dijkstra's algorithm, places the
// nodes evenly on a circle, and draws the graph with the route highlighted.
// The pkg directory is organized into three areas:
//
//  1. Domain logic: [graph], [shortest], [layout], [render]
//  2. Infrastructure: [cache], [session], [io], [observability]
//  3. Orchestration: [pipeline]
//
// # Architecture
//
// The typical data flow:
//
//	Matrix file or HTTP body
//	         ↓
//	    [io] package (decode json, yaml, toml, or text)
//	         ↓
//	    [graph] package (validated, immutable weight model)
//	         ↓
//	    [shortest] + [layout] packages (path and node coordinates)
//	         ↓
//	    [render] package (draw plan)
//	         ↓
//	    SVG/PNG/PDF/JSON/DOT/text output
//
// # Quick Start
//
//	g, _ := graph.Build(3, [][]string{
//	    {"0", "4", "10"},
//	    {"0", "0", "3"},
//	    {"0", "0", "0"},
//	})
//	res, _ := shortest.Path(g, 0, 2)     // U0 → U1 → U2, cost 7
//	l, _ := layout.Circular(g.Size(), 800, 600)
//	svg := sink.RenderSVG(render.Build(g, l, &res))
//
// # Main Packages
//
// [graph] - The adjacency-matrix model. Construction validates dimensions
// and weights; a built model never changes.
//
// [shortest] - Dense Dijkstra. Ties between equally distant nodes go to the
// lowest index. An unreachable destination is a result, not an error.
//
// [layout] - Circular node placement and drawing radii.
//
// [render] - The flat draw list, plus SVG to PNG/PDF conversion. Sinks live
// in [render/sink]; Graphviz DOT output lives in [render/nodelink].
//
// [pipeline] - Layout, solve, and render in one call with caching. Used by
// both the CLI and the HTTP API.
//
// [cache] - File, Redis, and null caches for results and artifacts.
//
// [session] - Interactive sessions holding a model, a canvas, and the latest
// query. Memory and Redis stores.
//
// [errors] - Coded errors (INVALID_DIMENSION, INVALID_WEIGHT, INVALID_NODE,
// and friends) with user-facing messages.
//
// # Testing
//
//	go test ./pkg/...                    # All tests
//	go test -run Example ./pkg/...       # Examples only
//	go test -tags integration ./pkg/...  # Include Redis tests
//
// [graph]: https://pkg.go.dev/github.com/matzehuels/pathviz/pkg/graph
// [shortest]: https://pkg.go.dev/github.com/matzehuels/pathviz/pkg/shortest
// [layout]: https://pkg.go.dev/github.com/matzehuels/pathviz/pkg/layout
// [render]: https://pkg.go.dev/github.com/matzehuels/pathviz/pkg/render
// [render/sink]: https://pkg.go.dev/github.com/matzehuels/pathviz/pkg/render/sink
// [render/nodelink]: https://pkg.go.dev/github.com/matzehuels/pathviz/pkg/render/nodelink
// [pipeline]: https://pkg.go.dev/github.com/matzehuels/pathviz/pkg/pipeline
// [cache]: https://pkg.go.dev/github.com/matzehuels/pathviz/pkg/cache
// [session]: https://pkg.go.dev/github.com/matzehuels/pathviz/pkg/session
// [io]: https://pkg.go.dev/github.com/matzehuels/pathviz/pkg/io
// [observability]: https://pkg.go.dev/github.com/matzehuels/pathviz/pkg/observability
// [errors]: https://pkg.go.dev/github.com/matzehuels/pathviz/pkg/errors
package pkg
