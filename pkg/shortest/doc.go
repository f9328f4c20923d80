// Package shortest computes single-source shortest paths over a [graph.Model].
//
// # Algorithm
//
// The engine is the classic dense Dijkstra: each round scans every node in
// ascending index order and settles the unvisited one with the smallest finite
// distance. The first minimum found wins, so equal distances always resolve to
// the lowest index. That tie-break decides which of several equal-cost paths is
// reported, and a heap-based variant would not reproduce it. The scan is
// O(size²), which is fine for hand-entered matrices.
//
// Edges are directed: only cell (u, v) > 0 lets the search move from u to v.
// Self loops are ignored.
//
// # Costs
//
// Distances are [Cost] values. An unreachable node has the [Unreachable] cost,
// a sentinel that is distinct from every finite sum. It is never a large
// integer that accumulation could overflow into.
//
// # Usage
//
//	res, err := shortest.Path(g, 0, 2)
//	if err != nil {
//	    // INVALID_NODE: start or end out of range
//	}
//	if !res.Reachable() {
//	    // empty path, normal outcome
//	}
//
// Use [Solve] to keep the whole shortest-path tree and query several
// destinations from the same start.
package shortest
