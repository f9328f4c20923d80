package graph

import (
	"fmt"
	"math"
	"slices"
)

// MinSize is the smallest node count a model accepts.
const MinSize = 2

// MaxWeight is the largest edge weight a model accepts. Path costs are sums
// of at most size-1 weights, so they stay far below the int64 range.
const MaxWeight = math.MaxInt32

// labelPrefix is prepended to node indices for display.
const labelPrefix = "U"

// =============================================================================
// Model - Adjacency Matrix
// =============================================================================

// Model is an immutable weighted directed graph stored as a dense matrix.
type Model struct {
	size    int
	weights [][]int
}

// Size returns the number of nodes.
func (m *Model) Size() int { return m.size }

// Weight returns the weight of edge i→j, or 0 when there is no edge.
func (m *Model) Weight(i, j int) int { return m.weights[i][j] }

// HasEdge reports whether the directed edge i→j exists.
func (m *Model) HasEdge(i, j int) bool { return m.weights[i][j] > 0 }

// Label returns the display label of node i.
func (m *Model) Label(i int) string { return Label(i) }

// Weights returns a deep copy of the adjacency matrix.
func (m *Model) Weights() [][]int {
	out := make([][]int, m.size)
	for i, row := range m.weights {
		out[i] = slices.Clone(row)
	}
	return out
}

// Cells returns the matrix as decimal strings, the inverse of [Build].
func (m *Model) Cells() [][]string {
	out := make([][]string, m.size)
	for i, row := range m.weights {
		out[i] = make([]string, m.size)
		for j, w := range row {
			out[i][j] = fmt.Sprint(w)
		}
	}
	return out
}

// Edges returns every directed edge in row-major order.
// Self loops are skipped because no consumer treats them as edges.
func (m *Model) Edges() []Edge {
	var edges []Edge
	for i := 0; i < m.size; i++ {
		for j := 0; j < m.size; j++ {
			if i != j && m.HasEdge(i, j) {
				edges = append(edges, Edge{From: i, To: j, Weight: m.weights[i][j]})
			}
		}
	}
	return edges
}

// EdgeCount returns the number of directed edges, excluding self loops.
func (m *Model) EdgeCount() int {
	n := 0
	for i := 0; i < m.size; i++ {
		for j := 0; j < m.size; j++ {
			if i != j && m.HasEdge(i, j) {
				n++
			}
		}
	}
	return n
}

// =============================================================================
// Edge - Directed Weighted Edge
// =============================================================================

// Edge is a directed edge with a positive weight.
type Edge struct {
	From   int `json:"from"`
	To     int `json:"to"`
	Weight int `json:"weight"`
}

// Label returns the display label for node index i.
func Label(i int) string {
	return fmt.Sprintf("%s%d", labelPrefix, i)
}

// ValidNode reports whether i is a node index of a graph with size nodes.
func ValidNode(size, i int) bool {
	return i >= 0 && i < size
}
