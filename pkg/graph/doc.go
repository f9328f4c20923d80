// Package graph holds the adjacency-matrix model of a weighted directed graph.
//
// A [Model] is built once from raw input and is immutable afterwards. Cell
// (i, j) of the matrix is the weight of the directed edge i→j; zero means the
// edge does not exist. The matrix is not assumed to be symmetric.
//
// # Building
//
// Raw cells usually come from a form or a file and are still text:
//
//	g, err := graph.Build(3, [][]string{
//	    {"0", "4", "10"},
//	    {"0", "0", "3"},
//	    {"0", "0", "0"},
//	})
//
// Integer grids skip the parse step:
//
//	g, err := graph.New([][]int{{0, 5}, {0, 0}})
//
// Both fail with INVALID_DIMENSION when there are fewer than two nodes and with
// INVALID_WEIGHT when a cell is missing, non-numeric, or negative. No partially
// filled model is ever returned.
//
// # Node Labels
//
// Nodes are identified by index and displayed as "U{index}" (see [Label]).
//
// # Concurrency
//
// A Model is read-only after construction and safe for concurrent use.
package graph
