// Package io reads and writes weight matrices.
//
// # Formats
//
// Four document formats are supported. JSON, YAML, and TOML share one shape:
//
//	{
//	  "size": 3,
//	  "matrix": [
//	    [0, 4, 10],
//	    [0, 0, 3],
//	    [0, 0, 0]
//	  ]
//	}
//
// "size" is optional and defaults to the number of rows. Cells may be numbers
// or strings; either way they are handed to [graph.Build] as text, so a bad
// cell reports the same INVALID_WEIGHT error no matter which format it came
// from.
//
// The text format is a plain grid, one row per line, cells separated by
// whitespace or commas. Blank lines and lines starting with '#' are skipped:
//
//	# three nodes
//	0 4 10
//	0 0 3
//	0 0 0
//
// # Import
//
// Use [ImportMatrix] to read a file (format chosen by extension), or
// [ReadMatrix] to read any io.Reader in an explicit [Format]:
//
//	g, err := io.ImportMatrix("graph.yaml")
//
// # Export
//
// [WriteMatrix] and [ExportMatrix] write a model back out. Export followed by
// import yields a model with the same [graph.Model.Hash].
//
// [graph.Build]: github.com/matzehuels/pathviz/pkg/graph.Build
// [graph.Model.Hash]: github.com/matzehuels/pathviz/pkg/graph.Model.Hash
package io
