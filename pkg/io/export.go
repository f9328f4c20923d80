package io

import (
	"encoding/json"
	"fmt"
	"io"
	"os"
	"strconv"
	"strings"

	"github.com/BurntSushi/toml"
	"gopkg.in/yaml.v3"

	"github.com/matzehuels/pathviz/pkg/errors"
	"github.com/matzehuels/pathviz/pkg/graph"
)

type exportDoc struct {
	Size   int     `json:"size" yaml:"size" toml:"size"`
	Matrix [][]int `json:"matrix" yaml:"matrix,flow" toml:"matrix"`
}

// WriteMatrix encodes g in the given format and writes it to w.
// The output can be re-read with [ReadMatrix].
func WriteMatrix(w io.Writer, g *graph.Model, format Format) error {
	doc := exportDoc{Size: g.Size(), Matrix: g.Weights()}

	var err error
	switch format {
	case FormatJSON:
		enc := json.NewEncoder(w)
		enc.SetIndent("", "  ")
		err = enc.Encode(doc)
	case FormatYAML:
		enc := yaml.NewEncoder(w)
		enc.SetIndent(2)
		err = enc.Encode(doc)
		if err == nil {
			err = enc.Close()
		}
	case FormatTOML:
		err = toml.NewEncoder(w).Encode(doc)
	case FormatText:
		err = writeText(w, doc.Matrix)
	default:
		return errors.New(errors.ErrCodeInvalidFormat, "unknown matrix format %q", format)
	}
	if err != nil {
		return fmt.Errorf("encode: %w", err)
	}
	return nil
}

// ExportMatrix writes g to the file at path, choosing the format from its
// extension.
func ExportMatrix(g *graph.Model, path string) error {
	format, err := FormatFromPath(path)
	if err != nil {
		return err
	}
	return ExportMatrixAs(g, path, format)
}

// ExportMatrixAs writes g to the file at path in the given format.
func ExportMatrixAs(g *graph.Model, path string, format Format) error {
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("create %s: %w", path, err)
	}
	if err := WriteMatrix(f, g, format); err != nil {
		f.Close()
		return err
	}
	return f.Close()
}

func writeText(w io.Writer, rows [][]int) error {
	var b strings.Builder
	for _, row := range rows {
		for j, v := range row {
			if j > 0 {
				b.WriteByte(' ')
			}
			b.WriteString(strconv.Itoa(v))
		}
		b.WriteByte('\n')
	}
	_, err := io.WriteString(w, b.String())
	return err
}
