package io

import (
	"bufio"
	"bytes"
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

// document is the shared JSON/YAML/TOML shape.
type document struct {
	Size   *int    `json:"size,omitempty" yaml:"size,omitempty" toml:"size,omitempty"`
	Matrix [][]any `json:"matrix" yaml:"matrix" toml:"matrix"`
}

// Matrix is a decoded document before validation.
type Matrix struct {
	Size  int
	Cells [][]string
}

// Build validates the matrix into a model.
func (m Matrix) Build() (*graph.Model, error) {
	return graph.Build(m.Size, m.Cells)
}

// DecodeMatrix decodes r without validating cell contents.
func DecodeMatrix(r io.Reader, format Format) (Matrix, error) {
	if format == FormatText {
		return decodeText(r)
	}

	data, err := io.ReadAll(r)
	if err != nil {
		return Matrix{}, fmt.Errorf("read: %w", err)
	}

	var doc document
	switch format {
	case FormatJSON:
		dec := json.NewDecoder(bytes.NewReader(data))
		dec.UseNumber()
		err = dec.Decode(&doc)
	case FormatYAML:
		err = yaml.Unmarshal(data, &doc)
	case FormatTOML:
		_, err = toml.Decode(string(data), &doc)
	default:
		return Matrix{}, errors.New(errors.ErrCodeInvalidFormat, "unknown matrix format %q", format)
	}
	if err != nil {
		return Matrix{}, errors.Wrap(errors.ErrCodeInvalidInput, err, "decode %s matrix", format)
	}

	m := Matrix{Size: len(doc.Matrix), Cells: make([][]string, len(doc.Matrix))}
	if doc.Size != nil {
		m.Size = *doc.Size
	}
	for i, row := range doc.Matrix {
		m.Cells[i] = make([]string, len(row))
		for j, v := range row {
			m.Cells[i][j] = cellText(v)
		}
	}
	return m, nil
}

// ReadMatrix decodes and validates a matrix from r.
func ReadMatrix(r io.Reader, format Format) (*graph.Model, error) {
	m, err := DecodeMatrix(r, format)
	if err != nil {
		return nil, err
	}
	return m.Build()
}

// ImportMatrix reads the matrix file at path, choosing the format from its
// extension.
func ImportMatrix(path string) (*graph.Model, error) {
	format, err := FormatFromPath(path)
	if err != nil {
		return nil, err
	}
	return ImportMatrixAs(path, format)
}

// ImportMatrixAs reads the matrix file at path in the given format.
func ImportMatrixAs(path string, format Format) (*graph.Model, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("open %s: %w", path, err)
	}
	defer f.Close()
	return ReadMatrix(f, format)
}

// decodeText reads a whitespace or comma separated grid.
func decodeText(r io.Reader) (Matrix, error) {
	var cells [][]string
	sc := bufio.NewScanner(r)
	for sc.Scan() {
		line := strings.TrimSpace(sc.Text())
		if line == "" || strings.HasPrefix(line, "#") {
			continue
		}
		cells = append(cells, splitRow(line))
	}
	if err := sc.Err(); err != nil {
		return Matrix{}, fmt.Errorf("read: %w", err)
	}
	return Matrix{Size: len(cells), Cells: cells}, nil
}

func splitRow(line string) []string {
	if strings.Contains(line, ",") {
		parts := strings.Split(line, ",")
		for i, p := range parts {
			parts[i] = strings.TrimSpace(p)
		}
		return parts
	}
	return strings.Fields(line)
}

// cellText renders a decoded scalar as the text graph.Build parses.
func cellText(v any) string {
	switch x := v.(type) {
	case nil:
		return ""
	case string:
		return x
	case json.Number:
		return x.String()
	case int:
		return strconv.Itoa(x)
	case int64:
		return strconv.FormatInt(x, 10)
	case uint64:
		return strconv.FormatUint(x, 10)
	case float64:
		// A float literal stays a non-integer cell even when it is whole,
		// so 5.0 is rejected in every format the way JSON rejects it.
		s := strconv.FormatFloat(x, 'f', -1, 64)
		if !strings.Contains(s, ".") {
			s += ".0"
		}
		return s
	default:
		return fmt.Sprint(x)
	}
}
