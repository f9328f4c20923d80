package graph

import (
	"crypto/sha256"
	"encoding/binary"
	"encoding/hex"
	"strconv"
	"strings"

	"github.com/matzehuels/pathviz/pkg/errors"
)

// =============================================================================
// Construction
// =============================================================================

// Build parses a size×size grid of text cells into a Model.
// Cells are trimmed before parsing; an empty cell is rejected like any other
// non-numeric value.
func Build(size int, cells [][]string) (*Model, error) {
	if err := checkShape(size, len(cells), func(i int) int { return len(cells[i]) }); err != nil {
		return nil, err
	}

	weights := make([][]int, size)
	for i, row := range cells {
		weights[i] = make([]int, size)
		for j, raw := range row {
			w, err := parseCell(raw)
			if err != nil {
				return nil, errors.Wrap(errors.ErrCodeInvalidWeight, err,
					"cell (%d,%d) %q is not an integer in [0, %d]", i, j, raw, MaxWeight)
			}
			weights[i][j] = w
		}
	}
	return &Model{size: size, weights: weights}, nil
}

// New validates an integer grid and wraps a private copy of it in a Model.
func New(weights [][]int) (*Model, error) {
	size := len(weights)
	if err := checkShape(size, size, func(i int) int { return len(weights[i]) }); err != nil {
		return nil, err
	}

	m := &Model{size: size, weights: make([][]int, size)}
	for i, row := range weights {
		m.weights[i] = make([]int, size)
		for j, w := range row {
			if w < 0 || w > MaxWeight {
				return nil, errors.New(errors.ErrCodeInvalidWeight,
					"cell (%d,%d) weight %d is outside [0, %d]", i, j, w, MaxWeight)
			}
			m.weights[i][j] = w
		}
	}
	return m, nil
}

func checkShape(size, rows int, cols func(int) int) error {
	if size < MinSize {
		return errors.New(errors.ErrCodeInvalidDimension,
			"node count must be at least %d, got %d", MinSize, size)
	}
	if rows != size {
		return errors.New(errors.ErrCodeInvalidWeight,
			"matrix has %d rows, want %d", rows, size)
	}
	for i := 0; i < rows; i++ {
		if n := cols(i); n != size {
			return errors.New(errors.ErrCodeInvalidWeight,
				"matrix row %d has %d cells, want %d", i, n, size)
		}
	}
	return nil
}

func parseCell(raw string) (int, error) {
	s := strings.TrimSpace(raw)
	w, err := strconv.ParseInt(s, 10, 32)
	if err != nil {
		return 0, err
	}
	if w < 0 {
		return 0, strconv.ErrRange
	}
	return int(w), nil
}

// =============================================================================
// Hashing
// =============================================================================

// Hash returns a stable hex digest of the matrix contents.
// Models with equal size and weights always hash equally.
func (m *Model) Hash() string {
	h := sha256.New()
	var buf [8]byte
	binary.BigEndian.PutUint64(buf[:], uint64(m.size))
	h.Write(buf[:])
	for _, row := range m.weights {
		for _, w := range row {
			binary.BigEndian.PutUint64(buf[:], uint64(w))
			h.Write(buf[:])
		}
	}
	return hex.EncodeToString(h.Sum(nil))
}
