package graph

import (
	"testing"

	"github.com/matzehuels/pathviz/pkg/errors"
)

func TestBuild(t *testing.T) {
	tests := []struct {
		name     string
		size     int
		cells    [][]string
		wantCode errors.Code
	}{
		{
			name:  "Valid",
			size:  2,
			cells: [][]string{{"0", "5"}, {"0", "0"}},
		},
		{
			name:  "TrimsWhitespace",
			size:  2,
			cells: [][]string{{" 0", "5 "}, {"\t3", "0"}},
		},
		{
			name:     "SizeZero",
			size:     0,
			cells:    nil,
			wantCode: errors.ErrCodeInvalidDimension,
		},
		{
			name:     "SizeOne",
			size:     1,
			cells:    [][]string{{"0"}},
			wantCode: errors.ErrCodeInvalidDimension,
		},
		{
			name:     "NegativeCell",
			size:     2,
			cells:    [][]string{{"0", "-1"}, {"0", "0"}},
			wantCode: errors.ErrCodeInvalidWeight,
		},
		{
			name:     "NonNumericCell",
			size:     2,
			cells:    [][]string{{"0", "abc"}, {"0", "0"}},
			wantCode: errors.ErrCodeInvalidWeight,
		},
		{
			name:     "EmptyCell",
			size:     2,
			cells:    [][]string{{"0", ""}, {"0", "0"}},
			wantCode: errors.ErrCodeInvalidWeight,
		},
		{
			name:  "MaxWeight",
			size:  2,
			cells: [][]string{{"0", "2147483647"}, {"0", "0"}},
		},
		{
			name:     "WeightAboveMax",
			size:     2,
			cells:    [][]string{{"0", "2147483648"}, {"0", "0"}},
			wantCode: errors.ErrCodeInvalidWeight,
		},
		{
			name:     "WeightBeyondInt64",
			size:     2,
			cells:    [][]string{{"0", "9223372036854775807"}, {"0", "0"}},
			wantCode: errors.ErrCodeInvalidWeight,
		},
		{
			name:     "FractionalCell",
			size:     2,
			cells:    [][]string{{"0", "1.5"}, {"0", "0"}},
			wantCode: errors.ErrCodeInvalidWeight,
		},
		{
			name:     "MissingRow",
			size:     3,
			cells:    [][]string{{"0", "0", "0"}, {"0", "0", "0"}},
			wantCode: errors.ErrCodeInvalidWeight,
		},
		{
			name:     "ShortRow",
			size:     2,
			cells:    [][]string{{"0", "1"}, {"0"}},
			wantCode: errors.ErrCodeInvalidWeight,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			g, err := Build(tt.size, tt.cells)
			if tt.wantCode == "" {
				if err != nil {
					t.Fatalf("Build() error: %v", err)
				}
				if g.Size() != tt.size {
					t.Errorf("Size() = %d, want %d", g.Size(), tt.size)
				}
				return
			}
			if !errors.Is(err, tt.wantCode) {
				t.Fatalf("Build() error = %v, want code %s", err, tt.wantCode)
			}
			if g != nil {
				t.Error("Build() returned a model alongside an error")
			}
		})
	}
}

func TestNew(t *testing.T) {
	if _, err := New([][]int{{0, 1}, {-2, 0}}); !errors.Is(err, errors.ErrCodeInvalidWeight) {
		t.Errorf("New() negative weight error = %v, want INVALID_WEIGHT", err)
	}
	if _, err := New([][]int{{0}}); !errors.Is(err, errors.ErrCodeInvalidDimension) {
		t.Errorf("New() single node error = %v, want INVALID_DIMENSION", err)
	}
	if _, err := New([][]int{{0, 1}, {0}}); !errors.Is(err, errors.ErrCodeInvalidWeight) {
		t.Errorf("New() ragged error = %v, want INVALID_WEIGHT", err)
	}
	if _, err := New([][]int{{0, MaxWeight + 1}, {0, 0}}); !errors.Is(err, errors.ErrCodeInvalidWeight) {
		t.Errorf("New() oversized weight error = %v, want INVALID_WEIGHT", err)
	}
	if _, err := New([][]int{{0, MaxWeight}, {0, 0}}); err != nil {
		t.Errorf("New() MaxWeight error = %v, want nil", err)
	}
}

func TestModelIsImmutable(t *testing.T) {
	src := [][]int{{0, 4}, {2, 0}}
	g, err := New(src)
	if err != nil {
		t.Fatal(err)
	}

	src[0][1] = 99
	if g.Weight(0, 1) != 4 {
		t.Errorf("model changed through source slice: Weight(0,1) = %d", g.Weight(0, 1))
	}

	w := g.Weights()
	w[1][0] = 99
	if g.Weight(1, 0) != 2 {
		t.Errorf("model changed through Weights(): Weight(1,0) = %d", g.Weight(1, 0))
	}
}

func TestHasEdgeIsDirected(t *testing.T) {
	g, err := New([][]int{{0, 5}, {0, 0}})
	if err != nil {
		t.Fatal(err)
	}
	if !g.HasEdge(0, 1) {
		t.Error("HasEdge(0,1) = false, want true")
	}
	if g.HasEdge(1, 0) {
		t.Error("HasEdge(1,0) = true, want false")
	}
}

func TestEdges(t *testing.T) {
	g, err := New([][]int{
		{7, 4, 10},
		{0, 0, 3},
		{1, 0, 0},
	})
	if err != nil {
		t.Fatal(err)
	}

	want := []Edge{
		{From: 0, To: 1, Weight: 4},
		{From: 0, To: 2, Weight: 10},
		{From: 1, To: 2, Weight: 3},
		{From: 2, To: 0, Weight: 1},
	}
	got := g.Edges()
	if len(got) != len(want) {
		t.Fatalf("Edges() = %v, want %v", got, want)
	}
	for i := range want {
		if got[i] != want[i] {
			t.Errorf("Edges()[%d] = %v, want %v", i, got[i], want[i])
		}
	}
	if g.EdgeCount() != len(want) {
		t.Errorf("EdgeCount() = %d, want %d", g.EdgeCount(), len(want))
	}
}

func TestLabel(t *testing.T) {
	if got := Label(0); got != "U0" {
		t.Errorf("Label(0) = %q, want U0", got)
	}
	if got := Label(12); got != "U12" {
		t.Errorf("Label(12) = %q, want U12", got)
	}
}

func TestValidNode(t *testing.T) {
	tests := []struct {
		size, i int
		want    bool
	}{
		{3, 0, true},
		{3, 2, true},
		{3, 3, false},
		{3, -1, false},
	}
	for _, tt := range tests {
		if got := ValidNode(tt.size, tt.i); got != tt.want {
			t.Errorf("ValidNode(%d, %d) = %v, want %v", tt.size, tt.i, got, tt.want)
		}
	}
}

func TestHash(t *testing.T) {
	a, _ := New([][]int{{0, 1}, {2, 0}})
	b, _ := Build(2, [][]string{{"0", "1"}, {"2", "0"}})
	c, _ := New([][]int{{0, 2}, {1, 0}})

	if a.Hash() != b.Hash() {
		t.Error("equal matrices should hash equally")
	}
	if a.Hash() == c.Hash() {
		t.Error("different matrices should hash differently")
	}
	if len(a.Hash()) != 64 {
		t.Errorf("Hash length = %d, want 64", len(a.Hash()))
	}
}

func TestCellsRoundTrip(t *testing.T) {
	g, _ := New([][]int{{0, 12}, {3, 0}})
	back, err := Build(g.Size(), g.Cells())
	if err != nil {
		t.Fatal(err)
	}
	if back.Hash() != g.Hash() {
		t.Error("Build(Cells()) should reproduce the model")
	}
}
