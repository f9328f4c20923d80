package render

import (
	"testing"

	"github.com/matzehuels/pathviz/pkg/graph"
	"github.com/matzehuels/pathviz/pkg/layout"
	"github.com/matzehuels/pathviz/pkg/shortest"
)

func fixture(t *testing.T, w [][]int) (*graph.Model, layout.Layout) {
	t.Helper()
	g, err := graph.New(w)
	if err != nil {
		t.Fatal(err)
	}
	l, err := layout.Circular(g.Size(), 800, 600)
	if err != nil {
		t.Fatal(err)
	}
	return g, l
}

func TestBuildNodes(t *testing.T) {
	g, l := fixture(t, [][]int{{0, 1, 0}, {0, 0, 0}, {0, 0, 0}})
	p := Build(g, l, nil)

	if len(p.Nodes) != 3 {
		t.Fatalf("len(Nodes) = %d, want 3", len(p.Nodes))
	}
	for i, n := range p.Nodes {
		if n.Index != i || n.Label != graph.Label(i) {
			t.Errorf("node %d = %+v", i, n)
		}
		if n.At != l.Position(i) {
			t.Errorf("node %d at %v, want %v", i, n.At, l.Position(i))
		}
		if n.Radius != l.NodeRadius {
			t.Errorf("node %d radius %v, want %v", i, n.Radius, l.NodeRadius)
		}
	}
	if p.Width != 800 || p.Height != 600 {
		t.Errorf("canvas = %vx%v, want 800x600", p.Width, p.Height)
	}
}

func TestBuildEdgesOncePerPair(t *testing.T) {
	g, l := fixture(t, [][]int{
		{0, 4, 0, 0},
		{4, 0, 0, 2},
		{6, 0, 0, 0},
		{0, 5, 0, 9},
	})
	p := Build(g, l, nil)

	want := []struct {
		from, to, fwd, rev int
		label              string
	}{
		{0, 1, 4, 4, "4"},
		{0, 2, 0, 6, "6"},
		{1, 3, 2, 5, "2/5"},
	}
	if len(p.Edges) != len(want) {
		t.Fatalf("Edges = %+v, want %d entries", p.Edges, len(want))
	}
	for i, w := range want {
		e := p.Edges[i]
		if e.From != w.from || e.To != w.to || e.Forward != w.fwd || e.Reverse != w.rev || e.Label != w.label {
			t.Errorf("Edges[%d] = %+v, want %+v", i, e, w)
		}
		if e.LabelAt != layout.Midpoint(e.A, e.B) {
			t.Errorf("Edges[%d] label not at midpoint", i)
		}
	}
}

func TestBuildDoesNotSymmetrizeModel(t *testing.T) {
	g, l := fixture(t, [][]int{{0, 5}, {0, 0}})
	_ = Build(g, l, nil)
	if g.HasEdge(1, 0) {
		t.Error("Build must not add reverse edges to the model")
	}
}

func TestBuildPathOverlay(t *testing.T) {
	g, l := fixture(t, [][]int{
		{0, 4, 10},
		{0, 0, 3},
		{0, 0, 0},
	})
	res, err := shortest.Path(g, 0, 2)
	if err != nil {
		t.Fatal(err)
	}
	p := Build(g, l, &res)

	if len(p.Highlights) != 2 {
		t.Fatalf("Highlights = %+v, want 2 segments", p.Highlights)
	}
	if s := p.Highlights[0]; s.From != 0 || s.To != 1 || s.Weight != 4 || s.A != l.Position(0) || s.B != l.Position(1) {
		t.Errorf("Highlights[0] = %+v", s)
	}
	if s := p.Highlights[1]; s.From != 1 || s.To != 2 || s.Weight != 3 {
		t.Errorf("Highlights[1] = %+v", s)
	}
	if p.Cost == nil || p.Cost.Text != "Total Cost: 7" || p.Cost.Cost != 7 || p.Cost.At != CostPosition {
		t.Errorf("Cost = %+v", p.Cost)
	}
	for _, n := range p.Nodes {
		if !n.OnPath {
			t.Errorf("node %d should be on path", n.Index)
		}
	}
	if !p.HasPath() {
		t.Error("HasPath() = false")
	}
}

func TestBuildOmitsOverlayForShortPaths(t *testing.T) {
	g, l := fixture(t, [][]int{{0, 5}, {0, 0}})

	unreachable, _ := shortest.Path(g, 1, 0)
	same, _ := shortest.Path(g, 1, 1)

	tests := []struct {
		name string
		res  *shortest.Result
	}{
		{"NoResult", nil},
		{"Unreachable", &unreachable},
		{"StartEqualsEnd", &same},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			p := Build(g, l, tt.res)
			if len(p.Highlights) != 0 {
				t.Errorf("Highlights = %+v, want none", p.Highlights)
			}
			if p.Cost != nil {
				t.Errorf("Cost = %+v, want nil", p.Cost)
			}
			for _, n := range p.Nodes {
				if n.OnPath {
					t.Errorf("node %d marked on path", n.Index)
				}
			}
			if len(p.Edges) != 1 {
				t.Errorf("edges should still be drawn, got %d", len(p.Edges))
			}
		})
	}
}

func TestEdgeLabel(t *testing.T) {
	tests := []struct {
		fwd, rev int
		want     string
	}{
		{3, 0, "3"},
		{0, 8, "8"},
		{5, 5, "5"},
		{5, 2, "5/2"},
	}
	for _, tt := range tests {
		if got := edgeLabel(tt.fwd, tt.rev); got != tt.want {
			t.Errorf("edgeLabel(%d, %d) = %q, want %q", tt.fwd, tt.rev, got, tt.want)
		}
	}
}
