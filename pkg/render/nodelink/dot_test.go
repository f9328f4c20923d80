package nodelink

import (
	"strings"
	"testing"

	"github.com/matzehuels/pathviz/pkg/graph"
	"github.com/matzehuels/pathviz/pkg/layout"
	"github.com/matzehuels/pathviz/pkg/render"
	"github.com/matzehuels/pathviz/pkg/shortest"
)

func testPlan(t *testing.T, withPath bool) render.Plan {
	t.Helper()
	g, err := graph.New([][]int{
		{0, 4, 10},
		{0, 0, 3},
		{0, 0, 0},
	})
	if err != nil {
		t.Fatal(err)
	}
	l, err := layout.Circular(3, 720, 720)
	if err != nil {
		t.Fatal(err)
	}
	if !withPath {
		return render.Build(g, l, nil)
	}
	res, err := shortest.Path(g, 0, 2)
	if err != nil {
		t.Fatal(err)
	}
	return render.Build(g, l, &res)
}

func TestToDOT_Basic(t *testing.T) {
	dot := ToDOT(testPlan(t, false))

	if !strings.Contains(dot, "graph G {") {
		t.Error("ToDOT() output missing graph declaration")
	}
	for _, label := range []string{`"U0"`, `"U1"`, `"U2"`} {
		if !strings.Contains(dot, label) {
			t.Errorf("ToDOT() output missing node %s", label)
		}
	}
	if !strings.Contains(dot, `"U0" -- "U1" [label="4"]`) {
		t.Error("ToDOT() output missing weighted edge U0--U1")
	}
	if strings.Contains(dot, "color=red") {
		t.Error("ToDOT() without path should not highlight")
	}
	if strings.Contains(dot, "Total Cost") {
		t.Error("ToDOT() without path should not carry a cost label")
	}
}

func TestToDOT_Path(t *testing.T) {
	dot := ToDOT(testPlan(t, true))

	if !strings.Contains(dot, `"U0" -- "U1" [color=red, penwidth=3]`) {
		t.Error("ToDOT() missing highlighted segment U0--U1")
	}
	if !strings.Contains(dot, `"U1" -- "U2" [color=red, penwidth=3]`) {
		t.Error("ToDOT() missing highlighted segment U1--U2")
	}
	if !strings.Contains(dot, `label="Total Cost: 7"`) {
		t.Error("ToDOT() missing cost label")
	}
}

func TestToDOT_PinnedPositions(t *testing.T) {
	dot := ToDOT(testPlan(t, false))

	// 720x720 canvas: center (360,360), radius 306. Node 0 at (666,360)
	// becomes (9.25in, 5in) after the y flip.
	if !strings.Contains(dot, `"U0" [pos="9.2500,5.0000!"`) {
		t.Errorf("ToDOT() node 0 position not pinned as expected:\n%s", dot)
	}
}

func TestNormalizeViewBox(t *testing.T) {
	in := []byte(`<svg width="100pt" height="50pt" viewBox="0.00 0.00 100.00 50.00" xmlns="http://www.w3.org/2000/svg"><g/></svg>`)
	out := string(normalizeViewBox(in))

	if !strings.Contains(out, `width="100" height="50"`) {
		t.Errorf("normalizeViewBox() = %s", out)
	}

	plain := []byte(`<svg><g/></svg>`)
	if string(normalizeViewBox(plain)) != string(plain) {
		t.Error("normalizeViewBox() should leave SVG without viewBox untouched")
	}
}
