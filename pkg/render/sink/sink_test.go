package sink

import (
	"bytes"
	"encoding/json"
	"strings"
	"testing"

	"github.com/matzehuels/pathviz/pkg/errors"
	"github.com/matzehuels/pathviz/pkg/graph"
	"github.com/matzehuels/pathviz/pkg/layout"
	"github.com/matzehuels/pathviz/pkg/render"
	"github.com/matzehuels/pathviz/pkg/shortest"
)

func buildPlan(t *testing.T, weights [][]int, start, end int) render.Plan {
	t.Helper()
	g, err := graph.New(weights)
	if err != nil {
		t.Fatal(err)
	}
	l, err := layout.Circular(g.Size(), 800, 600)
	if err != nil {
		t.Fatal(err)
	}
	if start < 0 {
		return render.Build(g, l, nil)
	}
	res, err := shortest.Path(g, start, end)
	if err != nil {
		t.Fatal(err)
	}
	return render.Build(g, l, &res)
}

var triangle = [][]int{
	{0, 4, 10},
	{0, 0, 3},
	{0, 0, 0},
}

func TestRenderSVG(t *testing.T) {
	svg := string(RenderSVG(buildPlan(t, triangle, 0, 2)))

	if !strings.HasPrefix(svg, "<svg ") {
		t.Fatalf("RenderSVG() does not start with <svg: %.40s", svg)
	}
	if got := strings.Count(svg, `class="edge"`); got != 3 {
		t.Errorf("edge lines = %d, want 3", got)
	}
	if got := strings.Count(svg, `class="path-segment"`); got != 2 {
		t.Errorf("path segments = %d, want 2", got)
	}
	if got := strings.Count(svg, `<circle class="node"`); got != 3 {
		t.Errorf("node discs = %d, want 3", got)
	}
	for _, want := range []string{">U0<", ">U1<", ">U2<", ">4<", ">10<", ">3<", ">Total Cost: 7<", colorPath, colorCost} {
		if !strings.Contains(svg, want) {
			t.Errorf("RenderSVG() missing %q", want)
		}
	}
}

func TestRenderSVG_NoPath(t *testing.T) {
	svg := string(RenderSVG(buildPlan(t, triangle, -1, -1)))

	if strings.Contains(svg, "path-segment") {
		t.Error("plan without a result should not draw path segments")
	}
	if strings.Contains(svg, "Total Cost") {
		t.Error("plan without a result should not draw the cost")
	}
}

func TestRenderSVG_Unreachable(t *testing.T) {
	svg := string(RenderSVG(buildPlan(t, [][]int{{0, 0}, {0, 0}}, 0, 1)))

	if strings.Contains(svg, "path-segment") || strings.Contains(svg, "Total Cost") {
		t.Error("unreachable result should draw no overlay")
	}
	if strings.Contains(svg, `class="edge"`) {
		t.Error("empty matrix should draw no edges")
	}
}

func TestRenderSVG_Deterministic(t *testing.T) {
	p := buildPlan(t, triangle, 0, 2)
	a := RenderSVG(p, WithArrows())
	b := RenderSVG(p, WithArrows())
	if !bytes.Equal(a, b) {
		t.Error("RenderSVG() output differs between identical calls")
	}
}

func TestRenderSVG_Options(t *testing.T) {
	p := buildPlan(t, triangle, -1, -1)

	if strings.Contains(string(RenderSVG(p)), `class="arrow"`) {
		t.Error("arrows drawn without WithArrows")
	}
	if got := strings.Count(string(RenderSVG(p, WithArrows())), `class="arrow"`); got != 3 {
		t.Errorf("arrows = %d, want 3", got)
	}
	if strings.Contains(string(RenderSVG(p, WithBackground(""))), "<rect") {
		t.Error("WithBackground(\"\") should omit the background")
	}
}

func TestRenderSVG_EscapesLabels(t *testing.T) {
	p := render.Plan{
		Width:  100,
		Height: 100,
		Nodes:  []render.NodeEntry{{Label: "a<b", Radius: 5}},
	}
	if !strings.Contains(string(RenderSVG(p)), "a&lt;b") {
		t.Error("node label not escaped")
	}
}

func TestRenderJSON(t *testing.T) {
	data, err := RenderJSON(buildPlan(t, triangle, 0, 2))
	if err != nil {
		t.Fatalf("RenderJSON() error: %v", err)
	}

	var out render.Plan
	if err := json.Unmarshal(data, &out); err != nil {
		t.Fatalf("json.Unmarshal() error: %v", err)
	}
	if out.Width != 800 || out.Height != 600 {
		t.Errorf("canvas = %vx%v, want 800x600", out.Width, out.Height)
	}
	if len(out.Nodes) != 3 || len(out.Edges) != 3 || len(out.Highlights) != 2 {
		t.Errorf("counts = %d nodes, %d edges, %d highlights", len(out.Nodes), len(out.Edges), len(out.Highlights))
	}
	if out.Cost == nil || out.Cost.Cost != 7 {
		t.Errorf("Cost = %+v, want 7", out.Cost)
	}
}

func TestRenderText(t *testing.T) {
	out := RenderText(buildPlan(t, triangle, 0, 2))

	for _, want := range []string{"From", "U0", "U2", "Path:", "U0 → U1 → U2", "Total Cost: 7"} {
		if !strings.Contains(out, want) {
			t.Errorf("RenderText() missing %q:\n%s", want, out)
		}
	}

	plain := RenderText(buildPlan(t, triangle, -1, -1))
	if strings.Contains(plain, "Path:") || strings.Contains(plain, "Total Cost") {
		t.Errorf("RenderText() without result shows overlay:\n%s", plain)
	}
}

func TestRenderRaster(t *testing.T) {
	p := buildPlan(t, triangle, 0, 2)

	png, pngErr := RenderPNG(t.Context(), p, 1)
	pdf, pdfErr := RenderPDF(t.Context(), p)

	if !render.ConverterAvailable() {
		for _, err := range []error{pngErr, pdfErr} {
			if !errors.Is(err, errors.ErrCodeUnsupported) {
				t.Errorf("error = %v, want UNSUPPORTED without a converter", err)
			}
		}
		return
	}

	if pngErr != nil || pdfErr != nil {
		t.Fatalf("RenderPNG: %v, RenderPDF: %v", pngErr, pdfErr)
	}
	if !bytes.HasPrefix(png, []byte("\x89PNG")) {
		t.Error("PNG output missing signature")
	}
	if !bytes.HasPrefix(pdf, []byte("%PDF")) {
		t.Error("PDF output missing header")
	}
}
