package render

import (
	"fmt"

	"github.com/matzehuels/pathviz/pkg/graph"
	"github.com/matzehuels/pathviz/pkg/layout"
	"github.com/matzehuels/pathviz/pkg/shortest"
)

// CostPosition is the fixed canvas position of the total-cost annotation.
var CostPosition = layout.Point{X: 20, Y: 30}

// costPrefix starts the total-cost annotation text.
const costPrefix = "Total Cost: "

// =============================================================================
// Plan - Draw List
// =============================================================================

// Plan is everything a drawing surface needs for one frame.
type Plan struct {
	Width      float64     `json:"width"`
	Height     float64     `json:"height"`
	Nodes      []NodeEntry `json:"nodes"`
	Edges      []EdgeEntry `json:"edges"`
	Highlights []Segment   `json:"highlights,omitempty"`
	Cost       *CostLabel  `json:"cost,omitempty"`
}

// HasPath reports whether the plan carries a path overlay.
func (p Plan) HasPath() bool { return len(p.Highlights) > 0 }

// NodeEntry is a labelled node disc.
type NodeEntry struct {
	Index  int          `json:"index"`
	Label  string       `json:"label"`
	At     layout.Point `json:"at"`
	Radius float64      `json:"radius"`
	OnPath bool         `json:"on_path,omitempty"`
}

// EdgeEntry is one line between an unordered node pair From < To.
type EdgeEntry struct {
	From    int          `json:"from"`
	To      int          `json:"to"`
	A       layout.Point `json:"a"`
	B       layout.Point `json:"b"`
	Forward int          `json:"forward,omitempty"` // weight of From→To, 0 if absent
	Reverse int          `json:"reverse,omitempty"` // weight of To→From, 0 if absent
	Label   string       `json:"label"`
	LabelAt layout.Point `json:"label_at"`
}

// Segment is one highlighted hop of the shortest path, in path order.
type Segment struct {
	From   int          `json:"from"`
	To     int          `json:"to"`
	A      layout.Point `json:"a"`
	B      layout.Point `json:"b"`
	Weight int          `json:"weight"`
}

// CostLabel is the total-cost annotation.
type CostLabel struct {
	Text string       `json:"text"`
	At   layout.Point `json:"at"`
	Cost int          `json:"cost"`
}

// =============================================================================
// Build
// =============================================================================

// Build derives a Plan from g, its layout l, and an optional result.
// A nil result, or one whose path has fewer than two nodes, yields a plan
// without highlights or cost annotation. l must have been computed for g.
func Build(g *graph.Model, l layout.Layout, res *shortest.Result) Plan {
	n := g.Size()
	p := Plan{
		Width:  l.Width,
		Height: l.Height,
		Nodes:  make([]NodeEntry, n),
	}

	onPath := make([]bool, n)
	overlay := res != nil && len(res.Path) >= 2
	if overlay {
		for _, v := range res.Path {
			onPath[v] = true
		}
	}

	for i := 0; i < n; i++ {
		p.Nodes[i] = NodeEntry{
			Index:  i,
			Label:  graph.Label(i),
			At:     l.Position(i),
			Radius: l.NodeRadius,
			OnPath: onPath[i],
		}
	}

	for i := 0; i < n; i++ {
		for j := i + 1; j < n; j++ {
			if !g.HasEdge(i, j) && !g.HasEdge(j, i) {
				continue
			}
			a, b := l.Position(i), l.Position(j)
			fwd, rev := g.Weight(i, j), g.Weight(j, i)
			p.Edges = append(p.Edges, EdgeEntry{
				From:    i,
				To:      j,
				A:       a,
				B:       b,
				Forward: fwd,
				Reverse: rev,
				Label:   edgeLabel(fwd, rev),
				LabelAt: layout.Midpoint(a, b),
			})
		}
	}

	if !overlay {
		return p
	}

	for k := 0; k+1 < len(res.Path); k++ {
		from, to := res.Path[k], res.Path[k+1]
		p.Highlights = append(p.Highlights, Segment{
			From:   from,
			To:     to,
			A:      l.Position(from),
			B:      l.Position(to),
			Weight: g.Weight(from, to),
		})
	}
	if cost, ok := res.Cost.Value(); ok {
		p.Cost = &CostLabel{
			Text: fmt.Sprintf("%s%d", costPrefix, cost),
			At:   CostPosition,
			Cost: cost,
		}
	}
	return p
}

// edgeLabel shows the single present weight, or both when the two directions
// disagree.
func edgeLabel(fwd, rev int) string {
	switch {
	case fwd > 0 && rev > 0 && fwd != rev:
		return fmt.Sprintf("%d/%d", fwd, rev)
	case fwd > 0:
		return fmt.Sprint(fwd)
	default:
		return fmt.Sprint(rev)
	}
}
