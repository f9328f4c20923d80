package shortest

import (
	"slices"

	"github.com/matzehuels/pathviz/pkg/errors"
	"github.com/matzehuels/pathviz/pkg/graph"
)

// none marks a node without a predecessor.
const none = -1

// Result is the answer to one start/end query.
type Result struct {
	Start int   `json:"start"`
	End   int   `json:"end"`
	Path  []int `json:"path"`
	Cost  Cost  `json:"cost"`
}

// Reachable reports whether a path from Start to End exists.
func (r Result) Reachable() bool { return r.Cost.Reachable() }

// Hops returns the number of edges on the path.
func (r Result) Hops() int {
	if len(r.Path) < 2 {
		return 0
	}
	return len(r.Path) - 1
}

// Labels returns the display labels of the path nodes.
func (r Result) Labels() []string {
	out := make([]string, len(r.Path))
	for i, n := range r.Path {
		out[i] = graph.Label(n)
	}
	return out
}

// Tree is the outcome of a single-source run: the distance to every node and
// the predecessor links that reconstruct each shortest path.
type Tree struct {
	start int
	dist  []Cost
	prev  []int
}

// Path returns the shortest path from start to end.
func Path(g *graph.Model, start, end int) (Result, error) {
	if err := checkNode(g, "start", start); err != nil {
		return Result{}, err
	}
	if err := checkNode(g, "end", end); err != nil {
		return Result{}, err
	}
	t, err := Solve(g, start)
	if err != nil {
		return Result{}, err
	}
	return t.PathTo(end), nil
}

// Solve runs dense Dijkstra from start.
func Solve(g *graph.Model, start int) (*Tree, error) {
	if err := checkNode(g, "start", start); err != nil {
		return nil, err
	}

	n := g.Size()
	t := &Tree{
		start: start,
		dist:  make([]Cost, n),
		prev:  make([]int, n),
	}
	for i := range t.dist {
		t.dist[i] = Unreachable
		t.prev[i] = none
	}
	t.dist[start] = Finite(0)
	visited := make([]bool, n)

	for round := 0; round < n; round++ {
		u := nextNode(t.dist, visited)
		if u == none {
			break
		}
		visited[u] = true

		for v := 0; v < n; v++ {
			if v == u || visited[v] || !g.HasEdge(u, v) {
				continue
			}
			if alt := t.dist[u].Add(g.Weight(u, v)); alt.Less(t.dist[v]) {
				t.dist[v] = alt
				t.prev[v] = u
			}
		}
	}
	return t, nil
}

// nextNode returns the unvisited node with the smallest finite distance.
// The scan is ascending and only a strictly smaller distance replaces the
// current pick, so ties go to the lowest index.
func nextNode(dist []Cost, visited []bool) int {
	best := none
	for i, d := range dist {
		if visited[i] || !d.Reachable() {
			continue
		}
		if best == none || d.Less(dist[best]) {
			best = i
		}
	}
	return best
}

// Start returns the source node of the tree.
func (t *Tree) Start() int { return t.start }

// Distance returns the shortest distance to v, or Unreachable.
// v must be a valid node index.
func (t *Tree) Distance(v int) Cost { return t.dist[v] }

// Distances returns a copy of the distance vector.
func (t *Tree) Distances() []Cost { return slices.Clone(t.dist) }

// Predecessor returns the node before v on its shortest path and false when
// v is the start or unreachable.
func (t *Tree) Predecessor(v int) (int, bool) {
	p := t.prev[v]
	return p, p != none
}

// PathTo reconstructs the path to end by walking predecessors backwards.
// end must be a valid node index.
func (t *Tree) PathTo(end int) Result {
	res := Result{Start: t.start, End: end, Cost: t.dist[end]}
	if end == t.start {
		res.Path = []int{t.start}
		res.Cost = Finite(0)
		return res
	}
	if t.prev[end] == none {
		res.Path = []int{}
		res.Cost = Unreachable
		return res
	}

	for at := end; at != none; at = t.prev[at] {
		res.Path = append(res.Path, at)
	}
	slices.Reverse(res.Path)
	return res
}

func checkNode(g *graph.Model, role string, i int) error {
	if !graph.ValidNode(g.Size(), i) {
		return errors.New(errors.ErrCodeInvalidNode,
			"%s node %d out of range [0, %d)", role, i, g.Size())
	}
	return nil
}
