// Package session holds the interactive state of one graph exploration.
//
// A [Session] owns the current matrix model, the node layout for its canvas,
// and the latest shortest-path result. Every mutation goes through one of
// three operations, each of which leaves the session consistent:
//
//   - Load replaces the model, recomputes the layout and clears the result
//   - Resize recomputes the layout for a new canvas and keeps the result
//   - Query replaces the result and leaves model and layout untouched
//
// Render plans are never cached: [Session.Plan] derives a fresh one from the
// current state on every call, so a plan can never describe a stale model.
//
// # Storage
//
// Sessions are shared between HTTP requests through a [Store]:
//
//	// Single process
//	store := session.NewMemoryStore(session.DefaultTTL)
//
//	// Multiple API instances
//	store, err := session.NewRedisStore(ctx, session.RedisConfig{
//	    Addr: "localhost:6379",
//	})
//
// Stores keep sessions only until their TTL elapses. Nothing survives past
// that point.
package session

import (
	"sync"
	"time"

	"github.com/google/uuid"

	"github.com/matzehuels/pathviz/pkg/errors"
	"github.com/matzehuels/pathviz/pkg/graph"
	"github.com/matzehuels/pathviz/pkg/layout"
	"github.com/matzehuels/pathviz/pkg/render"
	"github.com/matzehuels/pathviz/pkg/shortest"
)

// Default durations and canvas.
const (
	// DefaultTTL is how long an idle session is kept by a store.
	DefaultTTL = 2 * time.Hour

	DefaultWidth  = 800.0
	DefaultHeight = 600.0
)

// Query is a start/end pair.
type Query struct {
	Start int `json:"start"`
	End   int `json:"end"`
}

// Session is the mutable state of one exploration. It is safe for concurrent
// use.
type Session struct {
	mu sync.RWMutex

	id        string
	model     *graph.Model
	layout    layout.Layout
	query     *Query
	result    *shortest.Result
	createdAt time.Time
	updatedAt time.Time
}

// New creates a session for g on a width×height canvas.
func New(g *graph.Model, width, height float64) (*Session, error) {
	return newWithID(uuid.NewString(), g, width, height)
}

func newWithID(id string, g *graph.Model, width, height float64) (*Session, error) {
	if g == nil {
		return nil, errors.New(errors.ErrCodeInvalidInput, "session requires a graph")
	}
	l, err := layout.Circular(g.Size(), width, height)
	if err != nil {
		return nil, err
	}
	now := time.Now().UTC()
	return &Session{
		id:        id,
		model:     g,
		layout:    l,
		createdAt: now,
		updatedAt: now,
	}, nil
}

// ID returns the session identifier.
func (s *Session) ID() string { return s.id }

// Model returns the current graph.
func (s *Session) Model() *graph.Model {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.model
}

// Layout returns the current node placement.
func (s *Session) Layout() layout.Layout {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.layout
}

// Result returns the latest query result, or nil if there is none.
func (s *Session) Result() *shortest.Result {
	s.mu.RLock()
	defer s.mu.RUnlock()
	if s.result == nil {
		return nil
	}
	r := *s.result
	return &r
}

// UpdatedAt returns the time of the last successful mutation.
func (s *Session) UpdatedAt() time.Time {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.updatedAt
}

// Load replaces the graph. The layout is recomputed for the current canvas
// and any previous result is discarded. On error the session is unchanged.
func (s *Session) Load(g *graph.Model) error {
	if g == nil {
		return errors.New(errors.ErrCodeInvalidInput, "session requires a graph")
	}
	s.mu.Lock()
	defer s.mu.Unlock()

	l, err := layout.Circular(g.Size(), s.layout.Width, s.layout.Height)
	if err != nil {
		return err
	}
	s.model = g
	s.layout = l
	s.query = nil
	s.result = nil
	s.touch()
	return nil
}

// LoadCells builds a graph from raw cell text and loads it.
func (s *Session) LoadCells(size int, cells [][]string) error {
	g, err := graph.Build(size, cells)
	if err != nil {
		return err
	}
	return s.Load(g)
}

// Resize recomputes the layout for a new canvas. The result is kept since it
// does not depend on geometry.
func (s *Session) Resize(width, height float64) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	l, err := layout.Circular(s.model.Size(), width, height)
	if err != nil {
		return err
	}
	s.layout = l
	s.touch()
	return nil
}

// Query computes the shortest path from start to end and stores it as the
// latest result. An unreachable end is a successful query. On error the
// previous result is kept.
func (s *Session) Query(start, end int) (shortest.Result, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	res, err := shortest.Path(s.model, start, end)
	if err != nil {
		return shortest.Result{}, err
	}
	s.query = &Query{Start: start, End: end}
	s.result = &res
	s.touch()
	return res, nil
}

// ClearResult drops the latest result.
func (s *Session) ClearResult() {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.query = nil
	s.result = nil
	s.touch()
}

// Plan derives a render plan from the current state.
func (s *Session) Plan() render.Plan {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return render.Build(s.model, s.layout, s.result)
}

// View is a consistent read of a session: the plan, the hash of the model it
// was built from, the canvas and the query behind its highlighted path.
type View struct {
	Plan   render.Plan
	Hash   string
	Layout layout.Layout
	Query  *Query
}

// View reads the whole render state under one lock, so a concurrent Load
// cannot pair a plan with another model's hash or canvas.
func (s *Session) View() View {
	s.mu.RLock()
	defer s.mu.RUnlock()

	v := View{
		Plan:   render.Build(s.model, s.layout, s.result),
		Hash:   s.model.Hash(),
		Layout: s.layout,
	}
	if s.result != nil {
		v.Query = &Query{Start: s.result.Start, End: s.result.End}
	}
	return v
}

func (s *Session) touch() { s.updatedAt = time.Now().UTC() }

// =============================================================================
// Snapshot
// =============================================================================

// Snapshot is the serialisable form of a session. The result is not stored:
// it is recomputed from Query on restore.
type Snapshot struct {
	ID        string    `json:"id"`
	Size      int       `json:"size"`
	Weights   [][]int   `json:"weights"`
	Width     float64   `json:"width"`
	Height    float64   `json:"height"`
	Query     *Query    `json:"query,omitempty"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

// Snapshot captures the session state.
func (s *Session) Snapshot() Snapshot {
	s.mu.RLock()
	defer s.mu.RUnlock()

	snap := Snapshot{
		ID:        s.id,
		Size:      s.model.Size(),
		Weights:   s.model.Weights(),
		Width:     s.layout.Width,
		Height:    s.layout.Height,
		CreatedAt: s.createdAt,
		UpdatedAt: s.updatedAt,
	}
	if s.query != nil {
		q := *s.query
		snap.Query = &q
	}
	return snap
}

// Restore rebuilds a session from a snapshot.
func Restore(snap Snapshot) (*Session, error) {
	g, err := graph.New(snap.Weights)
	if err != nil {
		return nil, err
	}
	if snap.Size != g.Size() {
		return nil, errors.New(errors.ErrCodeInvalidWeight,
			"snapshot %s declares size %d but holds %d rows", snap.ID, snap.Size, g.Size())
	}
	s, err := newWithID(snap.ID, g, snap.Width, snap.Height)
	if err != nil {
		return nil, err
	}
	if snap.Query != nil {
		res, err := shortest.Path(g, snap.Query.Start, snap.Query.End)
		if err != nil {
			return nil, err
		}
		q := *snap.Query
		s.query = &q
		s.result = &res
	}
	s.createdAt = snap.CreatedAt
	s.updatedAt = snap.UpdatedAt
	return s, nil
}
