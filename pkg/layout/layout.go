// Package layout places graph nodes on a circle.
//
// Node i sits at angle 2π·i/size on a circle centred in the canvas, so node 0
// is always the rightmost point, level with the centre. Angles grow
// clockwise on screen because the y axis points down.
//
// The radius is a fixed fraction of the shorter canvas side, and the node
// radius is capped to the remaining margin so node discs never cross the
// canvas edge.
//
// Layouts are pure functions of (size, width, height, options): the same
// arguments always produce bit-identical coordinates. Edge weights and path
// state never influence placement.
package layout

import (
	"math"

	"github.com/matzehuels/pathviz/pkg/errors"
	"github.com/matzehuels/pathviz/pkg/graph"
)

const (
	// DefaultRadiusFraction is the circle radius relative to half the shorter
	// canvas side.
	DefaultRadiusFraction = 0.85

	// DefaultNodeRadius is the drawn radius of a node disc in pixels.
	DefaultNodeRadius = 25.0
)

// Point is a canvas coordinate. The origin is the top-left corner.
type Point struct {
	X float64 `json:"x"`
	Y float64 `json:"y"`
}

// Midpoint returns the point halfway between a and b.
func Midpoint(a, b Point) Point {
	return Point{X: (a.X + b.X) / 2, Y: (a.Y + b.Y) / 2}
}

// Layout holds node coordinates for one canvas.
type Layout struct {
	Width      float64 `json:"width"`
	Height     float64 `json:"height"`
	Center     Point   `json:"center"`
	Radius     float64 `json:"radius"`
	NodeRadius float64 `json:"node_radius"`
	Positions  []Point `json:"positions"`
}

// Size returns the number of placed nodes.
func (l Layout) Size() int { return len(l.Positions) }

// Position returns the coordinate of node i.
func (l Layout) Position(i int) Point { return l.Positions[i] }

// Option tunes circular placement.
type Option func(*config)

type config struct {
	radiusFraction float64
	nodeRadius     float64
}

// WithRadiusFraction overrides [DefaultRadiusFraction]. Values outside (0, 1]
// are ignored.
func WithRadiusFraction(f float64) Option {
	return func(c *config) {
		if f > 0 && f <= 1 {
			c.radiusFraction = f
		}
	}
}

// WithNodeRadius overrides [DefaultNodeRadius]. Non-positive values are ignored.
func WithNodeRadius(r float64) Option {
	return func(c *config) {
		if r > 0 {
			c.nodeRadius = r
		}
	}
}

// Circular places size nodes evenly on a circle centred in a width×height
// canvas.
func Circular(size int, width, height float64, opts ...Option) (Layout, error) {
	if size < graph.MinSize {
		return Layout{}, errors.New(errors.ErrCodeInvalidDimension,
			"node count must be at least %d, got %d", graph.MinSize, size)
	}
	if !(width > 0) || !(height > 0) || math.IsInf(width, 0) || math.IsInf(height, 0) {
		return Layout{}, errors.New(errors.ErrCodeInvalidInput,
			"canvas must have positive finite size, got %vx%v", width, height)
	}

	cfg := config{radiusFraction: DefaultRadiusFraction, nodeRadius: DefaultNodeRadius}
	for _, opt := range opts {
		opt(&cfg)
	}

	half := math.Min(width, height) / 2
	l := Layout{
		Width:      width,
		Height:     height,
		Center:     Point{X: width / 2, Y: height / 2},
		Radius:     cfg.radiusFraction * half,
		NodeRadius: math.Min(cfg.nodeRadius, half-cfg.radiusFraction*half),
		Positions:  make([]Point, size),
	}

	step := 2 * math.Pi / float64(size)
	for i := range l.Positions {
		theta := step * float64(i)
		l.Positions[i] = Point{
			X: l.Center.X + l.Radius*math.Cos(theta),
			Y: l.Center.Y + l.Radius*math.Sin(theta),
		}
	}
	return l, nil
}
