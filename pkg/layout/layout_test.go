package layout

import (
	"math"
	"testing"

	"github.com/matzehuels/pathviz/pkg/errors"
)

const eps = 1e-9

func TestCircularDeterministic(t *testing.T) {
	a, err := Circular(7, 900, 650)
	if err != nil {
		t.Fatal(err)
	}
	b, err := Circular(7, 900, 650)
	if err != nil {
		t.Fatal(err)
	}
	for i := range a.Positions {
		pa, pb := a.Positions[i], b.Positions[i]
		if math.Float64bits(pa.X) != math.Float64bits(pb.X) || math.Float64bits(pa.Y) != math.Float64bits(pb.Y) {
			t.Errorf("node %d: %v != %v", i, pa, pb)
		}
	}
}

func TestCircularNodeZeroAtAngleZero(t *testing.T) {
	for _, size := range []int{2, 3, 5, 12} {
		l, err := Circular(size, 800, 600)
		if err != nil {
			t.Fatal(err)
		}
		p := l.Position(0)
		if p.Y != l.Center.Y {
			t.Errorf("size %d: node 0 y = %v, want center y %v", size, p.Y, l.Center.Y)
		}
		if p.X != l.Center.X+l.Radius {
			t.Errorf("size %d: node 0 x = %v, want %v", size, p.X, l.Center.X+l.Radius)
		}
	}
}

func TestCircularGeometry(t *testing.T) {
	l, err := Circular(4, 800, 600)
	if err != nil {
		t.Fatal(err)
	}

	if l.Center != (Point{X: 400, Y: 300}) {
		t.Errorf("Center = %v, want (400,300)", l.Center)
	}
	if math.Abs(l.Radius-DefaultRadiusFraction*300) > eps {
		t.Errorf("Radius = %v, want %v", l.Radius, DefaultRadiusFraction*300)
	}

	// Quarter turns: right, below, left, above.
	want := []Point{
		{X: 400 + l.Radius, Y: 300},
		{X: 400, Y: 300 + l.Radius},
		{X: 400 - l.Radius, Y: 300},
		{X: 400, Y: 300 - l.Radius},
	}
	for i, w := range want {
		got := l.Position(i)
		if math.Abs(got.X-w.X) > eps || math.Abs(got.Y-w.Y) > eps {
			t.Errorf("Position(%d) = %v, want %v", i, got, w)
		}
	}
}

func TestCircularNodesStayInsideCanvas(t *testing.T) {
	sizes := [][2]float64{{800, 600}, {100, 100}, {60, 400}, {1200, 300}}
	for _, s := range sizes {
		l, err := Circular(9, s[0], s[1])
		if err != nil {
			t.Fatal(err)
		}
		for i, p := range l.Positions {
			if p.X-l.NodeRadius < -eps || p.X+l.NodeRadius > s[0]+eps ||
				p.Y-l.NodeRadius < -eps || p.Y+l.NodeRadius > s[1]+eps {
				t.Errorf("canvas %v: node %d at %v (r=%v) clips", s, i, p, l.NodeRadius)
			}
		}
	}
}

func TestCircularOptions(t *testing.T) {
	l, err := Circular(3, 200, 200, WithRadiusFraction(0.5), WithNodeRadius(5))
	if err != nil {
		t.Fatal(err)
	}
	if l.Radius != 50 {
		t.Errorf("Radius = %v, want 50", l.Radius)
	}
	if l.NodeRadius != 5 {
		t.Errorf("NodeRadius = %v, want 5", l.NodeRadius)
	}

	// Out-of-range values fall back to defaults.
	d, _ := Circular(3, 200, 200, WithRadiusFraction(2), WithNodeRadius(-1))
	if d.Radius != DefaultRadiusFraction*100 {
		t.Errorf("Radius = %v, want default", d.Radius)
	}
}

func TestCircularErrors(t *testing.T) {
	tests := []struct {
		name   string
		size   int
		w, h   float64
		expect errors.Code
	}{
		{"SizeOne", 1, 800, 600, errors.ErrCodeInvalidDimension},
		{"ZeroWidth", 3, 0, 600, errors.ErrCodeInvalidInput},
		{"NegativeHeight", 3, 800, -1, errors.ErrCodeInvalidInput},
		{"NaN", 3, math.NaN(), 600, errors.ErrCodeInvalidInput},
		{"Inf", 3, math.Inf(1), 600, errors.ErrCodeInvalidInput},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if _, err := Circular(tt.size, tt.w, tt.h); !errors.Is(err, tt.expect) {
				t.Errorf("Circular() error = %v, want %s", err, tt.expect)
			}
		})
	}
}

func TestMidpoint(t *testing.T) {
	got := Midpoint(Point{X: 0, Y: 10}, Point{X: 20, Y: 30})
	if got != (Point{X: 10, Y: 20}) {
		t.Errorf("Midpoint = %v, want (10,20)", got)
	}
}
