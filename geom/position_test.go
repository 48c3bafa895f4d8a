package geom

import (
	"math"
	"testing"

	"github.com/jakecoffman/cp"
)

const worldWidth = 35.0 * 0.55

func TestFromWorldNormalizes(t *testing.T) {
	cases := []struct {
		name  string
		x     float64
		width float64
		want  float64
	}{
		{"inside", 3, 10, 3},
		{"zero", 0, 10, 0},
		{"exact_width", 10, 10, 0},
		{"negative", -1, 10, 9},
		{"far_negative", -25, 10, 5},
		{"far_positive", 37, 10, 7},
		{"tiny_negative", -1e-18, 10, 0},
		{"fractional_width", 20, worldWidth, 20 - worldWidth},
	}

	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			p := FromWorld(cp.Vector{X: c.x, Y: 4}, c.width)
			if p.X() < 0 || p.X() >= c.width {
				t.Fatalf("x=%v escaped [0, %v)", p.X(), c.width)
			}
			if math.Abs(p.X()-c.want) > 1e-9 {
				t.Fatalf("expected x=%v, got %v", c.want, p.X())
			}
			if p.Y() != 4 {
				t.Fatalf("y must not wrap, got %v", p.Y())
			}
		})
	}
}

func TestFromWorldSweep(t *testing.T) {
	for x := -100.0; x <= 100.0; x += 0.37 {
		p := FromWorld(cp.Vector{X: x}, worldWidth)
		if p.X() < 0 || p.X() >= worldWidth {
			t.Fatalf("x=%v normalized to %v outside [0, %v)", x, p.X(), worldWidth)
		}
	}
}

func TestDeltaToShortestPath(t *testing.T) {
	cases := []struct {
		name   string
		from   float64
		to     float64
		wantDX float64
	}{
		{"direct_right", 1, 3, 2},
		{"direct_left", 3, 1, -2},
		{"wrap_right", 9, 1, 2},
		{"wrap_left", 1, 9, -2},
		{"same", 4, 4, 0},
	}

	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			a := FromWorld(cp.Vector{X: c.from, Y: 1}, 10)
			b := FromWorld(cp.Vector{X: c.to, Y: -2}, 10)
			d := a.DeltaTo(b)
			if math.Abs(d.X-c.wantDX) > 1e-9 {
				t.Fatalf("expected dx=%v, got %v", c.wantDX, d.X)
			}
			if d.Y != -3 {
				t.Fatalf("expected dy=-3, got %v", d.Y)
			}
		})
	}
}

func TestDeltaToRoundTrip(t *testing.T) {
	for ax := -30.0; ax < 30; ax += 1.3 {
		for bx := -30.0; bx < 30; bx += 1.7 {
			a := FromWorld(cp.Vector{X: ax, Y: ax}, worldWidth)
			b := FromWorld(cp.Vector{X: bx, Y: -bx}, worldWidth)
			d := a.DeltaTo(b)
			if math.Abs(d.X) > worldWidth/2+1e-9 {
				t.Fatalf("|dx|=%v exceeds half width", d.X)
			}
			if got := a.Shifted(d); !got.Equivalent(b, 1e-9) {
				t.Fatalf("%v shifted by %v = %v, want %v", a, d, got, b)
			}
		}
	}
}

func TestDistance(t *testing.T) {
	a := FromWorld(cp.Vector{X: 0.5, Y: 0}, 10)
	b := FromWorld(cp.Vector{X: 9.5, Y: 0}, 10)
	if got := a.Distance(b); math.Abs(got-1) > 1e-9 {
		t.Fatalf("expected wrap distance 1, got %v", got)
	}
}

func TestShiftInPlace(t *testing.T) {
	p := Zero(10)
	p.Shift(cp.Vector{X: -0.5, Y: 2})
	if math.Abs(p.X()-9.5) > 1e-9 || p.Y() != 2 {
		t.Fatalf("unexpected position %v", p)
	}
	if dir := p.AsDir(); math.Abs(dir.X+0.5) > 1e-9 {
		t.Fatalf("expected AsDir x=-0.5, got %v", dir.X)
	}
}

func TestPreconditionsPanic(t *testing.T) {
	cases := []struct {
		name string
		fn   func()
	}{
		{"zero_width", func() { Zero(0) }},
		{"negative_width", func() { Zero(-3) }},
		{"nan_width", func() { Zero(math.NaN()) }},
		{"mismatched_width", func() { Zero(10).DeltaTo(Zero(11)) }},
		{"zero_radius", func() { Circle(0) }},
		{"negative_height", func() { Rectangle(1, -1) }},
	}

	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			defer func() {
				if recover() == nil {
					t.Fatalf("expected panic")
				}
			}()
			c.fn()
		})
	}
}
