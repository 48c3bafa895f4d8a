package geom

import (
	"math"
	"testing"

	"github.com/jakecoffman/cp"
)

func at(x, y float64) Position {
	return FromWorld(cp.Vector{X: x, Y: y}, 10)
}

func TestCollide(t *testing.T) {
	cases := []struct {
		name       string
		a, b       Collider
		hit        bool
		wantNormal cp.Vector
		wantPen    float64
	}{
		{
			name:       "circles_overlap",
			a:          NewCollider(at(0, 1.5), Circle(1)),
			b:          NewCollider(at(0, 0), Circle(1)),
			hit:        true,
			wantNormal: cp.Vector{X: 0, Y: 1},
			wantPen:    0.5,
		},
		{
			name: "circles_apart",
			a:    NewCollider(at(0, 3), Circle(1)),
			b:    NewCollider(at(0, 0), Circle(1)),
		},
		{
			name:       "circles_across_seam",
			a:          NewCollider(at(9.5, 0), Circle(1)),
			b:          NewCollider(at(0.5, 0), Circle(1)),
			hit:        true,
			wantNormal: cp.Vector{X: -1, Y: 0},
			wantPen:    1,
		},
		{
			name:       "rect_landing_on_rect",
			a:          NewCollider(at(5, 0.9), Rectangle(1, 1)),
			b:          NewCollider(at(5, 0), Rectangle(2, 1)),
			hit:        true,
			wantNormal: cp.Vector{X: 0, Y: 1},
			wantPen:    0.1,
		},
		{
			name:       "rect_below_rect",
			a:          NewCollider(at(5, -0.9), Rectangle(1, 1)),
			b:          NewCollider(at(5, 0), Rectangle(2, 1)),
			hit:        true,
			wantNormal: cp.Vector{X: 0, Y: -1},
			wantPen:    0.1,
		},
		{
			name:       "rect_side_of_rect",
			a:          NewCollider(at(6.4, 0), Rectangle(1, 1)),
			b:          NewCollider(at(5, 0), Rectangle(2, 1)),
			hit:        true,
			wantNormal: cp.Vector{X: 1, Y: 0},
			wantPen:    0.1,
		},
		{
			name: "rects_apart",
			a:    NewCollider(at(5, 2), Rectangle(1, 1)),
			b:    NewCollider(at(5, 0), Rectangle(2, 1)),
		},
		{
			name:       "circle_on_rect",
			a:          NewCollider(at(5, 0.8), Circle(0.5)),
			b:          NewCollider(at(5, 0), Rectangle(2, 1)),
			hit:        true,
			wantNormal: cp.Vector{X: 0, Y: 1},
			wantPen:    0.2,
		},
		{
			name:       "rect_on_circle",
			a:          NewCollider(at(5, 0.8), Rectangle(2, 1)),
			b:          NewCollider(at(5, 0), Circle(0.5)),
			hit:        true,
			wantNormal: cp.Vector{X: 0, Y: 1},
			wantPen:    0.2,
		},
		{
			name: "circle_near_rect_corner",
			a:    NewCollider(at(6.4, 0.9), Circle(0.3)),
			b:    NewCollider(at(5, 0), Rectangle(2, 1)),
		},
	}

	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			got, ok := c.a.Collide(c.b)
			if ok != c.hit {
				t.Fatalf("expected hit=%v, got %v (%+v)", c.hit, ok, got)
			}
			if !ok {
				return
			}
			if got.Normal.Sub(c.wantNormal).Length() > 1e-9 {
				t.Fatalf("expected normal %v, got %v", c.wantNormal, got.Normal)
			}
			if math.Abs(got.Penetration-c.wantPen) > 1e-9 {
				t.Fatalf("expected penetration %v, got %v", c.wantPen, got.Penetration)
			}
		})
	}
}

func TestCollideSymmetry(t *testing.T) {
	a := NewCollider(at(1, 1), Rectangle(1, 1))
	b := NewCollider(at(1.3, 0.2), Circle(0.5))
	ab, ok1 := a.Collide(b)
	ba, ok2 := b.Collide(a)
	if !ok1 || !ok2 {
		t.Fatalf("expected both orders to collide")
	}
	if ab.Normal.Add(ba.Normal).Length() > 1e-9 {
		t.Fatalf("normals should be opposite: %v vs %v", ab.Normal, ba.Normal)
	}
	if math.Abs(ab.Penetration-ba.Penetration) > 1e-9 {
		t.Fatalf("penetration should match: %v vs %v", ab.Penetration, ba.Penetration)
	}
}

func TestCollideRotatedRectangle(t *testing.T) {
	// a thin bar rotated upright reaches a point a flat bar would miss
	flat := NewCollider(at(5, 0), Rectangle(4, 0.2))
	upright := flat
	upright.Rotation = math.Pi / 2
	probe := NewCollider(at(5, 1.5), Circle(0.2))

	if _, ok := probe.Collide(flat); ok {
		t.Fatalf("flat bar should not reach the probe")
	}
	if _, ok := probe.Collide(upright); !ok {
		t.Fatalf("upright bar should reach the probe")
	}
}

func TestBounds(t *testing.T) {
	c := NewCollider(at(9.5, 2), Rectangle(2, 1))
	bb := c.Bounds(at(0.5, 0))
	if math.Abs(bb.L+2) > 1e-9 || math.Abs(bb.R-0) > 1e-9 {
		t.Fatalf("unexpected horizontal bounds %+v", bb)
	}
	if math.Abs(bb.B-1.5) > 1e-9 || math.Abs(bb.T-2.5) > 1e-9 {
		t.Fatalf("unexpected vertical bounds %+v", bb)
	}
}
