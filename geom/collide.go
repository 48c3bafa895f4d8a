package geom

import (
	"fmt"
	"math"

	"github.com/jakecoffman/cp"
)

// Collision describes an overlap between two colliders. Normal is a unit
// vector pointing from the second collider toward the first; moving the first
// collider by Normal*Penetration separates them.
type Collision struct {
	Normal      cp.Vector
	Penetration float64
	Point       Position
}

// Collide runs the narrow phase for a against b. The test happens in a's
// local delta space: a sits at the origin and b at a.DeltaTo(b), which is
// valid because shapes are small compared to the world width.
func (a Collider) Collide(b Collider) (Collision, bool) {
	d := a.Position.DeltaTo(b.Position)

	var (
		normal cp.Vector
		pen    float64
		point  cp.Vector
		ok     bool
	)
	switch {
	case a.Shape.Kind == ShapeCircle && b.Shape.Kind == ShapeCircle:
		normal, pen, point, ok = circleCircle(a.Shape.Radius, d, b.Shape.Radius)
	case a.Shape.Kind == ShapeCircle && b.Shape.Kind == ShapeRectangle:
		normal, pen, point, ok = rectCircle(d, b.Rotation, b.Shape.HalfExtents(), cp.Vector{}, a.Shape.Radius)
	case a.Shape.Kind == ShapeRectangle && b.Shape.Kind == ShapeCircle:
		normal, pen, point, ok = rectCircle(cp.Vector{}, a.Rotation, a.Shape.HalfExtents(), d, b.Shape.Radius)
		normal = normal.Neg()
	case a.Shape.Kind == ShapeRectangle && b.Shape.Kind == ShapeRectangle:
		normal, pen, point, ok = rectRect(a.Rotation, a.Shape.HalfExtents(), d, b.Rotation, b.Shape.HalfExtents())
	default:
		panic(fmt.Sprintf("geom: cannot collide %s with %s", a.Shape.Kind, b.Shape.Kind))
	}
	if !ok {
		return Collision{}, false
	}
	return Collision{
		Normal:      normal,
		Penetration: pen,
		Point:       a.Position.Shifted(point),
	}, true
}

// circleCircle tests a circle at the origin against one at d.
func circleCircle(ra float64, d cp.Vector, rb float64) (cp.Vector, float64, cp.Vector, bool) {
	dist := d.Length()
	pen := ra + rb - dist
	if pen <= 0 {
		return cp.Vector{}, 0, cp.Vector{}, false
	}
	normal := cp.Vector{X: 0, Y: 1}
	if dist > 0 {
		normal = d.Mult(-1 / dist)
	}
	point := normal.Mult(-(ra - pen/2))
	return normal, pen, point, true
}

// rectCircle tests a rectangle against a circle. The normal points from the
// rectangle toward the circle.
func rectCircle(center cp.Vector, rotation float64, half cp.Vector, circle cp.Vector, r float64) (cp.Vector, float64, cp.Vector, bool) {
	rot := cp.ForAngle(rotation)
	local := circle.Sub(center).Unrotate(rot)
	clamped := cp.Vector{
		X: cp.Clamp(local.X, -half.X, half.X),
		Y: cp.Clamp(local.Y, -half.Y, half.Y),
	}

	var normal cp.Vector
	var pen float64
	if clamped == local {
		// center inside the rectangle: push out through the nearest face
		dx := half.X - math.Abs(local.X)
		dy := half.Y - math.Abs(local.Y)
		if dx < dy {
			normal = cp.Vector{X: sign(local.X)}
			pen = dx + r
			clamped.X = half.X * sign(local.X)
		} else {
			normal = cp.Vector{Y: sign(local.Y)}
			pen = dy + r
			clamped.Y = half.Y * sign(local.Y)
		}
	} else {
		diff := local.Sub(clamped)
		dist := diff.Length()
		if dist >= r {
			return cp.Vector{}, 0, cp.Vector{}, false
		}
		normal = diff.Mult(1 / dist)
		pen = r - dist
	}
	point := center.Add(clamped.Rotate(rot))
	return normal.Rotate(rot), pen, point, true
}

// rectRect is a separating axis test between a rectangle at the origin and one
// at d.
func rectRect(rotA float64, halfA cp.Vector, d cp.Vector, rotB float64, halfB cp.Vector) (cp.Vector, float64, cp.Vector, bool) {
	ra := cp.ForAngle(rotA)
	rb := cp.ForAngle(rotB)
	axesA := [2]cp.Vector{ra, ra.Perp()}
	axesB := [2]cp.Vector{rb, rb.Perp()}
	axes := [4]cp.Vector{axesA[0], axesA[1], axesB[0], axesB[1]}

	best := math.Inf(1)
	var normal cp.Vector
	var extentA float64
	for _, axis := range axes {
		pa := projectBox(axesA, halfA, axis)
		pb := projectBox(axesB, halfB, axis)
		sep := d.Dot(axis)
		overlap := pa + pb - math.Abs(sep)
		if overlap <= 0 {
			return cp.Vector{}, 0, cp.Vector{}, false
		}
		if overlap < best {
			best = overlap
			extentA = pa
			if sep > 0 {
				normal = axis.Neg()
			} else {
				normal = axis
			}
		}
	}
	point := normal.Mult(-(extentA - best/2))
	return normal, best, point, true
}

// projectBox is the half length of a box projected on axis.
func projectBox(axes [2]cp.Vector, half cp.Vector, axis cp.Vector) float64 {
	return half.X*math.Abs(axes[0].Dot(axis)) + half.Y*math.Abs(axes[1].Dot(axis))
}

func sign(v float64) float64 {
	if v < 0 {
		return -1
	}
	return 1
}
