package geom

import (
	"fmt"
	"math"

	"github.com/jakecoffman/cp"
)

type ShapeKind uint8

const (
	ShapeCircle ShapeKind = iota + 1
	ShapeRectangle
)

func (k ShapeKind) String() string {
	switch k {
	case ShapeCircle:
		return "circle"
	case ShapeRectangle:
		return "rectangle"
	default:
		return "unknown"
	}
}

// Shape is a circle or a rectangle centered on its collider position.
type Shape struct {
	Kind   ShapeKind
	Radius float64
	Width  float64
	Height float64
}

func Circle(radius float64) Shape {
	mustSize("radius", radius)
	return Shape{Kind: ShapeCircle, Radius: radius}
}

func Rectangle(width, height float64) Shape {
	mustSize("width", width)
	mustSize("height", height)
	return Shape{Kind: ShapeRectangle, Width: width, Height: height}
}

// HalfExtents returns the half size of the shape's unrotated bounding box.
func (s Shape) HalfExtents() cp.Vector {
	switch s.Kind {
	case ShapeCircle:
		return cp.Vector{X: s.Radius, Y: s.Radius}
	case ShapeRectangle:
		return cp.Vector{X: s.Width / 2, Y: s.Height / 2}
	}
	panic(fmt.Sprintf("geom: malformed shape kind %d", s.Kind))
}

// Collider is a shape placed on the cylinder. Rotation is in radians.
type Collider struct {
	Position Position
	Rotation float64
	Shape    Shape
}

func NewCollider(pos Position, shape Shape) Collider {
	return Collider{Position: pos, Shape: shape}
}

// Bounds returns the axis-aligned box of the collider relative to origin,
// taking the wrap-aware path from origin to the collider.
func (c Collider) Bounds(origin Position) cp.BB {
	center := origin.DeltaTo(c.Position)
	half := c.Shape.HalfExtents()
	if c.Shape.Kind == ShapeRectangle && c.Rotation != 0 {
		rot := cp.ForAngle(c.Rotation)
		ax := cp.Vector{X: half.X, Y: 0}.Rotate(rot)
		ay := cp.Vector{X: 0, Y: half.Y}.Rotate(rot)
		half = cp.Vector{
			X: math.Abs(ax.X) + math.Abs(ay.X),
			Y: math.Abs(ax.Y) + math.Abs(ay.Y),
		}
	}
	return cp.NewBBForExtents(center, half.X, half.Y)
}

func mustSize(name string, v float64) {
	if !(v > 0) || math.IsInf(v, 0) {
		panic(fmt.Sprintf("geom: shape %s must be positive and finite, got %v", name, v))
	}
}
