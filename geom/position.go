// Package geom holds the cylindrical coordinate system and collider shapes
// used by the simulation. The horizontal axis wraps at the world width, the
// vertical axis is unbounded.
package geom

import (
	"fmt"
	"math"

	"github.com/jakecoffman/cp"
)

// Position is a point on a horizontal cylinder. X is always kept in
// [0, width) and only positions normalized against the same width may be
// combined.
type Position struct {
	x     float64
	y     float64
	width float64
}

// FromWorld normalizes a world-space point onto the cylinder.
func FromWorld(v cp.Vector, width float64) Position {
	mustWidth(width)
	return Position{x: wrap(v.X, width), y: v.Y, width: width}
}

// Zero is the origin of a world with the given width.
func Zero(width float64) Position {
	return FromWorld(cp.Vector{}, width)
}

func (p Position) X() float64     { return p.x }
func (p Position) Y() float64     { return p.y }
func (p Position) Width() float64 { return p.width }

// World returns the normalized coordinates as a vector.
func (p Position) World() cp.Vector {
	return cp.Vector{X: p.x, Y: p.y}
}

// AsDir returns the shortest delta from the origin to p.
func (p Position) AsDir() cp.Vector {
	return Zero(p.width).DeltaTo(p)
}

// Shift translates p in place.
func (p *Position) Shift(delta cp.Vector) {
	*p = p.Shifted(delta)
}

// Shifted returns p translated by delta.
func (p Position) Shifted(delta cp.Vector) Position {
	return FromWorld(p.World().Add(delta), p.width)
}

// DeltaTo returns the shortest displacement from p to other. The horizontal
// component takes the wrap-around path when that one is shorter, so its
// magnitude never exceeds half the world width.
func (p Position) DeltaTo(other Position) cp.Vector {
	if p.width != other.width {
		panic(fmt.Sprintf("geom: positions from different worlds (width %v and %v)", p.width, other.width))
	}
	delta := other.World().Sub(p.World())
	if math.Abs(delta.X)*2 > p.width {
		delta.X -= p.width * math.Copysign(1, delta.X)
	}
	return delta
}

// Distance is the length of DeltaTo.
func (p Position) Distance(other Position) float64 {
	return p.DeltaTo(other).Length()
}

// Equivalent reports whether p and other describe the same point within eps,
// treating x = 0 and x = width as the same seam.
func (p Position) Equivalent(other Position, eps float64) bool {
	d := p.DeltaTo(other)
	return math.Abs(d.X) <= eps && math.Abs(d.Y) <= eps
}

func (p Position) String() string {
	return fmt.Sprintf("(%.3f, %.3f | w=%.3f)", p.x, p.y, p.width)
}

func wrap(x, width float64) float64 {
	x = math.Mod(x, width)
	if x < 0 {
		x += width
	}
	// -tiny + width rounds to width
	if x >= width {
		x = 0
	}
	return x
}

func mustWidth(width float64) {
	if !(width > 0) || math.IsInf(width, 0) {
		panic(fmt.Sprintf("geom: world width must be positive and finite, got %v", width))
	}
}
