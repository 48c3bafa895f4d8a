package common

import (
	"math"

	"github.com/jakecoffman/cp"
)

// ClampAbs limits v to [-limit, limit].
func ClampAbs(v, limit float64) float64 {
	return cp.Clamp(v, -limit, limit)
}

// NormalizeOrZero returns v scaled to unit length, or the zero vector.
func NormalizeOrZero(v cp.Vector) cp.Vector {
	l := v.Length()
	if l == 0 {
		return cp.Vector{}
	}
	return v.Mult(1 / l)
}

// ClampLen limits the length of v to max.
func ClampLen(v cp.Vector, max float64) cp.Vector {
	if v.LengthSq() > max*max {
		return NormalizeOrZero(v).Mult(max)
	}
	return v
}

// FloorInt floors v toward negative infinity.
func FloorInt(v float64) int {
	return int(math.Floor(v))
}
