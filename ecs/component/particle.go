package component

import "image/color"

// Particle is cosmetic only and never takes part in collisions.
type Particle struct {
	Body     Body
	Color    color.Color
	Lifetime TTL
}
