package component

import (
	"github.com/jakecoffman/cp"
	"github.com/milk9111/doodleshoot/geom"
)

// Body is the physical state shared by every moving entity kind.
type Body struct {
	Collider geom.Collider
	Velocity cp.Vector
	Mass     float64
}

func NewBody(collider geom.Collider, mass float64) Body {
	return Body{Collider: collider, Mass: mass}
}

// Position is a shorthand for the collider position.
func (b *Body) Position() geom.Position {
	return b.Collider.Position
}
