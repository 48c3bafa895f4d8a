package component

import (
	"github.com/jakecoffman/cp"
	"github.com/milk9111/doodleshoot/geom"
)

// Camera follows the player upward. FOV is the visible height in world units.
type Camera struct {
	Center geom.Position
	Target geom.Position
	FOV    float64
}

func NewCamera(fov, worldWidth float64) Camera {
	return Camera{
		Center: geom.Zero(worldWidth),
		Target: geom.Zero(worldWidth),
		FOV:    fov,
	}
}

// Project returns p relative to the camera center, taking the shortest way
// around the cylinder.
func (c Camera) Project(p geom.Position) cp.Vector {
	return c.Center.DeltaTo(p)
}

// Unproject turns an offset from the camera center back into a position.
func (c Camera) Unproject(offset cp.Vector) geom.Position {
	return c.Center.Shifted(offset)
}

// PixelsPerUnit maps world units to pixels for a screen of the given height.
func (c Camera) PixelsPerUnit(screenHeight float64) float64 {
	if c.FOV <= 0 {
		return 1
	}
	return screenHeight / c.FOV
}

// LowerBound is the height below which entities are despawned.
func (c Camera) LowerBound() float64 {
	return c.Center.Y() - c.FOV
}
