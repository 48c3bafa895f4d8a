package component

import (
	"github.com/jakecoffman/cp"
	"github.com/milk9111/doodleshoot/geom"
)

// Input is the normalized per-frame input fed to the simulation.
type Input struct {
	// Move is the requested direction; only X is used for steering.
	Move cp.Vector
	// Jump is true on frames where jump was pressed.
	Jump  bool
	Shoot bool
	// Cursor is the aim point in world space. A zero Cursor aims straight up.
	Cursor geom.Position
}
