package component

import "github.com/milk9111/doodleshoot/ecs"

// Player points at the one live doodle controlled by input.
type Player struct {
	Doodle ecs.Entity
}
