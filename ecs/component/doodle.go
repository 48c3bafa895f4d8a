package component

import (
	"time"

	"github.com/milk9111/doodleshoot/ecs"
)

// Doodle is the player-controlled avatar.
type Doodle struct {
	Body Body
	// Grounded is the cloud currently supporting the doodle; zero when airborne.
	Grounded ecs.Entity
	// ActiveTriggers are the triggers overlapping the doodle last frame.
	ActiveTriggers []ecs.Entity
	// CoyoteAt is the wall-clock time of the last landing contact.
	CoyoteAt time.Time
	// ShotAt is the wall-clock time of the last shot.
	ShotAt time.Time
}

func NewDoodle(body Body) Doodle {
	return Doodle{Body: body}
}
