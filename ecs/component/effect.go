package component

import (
	"image/color"

	"github.com/jakecoffman/cp"
	"github.com/milk9111/doodleshoot/ecs"
	"github.com/milk9111/doodleshoot/geom"
)

const (
	EventSound         ecs.EventType = "sound"
	EventParticleBurst ecs.EventType = "particle_burst"
	EventSessionEnd    ecs.EventType = "session_end"
)

type SoundID string

const (
	SoundJump     SoundID = "jump"
	SoundSpring   SoundID = "spring"
	SoundOi       SoundID = "oi"
	SoundKillBird SoundID = "kill_bird"
	SoundShoot    SoundID = "shoot"
	SoundCoin     SoundID = "coin"
)

// SoundEvent asks the audio layer to play a one-shot sound.
type SoundEvent struct {
	ID     SoundID
	Volume float64
}

// ParticleBurstEvent describes a burst of cosmetic particles.
type ParticleBurstEvent struct {
	Intensity float64
	Position  geom.Position
	Velocity  cp.Vector
	Color     color.Color
}

// SessionEndEvent is emitted once when the doodle falls out of view.
type SessionEndEvent struct {
	RunID  string
	Score  int
	Height float64
}
