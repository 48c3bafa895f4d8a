// Package sim is the per-frame simulation of Doodle Shoot: a doodle climbing
// springy clouds on a world that wraps horizontally.
package sim

import (
	"fmt"
	"log"
	"math/rand/v2"

	"github.com/google/uuid"
	"github.com/milk9111/doodleshoot/common"
	"github.com/milk9111/doodleshoot/ecs"
	"github.com/milk9111/doodleshoot/ecs/component"
	"github.com/milk9111/doodleshoot/geom"
	"github.com/milk9111/doodleshoot/prefabs"
)

// SessionEnd is published once the doodle falls out of view.
type SessionEnd struct {
	RunID  string
	Score  int
	Height float64
}

// World owns every entity store and the state carried between steps. It is
// driven by one caller; nothing in it is safe for concurrent use.
type World struct {
	tuning   *prefabs.Tuning
	clock    Clock
	rng      *rand.Rand
	runID    string
	generate bool

	doodles     *Doodles
	clouds      *Clouds
	birds       *Birds
	projectiles *Projectiles
	triggers    *Triggers
	particles   *Particles

	player    component.Player
	camera    component.Camera
	events    ecs.EventQueue
	scheduler *Scheduler

	dt    float64
	input component.Input

	score           int
	generatedHeight float64
	nextBird        float64
	rustle          float64
	ended           *SessionEnd
}

type Option func(*World)

func WithTuning(t *prefabs.Tuning) Option {
	return func(w *World) { w.tuning = t }
}

func WithClock(c Clock) Option {
	return func(w *World) { w.clock = c }
}

func WithRand(r *rand.Rand) Option {
	return func(w *World) { w.rng = r }
}

func WithSeed(seed uint64) Option {
	return func(w *World) { w.rng = rand.New(rand.NewPCG(seed, seed^0x9e3779b97f4a7c15)) }
}

// WithoutGeneration disables seeding, cloud generation and bird spawning, so
// callers can build a scene by hand.
func WithoutGeneration() Option {
	return func(w *World) { w.generate = false }
}

// New creates a world with the player doodle at the origin.
func New(opts ...Option) (*World, error) {
	w := &World{
		clock:       SystemClock{},
		runID:       uuid.NewString(),
		generate:    true,
		doodles:     newDoodles(),
		clouds:      newClouds(),
		birds:       newBirds(),
		projectiles: newProjectiles(),
		triggers:    newTriggers(),
		particles:   newParticles(),
	}
	for _, opt := range opts {
		opt(w)
	}
	if w.tuning == nil {
		w.tuning = prefabs.DefaultTuning()
	}
	if err := w.tuning.Validate(); err != nil {
		return nil, fmt.Errorf("sim: new world: %w", err)
	}
	if w.rng == nil {
		w.rng = rand.New(rand.NewPCG(rand.Uint64(), rand.Uint64()))
	}

	width := w.tuning.World.Width
	w.camera = component.NewCamera(w.tuning.Camera.FOV(width), width)
	w.player.Doodle = w.doodles.Insert(w.newDoodle(geom.Zero(width)))
	w.scheduler = NewScheduler(
		NewGenerationSystem(),
		NewPlayerControlSystem(),
		NewGravitySystem(),
		NewMovementSystem(),
		NewCloudCollisionSystem(),
		NewBirdCollisionSystem(),
		NewAttachmentSystem(),
		NewTriggerSystem(),
		NewCameraSystem(),
		NewLifetimeSystem(),
		NewFailSystem(),
		NewDespawnSystem(),
	)

	log.Printf("sim: world created run=%s width=%.2f fov=%.2f", w.runID, width, w.camera.FOV)
	return w, nil
}

// MustNew is New for callers holding a tuning already known to be valid.
func MustNew(opts ...Option) *World {
	w, err := New(opts...)
	if err != nil {
		panic(err)
	}
	return w
}

// Update advances the simulation by dt seconds of game time.
func (w *World) Update(input component.Input, dt float64) {
	w.dt = dt
	w.input = input

	w.scheduler.Update(w)

	w.doodles.Recycle()
	w.clouds.Recycle()
	w.birds.Recycle()
	w.projectiles.Recycle()
	w.triggers.Recycle()
	w.particles.Recycle()
}

func (w *World) Doodles() *Doodles         { return w.doodles }
func (w *World) Clouds() *Clouds           { return w.clouds }
func (w *World) Birds() *Birds             { return w.birds }
func (w *World) Projectiles() *Projectiles { return w.projectiles }
func (w *World) Triggers() *Triggers       { return w.triggers }
func (w *World) Particles() *Particles     { return w.particles }

func (w *World) Player() component.Player  { return w.player }
func (w *World) Camera() component.Camera  { return w.camera }
func (w *World) Tuning() *prefabs.Tuning   { return w.tuning }
func (w *World) RunID() string             { return w.runID }
func (w *World) Width() float64            { return w.tuning.World.Width }
func (w *World) Scheduler() *Scheduler     { return w.scheduler }
func (w *World) Events() *ecs.EventQueue   { return &w.events }
func (w *World) GeneratedHeight() float64  { return w.generatedHeight }

// SetTuning swaps the tuning used from the next step on. Sizes of entities
// already spawned are left alone.
func (w *World) SetTuning(t *prefabs.Tuning) error {
	if err := t.Validate(); err != nil {
		return err
	}
	if t.World.Width != w.tuning.World.Width {
		return fmt.Errorf("%w: world.width cannot change on a running world", prefabs.ErrInvalidTuning)
	}
	w.tuning = t
	w.camera.FOV = t.Camera.FOV(t.World.Width)
	return nil
}

// Score is the running event score plus the height reached by the camera.
func (w *World) Score() int {
	return w.score + common.FloorInt(w.camera.Center.Y()*w.tuning.Score.HeightFactor)
}

// RustleVolume is the volume the cloud rustle loop should play at; zero
// means it should be stopped.
func (w *World) RustleVolume() float64 {
	return w.rustle
}

// Ended reports whether the run is over.
func (w *World) Ended() (SessionEnd, bool) {
	if w.ended == nil {
		return SessionEnd{}, false
	}
	return *w.ended, true
}

func (w *World) addScore(delta int) {
	w.score += delta
}

func (w *World) pos(x, y float64) geom.Position {
	return geom.FromWorld(cpVec(x, y), w.tuning.World.Width)
}

func (w *World) uniform(r prefabs.RangeSpec) float64 {
	if r.Max <= r.Min {
		return r.Min
	}
	return r.Min + w.rng.Float64()*(r.Max-r.Min)
}

func (w *World) chance(p float64) bool {
	return w.rng.Float64() < p
}

func (w *World) randomSign() float64 {
	if w.rng.IntN(2) == 0 {
		return -1
	}
	return 1
}
