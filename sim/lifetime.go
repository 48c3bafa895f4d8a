package sim

import (
	"log"

	"github.com/milk9111/doodleshoot/ecs"
	"github.com/milk9111/doodleshoot/ecs/component"
)

// LifetimeSystem counts down projectiles, birds and particles and removes
// the ones that ran out.
type LifetimeSystem struct{}

func NewLifetimeSystem() *LifetimeSystem {
	return &LifetimeSystem{}
}

func (s *LifetimeSystem) Update(w *World) {
	if w == nil {
		return
	}
	expire(w.projectiles.Arena, w.projectiles.Lifetime, w.dt)
	expire(w.birds.Arena, w.birds.Lifetime, w.dt)
	expire(w.particles.Arena, w.particles.Lifetime, w.dt)
}

func expire(arena *ecs.Arena, lifetimes *ecs.Column[component.TTL], dt float64) {
	for _, e := range arena.IDs() {
		ttl, ok := lifetimes.Get(e)
		if !ok {
			continue
		}
		if ttl.Tick(dt) {
			arena.Remove(e)
		}
	}
}

// FailSystem ends the run once the doodle drops out of the bottom of the
// view. The end is latched; later steps keep running but never re-publish.
type FailSystem struct{}

func NewFailSystem() *FailSystem {
	return &FailSystem{}
}

func (s *FailSystem) Update(w *World) {
	if w == nil || w.ended != nil {
		return
	}
	cam := w.camera
	limit := cam.FOV/2 + w.tuning.Camera.DeathMargin

	for _, e := range w.doodles.IDs() {
		body, ok := w.doodles.Body.Get(e)
		if !ok {
			continue
		}
		if body.Position().DeltaTo(cam.Center).Y <= limit {
			continue
		}

		end := SessionEnd{RunID: w.runID, Score: w.Score(), Height: cam.Center.Y()}
		w.ended = &end
		w.events.Push(ecs.Event{
			Type: component.EventSessionEnd,
			Data: component.SessionEndEvent{RunID: end.RunID, Score: end.Score, Height: end.Height},
		})
		log.Printf("sim: session ended run=%s score=%d height=%.2f", end.RunID, end.Score, end.Height)
		return
	}
}

// DespawnSystem drops clouds and triggers that fell below the view.
type DespawnSystem struct{}

func NewDespawnSystem() *DespawnSystem {
	return &DespawnSystem{}
}

func (s *DespawnSystem) Update(w *World) {
	if w == nil {
		return
	}
	bound := w.camera.LowerBound()

	for _, e := range w.clouds.IDs() {
		if body, ok := w.clouds.Body.Get(e); ok && body.Position().Y() < bound {
			w.clouds.Remove(e)
		}
	}
	for _, e := range w.triggers.IDs() {
		if col, ok := w.triggers.Collider.Get(e); ok && col.Position.Y() < bound {
			w.triggers.Remove(e)
		}
	}
}
