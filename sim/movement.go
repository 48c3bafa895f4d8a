package sim

import (
	"github.com/milk9111/doodleshoot/common"
	"github.com/milk9111/doodleshoot/ecs"
	"github.com/milk9111/doodleshoot/ecs/component"
)

// MovementSystem integrates positions. Doodles are speed capped, clouds hang
// on a damped spring from their anchor, everything else moves freely.
type MovementSystem struct{}

func NewMovementSystem() *MovementSystem {
	return &MovementSystem{}
}

func (s *MovementSystem) Update(w *World) {
	if w == nil {
		return
	}
	dt := w.dt

	for _, e := range w.doodles.IDs() {
		body, ok := w.doodles.Body.Get(e)
		if !ok {
			continue
		}
		body.Velocity = common.ClampLen(body.Velocity, w.tuning.Doodle.MaxSpeed)
		body.Collider.Position.Shift(body.Velocity.Mult(dt))
	}

	integrate := func(body *component.Body) {
		body.Collider.Position.Shift(body.Velocity.Mult(dt))
	}
	for _, e := range w.birds.IDs() {
		if body, ok := w.birds.Body.Get(e); ok {
			integrate(body)
		}
	}
	for _, e := range w.projectiles.IDs() {
		if body, ok := w.projectiles.Body.Get(e); ok {
			integrate(body)
		}
	}
	for _, e := range w.particles.IDs() {
		if body, ok := w.particles.Body.Get(e); ok {
			integrate(body)
		}
	}

	c := w.tuning.Cloud
	for _, e := range w.clouds.IDs() {
		body, anchor, anchorVel, ok := ecs.Query3(e, w.clouds.Body, w.clouds.Anchor, w.clouds.AnchorVelocity)
		if !ok {
			continue
		}
		anchor.Shift(anchorVel.Mult(dt))

		damp := common.ClampLen(body.Velocity, 1).Mult(c.Damping * dt)
		body.Velocity = body.Velocity.Sub(damp)

		pos := &body.Collider.Position
		dir := pos.DeltaTo(*anchor)
		pull := min(dir.LengthSq(), c.MaxPull)
		body.Velocity = body.Velocity.Add(common.NormalizeOrZero(dir).Mult(pull * c.Elasticity * dt))

		pos.Shift(body.Velocity.Add(*anchorVel).Mult(dt))
		*pos = anchor.Shifted(common.ClampLen(anchor.DeltaTo(*pos), c.MaxOffset))
	}
}

// AttachmentSystem keeps attached triggers at their offset from the cloud
// they ride on.
type AttachmentSystem struct{}

func NewAttachmentSystem() *AttachmentSystem {
	return &AttachmentSystem{}
}

func (s *AttachmentSystem) Update(w *World) {
	if w == nil {
		return
	}
	for _, e := range w.triggers.IDs() {
		col, att, ok := ecs.Query2(e, w.triggers.Collider, w.triggers.Attachment)
		if !ok || *att == nil {
			continue
		}
		cloud, ok := w.clouds.Body.Get((*att).Cloud)
		if !ok {
			// the cloud is gone; despawn takes the trigger soon enough
			continue
		}
		col.Position = cloud.Collider.Position.Shifted((*att).Offset)
	}
}
