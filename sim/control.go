package sim

import (
	"github.com/jakecoffman/cp"
	"github.com/milk9111/doodleshoot/common"
	"github.com/milk9111/doodleshoot/ecs"
	"github.com/milk9111/doodleshoot/ecs/component"
	"github.com/milk9111/doodleshoot/geom"
)

// PlayerControlSystem turns the frame input into velocity changes, jumps and
// shots for the player doodle.
type PlayerControlSystem struct{}

func NewPlayerControlSystem() *PlayerControlSystem {
	return &PlayerControlSystem{}
}

func (s *PlayerControlSystem) Update(w *World) {
	if w == nil {
		return
	}
	d := w.doodles
	body, grounded, shotAt, ok := ecs.Query3(w.player.Doodle, d.Body, d.Grounded, d.ShotAt)
	if !ok {
		return
	}
	t := w.tuning.Doodle
	in := w.input
	dt := w.dt

	// steer relative to whatever the doodle stands on
	groundVel := 0.0
	if cloud, anchorVel, ok := ecs.Query2(*grounded, w.clouds.Body, w.clouds.AnchorVelocity); ok {
		groundVel = cloud.Velocity.Add(*anchorVel).X
	}
	target := common.ClampAbs(in.Move.X, 1)*t.MoveSpeed + groundVel
	body.Velocity.X += common.ClampAbs(target-body.Velocity.X, t.Acceleration*dt)

	if in.Jump && grounded.Valid() {
		jump := cpVec(0, t.JumpSpeed)
		body.Velocity = body.Velocity.Add(jump)

		// push off the cloud
		if cloud, ok := w.clouds.Body.Get(*grounded); ok {
			factor := body.Mass / (body.Mass + cloud.Mass)
			cloud.Velocity = cloud.Velocity.Sub(jump.Mult(factor))
		}
		*grounded = 0
		w.playSound(component.SoundJump, 1)
	}

	now := w.clock.Now()
	if in.Shoot && now.Sub(*shotAt).Seconds() > t.ShootCooldown {
		*shotAt = now
		pos := body.Position()
		dir := aim(pos, in.Cursor)
		speed := w.tuning.Projectile.Speed

		w.SpawnProjectile(pos, dir.Mult(speed))
		body.Velocity = body.Velocity.Sub(dir.Mult(t.Recoil))

		w.playSound(component.SoundShoot, 1)
		w.burst(3, pos, dir.Mult(speed*0.3), w.tuning.Palette.Shoot.Or(defaultShootColor))
	}
}

// aim is the unit direction from pos to the cursor. Without a cursor, or with
// the cursor right on the doodle, it shoots straight up.
func aim(pos, cursor geom.Position) cp.Vector {
	if cursor.Width() != pos.Width() {
		return cpVec(0, 1)
	}
	dir := common.NormalizeOrZero(pos.DeltaTo(cursor))
	if dir == (cp.Vector{}) {
		return cpVec(0, 1)
	}
	return dir
}
