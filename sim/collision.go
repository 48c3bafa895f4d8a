package sim

import (
	"math"
	"slices"

	"github.com/milk9111/doodleshoot/common"
	"github.com/milk9111/doodleshoot/ecs"
	"github.com/milk9111/doodleshoot/ecs/component"
	"github.com/milk9111/doodleshoot/geom"
)

// CloudCollisionSystem lands doodles on clouds. Only contacts from above
// count; the doodle passes through clouds from below and the sides.
type CloudCollisionSystem struct{}

func NewCloudCollisionSystem() *CloudCollisionSystem {
	return &CloudCollisionSystem{}
}

func (s *CloudCollisionSystem) Update(w *World) {
	if w == nil {
		return
	}
	dt := w.dt
	now := w.clock.Now()
	d := w.tuning.Doodle
	c := w.tuning.Cloud

	var landings []geom.Position
	target := 0.0

	for _, e := range w.doodles.IDs() {
		body, grounded, coyoteAt, ok := ecs.Query3(e, w.doodles.Body, w.doodles.Grounded, w.doodles.CoyoteAt)
		if !ok {
			continue
		}
		if now.Sub(*coyoteAt).Seconds() > d.CoyoteTime {
			*grounded = 0
		}

		for _, ce := range w.clouds.IDs() {
			cloud, ok := w.clouds.Body.Get(ce)
			if !ok {
				continue
			}
			hit, ok := body.Collider.Collide(cloud.Collider)
			if !ok {
				continue
			}
			rel := body.Velocity.Sub(cloud.Velocity)
			if rel.Y > 0 || hit.Normal.Y < 0 {
				continue
			}

			if !grounded.Valid() {
				landings = append(landings, hit.Point)
			}
			*grounded = ce
			*coyoteAt = now
			target = max(target, rustleVolume(rel.Y))

			// press the cloud down by at most its shift speed
			shift := common.ClampAbs(-hit.Normal.Y*hit.Penetration, c.ShiftSpeed*dt)
			cloud.Collider.Position.Shift(cpVec(0, shift))

			bodyFactor := cloud.Mass / (body.Mass + cloud.Mass)
			cloudFactor := body.Mass / (body.Mass + cloud.Mass)
			cloud.Velocity.Y += rel.Y * cloudFactor
			body.Velocity.Y -= rel.Y * bodyFactor
		}
	}

	for _, p := range landings {
		w.burst(5, p, cpVec(0, -0.1), w.tuning.Palette.Landing.Or(defaultLandingColor))
	}

	w.rustle += common.ClampAbs(target-w.rustle, dt/w.tuning.Rustle.FadeTime)
	if w.rustle <= 1e-5 {
		w.rustle = 0
	}
}

// rustleVolume is how loud a landing at the given relative speed rustles.
func rustleVolume(relY float64) float64 {
	return min(max(math.Abs(relY)/5, 0.3), 1)
}

// BirdCollisionSystem resolves birds striking doodles and being shot down.
type BirdCollisionSystem struct{}

func NewBirdCollisionSystem() *BirdCollisionSystem {
	return &BirdCollisionSystem{}
}

func (s *BirdCollisionSystem) Update(w *World) {
	if w == nil {
		return
	}
	b := w.tuning.Bird
	palette := w.tuning.Palette

birds:
	for _, be := range w.birds.IDs() {
		bird, ok := w.birds.Body.Get(be)
		if !ok {
			continue
		}
		birdCol := bird.Collider
		birdVel := bird.Velocity
		birdMass := bird.Mass

		for _, de := range w.doodles.IDs() {
			body, ok := w.doodles.Body.Get(de)
			if !ok {
				continue
			}
			if _, hit := body.Collider.Collide(birdCol); !hit {
				continue
			}
			body.Velocity = body.Velocity.Add(birdVel.Mult(birdMass / body.Mass))
			body.Velocity.Y *= 0.5
			w.birds.Remove(be)
			w.addScore(b.HitScore)
			w.playSound(component.SoundOi, 1)
			w.burst(5, body.Collider.Position, birdVel.Mult(0.3), palette.BirdHit.Or(defaultBirdHitColor))
			continue birds
		}

		for _, pe := range w.projectiles.IDs() {
			proj, ok := w.projectiles.Body.Get(pe)
			if !ok {
				continue
			}
			if _, hit := birdCol.Collide(proj.Collider); !hit {
				continue
			}
			projVel := proj.Velocity
			w.projectiles.Remove(pe)
			w.birds.Remove(be)
			w.addScore(b.KillScore)
			w.playSound(component.SoundKillBird, 1)
			w.burst(3, birdCol.Position, projVel.Mult(0.3), palette.BirdKill.Or(defaultBirdKillColor))
			continue birds
		}
	}
}

// TriggerSystem fires springs and coins on the frame a doodle enters them.
type TriggerSystem struct{}

func NewTriggerSystem() *TriggerSystem {
	return &TriggerSystem{}
}

func (s *TriggerSystem) Update(w *World) {
	if w == nil {
		return
	}
	sp := w.tuning.Spring
	palette := w.tuning.Palette
	up := cpVec(0, 1)

	for _, de := range w.doodles.IDs() {
		body, active, ok := ecs.Query2(de, w.doodles.Body, w.doodles.ActiveTriggers)
		if !ok {
			continue
		}

		var overlapping []ecs.Entity
		for _, te := range w.triggers.IDs() {
			trigger, ok := w.triggers.Get(te)
			if !ok {
				continue
			}
			if _, hit := body.Collider.Collide(trigger.Collider); !hit {
				continue
			}
			overlapping = append(overlapping, te)
			if slices.Contains(*active, te) {
				continue
			}

			switch trigger.Kind {
			case component.TriggerSpring:
				jump := up.Mult(sp.Impulse)
				body.Velocity = body.Velocity.Add(jump)
				// never weaken a stronger launch
				proj := body.Velocity.Dot(up)
				body.Velocity = body.Velocity.Add(up.Mult(max(sp.MinSpeed-proj, 0)))
				w.playSound(component.SoundSpring, 1)

				if trigger.Attachment != nil {
					if cloud, ok := w.clouds.Body.Get(trigger.Attachment.Cloud); ok {
						cloud.Velocity = cloud.Velocity.Sub(jump.Mult(sp.Reaction * body.Mass / cloud.Mass))
					}
				}
				w.burst(5, trigger.Collider.Position, up.Mult(-0.2), palette.Spring.Or(defaultSpringColor))
			case component.TriggerCoin:
				w.triggers.Remove(te)
				w.addScore(w.tuning.Coin.Score)
				w.playSound(component.SoundCoin, 0.2)
				w.burst(5, trigger.Collider.Position, cpVec(0, 0), palette.Coin.Or(defaultCoinColor))
			}
		}
		*active = overlapping
	}
}
