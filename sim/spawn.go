package sim

import (
	"image/color"
	"math"

	"github.com/jakecoffman/cp"
	"github.com/milk9111/doodleshoot/ecs"
	"github.com/milk9111/doodleshoot/ecs/component"
	"github.com/milk9111/doodleshoot/geom"
)

func cpVec(x, y float64) cp.Vector {
	return cp.Vector{X: x, Y: y}
}

func (w *World) newDoodle(pos geom.Position) component.Doodle {
	t := w.tuning.Doodle
	return component.NewDoodle(component.NewBody(
		geom.NewCollider(pos, geom.Rectangle(t.Width, t.Height)),
		t.Mass,
	))
}

// SpawnCloud adds a resting cloud anchored at pos.
func (w *World) SpawnCloud(pos geom.Position) ecs.Entity {
	return w.clouds.Insert(w.newCloud(pos))
}

func (w *World) newCloud(pos geom.Position) component.Cloud {
	t := w.tuning.Cloud
	return component.NewCloud(component.NewBody(
		geom.NewCollider(pos, geom.Rectangle(t.Width, t.Height)),
		t.Mass,
	))
}

// SpawnBird adds a bird flying horizontally at speed (negative is leftward).
func (w *World) SpawnBird(pos geom.Position, speed float64) ecs.Entity {
	t := w.tuning.Bird
	body := component.NewBody(geom.NewCollider(pos, geom.Circle(t.Radius)), t.Mass)
	body.Velocity = cpVec(speed, 0)
	return w.birds.Insert(component.Bird{Body: body, Lifetime: component.NewTTL(t.Lifetime)})
}

// SpawnProjectile adds a projectile moving at velocity.
func (w *World) SpawnProjectile(pos geom.Position, velocity cp.Vector) ecs.Entity {
	t := w.tuning.Projectile
	body := component.NewBody(geom.NewCollider(pos, geom.Circle(t.Radius)), t.Mass)
	body.Velocity = velocity
	return w.projectiles.Insert(component.Projectile{Body: body, Lifetime: component.NewTTL(t.Lifetime)})
}

// SpawnSpring attaches a spring to cloud. It returns false when the cloud no
// longer exists.
func (w *World) SpawnSpring(cloud ecs.Entity) (ecs.Entity, bool) {
	t := w.tuning.Spring
	return w.attachTrigger(cloud, component.TriggerSpring, geom.Rectangle(t.Width, t.Height), t.Offset.Vector())
}

// SpawnCoin attaches a coin to cloud.
func (w *World) SpawnCoin(cloud ecs.Entity) (ecs.Entity, bool) {
	t := w.tuning.Coin
	return w.attachTrigger(cloud, component.TriggerCoin, geom.Circle(t.Radius), t.Offset.Vector())
}

// SpawnFreeTrigger adds a trigger that stays where it is placed.
func (w *World) SpawnFreeTrigger(kind component.TriggerKind, pos geom.Position) ecs.Entity {
	var shape geom.Shape
	switch kind {
	case component.TriggerSpring:
		shape = geom.Rectangle(w.tuning.Spring.Width, w.tuning.Spring.Height)
	default:
		shape = geom.Circle(w.tuning.Coin.Radius)
	}
	return w.triggers.Insert(component.Trigger{Kind: kind, Collider: geom.NewCollider(pos, shape)})
}

func (w *World) attachTrigger(cloud ecs.Entity, kind component.TriggerKind, shape geom.Shape, offset cp.Vector) (ecs.Entity, bool) {
	body, ok := w.clouds.Body.Get(cloud)
	if !ok {
		return 0, false
	}
	return w.triggers.Insert(component.Trigger{
		Kind:       kind,
		Collider:   geom.NewCollider(body.Collider.Position.Shifted(offset), shape),
		Attachment: &component.Attachment{Offset: offset, Cloud: cloud},
	}), true
}

func (w *World) playSound(id component.SoundID, volume float64) {
	w.events.Push(ecs.Event{
		Type: component.EventSound,
		Data: component.SoundEvent{ID: id, Volume: volume},
	})
}

// burst publishes a particle burst and spawns its particles. Intensity below
// one is the chance of a single particle; otherwise it is rounded up to a
// particle count.
func (w *World) burst(intensity float64, pos geom.Position, velocity cp.Vector, clr color.Color) {
	w.events.Push(ecs.Event{
		Type: component.EventParticleBurst,
		Data: component.ParticleBurstEvent{Intensity: intensity, Position: pos, Velocity: velocity, Color: clr},
	})

	var amount int
	if intensity < 1 {
		if w.chance(intensity) {
			amount = 1
		}
	} else {
		amount = int(math.Ceil(intensity))
	}

	t := w.tuning.Particles
	for range amount {
		r := t.Spread * math.Sqrt(w.rng.Float64())
		angle := 2 * math.Pi * w.rng.Float64()
		offset := cp.ForAngle(angle).Mult(r)
		body := component.NewBody(geom.NewCollider(pos.Shifted(offset), geom.Circle(t.Radius)), 1)
		body.Velocity = velocity
		w.particles.Insert(component.Particle{
			Body:     body,
			Color:    clr,
			Lifetime: component.NewTTL(t.Lifetime),
		})
	}
}
