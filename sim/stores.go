package sim

import (
	"image/color"
	"time"

	"github.com/milk9111/doodleshoot/ecs"
	"github.com/milk9111/doodleshoot/ecs/component"
	"github.com/milk9111/doodleshoot/geom"

	"github.com/jakecoffman/cp"
)

// Each kind is stored column by column: one arena issues the ids and every
// field lives in its own sparse set keyed by them.

type Doodles struct {
	*ecs.Arena
	Body           *ecs.Column[component.Body]
	Grounded       *ecs.Column[ecs.Entity]
	ActiveTriggers *ecs.Column[[]ecs.Entity]
	CoyoteAt       *ecs.Column[time.Time]
	ShotAt         *ecs.Column[time.Time]
}

func newDoodles() *Doodles {
	a := ecs.NewArena()
	return &Doodles{
		Arena:          a,
		Body:           ecs.NewColumn[component.Body](a),
		Grounded:       ecs.NewColumn[ecs.Entity](a),
		ActiveTriggers: ecs.NewColumn[[]ecs.Entity](a),
		CoyoteAt:       ecs.NewColumn[time.Time](a),
		ShotAt:         ecs.NewColumn[time.Time](a),
	}
}

func (s *Doodles) Insert(d component.Doodle) ecs.Entity {
	e := s.Arena.Insert()
	s.Body.Set(e, d.Body)
	s.Grounded.Set(e, d.Grounded)
	s.ActiveTriggers.Set(e, d.ActiveTriggers)
	s.CoyoteAt.Set(e, d.CoyoteAt)
	s.ShotAt.Set(e, d.ShotAt)
	return e
}

// Get assembles a copy of the doodle.
func (s *Doodles) Get(e ecs.Entity) (component.Doodle, bool) {
	body, grounded, active, ok := ecs.Query3(e, s.Body, s.Grounded, s.ActiveTriggers)
	if !ok {
		return component.Doodle{}, false
	}
	coyote, shot, ok := ecs.Query2(e, s.CoyoteAt, s.ShotAt)
	if !ok {
		return component.Doodle{}, false
	}
	return component.Doodle{
		Body:           *body,
		Grounded:       *grounded,
		ActiveTriggers: append([]ecs.Entity(nil), (*active)...),
		CoyoteAt:       *coyote,
		ShotAt:         *shot,
	}, true
}

type Clouds struct {
	*ecs.Arena
	Body           *ecs.Column[component.Body]
	Anchor         *ecs.Column[geom.Position]
	AnchorVelocity *ecs.Column[cp.Vector]
}

func newClouds() *Clouds {
	a := ecs.NewArena()
	return &Clouds{
		Arena:          a,
		Body:           ecs.NewColumn[component.Body](a),
		Anchor:         ecs.NewColumn[geom.Position](a),
		AnchorVelocity: ecs.NewColumn[cp.Vector](a),
	}
}

func (s *Clouds) Insert(c component.Cloud) ecs.Entity {
	e := s.Arena.Insert()
	s.Body.Set(e, c.Body)
	s.Anchor.Set(e, c.Anchor)
	s.AnchorVelocity.Set(e, c.AnchorVelocity)
	return e
}

func (s *Clouds) Get(e ecs.Entity) (component.Cloud, bool) {
	body, anchor, vel, ok := ecs.Query3(e, s.Body, s.Anchor, s.AnchorVelocity)
	if !ok {
		return component.Cloud{}, false
	}
	return component.Cloud{Body: *body, Anchor: *anchor, AnchorVelocity: *vel}, true
}

type Birds struct {
	*ecs.Arena
	Body     *ecs.Column[component.Body]
	Lifetime *ecs.Column[component.TTL]
}

func newBirds() *Birds {
	a := ecs.NewArena()
	return &Birds{
		Arena:    a,
		Body:     ecs.NewColumn[component.Body](a),
		Lifetime: ecs.NewColumn[component.TTL](a),
	}
}

func (s *Birds) Insert(b component.Bird) ecs.Entity {
	e := s.Arena.Insert()
	s.Body.Set(e, b.Body)
	s.Lifetime.Set(e, b.Lifetime)
	return e
}

func (s *Birds) Get(e ecs.Entity) (component.Bird, bool) {
	body, ttl, ok := ecs.Query2(e, s.Body, s.Lifetime)
	if !ok {
		return component.Bird{}, false
	}
	return component.Bird{Body: *body, Lifetime: *ttl}, true
}

type Projectiles struct {
	*ecs.Arena
	Body     *ecs.Column[component.Body]
	Lifetime *ecs.Column[component.TTL]
}

func newProjectiles() *Projectiles {
	a := ecs.NewArena()
	return &Projectiles{
		Arena:    a,
		Body:     ecs.NewColumn[component.Body](a),
		Lifetime: ecs.NewColumn[component.TTL](a),
	}
}

func (s *Projectiles) Insert(p component.Projectile) ecs.Entity {
	e := s.Arena.Insert()
	s.Body.Set(e, p.Body)
	s.Lifetime.Set(e, p.Lifetime)
	return e
}

func (s *Projectiles) Get(e ecs.Entity) (component.Projectile, bool) {
	body, ttl, ok := ecs.Query2(e, s.Body, s.Lifetime)
	if !ok {
		return component.Projectile{}, false
	}
	return component.Projectile{Body: *body, Lifetime: *ttl}, true
}

type Triggers struct {
	*ecs.Arena
	Kind       *ecs.Column[component.TriggerKind]
	Collider   *ecs.Column[geom.Collider]
	Attachment *ecs.Column[*component.Attachment]
}

func newTriggers() *Triggers {
	a := ecs.NewArena()
	return &Triggers{
		Arena:      a,
		Kind:       ecs.NewColumn[component.TriggerKind](a),
		Collider:   ecs.NewColumn[geom.Collider](a),
		Attachment: ecs.NewColumn[*component.Attachment](a),
	}
}

func (s *Triggers) Insert(t component.Trigger) ecs.Entity {
	e := s.Arena.Insert()
	s.Kind.Set(e, t.Kind)
	s.Collider.Set(e, t.Collider)
	s.Attachment.Set(e, t.Attachment)
	return e
}

func (s *Triggers) Get(e ecs.Entity) (component.Trigger, bool) {
	kind, col, att, ok := ecs.Query3(e, s.Kind, s.Collider, s.Attachment)
	if !ok {
		return component.Trigger{}, false
	}
	return component.Trigger{Kind: *kind, Collider: *col, Attachment: *att}, true
}

type Particles struct {
	*ecs.Arena
	Body     *ecs.Column[component.Body]
	Color    *ecs.Column[color.Color]
	Lifetime *ecs.Column[component.TTL]
}

func newParticles() *Particles {
	a := ecs.NewArena()
	return &Particles{
		Arena:    a,
		Body:     ecs.NewColumn[component.Body](a),
		Color:    ecs.NewColumn[color.Color](a),
		Lifetime: ecs.NewColumn[component.TTL](a),
	}
}

func (s *Particles) Insert(p component.Particle) ecs.Entity {
	e := s.Arena.Insert()
	s.Body.Set(e, p.Body)
	s.Color.Set(e, p.Color)
	s.Lifetime.Set(e, p.Lifetime)
	return e
}

func (s *Particles) Get(e ecs.Entity) (component.Particle, bool) {
	body, clr, ttl, ok := ecs.Query3(e, s.Body, s.Color, s.Lifetime)
	if !ok {
		return component.Particle{}, false
	}
	return component.Particle{Body: *body, Color: *clr, Lifetime: *ttl}, true
}
