package sim

// GravitySystem accelerates every doodle downward. Clouds, birds and
// projectiles ignore gravity.
type GravitySystem struct{}

func NewGravitySystem() *GravitySystem {
	return &GravitySystem{}
}

func (s *GravitySystem) Update(w *World) {
	if w == nil {
		return
	}
	g := cpVec(0, w.tuning.World.Gravity*w.dt)
	for _, e := range w.doodles.IDs() {
		body, ok := w.doodles.Body.Get(e)
		if !ok {
			continue
		}
		body.Velocity = body.Velocity.Add(g)
	}
}
