package sim

// CameraSystem scrolls the view after the player. The target follows the
// doodle sideways freely but only ever moves up; the center eases toward it.
type CameraSystem struct{}

func NewCameraSystem() *CameraSystem {
	return &CameraSystem{}
}

func (s *CameraSystem) Update(w *World) {
	if w == nil {
		return
	}
	body, ok := w.doodles.Body.Get(w.player.Doodle)
	if !ok {
		return
	}
	cam := &w.camera

	delta := cam.Target.DeltaTo(body.Position())
	delta.Y = max(delta.Y, 0)
	cam.Target.Shift(delta)

	follow := min(w.dt/w.tuning.Camera.FollowTime, 1)
	cam.Center.Shift(cam.Center.DeltaTo(cam.Target).Mult(follow))
}
