package main

import (
	"image/color"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/vector"
	"github.com/jakecoffman/cp"
	"github.com/milk9111/doodleshoot/ecs/component"
	"github.com/milk9111/doodleshoot/geom"
	"github.com/milk9111/doodleshoot/sim"
	"golang.org/x/image/colornames"
)

var backgroundColor = color.RGBA{R: 0xC8, G: 0xE6, B: 0xF5, A: 0xFF}

func drawWorld(screen *ebiten.Image, w *sim.World) {
	screen.Fill(backgroundColor)
	cam := w.Camera()

	for _, e := range w.Clouds().IDs() {
		if body, ok := w.Clouds().Body.Get(e); ok {
			drawCollider(screen, cam, body.Collider, colornames.White)
		}
	}
	for _, e := range w.Triggers().IDs() {
		t, ok := w.Triggers().Get(e)
		if !ok {
			continue
		}
		clr := color.Color(colornames.Goldenrod)
		if t.Kind == component.TriggerSpring {
			clr = colornames.Mediumblue
		}
		drawCollider(screen, cam, t.Collider, clr)
	}
	for _, e := range w.Birds().IDs() {
		if body, ok := w.Birds().Body.Get(e); ok {
			drawCollider(screen, cam, body.Collider, colornames.Palevioletred)
		}
	}
	for _, e := range w.Projectiles().IDs() {
		if body, ok := w.Projectiles().Body.Get(e); ok {
			drawCollider(screen, cam, body.Collider, colornames.Maroon)
		}
	}
	for _, e := range w.Doodles().IDs() {
		if body, ok := w.Doodles().Body.Get(e); ok {
			drawCollider(screen, cam, body.Collider, colornames.Darkslategray)
		}
	}
	for _, e := range w.Particles().IDs() {
		p, ok := w.Particles().Get(e)
		if !ok {
			continue
		}
		clr := p.Color
		if clr == nil {
			clr = colornames.White
		}
		drawCollider(screen, cam, p.Body.Collider, fade(clr, p.Lifetime.Fraction()))
	}
}

func drawCollider(screen *ebiten.Image, cam component.Camera, c geom.Collider, clr color.Color) {
	if !visible(cam, c) {
		return
	}
	ppu := float32(cam.PixelsPerUnit(baseHeight))
	cx, cy := offsetToScreen(cam, cam.Project(c.Position))

	switch c.Shape.Kind {
	case geom.ShapeCircle:
		vector.FillCircle(screen, cx, cy, float32(c.Shape.Radius)*ppu, clr, true)
	case geom.ShapeRectangle:
		if c.Rotation == 0 {
			hw, hh := float32(c.Shape.Width/2)*ppu, float32(c.Shape.Height/2)*ppu
			vector.FillRect(screen, cx-hw, cy-hh, 2*hw, 2*hh, clr, false)
			return
		}
		// rotated rectangles are only outlined
		he := c.Shape.HalfExtents()
		rot := cp.ForAngle(c.Rotation)
		corners := [4]cp.Vector{{X: -he.X, Y: -he.Y}, {X: he.X, Y: -he.Y}, {X: he.X, Y: he.Y}, {X: -he.X, Y: he.Y}}
		for i := range corners {
			a := rot.Rotate(corners[i])
			b := rot.Rotate(corners[(i+1)%4])
			ax, ay := float32(a.X)*ppu, -float32(a.Y)*ppu
			bx, by := float32(b.X)*ppu, -float32(b.Y)*ppu
			vector.StrokeLine(screen, cx+ax, cy+ay, cx+bx, cy+by, 2, clr, true)
		}
	}
}

// visible culls colliders whose bounds are outside the view.
func visible(cam component.Camera, c geom.Collider) bool {
	half := screenToOffset(cam, baseWidth, 0)
	view := cp.NewBBForExtents(cp.Vector{}, half.X, half.Y)
	return view.Intersects(c.Bounds(cam.Center))
}

func fade(clr color.Color, alpha float64) color.Color {
	r, g, b, a := clr.RGBA()
	k := uint32(alpha * 0xFFFF)
	return color.RGBA64{
		R: uint16(r * k / 0xFFFF),
		G: uint16(g * k / 0xFFFF),
		B: uint16(b * k / 0xFFFF),
		A: uint16(a * k / 0xFFFF),
	}
}
