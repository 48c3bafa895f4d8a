package main

import (
	"math"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
	"github.com/jakecoffman/cp"
	"github.com/milk9111/doodleshoot/ecs/component"
)

// readInput samples keyboard, mouse and the first gamepad for one step.
func readInput(cam component.Camera) component.Input {
	const stickDeadzone = 0.2

	left := ebiten.IsKeyPressed(ebiten.KeyA) || ebiten.IsKeyPressed(ebiten.KeyArrowLeft)
	right := ebiten.IsKeyPressed(ebiten.KeyD) || ebiten.IsKeyPressed(ebiten.KeyArrowRight)
	jump := inpututil.IsKeyJustPressed(ebiten.KeySpace) || inpututil.IsKeyJustPressed(ebiten.KeyW)
	shoot := ebiten.IsMouseButtonPressed(ebiten.MouseButtonLeft)

	moveX := 0.0
	if left {
		moveX -= 1
	}
	if right {
		moveX += 1
	}

	if gamepads := ebiten.AppendGamepadIDs(nil); len(gamepads) > 0 {
		id := gamepads[0]
		leftX := ebiten.StandardGamepadAxisValue(id, ebiten.StandardGamepadAxisLeftStickHorizontal)
		if math.Abs(leftX) > stickDeadzone {
			moveX = leftX
		}
		jump = jump || inpututil.IsStandardGamepadButtonJustPressed(id, ebiten.StandardGamepadButtonRightBottom)
		shoot = shoot || ebiten.IsStandardGamepadButtonPressed(id, ebiten.StandardGamepadButtonFrontBottomRight)
	}

	mx, my := ebiten.CursorPosition()
	return component.Input{
		Move:   cp.Vector{X: moveX},
		Jump:   jump,
		Shoot:  shoot,
		Cursor: cam.Unproject(screenToOffset(cam, float64(mx), float64(my))),
	}
}

// screenToOffset maps a pixel to a world offset from the camera center.
// Screen y grows downward, world y upward.
func screenToOffset(cam component.Camera, x, y float64) cp.Vector {
	ppu := cam.PixelsPerUnit(baseHeight)
	return cp.Vector{
		X: (x - baseWidth/2) / ppu,
		Y: -(y - baseHeight/2) / ppu,
	}
}

func offsetToScreen(cam component.Camera, off cp.Vector) (float32, float32) {
	ppu := cam.PixelsPerUnit(baseHeight)
	return float32(baseWidth/2 + off.X*ppu), float32(baseHeight/2 - off.Y*ppu)
}
