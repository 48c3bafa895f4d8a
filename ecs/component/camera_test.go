package component

import (
	"math"
	"testing"

	"github.com/jakecoffman/cp"
	"github.com/milk9111/doodleshoot/geom"
)

func TestCameraProjection(t *testing.T) {
	cam := NewCamera(9, 10)
	cam.Center = geom.FromWorld(cp.Vector{X: 9, Y: 4}, 10)

	p := geom.FromWorld(cp.Vector{X: 1, Y: 6}, 10)
	off := cam.Project(p)
	if math.Abs(off.X-2) > 1e-9 || math.Abs(off.Y-2) > 1e-9 {
		t.Fatalf("expected offset (2, 2) across the seam, got %v", off)
	}
	if back := cam.Unproject(off); !back.Equivalent(p, 1e-9) {
		t.Fatalf("unproject mismatch: %v vs %v", back, p)
	}
	if got := cam.PixelsPerUnit(900); got != 100 {
		t.Fatalf("expected 100 px per unit, got %v", got)
	}
	if got := cam.LowerBound(); got != -5 {
		t.Fatalf("expected lower bound -5, got %v", got)
	}
}
