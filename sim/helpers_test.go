package sim

import (
	"testing"
	"time"

	"github.com/jakecoffman/cp"
	"github.com/milk9111/doodleshoot/ecs"
	"github.com/milk9111/doodleshoot/ecs/component"
)

const frame = 1.0 / 60

var epoch = time.Date(2024, time.March, 1, 12, 0, 0, 0, time.UTC)

// newScene builds a world with a manual clock and no generation, so each
// test places exactly the entities it needs.
func newScene(t *testing.T, opts ...Option) (*World, *ManualClock) {
	t.Helper()
	clock := NewManualClock(epoch)
	base := []Option{WithClock(clock), WithSeed(1), WithoutGeneration()}
	w, err := New(append(base, opts...)...)
	if err != nil {
		t.Fatalf("New: %v", err)
	}
	return w, clock
}

func player(t *testing.T, w *World) *component.Body {
	t.Helper()
	body, ok := w.Doodles().Body.Get(w.Player().Doodle)
	if !ok {
		t.Fatalf("player doodle missing")
	}
	return body
}

func putPlayer(t *testing.T, w *World, x, y float64, vel cp.Vector) {
	t.Helper()
	body := player(t, w)
	body.Collider.Position = w.pos(x, y)
	body.Velocity = vel
}

func grounded(t *testing.T, w *World) ecs.Entity {
	t.Helper()
	g, ok := w.Doodles().Grounded.Get(w.Player().Doodle)
	if !ok {
		t.Fatalf("player doodle missing")
	}
	return *g
}

func idle() component.Input {
	return component.Input{}
}

func countSounds(events []ecs.Event, id component.SoundID) int {
	n := 0
	for _, evt := range events {
		if s, ok := evt.Data.(component.SoundEvent); ok && s.ID == id {
			n++
		}
	}
	return n
}

func countType(events []ecs.Event, typ ecs.EventType) int {
	n := 0
	for _, evt := range events {
		if evt.Type == typ {
			n++
		}
	}
	return n
}
