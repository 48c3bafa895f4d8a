package component

import (
	"math"
	"testing"
)

func TestTTLTick(t *testing.T) {
	cases := []struct {
		name    string
		total   float64
		steps   []float64
		expired bool
		left    float64
	}{
		{"fresh", 1, nil, false, 1},
		{"partial", 1, []float64{0.25, 0.25}, false, 0.5},
		{"exact", 1, []float64{0.5, 0.5}, true, 0},
		{"overshoot", 0.5, []float64{2}, true, 0},
		{"sixty_frames", 1, repeat(1.0/60, 60), true, 0},
	}

	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			ttl := NewTTL(c.total)
			expired := false
			for _, dt := range c.steps {
				expired = ttl.Tick(dt)
			}
			if expired != c.expired {
				t.Fatalf("expected expired=%v, got %v", c.expired, expired)
			}
			if math.Abs(ttl.Remaining-c.left) > 1e-9 {
				t.Fatalf("expected %v left, got %v", c.left, ttl.Remaining)
			}
			if f := ttl.Fraction(); f < 0 || f > 1 {
				t.Fatalf("fraction out of range: %v", f)
			}
		})
	}
}

func repeat(v float64, n int) []float64 {
	out := make([]float64, n)
	for i := range out {
		out[i] = v
	}
	return out
}
