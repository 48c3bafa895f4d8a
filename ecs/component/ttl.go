package component

// TTL is a countdown in simulation seconds. Systems remove the owning entity
// once it runs out.
type TTL struct {
	Remaining float64
	Total     float64
}

func NewTTL(seconds float64) TTL {
	return TTL{Remaining: seconds, Total: seconds}
}

// Tick counts down by dt and reports whether the lifetime ran out.
func (t *TTL) Tick(dt float64) bool {
	t.Remaining -= dt
	if t.Remaining <= 1e-9 {
		t.Remaining = 0
		return true
	}
	return false
}

// Fraction is the share of lifetime left, in [0, 1].
func (t TTL) Fraction() float64 {
	if t.Total <= 0 {
		return 0
	}
	return t.Remaining / t.Total
}
