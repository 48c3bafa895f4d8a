package component

// Projectile is a shot fired by the doodle.
type Projectile struct {
	Body     Body
	Lifetime TTL
}
