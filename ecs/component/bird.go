package component

// Bird is an enemy flying horizontally across the world.
type Bird struct {
	Body     Body
	Lifetime TTL
}
