package ecs

// Query2 fetches two fields of one entity. It fails as a whole when e is
// stale or either field is missing.
func Query2[A, B any](e Entity, a *Column[A], b *Column[B]) (*A, *B, bool) {
	va, ok := a.Get(e)
	if !ok {
		return nil, nil, false
	}
	vb, ok := b.Get(e)
	if !ok {
		return nil, nil, false
	}
	return va, vb, true
}

// Query3 fetches three fields of one entity.
func Query3[A, B, C any](e Entity, a *Column[A], b *Column[B], c *Column[C]) (*A, *B, *C, bool) {
	va, vb, ok := Query2(e, a, b)
	if !ok {
		return nil, nil, nil, false
	}
	vc, ok := c.Get(e)
	if !ok {
		return nil, nil, nil, false
	}
	return va, vb, vc, true
}

// Query4 fetches four fields of one entity.
func Query4[A, B, C, D any](e Entity, a *Column[A], b *Column[B], c *Column[C], d *Column[D]) (*A, *B, *C, *D, bool) {
	va, vb, vc, ok := Query3(e, a, b, c)
	if !ok {
		return nil, nil, nil, nil, false
	}
	vd, ok := d.Get(e)
	if !ok {
		return nil, nil, nil, nil, false
	}
	return va, vb, vc, vd, true
}
