package ecs

import "testing"

func toSet(ents []Entity) map[Entity]struct{} {
	m := make(map[Entity]struct{}, len(ents))
	for _, e := range ents {
		m[e] = struct{}{}
	}
	return m
}

func TestArenaEntityLifecycle(t *testing.T) {
	cases := []struct {
		name         string
		create       int
		destroyIndex int // -1 = none
	}{
		{"single", 1, 0},
		{"three_create_destroy_middle", 3, 1},
		{"none_destroy", 2, -1},
	}

	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			a := NewArena()
			ents := make([]Entity, 0, c.create)
			for i := 0; i < c.create; i++ {
				ents = append(ents, a.Insert())
			}
			if a.Len() != c.create {
				t.Fatalf("expected %d entities, got %d", c.create, a.Len())
			}
			if c.destroyIndex >= 0 {
				if !a.Remove(ents[c.destroyIndex]) {
					t.Fatalf("Remove should return true for alive entity")
				}
				if a.IsAlive(ents[c.destroyIndex]) {
					t.Fatalf("entity should not be alive after removal")
				}
				if a.Remove(ents[c.destroyIndex]) {
					t.Fatalf("second Remove should be a no-op")
				}
				if a.Len() != c.create-1 {
					t.Fatalf("expected %d entities, got %d", c.create-1, a.Len())
				}
			}
			set := toSet(a.IDs())
			for i, e := range ents {
				_, listed := set[e]
				if listed != (i != c.destroyIndex) {
					t.Fatalf("entity %v listed=%v", e, listed)
				}
			}
		})
	}
}

func TestZeroEntityIsInvalid(t *testing.T) {
	a := NewArena()
	var zero Entity
	if zero.Valid() || a.IsAlive(zero) {
		t.Fatalf("zero entity must never be alive")
	}
	if e := a.Insert(); !e.Valid() {
		t.Fatalf("issued entity %v should be valid", e)
	}
}

func TestSlotReuseWaitsForRecycle(t *testing.T) {
	a := NewArena()
	col := NewColumn[int](a)

	first := a.Insert()
	col.Set(first, 1)
	a.Remove(first)

	second := a.Insert()
	if second.id() == first.id() {
		t.Fatalf("slot reused before Recycle")
	}

	a.Recycle()
	third := a.Insert()
	if third.id() != first.id() {
		t.Fatalf("expected slot %d to be reused after Recycle, got %d", first.id(), third.id())
	}
	if third == first {
		t.Fatalf("reused slot must carry a new generation")
	}
	if _, ok := col.Get(first); ok {
		t.Fatalf("stale handle must not resolve")
	}
	if col.Set(first, 5) {
		t.Fatalf("Set through a stale handle must fail")
	}
	if _, ok := col.Get(third); ok {
		t.Fatalf("new entity must not inherit the old value")
	}
}

func TestColumnsClearedOnRemove(t *testing.T) {
	a := NewArena()
	ints := NewColumn[int](a)
	strs := NewColumn[string](a)

	e1 := a.Insert()
	e2 := a.Insert()
	ints.Set(e1, 10)
	strs.Set(e1, "a")
	ints.Set(e2, 20)
	strs.Set(e2, "b")

	a.Remove(e1)
	if ints.Has(e1) || strs.Has(e1) {
		t.Fatalf("removed entity still has values")
	}
	v, ok := ints.Get(e2)
	if !ok || *v != 20 {
		t.Fatalf("expected 20 for e2, got %v ok=%v", v, ok)
	}
	s, ok := strs.Get(e2)
	if !ok || *s != "b" {
		t.Fatalf("expected b for e2, got %v ok=%v", s, ok)
	}
}

func TestColumnPointerWritesThrough(t *testing.T) {
	a := NewArena()
	col := NewColumn[float64](a)
	e := a.Insert()
	col.Set(e, 1.5)

	v, _ := col.Get(e)
	*v += 2
	got, _ := col.Get(e)
	if *got != 3.5 {
		t.Fatalf("expected 3.5, got %v", *got)
	}
}

func TestIDsSnapshotSurvivesRemoval(t *testing.T) {
	a := NewArena()
	for i := 0; i < 5; i++ {
		a.Insert()
	}

	visited := 0
	seen := map[Entity]bool{}
	for _, e := range a.IDs() {
		if seen[e] {
			t.Fatalf("entity %v visited twice", e)
		}
		seen[e] = true
		visited++
		a.Remove(e)
	}
	if visited != 5 {
		t.Fatalf("expected to visit 5 entities, visited %d", visited)
	}
	if a.Len() != 0 {
		t.Fatalf("expected empty arena, got %d", a.Len())
	}
}

func TestQueries(t *testing.T) {
	tests := []struct {
		name string
		run  func(t *testing.T)
	}{
		{
			name: "query2_all_present",
			run: func(t *testing.T) {
				a := NewArena()
				ka, kb := NewColumn[int](a), NewColumn[string](a)
				e := a.Insert()
				ka.Set(e, 1)
				kb.Set(e, "x")
				va, vb, ok := Query2(e, ka, kb)
				if !ok || *va != 1 || *vb != "x" {
					t.Fatalf("unexpected query result %v %v %v", va, vb, ok)
				}
			},
		},
		{
			name: "query3_missing_field",
			run: func(t *testing.T) {
				a := NewArena()
				ka, kb, kc := NewColumn[int](a), NewColumn[int](a), NewColumn[int](a)
				e := a.Insert()
				ka.Set(e, 1)
				kb.Set(e, 2)
				if _, _, _, ok := Query3(e, ka, kb, kc); ok {
					t.Fatalf("query with a missing field must fail")
				}
			},
		},
		{
			name: "query4_stale",
			run: func(t *testing.T) {
				a := NewArena()
				ka, kb, kc, kd := NewColumn[int](a), NewColumn[int](a), NewColumn[int](a), NewColumn[int](a)
				e := a.Insert()
				ka.Set(e, 1)
				kb.Set(e, 2)
				kc.Set(e, 3)
				kd.Set(e, 4)
				if _, _, _, vd, ok := Query4(e, ka, kb, kc, kd); !ok || *vd != 4 {
					t.Fatalf("expected live query to succeed")
				}
				a.Remove(e)
				if _, _, _, _, ok := Query4(e, ka, kb, kc, kd); ok {
					t.Fatalf("stale query must fail")
				}
			},
		},
	}

	for _, tc := range tests {
		t.Run(tc.name, tc.run)
	}
}

func TestEventQueue(t *testing.T) {
	var q EventQueue
	if q.Drain() != nil {
		t.Fatalf("empty queue should drain to nil")
	}
	q.Push(Event{Type: "a", Data: 1})
	q.Push(Event{Type: "b", Data: 2})
	if q.Len() != 2 {
		t.Fatalf("expected 2 events, got %d", q.Len())
	}
	got := q.Drain()
	if len(got) != 2 || got[0].Type != "a" || got[1].Type != "b" {
		t.Fatalf("unexpected drain order %+v", got)
	}
	if q.Len() != 0 {
		t.Fatalf("queue should be empty after drain")
	}
}
