package ecs

// column is the untyped side of a Column, used by Arena to clear every
// column of a removed entity.
type column interface {
	remove(id entityID)
}

// Arena is the store for one entity kind. It issues generational handles and
// owns any number of typed columns, one per field of the kind.
type Arena struct {
	entities entityStore
	live     SparseSet[Entity]
	columns  []column
}

// NewArena creates an empty arena.
func NewArena() *Arena {
	return &Arena{}
}

// Insert allocates a new entity. Columns are filled by the caller.
func (a *Arena) Insert() Entity {
	e := a.entities.create()
	a.live.Set(e.id(), e)
	return e
}

// Remove destroys e and drops its values from every column. Any handle to e
// held elsewhere becomes stale. Removing a stale handle is a no-op.
func (a *Arena) Remove(e Entity) bool {
	if !a.entities.destroy(e) {
		return false
	}
	id := e.id()
	a.live.Remove(id)
	for _, c := range a.columns {
		c.remove(id)
	}
	return true
}

// IsAlive reports whether e still refers to a live entity.
func (a *Arena) IsAlive(e Entity) bool {
	return a.entities.isAlive(e)
}

// IDs returns a snapshot of the live entities. The slice is owned by the
// caller, so removing entities while ranging over it is safe.
func (a *Arena) IDs() []Entity {
	out := make([]Entity, len(a.live.Values()))
	copy(out, a.live.Values())
	return out
}

// Len is the number of live entities.
func (a *Arena) Len() int {
	return a.live.Len()
}

// Recycle makes slots freed since the last call available to Insert.
func (a *Arena) Recycle() {
	a.entities.recycle()
}

// Column is one typed field of an entity kind.
type Column[T any] struct {
	arena *Arena
	set   SparseSet[T]
}

// NewColumn registers a column on a.
func NewColumn[T any](a *Arena) *Column[T] {
	c := &Column[T]{arena: a}
	a.columns = append(a.columns, c)
	return c
}

// Get returns the value for e, or false when e is stale or has no value.
// The pointer stays valid until the next Insert or Remove on the arena.
func (c *Column[T]) Get(e Entity) (*T, bool) {
	if c == nil || !c.arena.IsAlive(e) {
		return nil, false
	}
	v := c.set.Get(e.id())
	return v, v != nil
}

// Set stores v for e. It does nothing for a stale handle.
func (c *Column[T]) Set(e Entity, v T) bool {
	if c == nil || !c.arena.IsAlive(e) {
		return false
	}
	c.set.Set(e.id(), v)
	return true
}

// Has reports whether e is alive and has a value in c.
func (c *Column[T]) Has(e Entity) bool {
	_, ok := c.Get(e)
	return ok
}

func (c *Column[T]) remove(id entityID) {
	c.set.Remove(id)
}
