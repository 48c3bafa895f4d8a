package ecs

// entityStore tracks slot generations and free slots. Destroyed slots wait in
// pending until recycle so a slot is never handed out again during the frame
// it was freed in.
type entityStore struct {
	gen     []generation
	free    []entityID
	pending []entityID
}

func (s *entityStore) create() Entity {
	var id entityID
	if n := len(s.free); n > 0 {
		id = s.free[n-1]
		s.free = s.free[:n-1]
	} else {
		s.gen = append(s.gen, 0)
		id = entityID(len(s.gen))
	}
	return makeEntity(id, s.gen[id-1])
}

func (s *entityStore) destroy(e Entity) bool {
	if !s.isAlive(e) {
		return false
	}
	id := e.id()
	s.gen[id-1]++
	s.pending = append(s.pending, id)
	return true
}

func (s *entityStore) isAlive(e Entity) bool {
	id := e.id()
	if id == 0 || int(id) > len(s.gen) {
		return false
	}
	return s.gen[id-1] == e.generation()
}

func (s *entityStore) recycle() {
	if len(s.pending) == 0 {
		return
	}
	s.free = append(s.free, s.pending...)
	s.pending = s.pending[:0]
}
