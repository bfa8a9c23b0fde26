package ecs

// componentStore is the type-erased face of a typed store. It is how the
// registry purges a destroyed entity from every store without knowing the
// stored types.
type componentStore interface {
	onEntityDestroyed(e Entity)
}

// store holds one component type as a dense, gapless array of values plus an
// entity<->position bijection: values[index[e]] belongs to e, and entities[p]
// names the owner of position p for every p in [0, len(values)).
type store[T any] struct {
	values   []T
	entities []Entity       // position -> entity
	index    map[Entity]int // entity -> position
}

func newStore[T any]() *store[T] {
	return &store[T]{index: make(map[Entity]int)}
}

// add appends value at the last position and records both mapping
// directions. The entity must not already have an entry.
func (s *store[T]) add(e Entity, value T) error {
	if _, exists := s.index[e]; exists {
		return ErrDuplicateComponent
	}
	s.values = append(s.values, value)
	s.entities = append(s.entities, e)
	s.index[e] = len(s.values) - 1
	return nil
}

// remove swap-removes e's value: the value at the last position moves into
// the vacated slot, both mappings are fixed up for the moved entry, and the
// vacated entity's mappings are erased.
func (s *store[T]) remove(e Entity) error {
	pos, exists := s.index[e]
	if !exists {
		return ErrComponentNotPresent
	}
	last := len(s.values) - 1
	moved := s.entities[last]
	s.values[pos] = s.values[last]
	s.entities[pos] = moved
	s.index[moved] = pos
	s.values = s.values[:last]
	s.entities = s.entities[:last]
	delete(s.index, e)
	return nil
}

// get returns a pointer to e's value, or false if e has no entry. The
// pointer stays valid until the next add or remove on this store.
func (s *store[T]) get(e Entity) (*T, bool) {
	pos, exists := s.index[e]
	if !exists {
		return nil, false
	}
	return &s.values[pos], true
}

func (s *store[T]) len() int { return len(s.values) }

// onEntityDestroyed is remove without the not-present error: destroying an
// entity purges every store whether or not it held a value for it.
func (s *store[T]) onEntityDestroyed(e Entity) {
	_ = s.remove(e)
}
