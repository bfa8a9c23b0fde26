package ecs

// Entity is an integer handle identifying a bundle of components. It carries
// no behavior itself. Handles are recycled after destruction, so a stale
// handle held across a destroy may later refer to a different entity.
type Entity uint32

// entityManager issues and recycles entity ids and tracks each entity's
// current component signature.
type entityManager struct {
	// available is a FIFO queue: ids are reissued oldest-destroyed-first.
	available  []Entity
	signatures []Signature
}

func newEntityManager(maxEntities int) *entityManager {
	m := &entityManager{
		available:  make([]Entity, maxEntities),
		signatures: make([]Signature, maxEntities),
	}
	for i := range m.available {
		m.available[i] = Entity(i)
	}
	return m
}

// create hands out the next free id with an empty signature.
func (m *entityManager) create() (Entity, error) {
	if len(m.available) == 0 {
		return 0, ErrEntityPoolExhausted
	}
	e := m.available[0]
	m.available = m.available[1:]
	return e, nil
}

// destroy returns e to the free pool and clears its signature. Destroying an
// id that is not currently live is a caller contract violation.
func (m *entityManager) destroy(e Entity) {
	m.signatures[e] = 0
	m.available = append(m.available, e)
}

func (m *entityManager) signature(e Entity) Signature { return m.signatures[e] }

func (m *entityManager) setSignature(e Entity, s Signature) { m.signatures[e] = s }
