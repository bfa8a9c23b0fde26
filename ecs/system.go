package ecs

// System is a behavior that runs once per tick over every entity whose
// signature satisfies the system's requirement.
type System interface {
	// RequiredSignature reports the component types the system needs. It is
	// read once, when the system is registered, and is fixed thereafter.
	RequiredSignature() Signature

	// Process is called once per tick with the system's current members. It
	// may read and write any component through the world.
	Process(dt float64, members []Entity, w *World)
}

// systemEntry pairs a system's fixed requirement with the exact set of
// entities currently matching it. members is a dense slice and index maps
// each member to its position, so removal is by value, never by treating the
// entity id as a position.
type systemEntry struct {
	system   System
	required Signature
	members  []Entity
	index    map[Entity]int
}

func (se *systemEntry) insert(e Entity) {
	if _, ok := se.index[e]; ok {
		return
	}
	se.members = append(se.members, e)
	se.index[e] = len(se.members) - 1
}

func (se *systemEntry) remove(e Entity) {
	pos, ok := se.index[e]
	if !ok {
		return
	}
	last := len(se.members) - 1
	moved := se.members[last]
	se.members[pos] = moved
	se.index[moved] = pos
	se.members = se.members[:last]
	delete(se.index, e)
}

// systemRegistry owns the registered systems and incrementally maintains
// each one's membership set on every signature-affecting mutation.
type systemRegistry struct {
	entries []*systemEntry
}

func newSystemRegistry() *systemRegistry { return &systemRegistry{} }

func (r *systemRegistry) register(s System, required Signature) {
	r.entries = append(r.entries, &systemEntry{
		system:   s,
		required: required,
		index:    make(map[Entity]int),
	})
}

// onSignatureChanged reconciles every system's membership with e's new
// signature.
func (r *systemRegistry) onSignatureChanged(e Entity, sig Signature) {
	for _, entry := range r.entries {
		if sig.ContainsAll(entry.required) {
			entry.insert(e)
		} else {
			entry.remove(e)
		}
	}
}

func (r *systemRegistry) onEntityDestroyed(e Entity) {
	for _, entry := range r.entries {
		entry.remove(e)
	}
}

// runAll invokes each system in registration order. Iteration order within a
// member list is the insertion order of the swap-remove backed set, so it is
// not stable across removals.
func (r *systemRegistry) runAll(dt float64, w *World) {
	for _, entry := range r.entries {
		entry.system.Process(dt, entry.members, w)
	}
}

func (r *systemRegistry) members(s System) []Entity {
	for _, entry := range r.entries {
		if entry.system == s {
			return entry.members
		}
	}
	return nil
}
