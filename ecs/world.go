package ecs

// Default world capacities. Both are fixed when the world is constructed,
// not runtime-resizable.
const (
	DefaultMaxEntities       = 512
	DefaultMaxComponentTypes = 32
)

// World composes the entity allocator, the component registry and the system
// registry into the single mutation surface used by application code. Every
// signature-affecting mutation pushes the updated signature to the system
// registry before returning, so membership is never stale.
//
// A World is owned by one goroutine; no internal locking is performed.
type World struct {
	entities   *entityManager
	components *componentRegistry
	systems    *systemRegistry
	events     *EventManager
}

// NewWorld creates a world with the default capacities.
func NewWorld() *World {
	return NewWorldWithCapacity(DefaultMaxEntities, DefaultMaxComponentTypes)
}

// NewWorldWithCapacity creates a world holding at most maxEntities live
// entities and maxTypes distinct component types. maxTypes is capped at
// MaxComponentTypes, the width of a Signature.
func NewWorldWithCapacity(maxEntities, maxTypes int) *World {
	if maxTypes > MaxComponentTypes {
		maxTypes = MaxComponentTypes
	}
	return &World{
		entities:   newEntityManager(maxEntities),
		components: newComponentRegistry(maxTypes),
		systems:    newSystemRegistry(),
		events:     NewEventManager(),
	}
}

// NewEntity allocates a fresh entity with an empty signature.
func (w *World) NewEntity() (Entity, error) {
	return w.entities.create()
}

// DestroyEntity releases e's id back to the pool, purges e from every
// component store and drops it from every system's membership. Destroying an
// id that is not currently live is a caller contract violation.
func (w *World) DestroyEntity(e Entity) {
	w.entities.destroy(e)
	w.components.onEntityDestroyed(e)
	w.systems.onEntityDestroyed(e)
}

// Signature returns e's current component signature.
func (w *World) Signature(e Entity) Signature {
	return w.entities.signature(e)
}

// RegisterSystem appends s to the tick order with an empty membership set.
// The required signature is captured once, here.
func (w *World) RegisterSystem(s System) {
	w.systems.register(s, s.RequiredSignature())
}

// Members returns the entities currently matching s's requirement. The slice
// is the registry's own backing store; callers must not mutate it.
func (w *World) Members(s System) []Entity {
	return w.systems.members(s)
}

// Tick runs every registered system once, in registration order, over its
// current membership.
func (w *World) Tick(dt float64) {
	w.systems.runAll(dt, w)
}

// Events returns the world's event manager.
func (w *World) Events() *EventManager { return w.events }

// Emit dispatches an event to all subscribed handlers.
func (w *World) Emit(event Event) { w.events.Emit(event) }

// Assign attaches a value of component type T to e. The updated signature is
// pushed to every system before Assign returns.
func Assign[T any](w *World, e Entity, value T) error {
	s, id, err := storeFor[T](w)
	if err != nil {
		return err
	}
	if err := s.add(e, value); err != nil {
		return err
	}
	sig := w.entities.signature(e).Set(id)
	w.entities.setSignature(e, sig)
	w.systems.onSignatureChanged(e, sig)
	return nil
}

// Unassign detaches component type T from e. The updated signature is pushed
// to every system before Unassign returns.
func Unassign[T any](w *World, e Entity) error {
	s, id, err := storeFor[T](w)
	if err != nil {
		return err
	}
	if err := s.remove(e); err != nil {
		return err
	}
	sig := w.entities.signature(e).Clear(id)
	w.entities.setSignature(e, sig)
	w.systems.onSignatureChanged(e, sig)
	return nil
}

// Get returns a pointer to e's T value, or false if e has none. The pointer
// stays valid until the next mutation of T's store. Reading an absent
// component is normal control flow, not an error; calling Get with a type
// that was never registered is a programming error and panics.
func Get[T any](w *World, e Entity) (*T, bool) {
	s, _, err := storeFor[T](w)
	if err != nil {
		panic(err)
	}
	return s.get(e)
}
