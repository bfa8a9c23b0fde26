package ecs

import (
	"fmt"
	"reflect"
)

// componentRegistry owns one store per registered component type, assigns
// each type a small stable id on first registration, and fans out
// entity-destroyed notifications to every store.
type componentRegistry struct {
	capacity int
	ids      map[reflect.Type]ComponentID
	stores   []componentStore // indexed by ComponentID
}

func newComponentRegistry(maxTypes int) *componentRegistry {
	return &componentRegistry{
		capacity: maxTypes,
		ids:      make(map[reflect.Type]ComponentID),
	}
}

func (r *componentRegistry) onEntityDestroyed(e Entity) {
	for _, s := range r.stores {
		s.onEntityDestroyed(e)
	}
}

// RegisterComponent assigns the next free component id to T and allocates
// its store. Registration is explicit and application-ordered, so ids are
// stable and under the caller's control. Registering an already-known type
// is an idempotent no-op returning the existing id.
func RegisterComponent[T any](w *World) (ComponentID, error) {
	r := w.components
	t := reflect.TypeFor[T]()
	if id, ok := r.ids[t]; ok {
		return id, nil
	}
	if len(r.stores) >= r.capacity {
		return 0, fmt.Errorf("%w: all %d type slots in use", ErrMaxComponentTypes, r.capacity)
	}
	id := ComponentID(len(r.stores))
	r.ids[t] = id
	r.stores = append(r.stores, newStore[T]())
	return id, nil
}

func storeFor[T any](w *World) (*store[T], ComponentID, error) {
	t := reflect.TypeFor[T]()
	id, ok := w.components.ids[t]
	if !ok {
		return nil, 0, fmt.Errorf("%w: %s", ErrComponentTypeNotRegistered, t)
	}
	return w.components.stores[id].(*store[T]), id, nil
}
