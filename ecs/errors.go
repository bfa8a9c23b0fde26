package ecs

import "errors"

var (
	// ErrEntityPoolExhausted is returned by entity creation when every id is
	// currently live. Recoverable: destroy an entity and retry.
	ErrEntityPoolExhausted = errors.New("ecs: out of available entities")

	// ErrMaxComponentTypes is returned when registering a component type
	// would exceed the world's component-type capacity.
	ErrMaxComponentTypes = errors.New("ecs: component type capacity exceeded")

	// ErrComponentTypeNotRegistered is returned when a component operation
	// names a type that was never registered with the world.
	ErrComponentTypeNotRegistered = errors.New("ecs: component type not registered")

	// ErrDuplicateComponent is returned when attaching a component type an
	// entity already has.
	ErrDuplicateComponent = errors.New("ecs: entity already has component")

	// ErrComponentNotPresent is returned by an explicit detach of a
	// component the entity does not have.
	ErrComponentNotPresent = errors.New("ecs: entity does not have component")
)
