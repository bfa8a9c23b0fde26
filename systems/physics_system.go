package systems

import (
	"ebiten-fall/components"
	"ebiten-fall/ecs"
)

// EventEntityFell is emitted when a rectangle falls past the bottom edge.
const EventEntityFell ecs.EventType = "entity_fell"

// EntityFellEvent reports which entity left the screen.
type EntityFellEvent struct {
	Entity ecs.Entity
}

func (e EntityFellEvent) Type() ecs.EventType { return EventEntityFell }

// PhysicsSystem integrates velocity into position for every entity carrying
// Transform and Physics.
type PhysicsSystem struct {
	required ecs.Signature
	floor    float64 // y past which an entity counts as fallen
}

// NewPhysicsSystem creates a physics system for the given component ids and
// screen height.
func NewPhysicsSystem(transformID, physicsID ecs.ComponentID, screenHeight int) *PhysicsSystem {
	return &PhysicsSystem{
		required: ecs.Signature(0).Set(transformID).Set(physicsID),
		floor:    float64(screenHeight),
	}
}

// RequiredSignature requires Transform and Physics.
func (s *PhysicsSystem) RequiredSignature() ecs.Signature { return s.required }

// Process moves every member down by its velocity and reports members that
// crossed the bottom edge.
func (s *PhysicsSystem) Process(dt float64, members []ecs.Entity, w *ecs.World) {
	for _, e := range members {
		transform, ok := ecs.Get[components.Transform](w, e)
		if !ok {
			continue
		}
		physics, ok := ecs.Get[components.Physics](w, e)
		if !ok {
			continue
		}
		transform.Y += physics.Velocity * dt
		if transform.Y > s.floor {
			w.Emit(EntityFellEvent{Entity: e})
		}
	}
}
