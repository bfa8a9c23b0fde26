package ecs

// ComponentID is a small stable integer identifying a component type across
// the process. Ids are assigned by the component registry on first
// registration and never reused.
type ComponentID uint8

// MaxComponentTypes is the width of a Signature and the hard upper bound on
// distinct component types per world. Worlds may be constructed with a
// smaller registered-type capacity.
const MaxComponentTypes = 64

// Signature is a bit set of component-type membership for one entity: bit i
// is set iff the entity currently owns a component of the type assigned id i.
type Signature uint64

// Set returns s with the bit for id set.
func (s Signature) Set(id ComponentID) Signature { return s | 1<<id }

// Clear returns s with the bit for id cleared.
func (s Signature) Clear(id ComponentID) Signature { return s &^ (1 << id) }

// Has reports whether the bit for id is set.
func (s Signature) Has(id ComponentID) bool { return s&(1<<id) != 0 }

// ContainsAll reports whether every bit set in required is also set in s.
// Systems express AND-only requirements, so this is the membership test.
func (s Signature) ContainsAll(required Signature) bool {
	return s&required == required
}
