package ecs

import "testing"

type testValue struct {
	N int
}

// checkBijection verifies the store's entity<->position mappings are exact
// inverses over the live entries, with positions covering [0, len).
func checkBijection(t *testing.T, s *store[testValue]) {
	t.Helper()
	if len(s.values) != len(s.entities) {
		t.Fatalf("dense arrays out of sync: %d values, %d entities", len(s.values), len(s.entities))
	}
	if len(s.index) != len(s.entities) {
		t.Fatalf("index has %d entries, want %d", len(s.index), len(s.entities))
	}
	for pos, e := range s.entities {
		got, ok := s.index[e]
		if !ok {
			t.Fatalf("entity %d at position %d missing from index", e, pos)
		}
		if got != pos {
			t.Fatalf("entity %d: index says position %d, dense array says %d", e, got, pos)
		}
	}
}

func TestStoreAddGet(t *testing.T) {
	s := newStore[testValue]()
	if err := s.add(3, testValue{N: 30}); err != nil {
		t.Fatalf("add: %v", err)
	}
	if err := s.add(7, testValue{N: 70}); err != nil {
		t.Fatalf("add: %v", err)
	}
	checkBijection(t, s)

	v, ok := s.get(3)
	if !ok || v.N != 30 {
		t.Errorf("get(3) = %v, %v; want N=30, true", v, ok)
	}
	if _, ok := s.get(5); ok {
		t.Error("get(5) reported a value for an absent entity")
	}
}

func TestStoreDuplicateAdd(t *testing.T) {
	s := newStore[testValue]()
	if err := s.add(1, testValue{N: 1}); err != nil {
		t.Fatalf("add: %v", err)
	}
	if err := s.add(1, testValue{N: 2}); err != ErrDuplicateComponent {
		t.Errorf("second add returned %v, want ErrDuplicateComponent", err)
	}
	if v, _ := s.get(1); v.N != 1 {
		t.Errorf("duplicate add overwrote the value: got %d", v.N)
	}
}

func TestStoreRemoveMissing(t *testing.T) {
	s := newStore[testValue]()
	if err := s.remove(9); err != ErrComponentNotPresent {
		t.Errorf("remove of absent entity returned %v, want ErrComponentNotPresent", err)
	}
}

func TestStoreSwapRemove(t *testing.T) {
	s := newStore[testValue]()
	for i := 0; i < 5; i++ {
		if err := s.add(Entity(i), testValue{N: i * 10}); err != nil {
			t.Fatalf("add: %v", err)
		}
	}

	// Removing a middle entry must move the last entry into its slot.
	if err := s.remove(1); err != nil {
		t.Fatalf("remove: %v", err)
	}
	checkBijection(t, s)
	if s.len() != 4 {
		t.Fatalf("len = %d, want 4", s.len())
	}
	if s.entities[1] != 4 {
		t.Errorf("position 1 holds entity %d, want 4 (the moved last entry)", s.entities[1])
	}
	for _, e := range []Entity{0, 2, 3, 4} {
		v, ok := s.get(e)
		if !ok || v.N != int(e)*10 {
			t.Errorf("get(%d) = %v, %v after swap-remove", e, v, ok)
		}
	}

	// Removing the last remaining entries keeps the mapping consistent.
	for _, e := range []Entity{4, 0, 3, 2} {
		if err := s.remove(e); err != nil {
			t.Fatalf("remove(%d): %v", e, err)
		}
		checkBijection(t, s)
	}
	if s.len() != 0 {
		t.Errorf("len = %d after removing everything", s.len())
	}
}

func TestStoreInterleavedMutations(t *testing.T) {
	s := newStore[testValue]()
	live := map[Entity]int{}

	ops := []struct {
		add bool
		e   Entity
		n   int
	}{
		{true, 0, 0}, {true, 1, 10}, {true, 2, 20},
		{false, 0, 0}, {true, 3, 30}, {false, 2, 0},
		{true, 0, 100}, {true, 4, 40}, {false, 3, 0},
		{false, 1, 0}, {true, 2, 200},
	}
	for i, op := range ops {
		if op.add {
			if err := s.add(op.e, testValue{N: op.n}); err != nil {
				t.Fatalf("op %d: add(%d): %v", i, op.e, err)
			}
			live[op.e] = op.n
		} else {
			if err := s.remove(op.e); err != nil {
				t.Fatalf("op %d: remove(%d): %v", i, op.e, err)
			}
			delete(live, op.e)
		}
		checkBijection(t, s)
		if s.len() != len(live) {
			t.Fatalf("op %d: len = %d, want %d", i, s.len(), len(live))
		}
		for e, n := range live {
			v, ok := s.get(e)
			if !ok || v.N != n {
				t.Fatalf("op %d: get(%d) = %v, %v; want N=%d", i, e, v, ok, n)
			}
		}
	}
}

func TestStoreOnEntityDestroyedIdempotent(t *testing.T) {
	s := newStore[testValue]()
	if err := s.add(1, testValue{N: 1}); err != nil {
		t.Fatalf("add: %v", err)
	}
	s.onEntityDestroyed(1)
	s.onEntityDestroyed(1) // must be a no-op, not a panic or corruption
	checkBijection(t, s)
	if s.len() != 0 {
		t.Errorf("len = %d, want 0", s.len())
	}
}
