package ecs_test

import (
	"testing"

	"ebiten-fall/ecs"
)

const testEventType ecs.EventType = "test_event"

type testEvent struct {
	N int
}

func (e testEvent) Type() ecs.EventType { return testEventType }

func TestEventSubscribeAndEmit(t *testing.T) {
	em := ecs.NewEventManager()

	var got []int
	em.Subscribe(testEventType, func(ev ecs.Event) {
		got = append(got, ev.(testEvent).N)
	})
	em.Subscribe(testEventType, func(ev ecs.Event) {
		got = append(got, ev.(testEvent).N*10)
	})

	em.Emit(testEvent{N: 3})

	if len(got) != 2 || got[0] != 3 || got[1] != 30 {
		t.Errorf("handlers saw %v, want [3 30]", got)
	}
}

func TestEventUnsubscribe(t *testing.T) {
	em := ecs.NewEventManager()

	calls := 0
	id := em.Subscribe(testEventType, func(ecs.Event) { calls++ })
	em.Emit(testEvent{})
	em.Unsubscribe(testEventType, id)
	em.Emit(testEvent{})

	if calls != 1 {
		t.Errorf("handler ran %d times, want 1", calls)
	}
}

func TestEmitWithoutSubscribers(t *testing.T) {
	em := ecs.NewEventManager()
	em.Emit(testEvent{}) // must not panic
}

func TestWorldEmit(t *testing.T) {
	w := ecs.NewWorld()

	var seen ecs.Entity
	w.Events().Subscribe(testEventType, func(ev ecs.Event) {
		seen = ecs.Entity(ev.(testEvent).N)
	})
	w.Emit(testEvent{N: 7})

	if seen != 7 {
		t.Errorf("world emit delivered %d, want 7", seen)
	}
}
