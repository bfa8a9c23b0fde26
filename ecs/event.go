package ecs

// EventType identifies different kinds of events.
type EventType string

// Event is implemented by anything dispatched through the EventManager.
type Event interface {
	Type() EventType
}

// EventHandler is a function that processes events.
type EventHandler func(Event)

type subscription struct {
	id      int
	handler EventHandler
}

// EventManager manages event subscriptions and dispatches. Handlers run
// synchronously on the goroutine that emits.
type EventManager struct {
	subscribers map[EventType][]subscription
	nextID      int
}

// NewEventManager creates a new event manager.
func NewEventManager() *EventManager {
	return &EventManager{subscribers: make(map[EventType][]subscription)}
}

// Subscribe registers a handler for a specific event type and returns an id
// usable with Unsubscribe.
func (em *EventManager) Subscribe(eventType EventType, handler EventHandler) int {
	em.nextID++
	em.subscribers[eventType] = append(em.subscribers[eventType], subscription{
		id:      em.nextID,
		handler: handler,
	})
	return em.nextID
}

// Unsubscribe removes the subscription with the given id.
func (em *EventManager) Unsubscribe(eventType EventType, id int) {
	subs := em.subscribers[eventType]
	for i, sub := range subs {
		if sub.id == id {
			em.subscribers[eventType] = append(subs[:i], subs[i+1:]...)
			if len(em.subscribers[eventType]) == 0 {
				delete(em.subscribers, eventType)
			}
			return
		}
	}
}

// Emit dispatches an event to all handlers subscribed to its type.
func (em *EventManager) Emit(event Event) {
	for _, sub := range em.subscribers[event.Type()] {
		sub.handler(event)
	}
}
