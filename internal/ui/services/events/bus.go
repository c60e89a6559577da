package events

import (
	"fmt"
	"sync"
)

// Bus is a simple event bus for UI services. Handlers run synchronously on
// the caller's goroutine; the widget is single-threaded and toggle handling
// must complete before the next render.
type Bus struct {
	mu        sync.Mutex
	nextID    int
	listeners map[string][]listener
}

type listener struct {
	id      int
	handler func(interface{})
}

// NewBus creates a new event bus
func NewBus() *Bus {
	return &Bus{
		listeners: make(map[string][]listener),
	}
}

// Subscribe registers a listener for an event type and returns a function
// that removes it again.
func (b *Bus) Subscribe(eventType string, handler func(interface{})) func() {
	b.mu.Lock()
	defer b.mu.Unlock()

	b.nextID++
	id := b.nextID
	b.listeners[eventType] = append(b.listeners[eventType], listener{id: id, handler: handler})

	return func() {
		b.mu.Lock()
		defer b.mu.Unlock()

		ls := b.listeners[eventType]
		for i, l := range ls {
			if l.id == id {
				b.listeners[eventType] = append(ls[:i], ls[i+1:]...)
				break
			}
		}
	}
}

// Publish sends an event to all listeners
func (b *Bus) Publish(event interface{}) {
	eventType := getEventType(event)

	b.mu.Lock()
	ls := make([]listener, len(b.listeners[eventType]))
	copy(ls, b.listeners[eventType])
	b.mu.Unlock()

	for _, l := range ls {
		l.handler(event)
	}
}

// getEventType extracts the type name from an event
func getEventType(event interface{}) string {
	return fmt.Sprintf("%T", event)
}
