package eventbus

import (
	"log"
	"runtime/debug"
	"sync"

	"treepick/internal/domain"
)

// Re-export domain types for convenience
type DomainEvent = domain.DomainEvent
type EventType = domain.EventType

// Event type constants
const (
	EventSelectionChanged = domain.EventSelectionChanged
	EventOptionsReloaded  = domain.EventOptionsReloaded
	EventDropdownOpened   = domain.EventDropdownOpened
	EventDropdownClosed   = domain.EventDropdownClosed
	EventError            = domain.EventError
	EventConfigLoaded     = domain.EventConfigLoaded
	EventConfigSaved      = domain.EventConfigSaved
)

// Re-export domain event types
type SelectionChangedEvent = domain.SelectionChangedEvent
type OptionsReloadedEvent = domain.OptionsReloadedEvent
type DropdownOpenedEvent = domain.DropdownOpenedEvent
type DropdownClosedEvent = domain.DropdownClosedEvent
type ErrorEvent = domain.ErrorEvent
type ConfigLoadedEvent = domain.ConfigLoadedEvent
type ConfigSavedEvent = domain.ConfigSavedEvent

// EventHandler is a function that handles domain events
type EventHandler func(DomainEvent)

// EventBus is the interface for the event bus
type EventBus interface {
	Publish(event DomainEvent)
	Subscribe(eventType EventType, handler EventHandler) func()
}

// bus is the concrete implementation of EventBus
type bus struct {
	mu       sync.RWMutex
	nextID   int
	handlers map[EventType][]subscriber
}

type subscriber struct {
	id      int
	handler EventHandler
}

// New creates a new event bus. Dispatch is synchronous: the widget runs on a
// single event loop, and handlers must observe a consistent selection state.
func New() EventBus {
	return &bus{
		handlers: make(map[EventType][]subscriber),
	}
}

// Publish delivers the event to all subscribers in subscription order.
func (b *bus) Publish(event DomainEvent) {
	b.mu.RLock()
	subs := make([]subscriber, len(b.handlers[event.Type()]))
	copy(subs, b.handlers[event.Type()])
	b.mu.RUnlock()

	for _, sub := range subs {
		func() {
			defer func() {
				if r := recover(); r != nil {
					log.Printf("Event handler panic for %s: %v\nStack: %s", event.Type(), r, debug.Stack())
				}
			}()
			sub.handler(event)
		}()
	}
}

// Subscribe subscribes to events of a specific type.
// Returns an unsubscribe function; calling it more than once is harmless.
func (b *bus) Subscribe(eventType EventType, handler EventHandler) func() {
	b.mu.Lock()
	defer b.mu.Unlock()

	b.nextID++
	id := b.nextID
	b.handlers[eventType] = append(b.handlers[eventType], subscriber{id: id, handler: handler})

	return func() {
		b.mu.Lock()
		defer b.mu.Unlock()

		subs := b.handlers[eventType]
		for i, sub := range subs {
			if sub.id == id {
				b.handlers[eventType] = append(subs[:i], subs[i+1:]...)
				break
			}
		}
	}
}
