package ui

import "treepick/internal/eventbus"

// EventMsg wraps a domain event for delivery into the Bubble Tea loop.
type EventMsg struct {
	Event eventbus.DomainEvent
}
