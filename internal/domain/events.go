package domain

// EventType represents the type of domain event
type EventType string

// Event types
const (
	EventSelectionChanged EventType = "SelectionChanged"
	EventOptionsReloaded  EventType = "OptionsReloaded"
	EventDropdownOpened   EventType = "DropdownOpened"
	EventDropdownClosed   EventType = "DropdownClosed"
	EventError            EventType = "Error"
	EventConfigLoaded     EventType = "ConfigLoaded"
	EventConfigSaved      EventType = "ConfigSaved"
)

// DomainEvent is the interface for all domain events
type DomainEvent interface {
	Type() EventType
}

// SelectionChangedEvent is the change notification owed to the host. It
// carries the full selection set, synthetic parent entries included.
type SelectionChangedEvent struct {
	Selected []string
}

func (e SelectionChangedEvent) Type() EventType { return EventSelectionChanged }

// OptionsReloadedEvent is emitted when the option tree is replaced, e.g.
// after the options file changed on disk.
type OptionsReloadedEvent struct {
	Options []Option
}

func (e OptionsReloadedEvent) Type() EventType { return EventOptionsReloaded }

// DropdownOpenedEvent is emitted when the widget expands.
type DropdownOpenedEvent struct{}

func (e DropdownOpenedEvent) Type() EventType { return EventDropdownOpened }

// DropdownClosedEvent is emitted when the widget collapses.
type DropdownClosedEvent struct{}

func (e DropdownClosedEvent) Type() EventType { return EventDropdownClosed }

// ErrorEvent is emitted when an error occurs
type ErrorEvent struct {
	Message string
	Err     error
}

func (e ErrorEvent) Type() EventType { return EventError }

// ConfigLoadedEvent is emitted when configuration is loaded
type ConfigLoadedEvent struct {
	Path string
}

func (e ConfigLoadedEvent) Type() EventType { return EventConfigLoaded }

// ConfigSavedEvent is emitted when configuration is saved
type ConfigSavedEvent struct{}

func (e ConfigSavedEvent) Type() EventType { return EventConfigSaved }
