package dropdown

import (
	"fmt"

	"treepick/internal/eventbus"
	"treepick/internal/ui/services/events"
	"treepick/internal/ui/services/selection"
)

// Service is the open/close and change controller. It tracks whether the
// dropdown is expanded and whether a change notification is owed to the
// host, and decides when to emit it: on close (the default) or immediately
// after every mutation.
type Service struct {
	state       *State
	opts        Options
	bus         events.EventBus
	domainBus   eventbus.EventBus
	selectionFn func() selection.Set

	unsubPress    func()
	unsubMutation func()
}

// NewService creates a new dropdown controller
func NewService(bus events.EventBus, domainBus eventbus.EventBus, opts Options) *Service {
	return &Service{
		state:     &State{},
		opts:      opts,
		bus:       bus,
		domainBus: domainBus,
	}
}

// SetSelectionFunction sets the function that supplies the current selection
// for change notifications.
func (s *Service) SetSelectionFunction(fn func() selection.Set) {
	s.selectionFn = fn
}

// Attach acquires the controller's bus subscriptions: the document-wide
// pointer press stream and the selection mutation stream. Idempotent.
func (s *Service) Attach() {
	if s.unsubPress != nil {
		return
	}
	s.unsubPress = s.bus.Subscribe(fmt.Sprintf("%T", GlobalPressEvent{}), func(e interface{}) {
		if press, ok := e.(GlobalPressEvent); ok && !press.Inside {
			s.OutsidePress()
		}
	})
	s.unsubMutation = s.bus.Subscribe(fmt.Sprintf("%T", selection.SelectionMutatedEvent{}), func(e interface{}) {
		if _, ok := e.(selection.SelectionMutatedEvent); ok {
			s.markChanged()
		}
	})
}

// Detach releases the subscriptions acquired by Attach, exactly once. A
// detached controller keeps no dangling global listener.
func (s *Service) Detach() {
	if s.unsubPress != nil {
		s.unsubPress()
		s.unsubPress = nil
	}
	if s.unsubMutation != nil {
		s.unsubMutation()
		s.unsubMutation = nil
	}
}

// IsOpen reports whether the dropdown is expanded.
func (s *Service) IsOpen() bool {
	return s.state.IsOpen
}

// HasChanges reports whether a change notification is owed.
func (s *Service) HasChanges() bool {
	return s.state.HasChanges
}

// ToggleOpen flips the open/closed flag. Closing emits per the policy.
func (s *Service) ToggleOpen() {
	if s.state.IsOpen {
		s.Close()
		return
	}
	s.state.IsOpen = true
	s.bus.Publish(OpenedEvent{})
	s.domainBus.Publish(eventbus.DropdownOpenedEvent{})
}

// Close collapses the dropdown and emits the pending change, if any.
func (s *Service) Close() {
	if !s.state.IsOpen {
		return
	}
	s.state.IsOpen = false
	s.bus.Publish(ClosedEvent{})
	s.domainBus.Publish(eventbus.DropdownClosedEvent{})

	if s.opts.ChangeOnClose && s.state.HasChanges {
		s.emit()
	}
}

// Confirm is the explicit confirm affordance: it always forces the dropdown
// closed, which triggers emission per the policy.
func (s *Service) Confirm() {
	if s.state.IsOpen {
		s.Close()
	}
}

// OutsidePress handles a pointer press outside the widget boundary. It only
// matters while the dropdown is open.
func (s *Service) OutsidePress() {
	if s.state.IsOpen {
		s.Close()
	}
}

// markChanged records that the selection mutated. With batching disabled the
// notification goes out immediately, open or not.
func (s *Service) markChanged() {
	s.state.HasChanges = true
	if !s.opts.ChangeOnClose {
		s.emit()
	}
}

func (s *Service) emit() {
	var selected selection.Set
	if s.selectionFn != nil {
		selected = s.selectionFn()
	}
	s.domainBus.Publish(eventbus.SelectionChangedEvent{Selected: selected})
	s.state.HasChanges = false
}
