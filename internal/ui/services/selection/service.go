package selection

import (
	"treepick/internal/domain"
	"treepick/internal/ui/services/events"
)

// Service owns the current option tree and selection set and applies the
// engine functions to them. Every user-driven mutation is published on the
// bus; ingestion and tree replacement are not mutations and stay silent.
type Service struct {
	state *State
	bus   events.EventBus
}

// NewService creates a new selection service
func NewService(bus events.EventBus) *Service {
	return &Service{
		state: &State{},
		bus:   bus,
	}
}

// SetOptions replaces the option tree and recomputes the flattened leaf
// list. Selected values that no longer exist anywhere in the new tree are
// purged and the set reconciled, so a live-reloaded tree cannot leave stale
// entries behind.
func (s *Service) SetOptions(tree []domain.Option) {
	s.state.Options = tree
	s.state.Flat = domain.Flatten(tree)

	kept := make(Set, 0, len(s.state.Selected))
	for _, v := range s.state.Selected {
		if domain.Contains(tree, v) {
			kept = append(kept, v)
		}
	}
	s.state.Selected = Reconcile(tree, kept)
}

// Init sets the initial selection from the host-supplied raw value. No
// mutation event is published; nothing changed from the user's point of view.
func (s *Service) Init(raw domain.RawSelection) {
	if raw == nil {
		s.state.Selected = Set{}
		return
	}
	s.state.Selected = Reconcile(s.state.Options, dedupe(raw.Values()))
}

// Toggle toggles the node with the given value to the given checked state
// and publishes the mutation.
func (s *Service) Toggle(value string, nowChecked bool) {
	s.state.Selected = Toggle(s.state.Options, s.state.Selected, value, nowChecked)
	s.publishMutation()
}

// ToggleAll selects every leaf, or clears the selection when every leaf is
// already selected. The ancestor pass runs afterwards so parents stay
// consistent.
func (s *Service) ToggleAll() {
	s.state.Selected = Reconcile(s.state.Options, SelectAll(s.state.Flat, s.state.Selected))
	s.publishMutation()
}

// Status returns the tri-state checkbox status for an option.
func (s *Service) Status(opt domain.Option) Status {
	return CheckboxStatus(opt, s.state.Selected)
}

// Selected returns a copy of the current selection set.
func (s *Service) Selected() Set {
	return s.state.Selected.Clone()
}

// Options returns the current option tree.
func (s *Service) Options() []domain.Option {
	return s.state.Options
}

// Flat returns the flattened leaf list.
func (s *Service) Flat() []domain.Option {
	return s.state.Flat
}

// AllSelected reports whether every flattened leaf is selected. Used by the
// select-all affordance to decide its own checkbox state.
func (s *Service) AllSelected() bool {
	if len(s.state.Flat) == 0 {
		return false
	}
	for _, opt := range s.state.Flat {
		if !s.state.Selected.Contains(opt.Value) {
			return false
		}
	}
	return true
}

func (s *Service) publishMutation() {
	s.bus.Publish(SelectionMutatedEvent{
		Selected: s.state.Selected.Clone(),
		Total:    len(s.state.Selected),
	})
}
