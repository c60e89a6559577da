package selection

import "treepick/internal/domain"

// State holds selection state
type State struct {
	Options  []domain.Option
	Flat     []domain.Option
	Selected Set
}

// SelectionMutatedEvent is published on every user-driven selection change.
type SelectionMutatedEvent struct {
	Selected []string
	Total    int
}
