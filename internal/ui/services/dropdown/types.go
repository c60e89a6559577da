package dropdown

// State holds the open/closed flag and the pending-change flag.
type State struct {
	IsOpen     bool
	HasChanges bool
}

// Options configures the controller's affordances and emission policy.
type Options struct {
	// ChangeOnClose batches change notifications until the dropdown closes.
	// When false, every mutation emits immediately.
	ChangeOnClose bool
	// ChangeBtn shows the explicit confirm affordance.
	ChangeBtn bool
	// SelectAllBtn shows the select-all affordance.
	SelectAllBtn bool
}

// GlobalPressEvent is published by the host for every pointer press anywhere
// on screen, with the widget-bounds verdict already computed. The controller
// only cares about presses outside the widget while it is open.
type GlobalPressEvent struct {
	Inside bool
	X, Y   int
}

// OpenedEvent is published when the dropdown expands.
type OpenedEvent struct{}

// ClosedEvent is published when the dropdown collapses.
type ClosedEvent struct{}
