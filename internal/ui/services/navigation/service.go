package navigation

import (
	"treepick/internal/ui/services/events"
)

// Service handles cursor movement over the visible dropdown rows.
type Service struct {
	state   *State
	bus     events.EventBus
	queryFn func() int // Function to get max index from query service
}

// NewService creates a new navigation service
func NewService(bus events.EventBus) *Service {
	return &Service{
		state: &State{
			ViewportHeight: 10, // Default, will be updated
		},
		bus: bus,
	}
}

// SetQueryFunction sets the function to query max index
func (s *Service) SetQueryFunction(fn func() int) {
	s.queryFn = fn
}

// GetCursor returns current cursor position
func (s *Service) GetCursor() int {
	return s.state.Cursor
}

// GetViewportOffset returns current viewport offset
func (s *Service) GetViewportOffset() int {
	return s.state.ViewportOffset
}

// GetViewportHeight returns current viewport height
func (s *Service) GetViewportHeight() int {
	return s.state.ViewportHeight
}

// SetViewportHeight updates viewport height
func (s *Service) SetViewportHeight(height int) {
	if height < 1 {
		height = 1
	}
	s.state.ViewportHeight = height
	s.ensureVisible()
}

// Navigate handles navigation in a direction
func (s *Service) Navigate(direction Direction) {
	oldCursor := s.state.Cursor

	switch direction {
	case DirectionUp:
		s.moveUp()
	case DirectionDown:
		s.moveDown()
	case DirectionHome:
		s.state.Cursor = 0
		s.state.ViewportOffset = 0
	case DirectionEnd:
		s.state.Cursor = s.maxIndex()
		s.ensureVisible()
	}

	if oldCursor != s.state.Cursor {
		s.bus.Publish(CursorMovedEvent{
			OldIndex: oldCursor,
			NewIndex: s.state.Cursor,
		})
	}
}

// MoveToIndex moves cursor to specific index
func (s *Service) MoveToIndex(index int) {
	oldCursor := s.state.Cursor
	s.state.Cursor = s.clampIndex(index)
	s.ensureVisible()

	if oldCursor != s.state.Cursor {
		s.bus.Publish(CursorMovedEvent{
			OldIndex: oldCursor,
			NewIndex: s.state.Cursor,
		})
	}
}

// Reset moves the cursor back to the first row, e.g. when the dropdown
// reopens or the row list changes shape.
func (s *Service) Reset() {
	s.state.Cursor = 0
	s.state.ViewportOffset = 0
}

func (s *Service) moveUp() {
	if s.state.Cursor > 0 {
		s.state.Cursor--
		s.ensureVisible()
	}
}

func (s *Service) moveDown() {
	if s.state.Cursor < s.maxIndex() {
		s.state.Cursor++
		s.ensureVisible()
	}
}

func (s *Service) maxIndex() int {
	if s.queryFn != nil {
		s.state.MaxIndex = s.queryFn()
	}
	return s.state.MaxIndex
}

func (s *Service) clampIndex(index int) int {
	if index < 0 {
		return 0
	}
	if max := s.maxIndex(); index > max {
		return max
	}
	return index
}

func (s *Service) ensureVisible() {
	if s.state.Cursor < s.state.ViewportOffset {
		s.state.ViewportOffset = s.state.Cursor
	} else if s.state.Cursor >= s.state.ViewportOffset+s.state.ViewportHeight {
		s.state.ViewportOffset = s.state.Cursor - s.state.ViewportHeight + 1
	}
}
