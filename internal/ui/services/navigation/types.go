package navigation

// State holds navigation state
type State struct {
	Cursor         int
	ViewportOffset int
	ViewportHeight int
	MaxIndex       int
}

// Direction of a navigation step
type Direction int

const (
	DirectionUp Direction = iota
	DirectionDown
	DirectionHome
	DirectionEnd
)

// CursorMovedEvent is published when the cursor lands on a new row.
type CursorMovedEvent struct {
	OldIndex int
	NewIndex int
}
