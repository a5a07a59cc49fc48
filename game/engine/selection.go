package engine

// SelectionState enumerates the tile-selection state machine.
type SelectionState int

const (
	// SelectionIdle means no tile is armed.
	SelectionIdle SelectionState = iota
	// SelectionArmed means exactly one tile is highlighted, awaiting a
	// second choice.
	SelectionArmed
)

func (s SelectionState) String() string {
	switch s {
	case SelectionIdle:
		return "idle"
	case SelectionArmed:
		return "armed"
	default:
		return "unknown"
	}
}

// selector tracks the single armed tile by coordinate. The grid remains the
// sole owner of cell state; the selector only references it.
type selector struct {
	state SelectionState
	armed Point
}

// Arm marks the tile at p as the current selection.
func (s *selector) Arm(p Point) {
	s.state = SelectionArmed
	s.armed = p
}

// Disarm clears the selection.
func (s *selector) Disarm() {
	s.state = SelectionIdle
	s.armed = Point{}
}

// Armed returns the armed tile, if any.
func (s *selector) Armed() (Point, bool) {
	if s.state != SelectionArmed {
		return Point{}, false
	}
	return s.armed, true
}
