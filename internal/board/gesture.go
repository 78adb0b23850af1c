package board

import "fyne.io/fyne/v2"

// GestureState is the drag state of a single tile.
type GestureState int

const (
	Idle GestureState = iota
	Dragging
)

func (s GestureState) String() string {
	switch s {
	case Idle:
		return "idle"
	case Dragging:
		return "dragging"
	default:
		return "unknown"
	}
}

// Gesture follows one pointer drag of one tile. All positions are in the
// coordinate space of the tile's parent container.
type Gesture struct {
	state  GestureState
	offset fyne.Position // Pointer position relative to the tile origin
	start  fyne.Position
	last   fyne.Position
}

// State returns the current gesture state.
func (g *Gesture) State() GestureState {
	return g.state
}

// Offset returns the grab offset recorded by the last PointerDown.
func (g *Gesture) Offset() fyne.Position {
	return g.offset
}

// PointerDown starts a drag. It records where inside the tile the pointer
// grabbed it. A second PointerDown while already dragging is ignored and
// reports false.
func (g *Gesture) PointerDown(pointer, tilePos fyne.Position) bool {
	if g.state == Dragging {
		return false
	}
	g.state = Dragging
	g.offset = pointer.Subtract(tilePos)
	g.start = tilePos
	g.last = tilePos
	return true
}

// PointerMove returns the new tile position for the pointer. The tile keeps
// its grab offset. While idle the move is ignored and ok is false.
func (g *Gesture) PointerMove(pointer fyne.Position) (pos fyne.Position, ok bool) {
	if g.state != Dragging {
		return fyne.Position{}, false
	}
	g.last = pointer.Subtract(g.offset)
	return g.last, true
}

// PointerUp ends the drag and reports whether the tile actually moved.
func (g *Gesture) PointerUp() (moved bool) {
	if g.state != Dragging {
		return false
	}
	g.state = Idle
	return g.last != g.start
}

// Start returns the tile position at the beginning of the current or last drag.
func (g *Gesture) Start() fyne.Position {
	return g.start
}
