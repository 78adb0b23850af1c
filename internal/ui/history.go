package ui

import "fyne.io/fyne/v2"

const defaultMaxDepth = 50

// Snapshot captures the board arrangement at a point in time.
type Snapshot struct {
	Positions map[string]fyne.Position // Tile position by piece ID
	Order     []string                 // Piece IDs from bottom to top
	Label     string                   // Human-readable description (e.g. "Move Piece")
}

// History manages undo/redo stacks of board arrangements.
type History struct {
	undoStack []Snapshot
	redoStack []Snapshot
	maxDepth  int
}

// NewHistory creates a History with the default max depth of 50.
func NewHistory() *History {
	return &History{
		maxDepth: defaultMaxDepth,
	}
}

// Push saves a snapshot onto the undo stack and clears the redo stack.
// This should be called before the modification is applied.
func (h *History) Push(s Snapshot) {
	h.undoStack = append(h.undoStack, s)
	if len(h.undoStack) > h.maxDepth {
		h.undoStack = h.undoStack[len(h.undoStack)-h.maxDepth:]
	}
	h.redoStack = nil
}

// Undo pops the most recent snapshot from the undo stack and pushes
// the current state onto the redo stack. Returns the snapshot to restore
// and true, or an empty snapshot and false if nothing to undo.
func (h *History) Undo(current Snapshot) (Snapshot, bool) {
	if len(h.undoStack) == 0 {
		return Snapshot{}, false
	}
	last := h.undoStack[len(h.undoStack)-1]
	h.undoStack = h.undoStack[:len(h.undoStack)-1]
	h.redoStack = append(h.redoStack, current)
	return last, true
}

// Redo pops the most recent snapshot from the redo stack and pushes
// the current state onto the undo stack.
func (h *History) Redo(current Snapshot) (Snapshot, bool) {
	if len(h.redoStack) == 0 {
		return Snapshot{}, false
	}
	last := h.redoStack[len(h.redoStack)-1]
	h.redoStack = h.redoStack[:len(h.redoStack)-1]
	h.undoStack = append(h.undoStack, current)
	return last, true
}

// CanUndo returns true if there is at least one snapshot to undo.
func (h *History) CanUndo() bool {
	return len(h.undoStack) > 0
}

// CanRedo returns true if there is at least one snapshot to redo.
func (h *History) CanRedo() bool {
	return len(h.redoStack) > 0
}

// Clear removes all undo and redo history. Called when a new puzzle replaces
// the board.
func (h *History) Clear() {
	h.undoStack = nil
	h.redoStack = nil
}

// MakeSnapshot creates a snapshot from the current arrangement with a label.
// The inputs are copied.
func MakeSnapshot(positions map[string]fyne.Position, order []string, label string) Snapshot {
	var pos map[string]fyne.Position
	if positions != nil {
		pos = make(map[string]fyne.Position, len(positions))
		for id, p := range positions {
			pos[id] = p
		}
	}
	var ord []string
	if order != nil {
		ord = make([]string, len(order))
		copy(ord, order)
	}
	return Snapshot{
		Positions: pos,
		Order:     ord,
		Label:     label,
	}
}
