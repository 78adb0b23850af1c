package ui

import (
	"testing"

	"fyne.io/fyne/v2"
)

func arrangement(xs ...float32) map[string]fyne.Position {
	pos := make(map[string]fyne.Position, len(xs))
	for i, x := range xs {
		pos[string(rune('a'+i))] = fyne.NewPos(x, 0)
	}
	return pos
}

func TestNewHistory(t *testing.T) {
	h := NewHistory()
	if h.maxDepth != defaultMaxDepth {
		t.Errorf("expected maxDepth %d, got %d", defaultMaxDepth, h.maxDepth)
	}
	if h.CanUndo() {
		t.Error("new history should not be undoable")
	}
	if h.CanRedo() {
		t.Error("new history should not be redoable")
	}
}

func TestPushAndUndo(t *testing.T) {
	h := NewHistory()

	// Arrangement before the drag
	h.Push(MakeSnapshot(arrangement(0), []string{"a"}, "initial"))

	if !h.CanUndo() {
		t.Fatal("should be able to undo after push")
	}

	current := MakeSnapshot(arrangement(120), []string{"a"}, "Move Piece")
	restored, ok := h.Undo(current)
	if !ok {
		t.Fatal("undo should succeed")
	}
	if restored.Positions["a"].X != 0 {
		t.Errorf("expected piece back at x=0, got %v", restored.Positions["a"].X)
	}
	if restored.Label != "initial" {
		t.Errorf("expected label 'initial', got %q", restored.Label)
	}
}

func TestUndoRedo(t *testing.T) {
	h := NewHistory()

	h.Push(MakeSnapshot(arrangement(0, 0), []string{"a", "b"}, "start"))
	h.Push(MakeSnapshot(arrangement(50, 0), []string{"b", "a"}, "moved a"))

	current := MakeSnapshot(arrangement(50, 70), []string{"a", "b"}, "moved b")

	restored, ok := h.Undo(current)
	if !ok {
		t.Fatal("first undo should succeed")
	}
	if restored.Positions["b"].X != 0 {
		t.Errorf("expected b at x=0, got %v", restored.Positions["b"].X)
	}
	if restored.Order[1] != "a" {
		t.Errorf("expected a on top, got %q", restored.Order[1])
	}

	if !h.CanRedo() {
		t.Fatal("should be able to redo")
	}
	redone, ok := h.Redo(restored)
	if !ok {
		t.Fatal("redo should succeed")
	}
	if redone.Positions["b"].X != 70 {
		t.Errorf("expected b at x=70 after redo, got %v", redone.Positions["b"].X)
	}
}

func TestPushClearsRedo(t *testing.T) {
	h := NewHistory()
	h.Push(MakeSnapshot(arrangement(0), nil, "start"))

	_, ok := h.Undo(MakeSnapshot(arrangement(10), nil, "current"))
	if !ok {
		t.Fatal("undo should succeed")
	}
	if !h.CanRedo() {
		t.Fatal("should be able to redo after undo")
	}

	h.Push(MakeSnapshot(arrangement(20), nil, "new drag"))
	if h.CanRedo() {
		t.Error("redo stack should be cleared after push")
	}
}

func TestMaxDepth(t *testing.T) {
	h := &History{maxDepth: 3}

	for i := 0; i < 5; i++ {
		h.Push(MakeSnapshot(arrangement(float32(i)), nil, ""))
	}

	if len(h.undoStack) != 3 {
		t.Errorf("expected undo stack length 3, got %d", len(h.undoStack))
	}
	if h.undoStack[0].Positions["a"].X != 2 {
		t.Errorf("oldest snapshots should be dropped first, got x=%v", h.undoStack[0].Positions["a"].X)
	}
}

func TestUndoEmpty(t *testing.T) {
	h := NewHistory()
	if _, ok := h.Undo(MakeSnapshot(nil, nil, "current")); ok {
		t.Error("undo on empty history should return false")
	}
}

func TestRedoEmpty(t *testing.T) {
	h := NewHistory()
	if _, ok := h.Redo(MakeSnapshot(nil, nil, "current")); ok {
		t.Error("redo on empty history should return false")
	}
}

func TestClear(t *testing.T) {
	h := NewHistory()
	h.Push(MakeSnapshot(nil, nil, "a"))
	h.Push(MakeSnapshot(nil, nil, "b"))
	h.Undo(MakeSnapshot(nil, nil, "current"))

	h.Clear()
	if h.CanUndo() || h.CanRedo() {
		t.Error("after clear, should not be able to undo or redo")
	}
}

func TestSnapshotCopiesInputs(t *testing.T) {
	positions := arrangement(10, 20)
	order := []string{"a", "b"}
	snap := MakeSnapshot(positions, order, "test")

	positions["a"] = fyne.NewPos(999, 999)
	order[0] = "z"

	if snap.Positions["a"].X != 10 {
		t.Error("snapshot positions should be independent of the original map")
	}
	if snap.Order[0] != "a" {
		t.Error("snapshot order should be independent of the original slice")
	}
}

func TestSnapshotKeepsNil(t *testing.T) {
	snap := MakeSnapshot(nil, nil, "nil test")
	if snap.Positions != nil {
		t.Error("nil positions should stay nil")
	}
	if snap.Order != nil {
		t.Error("nil order should stay nil")
	}
}
