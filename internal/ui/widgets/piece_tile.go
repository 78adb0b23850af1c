package widgets

import (
	"image/color"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/canvas"
	"fyne.io/fyne/v2/container"
	"fyne.io/fyne/v2/driver/desktop"
	"fyne.io/fyne/v2/widget"

	"github.com/piwi3910/JigCut/internal/board"
	"github.com/piwi3910/JigCut/internal/model"
)

var (
	_ fyne.Draggable     = (*PieceTile)(nil)
	_ desktop.Mouseable  = (*PieceTile)(nil)
	_ desktop.Cursorable = (*PieceTile)(nil)
)

// PieceTile is a draggable puzzle piece. It must live in a container that
// does not lay out its children, so the position set while dragging sticks.
type PieceTile struct {
	widget.BaseWidget
	Piece model.Piece

	// OnPressed runs on pointer-down, before any movement.
	OnPressed func(t *PieceTile)
	// OnReleased runs when the gesture ends. moved is false for a plain click.
	OnReleased func(t *PieceTile, from fyne.Position, moved bool)

	gesture board.Gesture
	dragged bool
}

func NewPieceTile(piece model.Piece) *PieceTile {
	t := &PieceTile{Piece: piece}
	t.ExtendBaseWidget(t)
	t.Resize(t.MinSize())
	return t
}

func (t *PieceTile) CreateRenderer() fyne.WidgetRenderer {
	var img fyne.CanvasObject
	if t.Piece.Image != nil {
		ci := canvas.NewImageFromImage(t.Piece.Image)
		ci.FillMode = canvas.ImageFillStretch
		ci.ScaleMode = canvas.ImageScaleSmooth
		img = ci
	} else {
		img = canvas.NewRectangle(color.NRGBA{R: 200, G: 200, B: 200, A: 255})
	}

	border := canvas.NewRectangle(color.Transparent)
	border.StrokeColor = color.NRGBA{R: 30, G: 30, B: 30, A: 160}
	border.StrokeWidth = 1

	return widget.NewSimpleRenderer(container.NewStack(img, border))
}

// MinSize is the fixed on-screen piece size.
func (t *PieceTile) MinSize() fyne.Size {
	return fyne.NewSize(float32(t.Piece.Width), float32(t.Piece.Height))
}

// Dragging reports whether a gesture is in progress.
func (t *PieceTile) Dragging() bool {
	return t.gesture.State() == board.Dragging
}

// MouseDown starts a gesture and raises the tile.
func (t *PieceTile) MouseDown(ev *desktop.MouseEvent) {
	if ev.Button != desktop.MouseButtonPrimary && ev.Button != 0 {
		return
	}
	t.begin(t.Position().Add(ev.Position))
}

// MouseUp ends a gesture that never turned into a drag.
func (t *PieceTile) MouseUp(*desktop.MouseEvent) {
	if t.dragged {
		return
	}
	t.end()
}

// Dragged moves the tile so the grab point stays under the pointer.
func (t *PieceTile) Dragged(ev *fyne.DragEvent) {
	pointer := t.Position().Add(ev.Position)
	if t.gesture.State() == board.Idle {
		// Touch drivers deliver no MouseDown; start from where the drag began.
		t.begin(pointer.Subtract(ev.Dragged))
	}
	t.dragged = true
	if pos, ok := t.gesture.PointerMove(pointer); ok {
		t.Move(pos)
	}
}

// DragEnd finishes the gesture.
func (t *PieceTile) DragEnd() {
	t.end()
}

// Cursor shows a pointer over tiles.
func (t *PieceTile) Cursor() desktop.Cursor {
	return desktop.PointerCursor
}

func (t *PieceTile) begin(pointer fyne.Position) {
	if !t.gesture.PointerDown(pointer, t.Position()) {
		return
	}
	t.dragged = false
	if t.OnPressed != nil {
		t.OnPressed(t)
	}
}

func (t *PieceTile) end() {
	if t.gesture.State() != board.Dragging {
		return
	}
	moved := t.gesture.PointerUp()
	t.dragged = false
	if t.OnReleased != nil {
		t.OnReleased(t, t.gesture.Start(), moved)
	}
}
