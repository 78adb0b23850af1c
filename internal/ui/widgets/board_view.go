package widgets

import (
	"image"
	"image/color"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/canvas"
	"fyne.io/fyne/v2/widget"

	"github.com/piwi3910/JigCut/internal/board"
	"github.com/piwi3910/JigCut/internal/model"
)

const (
	trayGap     = 8  // Space between tray tiles
	trayColumns = 5  // Tray width in tiles
	boardMargin = 16 // Space between board and tray
)

// BoardView shows the reference image as the board and the puzzle tiles in a
// tray beside it. Tiles are stacked in the order kept by a board.Stack.
type BoardView struct {
	widget.BaseWidget

	// OnMoved runs after a tile was dragged to a new spot, with the
	// arrangement from before the drag.
	OnMoved func(before map[string]fyne.Position, beforeOrder []string)

	session   *board.Session
	stack     *board.Stack
	reference *canvas.Image
	outline   *canvas.Rectangle
	boardSize fyne.Size
	tiles     map[string]*PieceTile

	pressedPositions map[string]fyne.Position
	pressedOrder     []string
}

// NewBoardView creates an empty board bound to a session.
func NewBoardView(session *board.Session) *BoardView {
	outline := canvas.NewRectangle(color.NRGBA{R: 0, G: 0, B: 0, A: 10})
	outline.StrokeColor = color.NRGBA{R: 100, G: 100, B: 100, A: 255}
	outline.StrokeWidth = 2

	v := &BoardView{
		session: session,
		stack:   board.NewStack(session),
		outline: outline,
		tiles:   make(map[string]*PieceTile),
	}
	v.ExtendBaseWidget(v)
	return v
}

// SetPuzzle replaces the board contents. The reference image is shown at
// boardSize and the pieces are placed in the tray in their shuffled order.
func (v *BoardView) SetPuzzle(reference image.Image, boardSize fyne.Size, pieces []model.Piece) {
	v.boardSize = boardSize
	v.reference = nil
	if reference != nil {
		v.reference = canvas.NewImageFromImage(reference)
		v.reference.FillMode = canvas.ImageFillStretch
		v.reference.ScaleMode = canvas.ImageScaleSmooth
		v.reference.Translucency = 0.6
	}

	v.stack = board.NewStack(v.session)
	v.tiles = make(map[string]*PieceTile, len(pieces))
	ids := make([]string, len(pieces))
	for i, p := range pieces {
		tile := NewPieceTile(p)
		tile.OnPressed = v.tilePressed
		tile.OnReleased = v.tileReleased
		v.tiles[p.ID] = tile
		ids[i] = p.ID
	}
	v.ArrangeInTray(ids)
}

// ArrangeInTray puts the given tiles back in the tray in that order, the
// last one on top.
func (v *BoardView) ArrangeInTray(ids []string) {
	if len(ids) == 0 {
		v.Refresh()
		return
	}
	tile := v.tiles[ids[0]].MinSize()
	width := trayColumns*(tile.Width+trayGap) - trayGap
	origin := fyne.NewPos(v.boardSize.Width+boardMargin, 0)

	positions := board.TrayLayout(len(ids), tile, origin, width, trayGap)
	for i, id := range ids {
		t, ok := v.tiles[id]
		if !ok {
			continue
		}
		t.Move(positions[i])
		v.stack.Raise(id)
	}
	v.Refresh()
}

// Positions returns the current position of every tile.
func (v *BoardView) Positions() map[string]fyne.Position {
	pos := make(map[string]fyne.Position, len(v.tiles))
	for id, t := range v.tiles {
		pos[id] = t.Position()
	}
	return pos
}

// Order returns tile ids from bottom to top.
func (v *BoardView) Order() []string {
	return v.stack.Order()
}

// Restore puts tiles back at recorded positions and stacking order. Unknown
// ids are ignored.
func (v *BoardView) Restore(positions map[string]fyne.Position, order []string) {
	for id, p := range positions {
		if t, ok := v.tiles[id]; ok {
			t.Move(p)
		}
	}
	for _, id := range order {
		if _, ok := v.tiles[id]; ok {
			v.stack.Raise(id)
		}
	}
	v.Refresh()
}

// Tile returns the tile for a piece id.
func (v *BoardView) Tile(id string) (*PieceTile, bool) {
	t, ok := v.tiles[id]
	return t, ok
}

// Len returns the number of tiles.
func (v *BoardView) Len() int {
	return len(v.tiles)
}

func (v *BoardView) tilePressed(t *PieceTile) {
	v.pressedPositions = v.Positions()
	v.pressedOrder = v.stack.Order()
	v.stack.Raise(t.Piece.ID)
	v.Refresh()
}

func (v *BoardView) tileReleased(t *PieceTile, _ fyne.Position, moved bool) {
	before, beforeOrder := v.pressedPositions, v.pressedOrder
	v.pressedPositions, v.pressedOrder = nil, nil
	if !moved {
		return
	}
	v.Refresh()
	if v.OnMoved != nil {
		v.OnMoved(before, beforeOrder)
	}
}

func (v *BoardView) CreateRenderer() fyne.WidgetRenderer {
	return &boardViewRenderer{v: v}
}

type boardViewRenderer struct {
	v *BoardView
}

func (r *boardViewRenderer) Layout(fyne.Size) {
	r.v.outline.Move(fyne.NewPos(0, 0))
	r.v.outline.Resize(r.v.boardSize)
	if r.v.reference != nil {
		r.v.reference.Move(fyne.NewPos(0, 0))
		r.v.reference.Resize(r.v.boardSize)
	}
}

// MinSize covers the board and every tile, wherever it was dragged.
func (r *boardViewRenderer) MinSize() fyne.Size {
	size := r.v.boardSize
	for _, t := range r.v.tiles {
		end := t.Position().Add(t.Size())
		size.Width = max(size.Width, end.X)
		size.Height = max(size.Height, end.Y)
	}
	return size
}

func (r *boardViewRenderer) Refresh() {
	r.Layout(r.v.Size())
	if r.v.reference != nil {
		r.v.reference.Refresh()
	}
	r.v.outline.Refresh()
}

// Objects lists the board first and the tiles bottom to top, so the
// most recently raised tile draws last and receives pointer events first.
func (r *boardViewRenderer) Objects() []fyne.CanvasObject {
	objects := make([]fyne.CanvasObject, 0, len(r.v.tiles)+2)
	if r.v.reference != nil {
		objects = append(objects, r.v.reference)
	}
	objects = append(objects, r.v.outline)
	for _, id := range r.v.stack.Order() {
		objects = append(objects, r.v.tiles[id])
	}
	return objects
}

func (r *boardViewRenderer) Destroy() {}
