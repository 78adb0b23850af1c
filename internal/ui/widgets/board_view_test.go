package widgets

import (
	"image"
	"testing"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/test"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/piwi3910/JigCut/internal/board"
	"github.com/piwi3910/JigCut/internal/model"
)

func newTestBoard(t *testing.T, ids ...string) (*BoardView, *board.Session) {
	t.Helper()
	test.NewTempApp(t)
	session := board.NewSession()
	v := NewBoardView(session)

	pieces := make([]model.Piece, len(ids))
	for i, id := range ids {
		pieces[i] = testPiece(id)
	}
	v.SetPuzzle(image.NewNRGBA(image.Rect(0, 0, 400, 300)), fyne.NewSize(400, 300), pieces)
	return v, session
}

func TestBoardView_TilesStartInTray(t *testing.T) {
	v, _ := newTestBoard(t, "a", "b", "c", "d", "e", "f")

	assert.Equal(t, 6, v.Len())
	assert.Equal(t, []string{"a", "b", "c", "d", "e", "f"}, v.Order())

	pos := v.Positions()
	assert.Equal(t, fyne.NewPos(400+boardMargin, 0), pos["a"])
	assert.Equal(t, fyne.NewPos(400+boardMargin+88, 0), pos["b"])
	// Sixth tile wraps to the second tray row
	assert.Equal(t, fyne.NewPos(400+boardMargin, 88), pos["f"])
	for _, p := range pos {
		assert.GreaterOrEqual(t, p.X, float32(400), "tray is beside the board")
	}
}

func TestBoardView_PressRaisesTile(t *testing.T) {
	v, session := newTestBoard(t, "a", "b", "c")
	before := session.Current()

	tile, ok := v.Tile("a")
	require.True(t, ok)
	tile.MouseDown(mouseDown(5, 5))

	assert.Equal(t, []string{"b", "c", "a"}, v.Order())
	assert.Greater(t, session.Current(), before)

	r := test.TempWidgetRenderer(t, v)
	objects := r.Objects()
	assert.Same(t, tile, objects[len(objects)-1], "raised tile draws last")
}

func TestBoardView_OnMovedReportsArrangementBeforeDrag(t *testing.T) {
	v, _ := newTestBoard(t, "a", "b")
	start := v.Positions()

	var gotPositions map[string]fyne.Position
	var gotOrder []string
	calls := 0
	v.OnMoved = func(before map[string]fyne.Position, beforeOrder []string) {
		calls++
		gotPositions, gotOrder = before, beforeOrder
	}

	tile, _ := v.Tile("a")
	tile.MouseDown(mouseDown(5, 5))
	tile.Dragged(drag(55, 45, 50, 40))
	tile.DragEnd()

	require.Equal(t, 1, calls)
	assert.Equal(t, start, gotPositions)
	assert.Equal(t, []string{"a", "b"}, gotOrder)
	assert.Equal(t, start["a"].Add(fyne.NewPos(50, 40)), v.Positions()["a"])

	// A click without movement does not record anything.
	tile.MouseDown(mouseDown(5, 5))
	tile.MouseUp(mouseDown(5, 5))
	assert.Equal(t, 1, calls)
}

func TestBoardView_Restore(t *testing.T) {
	v, _ := newTestBoard(t, "a", "b", "c")
	saved := v.Positions()
	savedOrder := v.Order()

	tile, _ := v.Tile("b")
	tile.MouseDown(mouseDown(1, 1))
	tile.Dragged(drag(101, 1, 100, 0))
	tile.DragEnd()
	require.NotEqual(t, saved, v.Positions())

	v.Restore(saved, savedOrder)
	assert.Equal(t, saved, v.Positions())
	assert.Equal(t, savedOrder, v.Order())
}

func TestBoardView_ArrangeInTray(t *testing.T) {
	v, _ := newTestBoard(t, "a", "b", "c")
	first := v.Positions()["a"]

	v.ArrangeInTray([]string{"c", "b", "a"})
	assert.Equal(t, first, v.Positions()["c"])
	assert.Equal(t, []string{"c", "b", "a"}, v.Order())
}

func TestBoardView_MinSizeCoversDraggedTiles(t *testing.T) {
	v, _ := newTestBoard(t, "a")
	tile, _ := v.Tile("a")
	tile.Move(fyne.NewPos(900, 700))
	v.Refresh()

	size := v.MinSize()
	assert.Equal(t, float32(980), size.Width)
	assert.Equal(t, float32(780), size.Height)
}
