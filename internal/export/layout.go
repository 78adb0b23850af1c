// Package export writes print outputs for a generated puzzle: piece sheets,
// answer-key labels, a coverage workbook and cut lines. Nothing written here
// is ever read back by JigCut.
package export

import (
	"fmt"
	"math"

	"github.com/piwi3910/JigCut/internal/model"
)

// Page layout constants (A4 landscape in mm).
const (
	pageWidth    = 297.0
	pageHeight   = 210.0
	marginLeft   = 15.0
	marginRight  = 15.0
	marginTop    = 15.0
	marginBottom = 15.0
	headerHeight = 12.0
	drawAreaTop  = marginTop + headerHeight + 5.0
	tileGap      = 4.0 // Space between printed tiles for cutting
	footerHeight = 6.0
)

// TileSlot is the printed position of one piece.
type TileSlot struct {
	Piece model.Piece
	Index int     // Position in the shuffled piece list
	Page  int     // 1-based page number
	Slot  int     // 0-based slot on the page, row-major
	X, Y  float64 // Top-left corner in mm
	W, H  float64
}

// PrintLayout places every piece of a puzzle on A4 landscape pages.
type PrintLayout struct {
	TileW   float64
	TileH   float64
	Cols    int
	Rows    int
	PerPage int
	Pages   int
	Slots   []TileSlot
}

// NewPrintLayout lays out the puzzle's pieces in shuffled order. Tiles are
// tileSize mm wide and keep the on-screen aspect ratio.
func NewPrintLayout(puzzle model.Puzzle, tileSize float64) (PrintLayout, error) {
	if len(puzzle.Pieces) == 0 {
		return PrintLayout{}, fmt.Errorf("no pieces to lay out")
	}
	if tileSize <= 0 {
		tileSize = model.DefaultSettings().PrintTileSize
	}

	tileW := tileSize
	tileH := tileSize
	if puzzle.PieceW > 0 && puzzle.PieceH > 0 {
		tileH = tileSize * float64(puzzle.PieceH) / float64(puzzle.PieceW)
	}

	drawW := pageWidth - marginLeft - marginRight
	drawH := pageHeight - drawAreaTop - marginBottom - footerHeight
	cols := int(math.Floor((drawW + tileGap) / (tileW + tileGap)))
	rows := int(math.Floor((drawH + tileGap) / (tileH + tileGap)))
	if cols < 1 || rows < 1 {
		return PrintLayout{}, fmt.Errorf("tile %.1f x %.1f mm does not fit on the page", tileW, tileH)
	}

	l := PrintLayout{
		TileW:   tileW,
		TileH:   tileH,
		Cols:    cols,
		Rows:    rows,
		PerPage: cols * rows,
	}
	l.Pages = (len(puzzle.Pieces) + l.PerPage - 1) / l.PerPage

	// Center the grid horizontally
	gridW := float64(cols)*(tileW+tileGap) - tileGap
	offsetX := marginLeft + (drawW-gridW)/2

	l.Slots = make([]TileSlot, len(puzzle.Pieces))
	for i, p := range puzzle.Pieces {
		slot := i % l.PerPage
		col := slot % cols
		row := slot / cols
		l.Slots[i] = TileSlot{
			Piece: p,
			Index: i,
			Page:  i/l.PerPage + 1,
			Slot:  slot,
			X:     offsetX + float64(col)*(tileW+tileGap),
			Y:     drawAreaTop + float64(row)*(tileH+tileGap),
			W:     tileW,
			H:     tileH,
		}
	}
	return l, nil
}

// PageSlots returns the slots printed on the given 1-based page.
func (l PrintLayout) PageSlots(page int) []TileSlot {
	if page < 1 || page > l.Pages {
		return nil
	}
	start := (page - 1) * l.PerPage
	end := min(start+l.PerPage, len(l.Slots))
	return l.Slots[start:end]
}

// rgb is a color for fpdf and excelize fills.
type rgb struct {
	R, G, B int
}

func (c rgb) hex() string {
	return fmt.Sprintf("#%02X%02X%02X", c.R, c.G, c.B)
}

// heatColor maps a coverage counter to a color. Cells under minCoverage are
// red; covered cells fade from light to dark green as the count grows.
func heatColor(count, minCoverage, maxCount int) rgb {
	if count < minCoverage {
		return rgb{R: 244, G: 67, B: 54}
	}
	span := maxCount - minCoverage
	t := 1.0
	if span > 0 {
		t = float64(count-minCoverage) / float64(span)
	}
	lerp := func(a, b int) int { return a + int(math.Round(t*float64(b-a))) }
	return rgb{R: lerp(200, 27), G: lerp(230, 94), B: lerp(201, 32)}
}
