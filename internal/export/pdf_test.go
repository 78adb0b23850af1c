package export

import (
	"image"
	"image/color"
	"os"
	"path/filepath"
	"testing"

	"github.com/piwi3910/JigCut/internal/model"
)

// buildTestPuzzle creates a small generated puzzle with real tile images.
func buildTestPuzzle(n int) model.Puzzle {
	pieces := make([]model.Piece, n)
	for i := range pieces {
		img := image.NewNRGBA(image.Rect(0, 0, 80, 80))
		for y := 0; y < 80; y++ {
			for x := 0; x < 80; x++ {
				img.SetNRGBA(x, y, color.NRGBA{R: uint8(i * 20), G: uint8(x), B: uint8(y), A: 255})
			}
		}
		pl := model.Placement{Rect: model.Rect{X: i * 10, Y: i * 5, Width: 160, Height: 160}, Order: n - 1 - i}
		pieces[i] = model.NewPiece(pl, 80, 80, img)
	}

	return model.Puzzle{
		Name:   "harbour",
		Pieces: pieces,
		Result: model.GenerateResult{
			Attempts:    n,
			Complete:    false,
			MinCoverage: 2,
			PieceWidth:  160,
			PieceHeight: 160,
			Coverage: model.CoverageSnapshot{
				Cols: 3, Rows: 2, CellSize: 40,
				Counts: []int{2, 3, 1, 4, 2, 0},
			},
		},
		Scale:  model.BoardScale{BoardWidth: 400, BoardHeight: 300, ImageWidth: 800, ImageHeight: 600},
		PieceW: 80,
		PieceH: 80,
	}
}

func assertNonEmptyFile(t *testing.T, path string, minSize int64) {
	t.Helper()
	info, err := os.Stat(path)
	if err != nil {
		t.Fatalf("file was not created: %v", err)
	}
	if info.Size() < minSize {
		t.Errorf("file seems too small: %d bytes", info.Size())
	}
}

func TestExportPDF_CreatesFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "pieces.pdf")

	if err := ExportPDF(path, buildTestPuzzle(5), model.DefaultSettings()); err != nil {
		t.Fatalf("ExportPDF returned error: %v", err)
	}
	assertNonEmptyFile(t, path, 1000)
}

func TestExportPDF_EmptyPuzzle(t *testing.T) {
	path := filepath.Join(t.TempDir(), "empty.pdf")

	err := ExportPDF(path, model.Puzzle{}, model.DefaultSettings())
	if err == nil {
		t.Fatal("expected error for empty puzzle, got nil")
	}
	if _, statErr := os.Stat(path); statErr == nil {
		t.Error("no file should be written for an empty puzzle")
	}
}

func TestExportPDF_ManyPages(t *testing.T) {
	path := filepath.Join(t.TempDir(), "many.pdf")
	puzzle := buildTestPuzzle(40)

	if err := ExportPDF(path, puzzle, model.DefaultSettings()); err != nil {
		t.Fatalf("ExportPDF returned error: %v", err)
	}
	assertNonEmptyFile(t, path, 1000)
}

func TestExportPDF_PiecesWithoutImages(t *testing.T) {
	path := filepath.Join(t.TempDir(), "blank.pdf")
	puzzle := buildTestPuzzle(3)
	for i := range puzzle.Pieces {
		puzzle.Pieces[i].Image = nil
	}

	if err := ExportPDF(path, puzzle, model.DefaultSettings()); err != nil {
		t.Fatalf("ExportPDF returned error: %v", err)
	}
	assertNonEmptyFile(t, path, 500)
}

func TestNewPrintLayout_Grid(t *testing.T) {
	layout, err := NewPrintLayout(buildTestPuzzle(40), 40)
	if err != nil {
		t.Fatalf("NewPrintLayout returned error: %v", err)
	}

	// 267mm wide and 157mm tall with 4mm gaps fit 6 x 3 tiles of 40mm.
	if layout.Cols != 6 || layout.Rows != 3 {
		t.Errorf("expected 6x3 grid, got %dx%d", layout.Cols, layout.Rows)
	}
	if layout.Pages != 3 {
		t.Errorf("expected 3 pages, got %d", layout.Pages)
	}
	if got := len(layout.PageSlots(3)); got != 4 {
		t.Errorf("expected 4 tiles on the last page, got %d", got)
	}
	if layout.PageSlots(4) != nil {
		t.Error("expected no slots past the last page")
	}

	for _, s := range layout.Slots {
		if s.X < marginLeft || s.X+s.W > pageWidth-marginRight {
			t.Errorf("slot %d outside horizontal margins: x=%.1f", s.Index, s.X)
		}
		if s.Y < drawAreaTop || s.Y+s.H > pageHeight-marginBottom {
			t.Errorf("slot %d outside vertical margins: y=%.1f", s.Index, s.Y)
		}
	}
}

func TestNewPrintLayout_KeepsAspectRatio(t *testing.T) {
	puzzle := buildTestPuzzle(2)
	puzzle.PieceW, puzzle.PieceH = 100, 50

	layout, err := NewPrintLayout(puzzle, 30)
	if err != nil {
		t.Fatalf("NewPrintLayout returned error: %v", err)
	}
	if layout.TileW != 30 || layout.TileH != 15 {
		t.Errorf("expected 30x15 tiles, got %.1fx%.1f", layout.TileW, layout.TileH)
	}
}

func TestNewPrintLayout_TileTooLarge(t *testing.T) {
	if _, err := NewPrintLayout(buildTestPuzzle(1), 500); err == nil {
		t.Fatal("expected error for a tile larger than the page")
	}
}

func TestNewPrintLayout_DefaultTileSize(t *testing.T) {
	layout, err := NewPrintLayout(buildTestPuzzle(1), 0)
	if err != nil {
		t.Fatalf("NewPrintLayout returned error: %v", err)
	}
	if layout.TileW != model.DefaultSettings().PrintTileSize {
		t.Errorf("expected default tile size, got %.1f", layout.TileW)
	}
}

func TestHeatColor(t *testing.T) {
	under := heatColor(1, 2, 5)
	if under != (rgb{R: 244, G: 67, B: 54}) {
		t.Errorf("cells below minimum should be red, got %+v", under)
	}
	low := heatColor(2, 2, 5)
	high := heatColor(5, 2, 5)
	if low.G <= high.G {
		t.Errorf("higher coverage should be darker: low=%+v high=%+v", low, high)
	}
	if heatColor(3, 3, 3) != (rgb{R: 27, G: 94, B: 32}) {
		t.Error("a flat grid at the minimum should use the darkest green")
	}
	if got := (rgb{R: 255, G: 8, B: 171}).hex(); got != "#FF08AB" {
		t.Errorf("expected #FF08AB, got %s", got)
	}
}
