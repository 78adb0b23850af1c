package widgets

import (
	"fmt"
	"image/color"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/canvas"
	"fyne.io/fyne/v2/container"
	"fyne.io/fyne/v2/widget"

	"github.com/piwi3910/JigCut/internal/model"
)

var (
	colorUnder   = color.NRGBA{R: 244, G: 67, B: 54, A: 220}  // red, below minimum
	colorLowHeat = color.NRGBA{R: 200, G: 230, B: 201, A: 255} // light green
	colorHiHeat  = color.NRGBA{R: 27, G: 94, B: 32, A: 255}    // dark green
)

// CoverageCanvas renders a coverage snapshot as a heat map.
type CoverageCanvas struct {
	widget.BaseWidget
	coverage    model.CoverageSnapshot
	minCoverage int
	maxWidth    float32
	maxHeight   float32
}

func NewCoverageCanvas(coverage model.CoverageSnapshot, minCoverage int, maxW, maxH float32) *CoverageCanvas {
	cc := &CoverageCanvas{
		coverage:    coverage,
		minCoverage: minCoverage,
		maxWidth:    maxW,
		maxHeight:   maxH,
	}
	cc.ExtendBaseWidget(cc)
	return cc
}

func (cc *CoverageCanvas) CreateRenderer() fyne.WidgetRenderer {
	return newCoverageCanvasRenderer(cc)
}

// cellSize returns the edge of one drawn cell.
func (cc *CoverageCanvas) cellSize() float32 {
	if cc.coverage.Cols == 0 || cc.coverage.Rows == 0 {
		return 0
	}
	return min(cc.maxWidth/float32(cc.coverage.Cols), cc.maxHeight/float32(cc.coverage.Rows))
}

type coverageCanvasRenderer struct {
	cc      *CoverageCanvas
	objects []fyne.CanvasObject
}

func newCoverageCanvasRenderer(cc *CoverageCanvas) *coverageCanvasRenderer {
	r := &coverageCanvasRenderer{cc: cc}
	r.rebuild()
	return r
}

func (r *coverageCanvasRenderer) rebuild() {
	r.objects = nil

	cov := r.cc.coverage
	cell := r.cc.cellSize()
	if cell <= 0 {
		return
	}
	maxCount := cov.Max()

	for row := 0; row < cov.Rows; row++ {
		for col := 0; col < cov.Cols; col++ {
			n := cov.At(col, row)
			px := float32(col) * cell
			py := float32(row) * cell

			rect := canvas.NewRectangle(HeatColor(n, r.cc.minCoverage, maxCount))
			rect.StrokeColor = color.NRGBA{R: 255, G: 255, B: 255, A: 120}
			rect.StrokeWidth = 0.5
			rect.Resize(fyne.NewSize(cell, cell))
			rect.Move(fyne.NewPos(px, py))
			r.objects = append(r.objects, rect)

			// Count (only if the cell is big enough)
			if cell >= 18 {
				label := canvas.NewText(fmt.Sprintf("%d", n), color.Black)
				label.TextSize = 9
				label.Move(fyne.NewPos(px+3, py+2))
				r.objects = append(r.objects, label)
			}
		}
	}

	border := canvas.NewRectangle(color.Transparent)
	border.StrokeColor = color.NRGBA{R: 100, G: 100, B: 100, A: 255}
	border.StrokeWidth = 2
	border.Resize(fyne.NewSize(cell*float32(cov.Cols), cell*float32(cov.Rows)))
	r.objects = append(r.objects, border)
}

func (r *coverageCanvasRenderer) Layout(size fyne.Size)        {}
func (r *coverageCanvasRenderer) Refresh()                     { r.rebuild() }
func (r *coverageCanvasRenderer) Destroy()                     {}
func (r *coverageCanvasRenderer) Objects() []fyne.CanvasObject { return r.objects }
func (r *coverageCanvasRenderer) MinSize() fyne.Size {
	cell := r.cc.cellSize()
	return fyne.NewSize(cell*float32(r.cc.coverage.Cols), cell*float32(r.cc.coverage.Rows))
}

// HeatColor maps a coverage counter to a fill color. Cells under
// minCoverage are red; covered cells darken as the count grows.
func HeatColor(count, minCoverage, maxCount int) color.NRGBA {
	if count < minCoverage {
		return colorUnder
	}
	t := float32(1)
	if span := maxCount - minCoverage; span > 0 {
		t = float32(count-minCoverage) / float32(span)
	}
	lerp := func(a, b uint8) uint8 { return uint8(float32(a) + t*(float32(b)-float32(a)) + 0.5) }
	return color.NRGBA{
		R: lerp(colorLowHeat.R, colorHiHeat.R),
		G: lerp(colorLowHeat.G, colorHiHeat.G),
		B: lerp(colorLowHeat.B, colorHiHeat.B),
		A: 255,
	}
}

// RenderCoverage builds the coverage panel for a generated puzzle: the heat
// map, where the pieces were cut from, and a short summary.
func RenderCoverage(puzzle *model.Puzzle, source fyne.CanvasObject) fyne.CanvasObject {
	if puzzle == nil || len(puzzle.Result.Coverage.Counts) == 0 {
		return widget.NewLabel("No puzzle yet. Open an image to generate one.")
	}

	res := puzzle.Result
	var items []fyne.CanvasObject

	header := widget.NewLabel(fmt.Sprintf(
		"Coverage: %d x %d cells of %d px, minimum %d, reached %d..%d",
		res.Coverage.Cols, res.Coverage.Rows, res.Coverage.CellSize,
		res.MinCoverage, res.Coverage.Min(), res.Coverage.Max(),
	))
	header.TextStyle = fyne.TextStyle{Bold: true}
	items = append(items, header, NewCoverageCanvas(res.Coverage, res.MinCoverage, 600, 400))

	if !res.Complete {
		warning := widget.NewLabel(fmt.Sprintf(
			"WARNING: stopped after %d attempts with %d cells below the minimum. Increase Max Attempts or the piece size.",
			res.Attempts, res.Coverage.Below(res.MinCoverage),
		))
		warning.Importance = widget.DangerImportance
		items = append(items, warning)
	}

	if source != nil {
		items = append(items, widget.NewSeparator())
		placementsHeader := widget.NewLabel(fmt.Sprintf("Placements (%d pieces of %d x %d source px)",
			len(res.Placements), res.PieceWidth, res.PieceHeight))
		placementsHeader.TextStyle = fyne.TextStyle{Bold: true}
		items = append(items, placementsHeader, source)
	}

	summary := widget.NewLabel(puzzle.Summary())
	summary.TextStyle = fyne.TextStyle{Bold: true}
	items = append(items, widget.NewSeparator(), summary)

	return container.NewVScroll(container.NewVBox(items...))
}
