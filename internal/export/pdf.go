package export

import (
	"bytes"
	"fmt"
	"image/png"
	"math"

	"github.com/go-pdf/fpdf"

	"github.com/piwi3910/JigCut/internal/model"
)

// ExportPDF writes the puzzle as printable piece sheets. Every piece is drawn
// at the print tile size with a dashed cut guide, followed by a summary page
// with generation statistics and a coverage heat map.
func ExportPDF(path string, puzzle model.Puzzle, settings model.Settings) error {
	layout, err := NewPrintLayout(puzzle, settings.PrintTileSize)
	if err != nil {
		return err
	}

	pdf := fpdf.New("L", "mm", "A4", "")
	pdf.SetAutoPageBreak(false, marginBottom)

	for page := 1; page <= layout.Pages; page++ {
		pdf.AddPage()
		if err := renderPiecePage(pdf, puzzle, layout, page); err != nil {
			return err
		}
	}

	pdf.AddPage()
	renderSummaryPage(pdf, puzzle, settings)

	return pdf.OutputFileAndClose(path)
}

// renderPiecePage draws one sheet of tiles.
func renderPiecePage(pdf *fpdf.Fpdf, puzzle model.Puzzle, layout PrintLayout, page int) error {
	pdf.SetFont("Helvetica", "B", 14)
	pdf.SetTextColor(0, 0, 0)
	pdf.SetXY(marginLeft, marginTop)
	title := fmt.Sprintf("%s: pieces, page %d of %d", puzzleTitle(puzzle), page, layout.Pages)
	pdf.CellFormat(pageWidth-marginLeft-marginRight, headerHeight, title, "", 0, "L", false, 0, "")

	pdf.SetFont("Helvetica", "", 10)
	pdf.SetXY(marginLeft, marginTop+headerHeight)
	stats := fmt.Sprintf("Pieces: %d | Tile: %.0f x %.0f mm | Cut along the dashed lines",
		len(puzzle.Pieces), layout.TileW, layout.TileH)
	pdf.CellFormat(pageWidth-marginLeft-marginRight, 5, stats, "", 0, "L", false, 0, "")

	for _, slot := range layout.PageSlots(page) {
		if err := drawTile(pdf, slot); err != nil {
			return err
		}
	}

	drawFooter(pdf)
	return nil
}

// drawTile places a piece image and its cut guide.
func drawTile(pdf *fpdf.Fpdf, slot TileSlot) error {
	if slot.Piece.Image != nil {
		var buf bytes.Buffer
		if err := png.Encode(&buf, slot.Piece.Image); err != nil {
			return fmt.Errorf("failed to encode piece %s: %w", slot.Piece.ID, err)
		}
		imgName := fmt.Sprintf("piece_%s_%d", slot.Piece.ID, slot.Index)
		opts := fpdf.ImageOptions{ImageType: "PNG"}
		pdf.RegisterImageOptionsReader(imgName, opts, &buf)
		pdf.ImageOptions(imgName, slot.X, slot.Y, slot.W, slot.H, false, opts, 0, "")
	} else {
		pdf.SetFillColor(230, 230, 230)
		pdf.Rect(slot.X, slot.Y, slot.W, slot.H, "F")
	}

	// Cut guide
	pdf.SetDrawColor(80, 80, 80)
	pdf.SetLineWidth(0.2)
	pdf.SetDashPattern([]float64{1.5, 1}, 0)
	pdf.Rect(slot.X, slot.Y, slot.W, slot.H, "D")
	pdf.SetDashPattern([]float64{}, 0)

	// Piece number below the tile, inside the gap
	pdf.SetFont("Helvetica", "", 5)
	pdf.SetTextColor(120, 120, 120)
	pdf.SetXY(slot.X, slot.Y+slot.H+0.2)
	pdf.CellFormat(slot.W, 2.5, fmt.Sprintf("%d", slot.Index+1), "", 0, "R", false, 0, "")
	pdf.SetTextColor(0, 0, 0)
	return nil
}

// renderSummaryPage draws the statistics table and the coverage heat map.
func renderSummaryPage(pdf *fpdf.Fpdf, puzzle model.Puzzle, settings model.Settings) {
	pdf.SetFont("Helvetica", "B", 16)
	pdf.SetTextColor(0, 0, 0)
	pdf.SetXY(marginLeft, marginTop)
	pdf.CellFormat(pageWidth-marginLeft-marginRight, 10, "Generation Summary", "", 0, "L", false, 0, "")

	pdf.SetDrawColor(0, 0, 0)
	pdf.SetLineWidth(0.5)
	pdf.Line(marginLeft, marginTop+12, pageWidth-marginRight, marginTop+12)

	y := marginTop + 18
	res := puzzle.Result

	status := "Complete"
	if !res.Complete {
		status = fmt.Sprintf("Incomplete (%d cells below minimum)", res.Coverage.Below(res.MinCoverage))
	}

	summaryItems := []struct {
		label string
		value string
	}{
		{"Pieces", fmt.Sprintf("%d", len(puzzle.Pieces))},
		{"Attempts", fmt.Sprintf("%d of %d", res.Attempts, settings.MaxAttempts)},
		{"Coverage", status},
		{"Minimum Coverage", fmt.Sprintf("%d (reached %d)", res.MinCoverage, res.Coverage.Min())},
		{"Maximum Coverage", fmt.Sprintf("%d", res.Coverage.Max())},
		{"Source Image", fmt.Sprintf("%d x %d px", puzzle.Scale.ImageWidth, puzzle.Scale.ImageHeight)},
		{"Board", fmt.Sprintf("%.0f x %.0f px", puzzle.Scale.BoardWidth, puzzle.Scale.BoardHeight)},
		{"Piece Size", fmt.Sprintf("%d x %d px on screen, %d x %d px in source", puzzle.PieceW, puzzle.PieceH, res.PieceWidth, res.PieceHeight)},
		{"Coverage Cell", fmt.Sprintf("%d px (%d x %d cells)", res.Coverage.CellSize, res.Coverage.Cols, res.Coverage.Rows)},
	}

	pdf.SetFont("Helvetica", "", 10)
	for _, item := range summaryItems {
		pdf.SetXY(marginLeft+5, y)
		pdf.CellFormat(45, 6, item.label+":", "", 0, "L", false, 0, "")
		pdf.SetFont("Helvetica", "B", 10)
		pdf.CellFormat(80, 6, item.value, "", 0, "L", false, 0, "")
		pdf.SetFont("Helvetica", "", 10)
		y += 7
	}

	// Heat map on the right half of the page
	mapX := marginLeft + 140
	mapY := marginTop + 18
	mapW := pageWidth - marginRight - mapX
	mapH := pageHeight - marginBottom - footerHeight - mapY - 10
	drawCoverageMap(pdf, res.Coverage, res.MinCoverage, mapX, mapY, mapW, mapH)

	drawFooter(pdf)
}

// drawCoverageMap renders the coverage counters as a grid of colored cells
// scaled to fit the given box.
func drawCoverageMap(pdf *fpdf.Fpdf, cov model.CoverageSnapshot, minCoverage int, x, y, w, h float64) {
	if cov.Cols == 0 || cov.Rows == 0 {
		return
	}

	pdf.SetFont("Helvetica", "B", 12)
	pdf.SetXY(x, y)
	pdf.CellFormat(w, 7, "Coverage Map", "", 0, "L", false, 0, "")
	y += 9
	h -= 9

	cell := math.Min(w/float64(cov.Cols), h/float64(cov.Rows))
	maxCount := cov.Max()
	showCounts := cell >= 4

	pdf.SetLineWidth(0.1)
	pdf.SetDrawColor(255, 255, 255)
	for row := 0; row < cov.Rows; row++ {
		for col := 0; col < cov.Cols; col++ {
			n := cov.At(col, row)
			c := heatColor(n, minCoverage, maxCount)
			cx := x + float64(col)*cell
			cy := y + float64(row)*cell
			pdf.SetFillColor(c.R, c.G, c.B)
			pdf.Rect(cx, cy, cell, cell, "FD")

			if showCounts {
				pdf.SetFont("Helvetica", "", math.Min(6, cell*1.2))
				pdf.SetTextColor(0, 0, 0)
				pdf.SetXY(cx, cy)
				pdf.CellFormat(cell, cell, fmt.Sprintf("%d", n), "", 0, "C", false, 0, "")
			}
		}
	}

	pdf.SetDrawColor(100, 100, 100)
	pdf.SetLineWidth(0.4)
	pdf.Rect(x, y, cell*float64(cov.Cols), cell*float64(cov.Rows), "D")
	pdf.SetTextColor(0, 0, 0)
}

func drawFooter(pdf *fpdf.Fpdf) {
	pdf.SetFont("Helvetica", "I", 8)
	pdf.SetTextColor(120, 120, 120)
	pdf.SetXY(marginLeft, pageHeight-marginBottom)
	pdf.CellFormat(pageWidth-marginLeft-marginRight, 4, "Generated by JigCut", "", 0, "C", false, 0, "")
	pdf.SetTextColor(0, 0, 0)
}

func puzzleTitle(puzzle model.Puzzle) string {
	if puzzle.Name != "" {
		return puzzle.Name
	}
	return "Puzzle"
}
