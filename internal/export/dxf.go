package export

import (
	"fmt"

	"github.com/yofu/dxf"
	"github.com/yofu/dxf/color"

	"github.com/piwi3910/JigCut/internal/model"
)

// DXF layer names.
const (
	layerCut    = "CUT"
	layerSheet  = "SHEET"
	layerNumber = "NUMBERS"
)

// ExportDXF writes the tile outlines of the printed piece sheets as closed
// polylines for a cutting plotter. Units are mm with the origin at the
// bottom-left of the first page; later pages are stacked below it with a
// page-height gap so each sheet can be cut on its own.
func ExportDXF(path string, puzzle model.Puzzle, settings model.Settings) error {
	layout, err := NewPrintLayout(puzzle, settings.PrintTileSize)
	if err != nil {
		return err
	}

	d := dxf.NewDrawing()
	if _, err := d.AddLayer(layerSheet, color.White, dxf.DefaultLineType, false); err != nil {
		return fmt.Errorf("failed to add layer %s: %w", layerSheet, err)
	}
	if _, err := d.AddLayer(layerNumber, color.Blue, dxf.DefaultLineType, false); err != nil {
		return fmt.Errorf("failed to add layer %s: %w", layerNumber, err)
	}
	if _, err := d.AddLayer(layerCut, color.Red, dxf.DefaultLineType, true); err != nil {
		return fmt.Errorf("failed to add layer %s: %w", layerCut, err)
	}

	for page := 1; page <= layout.Pages; page++ {
		// DXF y grows upward; page 1 sits at the top.
		base := -float64(page-1) * (pageHeight + tileGap*5)

		if err := d.ChangeLayer(layerSheet); err != nil {
			return err
		}
		if _, err := d.LwPolyline(true, rectVertices(0, base, pageWidth, pageHeight)...); err != nil {
			return fmt.Errorf("failed to draw page %d: %w", page, err)
		}

		for _, slot := range layout.PageSlots(page) {
			// Flip from top-left page coordinates to DXF coordinates
			x := slot.X
			y := base + pageHeight - slot.Y - slot.H

			if err := d.ChangeLayer(layerCut); err != nil {
				return err
			}
			if _, err := d.LwPolyline(true, rectVertices(x, y, slot.W, slot.H)...); err != nil {
				return fmt.Errorf("failed to draw piece %d: %w", slot.Index+1, err)
			}

			if err := d.ChangeLayer(layerNumber); err != nil {
				return err
			}
			if _, err := d.Text(fmt.Sprintf("%d", slot.Index+1), x+0.5, y-2.5, 0, 2); err != nil {
				return fmt.Errorf("failed to label piece %d: %w", slot.Index+1, err)
			}
		}
	}

	if err := d.SaveAs(path); err != nil {
		return fmt.Errorf("failed to save DXF: %w", err)
	}
	return nil
}

// rectVertices returns the four corners of a rectangle, counter-clockwise
// from the bottom-left.
func rectVertices(x, y, w, h float64) [][]float64 {
	return [][]float64{
		{x, y},
		{x + w, y},
		{x + w, y + h},
		{x, y + h},
	}
}
