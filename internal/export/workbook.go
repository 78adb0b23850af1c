package export

import (
	"fmt"

	"github.com/xuri/excelize/v2"

	"github.com/piwi3910/JigCut/internal/model"
)

const (
	piecesSheet   = "Pieces"
	coverageSheet = "Coverage"
)

// ExportWorkbook writes an .xlsx workbook with one row per piece on the
// "Pieces" sheet and the coverage counters on the "Coverage" sheet. Cells
// that never reached the minimum coverage are highlighted.
func ExportWorkbook(path string, puzzle model.Puzzle) error {
	if len(puzzle.Pieces) == 0 && len(puzzle.Result.Coverage.Counts) == 0 {
		return fmt.Errorf("nothing to export")
	}

	f := excelize.NewFile()
	defer f.Close()

	if err := f.SetSheetName(f.GetSheetName(0), piecesSheet); err != nil {
		return fmt.Errorf("failed to rename sheet: %w", err)
	}
	if err := writePiecesSheet(f, puzzle); err != nil {
		return err
	}

	if _, err := f.NewSheet(coverageSheet); err != nil {
		return fmt.Errorf("failed to add coverage sheet: %w", err)
	}
	if err := writeCoverageSheet(f, puzzle.Result); err != nil {
		return err
	}

	if err := f.SaveAs(path); err != nil {
		return fmt.Errorf("failed to save workbook: %w", err)
	}
	return nil
}

func writePiecesSheet(f *excelize.File, puzzle model.Puzzle) error {
	headers := []interface{}{"Number", "ID", "Order", "X", "Y", "Width", "Height", "Display Width", "Display Height"}
	if err := f.SetSheetRow(piecesSheet, "A1", &headers); err != nil {
		return fmt.Errorf("failed to write header: %w", err)
	}

	headerStyle, err := f.NewStyle(&excelize.Style{
		Font: &excelize.Font{Bold: true},
		Fill: excelize.Fill{Type: "pattern", Color: []string{"#E6E6E6"}, Pattern: 1},
	})
	if err != nil {
		return fmt.Errorf("failed to create header style: %w", err)
	}
	if err := f.SetCellStyle(piecesSheet, "A1", "I1", headerStyle); err != nil {
		return fmt.Errorf("failed to style header: %w", err)
	}

	for i, p := range puzzle.Pieces {
		cell, err := excelize.CoordinatesToCellName(1, i+2)
		if err != nil {
			return err
		}
		row := []interface{}{
			i + 1, p.ID, p.Order,
			p.Source.X, p.Source.Y, p.Source.Width, p.Source.Height,
			p.Width, p.Height,
		}
		if err := f.SetSheetRow(piecesSheet, cell, &row); err != nil {
			return fmt.Errorf("failed to write piece %d: %w", i+1, err)
		}
	}

	if err := f.SetColWidth(piecesSheet, "B", "B", 12); err != nil {
		return err
	}
	return f.SetPanes(piecesSheet, &excelize.Panes{
		Freeze:      true,
		YSplit:      1,
		TopLeftCell: "A2",
		ActivePane:  "bottomLeft",
	})
}

func writeCoverageSheet(f *excelize.File, res model.GenerateResult) error {
	cov := res.Coverage
	maxCount := cov.Max()

	// Cache one style per distinct color
	styles := make(map[rgb]int)
	styleFor := func(c rgb) (int, error) {
		if id, ok := styles[c]; ok {
			return id, nil
		}
		id, err := f.NewStyle(&excelize.Style{
			Fill:      excelize.Fill{Type: "pattern", Color: []string{c.hex()}, Pattern: 1},
			Alignment: &excelize.Alignment{Horizontal: "center"},
		})
		if err != nil {
			return 0, fmt.Errorf("failed to create coverage style: %w", err)
		}
		styles[c] = id
		return id, nil
	}

	for row := 0; row < cov.Rows; row++ {
		for col := 0; col < cov.Cols; col++ {
			cell, err := excelize.CoordinatesToCellName(col+1, row+1)
			if err != nil {
				return err
			}
			n := cov.At(col, row)
			if err := f.SetCellValue(coverageSheet, cell, n); err != nil {
				return fmt.Errorf("failed to write coverage cell %s: %w", cell, err)
			}
			style, err := styleFor(heatColor(n, res.MinCoverage, maxCount))
			if err != nil {
				return err
			}
			if err := f.SetCellStyle(coverageSheet, cell, cell, style); err != nil {
				return err
			}
		}
	}

	if cov.Cols > 0 {
		last, err := excelize.ColumnNumberToName(cov.Cols)
		if err != nil {
			return err
		}
		if err := f.SetColWidth(coverageSheet, "A", last, 4); err != nil {
			return err
		}
	}
	return nil
}
