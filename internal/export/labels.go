package export

import (
	"bytes"
	"encoding/json"
	"fmt"

	"github.com/go-pdf/fpdf"
	qrcode "github.com/skip2/go-qrcode"

	"github.com/piwi3910/JigCut/internal/model"
)

// LabelInfo is the answer key encoded into each piece label's QR code. It
// records where the printed piece came from in the source image.
type LabelInfo struct {
	PieceID string `json:"id"`
	Number  int    `json:"number"` // Printed number, 1-based
	Order   int    `json:"order"`  // Generation order
	Page    int    `json:"page"`
	X       int    `json:"x"` // Source rectangle, pixels
	Y       int    `json:"y"`
	Width   int    `json:"width"`
	Height  int    `json:"height"`
}

// Label layout constants for Avery 5160-compatible labels (3 columns, 10 rows per page).
// Each label cell is approximately 66.7mm x 25.4mm on US Letter paper.
const (
	labelPageWidth  = 215.9 // US Letter width in mm
	labelPageHeight = 279.4 // US Letter height in mm
	labelMarginTop  = 12.7  // mm
	labelMarginLeft = 4.8   // mm
	labelWidth      = 66.7  // mm per label
	labelHeight     = 25.4  // mm per label
	labelCols       = 3
	labelRows       = 10
	labelsPerPage   = labelCols * labelRows
	qrSize          = 20.0 // QR code size in mm
	labelPadding    = 2.0  // mm internal padding
)

// ExportLabels generates a PDF of QR-coded answer-key labels, one per piece,
// numbered the way ExportPDF numbers the printed tiles.
func ExportLabels(path string, puzzle model.Puzzle, settings model.Settings) error {
	labels, err := CollectLabelInfos(puzzle, settings)
	if err != nil {
		return err
	}

	pdf := fpdf.New("P", "mm", "Letter", "")
	pdf.SetAutoPageBreak(false, 0)

	for i, label := range labels {
		if i%labelsPerPage == 0 {
			pdf.AddPage()
		}

		posOnPage := i % labelsPerPage
		col := posOnPage % labelCols
		row := posOnPage / labelCols

		x := labelMarginLeft + float64(col)*labelWidth
		y := labelMarginTop + float64(row)*labelHeight

		if err := renderLabel(pdf, x, y, label); err != nil {
			return fmt.Errorf("failed to render label for piece %d: %w", label.Number, err)
		}
	}

	return pdf.OutputFileAndClose(path)
}

// renderLabel draws a single label at the given position.
func renderLabel(pdf *fpdf.Fpdf, x, y float64, info LabelInfo) error {
	pdf.SetDrawColor(200, 200, 200)
	pdf.SetLineWidth(0.1)
	pdf.Rect(x, y, labelWidth, labelHeight, "D")

	qrData, err := json.Marshal(info)
	if err != nil {
		return fmt.Errorf("failed to marshal label info: %w", err)
	}

	qrPNG, err := qrcode.Encode(string(qrData), qrcode.Medium, 256)
	if err != nil {
		return fmt.Errorf("failed to generate QR code: %w", err)
	}

	imgName := fmt.Sprintf("qr_%s_%d", info.PieceID, info.Number)
	pdf.RegisterImageOptionsReader(imgName, fpdf.ImageOptions{ImageType: "PNG"}, bytes.NewReader(qrPNG))

	qrX := x + labelWidth - qrSize - labelPadding
	qrY := y + (labelHeight-qrSize)/2
	pdf.ImageOptions(imgName, qrX, qrY, qrSize, qrSize, false, fpdf.ImageOptions{ImageType: "PNG"}, 0, "")

	textX := x + labelPadding
	textW := labelWidth - qrSize - 3*labelPadding

	pdf.SetFont("Helvetica", "B", 11)
	pdf.SetTextColor(0, 0, 0)
	pdf.SetXY(textX, y+labelPadding)
	pdf.CellFormat(textW, 5, fmt.Sprintf("Piece %d", info.Number), "", 1, "L", false, 0, "")

	pdf.SetFont("Helvetica", "", 7)
	pdf.SetXY(textX, y+labelPadding+6)
	pdf.CellFormat(textW, 3.5, fmt.Sprintf("Source %d x %d px", info.Width, info.Height), "", 1, "L", false, 0, "")

	pdf.SetFont("Helvetica", "", 6)
	pdf.SetTextColor(100, 100, 100)
	pdf.SetXY(textX, y+labelPadding+10)
	pdf.CellFormat(textW, 3, fmt.Sprintf("@ (%d, %d), sheet %d", info.X, info.Y, info.Page), "", 1, "L", false, 0, "")

	pdf.SetXY(textX, y+labelPadding+13.5)
	pdf.CellFormat(textW, 3, "ID "+info.PieceID, "", 0, "L", false, 0, "")

	pdf.SetTextColor(0, 0, 0)
	return nil
}

// CollectLabelInfos builds the answer key for every piece in printed order.
func CollectLabelInfos(puzzle model.Puzzle, settings model.Settings) ([]LabelInfo, error) {
	layout, err := NewPrintLayout(puzzle, settings.PrintTileSize)
	if err != nil {
		return nil, err
	}
	labels := make([]LabelInfo, len(layout.Slots))
	for i, slot := range layout.Slots {
		p := slot.Piece
		labels[i] = LabelInfo{
			PieceID: p.ID,
			Number:  slot.Index + 1,
			Order:   p.Order,
			Page:    slot.Page,
			X:       p.Source.X,
			Y:       p.Source.Y,
			Width:   p.Source.Width,
			Height:  p.Source.Height,
		}
	}
	return labels, nil
}
