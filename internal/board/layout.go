package board

import "fyne.io/fyne/v2"

// Largest board the reference image is fitted into, in on-screen pixels.
const (
	DefaultMaxBoardWidth  = 800
	DefaultMaxBoardHeight = 600
)

// TrayLayout places count tiles of the given size into rows starting at
// origin. A row holds as many tiles as fit in width; at least one tile is
// placed per row. Positions are returned in tile order.
func TrayLayout(count int, tile fyne.Size, origin fyne.Position, width, gap float32) []fyne.Position {
	if count <= 0 {
		return nil
	}

	perRow := 1
	if step := tile.Width + gap; step > 0 && width > tile.Width {
		perRow = max(1, int((width+gap)/step))
	}

	positions := make([]fyne.Position, count)
	for i := range positions {
		col := i % perRow
		row := i / perRow
		positions[i] = fyne.NewPos(
			origin.X+float32(col)*(tile.Width+gap),
			origin.Y+float32(row)*(tile.Height+gap),
		)
	}
	return positions
}

// TraySize returns the area TrayLayout needs for count tiles.
func TraySize(count int, tile fyne.Size, width, gap float32) fyne.Size {
	positions := TrayLayout(count, tile, fyne.Position{}, width, gap)
	if len(positions) == 0 {
		return fyne.Size{}
	}
	var w, h float32
	for _, p := range positions {
		w = max(w, p.X+tile.Width)
		h = max(h, p.Y+tile.Height)
	}
	return fyne.NewSize(w, h)
}

// FitSize scales an image of imgW x imgH pixels to fit inside maxW x maxH,
// keeping its aspect ratio. Images that already fit keep their natural size.
func FitSize(imgW, imgH int, maxW, maxH float32) fyne.Size {
	if imgW <= 0 || imgH <= 0 {
		return fyne.Size{}
	}
	w, h := float32(imgW), float32(imgH)
	scale := float32(1)
	if maxW > 0 {
		scale = min(scale, maxW/w)
	}
	if maxH > 0 {
		scale = min(scale, maxH/h)
	}
	return fyne.NewSize(w*scale, h*scale)
}
