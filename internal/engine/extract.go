package engine

import (
	"image"
	"image/draw"

	"github.com/anthonynsimon/bild/transform"

	"github.com/piwi3910/JigCut/internal/model"
)

// ExtractPiece copies the source rectangle r out of src and resamples it to
// displayW x displayH. Parts of r outside the image come out transparent.
func ExtractPiece(src image.Image, r model.Rect, displayW, displayH int) image.Image {
	b := src.Bounds()
	region := image.NewNRGBA(image.Rect(0, 0, r.Width, r.Height))

	// r is relative to the image origin, which need not be (0,0).
	abs := r.Image().Add(b.Min)
	if visible := abs.Intersect(b); !visible.Empty() {
		dst := visible.Sub(abs.Min)
		draw.Draw(region, dst, src, visible.Min, draw.Src)
	}

	if r.Width == displayW && r.Height == displayH {
		return region
	}
	return transform.Resize(region, displayW, displayH, transform.Lanczos)
}

// Cut extracts one piece per placement, in placement order.
func Cut(src image.Image, placements []model.Placement, displayW, displayH int) []model.Piece {
	pieces := make([]model.Piece, 0, len(placements))
	for _, p := range placements {
		img := ExtractPiece(src, p.Rect, displayW, displayH)
		pieces = append(pieces, model.NewPiece(p, displayW, displayH, img))
	}
	return pieces
}
