package widgets

import (
	"image"
	"image/color"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/canvas"
	"fyne.io/fyne/v2/widget"

	"github.com/piwi3910/JigCut/internal/model"
)

// Outline colors, cycled so overlapping placements stay distinguishable.
var placementColors = []color.NRGBA{
	{R: 76, G: 175, B: 80, A: 220},  // green
	{R: 33, G: 150, B: 243, A: 220}, // blue
	{R: 255, G: 152, B: 0, A: 220},  // orange
	{R: 156, G: 39, B: 176, A: 220}, // purple
	{R: 0, G: 188, B: 212, A: 220},  // cyan
	{R: 244, G: 67, B: 54, A: 220},  // red
	{R: 255, G: 235, B: 59, A: 220}, // yellow
	{R: 121, G: 85, B: 72, A: 220},  // brown
}

// PlacementPreview draws the source image with the outline of every sampled
// placement on top of it.
type PlacementPreview struct {
	widget.BaseWidget
	source     image.Image
	placements []model.Placement
	imgW       int
	imgH       int
	maxWidth   float32
	maxHeight  float32
}

func NewPlacementPreview(source image.Image, placements []model.Placement, imgW, imgH int, maxW, maxH float32) *PlacementPreview {
	pp := &PlacementPreview{
		source:     source,
		placements: placements,
		imgW:       imgW,
		imgH:       imgH,
		maxWidth:   maxW,
		maxHeight:  maxH,
	}
	pp.ExtendBaseWidget(pp)
	return pp
}

func (pp *PlacementPreview) CreateRenderer() fyne.WidgetRenderer {
	return newPlacementPreviewRenderer(pp)
}

func (pp *PlacementPreview) scale() float32 {
	if pp.imgW <= 0 || pp.imgH <= 0 {
		return 0
	}
	return min(pp.maxWidth/float32(pp.imgW), pp.maxHeight/float32(pp.imgH))
}

type placementPreviewRenderer struct {
	pp      *PlacementPreview
	objects []fyne.CanvasObject
}

func newPlacementPreviewRenderer(pp *PlacementPreview) *placementPreviewRenderer {
	r := &placementPreviewRenderer{pp: pp}
	r.rebuild()
	return r
}

func (r *placementPreviewRenderer) rebuild() {
	r.objects = nil

	scale := r.pp.scale()
	if scale <= 0 {
		return
	}
	canvasW := float32(r.pp.imgW) * scale
	canvasH := float32(r.pp.imgH) * scale

	if r.pp.source != nil {
		img := canvas.NewImageFromImage(r.pp.source)
		img.FillMode = canvas.ImageFillStretch
		img.Resize(fyne.NewSize(canvasW, canvasH))
		r.objects = append(r.objects, img)
	}

	// Placements may hang past the image when the piece is larger than it.
	for i, p := range r.pp.placements {
		c := p.Rect.Clip(r.pp.imgW, r.pp.imgH)
		if c.Empty() {
			continue
		}
		outline := canvas.NewRectangle(color.Transparent)
		outline.StrokeColor = placementColors[i%len(placementColors)]
		outline.StrokeWidth = 1.5
		outline.Resize(fyne.NewSize(float32(c.Width)*scale, float32(c.Height)*scale))
		outline.Move(fyne.NewPos(float32(c.X)*scale, float32(c.Y)*scale))
		r.objects = append(r.objects, outline)
	}

	border := canvas.NewRectangle(color.Transparent)
	border.StrokeColor = color.NRGBA{R: 80, G: 80, B: 80, A: 255}
	border.StrokeWidth = 2
	border.Resize(fyne.NewSize(canvasW, canvasH))
	r.objects = append(r.objects, border)
}

func (r *placementPreviewRenderer) Layout(size fyne.Size)        {}
func (r *placementPreviewRenderer) Refresh()                     { r.rebuild() }
func (r *placementPreviewRenderer) Destroy()                     {}
func (r *placementPreviewRenderer) Objects() []fyne.CanvasObject { return r.objects }

func (r *placementPreviewRenderer) MinSize() fyne.Size {
	scale := r.pp.scale()
	if scale <= 0 {
		return fyne.NewSize(100, 100)
	}
	return fyne.NewSize(float32(r.pp.imgW)*scale, float32(r.pp.imgH)*scale)
}
