package model

import (
	"errors"
	"fmt"
	"image"
	"math"

	"github.com/google/uuid"
)

// ErrInvalidSettings is wrapped by every error returned from Settings.Validate.
var ErrInvalidSettings = errors.New("invalid settings")

// Rect is an axis-aligned rectangle in source-image pixels.
type Rect struct {
	X      int `json:"x"`
	Y      int `json:"y"`
	Width  int `json:"width"`
	Height int `json:"height"`
}

// Right returns the exclusive right edge.
func (r Rect) Right() int { return r.X + r.Width }

// Bottom returns the exclusive bottom edge.
func (r Rect) Bottom() int { return r.Y + r.Height }

// Area returns the rectangle area in square pixels.
func (r Rect) Area() int { return r.Width * r.Height }

// Image converts the rectangle to an image.Rectangle.
func (r Rect) Image() image.Rectangle {
	return image.Rect(r.X, r.Y, r.Right(), r.Bottom())
}

// Clip returns the part of r that lies inside [0,w) x [0,h).
// The result has zero width or height when r misses the area entirely.
func (r Rect) Clip(w, h int) Rect {
	x0, y0 := max(r.X, 0), max(r.Y, 0)
	x1, y1 := min(r.Right(), w), min(r.Bottom(), h)
	if x1 < x0 {
		x1 = x0
	}
	if y1 < y0 {
		y1 = y0
	}
	return Rect{X: x0, Y: y0, Width: x1 - x0, Height: y1 - y0}
}

// Empty reports whether the rectangle covers no pixels.
func (r Rect) Empty() bool {
	return r.Width <= 0 || r.Height <= 0
}

func (r Rect) String() string {
	return fmt.Sprintf("%dx%d@(%d,%d)", r.Width, r.Height, r.X, r.Y)
}

// Placement is one sampled piece rectangle, in the order it was generated.
type Placement struct {
	Rect  Rect `json:"rect"`
	Order int  `json:"order"`
}

// Piece is a cut puzzle tile ready for display.
type Piece struct {
	ID     string      `json:"id"`
	Order  int         `json:"order"`  // Generation order, before shuffling
	Source Rect        `json:"source"` // Region of the source image
	Width  int         `json:"width"`  // Display width
	Height int         `json:"height"` // Display height
	Image  image.Image `json:"-"`
}

func NewPiece(p Placement, displayW, displayH int, img image.Image) Piece {
	return Piece{
		ID:     uuid.New().String()[:8],
		Order:  p.Order,
		Source: p.Rect,
		Width:  displayW,
		Height: displayH,
		Image:  img,
	}
}

// Settings holds the generation constants.
type Settings struct {
	MinCoverage      int `json:"min_coverage"`       // Placements required per coverage cell
	PieceWidth       int `json:"piece_width"`        // On-screen piece width
	PieceHeight      int `json:"piece_height"`       // On-screen piece height
	CoverageCellSize int `json:"coverage_cell_size"` // Coverage cell edge in source pixels
	MaxAttempts      int `json:"max_attempts"`       // Sampling cap

	// Print output
	PrintTileSize float64 `json:"print_tile_size"` // Printed tile edge in mm
}

func DefaultSettings() Settings {
	return Settings{
		MinCoverage:      2,
		PieceWidth:       80,
		PieceHeight:      80,
		CoverageCellSize: 40,
		MaxAttempts:      50000,
		PrintTileSize:    40.0,
	}
}

// Validate rejects settings that would make generation meaningless.
func (s Settings) Validate() error {
	switch {
	case s.PieceWidth <= 0 || s.PieceHeight <= 0:
		return fmt.Errorf("%w: piece size must be > 0, got %dx%d", ErrInvalidSettings, s.PieceWidth, s.PieceHeight)
	case s.CoverageCellSize <= 0:
		return fmt.Errorf("%w: coverage cell size must be > 0, got %d", ErrInvalidSettings, s.CoverageCellSize)
	case s.MinCoverage < 0:
		return fmt.Errorf("%w: minimum coverage must be >= 0, got %d", ErrInvalidSettings, s.MinCoverage)
	case s.MaxAttempts < 0:
		return fmt.Errorf("%w: max attempts must be >= 0, got %d", ErrInvalidSettings, s.MaxAttempts)
	case s.PrintTileSize < 0:
		return fmt.Errorf("%w: print tile size must be >= 0, got %.1f", ErrInvalidSettings, s.PrintTileSize)
	}
	return nil
}

// BoardScale relates the on-screen board to the source image.
type BoardScale struct {
	BoardWidth  float64 `json:"board_width"`
	BoardHeight float64 `json:"board_height"`
	ImageWidth  int     `json:"image_width"`
	ImageHeight int     `json:"image_height"`
}

// ScaleX returns board pixels per source pixel horizontally.
func (b BoardScale) ScaleX() float64 {
	if b.ImageWidth == 0 {
		return 0
	}
	return b.BoardWidth / float64(b.ImageWidth)
}

// ScaleY returns board pixels per source pixel vertically.
func (b BoardScale) ScaleY() float64 {
	if b.ImageHeight == 0 {
		return 0
	}
	return b.BoardHeight / float64(b.ImageHeight)
}

// SourcePieceSize converts an on-screen piece size into source pixels so that
// every tile covers the same board area regardless of the image resolution.
func (b BoardScale) SourcePieceSize(displayW, displayH int) (int, int) {
	return toSource(displayW, b.ScaleX()), toSource(displayH, b.ScaleY())
}

func toSource(display int, scale float64) int {
	if scale <= 0 {
		return display
	}
	return max(1, int(math.Round(float64(display)/scale)))
}

// CoverageSnapshot is a copy of the coverage counters after a run.
type CoverageSnapshot struct {
	Cols     int   `json:"cols"`
	Rows     int   `json:"rows"`
	CellSize int   `json:"cell_size"`
	Counts   []int `json:"counts"` // Row-major, len = Cols*Rows
}

// At returns the counter of the given cell.
func (c CoverageSnapshot) At(col, row int) int {
	return c.Counts[row*c.Cols+col]
}

// Min returns the smallest counter, or 0 for an empty grid.
func (c CoverageSnapshot) Min() int {
	if len(c.Counts) == 0 {
		return 0
	}
	m := c.Counts[0]
	for _, v := range c.Counts[1:] {
		m = min(m, v)
	}
	return m
}

// Max returns the largest counter, or 0 for an empty grid.
func (c CoverageSnapshot) Max() int {
	m := 0
	for _, v := range c.Counts {
		m = max(m, v)
	}
	return m
}

// Below counts the cells whose counter is under threshold.
func (c CoverageSnapshot) Below(threshold int) int {
	n := 0
	for _, v := range c.Counts {
		if v < threshold {
			n++
		}
	}
	return n
}

// GenerateResult holds the output of one generation run.
type GenerateResult struct {
	Placements  []Placement      `json:"placements"`
	Attempts    int              `json:"attempts"`
	Complete    bool             `json:"complete"` // False when the attempt cap was reached first
	MinCoverage int              `json:"min_coverage"`
	PieceWidth  int              `json:"piece_width"`  // Source pixels
	PieceHeight int              `json:"piece_height"` // Source pixels
	Coverage    CoverageSnapshot `json:"coverage"`
}

// Puzzle is a generated, shuffled set of pieces. It is never persisted.
type Puzzle struct {
	Name   string         `json:"name"`
	Pieces []Piece        `json:"pieces"`
	Result GenerateResult `json:"result"`
	Scale  BoardScale     `json:"scale"`
	PieceW int            `json:"piece_w"` // Display size
	PieceH int            `json:"piece_h"`
}

// Summary returns a one-line description for status bars and logs.
func (p Puzzle) Summary() string {
	s := fmt.Sprintf("%d pieces from %dx%d image, %d attempts, coverage min %d/%d",
		len(p.Pieces), p.Scale.ImageWidth, p.Scale.ImageHeight,
		p.Result.Attempts, p.Result.Coverage.Min(), p.Result.MinCoverage)
	if !p.Result.Complete {
		s += fmt.Sprintf(" (incomplete: %d cells short)", p.Result.Coverage.Below(p.Result.MinCoverage))
	}
	return s
}
