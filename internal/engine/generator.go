// Package engine carves puzzle pieces out of a source image.
//
// Placement sampling is a randomized covering procedure: rectangles are drawn
// uniformly inside the image and counted against a CoverageGrid until every
// cell reaches the minimum coverage or the attempt cap runs out. Running out
// of attempts is not an error; the result is simply marked incomplete.
package engine

import (
	"fmt"
	"image"
	"math/rand"
	"time"

	"github.com/piwi3910/JigCut/internal/model"
)

// Generator samples piece placements and cuts them from images.
type Generator struct {
	Settings model.Settings
	rng      *rand.Rand
}

// New creates a Generator. A zero seed picks one from the clock.
func New(settings model.Settings, seed int64) *Generator {
	if seed == 0 {
		seed = time.Now().UnixNano()
	}
	return &Generator{
		Settings: settings,
		rng:      rand.New(rand.NewSource(seed)),
	}
}

// Generate samples placements of pieceW x pieceH (source pixels) inside an
// imgW x imgH image until coverage is complete or MaxAttempts is reached.
func (g *Generator) Generate(imgW, imgH, pieceW, pieceH int) (model.GenerateResult, error) {
	if err := g.Settings.Validate(); err != nil {
		return model.GenerateResult{}, err
	}
	if imgW <= 0 || imgH <= 0 {
		return model.GenerateResult{}, fmt.Errorf("%w: image size must be > 0, got %dx%d", model.ErrInvalidSettings, imgW, imgH)
	}
	if pieceW <= 0 || pieceH <= 0 {
		return model.GenerateResult{}, fmt.Errorf("%w: source piece size must be > 0, got %dx%d", model.ErrInvalidSettings, pieceW, pieceH)
	}

	minCoverage := g.Settings.MinCoverage
	grid := NewCoverageGrid(imgW, imgH, g.Settings.CoverageCellSize)

	// Pieces larger than the image collapse the range to the origin.
	maxX := max(0, imgW-pieceW)
	maxY := max(0, imgH-pieceH)

	result := model.GenerateResult{
		MinCoverage: minCoverage,
		PieceWidth:  pieceW,
		PieceHeight: pieceH,
	}

	attempts := 0
	for !grid.IsComplete(minCoverage) && attempts < g.Settings.MaxAttempts {
		attempts++

		r := model.Rect{
			X:      g.rng.Intn(maxX + 1),
			Y:      g.rng.Intn(maxY + 1),
			Width:  pieceW,
			Height: pieceH,
		}
		grid.Mark(r)
		result.Placements = append(result.Placements, model.Placement{Rect: r, Order: len(result.Placements)})
	}

	result.Attempts = attempts
	result.Complete = grid.IsComplete(minCoverage)
	result.Coverage = grid.Snapshot()
	return result, nil
}

// Slice runs the whole pipeline for one image shown on a boardW x boardH
// board: scale the display piece size into source pixels, generate
// placements, cut every piece and shuffle them.
func (g *Generator) Slice(src image.Image, boardW, boardH float64) (model.Puzzle, error) {
	b := src.Bounds()
	scale := model.BoardScale{
		BoardWidth:  boardW,
		BoardHeight: boardH,
		ImageWidth:  b.Dx(),
		ImageHeight: b.Dy(),
	}
	if boardW <= 0 || boardH <= 0 {
		return model.Puzzle{}, fmt.Errorf("%w: board size must be > 0, got %.0fx%.0f", model.ErrInvalidSettings, boardW, boardH)
	}

	pieceW, pieceH := scale.SourcePieceSize(g.Settings.PieceWidth, g.Settings.PieceHeight)
	result, err := g.Generate(scale.ImageWidth, scale.ImageHeight, pieceW, pieceH)
	if err != nil {
		return model.Puzzle{}, err
	}

	pieces := Cut(src, result.Placements, g.Settings.PieceWidth, g.Settings.PieceHeight)
	Shuffle(pieces, g.rng)

	return model.Puzzle{
		Pieces: pieces,
		Result: result,
		Scale:  scale,
		PieceW: g.Settings.PieceWidth,
		PieceH: g.Settings.PieceHeight,
	}, nil
}

// Reshuffle permutes pieces again with the generator's random source.
func (g *Generator) Reshuffle(pieces []model.Piece) {
	Shuffle(pieces, g.rng)
}

// Shuffle applies a uniform Fisher-Yates permutation in place.
func Shuffle[T any](items []T, rng *rand.Rand) {
	rng.Shuffle(len(items), func(i, j int) {
		items[i], items[j] = items[j], items[i]
	})
}
