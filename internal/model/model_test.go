package model

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDefaultSettingsAreValid(t *testing.T) {
	s := DefaultSettings()
	require.NoError(t, s.Validate())
	assert.Equal(t, 2, s.MinCoverage)
	assert.Equal(t, 80, s.PieceWidth)
	assert.Equal(t, 80, s.PieceHeight)
	assert.Equal(t, 40, s.CoverageCellSize)
	assert.Equal(t, 50000, s.MaxAttempts)
}

func TestValidateRejectsMalformedSettings(t *testing.T) {
	tests := []struct {
		name   string
		mutate func(*Settings)
	}{
		{"zero piece width", func(s *Settings) { s.PieceWidth = 0 }},
		{"negative piece height", func(s *Settings) { s.PieceHeight = -5 }},
		{"zero cell size", func(s *Settings) { s.CoverageCellSize = 0 }},
		{"negative min coverage", func(s *Settings) { s.MinCoverage = -1 }},
		{"negative max attempts", func(s *Settings) { s.MaxAttempts = -1 }},
		{"negative print size", func(s *Settings) { s.PrintTileSize = -1 }},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			s := DefaultSettings()
			tt.mutate(&s)
			err := s.Validate()
			require.Error(t, err)
			assert.True(t, errors.Is(err, ErrInvalidSettings))
		})
	}
}

func TestValidateAllowsZeroAttempts(t *testing.T) {
	s := DefaultSettings()
	s.MaxAttempts = 0
	assert.NoError(t, s.Validate())
}

func TestRectClip(t *testing.T) {
	r := Rect{X: 750, Y: -20, Width: 80, Height: 80}
	c := r.Clip(800, 600)
	assert.Equal(t, Rect{X: 750, Y: 0, Width: 50, Height: 60}, c)

	outside := Rect{X: 900, Y: 10, Width: 10, Height: 10}.Clip(800, 600)
	assert.True(t, outside.Empty())
}

func TestRectEdges(t *testing.T) {
	r := Rect{X: 10, Y: 20, Width: 30, Height: 40}
	assert.Equal(t, 40, r.Right())
	assert.Equal(t, 60, r.Bottom())
	assert.Equal(t, 1200, r.Area())
	assert.Equal(t, 40, r.Image().Max.X)
	assert.Equal(t, "30x40@(10,20)", r.String())
}

func TestBoardScale(t *testing.T) {
	b := BoardScale{BoardWidth: 400, BoardHeight: 300, ImageWidth: 800, ImageHeight: 600}
	assert.InDelta(t, 0.5, b.ScaleX(), 1e-9)
	assert.InDelta(t, 0.5, b.ScaleY(), 1e-9)

	w, h := b.SourcePieceSize(80, 80)
	assert.Equal(t, 160, w, "80 board pixels at half scale span 160 source pixels")
	assert.Equal(t, 160, h)
}

func TestBoardScaleNonUniform(t *testing.T) {
	b := BoardScale{BoardWidth: 800, BoardHeight: 200, ImageWidth: 800, ImageHeight: 600}
	w, h := b.SourcePieceSize(80, 80)
	assert.Equal(t, 80, w)
	assert.Equal(t, 240, h)
}

func TestBoardScaleZeroImage(t *testing.T) {
	b := BoardScale{BoardWidth: 400, BoardHeight: 300}
	assert.Equal(t, 0.0, b.ScaleX())
	w, h := b.SourcePieceSize(80, 60)
	assert.Equal(t, 80, w)
	assert.Equal(t, 60, h)
}

func TestSourcePieceSizeNeverZero(t *testing.T) {
	b := BoardScale{BoardWidth: 10000, BoardHeight: 10000, ImageWidth: 10, ImageHeight: 10}
	w, h := b.SourcePieceSize(1, 1)
	assert.Equal(t, 1, w)
	assert.Equal(t, 1, h)
}

func TestCoverageSnapshotStats(t *testing.T) {
	c := CoverageSnapshot{Cols: 3, Rows: 2, CellSize: 10, Counts: []int{2, 3, 1, 0, 4, 2}}
	assert.Equal(t, 0, c.Min())
	assert.Equal(t, 4, c.Max())
	assert.Equal(t, 2, c.Below(2))
	assert.Equal(t, 4, c.At(1, 1))
	assert.Equal(t, 1, c.At(2, 0))

	var empty CoverageSnapshot
	assert.Equal(t, 0, empty.Min())
	assert.Equal(t, 0, empty.Max())
}

func TestNewPiece(t *testing.T) {
	p := NewPiece(Placement{Rect: Rect{X: 1, Y: 2, Width: 3, Height: 4}, Order: 7}, 80, 60, nil)
	assert.Len(t, p.ID, 8)
	assert.Equal(t, 7, p.Order)
	assert.Equal(t, 80, p.Width)
	assert.Equal(t, 60, p.Height)
	assert.Equal(t, 3, p.Source.Width)
}

func TestPuzzleSummary(t *testing.T) {
	p := Puzzle{
		Pieces: make([]Piece, 3),
		Scale:  BoardScale{ImageWidth: 100, ImageHeight: 50},
		Result: GenerateResult{
			Attempts:    3,
			Complete:    false,
			MinCoverage: 2,
			Coverage:    CoverageSnapshot{Cols: 2, Rows: 1, Counts: []int{1, 2}},
		},
	}
	s := p.Summary()
	assert.Contains(t, s, "3 pieces")
	assert.Contains(t, s, "incomplete: 1 cells short")

	p.Result.Complete = true
	assert.NotContains(t, p.Summary(), "incomplete")
}
