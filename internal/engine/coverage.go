package engine

import "github.com/piwi3910/JigCut/internal/model"

// CoverageGrid counts how many placements have touched each cell of an image.
// Cells are cellSize square; the last row and column may extend past the
// image edge.
type CoverageGrid struct {
	width    int
	height   int
	cellSize int
	cols     int
	rows     int
	counts   []int
}

func NewCoverageGrid(width, height, cellSize int) *CoverageGrid {
	cols := ceilDiv(width, cellSize)
	rows := ceilDiv(height, cellSize)
	return &CoverageGrid{
		width:    width,
		height:   height,
		cellSize: cellSize,
		cols:     cols,
		rows:     rows,
		counts:   make([]int, cols*rows),
	}
}

func ceilDiv(a, b int) int {
	if a <= 0 {
		return 0
	}
	return (a + b - 1) / b
}

func (g *CoverageGrid) Cols() int     { return g.cols }
func (g *CoverageGrid) Rows() int     { return g.rows }
func (g *CoverageGrid) CellSize() int { return g.cellSize }

// Count returns the counter of one cell.
func (g *CoverageGrid) Count(col, row int) int {
	return g.counts[row*g.cols+col]
}

// Mark increments every cell overlapped by r and returns how many cells it
// touched. r is clipped to the image first, so out-of-range cells are never
// addressed.
func (g *CoverageGrid) Mark(r model.Rect) int {
	c := r.Clip(g.width, g.height)
	if c.Empty() {
		return 0
	}

	startCol := c.X / g.cellSize
	startRow := c.Y / g.cellSize
	endCol := min((c.Right()-1)/g.cellSize, g.cols-1)
	endRow := min((c.Bottom()-1)/g.cellSize, g.rows-1)

	touched := 0
	for row := startRow; row <= endRow; row++ {
		base := row * g.cols
		for col := startCol; col <= endCol; col++ {
			g.counts[base+col]++
			touched++
		}
	}
	return touched
}

// IsComplete reports whether every cell has been covered at least minCoverage times.
func (g *CoverageGrid) IsComplete(minCoverage int) bool {
	for _, n := range g.counts {
		if n < minCoverage {
			return false
		}
	}
	return true
}

// MinCount returns the lowest counter in the grid.
func (g *CoverageGrid) MinCount() int {
	if len(g.counts) == 0 {
		return 0
	}
	m := g.counts[0]
	for _, n := range g.counts[1:] {
		m = min(m, n)
	}
	return m
}

// Deficit returns the number of cells still below minCoverage.
func (g *CoverageGrid) Deficit(minCoverage int) int {
	n := 0
	for _, c := range g.counts {
		if c < minCoverage {
			n++
		}
	}
	return n
}

// Snapshot copies the counters into a model.CoverageSnapshot.
func (g *CoverageGrid) Snapshot() model.CoverageSnapshot {
	counts := make([]int, len(g.counts))
	copy(counts, g.counts)
	return model.CoverageSnapshot{
		Cols:     g.cols,
		Rows:     g.rows,
		CellSize: g.cellSize,
		Counts:   counts,
	}
}
