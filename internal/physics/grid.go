package physics

import "math"

// SpatialGrid buckets entity indices by position so collision passes only
// run the polygon test against nearby candidates.
//
// Cell size must be >= the largest centre-to-centre distance at which two
// sprites can touch, otherwise a 3x3 neighbourhood query can miss a hit.
type SpatialGrid struct {
	cellSize    float64
	invCellSize float64
	cols        int
	rows        int
	cells       [][]int
	size        int
}

// NewSpatialGrid creates a grid covering a world of the given size.
func NewSpatialGrid(worldW, worldH, cellSize float64) *SpatialGrid {
	if cellSize <= 0 {
		cellSize = math.Max(worldW, worldH)
	}
	cols := max(int(math.Ceil(worldW/cellSize)), 1)
	rows := max(int(math.Ceil(worldH/cellSize)), 1)

	return &SpatialGrid{
		cellSize:    cellSize,
		invCellSize: 1.0 / cellSize,
		cols:        cols,
		rows:        rows,
		cells:       make([][]int, cols*rows),
	}
}

// CellSize returns the edge length of one cell.
func (g *SpatialGrid) CellSize() float64 {
	return g.cellSize
}

// Len returns the number of inserted items.
func (g *SpatialGrid) Len() int {
	return g.size
}

// Clear empties every cell, keeping the backing arrays for the next frame.
func (g *SpatialGrid) Clear() {
	for i := range g.cells {
		g.cells[i] = g.cells[i][:0]
	}
	g.size = 0
}

// Insert records index at position p.
func (g *SpatialGrid) Insert(p Vector2D, index int) {
	col, row := g.cell(p)
	idx := row*g.cols + col
	g.cells[idx] = append(g.cells[idx], index)
	g.size++
}

// QueryAround calls fn for each index in the 3x3 neighbourhood of p,
// wrapping across world edges. Returning true from fn stops the query.
// Small grids can wrap onto the same cell twice; each cell is visited once.
func (g *SpatialGrid) QueryAround(p Vector2D, fn func(index int) bool) {
	col, row := g.cell(p)

	var seen [9]int
	visited := 0
	for dr := -1; dr <= 1; dr++ {
		r := (row + dr + g.rows) % g.rows
		for dc := -1; dc <= 1; dc++ {
			c := (col + dc + g.cols) % g.cols
			idx := r*g.cols + c

			dup := false
			for _, s := range seen[:visited] {
				if s == idx {
					dup = true
					break
				}
			}
			if dup {
				continue
			}
			seen[visited] = idx
			visited++

			for _, item := range g.cells[idx] {
				if fn(item) {
					return
				}
			}
		}
	}
}

// cell maps a world position to grid coordinates, clamping positions that
// sit exactly on the far world edge after wrapping.
func (g *SpatialGrid) cell(p Vector2D) (col, row int) {
	col = min(max(int(p.X*g.invCellSize), 0), g.cols-1)
	row = min(max(int(p.Y*g.invCellSize), 0), g.rows-1)
	return col, row
}
