package app

import "lifesim/internal/life"

// CellAt translates a cursor position in screen pixels into a grid
// coordinate. It reports false for positions outside the grid.
func CellAt(x, y, cellSize int, size life.Size) (row, col int, ok bool) {
	if cellSize <= 0 || x < 0 || y < 0 {
		return 0, 0, false
	}
	row, col = y/cellSize, x/cellSize
	if row >= size.Rows || col >= size.Cols {
		return 0, 0, false
	}
	return row, col, true
}
