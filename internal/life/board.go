package life

import (
	"fmt"
	"strings"

	"lifesim/internal/core"
)

// Size describes the dimensions of a board.
type Size struct {
	Rows int
	Cols int
}

// Board stores a fixed-size grid of cells in row-major order, one byte per
// cell (0 dead, 1 alive). The grid does not wrap: cells beyond an edge do not
// exist and never count as neighbours.
type Board struct {
	rows, cols int
	cells      []uint8
}

// NewBoard allocates an all-dead board. Non-positive dimensions are a
// programming error and panic.
func NewBoard(rows, cols int) *Board {
	if rows <= 0 || cols <= 0 {
		panic(fmt.Sprintf("life: invalid board size %dx%d", rows, cols))
	}
	return &Board{rows: rows, cols: cols, cells: make([]uint8, rows*cols)}
}

// Rows returns the number of rows.
func (b *Board) Rows() int { return b.rows }

// Cols returns the number of columns.
func (b *Board) Cols() int { return b.cols }

// Size returns the board dimensions.
func (b *Board) Size() Size { return Size{Rows: b.rows, Cols: b.cols} }

// Cells exposes the backing slice so renderers can read it without copying.
// Callers must not write to it.
func (b *Board) Cells() []uint8 { return b.cells }

// Contains reports whether (row, col) lies on the board.
func (b *Board) Contains(row, col int) bool {
	return row >= 0 && row < b.rows && col >= 0 && col < b.cols
}

func (b *Board) index(row, col int) int {
	if !b.Contains(row, col) {
		panic(fmt.Sprintf("life: cell (%d,%d) outside %dx%d board", row, col, b.rows, b.cols))
	}
	return row*b.cols + col
}

// Alive reports the state of a cell. It panics when (row, col) is off the board.
func (b *Board) Alive(row, col int) bool {
	return b.cells[b.index(row, col)] != 0
}

// Set changes the state of a cell. It panics when (row, col) is off the board.
func (b *Board) Set(row, col int, alive bool) {
	idx := b.index(row, col)
	if alive {
		b.cells[idx] = 1
		return
	}
	b.cells[idx] = 0
}

// LiveNeighbors counts the live cells among the up to eight cells adjacent to
// (row, col). Corner and edge cells have fewer neighbours.
func (b *Board) LiveNeighbors(row, col int) int {
	b.index(row, col)
	return b.neighbors(row, col)
}

func (b *Board) neighbors(row, col int) int {
	n := 0
	for dr := -1; dr <= 1; dr++ {
		r := row + dr
		if r < 0 || r >= b.rows {
			continue
		}
		base := r * b.cols
		for dc := -1; dc <= 1; dc++ {
			if dr == 0 && dc == 0 {
				continue
			}
			c := col + dc
			if c < 0 || c >= b.cols {
				continue
			}
			n += int(b.cells[base+c])
		}
	}
	return n
}

// Step returns the next generation as a new board. The receiver is not
// modified.
func (b *Board) Step() *Board {
	next := NewBoard(b.rows, b.cols)
	b.StepInto(next)
	return next
}

// StepInto writes the next generation into dst and returns its live cell
// count. Every decision reads the receiver only, so all cells change
// simultaneously. dst must have the same shape and must not be the receiver.
func (b *Board) StepInto(dst *Board) int {
	if dst == b {
		panic("life: StepInto destination aliases source")
	}
	b.mustMatch(dst)
	live := 0
	for row := 0; row < b.rows; row++ {
		for col := 0; col < b.cols; col++ {
			idx := row*b.cols + col
			n := b.neighbors(row, col)
			alive := b.cells[idx] != 0
			dst.cells[idx] = 0
			if (alive && (n == 2 || n == 3)) || (!alive && n == 3) {
				dst.cells[idx] = 1
				live++
			}
		}
	}
	return live
}

// Clone returns an independent copy of the board.
func (b *Board) Clone() *Board {
	return &Board{rows: b.rows, cols: b.cols, cells: append([]uint8(nil), b.cells...)}
}

// CopyFrom overwrites the receiver's cells with those of src.
func (b *Board) CopyFrom(src *Board) {
	b.mustMatch(src)
	copy(b.cells, src.cells)
}

// Clear kills every cell.
func (b *Board) Clear() {
	for i := range b.cells {
		b.cells[i] = 0
	}
}

// LiveCount scans the board and returns the number of live cells.
func (b *Board) LiveCount() int {
	n := 0
	for _, c := range b.cells {
		if c != 0 {
			n++
		}
	}
	return n
}

// Randomize replaces the board with a random soup where each cell is alive
// with the given probability. It returns the resulting live count.
func (b *Board) Randomize(rng *core.RNG, density float64) int {
	live := 0
	for i := range b.cells {
		b.cells[i] = 0
		if rng.Chance(density) {
			b.cells[i] = 1
			live++
		}
	}
	return live
}

// Equal reports whether both boards have the same shape and cells.
func (b *Board) Equal(other *Board) bool {
	if other == nil || b.rows != other.rows || b.cols != other.cols {
		return false
	}
	for i, c := range b.cells {
		if c != other.cells[i] {
			return false
		}
	}
	return true
}

// String renders the board in plaintext form, one row per line, using 'O'
// for live cells and '.' for dead ones.
func (b *Board) String() string {
	var sb strings.Builder
	sb.Grow((b.cols + 1) * b.rows)
	for row := 0; row < b.rows; row++ {
		if row > 0 {
			sb.WriteByte('\n')
		}
		for _, c := range b.cells[row*b.cols : (row+1)*b.cols] {
			if c != 0 {
				sb.WriteByte(liveRune)
				continue
			}
			sb.WriteByte(deadRune)
		}
	}
	return sb.String()
}

func (b *Board) mustMatch(other *Board) {
	if other.rows != b.rows || other.cols != b.cols {
		panic(fmt.Sprintf("life: board shape mismatch %dx%d vs %dx%d", b.rows, b.cols, other.rows, other.cols))
	}
}
