package life

import (
	"errors"
	"fmt"
	"strings"
)

const (
	liveRune = 'O'
	deadRune = '.'
)

// ErrPattern is returned for malformed plaintext patterns.
var ErrPattern = errors.New("life: invalid pattern")

// Cell addresses a single board position.
type Cell struct {
	Row int
	Col int
}

// Pattern is a set of live cells relative to its top-left corner.
type Pattern struct {
	Rows int
	Cols int
	Live []Cell
}

// ParsePattern reads the plaintext format: one line per row, 'O' (or '*')
// for live cells, '.' for dead ones and lines starting with '!' as comments.
// Short rows are padded with dead cells.
func ParsePattern(text string) (Pattern, error) {
	var p Pattern
	lines := strings.Split(strings.ReplaceAll(text, "\r\n", "\n"), "\n")
	for len(lines) > 0 && strings.TrimSpace(lines[len(lines)-1]) == "" {
		lines = lines[:len(lines)-1]
	}
	for i, line := range lines {
		if strings.HasPrefix(line, "!") {
			continue
		}
		line = strings.TrimRight(line, " \t")
		for col, r := range line {
			switch r {
			case liveRune, '*':
				p.Live = append(p.Live, Cell{Row: p.Rows, Col: col})
			case deadRune:
			default:
				return Pattern{}, fmt.Errorf("%w: line %d: unexpected %q", ErrPattern, i+1, r)
			}
		}
		if len(line) > p.Cols {
			p.Cols = len(line)
		}
		p.Rows++
	}
	return p, nil
}

// MustParsePattern is like ParsePattern but panics on error. It is meant for
// patterns written in source.
func MustParsePattern(text string) Pattern {
	p, err := ParsePattern(text)
	if err != nil {
		panic(err)
	}
	return p
}

// Stamp places the pattern's live cells with its top-left corner at
// (row, col). Cells that fall off the board are dropped. It returns the number
// of cells that changed from dead to alive.
func (b *Board) Stamp(p Pattern, row, col int) int {
	born := 0
	for _, c := range p.Live {
		r, cc := row+c.Row, col+c.Col
		if !b.Contains(r, cc) {
			continue
		}
		idx := r*b.cols + cc
		if b.cells[idx] == 0 {
			b.cells[idx] = 1
			born++
		}
	}
	return born
}
