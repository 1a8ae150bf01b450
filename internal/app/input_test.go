package app

import (
	"testing"

	"lifesim/internal/life"
)

func TestCellAt(t *testing.T) {
	size := life.Size{Rows: 12, Cols: 10}
	tests := []struct {
		name     string
		x, y     int
		wantRow  int
		wantCol  int
		wantOK   bool
		cellSize int
	}{
		{"origin", 0, 0, 0, 0, true, 30},
		{"inside first cell", 29, 29, 0, 0, true, 30},
		{"next cell", 30, 61, 2, 1, true, 30},
		{"last cell", 299, 359, 11, 9, true, 30},
		{"right of grid", 300, 10, 0, 0, false, 30},
		{"below grid", 10, 360, 0, 0, false, 30},
		{"negative", -1, 5, 0, 0, false, 30},
		{"zero cell size", 5, 5, 0, 0, false, 0},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			row, col, ok := CellAt(tt.x, tt.y, tt.cellSize, size)
			if ok != tt.wantOK || row != tt.wantRow || col != tt.wantCol {
				t.Fatalf("CellAt(%d, %d) = (%d, %d, %v), want (%d, %d, %v)",
					tt.x, tt.y, row, col, ok, tt.wantRow, tt.wantCol, tt.wantOK)
			}
		})
	}
}
