//go:build ebiten

package render

import (
	"image/color"

	"lifesim/internal/life"

	"github.com/hajimehoshi/ebiten/v2"
)

// GridPainter uploads board cells into a one-pixel-per-cell image and draws
// it scaled to the cell size.
type GridPainter struct {
	size life.Size
	img  *ebiten.Image
	buf  []byte
}

// NewGridPainter allocates a painter for a board of the given size.
func NewGridPainter(size life.Size) *GridPainter {
	return &GridPainter{
		size: size,
		img:  ebiten.NewImage(size.Cols, size.Rows),
		buf:  make([]byte, 4*size.Rows*size.Cols),
	}
}

// Blit uploads the provided cells into the painter image and draws it.
func (gp *GridPainter) Blit(dst *ebiten.Image, cells []uint8, on, off color.Color, cellSize int) {
	if len(cells) != gp.size.Rows*gp.size.Cols {
		return
	}
	fillCellsRGBA(gp.buf, cells, on, off)
	gp.img.WritePixels(gp.buf)

	op := &ebiten.DrawImageOptions{}
	op.GeoM.Scale(float64(cellSize), float64(cellSize))
	dst.DrawImage(gp.img, op)
}
