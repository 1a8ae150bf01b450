//go:build ebiten

package ui

import (
	"image/color"

	"lifesim/internal/life"

	"github.com/hajimehoshi/ebiten/v2"
)

// Overlay draws grid lines between cells on top of the board.
type Overlay struct {
	Visible bool

	size     life.Size
	cellSize int
	pixel    *ebiten.Image
}

// NewOverlay constructs a grid overlay for a board of the given size.
func NewOverlay(size life.Size, cellSize int, visible bool) *Overlay {
	o := &Overlay{Visible: visible, size: size, cellSize: cellSize}
	o.pixel = ebiten.NewImage(1, 1)
	o.pixel.Fill(color.White)
	return o
}

// Toggle flips visibility.
func (o *Overlay) Toggle() { o.Visible = !o.Visible }

// Draw renders the grid onto the provided screen.
func (o *Overlay) Draw(screen *ebiten.Image) {
	if o == nil || !o.Visible || o.cellSize <= 1 {
		return
	}
	width := float64(o.size.Cols * o.cellSize)
	height := float64(o.size.Rows * o.cellSize)
	for row := 0; row < o.size.Rows; row++ {
		o.drawRect(screen, 0, float64(row*o.cellSize), width, 1, gridColor)
	}
	for col := 0; col < o.size.Cols; col++ {
		o.drawRect(screen, float64(col*o.cellSize), 0, 1, height, gridColor)
	}
}

func (o *Overlay) drawRect(screen *ebiten.Image, x, y, w, h float64, col color.RGBA) {
	op := &ebiten.DrawImageOptions{}
	op.GeoM.Scale(w, h)
	op.GeoM.Translate(x, y)
	op.ColorM.Scale(float64(col.R)/255.0, float64(col.G)/255.0, float64(col.B)/255.0, float64(col.A)/255.0)
	screen.DrawImage(o.pixel, op)
}

var gridColor = color.RGBA{R: 128, G: 128, B: 128, A: 255}
