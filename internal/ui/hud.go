//go:build ebiten

package ui

import (
	"image/color"

	"lifesim/internal/session"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/text"
	"golang.org/x/image/font/basicfont"
)

// HUD draws the generation and live cell counts in the top-left corner of
// the board.
type HUD struct {
	Visible bool

	pixel *ebiten.Image
}

// NewHUD constructs a HUD.
func NewHUD(visible bool) *HUD {
	h := &HUD{Visible: visible}
	h.pixel = ebiten.NewImage(1, 1)
	h.pixel.Fill(color.White)
	return h
}

// Toggle flips visibility.
func (h *HUD) Toggle() { h.Visible = !h.Visible }

// Draw paints the statistics onto the screen.
func (h *HUD) Draw(screen *ebiten.Image, st session.Stats) {
	if h == nil || !h.Visible {
		return
	}
	face := basicfont.Face7x13
	lines := append(StatsLines(st), ModeLabel(st.Mode))

	width := 0
	for _, line := range lines {
		if w := text.BoundString(face, line).Dx(); w > width {
			width = w
		}
	}
	height := len(lines) * lineHeight

	op := &ebiten.DrawImageOptions{}
	op.GeoM.Scale(float64(width+2*panelPadding), float64(height+panelPadding))
	op.GeoM.Translate(float64(hudX-panelPadding), float64(hudY-panelPadding))
	op.ColorM.Scale(0, 0, 0, 0.55)
	screen.DrawImage(h.pixel, op)

	for i, line := range lines {
		text.Draw(screen, line, face, hudX, hudY+headerBaseline+i*lineHeight, statsColor)
	}
}

var statsColor = color.RGBA{R: 255, G: 0, B: 0, A: 255}

const (
	hudX           = 15
	hudY           = 5
	panelPadding   = 4
	lineHeight     = 18
	headerBaseline = 11
)
