//go:build ebiten

package app

import (
	"image/color"
	"log/slog"
	"time"

	"lifesim/internal/config"
	"lifesim/internal/core"
	"lifesim/internal/render"
	"lifesim/internal/session"
	"lifesim/internal/ui"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
)

// Game adapts a session to the ebiten.Game interface. Each Update polls
// input, then runs at most one tick, and Draw renders the result.
type Game struct {
	sess    *session.Session
	painter *render.GridPainter
	overlay *ui.Overlay
	hud     *ui.HUD
	pacer   *core.FixedStep
	log     *slog.Logger

	onColor  color.Color
	offColor color.Color

	cellSize int
	seed     int64
	density  float64
}

// New constructs a Game for the provided session.
func New(sess *session.Session, cfg config.Config, logger *slog.Logger) *Game {
	size := sess.Size()
	return &Game{
		sess:     sess,
		painter:  render.NewGridPainter(size),
		overlay:  ui.NewOverlay(size, cfg.CellSize, cfg.ShowGrid),
		hud:      ui.NewHUD(cfg.ShowStats),
		pacer:    core.NewFixedStep(cfg.RunTPS),
		log:      logger,
		onColor:  color.White,
		offColor: color.Black,
		cellSize: cfg.CellSize,
		seed:     cfg.Seed,
		density:  cfg.Density,
	}
}

// Update handles per-frame input and advances the simulation.
func (g *Game) Update() error {
	if inpututil.IsKeyJustPressed(ebiten.KeyQ) || inpututil.IsKeyJustPressed(ebiten.KeyEscape) {
		return ebiten.Termination
	}
	if inpututil.IsKeyJustPressed(ebiten.KeySpace) && g.sess.Start() {
		g.pacer.Restart()
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyR) {
		g.sess.Reset()
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyT) {
		g.sess.Revert()
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyS) {
		g.seed = time.Now().UnixNano()
		if g.sess.Randomize(g.seed, g.density) {
			g.log.Info("random soup", "seed", g.seed, "live", g.sess.LiveCells())
		}
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyG) {
		g.overlay.Toggle()
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyH) {
		g.hud.Toggle()
	}

	switch {
	case ebiten.IsMouseButtonPressed(ebiten.MouseButtonLeft):
		g.editAtCursor(true)
	case ebiten.IsMouseButtonPressed(ebiten.MouseButtonRight):
		g.editAtCursor(false)
	}

	if g.sess.Running() && g.pacer.ShouldStep() {
		g.sess.Tick()
	}
	return nil
}

func (g *Game) editAtCursor(alive bool) {
	x, y := ebiten.CursorPosition()
	if row, col, ok := CellAt(x, y, g.cellSize, g.sess.Size()); ok {
		g.sess.EditCell(row, col, alive)
	}
}

// Draw renders the current simulation state.
func (g *Game) Draw(screen *ebiten.Image) {
	g.painter.Blit(screen, g.sess.Cells(), g.onColor, g.offColor, g.cellSize)
	g.overlay.Draw(screen)
	g.hud.Draw(screen, g.sess.Stats())
}

// Layout returns the logical screen size.
func (g *Game) Layout(outsideWidth, outsideHeight int) (int, int) {
	s := g.sess.Size()
	return s.Cols * g.cellSize, s.Rows * g.cellSize
}
