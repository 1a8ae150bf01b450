//go:build ebiten

package main

import (
	"errors"
	"flag"
	"log"
	"log/slog"
	"os"

	"lifesim/internal/app"
	"lifesim/internal/config"

	"github.com/hajimehoshi/ebiten/v2"
)

func main() {
	cfg, err := config.Parse(flag.CommandLine, os.Args[1:])
	if err != nil {
		slog.Error("invalid configuration", "error", err)
		os.Exit(2)
	}
	logger, err := cfg.NewLogger(os.Stderr)
	if err != nil {
		slog.Error("invalid configuration", "error", err)
		os.Exit(2)
	}

	sess, err := cfg.NewSession(logger)
	if err != nil {
		logger.Error("failed to create session", "error", err)
		os.Exit(1)
	}

	game := app.New(sess, cfg, logger)
	size := sess.Size()

	ebiten.SetWindowTitle("Conway's Game of Life")
	ebiten.SetTPS(cfg.EditTPS)
	ebiten.SetWindowSize(size.Cols*cfg.CellSize, size.Rows*cfg.CellSize)

	if err := ebiten.RunGame(game); err != nil && !errors.Is(err, ebiten.Termination) {
		log.Fatal(err)
	}
}
