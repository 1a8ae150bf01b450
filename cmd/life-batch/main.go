package main

import (
	"flag"
	"fmt"
	"log/slog"
	"os"
	"strings"

	"lifesim/internal/config"
	"lifesim/internal/session"
)

func main() {
	generations := flag.Int("generations", 100, "number of generations to run")
	every := flag.Int("every", 0, "print the board every N generations (0 prints only the last)")
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
	if strings.TrimSpace(cfg.Pattern) == "" {
		sess.Randomize(cfg.Seed, cfg.Density)
	}

	printBoard(sess)
	sess.Start()
	for i := 1; i <= *generations; i++ {
		sess.Tick()
		if *every > 0 && i%*every == 0 && i != *generations {
			printBoard(sess)
		}
		if sess.LiveCells() == 0 {
			logger.Info("population died out", "generation", sess.Generation())
			break
		}
	}
	printBoard(sess)
	logger.Info("run finished", "generation", sess.Generation(), "live", sess.LiveCells())
}

func printBoard(sess *session.Session) {
	st := sess.Stats()
	fmt.Printf("generation %d, %d alive\n%s\n\n", st.Generation, st.LiveCells, sess)
}
