// Package session holds the interaction state machine that decides when the
// board accepts edits and when it advances generations.
package session

import (
	"errors"
	"fmt"
	"log/slog"

	"lifesim/internal/core"
	"lifesim/internal/life"
)

// Mode is the interaction state of a session.
type Mode int

const (
	// Editing accepts cell edits; generations do not advance.
	Editing Mode = iota
	// Running advances one generation per tick and rejects edits.
	Running
)

func (m Mode) String() string {
	switch m {
	case Editing:
		return "editing"
	case Running:
		return "running"
	default:
		return fmt.Sprintf("Mode(%d)", int(m))
	}
}

// ErrInvalidOptions is returned by New for unusable grid sizes or rates.
var ErrInvalidOptions = errors.New("session: invalid options")

// Options configures a Session.
type Options struct {
	Rows int
	Cols int

	// EditTPS is the loop rate while editing; RunTPS is the generation rate
	// while running.
	EditTPS int
	RunTPS  int

	Logger *slog.Logger
}

// Stats is the read-only projection shown next to the board.
type Stats struct {
	Mode       Mode
	Generation int
	LiveCells  int
}

// Session owns the live board, the snapshot taken when the last run started
// and the derived statistics.
type Session struct {
	opts Options
	log  *slog.Logger

	mode    Mode
	board   *life.Board
	scratch *life.Board

	snapshot     *life.Board
	snapshotLive int

	generation int
	live       int
}

// New creates a session in Editing mode with an all-dead board.
func New(opts Options) (*Session, error) {
	if opts.Rows <= 0 || opts.Cols <= 0 {
		return nil, fmt.Errorf("%w: grid %dx%d", ErrInvalidOptions, opts.Rows, opts.Cols)
	}
	if opts.EditTPS <= 0 || opts.RunTPS <= 0 {
		return nil, fmt.Errorf("%w: tick rates edit=%d run=%d", ErrInvalidOptions, opts.EditTPS, opts.RunTPS)
	}
	logger := opts.Logger
	if logger == nil {
		logger = slog.Default()
	}
	return &Session{
		opts:    opts,
		log:     logger.With("component", "session"),
		board:   life.NewBoard(opts.Rows, opts.Cols),
		scratch: life.NewBoard(opts.Rows, opts.Cols),
	}, nil
}

// Mode returns the current interaction state.
func (s *Session) Mode() Mode { return s.mode }

// Running reports whether generations are advancing.
func (s *Session) Running() bool { return s.mode == Running }

// Generation returns the number of ticks since the run started.
func (s *Session) Generation() int { return s.generation }

// LiveCells returns the number of live cells on the board.
func (s *Session) LiveCells() int { return s.live }

// HasSnapshot reports whether a run has been started at least once.
func (s *Session) HasSnapshot() bool { return s.snapshot != nil }

// Size returns the grid dimensions.
func (s *Session) Size() life.Size { return s.board.Size() }

// Alive reports the state of a cell. It panics when (row, col) is off the
// grid, like life.Board.
func (s *Session) Alive(row, col int) bool { return s.board.Alive(row, col) }

// Cells exposes the live board's row-major cell buffer for rendering. The
// slice is only valid until the next tick and must not be written.
func (s *Session) Cells() []uint8 { return s.board.Cells() }

// String renders the live board in plaintext form.
func (s *Session) String() string { return s.board.String() }

// Stats returns the values shown by the statistics display.
func (s *Session) Stats() Stats {
	return Stats{Mode: s.mode, Generation: s.generation, LiveCells: s.live}
}

// TPS returns the loop rate appropriate for the current mode.
func (s *Session) TPS() int {
	if s.mode == Running {
		return s.opts.RunTPS
	}
	return s.opts.EditTPS
}

// EditCell sets one cell while editing. It reports false and changes nothing
// when the session is running or the coordinate is off the grid.
func (s *Session) EditCell(row, col int, alive bool) bool {
	if s.mode != Editing || !s.board.Contains(row, col) {
		return false
	}
	was := s.board.Alive(row, col)
	if was == alive {
		return true
	}
	s.board.Set(row, col, alive)
	if alive {
		s.live++
	} else {
		s.live--
	}
	return true
}

// Randomize fills the board with a deterministic random soup while editing.
func (s *Session) Randomize(seed int64, density float64) bool {
	if s.mode != Editing {
		return false
	}
	s.live = s.board.Randomize(core.NewRNG(seed), density)
	s.log.Debug("randomized board", "seed", seed, "density", density, "live", s.live)
	return true
}

// Stamp places a pattern with its top-left corner at (row, col) while
// editing. Cells falling off the grid are dropped.
func (s *Session) Stamp(p life.Pattern, row, col int) bool {
	if s.mode != Editing {
		return false
	}
	s.live += s.board.Stamp(p, row, col)
	return true
}

// Start snapshots the board and switches to Running. It reports false when
// already running.
func (s *Session) Start() bool {
	if s.mode == Running {
		return false
	}
	if s.snapshot == nil {
		s.snapshot = s.board.Clone()
	} else {
		s.snapshot.CopyFrom(s.board)
	}
	s.snapshotLive = s.live
	s.mode = Running
	s.log.Debug("run started", "live", s.live)
	return true
}

// Tick advances one generation. It reports false and does nothing while
// editing.
func (s *Session) Tick() bool {
	if s.mode != Running {
		return false
	}
	s.live = s.board.StepInto(s.scratch)
	s.board, s.scratch = s.scratch, s.board
	s.generation++
	return true
}

// Reset kills every cell and returns to Editing. The snapshot is kept so a
// later Revert still restores the board from before the last run.
func (s *Session) Reset() {
	s.board.Clear()
	s.live = 0
	s.stop("reset")
}

// Revert restores the board captured by the last Start, or an empty board
// when no run has started yet, and returns to Editing.
func (s *Session) Revert() {
	if s.snapshot == nil {
		s.board.Clear()
		s.live = 0
	} else {
		s.board.CopyFrom(s.snapshot)
		s.live = s.snapshotLive
	}
	s.stop("revert")
}

func (s *Session) stop(reason string) {
	s.log.Debug("returned to editing", "reason", reason, "generation", s.generation, "live", s.live)
	s.mode = Editing
	s.generation = 0
}
