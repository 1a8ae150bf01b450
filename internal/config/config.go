// Package config gathers the startup settings shared by every front-end:
// defaults, an optional YAML file, command-line flags and key=value overrides,
// applied in that order.
package config

import (
	"errors"
	"flag"
	"fmt"
	"io"
	"log/slog"
	"os"
	"strconv"
	"strings"

	"gopkg.in/yaml.v3"

	"lifesim/internal/life"
	"lifesim/internal/session"
)

// ErrInvalid marks configuration that cannot be used to start a session.
var ErrInvalid = errors.New("invalid config")

// Config holds the startup settings. Grid size and rates are fixed for the
// lifetime of the process.
type Config struct {
	Rows     int `yaml:"rows"`
	Cols     int `yaml:"cols"`
	CellSize int `yaml:"cell_size"`

	EditTPS int `yaml:"edit_tps"`
	RunTPS  int `yaml:"run_tps"`

	ShowGrid  bool `yaml:"show_grid"`
	ShowStats bool `yaml:"show_stats"`

	// Seed and Density drive the random soup.
	Seed    int64   `yaml:"seed"`
	Density float64 `yaml:"density"`

	// Pattern is an optional plaintext pattern placed on the board at
	// startup with its top-left corner at (PatternRow, PatternCol).
	Pattern    string `yaml:"pattern"`
	PatternRow int    `yaml:"pattern_row"`
	PatternCol int    `yaml:"pattern_col"`

	LogLevel string `yaml:"log_level"`
}

// DefaultConfig returns the standard configuration: a 12x12 board of 30px
// cells running at 10 generations per second.
func DefaultConfig() Config {
	return Config{
		Rows:      12,
		Cols:      12,
		CellSize:  30,
		EditTPS:   60,
		RunTPS:    10,
		ShowGrid:  true,
		ShowStats: true,
		Seed:      42,
		Density:   0.35,
		LogLevel:  "info",
	}
}

// Bind attaches the configuration to the provided FlagSet.
func (c *Config) Bind(fs *flag.FlagSet) {
	fs.IntVar(&c.Rows, "rows", c.Rows, "grid rows")
	fs.IntVar(&c.Cols, "cols", c.Cols, "grid columns")
	fs.IntVar(&c.CellSize, "cell-size", c.CellSize, "cell size in pixels")
	fs.IntVar(&c.EditTPS, "edit-tps", c.EditTPS, "loop rate while editing")
	fs.IntVar(&c.RunTPS, "run-tps", c.RunTPS, "generations per second while running")
	fs.BoolVar(&c.ShowGrid, "grid", c.ShowGrid, "draw grid lines")
	fs.BoolVar(&c.ShowStats, "stats", c.ShowStats, "show generation and live cell counts")
	fs.Int64Var(&c.Seed, "seed", c.Seed, "seed for random soup")
	fs.Float64Var(&c.Density, "density", c.Density, "live cell probability for random soup")
	fs.Var(patternValue{&c.Pattern}, "pattern", "plaintext pattern placed at startup, rows separated by '/'")
	fs.IntVar(&c.PatternRow, "pattern-row", c.PatternRow, "row of the pattern's top-left corner")
	fs.IntVar(&c.PatternCol, "pattern-col", c.PatternCol, "column of the pattern's top-left corner")
	fs.StringVar(&c.LogLevel, "log-level", c.LogLevel, "log level (debug, info, warn, error)")
}

// patternValue lets a multi-line pattern travel through a single flag by
// using '/' as the row separator.
type patternValue struct {
	p *string
}

func (v patternValue) String() string {
	if v.p == nil {
		return ""
	}
	return strings.ReplaceAll(*v.p, "\n", "/")
}

func (v patternValue) Set(s string) error {
	*v.p = strings.ReplaceAll(s, "/", "\n")
	return nil
}

// LoadFile decodes a YAML file on top of base. Keys missing from the file keep
// their base values; unknown keys are rejected.
func LoadFile(path string, base Config) (Config, error) {
	f, err := os.Open(path)
	if err != nil {
		return base, fmt.Errorf("open config %s: %w", path, err)
	}
	defer f.Close()

	cfg := base
	dec := yaml.NewDecoder(f)
	dec.KnownFields(true)
	if err := dec.Decode(&cfg); err != nil && !errors.Is(err, io.EOF) {
		return base, fmt.Errorf("decode config %s: %w", path, err)
	}
	return cfg, nil
}

// FromMap applies key=value overrides using the YAML key names.
func (c *Config) FromMap(kv map[string]string) error {
	for k, v := range kv {
		if err := c.set(k, v); err != nil {
			return fmt.Errorf("%w: %s=%q: %v", ErrInvalid, k, v, err)
		}
	}
	return nil
}

func (c *Config) set(key, value string) error {
	var err error
	switch key {
	case "rows":
		c.Rows, err = strconv.Atoi(value)
	case "cols":
		c.Cols, err = strconv.Atoi(value)
	case "cell_size":
		c.CellSize, err = strconv.Atoi(value)
	case "edit_tps":
		c.EditTPS, err = strconv.Atoi(value)
	case "run_tps":
		c.RunTPS, err = strconv.Atoi(value)
	case "show_grid":
		c.ShowGrid, err = strconv.ParseBool(value)
	case "show_stats":
		c.ShowStats, err = strconv.ParseBool(value)
	case "seed":
		c.Seed, err = strconv.ParseInt(value, 10, 64)
	case "density":
		c.Density, err = strconv.ParseFloat(value, 64)
	case "pattern":
		c.Pattern = strings.ReplaceAll(value, "/", "\n")
	case "pattern_row":
		c.PatternRow, err = strconv.Atoi(value)
	case "pattern_col":
		c.PatternCol, err = strconv.Atoi(value)
	case "log_level":
		c.LogLevel = value
	default:
		return errors.New("unknown key")
	}
	return err
}

// Validate reports the first setting that would prevent startup.
func (c Config) Validate() error {
	switch {
	case c.Rows <= 0 || c.Cols <= 0:
		return fmt.Errorf("%w: grid must be positive, got %dx%d", ErrInvalid, c.Rows, c.Cols)
	case c.CellSize <= 0:
		return fmt.Errorf("%w: cell size must be positive, got %d", ErrInvalid, c.CellSize)
	case c.EditTPS <= 0 || c.RunTPS <= 0:
		return fmt.Errorf("%w: tick rates must be positive, got edit=%d run=%d", ErrInvalid, c.EditTPS, c.RunTPS)
	case c.Density < 0 || c.Density > 1:
		return fmt.Errorf("%w: density must be within [0, 1], got %g", ErrInvalid, c.Density)
	}
	if _, err := c.Level(); err != nil {
		return err
	}
	if _, err := life.ParsePattern(c.Pattern); err != nil {
		return fmt.Errorf("%w: %v", ErrInvalid, err)
	}
	return nil
}

// Level parses LogLevel.
func (c Config) Level() (slog.Level, error) {
	var level slog.Level
	if err := level.UnmarshalText([]byte(c.LogLevel)); err != nil {
		return level, fmt.Errorf("%w: log level %q", ErrInvalid, c.LogLevel)
	}
	return level, nil
}

// NewLogger builds a text logger writing to w at the configured level.
func (c Config) NewLogger(w io.Writer) (*slog.Logger, error) {
	level, err := c.Level()
	if err != nil {
		return nil, err
	}
	return slog.New(slog.NewTextHandler(w, &slog.HandlerOptions{Level: level})), nil
}

// SessionOptions maps the grid and rate settings onto session options.
func (c Config) SessionOptions(logger *slog.Logger) session.Options {
	return session.Options{
		Rows:    c.Rows,
		Cols:    c.Cols,
		EditTPS: c.EditTPS,
		RunTPS:  c.RunTPS,
		Logger:  logger,
	}
}

// NewSession creates a session and places the configured pattern, if any.
func (c Config) NewSession(logger *slog.Logger) (*session.Session, error) {
	s, err := session.New(c.SessionOptions(logger))
	if err != nil {
		return nil, err
	}
	if strings.TrimSpace(c.Pattern) == "" {
		return s, nil
	}
	p, err := life.ParsePattern(c.Pattern)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrInvalid, err)
	}
	s.Stamp(p, c.PatternRow, c.PatternCol)
	return s, nil
}
