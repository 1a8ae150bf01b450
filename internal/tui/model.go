package tui

import (
	"log/slog"
	"strings"
	"time"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"lifesim/internal/config"
	"lifesim/internal/life"
	"lifesim/internal/session"
	"lifesim/internal/ui"
)

// tickMsg advances the run it was scheduled for. Ticks from a run that has
// since been reset or reverted are dropped.
type tickMsg struct {
	run int
}

// Model is the bubbletea model driving a session from the terminal.
type Model struct {
	sess *session.Session
	keys KeyMap
	help help.Model
	log  *slog.Logger

	cursor    life.Cell
	run       int
	seed      int64
	density   float64
	showStats bool
}

// NewModel creates a model for sess with the cursor in the middle of the grid.
func NewModel(sess *session.Session, cfg config.Config, logger *slog.Logger) Model {
	if logger == nil {
		logger = slog.Default()
	}
	size := sess.Size()
	return Model{
		sess:      sess,
		keys:      DefaultKeyMap(),
		help:      help.New(),
		log:       logger,
		cursor:    life.Cell{Row: size.Rows / 2, Col: size.Cols / 2},
		seed:      cfg.Seed,
		density:   cfg.Density,
		showStats: cfg.ShowStats,
	}
}

// Init implements tea.Model.
func (m Model) Init() tea.Cmd { return nil }

func (m Model) tickCmd() tea.Cmd {
	run := m.run
	interval := time.Second / time.Duration(m.sess.TPS())
	return tea.Tick(interval, func(time.Time) tea.Msg {
		return tickMsg{run: run}
	})
}

// Update implements tea.Model.
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tickMsg:
		if msg.run != m.run || !m.sess.Running() {
			return m, nil
		}
		m.sess.Tick()
		return m, m.tickCmd()

	case tea.MouseMsg:
		if msg.X < 0 || (msg.Action != tea.MouseActionPress && msg.Action != tea.MouseActionMotion) {
			return m, nil
		}
		row, col := msg.Y, msg.X/cellWidth
		switch msg.Button {
		case tea.MouseButtonLeft:
			m.sess.EditCell(row, col, true)
		case tea.MouseButtonRight:
			m.sess.EditCell(row, col, false)
		}
		return m, nil

	case tea.KeyMsg:
		return m.handleKey(msg)
	}
	return m, nil
}

func (m Model) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	size := m.sess.Size()
	switch {
	case key.Matches(msg, m.keys.Quit):
		return m, tea.Quit
	case key.Matches(msg, m.keys.Up):
		m.cursor.Row = max(m.cursor.Row-1, 0)
	case key.Matches(msg, m.keys.Down):
		m.cursor.Row = min(m.cursor.Row+1, size.Rows-1)
	case key.Matches(msg, m.keys.Left):
		m.cursor.Col = max(m.cursor.Col-1, 0)
	case key.Matches(msg, m.keys.Right):
		m.cursor.Col = min(m.cursor.Col+1, size.Cols-1)
	case key.Matches(msg, m.keys.Place):
		m.sess.EditCell(m.cursor.Row, m.cursor.Col, true)
	case key.Matches(msg, m.keys.Erase):
		m.sess.EditCell(m.cursor.Row, m.cursor.Col, false)
	case key.Matches(msg, m.keys.Random):
		m.seed++
		if m.sess.Randomize(m.seed, m.density) {
			m.log.Info("random soup", "seed", m.seed, "live", m.sess.LiveCells())
		}
	case key.Matches(msg, m.keys.Start):
		if m.sess.Start() {
			m.run++
			return m, m.tickCmd()
		}
	case key.Matches(msg, m.keys.Reset):
		m.sess.Reset()
	case key.Matches(msg, m.keys.Revert):
		m.sess.Revert()
	case key.Matches(msg, m.keys.Stats):
		m.showStats = !m.showStats
	case key.Matches(msg, m.keys.Help):
		m.help.ShowAll = !m.help.ShowAll
	}
	return m, nil
}

// View implements tea.Model.
func (m Model) View() string {
	sections := []string{m.renderGrid()}
	if m.showStats {
		sections = append(sections, m.renderStats())
	}
	sections = append(sections, m.help.View(m.keys))
	return lipgloss.JoinVertical(lipgloss.Left, sections...)
}

func (m Model) renderGrid() string {
	size := m.sess.Size()
	showCursor := !m.sess.Running()
	var b strings.Builder
	for row := 0; row < size.Rows; row++ {
		if row > 0 {
			b.WriteByte('\n')
		}
		for col := 0; col < size.Cols; col++ {
			alive := m.sess.Alive(row, col)
			atCursor := showCursor && row == m.cursor.Row && col == m.cursor.Col
			b.WriteString(cellStyle(alive, atCursor).Render(glyph(alive)))
		}
	}
	return b.String()
}

func (m Model) renderStats() string {
	st := m.sess.Stats()
	badge := EditingBadgeStyle.Render(ui.ModeLabel(st.Mode))
	if st.Mode == session.Running {
		badge = RunningBadgeStyle.Render(ui.ModeLabel(st.Mode))
	}
	return StatsStyle.Render(strings.Join(ui.StatsLines(st), "   ")) + "\n" + badge
}

func glyph(alive bool) string {
	if alive {
		return glyphAlive
	}
	return glyphDead
}

func cellStyle(alive, atCursor bool) lipgloss.Style {
	switch {
	case atCursor && alive:
		return CursorAliveStyle
	case atCursor:
		return CursorDeadStyle
	case alive:
		return AliveStyle
	default:
		return DeadStyle
	}
}
