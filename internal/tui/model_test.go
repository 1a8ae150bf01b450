package tui

import (
	"io"
	"log/slog"
	"strings"
	"testing"

	tea "github.com/charmbracelet/bubbletea"

	"lifesim/internal/config"
	"lifesim/internal/session"
)

func newTestModel(t *testing.T, rows, cols int) Model {
	t.Helper()
	cfg := config.DefaultConfig()
	cfg.Rows, cfg.Cols = rows, cols
	logger := slog.New(slog.NewTextHandler(io.Discard, nil))
	sess, err := cfg.NewSession(logger)
	if err != nil {
		t.Fatalf("NewSession: %v", err)
	}
	return NewModel(sess, cfg, logger)
}

func keyMsg(k string) tea.KeyMsg {
	switch k {
	case " ":
		return tea.KeyMsg{Type: tea.KeySpace, Runes: []rune{' '}}
	case "up":
		return tea.KeyMsg{Type: tea.KeyUp}
	case "down":
		return tea.KeyMsg{Type: tea.KeyDown}
	case "left":
		return tea.KeyMsg{Type: tea.KeyLeft}
	case "right":
		return tea.KeyMsg{Type: tea.KeyRight}
	case "enter":
		return tea.KeyMsg{Type: tea.KeyEnter}
	case "ctrl+c":
		return tea.KeyMsg{Type: tea.KeyCtrlC}
	}
	return tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune(k)}
}

func press(t *testing.T, m Model, keys ...string) (Model, tea.Cmd) {
	t.Helper()
	var cmd tea.Cmd
	for _, k := range keys {
		var next tea.Model
		next, cmd = m.Update(keyMsg(k))
		m = next.(Model)
	}
	return m, cmd
}

func send(t *testing.T, m Model, msg tea.Msg) (Model, tea.Cmd) {
	t.Helper()
	next, cmd := m.Update(msg)
	return next.(Model), cmd
}

func TestCursorStartsCentredAndClamps(t *testing.T) {
	m := newTestModel(t, 5, 7)
	if m.cursor.Row != 2 || m.cursor.Col != 3 {
		t.Fatalf("cursor starts at %+v, want (2,3)", m.cursor)
	}
	m, _ = press(t, m, "up", "up", "up", "up", "left", "h", "h", "h", "h")
	if m.cursor.Row != 0 || m.cursor.Col != 0 {
		t.Fatalf("cursor should clamp at origin, got %+v", m.cursor)
	}
	m, _ = press(t, m, "j", "j", "j", "j", "j", "j", "right", "l", "l", "l", "l", "l", "l", "l")
	if m.cursor.Row != 4 || m.cursor.Col != 6 {
		t.Fatalf("cursor should clamp at far corner, got %+v", m.cursor)
	}
}

func TestPlaceAndErase(t *testing.T) {
	m := newTestModel(t, 5, 5)
	m, _ = press(t, m, "o", "right", "enter")
	if !m.sess.Alive(2, 2) || !m.sess.Alive(2, 3) {
		t.Fatal("expected cells placed at (2,2) and (2,3)")
	}
	m, _ = press(t, m, "x")
	if m.sess.Alive(2, 3) || m.sess.LiveCells() != 1 {
		t.Fatal("erase should clear the cell under the cursor")
	}
}

func TestStartSchedulesTicks(t *testing.T) {
	m := newTestModel(t, 5, 5)
	m, _ = press(t, m, "up", "o", "down", "o", "down", "o")
	m, cmd := press(t, m, " ")
	if !m.sess.Running() {
		t.Fatal("space should start the run")
	}
	if cmd == nil {
		t.Fatal("start should schedule a tick")
	}

	m, cmd = send(t, m, tickMsg{run: m.run})
	if m.sess.Generation() != 1 {
		t.Fatalf("generation = %d, want 1", m.sess.Generation())
	}
	if cmd == nil {
		t.Fatal("tick should schedule the next tick")
	}
	if !m.sess.Alive(2, 1) || !m.sess.Alive(2, 3) || m.sess.Alive(1, 2) {
		t.Fatal("vertical blinker should have flipped horizontal")
	}
}

func TestStaleTicksIgnored(t *testing.T) {
	m := newTestModel(t, 5, 5)
	m, _ = press(t, m, "o", " ")
	stale := tickMsg{run: m.run}

	m, _ = press(t, m, "t")
	m, cmd := send(t, m, stale)
	if cmd != nil || m.sess.Generation() != 0 {
		t.Fatal("tick after revert should be dropped")
	}

	m, _ = press(t, m, " ")
	m, _ = send(t, m, stale)
	if m.sess.Generation() != 0 {
		t.Fatal("tick from a previous run should be dropped")
	}
}

func TestEditsIgnoredWhileRunning(t *testing.T) {
	m := newTestModel(t, 5, 5)
	m, _ = press(t, m, " ", "up", "o", "s")
	if m.sess.LiveCells() != 0 {
		t.Fatal("edits while running must be ignored")
	}
}

func TestRevertAndReset(t *testing.T) {
	m := newTestModel(t, 6, 6)
	m, _ = press(t, m, "o", "right", "o")
	m, _ = press(t, m, " ")
	m, _ = send(t, m, tickMsg{run: m.run})
	if m.sess.LiveCells() != 0 {
		t.Fatalf("pair should die of underpopulation, live=%d", m.sess.LiveCells())
	}

	m, _ = press(t, m, "t")
	if m.sess.Running() || m.sess.LiveCells() != 2 || !m.sess.Alive(3, 3) || !m.sess.Alive(3, 4) {
		t.Fatal("revert should restore the pre-run pair")
	}

	m, _ = press(t, m, "r")
	if m.sess.LiveCells() != 0 || m.sess.Generation() != 0 {
		t.Fatal("reset should clear the board")
	}
	m, _ = press(t, m, "t")
	if m.sess.LiveCells() != 2 {
		t.Fatal("revert after reset should still restore the snapshot")
	}
}

func TestRandomSoup(t *testing.T) {
	m := newTestModel(t, 10, 10)
	m, _ = press(t, m, "s")
	if m.sess.LiveCells() == 0 {
		t.Fatal("random soup should place cells")
	}
	m, _ = press(t, m, "s")
	if m.seed != config.DefaultConfig().Seed+2 {
		t.Fatalf("each soup should advance the seed, got %d", m.seed)
	}
}

func TestMouseEdits(t *testing.T) {
	m := newTestModel(t, 4, 4)
	m, _ = send(t, m, tea.MouseMsg{X: 3, Y: 1, Button: tea.MouseButtonLeft, Action: tea.MouseActionPress})
	if !m.sess.Alive(1, 1) {
		t.Fatal("left click should place a cell")
	}
	m, _ = send(t, m, tea.MouseMsg{X: 40, Y: 1, Button: tea.MouseButtonLeft, Action: tea.MouseActionPress})
	if m.sess.LiveCells() != 1 {
		t.Fatal("click outside the grid should be ignored")
	}
	m, _ = send(t, m, tea.MouseMsg{X: 2, Y: 1, Button: tea.MouseButtonRight, Action: tea.MouseActionMotion})
	if m.sess.Alive(1, 1) {
		t.Fatal("right drag should erase the cell")
	}
}

func TestQuit(t *testing.T) {
	for _, k := range []string{"q", "ctrl+c"} {
		m := newTestModel(t, 3, 3)
		_, cmd := press(t, m, k)
		if cmd == nil {
			t.Fatalf("%q should return a command", k)
		}
		if _, ok := cmd().(tea.QuitMsg); !ok {
			t.Fatalf("%q should quit", k)
		}
	}
}

func TestViewShowsStats(t *testing.T) {
	m := newTestModel(t, 3, 3)
	m, _ = press(t, m, "o")
	view := m.View()
	for _, want := range []string{"Generations: 0", "Cells Alive: 1", "EDITING"} {
		if !strings.Contains(view, want) {
			t.Fatalf("view missing %q:\n%s", want, view)
		}
	}
	m, _ = press(t, m, "v")
	if strings.Contains(m.View(), "Generations:") {
		t.Fatal("stats should be hidden after toggling")
	}
}

func TestViewRunningBadge(t *testing.T) {
	m := newTestModel(t, 3, 3)
	m, _ = press(t, m, " ")
	if m.sess.Mode() != session.Running {
		t.Fatal("expected running")
	}
	if !strings.Contains(m.View(), "RUNNING") {
		t.Fatal("view should show the running badge")
	}
}
