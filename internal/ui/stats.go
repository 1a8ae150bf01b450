package ui

import (
	"strconv"

	"lifesim/internal/session"
)

// StatsLines formats the statistics display, one entry per line.
func StatsLines(st session.Stats) []string {
	return []string{
		"Generations: " + strconv.Itoa(st.Generation),
		"Cells Alive: " + strconv.Itoa(st.LiveCells),
	}
}

// ModeLabel returns the short status shown beside the statistics.
func ModeLabel(m session.Mode) string {
	if m == session.Running {
		return "RUNNING"
	}
	return "EDITING"
}
