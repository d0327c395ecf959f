// Package tui hosts the brick breaker session in a Bubble Tea program.
// It owns the frame clock, maps keys and mouse motion to session input and
// draws snapshots into a colored cell buffer.
package tui

import (
	"time"

	tea "github.com/charmbracelet/bubbletea"
)

// TickMsg is sent once per simulation frame.
type TickMsg time.Time

// tickCmd schedules the next frame at the given rate (frames per second).
func tickCmd(fps int) tea.Cmd {
	if fps <= 0 {
		fps = 60
	}
	interval := time.Second / time.Duration(fps)
	return tea.Tick(interval, func(t time.Time) tea.Msg {
		return TickMsg(t)
	})
}
