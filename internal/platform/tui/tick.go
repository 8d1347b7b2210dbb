// Package tui runs Terminal Invaders in the terminal with Bubble Tea.
// It owns the frame loop, the formation cadence, key handling, drawing and
// the audio hooks; the simulation itself lives in package invaders.
package tui

import (
	"time"

	tea "github.com/charmbracelet/bubbletea"
)

// TickMsg is sent to trigger a simulation frame.
type TickMsg time.Time

// FormationMsg is sent when the formation cadence fires. Gen identifies
// the arming it belongs to; messages from older armings are stale.
type FormationMsg struct {
	Gen uint64
}

// tickCmd returns a Bubble Tea command that sends tick messages at the specified rate.
func tickCmd(tickRate int) tea.Cmd {
	interval := time.Second / time.Duration(max(tickRate, 1))
	return tea.Tick(interval, func(t time.Time) tea.Msg {
		return TickMsg(t)
	})
}

// formationCmd fires one FormationMsg for gen after interval.
func formationCmd(gen uint64, interval time.Duration) tea.Cmd {
	return tea.Tick(interval, func(time.Time) tea.Msg {
		return FormationMsg{Gen: gen}
	})
}
