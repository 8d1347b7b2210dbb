package tui

import (
	"time"

	tea "github.com/charmbracelet/bubbletea"
)

// teaCadence implements invaders.Cadence on top of tea.Tick.
//
// Every Arm and Cancel bumps the generation, so a FormationMsg already in
// flight from an earlier arming is recognised as stale and dropped. Arm
// only records the command; the model hands it to Bubble Tea via Take.
type teaCadence struct {
	gen      uint64
	interval time.Duration
	armed    bool
	pending  tea.Cmd
}

func (c *teaCadence) Arm(interval time.Duration) {
	c.gen++
	c.interval = interval
	c.armed = true
	c.pending = formationCmd(c.gen, interval)
}

func (c *teaCadence) Cancel() {
	c.gen++
	c.armed = false
	c.pending = nil
}

// Accept reports whether msg belongs to the current arming.
func (c *teaCadence) Accept(msg FormationMsg) bool {
	return c.armed && msg.Gen == c.gen
}

// Next returns the command for the tick following an accepted one: the
// re-armed command if the tick changed the period, nothing if it cancelled,
// otherwise another tick at the same period.
func (c *teaCadence) Next() tea.Cmd {
	if c.pending != nil {
		return c.Take()
	}
	if !c.armed {
		return nil
	}
	return formationCmd(c.gen, c.interval)
}

// Take returns and clears the command recorded by the last Arm.
func (c *teaCadence) Take() tea.Cmd {
	cmd := c.pending
	c.pending = nil
	return cmd
}
