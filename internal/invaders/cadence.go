package invaders

import "time"

// Cadence schedules formation ticks on a wall-clock period independent of
// the frame rate. Implementations must guarantee that after Cancel no tick
// from an earlier arming is delivered.
type Cadence interface {
	// Arm (re)starts the cadence; the first tick is due one interval from now.
	Arm(interval time.Duration)
	// Cancel stops the cadence. Safe to call when not armed.
	Cancel()
}

// VirtualCadence is a Cadence driven by a simulated clock.
// It is used headless and in tests; the TUI has its own message-based one.
type VirtualCadence struct {
	interval  time.Duration
	remaining time.Duration
	armed     bool
	arms      int
}

// NewVirtualCadence returns a disarmed cadence.
func NewVirtualCadence() *VirtualCadence {
	return &VirtualCadence{}
}

// Arm implements Cadence.
func (c *VirtualCadence) Arm(interval time.Duration) {
	c.interval = interval
	c.remaining = interval
	c.armed = true
	c.arms++
}

// Cancel implements Cadence.
func (c *VirtualCadence) Cancel() {
	c.armed = false
}

// Advance moves the clock forward by dt and calls fire for every period
// that elapses. fire may re-arm or cancel the cadence; the next fire time
// is recomputed after every call. Returns the number of ticks fired.
func (c *VirtualCadence) Advance(dt time.Duration, fire func()) int {
	fired := 0
	for c.armed && c.interval > 0 && dt >= c.remaining {
		dt -= c.remaining
		c.remaining = c.interval
		fired++
		fire()
	}
	if c.armed {
		c.remaining -= dt
	}
	return fired
}

// Armed reports whether ticks are currently scheduled.
func (c *VirtualCadence) Armed() bool { return c.armed }

// Interval returns the period of the last arming.
func (c *VirtualCadence) Interval() time.Duration { return c.interval }

// Arms returns how many times the cadence has been armed.
func (c *VirtualCadence) Arms() int { return c.arms }
