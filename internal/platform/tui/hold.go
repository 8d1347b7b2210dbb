package tui

import (
	"time"

	"github.com/vovakirdan/tui-invaders/internal/invaders"
)

// holdTimeout is how long a direction stays held after its last key event.
// Terminals report key repeats but never releases, so a held key is one
// that keeps repeating. It must outlast the initial auto-repeat delay
// (500 to 660 ms on common desktops) or a held key stutters.
const holdTimeout = 600 * time.Millisecond

// holdTracker turns key press/repeat events into held-direction state.
type holdTracker struct {
	timeout time.Duration
	left    time.Time
	right   time.Time
}

func newHoldTracker(timeout time.Duration) *holdTracker {
	return &holdTracker{timeout: timeout}
}

// press marks dir held until now+timeout. Pressing one direction releases
// the other immediately.
func (h *holdTracker) press(dir invaders.Direction, now time.Time) {
	until := now.Add(h.timeout)
	switch dir {
	case invaders.DirLeft:
		h.left, h.right = until, time.Time{}
	case invaders.DirRight:
		h.right, h.left = until, time.Time{}
	}
}

// held reports whether dir is still held at now.
func (h *holdTracker) held(dir invaders.Direction, now time.Time) bool {
	switch dir {
	case invaders.DirLeft:
		return now.Before(h.left)
	case invaders.DirRight:
		return now.Before(h.right)
	}
	return false
}

func (h *holdTracker) releaseAll() {
	h.left, h.right = time.Time{}, time.Time{}
}
