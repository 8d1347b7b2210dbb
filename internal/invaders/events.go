package invaders

import "slices"

// EventType identifies a discrete simulation event.
type EventType int

const (
	EventHit  EventType = iota // A bullet destroyed an enemy
	EventWin                   // Last enemy destroyed
	EventLoss                  // Session lost
)

func (t EventType) String() string {
	switch t {
	case EventHit:
		return "hit"
	case EventWin:
		return "win"
	case EventLoss:
		return "loss"
	default:
		return "unknown"
	}
}

// Terminal event causes.
const (
	CauseCleared  = "cleared"  // All enemies destroyed
	CauseInvasion = "invasion" // An enemy reached the player line
	CauseAborted  = "aborted"  // Ended by the caller
)

// Event is emitted for the presentation layer to react to.
type Event struct {
	Type       EventType
	ScoreDelta int    // Points added by this event
	Score      int    // Score after the event
	Row, Col   int    // Enemy cell for hits
	Cause      string // Set on win/loss
}

// Terminal reports whether the event ends the session.
func (e Event) Terminal() bool {
	return e.Type == EventWin || e.Type == EventLoss
}

// EventHandler receives events synchronously as they happen.
type EventHandler func(Event)

// OnEvent subscribes a handler. Handlers are called in subscription order
// and must not call back into the session.
func (g *Game) OnEvent(h EventHandler) {
	if h != nil {
		g.handlers = append(g.handlers, h)
	}
}

func (g *Game) emit(e Event) {
	g.pending = append(g.pending, e)
	for _, h := range g.handlers {
		h(e)
	}
}

// drainEvents returns the events produced since the last drain.
func (g *Game) drainEvents() []Event {
	if len(g.pending) == 0 {
		return nil
	}
	events := slices.Clone(g.pending)
	g.pending = g.pending[:0]
	return events
}
