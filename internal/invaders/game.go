// Package invaders implements the Terminal Invaders simulation: a ship at
// the bottom of the field shooting at a formation that sweeps sideways,
// descends at the edges and speeds up as it thins out.
//
// The simulation works in world units and never renders, plays sound or
// reads the clock. The platform drives it through Tick (once per frame) and
// FormationTick (on the Cadence it was given), and reacts to Events.
package invaders

import (
	"time"

	"github.com/vovakirdan/tui-invaders/internal/config"
	"github.com/vovakirdan/tui-invaders/internal/core"
)

// Game owns the whole session state. It is not safe for concurrent use;
// the frame loop and the formation cadence must run on one goroutine.
type Game struct {
	cfg     config.InvadersConfig
	cadence Cadence

	player    Player
	bullets   []Bullet
	enemies   []Enemy
	formation Formation

	// Held input
	left  bool
	right bool

	// Session state
	score   int
	lives   int
	over    bool
	won     bool
	paused  bool
	frame   uint64
	elapsed time.Duration

	handlers []EventHandler
	pending  []Event
}

// New creates a session and resets it. A nil cadence gets a VirtualCadence.
func New(cfg config.InvadersConfig, cadence Cadence) *Game {
	if cadence == nil {
		cadence = NewVirtualCadence()
	}
	g := &Game{
		cfg:     cfg,
		cadence: cadence,
		bullets: make([]Bullet, 0, cfg.Bullets.MaxLive),
		enemies: make([]Enemy, 0, cfg.Formation.Cells()),
	}
	g.Reset()
	return g
}

// Reset restarts the session at the canonical layout and re-arms the
// formation cadence. Any earlier arming is cancelled first.
func (g *Game) Reset() {
	f, p := g.cfg.Field, g.cfg.Player

	g.player = Player{core.NewRect((f.Width-p.Width)/2, f.Height-p.BottomOffset, p.Width, p.Height)}
	g.bullets = g.bullets[:0]
	g.spawnFormation()

	g.left, g.right = false, false
	g.score = 0
	g.lives = g.cfg.Scoring.Lives
	g.over = false
	g.won = false
	g.paused = false
	g.frame = 0
	g.elapsed = 0
	g.pending = g.pending[:0]

	g.cadence.Cancel()
	g.cadence.Arm(g.formation.Interval)
}

// Fire spawns a bullet at the ship's muzzle. It does nothing when the
// session is over or paused, or when the live-bullet cap is reached.
// Returns whether a bullet was spawned.
func (g *Game) Fire() bool {
	b := g.cfg.Bullets
	if g.over || g.paused || len(g.bullets) >= b.MaxLive {
		return false
	}
	x := g.player.CenterX() - b.Width/2
	y := g.player.Y - b.MuzzleOffset
	g.bullets = append(g.bullets, Bullet{Rect: core.NewRect(x, y, b.Width, b.Height), VY: -b.Speed})
	return true
}

// SetDirectionHeld records whether a direction key is held.
// Holding both directions cancels out.
func (g *Game) SetDirectionHeld(dir Direction, pressed bool) {
	switch dir {
	case DirLeft:
		g.left = pressed
	case DirRight:
		g.right = pressed
	}
}

// TogglePause pauses or resumes play. The formation cadence is cancelled
// while paused and re-armed at the current interval on resume.
// Has no effect once the session is over.
func (g *Game) TogglePause() bool {
	if g.over {
		return g.paused
	}
	g.paused = !g.paused
	if g.paused {
		g.cadence.Cancel()
	} else {
		g.cadence.Arm(g.formation.Interval)
	}
	return g.paused
}

// EndSession finishes the session. A win adds the win bonus. The formation
// cadence is cancelled and a terminal event is emitted. Subsequent calls
// are no-ops.
func (g *Game) EndSession(won bool) {
	cause := CauseAborted
	if won {
		cause = CauseCleared
	}
	g.end(won, cause)
}

func (g *Game) end(won bool, cause string) {
	if g.over {
		return
	}
	g.over = true
	g.won = won
	g.cadence.Cancel()

	if won {
		bonus := g.cfg.Scoring.WinBonus
		g.score += bonus
		g.emit(Event{Type: EventWin, ScoreDelta: bonus, Score: g.score, Cause: cause})
		return
	}
	g.emit(Event{Type: EventLoss, Score: g.score, Cause: cause})
}

// State returns the session summary.
func (g *Game) State() core.GameState {
	return core.GameState{
		Score:    g.score,
		Lives:    g.lives,
		GameOver: g.over,
		Won:      g.won,
		Paused:   g.paused,
	}
}

// AliveCount returns the number of enemies still alive.
func (g *Game) AliveCount() int {
	n := 0
	for i := range g.enemies {
		if g.enemies[i].Alive {
			n++
		}
	}
	return n
}
