package invaders

import (
	"math"
	"slices"
	"time"

	"github.com/vovakirdan/tui-invaders/internal/core"
)

// Snapshot is a read-only copy of everything needed to draw a frame.
// Slices are copies; mutating them does not affect the session.
type Snapshot struct {
	Frame   uint64
	Elapsed time.Duration

	FieldW float64
	FieldH float64

	Player  core.Rect
	Bullets []core.Rect
	Enemies []Enemy

	Score    int
	Lives    int
	GameOver bool
	Won      bool
	Paused   bool

	Formation Formation
}

// Snapshot returns the current session state.
func (g *Game) Snapshot() Snapshot {
	bullets := make([]core.Rect, len(g.bullets))
	for i := range g.bullets {
		bullets[i] = g.bullets[i].Rect
	}

	return Snapshot{
		Frame:     g.frame,
		Elapsed:   g.elapsed,
		FieldW:    g.cfg.Field.Width,
		FieldH:    g.cfg.Field.Height,
		Player:    g.player.Rect,
		Bullets:   bullets,
		Enemies:   slices.Clone(g.enemies),
		Score:     g.score,
		Lives:     g.lives,
		GameOver:  g.over,
		Won:       g.won,
		Paused:    g.paused,
		Formation: g.formation,
	}
}

// AliveEnemies returns the number of alive enemies in the snapshot.
func (snap *Snapshot) AliveEnemies() int {
	n := 0
	for i := range snap.Enemies {
		if snap.Enemies[i].Alive {
			n++
		}
	}
	return n
}

// Hash returns a simple hash of the snapshot for determinism testing.
func (snap *Snapshot) Hash() uint64 {
	h := snap.Frame
	h = h*31 + uint64(snap.Score) //#nosec G115 -- hash computation
	h = h*31 + uint64(snap.Lives) //#nosec G115 -- hash computation
	h = h*31 + hashBool(snap.GameOver)
	h = h*31 + hashBool(snap.Won)
	h = h*31 + hashRect(snap.Player)

	h = h*31 + uint64(snap.Formation.Dir+1) //#nosec G115 -- hash computation
	h = h*31 + math.Float64bits(snap.Formation.Speed)
	h = h*31 + uint64(snap.Formation.Interval) //#nosec G115 -- hash computation

	for _, b := range snap.Bullets {
		h = h*31 + hashRect(b)
	}
	for _, e := range snap.Enemies {
		h = h*31 + hashRect(e.Rect)
		h = h*31 + hashBool(e.Alive)
	}
	return h
}

func hashRect(r core.Rect) uint64 {
	h := math.Float64bits(r.X)
	h = h*31 + math.Float64bits(r.Y)
	h = h*31 + math.Float64bits(r.W)
	h = h*31 + math.Float64bits(r.H)
	return h
}

func hashBool(b bool) uint64 {
	if b {
		return 1
	}
	return 0
}
