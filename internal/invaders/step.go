package invaders

import (
	"slices"
	"time"

	"github.com/vovakirdan/tui-invaders/internal/core"
)

// StepResult is returned by Tick.
type StepResult struct {
	State  core.GameState
	Events []Event
}

// Tick advances the simulation by one frame. Movement is per frame; dt only
// accumulates session time. Does nothing when the session is over or paused.
func (g *Game) Tick(dt time.Duration) StepResult {
	if g.over || g.paused {
		return StepResult{State: g.State()}
	}

	g.frame++
	g.elapsed += max(dt, 0)

	g.movePlayer()
	g.advanceBullets()
	g.resolveCollisions()
	g.compactBullets()

	if g.AliveCount() == 0 {
		g.end(true, CauseCleared)
	}

	return StepResult{State: g.State(), Events: g.drainEvents()}
}

func (g *Game) movePlayer() {
	p := g.cfg.Player
	vx := 0.0
	if g.left {
		vx -= p.Speed
	}
	if g.right {
		vx += p.Speed
	}
	maxX := g.cfg.Field.Width - p.Width - p.Margin
	g.player.X = core.ClampF(g.player.X+vx, p.Margin, maxX)
}

// advanceBullets moves bullets and marks those fully above the field.
func (g *Game) advanceBullets() {
	for i := range g.bullets {
		b := &g.bullets[i]
		b.Y += b.VY
		if b.Bottom() < 0 {
			b.spent = true
		}
	}
}

// resolveCollisions scans bullets then enemies in insertion order. A bullet
// kills at most the first alive enemy it overlaps; a dead enemy no longer
// absorbs later bullets in the same pass.
func (g *Game) resolveCollisions() {
	reward := g.cfg.Scoring.KillReward
	for i := range g.bullets {
		b := &g.bullets[i]
		if b.spent {
			continue
		}
		for j := range g.enemies {
			e := &g.enemies[j]
			if !e.Alive || !b.Overlaps(e.Rect) {
				continue
			}
			e.Alive = false
			b.spent = true
			g.score += reward
			g.formation.Speed += g.cfg.Formation.SpeedPerHit
			g.emit(Event{Type: EventHit, ScoreDelta: reward, Score: g.score, Row: e.Row, Col: e.Col})
			break
		}
	}
}

func (g *Game) compactBullets() {
	g.bullets = slices.DeleteFunc(g.bullets, func(b Bullet) bool { return b.spent })
}
