package invaders

import (
	"time"

	"github.com/vovakirdan/tui-invaders/internal/core"
)

// Formation is the collective movement state of the enemy grid.
// Speed only grows and Interval only shrinks until the next Reset.
type Formation struct {
	Dir      Direction
	Speed    float64       // Horizontal step per formation tick
	Interval time.Duration // Current cadence period
}

// spawnFormation lays out a full grid, row-major, and resets the
// formation to its starting direction, speed and interval.
func (g *Game) spawnFormation() {
	fc := g.cfg.Formation

	g.enemies = g.enemies[:0]
	for row := range fc.Rows {
		for col := range fc.Cols {
			x := fc.StartX + float64(col)*fc.SpacingX
			y := fc.StartY + float64(row)*fc.SpacingY
			g.enemies = append(g.enemies, Enemy{
				Rect:  core.NewRect(x, y, fc.EnemyWidth, fc.EnemyHeight),
				Row:   row,
				Col:   col,
				Alive: true,
			})
		}
	}

	g.formation = Formation{
		Dir:      DirRight,
		Speed:    fc.Speed,
		Interval: fc.StepInterval(),
	}
}

// aliveBounds returns the leftmost x and rightmost x+w over alive enemies.
func (g *Game) aliveBounds() (minX, maxX float64, alive int) {
	for i := range g.enemies {
		e := &g.enemies[i]
		if !e.Alive {
			continue
		}
		if alive == 0 || e.X < minX {
			minX = e.X
		}
		if alive == 0 || e.Right() > maxX {
			maxX = e.Right()
		}
		alive++
	}
	return minX, maxX, alive
}

// shiftAlive moves every alive enemy by (dx, dy).
func (g *Game) shiftAlive(dx, dy float64) {
	for i := range g.enemies {
		if g.enemies[i].Alive {
			g.enemies[i].Rect = g.enemies[i].Translate(dx, dy)
		}
	}
}

// FormationTick runs one step of the formation on its own cadence:
// sweep or descend-and-reverse, ramp the interval, then check whether an
// enemy reached the player line. With no enemies alive it does nothing;
// the win is detected by the next Tick. Returns the events produced.
func (g *Game) FormationTick() []Event {
	if g.over || g.paused {
		return nil
	}

	minX, maxX, alive := g.aliveBounds()
	if alive == 0 {
		return nil
	}

	fc := g.cfg.Formation
	f := &g.formation
	switch {
	case f.Dir == DirRight && maxX+f.Speed > g.cfg.Field.Width-fc.EdgeMargin:
		g.shiftAlive(0, fc.Descent)
		f.Dir = DirLeft
	case f.Dir == DirLeft && minX-f.Speed < fc.EdgeMargin:
		g.shiftAlive(0, fc.Descent)
		f.Dir = DirRight
	default:
		g.shiftAlive(f.Speed*float64(f.Dir), 0)
	}

	if next := fc.IntervalFor(fc.Cells() - alive); next != f.Interval {
		f.Interval = next
		g.cadence.Cancel()
		g.cadence.Arm(next)
	}

	if g.invaded() {
		g.end(false, CauseInvasion)
	}
	return g.drainEvents()
}

// invaded reports whether any alive enemy reached the player's top edge.
func (g *Game) invaded() bool {
	for i := range g.enemies {
		if g.enemies[i].Alive && g.enemies[i].Bottom() >= g.player.Y {
			return true
		}
	}
	return false
}
