package invaders

import (
	"math"
	"testing"
	"time"

	"github.com/vovakirdan/tui-invaders/internal/config"
	"github.com/vovakirdan/tui-invaders/internal/core"
)

const frame = 16 * time.Millisecond

func newTestGame(t *testing.T) (*Game, *VirtualCadence) {
	t.Helper()
	c := NewVirtualCadence()
	return New(config.DefaultInvadersConfig(), c), c
}

// enemyAt returns the grid index of (row, col) for the default 8-column grid.
func enemyAt(row, col int) int {
	return row*8 + col
}

// killAllExcept marks every enemy dead except the listed indices.
func killAllExcept(g *Game, keep ...int) {
	for i := range g.enemies {
		g.enemies[i].Alive = false
	}
	for _, i := range keep {
		g.enemies[i].Alive = true
	}
}

func tickN(g *Game, n int) []Event {
	var events []Event
	for range n {
		events = append(events, g.Tick(frame).Events...)
	}
	return events
}

func TestResetPostconditions(t *testing.T) {
	g, c := newTestGame(t)

	// Dirty the session first
	g.SetDirectionHeld(DirLeft, true)
	g.Fire()
	tickN(g, 10)
	g.enemies[3].Alive = false
	g.score = 70
	g.EndSession(false)

	g.Reset()

	snap := g.Snapshot()
	if snap.Score != 0 || snap.Lives != 3 || snap.GameOver || snap.Won {
		t.Errorf("session not reset: %+v", g.State())
	}
	if len(snap.Bullets) != 0 {
		t.Errorf("bullets = %d, expected 0", len(snap.Bullets))
	}
	if snap.Player.X != 282 || snap.Player.Y != 432 {
		t.Errorf("player at (%g, %g), expected (282, 432)", snap.Player.X, snap.Player.Y)
	}
	if len(snap.Enemies) != 32 || snap.AliveEnemies() != 32 {
		t.Fatalf("enemies = %d alive of %d, expected 32 of 32", snap.AliveEnemies(), len(snap.Enemies))
	}
	for _, e := range snap.Enemies {
		wantX := 40 + float64(e.Col)*58
		wantY := 40 + float64(e.Row)*42
		if e.X != wantX || e.Y != wantY || e.W != 30 || e.H != 20 {
			t.Errorf("enemy (%d,%d) at %+v, expected (%g, %g)", e.Row, e.Col, e.Rect, wantX, wantY)
		}
	}
	if snap.Formation != (Formation{Dir: DirRight, Speed: 12, Interval: 600 * time.Millisecond}) {
		t.Errorf("formation = %+v", snap.Formation)
	}
	if !c.Armed() || c.Interval() != 600*time.Millisecond {
		t.Errorf("cadence armed=%v interval=%v, expected armed at 600ms", c.Armed(), c.Interval())
	}

	// Held input is released too
	g.Tick(frame)
	if g.player.X != 282 {
		t.Errorf("player moved after reset: x=%g", g.player.X)
	}
}

func TestPlayerClamp(t *testing.T) {
	g, _ := newTestGame(t)

	g.SetDirectionHeld(DirLeft, true)
	for range 200 {
		g.Tick(frame)
		if g.player.X < 8 || g.player.X > 556 {
			t.Fatalf("player x=%g outside [8, 556]", g.player.X)
		}
	}
	if g.player.X != 8 {
		t.Errorf("player x=%g, expected clamped to 8", g.player.X)
	}

	g.SetDirectionHeld(DirLeft, false)
	g.SetDirectionHeld(DirRight, true)
	for range 200 {
		g.Tick(frame)
		if g.player.X < 8 || g.player.X > 556 {
			t.Fatalf("player x=%g outside [8, 556]", g.player.X)
		}
	}
	if g.player.X != 556 {
		t.Errorf("player x=%g, expected clamped to 556", g.player.X)
	}

	g.SetDirectionHeld(DirLeft, true)
	g.Tick(frame)
	if g.player.X != 556 {
		t.Errorf("holding both directions should not move, x=%g", g.player.X)
	}
}

func TestFireCap(t *testing.T) {
	g, _ := newTestGame(t)

	for i := range 4 {
		if !g.Fire() {
			t.Fatalf("Fire() #%d should spawn", i+1)
		}
	}
	if g.Fire() {
		t.Error("fifth Fire() should be refused")
	}
	if len(g.bullets) != 4 {
		t.Errorf("bullets = %d, expected 4", len(g.bullets))
	}

	b := g.bullets[0]
	if b.X != 298 || b.Y != 424 || b.W != 4 || b.H != 12 {
		t.Errorf("bullet spawned at %+v, expected (298, 424) 4x12", b.Rect)
	}
}

func TestFireAfterGameOver(t *testing.T) {
	g, _ := newTestGame(t)
	g.EndSession(false)

	if g.Fire() {
		t.Error("Fire() should be a no-op after game over")
	}
	if len(g.bullets) != 0 {
		t.Errorf("bullets = %d, expected 0", len(g.bullets))
	}
}

func TestBulletHitsBottomLeftEnemy(t *testing.T) {
	g, _ := newTestGame(t)

	var seen []Event
	g.OnEvent(func(e Event) { seen = append(seen, e) })

	// Line up under column 0
	g.SetDirectionHeld(DirLeft, true)
	tickN(g, 55)
	g.SetDirectionHeld(DirLeft, false)
	if g.player.X != 34.5 {
		t.Fatalf("player x=%g, expected 34.5", g.player.X)
	}

	if !g.Fire() {
		t.Fatal("Fire() should spawn")
	}

	var hit *Event
	for i := 0; i < 100 && hit == nil; i++ {
		for _, e := range g.Tick(frame).Events {
			if e.Type == EventHit {
				hit = &e
			}
		}
	}
	if hit == nil {
		t.Fatal("bullet never hit")
	}

	if hit.Row != 3 || hit.Col != 0 || hit.ScoreDelta != 10 || hit.Score != 10 {
		t.Errorf("hit event = %+v, expected row 3 col 0 worth 10", *hit)
	}
	if g.enemies[enemyAt(3, 0)].Alive {
		t.Error("enemy (3,0) should be dead")
	}
	if alive := g.AliveCount(); alive != 31 {
		t.Errorf("alive = %d, expected 31", alive)
	}
	if g.score != 10 {
		t.Errorf("score = %d, expected 10", g.score)
	}
	if len(g.bullets) != 0 {
		t.Errorf("bullets = %d, expected the bullet removed", len(g.bullets))
	}
	if math.Abs(g.formation.Speed-12.2) > 1e-9 {
		t.Errorf("formation speed = %g, expected 12.2", g.formation.Speed)
	}
	if len(seen) != 1 || seen[0].Type != EventHit {
		t.Errorf("handler saw %+v, expected one hit", seen)
	}
}

func TestBulletLeavesTop(t *testing.T) {
	g, _ := newTestGame(t)

	// Clear the column above the ship
	for row := range 4 {
		g.enemies[enemyAt(row, 4)].Alive = false
	}

	g.Fire()
	tickN(g, 67)
	if len(g.bullets) != 1 {
		t.Fatal("bullet removed before leaving the field")
	}
	if g.bullets[0].Bottom() < 0 {
		t.Errorf("bullet bottom %g should still be inside the field", g.bullets[0].Bottom())
	}

	tickN(g, 1)
	if len(g.bullets) != 0 {
		t.Errorf("bullet should be removed once fully above the field")
	}
	if g.score != 0 {
		t.Errorf("score = %d, expected 0", g.score)
	}
}

func TestOneEnemyAbsorbsOneBullet(t *testing.T) {
	g, _ := newTestGame(t)

	target := g.enemies[enemyAt(3, 4)]
	// Two bullets that overlap only the same enemy after this frame's move
	for range 2 {
		g.bullets = append(g.bullets, Bullet{
			Rect: core.NewRect(target.X+10, target.Y+15.5, 4, 12),
			VY:   -6.5,
		})
	}

	events := g.Tick(frame).Events

	hits := 0
	for _, e := range events {
		if e.Type == EventHit {
			hits++
		}
	}
	if hits != 1 {
		t.Errorf("hits = %d, expected 1", hits)
	}
	if g.score != 10 {
		t.Errorf("score = %d, expected 10", g.score)
	}
	if len(g.bullets) != 1 {
		t.Errorf("bullets = %d, expected the second bullet to survive", len(g.bullets))
	}
	if g.AliveCount() != 31 {
		t.Errorf("alive = %d, expected 31", g.AliveCount())
	}
}

func TestWinOnLastKill(t *testing.T) {
	g, c := newTestGame(t)
	killAllExcept(g, enemyAt(3, 4))

	wins := 0
	g.OnEvent(func(e Event) {
		if e.Type == EventWin {
			wins++
		}
	})

	g.Fire()
	var events []Event
	for i := 0; i < 100 && !g.State().GameOver; i++ {
		events = append(events, g.Tick(frame).Events...)
	}

	if len(events) != 2 || events[0].Type != EventHit || events[1].Type != EventWin {
		t.Fatalf("events = %+v, expected hit then win", events)
	}
	win := events[1]
	if win.ScoreDelta != 100 || win.Score != 110 || win.Cause != CauseCleared || !win.Terminal() {
		t.Errorf("win event = %+v", win)
	}

	st := g.State()
	if !st.GameOver || !st.Won || st.Score != 110 {
		t.Errorf("state = %+v, expected won with 110", st)
	}
	if c.Armed() {
		t.Error("cadence should be cancelled after the win")
	}

	// Nothing more happens
	if res := g.Tick(frame); len(res.Events) != 0 {
		t.Errorf("tick after game over produced %+v", res.Events)
	}
	g.EndSession(true)
	if g.score != 110 || wins != 1 {
		t.Errorf("score=%d wins=%d after repeated end, expected 110 and 1", g.score, wins)
	}
}

func TestEndSessionAborted(t *testing.T) {
	g, c := newTestGame(t)

	var got []Event
	g.OnEvent(func(e Event) { got = append(got, e) })

	g.score = 40
	g.EndSession(false)

	if len(got) != 1 || got[0].Type != EventLoss || got[0].Cause != CauseAborted || got[0].Score != 40 {
		t.Errorf("events = %+v, expected one aborted loss at 40", got)
	}
	if g.score != 40 {
		t.Errorf("loss should not add a bonus, score=%d", g.score)
	}
	if c.Armed() {
		t.Error("cadence should be cancelled")
	}

	before := g.Snapshot()
	g.Tick(frame)
	after := g.Snapshot()
	if after.Hash() != before.Hash() {
		t.Error("Tick should be a no-op after game over")
	}
}

func TestLivesNeverDecrement(t *testing.T) {
	g, c := newTestGame(t)

	for i := 0; i < 10000 && c.Armed(); i++ {
		c.Advance(c.Interval(), func() { g.FormationTick() })
	}

	if st := g.State(); !st.GameOver || st.Lives != 3 {
		t.Errorf("state = %+v, expected game over with 3 lives", st)
	}
}

func TestPause(t *testing.T) {
	g, c := newTestGame(t)

	g.SetDirectionHeld(DirRight, true)
	if !g.TogglePause() {
		t.Fatal("TogglePause should pause")
	}
	if c.Armed() {
		t.Error("cadence should be cancelled while paused")
	}

	x := g.player.X
	g.Tick(frame)
	if g.player.X != x || g.frame != 0 {
		t.Error("paused Tick should not advance")
	}
	if g.Fire() {
		t.Error("Fire while paused should be refused")
	}
	if events := g.FormationTick(); events != nil || g.enemies[0].X != 40 {
		t.Error("paused FormationTick should not move the formation")
	}

	if g.TogglePause() {
		t.Fatal("TogglePause should resume")
	}
	if !c.Armed() || c.Interval() != 600*time.Millisecond {
		t.Errorf("cadence not re-armed on resume: armed=%v interval=%v", c.Armed(), c.Interval())
	}
	g.Tick(frame)
	if g.player.X != x+4.5 {
		t.Errorf("player x=%g, expected %g", g.player.X, x+4.5)
	}
}

func TestDeterminism(t *testing.T) {
	run := func() uint64 {
		g, c := newTestGame(t)
		for i := range 900 {
			switch {
			case i%120 < 50:
				g.SetDirectionHeld(DirLeft, true)
				g.SetDirectionHeld(DirRight, false)
			default:
				g.SetDirectionHeld(DirLeft, false)
				g.SetDirectionHeld(DirRight, true)
			}
			if i%9 == 0 {
				g.Fire()
			}
			g.Tick(frame)
			c.Advance(frame, func() { g.FormationTick() })
		}
		snap := g.Snapshot()
		return snap.Hash()
	}

	if h1, h2 := run(), run(); h1 != h2 {
		t.Errorf("hashes differ: %d vs %d", h1, h2)
	}
}

func TestSnapshotIsCopy(t *testing.T) {
	g, _ := newTestGame(t)
	g.Fire()

	snap := g.Snapshot()
	snap.Enemies[0].Alive = false
	snap.Bullets[0].Y = -100

	if !g.enemies[0].Alive || g.bullets[0].Y == -100 {
		t.Error("mutating a snapshot changed the session")
	}
}
