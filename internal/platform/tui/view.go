package tui

import (
	"fmt"
	"math"
	"time"

	"github.com/charmbracelet/lipgloss"

	"github.com/vovakirdan/tui-invaders/internal/core"
	"github.com/vovakirdan/tui-invaders/internal/invaders"
)

// Minimum playable terminal size
const (
	minCols = 24
	minRows = 8
)

// Glyphs
const (
	enemyGlyph  = '█'
	playerGlyph = '▄'
	bulletGlyph = '│'
	groundGlyph = '─'
)

// enemyColors cycles by formation row, top row first.
var enemyColors = []core.Color{core.ColorRed, core.ColorOrange, core.ColorYellow, core.ColorGreen}

// View renders the current state to a string for display.
func (m Model) View() string {
	if m.quitting {
		return ""
	}

	footer := m.help.View(m.keys)
	rows := m.config.ScreenH - lipgloss.Height(footer)
	m.screen.Resize(m.config.ScreenW, rows)

	drawFrame(m.screen, m.game.Snapshot(), m.sounds.MusicEnabled(), m.sounds.SFXEnabled())
	return RenderScreen(m.screen) + "\n" + footer
}

// viewport maps world units onto the screen below the HUD row.
type viewport struct {
	cols   int
	rows   int
	fieldW float64
	fieldH float64
}

// cell returns the screen cell of a world point, kept inside the playfield.
func (v viewport) cell(x, y float64) (int, int) {
	cx := int(x * float64(v.cols) / v.fieldW)
	cy := 1 + int(y*float64(v.rows)/v.fieldH)
	return core.Clamp(cx, 0, v.cols-1), core.Clamp(cy, 1, v.rows)
}

// span converts a world size to cells, never smaller than one cell.
func (v viewport) span(w, h float64) (int, int) {
	cw := int(math.Round(w * float64(v.cols) / v.fieldW))
	ch := int(math.Round(h * float64(v.rows) / v.fieldH))
	return max(cw, 1), max(ch, 1)
}

// drawFrame draws a snapshot onto s.
func drawFrame(s *core.Screen, snap invaders.Snapshot, music, sfx bool) {
	s.Clear()

	if s.Width() < minCols || s.Height() < minRows {
		s.DrawTextCentered(s.Height()/2, "terminal too small", core.ColorYellow)
		return
	}

	v := viewport{cols: s.Width(), rows: s.Height() - 1, fieldW: snap.FieldW, fieldH: snap.FieldH}

	drawHUD(s, snap, music, sfx)
	s.DrawHLine(0, s.Height()-1, s.Width(), groundGlyph, core.ColorGray)

	for _, e := range snap.Enemies {
		if !e.Alive {
			continue
		}
		x, y := v.cell(e.X, e.Y)
		w, h := v.span(e.W, e.H)
		s.FillArea(x, y, w, h, enemyGlyph, enemyColors[e.Row%len(enemyColors)])
	}

	px, py := v.cell(snap.Player.X, snap.Player.Y)
	pw, ph := v.span(snap.Player.W, snap.Player.H)
	s.FillArea(px, py, pw, ph, playerGlyph, core.ColorBrightGreen)

	for _, b := range snap.Bullets {
		x, y := v.cell(b.CenterX(), b.Y)
		s.SetColored(x, y, bulletGlyph, core.ColorBrightCyan)
	}

	switch {
	case snap.GameOver && snap.Won:
		drawOverlay(s, core.ColorBrightGreen, "YOU WIN!",
			fmt.Sprintf("Final score: %d", snap.Score),
			"Cleared in "+playTime(snap.Elapsed),
			"r restart · q quit")
	case snap.GameOver:
		drawOverlay(s, core.ColorRed, "GAME OVER",
			fmt.Sprintf("Final score: %d", snap.Score),
			fmt.Sprintf("%d invaders left", snap.AliveEnemies()),
			"r restart · q quit")
	case snap.Paused:
		drawOverlay(s, core.ColorYellow, "PAUSED", "p to resume")
	}
}

// drawHUD draws the score line. The audio status is right aligned and
// dropped when it would overlap the score.
func drawHUD(s *core.Screen, snap invaders.Snapshot, music, sfx bool) {
	score := fmt.Sprintf("SCORE %05d  LIVES %d", snap.Score, snap.Lives)
	s.DrawText(0, 0, score, core.ColorWhite)

	status := fmt.Sprintf("MUSIC %s  SFX %s", onOff(music), onOff(sfx))
	if s.Width() < len(score)+len(status)+1 {
		return
	}
	s.DrawText(s.Width()-len(status), 0, status, core.ColorGray)
}

// playTime formats a play time as m:ss.
func playTime(d time.Duration) string {
	secs := int(d / time.Second)
	return fmt.Sprintf("%d:%02d", secs/60, secs%60)
}

func onOff(b bool) string {
	if b {
		return "ON"
	}
	return "OFF"
}

// drawOverlay draws a boxed message in the middle of the screen.
func drawOverlay(s *core.Screen, c core.Color, lines ...string) {
	width := 0
	for _, l := range lines {
		width = max(width, len([]rune(l)))
	}
	w, h := width+4, len(lines)+2
	x, y := (s.Width()-w)/2, (s.Height()-h)/2

	s.FillArea(x, y, w, h, ' ', core.ColorDefault)
	s.DrawBox(x, y, w, h, c)
	for i, l := range lines {
		s.DrawTextCentered(y+1+i, l, c)
	}
}
