package config

import (
	"errors"
	"fmt"
)

// ErrInvalidConfig is wrapped by every validation failure.
var ErrInvalidConfig = errors.New("invalid config")

// Validate checks that the configuration describes a playable session.
// All problems are reported together.
func (c InvadersConfig) Validate() error {
	var errs []error
	check := func(ok bool, format string, args ...any) {
		if !ok {
			errs = append(errs, fmt.Errorf("%w: "+format, append([]any{ErrInvalidConfig}, args...)...))
		}
	}

	check(c.Field.Width > 0 && c.Field.Height > 0, "field size must be positive, got %gx%g", c.Field.Width, c.Field.Height)

	p := c.Player
	check(p.Width > 0 && p.Height > 0, "player size must be positive")
	check(p.Speed > 0, "player.speed must be positive, got %g", p.Speed)
	check(p.Margin >= 0, "player.margin must not be negative")
	check(p.Width+2*p.Margin <= c.Field.Width, "player does not fit the field width")
	check(p.BottomOffset >= p.Height && p.BottomOffset <= c.Field.Height, "player.bottom_offset must be within [%g, %g]", p.Height, c.Field.Height)

	b := c.Bullets
	check(b.Width > 0 && b.Height > 0, "bullet size must be positive")
	check(b.Speed > 0, "bullets.speed must be positive, got %g", b.Speed)
	check(b.MaxLive > 0, "bullets.max_live must be positive, got %d", b.MaxLive)

	f := c.Formation
	check(f.Rows > 0 && f.Cols > 0, "formation must have at least one row and column, got %dx%d", f.Rows, f.Cols)
	check(f.EnemyWidth > 0 && f.EnemyHeight > 0, "enemy size must be positive")
	check(f.Speed > 0, "formation.speed must be positive, got %g", f.Speed)
	check(f.SpeedPerHit > 0, "formation.speed_per_hit must be positive, got %g", f.SpeedPerHit)
	check(f.Descent >= 0, "formation.descent must not be negative")
	check(f.EdgeMargin >= 0, "formation.edge_margin must not be negative")
	check(f.MinStepIntervalMS > 0, "formation.min_step_interval_ms must be positive, got %d", f.MinStepIntervalMS)
	check(f.StepIntervalMS >= f.MinStepIntervalMS, "formation.step_interval_ms must be at least min_step_interval_ms")
	check(f.IntervalPerKillMS > 0, "formation.interval_per_kill_ms must be positive, got %d", f.IntervalPerKillMS)
	if f.Cols > 0 {
		width := f.StartX + float64(f.Cols-1)*f.SpacingX + f.EnemyWidth
		check(width <= c.Field.Width, "formation is wider than the field (%g > %g)", width, c.Field.Width)
	}

	s := c.Scoring
	check(s.KillReward >= 0 && s.WinBonus >= 0, "scoring rewards must not be negative")
	check(s.Lives >= 0, "scoring.lives must not be negative")

	a := c.Audio
	check(a.MusicVolume >= 0 && a.MusicVolume <= 1, "audio.music_volume must be within [0, 1]")
	check(a.SFXVolume >= 0 && a.SFXVolume <= 1, "audio.sfx_volume must be within [0, 1]")

	return errors.Join(errs...)
}
