// Package config provides YAML/TOML game configuration loading and
// validation for Terminal Invaders.
package config

import "time"

// InvadersConfig contains all tunable parameters of a session.
// Distances are world units (the playfield is Field.Width × Field.Height),
// speeds are world units per tick.
type InvadersConfig struct {
	Field     FieldConfig     `yaml:"field" toml:"field"`
	Player    PlayerConfig    `yaml:"player" toml:"player"`
	Bullets   BulletConfig    `yaml:"bullets" toml:"bullets"`
	Formation FormationConfig `yaml:"formation" toml:"formation"`
	Scoring   ScoringConfig   `yaml:"scoring" toml:"scoring"`
	Audio     AudioConfig     `yaml:"audio" toml:"audio"`
}

// FieldConfig defines the playfield size.
type FieldConfig struct {
	Width  float64 `yaml:"width" toml:"width"`
	Height float64 `yaml:"height" toml:"height"`
}

// PlayerConfig defines the player ship.
type PlayerConfig struct {
	Width        float64 `yaml:"width" toml:"width"`
	Height       float64 `yaml:"height" toml:"height"`
	Speed        float64 `yaml:"speed" toml:"speed"`
	BottomOffset float64 `yaml:"bottom_offset" toml:"bottom_offset"` // Distance from field bottom to ship top
	Margin       float64 `yaml:"margin" toml:"margin"`               // Clamp margin on both sides
}

// BulletConfig defines player projectiles.
type BulletConfig struct {
	Width        float64 `yaml:"width" toml:"width"`
	Height       float64 `yaml:"height" toml:"height"`
	Speed        float64 `yaml:"speed" toml:"speed"`
	MuzzleOffset float64 `yaml:"muzzle_offset" toml:"muzzle_offset"` // Spawn distance above the ship top
	MaxLive      int     `yaml:"max_live" toml:"max_live"`
}

// FormationConfig defines the enemy grid and its movement ramp.
type FormationConfig struct {
	Rows        int     `yaml:"rows" toml:"rows"`
	Cols        int     `yaml:"cols" toml:"cols"`
	EnemyWidth  float64 `yaml:"enemy_width" toml:"enemy_width"`
	EnemyHeight float64 `yaml:"enemy_height" toml:"enemy_height"`
	SpacingX    float64 `yaml:"spacing_x" toml:"spacing_x"`
	SpacingY    float64 `yaml:"spacing_y" toml:"spacing_y"`
	StartX      float64 `yaml:"start_x" toml:"start_x"`
	StartY      float64 `yaml:"start_y" toml:"start_y"`
	EdgeMargin  float64 `yaml:"edge_margin" toml:"edge_margin"`
	Descent     float64 `yaml:"descent" toml:"descent"`
	Speed       float64 `yaml:"speed" toml:"speed"`                 // Horizontal step per formation tick
	SpeedPerHit float64 `yaml:"speed_per_hit" toml:"speed_per_hit"` // Permanent step increase per kill

	StepIntervalMS    int `yaml:"step_interval_ms" toml:"step_interval_ms"`
	MinStepIntervalMS int `yaml:"min_step_interval_ms" toml:"min_step_interval_ms"`
	IntervalPerKillMS int `yaml:"interval_per_kill_ms" toml:"interval_per_kill_ms"`
}

// Cells returns the number of enemies in a full grid.
func (f FormationConfig) Cells() int {
	return f.Rows * f.Cols
}

// StepInterval returns the starting formation period.
func (f FormationConfig) StepInterval() time.Duration {
	return time.Duration(f.StepIntervalMS) * time.Millisecond
}

// IntervalFor returns the formation period once killed enemies are gone,
// floored at the minimum period.
func (f FormationConfig) IntervalFor(killed int) time.Duration {
	ms := max(f.MinStepIntervalMS, f.StepIntervalMS-killed*f.IntervalPerKillMS)
	return time.Duration(ms) * time.Millisecond
}

// ScoringConfig defines rewards and the starting lives.
type ScoringConfig struct {
	KillReward int `yaml:"kill_reward" toml:"kill_reward"`
	WinBonus   int `yaml:"win_bonus" toml:"win_bonus"`
	Lives      int `yaml:"lives" toml:"lives"`
}

// AudioConfig defines the initial audio state. Audio lives entirely in the
// platform layer; the simulation never reads this section.
type AudioConfig struct {
	Music       bool    `yaml:"music" toml:"music"`
	SFX         bool    `yaml:"sfx" toml:"sfx"`
	MusicVolume float64 `yaml:"music_volume" toml:"music_volume"`
	SFXVolume   float64 `yaml:"sfx_volume" toml:"sfx_volume"`
}
