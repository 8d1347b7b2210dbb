package config

import (
	_ "embed"
)

//go:embed defaults/invaders.yaml
var defaultInvadersYAML []byte

// DefaultInvadersConfig returns the built-in configuration.
// It mirrors defaults/invaders.yaml and is used when the embedded file cannot be parsed.
func DefaultInvadersConfig() InvadersConfig {
	return InvadersConfig{
		Field: FieldConfig{
			Width:  600,
			Height: 480,
		},
		Player: PlayerConfig{
			Width:        36,
			Height:       18,
			Speed:        4.5,
			BottomOffset: 48,
			Margin:       8,
		},
		Bullets: BulletConfig{
			Width:        4,
			Height:       12,
			Speed:        6.5,
			MuzzleOffset: 8,
			MaxLive:      4,
		},
		Formation: FormationConfig{
			Rows:              4,
			Cols:              8,
			EnemyWidth:        30,
			EnemyHeight:       20,
			SpacingX:          58,
			SpacingY:          42,
			StartX:            40,
			StartY:            40,
			EdgeMargin:        10,
			Descent:           18,
			Speed:             12,
			SpeedPerHit:       0.2,
			StepIntervalMS:    600,
			MinStepIntervalMS: 180,
			IntervalPerKillMS: 6,
		},
		Scoring: ScoringConfig{
			KillReward: 10,
			WinBonus:   100,
			Lives:      3,
		},
		Audio: AudioConfig{
			Music:       true,
			SFX:         true,
			MusicVolume: 0.06,
			SFXVolume:   0.18,
		},
	}
}

// DefaultYAML returns the embedded default configuration file.
func DefaultYAML() []byte {
	return defaultInvadersYAML
}
