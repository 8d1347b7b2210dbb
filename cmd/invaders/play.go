package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/vovakirdan/tui-invaders/internal/config"
	"github.com/vovakirdan/tui-invaders/internal/core"
	"github.com/vovakirdan/tui-invaders/internal/platform/audio"
	"github.com/vovakirdan/tui-invaders/internal/platform/tui"
)

var (
	flagNoMusic bool
	flagNoSFX   bool
)

var playCmd = &cobra.Command{
	Use:   "play",
	Short: "Play a session",
	Long: `Start a session.

Controls:
  ←/→ or A/D   - Move (hold)
  Space        - Fire
  P/Esc        - Pause
  R            - Restart
  M            - Music on/off
  X            - Sound effects on/off
  ?            - Show all keys
  Q/Ctrl+C     - Quit

Config search order:
  --config <path>
  ~/.invaders/configs/invaders.yaml
  ./configs/invaders.yaml
  built-in defaults

Examples:
  invaders play
  invaders play --fps 30 --no-music
  invaders play --config ./invaders.toml --log-file invaders.log --log-level debug`,
	Args: cobra.NoArgs,
	RunE: runPlay,
}

func init() {
	playCmd.Flags().BoolVar(&flagNoMusic, "no-music", false, "Start with music off")
	playCmd.Flags().BoolVar(&flagNoSFX, "no-sfx", false, "Start with sound effects off")
}

func runPlay(cmd *cobra.Command, args []string) error {
	logger, cleanup, err := newLogger(flagLogFile, flagLogLevel)
	if err != nil {
		return err
	}
	defer cleanup()

	cfg, source, err := config.LoadInvaders(flagConfig)
	if err != nil {
		logger.Error("config rejected", "error", err)
		return err
	}
	logger.Info("config loaded", "source", source)

	if flagNoMusic {
		cfg.Audio.Music = false
	}
	if flagNoSFX {
		cfg.Audio.SFX = false
	}

	// Get terminal size
	width, height := 80, 24 // Defaults
	if w, h, termErr := term.GetSize(int(os.Stdout.Fd())); termErr == nil {
		width = w
		height = h
	} else {
		logger.Warn("could not read terminal size", "error", termErr)
	}

	rt := core.RuntimeConfig{
		ScreenW:  width,
		ScreenH:  height,
		TickRate: flagFPS,
	}

	// Audio is best effort
	sounds := audio.NewPlayer(cfg.Audio, logger)
	if err := sounds.Initialize(); err != nil {
		logger.Warn("audio unavailable, playing silently", "error", err)
	}
	defer sounds.Close()

	if err := tui.Run(cfg, rt, tui.Options{Logger: logger, Sounds: sounds}); err != nil {
		logger.Error("game exited with error", "error", err)
		return fmt.Errorf("game exited: %w", err)
	}
	return nil
}
