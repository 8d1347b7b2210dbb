// invaders is a terminal Space Invaders clone.
//
// Usage:
//
//	invaders play            - Play a session
//	invaders config          - Print the default configuration
//	invaders config --check  - Validate a configuration file
//
// Global flags:
//
//	--fps <rate>         - Set frame rate (default: 60)
//	--config <path>      - Use a YAML or TOML config file
//	--log-file <path>    - Write logs to a file (default: discarded)
//	--log-level <level>  - debug, info, warn or error (default: info)
package main

import (
	"fmt"
	"io"
	"os"

	"github.com/charmbracelet/log"
	"github.com/spf13/cobra"
)

var (
	// Global flags
	flagFPS      int
	flagConfig   string
	flagLogFile  string
	flagLogLevel string
)

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

var rootCmd = &cobra.Command{
	Use:   "invaders",
	Short: "Terminal Invaders - defend the line from a descending formation",
	Long: `Terminal Invaders is a Space Invaders style arcade game for the terminal.

Available commands:
  play     - Start a session
  config   - Print or validate configuration

Examples:
  invaders play
  invaders play --no-music
  invaders play --config ./invaders.toml
  invaders config > ~/.invaders/configs/invaders.yaml
  invaders config --check ./invaders.yaml`,
	SilenceUsage:  true,
	SilenceErrors: true,
}

func init() {
	// Global persistent flags
	rootCmd.PersistentFlags().IntVar(&flagFPS, "fps", 60, "Frame rate (frames per second)")
	rootCmd.PersistentFlags().StringVar(&flagConfig, "config", "", "Path to a YAML or TOML config file")
	rootCmd.PersistentFlags().StringVar(&flagLogFile, "log-file", "", "Write logs to this file")
	rootCmd.PersistentFlags().StringVar(&flagLogLevel, "log-level", "info", "Log level: debug, info, warn, error")

	// Add subcommands
	rootCmd.AddCommand(playCmd)
	rootCmd.AddCommand(configCmd)
}

// newLogger builds the logger for a command. The game owns the terminal,
// so without a log file everything is discarded.
// The returned cleanup closes the log file, if any.
func newLogger(path, level string) (*log.Logger, func(), error) {
	lvl, err := log.ParseLevel(level)
	if err != nil {
		return nil, nil, fmt.Errorf("invalid --log-level: %w", err)
	}

	var w io.Writer = io.Discard
	cleanup := func() {}
	if path != "" {
		f, err := os.OpenFile(path, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o600)
		if err != nil {
			return nil, nil, fmt.Errorf("failed to open log file %s: %w", path, err)
		}
		w = f
		cleanup = func() {
			//nolint:errcheck // Best-effort close on exit
			f.Close()
		}
	}

	logger := log.NewWithOptions(w, log.Options{
		ReportTimestamp: true,
		Prefix:          "invaders",
		Level:           lvl,
	})
	return logger, cleanup, nil
}
