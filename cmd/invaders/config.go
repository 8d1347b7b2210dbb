package main

import (
	"fmt"

	"github.com/BurntSushi/toml"
	"github.com/spf13/cobra"
	"gopkg.in/yaml.v3"

	"github.com/vovakirdan/tui-invaders/internal/config"
)

var (
	flagCheck     string
	flagFormat    string
	flagEffective bool
)

var configCmd = &cobra.Command{
	Use:   "config",
	Short: "Print or validate configuration",
	Long: `Print the built-in configuration, the effective configuration, or
validate a configuration file.

Examples:
  invaders config                         # built-in defaults as YAML
  invaders config --effective             # what 'play' would use
  invaders config --effective --format toml
  invaders config --check ./invaders.yaml`,
	Args: cobra.NoArgs,
	RunE: runConfig,
}

func init() {
	configCmd.Flags().StringVar(&flagCheck, "check", "", "Validate this config file and exit")
	configCmd.Flags().StringVar(&flagFormat, "format", "yaml", "Output format: yaml or toml")
	configCmd.Flags().BoolVar(&flagEffective, "effective", false, "Print the configuration after the search order is applied")
}

func runConfig(cmd *cobra.Command, args []string) error {
	out := cmd.OutOrStdout()

	if flagCheck != "" {
		if _, err := config.LoadFile(flagCheck); err != nil {
			return err
		}
		fmt.Fprintf(out, "%s: ok\n", flagCheck)
		return nil
	}

	if !flagEffective && flagFormat == "yaml" {
		_, err := out.Write(config.DefaultYAML())
		return err
	}

	cfg := config.DefaultInvadersConfig()
	if flagEffective {
		loaded, source, err := config.LoadInvaders(flagConfig)
		if err != nil {
			return err
		}
		fmt.Fprintf(cmd.ErrOrStderr(), "# source: %s\n", source)
		cfg = loaded
	}

	switch flagFormat {
	case "yaml":
		data, err := yaml.Marshal(cfg)
		if err != nil {
			return fmt.Errorf("failed to encode config: %w", err)
		}
		_, err = out.Write(data)
		return err
	case "toml":
		if err := toml.NewEncoder(out).Encode(cfg); err != nil {
			return fmt.Errorf("failed to encode config: %w", err)
		}
		return nil
	default:
		return fmt.Errorf("unknown --format %q (want yaml or toml)", flagFormat)
	}
}
