package main

import (
	"bytes"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/BurntSushi/toml"

	"github.com/vovakirdan/tui-invaders/internal/config"
)

func runRoot(t *testing.T, args ...string) (string, error) {
	t.Helper()
	t.Cleanup(func() {
		flagCheck, flagFormat, flagEffective, flagConfig = "", "yaml", false, ""
		flagLogFile, flagLogLevel = "", "info"
	})

	var out bytes.Buffer
	rootCmd.SetOut(&out)
	rootCmd.SetErr(&bytes.Buffer{})
	rootCmd.SetArgs(args)
	err := rootCmd.Execute()
	return out.String(), err
}

func TestConfigPrintsDefaults(t *testing.T) {
	out, err := runRoot(t, "config")
	if err != nil {
		t.Fatalf("config: %v", err)
	}
	if out != string(config.DefaultYAML()) {
		t.Error("config should print the embedded defaults verbatim")
	}
}

func TestConfigTOMLRoundTrip(t *testing.T) {
	out, err := runRoot(t, "config", "--format", "toml")
	if err != nil {
		t.Fatalf("config --format toml: %v", err)
	}

	var cfg config.InvadersConfig
	if _, err := toml.Decode(out, &cfg); err != nil {
		t.Fatalf("output is not valid TOML: %v\n%s", err, out)
	}
	if cfg != config.DefaultInvadersConfig() {
		t.Errorf("decoded %+v, expected the defaults", cfg)
	}
}

func TestConfigCheck(t *testing.T) {
	dir := t.TempDir()
	good := filepath.Join(dir, "good.yaml")
	bad := filepath.Join(dir, "bad.yaml")
	if err := os.WriteFile(good, []byte("player:\n  speed: 6\n"), 0o644); err != nil {
		t.Fatal(err)
	}
	if err := os.WriteFile(bad, []byte("formation:\n  cols: 0\n"), 0o644); err != nil {
		t.Fatal(err)
	}

	out, err := runRoot(t, "config", "--check", good)
	if err != nil || !strings.Contains(out, "ok") {
		t.Errorf("--check good: out=%q err=%v", out, err)
	}

	if _, err := runRoot(t, "config", "--check", bad); err == nil {
		t.Error("--check should fail on an invalid file")
	}
}

func TestConfigUnknownFormat(t *testing.T) {
	if _, err := runRoot(t, "config", "--format", "json"); err == nil {
		t.Error("unknown format should be rejected")
	}
}

func TestNewLogger(t *testing.T) {
	if _, _, err := newLogger("", "loud"); err == nil {
		t.Error("invalid level should be rejected")
	}

	path := filepath.Join(t.TempDir(), "invaders.log")
	logger, cleanup, err := newLogger(path, "debug")
	if err != nil {
		t.Fatalf("newLogger: %v", err)
	}
	logger.Debug("hello", "k", 1)
	cleanup()

	data, err := os.ReadFile(path)
	if err != nil {
		t.Fatal(err)
	}
	if !strings.Contains(string(data), "hello") || !strings.Contains(string(data), "invaders") {
		t.Errorf("log file = %q, expected the message with the prefix", data)
	}
}

func TestPlayReturnsStartupErrors(t *testing.T) {
	dir := t.TempDir()
	logFile := filepath.Join(dir, "invaders.log")

	tests := []struct {
		name string
		args []string
		want string
	}{
		{"bad log level", []string{"play", "--log-level", "loud"}, "invalid --log-level"},
		{"missing config", []string{"play", "--log-file", logFile, "--config", filepath.Join(dir, "nope.yaml")}, "nope.yaml"},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			_, err := runRoot(t, tc.args...)
			if err == nil || !strings.Contains(err.Error(), tc.want) {
				t.Fatalf("play error = %v, expected it to mention %q", err, tc.want)
			}
		})
	}

	data, err := os.ReadFile(logFile)
	if err != nil {
		t.Fatalf("log file: %v", err)
	}
	if !strings.Contains(string(data), "config rejected") {
		t.Errorf("log file missing the startup error:\n%s", data)
	}
}
