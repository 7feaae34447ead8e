package main

import (
	"bytes"
	"path/filepath"
	"testing"

	"github.com/charmbracelet/log"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/vovakirdan/tui-breakout/internal/config"
)

func execute(t *testing.T, args ...string) (string, error) {
	t.Helper()
	var out bytes.Buffer
	rootCmd.SetOut(&out)
	rootCmd.SetArgs(args)
	t.Cleanup(func() {
		rootCmd.SetOut(nil)
		rootCmd.SetArgs(nil)
		flagLogFile = ""
		flagDebug = false
	})
	err := rootCmd.Execute()
	return out.String(), err
}

func TestListShowsBreakout(t *testing.T) {
	out, err := execute(t, "list")
	require.NoError(t, err)
	assert.Contains(t, out, "breakout  Breakout")
}

func TestConfigPrintsDefaults(t *testing.T) {
	out, err := execute(t, "config")
	require.NoError(t, err)
	assert.Equal(t, string(config.DefaultYAML()), out)

	parsed, err := config.Parse([]byte(out), config.FormatYAML)
	require.NoError(t, err)
	assert.Equal(t, config.DefaultBreakoutConfig(), parsed)
}

func TestPlayUnknownGame(t *testing.T) {
	_, err := execute(t, "play", "pinball")
	require.Error(t, err)
	assert.Contains(t, err.Error(), `unknown game "pinball"`)
}

func TestLogFileAndDebug(t *testing.T) {
	path := filepath.Join(t.TempDir(), "breakout.log")
	_, err := execute(t, "--debug", "--log-file", path, "list")
	require.NoError(t, err)

	assert.FileExists(t, path)
	assert.Equal(t, log.DebugLevel, logger.GetLevel())
}

func TestNewLoggerLevel(t *testing.T) {
	var buf bytes.Buffer
	l := newLogger(&buf, false)
	l.Debug("hidden")
	l.Info("shown", "k", 1)

	assert.NotContains(t, buf.String(), "hidden")
	assert.Contains(t, buf.String(), "breakout")
	assert.Contains(t, buf.String(), "k=1")
}

func TestRuntimeConfigDefaults(t *testing.T) {
	cfg := runtimeConfig(0, 0)
	assert.Equal(t, 80, cfg.ScreenW)
	assert.Equal(t, 24, cfg.ScreenH)
	assert.Equal(t, 60, cfg.TickRate)

	cfg = runtimeConfig(120, 40)
	assert.Equal(t, 120, cfg.ScreenW)
	assert.Equal(t, 40, cfg.ScreenH)
}
