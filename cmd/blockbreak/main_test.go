package main

import (
	"bytes"
	"os"
	"path/filepath"
	"testing"

	"github.com/charmbracelet/log"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func resetFlags(t *testing.T) {
	t.Helper()
	t.Setenv("HOME", t.TempDir())
	flagConfig, flagControls, flagBonus = "", "", ""
	flagLogLevel, flagLogFile = "info", ""
	t.Cleanup(func() {
		flagConfig, flagControls, flagBonus = "", "", ""
		flagLogLevel, flagLogFile = "info", ""
	})
}

func TestListShowsVariants(t *testing.T) {
	var out bytes.Buffer
	listCmd.SetOut(&out)
	runList(listCmd, nil)

	assert.Contains(t, out.String(), "breakout ")
	assert.Contains(t, out.String(), "breakout_classic")
	assert.Contains(t, out.String(), "Block Breaker (Classic)")
}

func TestApplyGameFlags(t *testing.T) {
	resetFlags(t)
	require.NoError(t, applyGameFlags())

	flagBonus = "combo"
	flagControls = "pointer"
	require.NoError(t, applyGameFlags())

	flagBonus = "double"
	assert.ErrorContains(t, applyGameFlags(), "policy")

	flagBonus = ""
	flagControls = "joystick"
	assert.ErrorContains(t, applyGameFlags(), "controls")
}

func TestApplyGameFlagsBadConfigFile(t *testing.T) {
	resetFlags(t)

	path := filepath.Join(t.TempDir(), "breakout.yaml")
	require.NoError(t, os.WriteFile(path, []byte("ball: [not, a, map"), 0o600))
	flagConfig = path
	assert.ErrorContains(t, applyGameFlags(), "config: failed to parse")

	flagConfig = filepath.Join(t.TempDir(), "missing.yaml")
	assert.Error(t, applyGameFlags())
}

func TestNewLogger(t *testing.T) {
	resetFlags(t)

	var buf bytes.Buffer
	flagLogLevel = "debug"
	logger, closer, err := newLogger(&buf)
	require.NoError(t, err)
	defer closer.Close()
	assert.Equal(t, log.DebugLevel, logger.GetLevel())
	logger.Debug("hello", "k", 1)
	assert.Contains(t, buf.String(), "hello")

	flagLogLevel = "loud"
	_, _, err = newLogger(&buf)
	assert.ErrorContains(t, err, "--log-level")
}

func TestNewLoggerFile(t *testing.T) {
	resetFlags(t)

	flagLogFile = filepath.Join(t.TempDir(), "game.log")
	logger, closer, err := newLogger(nil)
	require.NoError(t, err)
	logger.Info("board cleared", "final", "00:41.20")
	require.NoError(t, closer.Close())

	data, err := os.ReadFile(flagLogFile)
	require.NoError(t, err)
	assert.Contains(t, string(data), "board cleared")
}
