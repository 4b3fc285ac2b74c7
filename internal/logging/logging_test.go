package logging

import (
	"bytes"
	"log/slog"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/aurakai/gatenav/internal/config"
)

func TestParseLevel(t *testing.T) {
	require.Equal(t, slog.LevelDebug, ParseLevel("DEBUG"))
	require.Equal(t, slog.LevelWarn, ParseLevel("warning"))
	require.Equal(t, slog.LevelError, ParseLevel("error"))
	require.Equal(t, slog.LevelInfo, ParseLevel("bogus"))
}

func TestNewWithWriterJSON(t *testing.T) {
	var buf bytes.Buffer
	logger := NewWithWriter(config.LogConfig{Level: "warn", Format: "json"}, &buf)
	logger.Info("hidden")
	logger.Warn("navigation failed", "gate", "rom-tools")
	require.NotContains(t, buf.String(), "hidden")
	require.Contains(t, buf.String(), `"gate":"rom-tools"`)
}

func TestNewWritesFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "logs", "gatenav.log")
	logger, closer, err := New(config.LogConfig{Level: "info", Path: path})
	require.NoError(t, err)
	logger.Info("navigation emitted", "gate", "help-desk")
	require.NoError(t, closer.Close())

	data, err := os.ReadFile(path)
	require.NoError(t, err)
	require.Contains(t, string(data), "gate=help-desk")
}

func TestNewEmptyPathDiscards(t *testing.T) {
	logger, closer, err := New(config.LogConfig{})
	require.NoError(t, err)
	logger.Info("nothing")
	require.NoError(t, closer.Close())
}
