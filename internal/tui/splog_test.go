package tui

import (
	"bytes"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestSplog(t *testing.T) {
	t.Run("writes prefixed messages to the console", func(t *testing.T) {
		t.Setenv("DEBUG", "")
		var buf bytes.Buffer
		splog, err := NewSplogWithConfig(&buf, "")
		require.NoError(t, err)

		splog.Info("plain %s", "info")
		splog.Success("done")
		splog.Warn("careful")
		splog.Error("broken")
		splog.Tip("try this")
		splog.Debug("hidden")

		out := buf.String()
		require.Contains(t, out, "plain info")
		require.Contains(t, out, "✅ done")
		require.Contains(t, out, "careful")
		require.Contains(t, out, "❌ broken")
		require.Contains(t, out, "💡 try this")
		require.NotContains(t, out, "hidden")
	})

	t.Run("debug messages appear in debug mode", func(t *testing.T) {
		var buf bytes.Buffer
		splog, err := NewSplogWithConfig(&buf, "")
		require.NoError(t, err)
		splog.SetDebug(true)

		splog.Debug("visible")
		require.Contains(t, buf.String(), "visible")
	})

	t.Run("file logger records every level with timestamps", func(t *testing.T) {
		var buf bytes.Buffer
		logPath := filepath.Join(t.TempDir(), "logs", "vigit.log")
		splog, err := NewSplogWithConfig(&buf, logPath)
		require.NoError(t, err)

		splog.Debug("only in file")
		splog.FileLogger().Debug("git", "args", "status")
		require.NoError(t, splog.Close())

		data, err := os.ReadFile(logPath)
		require.NoError(t, err)
		require.Contains(t, string(data), "only in file")
		require.Contains(t, string(data), "args=status")
		require.NotContains(t, buf.String(), "only in file")
	})
}
