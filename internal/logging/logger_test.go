// ABOUTME: Tests for logger construction
// ABOUTME: Checks level parsing and output destination
package logging

import (
	"bytes"
	"strings"
	"testing"
)

func TestNewLevels(t *testing.T) {
	t.Run("respects level", func(t *testing.T) {
		var buf bytes.Buffer
		logger := New(&buf, "warn")
		logger.Info("hidden")
		logger.Warn("shown", "key", "value")

		out := buf.String()
		if strings.Contains(out, "hidden") {
			t.Errorf("info line should be filtered at warn level: %s", out)
		}
		if !strings.Contains(out, "shown") || !strings.Contains(out, "key=value") {
			t.Errorf("expected warn line with key/value, got: %s", out)
		}
	})

	t.Run("unknown level falls back to info", func(t *testing.T) {
		var buf bytes.Buffer
		logger := New(&buf, "loud")
		logger.Debug("debug line")
		logger.Info("info line")

		out := buf.String()
		if strings.Contains(out, "debug line") {
			t.Errorf("debug should be filtered: %s", out)
		}
		if !strings.Contains(out, "info line") {
			t.Errorf("expected info line, got: %s", out)
		}
	})
}
