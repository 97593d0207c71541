package logger

import (
	"bytes"
	"encoding/json"
	"errors"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func lines(t *testing.T, buf *bytes.Buffer) []map[string]any {
	t.Helper()

	var out []map[string]any

	for _, line := range strings.Split(strings.TrimSpace(buf.String()), "\n") {
		if line == "" {
			continue
		}

		entry := map[string]any{}
		require.NoError(t, json.Unmarshal([]byte(line), &entry))
		out = append(out, entry)
	}

	return out
}

func TestLogger_Levels(t *testing.T) {
	var buf bytes.Buffer

	l := NewWithWriter("warn", &buf)

	l.Debug("debug is dropped")
	l.Info("info is dropped")
	l.Warn("slot %s is almost full", "18:00")
	l.Error(errors.New("store unavailable"))

	entries := lines(t, &buf)
	require.Len(t, entries, 2)

	assert.Equal(t, "warn", entries[0]["level"])
	assert.Equal(t, "slot 18:00 is almost full", entries[0]["message"])
	assert.Equal(t, "error", entries[1]["level"])
	assert.Equal(t, "store unavailable", entries[1]["message"])
}

func TestLogger_IdentifierFormat(t *testing.T) {
	var buf bytes.Buffer

	l := NewWithWriter("debug", &buf)
	l.Info("service - booking - %s", "created booking 1")

	entries := lines(t, &buf)
	require.Len(t, entries, 1)
	assert.Equal(t, "service - booking - created booking 1", entries[0]["message"])
	assert.Contains(t, entries[0], "time")
}

func TestLogger_UnknownMessageType(t *testing.T) {
	var buf bytes.Buffer

	l := NewWithWriter("info", &buf)
	l.Info(42)

	entries := lines(t, &buf)
	require.Len(t, entries, 1)
	assert.Contains(t, entries[0]["message"], "unknown type int")
}

func TestParseLevel_DefaultsToInfo(t *testing.T) {
	assert.Equal(t, "info", parseLevel("verbose").String())
	assert.Equal(t, "debug", parseLevel("DEBUG").String())
}
