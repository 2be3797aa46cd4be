package logger

import (
	"bytes"
	"encoding/json"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func decodeLines(t *testing.T, buf *bytes.Buffer) []map[string]interface{} {
	var out []map[string]interface{}
	for _, line := range strings.Split(strings.TrimSpace(buf.String()), "\n") {
		if line == "" {
			continue
		}
		var entry map[string]interface{}
		require.NoError(t, json.Unmarshal([]byte(line), &entry))
		out = append(out, entry)
	}
	return out
}

func TestLevelFiltering(t *testing.T) {
	var buf bytes.Buffer
	l := newLogger(&buf, "warn")

	l.Info("hidden")
	l.Warn("shown")

	lines := decodeLines(t, &buf)
	require.Len(t, lines, 1)
	assert.Equal(t, "shown", lines[0]["message"])
	assert.Equal(t, "warn", lines[0]["level"])
}

func TestUnknownLevelFallsBackToInfo(t *testing.T) {
	var buf bytes.Buffer
	l := newLogger(&buf, "loud")

	l.Debug("hidden")
	l.Info("shown")

	assert.Len(t, decodeLines(t, &buf), 1)
}

func TestWithFieldsDoesNotLeak(t *testing.T) {
	var buf bytes.Buffer
	l := newLogger(&buf, "info")

	l.WithFields(map[string]interface{}{"stage": "create_users", "count": 3}).Info("stage done")
	l.Info("plain")

	lines := decodeLines(t, &buf)
	require.Len(t, lines, 2)
	assert.Equal(t, "create_users", lines[0]["stage"])
	assert.EqualValues(t, 3, lines[0]["count"])
	assert.NotContains(t, lines[1], "stage")
}
