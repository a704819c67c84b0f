package logging

import (
	"bytes"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNew_WritesSessionField(t *testing.T) {
	var buf bytes.Buffer
	log, err := New(&buf, "info")
	require.NoError(t, err)

	log.Info().Str("door", "31,7").Msg("transition")
	out := buf.String()
	assert.Contains(t, out, "transition")
	assert.Contains(t, out, "session=")
	assert.Contains(t, out, "door=")
	assert.Contains(t, out, "31,7")
}

func TestNew_RespectsLevel(t *testing.T) {
	var buf bytes.Buffer
	log, err := New(&buf, "warn")
	require.NoError(t, err)

	log.Info().Msg("hidden")
	assert.Empty(t, buf.String())
	log.Warn().Msg("shown")
	assert.Contains(t, buf.String(), "shown")
}

func TestNew_BadLevel(t *testing.T) {
	_, err := New(&bytes.Buffer{}, "loud")
	require.Error(t, err)
}

func TestFields(t *testing.T) {
	f := Fields("a", 1, 2, "dropped", "b", "x", "dangling")
	assert.Equal(t, map[string]any{"a": 1, "b": "x"}, f)
}
