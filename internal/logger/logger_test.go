package logger

import (
	"bytes"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLevelFilter(t *testing.T) {
	var buf bytes.Buffer
	l, err := New(&buf, FormatLogfmt, LevelWarn)
	require.NoError(t, err)

	l.Info("hidden")
	l.Warn("shown", "engine", "alf")

	out := buf.String()
	assert.NotContains(t, out, "hidden")
	assert.Contains(t, out, "msg=shown")
	assert.Contains(t, out, "engine=alf")
	assert.Contains(t, out, "level=warn")
}

func TestJSONFormat(t *testing.T) {
	var buf bytes.Buffer
	l, err := New(&buf, FormatJSON, LevelDebug)
	require.NoError(t, err)

	l.With("run", "abc").Debug("sampled", "n", 3)
	assert.Contains(t, buf.String(), `"run":"abc"`)
	assert.Contains(t, buf.String(), `"msg":"sampled"`)
}

func TestInvalidSettings(t *testing.T) {
	_, err := New(&bytes.Buffer{}, "xml", LevelInfo)
	assert.Error(t, err)
	_, err = New(&bytes.Buffer{}, FormatLogfmt, "loud")
	assert.Error(t, err)

	assert.True(t, ValidLevel("DEBUG"))
	assert.False(t, ValidLevel("trace"))
	assert.True(t, ValidFormat(""))
	assert.False(t, ValidFormat("xml"))
}

func TestNopDiscards(t *testing.T) {
	Nop().Error("nothing")
}

func TestFromEnv(t *testing.T) {
	t.Setenv("LOG_FORMAT", FormatJSON)
	t.Setenv("LOG_LEVEL", LevelWarn)

	var buf bytes.Buffer
	l := fromEnv(&buf)
	l.Info("hidden")
	l.Error("command failed", "err", "boom")
	assert.NotContains(t, buf.String(), "hidden")
	assert.Contains(t, buf.String(), `"msg":"command failed"`)

	t.Setenv("LOG_FORMAT", "xml")
	buf.Reset()
	fromEnv(&buf).Info("fallback")
	assert.Contains(t, buf.String(), "msg=fallback")
	assert.Contains(t, buf.String(), "level=info")

	assert.NotNil(t, NewDefault())
}
