package logger

import (
	"bytes"
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// entryOf writes one info line through l into a buffer and decodes it.
func entryOf(t *testing.T, l *Logger) map[string]any {
	t.Helper()
	var buf bytes.Buffer
	l.Logger = l.Output(&buf)
	l.Info().Msg("probe")

	var entry map[string]any
	require.NoError(t, json.Unmarshal(buf.Bytes(), &entry))
	return entry
}

func TestNewLogger_Fields(t *testing.T) {
	t.Cleanup(func() { zerolog.SetGlobalLevel(zerolog.DebugLevel) })

	entry := entryOf(t, NewLogger("go-api-hub", "debug"))

	assert.Equal(t, "go-api-hub", entry["role"])
	assert.Contains(t, entry, "time")
	assert.Contains(t, entry, "func")
	assert.Equal(t, "func", zerolog.CallerFieldName)
}

func TestNewLogger_Levels(t *testing.T) {
	t.Cleanup(func() { zerolog.SetGlobalLevel(zerolog.DebugLevel) })

	for level, want := range map[string]zerolog.Level{
		"debug": zerolog.DebugLevel,
		"warn":  zerolog.WarnLevel,
		"error": zerolog.ErrorLevel,
		"":      zerolog.InfoLevel,
		"loud":  zerolog.InfoLevel,
	} {
		NewLogger("levels", level)
		assert.Equal(t, want, zerolog.GlobalLevel(), "level %q", level)
	}
}

func TestNewConsoleLogger(t *testing.T) {
	t.Cleanup(func() { zerolog.SetGlobalLevel(zerolog.DebugLevel) })

	l := NewConsoleLogger("api-hub-client", "error")
	require.NotNil(t, l)
	assert.Equal(t, zerolog.ErrorLevel, zerolog.GlobalLevel())
}

func TestNop(t *testing.T) {
	var buf bytes.Buffer
	l := Nop()
	l.Logger = l.Output(&buf)
	l.Error().Msg("dropped")

	assert.Empty(t, buf.String())
}

func TestGetChildLogger(t *testing.T) {
	parent := NewLogger("parent", "debug")
	t.Cleanup(func() { zerolog.SetGlobalLevel(zerolog.DebugLevel) })

	child := parent.GetChildLogger()
	assert.NotSame(t, parent, child)

	child.UpdateContext(func(c zerolog.Context) zerolog.Context {
		return c.Str("trace_id", "t-1")
	})

	childEntry := entryOf(t, child)
	assert.Equal(t, "parent", childEntry["role"])
	assert.Equal(t, "t-1", childEntry["trace_id"])

	assert.NotContains(t, entryOf(t, parent), "trace_id")
}

func TestFromContextAndRequest(t *testing.T) {
	var buf bytes.Buffer
	zl := zerolog.New(&buf).With().Str("trace_id", "abc").Logger()
	ctx := zl.WithContext(context.Background())

	FromContext(ctx).Info().Msg("ctx")
	req := httptest.NewRequest(http.MethodGet, "/", nil).WithContext(ctx)
	FromRequest(req).Info().Msg("req")

	lines := bytes.Split(bytes.TrimSpace(buf.Bytes()), []byte("\n"))
	require.Len(t, lines, 2)
	for _, line := range lines {
		assert.Contains(t, string(line), `"trace_id":"abc"`)
	}

	assert.NotNil(t, FromContext(context.Background()))
	assert.NotNil(t, FromRequest(httptest.NewRequest(http.MethodGet, "/", nil)))
}
