package logger

import (
	"bytes"
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"os"
	"path/filepath"
	"testing"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func decodeEntry(t *testing.T, b []byte) map[string]any {
	t.Helper()
	var entry map[string]any
	require.NoError(t, json.Unmarshal(b, &entry))
	return entry
}

func TestNewLogger_RoleAndTimestamp(t *testing.T) {
	var buf bytes.Buffer
	l := NewLogger("gateway")
	l.Logger = l.Output(&buf)

	l.Info().Msg("hello")

	entry := decodeEntry(t, buf.Bytes())
	assert.Equal(t, "gateway", entry["role"])
	_, hasTime := entry["time"]
	assert.True(t, hasTime, "expected 'time' field in log entry")
}

func TestNewLogger_CallerFieldName(t *testing.T) {
	NewLogger("caller-role")
	assert.Equal(t, "func", zerolog.CallerFieldName)
}

func TestNewClientLogger_WritesToFile(t *testing.T) {
	dir := t.TempDir()
	l := NewClientLogger("cli", dir)
	require.NotNil(t, l)

	l.Info().Str("func", "TestNewClientLogger_WritesToFile").Msg("to file")

	data, err := os.ReadFile(filepath.Join(dir, logFileName))
	require.NoError(t, err)
	entry := decodeEntry(t, bytes.TrimSpace(data))
	assert.Equal(t, "cli", entry["role"])
	assert.Equal(t, "to file", entry["message"])
}

func TestNewClientLogger_UnwritableDirFallsBack(t *testing.T) {
	l := NewClientLogger("cli", filepath.Join(t.TempDir(), "missing", "nested"))
	require.NotNil(t, l)
}

func TestSetLevel(t *testing.T) {
	t.Cleanup(func() { zerolog.SetGlobalLevel(zerolog.DebugLevel) })

	require.NoError(t, SetLevel("warn"))
	assert.Equal(t, zerolog.WarnLevel, zerolog.GlobalLevel())

	require.NoError(t, SetLevel(""))
	assert.Equal(t, zerolog.WarnLevel, zerolog.GlobalLevel())

	assert.Error(t, SetLevel("loud"))
}

func TestNop_DiscardsOutput(t *testing.T) {
	var buf bytes.Buffer
	l := Nop()
	l.Logger = l.Output(&buf)

	l.Info().Msg("should be discarded")

	assert.Empty(t, buf.String())
}

func TestGetChildLogger_InheritsFields(t *testing.T) {
	var buf bytes.Buffer
	parent := NewLogger("inherited-role")
	parent.Logger = parent.Output(&buf)

	child := parent.GetChildLogger()
	assert.NotSame(t, parent, child)
	child.Info().Msg("child message")

	entry := decodeEntry(t, buf.Bytes())
	assert.Equal(t, "inherited-role", entry["role"])
}

func TestWithContext_RoundTrip(t *testing.T) {
	var buf bytes.Buffer
	l := &Logger{zerolog.New(&buf).With().Str("flow", "reveal").Logger()}

	ctx := l.WithContext(context.Background())
	FromContext(ctx).Info().Msg("from context")

	entry := decodeEntry(t, buf.Bytes())
	assert.Equal(t, "reveal", entry["flow"])
}

func TestFromContext_NotNil(t *testing.T) {
	require.NotNil(t, FromContext(context.Background()))
}

func TestFromRequest_ReturnsAttachedLogger(t *testing.T) {
	var buf bytes.Buffer
	zl := zerolog.New(&buf).With().Str("req-key", "req-value").Logger()

	req := httptest.NewRequest(http.MethodGet, "/", nil)
	req = req.WithContext(zl.WithContext(context.Background()))

	FromRequest(req).Info().Msg("from request")

	entry := decodeEntry(t, buf.Bytes())
	assert.Equal(t, "req-value", entry["req-key"])
}
