package logging

import (
	"errors"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap/zapcore"
	"go.uber.org/zap/zaptest/observer"
)

func TestToZapFields(t *testing.T) {
	fields := []Field{
		String("s", "v"),
		Int("i", 1),
		Int64("i64", int64(2)),
		Float64("f", 3.5),
		Bool("b", true),
		Duration("d", time.Second),
		Err(errors.New("boom")),
		Any("a", struct{ X int }{1}),
	}
	out := toZapFields(fields)
	require.Len(t, out, len(fields))
	assert.Equal(t, "s", out[0].Key)
	assert.Equal(t, "error", out[6].Key)
}

func TestErrNil(t *testing.T) {
	f := Err(nil)
	assert.Equal(t, "error", f.Key)
	assert.Equal(t, "<nil>", f.Value)
}

func TestObservedLogger(t *testing.T) {
	core, logs := observer.New(zapcore.DebugLevel)
	log := NewLoggerFromCore(core)

	log.Named("engine").With(String("category", "divorce")).Info("analysis complete", Int("confidence", 95))

	entries := logs.All()
	require.Len(t, entries, 1)
	assert.Equal(t, "analysis complete", entries[0].Message)
	ctx := entries[0].ContextMap()
	assert.Equal(t, "divorce", ctx["category"])
	assert.EqualValues(t, 95, ctx["confidence"])
}

func TestParseLevel(t *testing.T) {
	assert.Equal(t, zapcore.DebugLevel, parseLevel("debug"))
	assert.Equal(t, zapcore.WarnLevel, parseLevel("WARN"))
	assert.Equal(t, zapcore.InfoLevel, parseLevel("nonsense"))
}

func TestDefaultIsSwappable(t *testing.T) {
	orig := Default()
	defer SetDefault(orig)

	core, logs := observer.New(zapcore.InfoLevel)
	SetDefault(NewLoggerFromCore(core))
	Default().Info("hello")
	assert.Equal(t, 1, logs.Len())

	// nil is ignored, not installed.
	SetDefault(nil)
	Default().Info("again")
	assert.Equal(t, 2, logs.Len())
}

func TestSetLevelReload(t *testing.T) {
	path := filepath.Join(t.TempDir(), "app.log")
	log, err := NewLogger(Config{Level: "info", OutputPaths: []string{path}})
	require.NoError(t, err)

	r, ok := log.(LevelReloader)
	require.True(t, ok)

	log.Debug("suppressed entry")
	r.SetLevel("debug")
	log.Debug("emitted entry")
	log.Named("http").Debug("emitted child entry")

	data, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.NotContains(t, string(data), "suppressed entry")
	assert.Contains(t, string(data), "emitted entry")
	assert.Contains(t, string(data), "emitted child entry")
}
