package logging

import (
	"bytes"
	"os"
	"path/filepath"
	"testing"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func setupTestLogger(output *bytes.Buffer, level string) {
	lvl, err := zerolog.ParseLevel(level)
	if err != nil {
		lvl = zerolog.InfoLevel
	}
	SetLoggerForTest(zerolog.New(output).With().Timestamp().Logger().Level(lvl))
}

func TestInfoLogging(t *testing.T) {
	var buf bytes.Buffer
	setupTestLogger(&buf, "info")

	Info("release notes written", "bytes", 42, "dry_run", false)

	out := buf.String()
	assert.Contains(t, out, "release notes written")
	assert.Contains(t, out, `"bytes":42`)
	assert.Contains(t, out, `"dry_run":false`)
}

func TestLevelFiltering(t *testing.T) {
	var buf bytes.Buffer
	setupTestLogger(&buf, "warn")

	Info("hidden")
	Debug("hidden too")
	Warn("something odd", "code", 99)
	Error("failed", "fatal", true)

	out := buf.String()
	assert.NotContains(t, out, "hidden")
	assert.Contains(t, out, `"code":99`)
	assert.Contains(t, out, `"fatal":true`)
}

func TestSetLogLevel(t *testing.T) {
	var buf bytes.Buffer
	setupTestLogger(&buf, "warn")

	SetLogLevel("debug")
	Debug("should be visible")

	assert.Contains(t, buf.String(), "should be visible")
}

func TestParseLevel_FallsBackToWarn(t *testing.T) {
	assert.Equal(t, zerolog.WarnLevel, parseLevel("nonsense"))
	assert.Equal(t, zerolog.WarnLevel, parseLevel(""))
	assert.Equal(t, zerolog.InfoLevel, parseLevel(" INFO "))
}

func TestInitLogger_WritesToFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "relnotes.log")
	InitLogger(path, 1, 1, 1, false, "info")
	t.Cleanup(func() { InitLogger("", 0, 0, 0, false, DefaultLevel) })

	Info("to file", "k", "v")

	data, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.Contains(t, string(data), `"k":"v"`)
}
