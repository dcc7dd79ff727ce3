package logger

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"

	"cpu-scheduler/config"
)

func TestBuild(t *testing.T) {
	previous := zap.L()
	t.Cleanup(func() { zap.ReplaceGlobals(previous) })

	log, err := Build(config.LoggerConfig{Level: "debug", Encoding: "console"})
	require.NoError(t, err)
	assert.Same(t, log, zap.L())
	assert.Equal(t, zapcore.DebugLevel, Level())
	assert.True(t, log.Core().Enabled(zapcore.DebugLevel))

	SetLevel("warn")
	assert.Equal(t, zapcore.WarnLevel, Level())
	assert.False(t, log.Core().Enabled(zapcore.InfoLevel))
	assert.True(t, log.Core().Enabled(zapcore.ErrorLevel))

	// unparsable levels leave the current one in place
	SetLevel("loud")
	assert.Equal(t, zapcore.WarnLevel, Level())
}

func TestBuildInvalidLevel(t *testing.T) {
	_, err := Build(config.LoggerConfig{Level: "verbose"})
	assert.Error(t, err)
}
