package monitoring

import (
	"bytes"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
	"go.uber.org/zap/zaptest/observer"
)

func TestSetLogger(t *testing.T) {
	// Save original loggers
	original, originalDebug := Logf, Debugf
	defer func() { Logf, Debugf = original, originalDebug }()

	// Test setting a custom logger
	called := 0
	customLogger := func(format string, v ...interface{}) {
		called++
	}

	SetLogger(customLogger)
	Logf("test message")
	Debugf("debug message")
	assert.Equal(t, 2, called, "custom logger should receive Logf and Debugf")

	// Now set to nil and verify it doesn't call our logger
	called = 0
	SetLogger(nil)
	Logf("test")
	Debugf("test")
	assert.Zero(t, called, "no-op logger should not have triggered callback")
}

func TestLogf_Default(t *testing.T) {
	require.NotNil(t, Logf, "Logf should not be nil by default")
	assert.NotPanics(t, func() { Logf("test message: %s", "value") })
}

func TestUseZap(t *testing.T) {
	original, originalDebug := Logf, Debugf
	defer func() { Logf, Debugf = original, originalDebug }()

	core, logs := observer.New(zapcore.InfoLevel)
	UseZap(zap.New(core))

	Logf("converted %d points", 3)
	Debugf("hidden at info level")

	entries := logs.All()
	require.Len(t, entries, 1)
	assert.Equal(t, "converted 3 points", entries[0].Message)
}

func TestNewLogger(t *testing.T) {
	var buf bytes.Buffer
	logger, err := NewLogger(&buf, true)
	require.NoError(t, err)
	assert.True(t, logger.Core().Enabled(zapcore.DebugLevel))
	logger.Sugar().Debugf("scanned %d", 2)
	require.NoError(t, logger.Sync())
	assert.Contains(t, buf.String(), "scanned 2")
	assert.Contains(t, buf.String(), "DEBUG")

	buf.Reset()
	logger, err = NewLogger(&buf, false)
	require.NoError(t, err)
	assert.False(t, logger.Core().Enabled(zapcore.DebugLevel))
	logger.Debug("hidden")
	logger.Info("shown")
	require.NoError(t, logger.Sync())
	assert.NotContains(t, buf.String(), "hidden")
	assert.Contains(t, buf.String(), "shown")

	_, err = NewLogger(nil, false)
	assert.Error(t, err)
}
