// Package monitoring holds the package-level diagnostic logger shared by
// the CLI and the point readers.
package monitoring

import (
	"errors"
	"io"

	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

// Logf is the package-level diagnostic logger. It defaults to the global zap
// sugared logger (a no-op until UseZap or zap.ReplaceGlobals installs one)
// and may be replaced by SetLogger. Tests or production code can redirect or
// mute it.
var Logf func(format string, v ...interface{}) = func(format string, v ...interface{}) {
	zap.S().Infof(format, v...)
}

// Debugf is Logf's verbose sibling; it only emits at debug level.
var Debugf func(format string, v ...interface{}) = func(format string, v ...interface{}) {
	zap.S().Debugf(format, v...)
}

// SetLogger replaces the package logger. Passing nil will set a no-op logger.
// Debugf is routed to the same function.
func SetLogger(f func(format string, v ...interface{})) {
	if f == nil {
		Logf = func(string, ...interface{}) {}
		Debugf = Logf
		return
	}
	Logf = f
	Debugf = f
}

// NewLogger builds the console zap logger used by the CLI. It writes to w,
// normally the command's error stream, so results on stdout stay
// machine-readable.
func NewLogger(w io.Writer, verbose bool) (*zap.Logger, error) {
	if w == nil {
		return nil, errors.New("nil log writer")
	}
	encoderConfig := zap.NewProductionEncoderConfig()
	encoderConfig.EncodeTime = zapcore.ISO8601TimeEncoder
	level := zapcore.InfoLevel
	if verbose {
		level = zapcore.DebugLevel
	}
	core := zapcore.NewCore(zapcore.NewConsoleEncoder(encoderConfig), zapcore.AddSync(w), level)
	return zap.New(core, zap.ErrorOutput(zapcore.AddSync(w))), nil
}

// UseZap routes Logf and Debugf through logger.
func UseZap(logger *zap.Logger) {
	sugar := logger.Sugar()
	Logf = sugar.Infof
	Debugf = sugar.Debugf
}
