// Package logging wraps logr with a zap backend for the CLI.
package logging

import (
	"github.com/go-logr/logr"
	"github.com/go-logr/zapr"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

// Logger provides a thin wrapper around logr.Logger with convenience helpers.
type Logger struct {
	log logr.Logger
}

// New returns a Logger based on the provided logr.Logger. When the base logger
// is uninitialized it falls back to a logger that discards everything.
func New(base logr.Logger) Logger {
	if base.GetSink() == nil {
		base = logr.Discard()
	}
	return Logger{log: base}
}

// Discard returns a Logger that drops all output. Useful in tests.
func Discard() Logger {
	return Logger{log: logr.Discard()}
}

// NewZap builds a Logger writing to stderr. level accepts zap level names
// ("debug", "info", "warn", "error"); verbose forces debug output.
func NewZap(level string, verbose bool) (Logger, error) {
	lvl := zapcore.InfoLevel
	if level != "" {
		parsed, err := zapcore.ParseLevel(level)
		if err != nil {
			return Logger{}, err
		}
		lvl = parsed
	}
	if verbose {
		lvl = zapcore.DebugLevel
	}

	cfg := zap.NewDevelopmentConfig()
	cfg.Level = zap.NewAtomicLevelAt(lvl)
	cfg.OutputPaths = []string{"stderr"}
	cfg.DisableStacktrace = true
	zapLogger, err := cfg.Build()
	if err != nil {
		return Logger{}, err
	}
	return Logger{log: zapr.NewLogger(zapLogger)}, nil
}

// WithValues returns a new Logger with additional key-value pairs attached.
func (l Logger) WithValues(keysAndValues ...any) Logger {
	return Logger{log: l.log.WithValues(keysAndValues...)}
}

// WithName scopes the logger with the supplied name.
func (l Logger) WithName(name string) Logger {
	return Logger{log: l.log.WithName(name)}
}

// Info logs an informational message.
func (l Logger) Info(msg string, keysAndValues ...any) {
	l.log.Info(msg, keysAndValues...)
}

// Debug logs a verbose message when V(1) is enabled on the underlying logger.
func (l Logger) Debug(msg string, keysAndValues ...any) {
	if l.log.V(1).Enabled() {
		l.log.V(1).Info(msg, keysAndValues...)
	}
}

// Error logs an error message.
func (l Logger) Error(err error, msg string, keysAndValues ...any) {
	l.log.Error(err, msg, keysAndValues...)
}
