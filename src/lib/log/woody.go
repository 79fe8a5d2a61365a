package log

import (
	"fmt"

	"go.uber.org/zap"
)

var logger *zap.Logger

func init() {
	// skip this package's wrappers so entries carry the real call site.
	logger, _ = zap.NewProduction(zap.AddCallerSkip(1))
}

// SetLogger swaps the package logger, returning the previous one so callers
// (mostly tests) can restore it. l should be built with zap.AddCallerSkip(1)
// if it records callers.
func SetLogger(l *zap.Logger) *zap.Logger {
	prior := logger
	logger = l
	return prior
}

func Printf(msg string, s ...any) {
	m := fmt.Sprintf(msg, s...)
	Info(m)
}

func Debug(msg string, fields ...zap.Field) {
	logger.Debug(msg, fields...)
}

func Info(msg string, fields ...zap.Field) {
	logger.Info(msg, fields...)
}

func Warn(msg string, fields ...zap.Field) {
	logger.Warn(msg, fields...)
}

func Error(msg string, fields ...zap.Field) {
	logger.Error(msg, fields...)
}

func Fatal(msg string, fields ...zap.Field) {
	logger.Fatal(msg, fields...)
}

func Sync() {
	_ = logger.Sync()
}
