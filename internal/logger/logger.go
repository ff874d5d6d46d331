// Package logger configures the process-wide zap logger.
//
// The MCP stdio transport owns stdout, so every log line goes to stderr.
// Tools obtain the logger via Get(), which falls back to a nop logger so
// code under test never has to initialize logging first.
package logger

import (
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

var log *zap.Logger

// Init builds the global logger at the given level ("debug", "info",
// "warn", "error"). An empty level means "info".
func Init(level string) error {
	if level == "" {
		level = "info"
	}

	var zapLevel zapcore.Level
	if err := zapLevel.UnmarshalText([]byte(level)); err != nil {
		return err
	}

	cfg := zap.Config{
		Level:            zap.NewAtomicLevelAt(zapLevel),
		Encoding:         "json",
		EncoderConfig:    zap.NewProductionEncoderConfig(),
		OutputPaths:      []string{"stderr"},
		ErrorOutputPaths: []string{"stderr"},
	}
	cfg.EncoderConfig.StacktraceKey = ""

	built, err := cfg.Build()
	if err != nil {
		return err
	}

	log = built
	return nil
}

// Get returns the global logger, or a nop logger if Init was never called.
func Get() *zap.Logger {
	if log == nil {
		return zap.NewNop()
	}
	return log
}

// Sync flushes buffered log entries. Safe to call without Init.
func Sync() {
	if log != nil {
		_ = log.Sync()
	}
}
