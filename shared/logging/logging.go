// Package logging builds the zap loggers used across the module.
package logging

import (
	"os"

	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

// NewDevelopment returns a console logger on stdout at debug level.
func NewDevelopment() *zap.Logger {
	return NewConsole(zapcore.Lock(os.Stdout), zap.DebugLevel)
}

// NewConsole returns a human readable logger writing to ws.
func NewConsole(ws zapcore.WriteSyncer, level zapcore.LevelEnabler) *zap.Logger {
	return zap.New(zapcore.NewCore(
		zapcore.NewConsoleEncoder(zap.NewDevelopmentEncoderConfig()),
		ws,
		level,
	))
}

// NewJSON returns a structured logger writing one JSON object per entry to ws.
func NewJSON(ws zapcore.WriteSyncer, level zapcore.LevelEnabler) *zap.Logger {
	return zap.New(zapcore.NewCore(
		zapcore.NewJSONEncoder(zap.NewProductionEncoderConfig()),
		ws,
		level,
	))
}
