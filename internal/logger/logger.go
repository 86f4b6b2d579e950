// Package logger builds the application's zap logger. The terminal is
// owned by the UI while the program runs, so log output goes to a file
// rather than stdout.
package logger

import (
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

// DefaultPath is where logs land unless the config says otherwise.
const DefaultPath = "skillscope.log"

func New(path string, json bool, debug bool) (*zap.Logger, error) {
	if path == "" {
		path = DefaultPath
	}

	level := zapcore.InfoLevel
	encoding := "console"

	if json {
		encoding = "json"
	}

	if debug {
		level = zapcore.DebugLevel
	}

	cfg := zap.Config{
		Encoding:         encoding,
		Level:            zap.NewAtomicLevelAt(level),
		OutputPaths:      []string{path},
		ErrorOutputPaths: []string{path},
		EncoderConfig: zapcore.EncoderConfig{
			MessageKey: "msg",

			LevelKey:    "level",
			EncodeLevel: zapcore.LowercaseLevelEncoder,

			TimeKey:    "time",
			EncodeTime: zapcore.RFC3339TimeEncoder,

			CallerKey:    "caller",
			EncodeCaller: zapcore.ShortCallerEncoder,
		},
	}
	return cfg.Build()
}
