package logger

import (
	"os"

	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

var L *zap.Logger

func init() {
	config := zap.NewProductionConfig()
	config.EncoderConfig.TimeKey = "ts"
	config.EncoderConfig.EncodeTime = zapcore.ISO8601TimeEncoder
	config.Level = zap.NewAtomicLevelAt(levelFromEnv())

	var err error
	L, err = config.Build(zap.AddCallerSkip(1))
	if err != nil {
		panic(err)
	}
}

func levelFromEnv() zapcore.Level {
	level := zapcore.InfoLevel
	if raw := os.Getenv("LOG_LEVEL"); raw != "" {
		if err := level.UnmarshalText([]byte(raw)); err != nil {
			return zapcore.InfoLevel
		}
	}
	return level
}

// WithComponent returns a child logger tagged with the component name.
func WithComponent(component string) *zap.Logger {
	return L.With(zap.String("component", component))
}

// Sync flushes buffered log entries; call it before the process exits.
func Sync() {
	_ = L.Sync()
}
