package logger

import (
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

// Logger wraps zap.SugaredLogger
type Logger struct {
	*zap.SugaredLogger
}

// L is the process-wide logger. Prefer passing a *Logger where possible.
var L *Logger

func init() {
	L, _ = NewLogger(false)
	if L == nil {
		L = NewNop()
	}
}

// NewLogger builds a production logger, or a development one when dev is true.
func NewLogger(dev bool) (*Logger, error) {
	config := zap.NewProductionConfig()
	if dev {
		config = zap.NewDevelopmentConfig()
	}
	config.EncoderConfig.TimeKey = "timestamp"
	config.EncoderConfig.EncodeTime = zapcore.ISO8601TimeEncoder

	zapLogger, err := config.Build()
	if err != nil {
		return nil, err
	}

	return &Logger{SugaredLogger: zapLogger.Sugar()}, nil
}

// NewNop returns a logger that discards everything (tests).
func NewNop() *Logger {
	return &Logger{SugaredLogger: zap.NewNop().Sugar()}
}

// Init replaces the global logger according to the app mode.
func Init(dev bool) error {
	l, err := NewLogger(dev)
	if err != nil {
		return err
	}
	L = l
	return nil
}

// Sync flushes buffered entries
func Sync() {
	if L != nil {
		_ = L.SugaredLogger.Sync()
	}
}
