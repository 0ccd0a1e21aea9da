package compiler

import (
	"io"
	"os"

	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

// Logger provides verbose output for the decisions taken while compiling.
type Logger struct {
	enabled bool
	sugar   *zap.SugaredLogger
}

// NewLogger creates a logger writing to stderr when enabled.
func NewLogger(enabled bool) *Logger {
	l := &Logger{enabled: enabled}
	l.SetOutput(os.Stderr)
	return l
}

// FromZap wraps an existing zap logger. Debug output is emitted only when
// the logger has debug level enabled.
func FromZap(z *zap.Logger) *Logger {
	if z == nil {
		return NewLogger(false)
	}
	return &Logger{
		enabled: z.Core().Enabled(zapcore.DebugLevel),
		sugar:   z.Named("compiler").Sugar(),
	}
}

// SetOutput sets the output writer for the logger.
func (l *Logger) SetOutput(w io.Writer) {
	if !l.enabled {
		l.sugar = zap.NewNop().Sugar()
		return
	}

	encoderConfig := zap.NewDevelopmentEncoderConfig()
	encoderConfig.TimeKey = ""
	core := zapcore.NewCore(
		zapcore.NewConsoleEncoder(encoderConfig),
		zapcore.AddSync(w),
		zapcore.DebugLevel,
	)
	l.sugar = zap.New(core).Named("verbex").Sugar()
}

// Log prints a formatted message if verbose mode is enabled.
func (l *Logger) Log(format string, args ...interface{}) {
	if l.enabled {
		l.sugar.Debugf(format, args...)
	}
}

// Section prints a section header if verbose mode is enabled.
func (l *Logger) Section(name string) {
	if l.enabled {
		l.sugar.Debugf("=== %s ===", name)
	}
}

// Enabled returns whether the logger is enabled.
func (l *Logger) Enabled() bool {
	return l.enabled
}
