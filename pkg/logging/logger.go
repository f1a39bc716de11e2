package logging

import (
	"io"
	"os"

	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

// LogLevel defines the severity of the message
type LogLevel int

const (
	DEBUG LogLevel = iota
	INFO
	WARN
	ERROR
)

// Logger interface defines logging operations
//
//go:generate mockery --name=Logger --output=./mocks
type Logger interface {
	Debug(format string, args ...any)
	Info(format string, args ...any)
	Warn(format string, args ...any)
	Error(format string, args ...any)
	SetOutput(w io.Writer)
	SetLevel(level LogLevel)
}

// DefaultLogger provides a standard implementation backed by zap.
// Output lines follow the "timestamp - LEVEL - message" layout the original
// operator runbooks grep for.
type DefaultLogger struct {
	level zap.AtomicLevel
	sugar *zap.SugaredLogger
}

// NewDefaultLogger creates a new logger instance writing to stdout at INFO.
func NewDefaultLogger() *DefaultLogger {
	return NewLoggerWithWriter(os.Stdout, INFO)
}

// NewLoggerWithWriter creates a logger writing to w at the given level.
func NewLoggerWithWriter(w io.Writer, level LogLevel) *DefaultLogger {
	l := &DefaultLogger{
		level: zap.NewAtomicLevelAt(zapLevel(level)),
	}
	l.rebuild(w)
	return l
}

// NewMockLogger returns a convenient quiet logger for testing
func NewMockLogger() *DefaultLogger {
	return NewLoggerWithWriter(io.Discard, INFO)
}

// Debug logs debug messages
func (l *DefaultLogger) Debug(format string, args ...any) {
	l.sugar.Debugf(format, args...)
}

// Info logs informational messages
func (l *DefaultLogger) Info(format string, args ...any) {
	l.sugar.Infof(format, args...)
}

// Warn logs warning messages
func (l *DefaultLogger) Warn(format string, args ...any) {
	l.sugar.Warnf(format, args...)
}

// Error logs error messages
func (l *DefaultLogger) Error(format string, args ...any) {
	l.sugar.Errorf(format, args...)
}

// SetOutput sets the output destination for the logger
func (l *DefaultLogger) SetOutput(w io.Writer) {
	l.rebuild(w)
}

// SetLevel sets the logging level
func (l *DefaultLogger) SetLevel(level LogLevel) {
	l.level.SetLevel(zapLevel(level))
}

// rebuild swaps the zap core so the logger writes to w. The atomic level is
// shared across rebuilds, so SetLevel keeps working after SetOutput.
func (l *DefaultLogger) rebuild(w io.Writer) {
	encCfg := zap.NewProductionEncoderConfig()
	encCfg.EncodeTime = zapcore.TimeEncoderOfLayout("2006-01-02 15:04:05")
	encCfg.EncodeLevel = zapcore.CapitalLevelEncoder
	encCfg.ConsoleSeparator = " - "
	core := zapcore.NewCore(zapcore.NewConsoleEncoder(encCfg), zapcore.AddSync(w), l.level)
	l.sugar = zap.New(core).Sugar()
}

func zapLevel(level LogLevel) zapcore.Level {
	switch level {
	case DEBUG:
		return zapcore.DebugLevel
	case WARN:
		return zapcore.WarnLevel
	case ERROR:
		return zapcore.ErrorLevel
	default:
		return zapcore.InfoLevel
	}
}

// StringToLogLevel converts a string representation to a LogLevel
func StringToLogLevel(level string) LogLevel {
	switch level {
	case "debug":
		return DEBUG
	case "info":
		return INFO
	case "warn":
		return WARN
	case "error":
		return ERROR
	default:
		return INFO
	}
}
