// Package logger provides logging functionality for the twig application.
package logger

import (
	"os"

	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
	"gopkg.in/natefinch/lumberjack.v2"
)

// Logger interface provides leveled logging capabilities.
type Logger interface {
	// Debug logs a debug message with optional key-value pairs.
	Debug(msg string, keysAndValues ...interface{})

	// Info logs an informational message with optional key-value pairs.
	Info(msg string, keysAndValues ...interface{})

	// Warn logs a warning message with optional key-value pairs.
	Warn(msg string, keysAndValues ...interface{})

	// Error logs an error message with optional key-value pairs.
	Error(msg string, keysAndValues ...interface{})
}

// noopLogger is a logger that does nothing.
type noopLogger struct{}

// NewNoopLogger creates a new noop logger.
func NewNoopLogger() Logger {
	return &noopLogger{}
}

// Debug does nothing for noop logger.
func (n *noopLogger) Debug(_ string, _ ...interface{}) {}

// Info does nothing for noop logger.
func (n *noopLogger) Info(_ string, _ ...interface{}) {}

// Warn does nothing for noop logger.
func (n *noopLogger) Warn(_ string, _ ...interface{}) {}

// Error does nothing for noop logger.
func (n *noopLogger) Error(_ string, _ ...interface{}) {}

// zapLogger wraps a zap sugared logger.
type zapLogger struct {
	sugar *zap.SugaredLogger
}

// Options configures the default logger.
type Options struct {
	// Verbose enables debug-level output.
	Verbose bool

	// FilePath, when non-empty, duplicates output to a rotating log file.
	FilePath string

	// MaxSizeMB is the max log file size in MB before rotation (default 10).
	MaxSizeMB int

	// MaxBackups is the number of rotated files to keep (default 3).
	MaxBackups int
}

// NewDefaultLogger creates a zap-backed logger writing to stderr,
// optionally duplicated to a rotating file.
func NewDefaultLogger(opts Options) Logger {
	level := zapcore.InfoLevel
	if opts.Verbose {
		level = zapcore.DebugLevel
	}

	encoderCfg := zap.NewDevelopmentEncoderConfig()
	encoder := zapcore.NewConsoleEncoder(encoderCfg)

	cores := []zapcore.Core{
		zapcore.NewCore(encoder, zapcore.Lock(os.Stderr), level),
	}

	if opts.FilePath != "" {
		maxSize := opts.MaxSizeMB
		if maxSize == 0 {
			maxSize = 10
		}
		maxBackups := opts.MaxBackups
		if maxBackups == 0 {
			maxBackups = 3
		}
		fileSyncer := zapcore.AddSync(&lumberjack.Logger{
			Filename:   opts.FilePath,
			MaxSize:    maxSize,
			MaxBackups: maxBackups,
		})
		fileEncoder := zapcore.NewJSONEncoder(zap.NewProductionEncoderConfig())
		cores = append(cores, zapcore.NewCore(fileEncoder, fileSyncer, level))
	}

	core := zapcore.NewTee(cores...)
	return &zapLogger{sugar: zap.New(core).Sugar()}
}

// Debug logs a debug message.
func (z *zapLogger) Debug(msg string, keysAndValues ...interface{}) {
	z.sugar.Debugw(msg, keysAndValues...)
}

// Info logs an informational message.
func (z *zapLogger) Info(msg string, keysAndValues ...interface{}) {
	z.sugar.Infow(msg, keysAndValues...)
}

// Warn logs a warning message.
func (z *zapLogger) Warn(msg string, keysAndValues ...interface{}) {
	z.sugar.Warnw(msg, keysAndValues...)
}

// Error logs an error message.
func (z *zapLogger) Error(msg string, keysAndValues ...interface{}) {
	z.sugar.Errorw(msg, keysAndValues...)
}
