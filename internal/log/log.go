// Package log wraps a logrus logger shared by the editor, preview session,
// server and CLI binaries.
package log

import (
	"io"

	"github.com/sirupsen/logrus"
)

type Level logrus.Level

const (
	ErrorLevel = Level(logrus.ErrorLevel)
	WarnLevel  = Level(logrus.WarnLevel)
	InfoLevel  = Level(logrus.InfoLevel)
	DebugLevel = Level(logrus.DebugLevel)
	TraceLevel = Level(logrus.TraceLevel)
)

// Fields is an alias for structured log fields.
type Fields = logrus.Fields

// Logger is the leveled logging surface components depend on. Both
// *logrus.Logger and *logrus.Entry satisfy it.
type Logger interface {
	Debugf(format string, args ...any)
	Infof(format string, args ...any)
	Warnf(format string, args ...any)
	Errorf(format string, args ...any)
}

var std = New(nil)

// New builds a logrus logger with the project's text formatter. A nil writer
// keeps logrus' default (stderr).
func New(out io.Writer) *logrus.Logger {
	logger := logrus.New()
	logger.Formatter = &logrus.TextFormatter{
		DisableLevelTruncation: true,
		PadLevelText:           true,
		TimestampFormat:        "2006/01/02 15:04:05",
		FullTimestamp:          true,
	}
	if out != nil {
		logger.SetOutput(out)
	}
	return logger
}

// Default returns the package logger.
func Default() *logrus.Logger {
	return std
}

// Nop returns a logger that discards everything.
func Nop() Logger {
	logger := logrus.New()
	logger.SetOutput(io.Discard)
	return logger
}

// SetLevel changes the package logger level.
func SetLevel(level Level) {
	std.SetLevel(logrus.Level(level))
}

// WithFields returns an entry of the package logger carrying fields.
func WithFields(fields Fields) *logrus.Entry {
	return std.WithFields(fields)
}

func Debugf(format string, args ...any) {
	std.Debugf(format, args...)
}

func Infof(format string, args ...any) {
	std.Infof(format, args...)
}

func Warnf(format string, args ...any) {
	std.Warnf(format, args...)
}

func Errorf(format string, args ...any) {
	std.Errorf(format, args...)
}

func Fatalf(format string, args ...any) {
	std.Fatalf(format, args...)
}
