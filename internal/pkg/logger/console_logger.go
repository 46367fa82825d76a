package logger

import (
	"io"
	"log/slog"
	"os"
)

// ConsoleLogger is an implementation of Logger that logs human readable lines to stdout.
type ConsoleLogger struct {
	slogLogger
}

// NewConsoleLogger creates a new console logger with the specified log level.
func NewConsoleLogger(level string) Logger {
	return newConsoleLogger(os.Stdout, level)
}

func newConsoleLogger(w io.Writer, level string) *ConsoleLogger {
	return &ConsoleLogger{slogLogger{logger: slog.New(slog.NewTextHandler(w, handlerOptions(level)))}}
}

// With returns a console logger that adds args to every line.
func (l *ConsoleLogger) With(args ...interface{}) Logger {
	return &ConsoleLogger{slogLogger{logger: l.logger.With(args...)}}
}

// Fatal logs a critical message and exits.
func (l *ConsoleLogger) Fatal(args ...interface{}) {
	l.critical(formatArgs(args...))
	os.Exit(1)
}

// Panic logs a critical message and panics.
func (l *ConsoleLogger) Panic(args ...interface{}) {
	msg := formatArgs(args...)
	l.critical(msg)
	panic(msg)
}
