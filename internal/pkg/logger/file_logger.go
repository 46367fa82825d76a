package logger

import (
	"log/slog"
	"os"

	"github.com/natefinch/lumberjack"
)

// FileLogger is an implementation of Logger that writes JSON lines to a rotated file.
type FileLogger struct {
	slogLogger
	writer *lumberjack.Logger
}

// NewFileLogger creates a new file logger with rotation settings.
func NewFileLogger(level string, filePath string, maxSize int, maxBackups int, maxAge int) Logger {
	writer := &lumberjack.Logger{
		Filename:   filePath,
		MaxSize:    maxSize,
		MaxBackups: maxBackups,
		MaxAge:     maxAge,
		Compress:   true,
	}

	return &FileLogger{
		slogLogger: slogLogger{logger: slog.New(slog.NewJSONHandler(writer, handlerOptions(level)))},
		writer:     writer,
	}
}

// With returns a file logger that adds args to every record. The returned
// logger shares the rotated file.
func (l *FileLogger) With(args ...interface{}) Logger {
	return &FileLogger{slogLogger: slogLogger{logger: l.logger.With(args...)}, writer: l.writer}
}

// Fatal logs a critical message, flushes the log file and exits.
func (l *FileLogger) Fatal(args ...interface{}) {
	l.critical(formatArgs(args...))
	_ = l.writer.Close()
	os.Exit(1)
}

// Panic logs a critical message and panics.
func (l *FileLogger) Panic(args ...interface{}) {
	msg := formatArgs(args...)
	l.critical(msg)
	panic(msg)
}
