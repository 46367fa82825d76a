package logger

import (
	"context"
	"log/slog"
)

// LevelCritical ranks above slog.LevelError and is used by Fatal and Panic.
const LevelCritical = slog.Level(12)

// slogLogger holds the level plumbing shared by the console and file loggers.
type slogLogger struct {
	logger *slog.Logger
}

func handlerOptions(level string) *slog.HandlerOptions {
	return &slog.HandlerOptions{
		Level:       parseLevel(level),
		ReplaceAttr: renameCritical,
	}
}

func renameCritical(_ []string, a slog.Attr) slog.Attr {
	if a.Key == slog.LevelKey {
		if lvl, ok := a.Value.Any().(slog.Level); ok && lvl >= LevelCritical {
			a.Value = slog.StringValue("CRITICAL")
		}
	}
	return a
}

func (l slogLogger) Debug(args ...interface{}) { l.logger.Debug(formatArgs(args...)) }
func (l slogLogger) Info(args ...interface{})  { l.logger.Info(formatArgs(args...)) }
func (l slogLogger) Warn(args ...interface{})  { l.logger.Warn(formatArgs(args...)) }
func (l slogLogger) Error(args ...interface{}) { l.logger.Error(formatArgs(args...)) }

func (l slogLogger) critical(msg string) {
	l.logger.Log(context.Background(), LevelCritical, msg)
}
