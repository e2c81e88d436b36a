// Package log is a thin leveled wrapper over log/slog shared by the
// shareable tools.
package log

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"os"
)

// Logger writes leveled key/value messages through a slog text handler.
// The first argument of every method is an optional tag naming the
// component; fmt.Stringer tags are rendered through String.
type Logger struct {
	slog  *slog.Logger
	level Level
}

// New creates a logger writing to w at LevelInfo.
func New(w io.Writer) *Logger {
	return &Logger{
		slog: slog.New(slog.NewTextHandler(w, &slog.HandlerOptions{
			Level:       slog.Level(LevelDebug),
			ReplaceAttr: replaceAttr,
		})),
		level: LevelInfo,
	}
}

// SetLevel sets the logging level and returns the previous level.
func (l *Logger) SetLevel(level Level) (prev Level) {
	prev = l.level
	l.level = level
	return
}

// Level returns the current logging level.
func (l *Logger) Level() Level {
	return l.level
}

func (l *Logger) log(tag any, msg string, level Level, v ...any) {
	if l.level > level {
		return
	}

	if tag != nil {
		if s, ok := tag.(fmt.Stringer); ok {
			tag = s.String()
		}
		v = append([]any{"tag", tag}, v...)
	}

	l.slog.Log(context.Background(), slog.Level(level), msg, v...)

	if level >= LevelFatal {
		os.Exit(1)
	}
}

// Debug level message.
func (l *Logger) Debug(tag any, msg string, v ...any) {
	l.log(tag, msg, LevelDebug, v...)
}

// Info level message.
func (l *Logger) Info(tag any, msg string, v ...any) {
	l.log(tag, msg, LevelInfo, v...)
}

// Warn level message.
func (l *Logger) Warn(tag any, msg string, v ...any) {
	l.log(tag, msg, LevelWarn, v...)
}

// Error level message.
func (l *Logger) Error(tag any, msg string, v ...any) {
	l.log(tag, msg, LevelError, v...)
}

// Fatal level message, followed by an exit.
func (l *Logger) Fatal(tag any, msg string, v ...any) {
	l.log(tag, msg, LevelFatal, v...)
}

func replaceAttr(groups []string, a slog.Attr) slog.Attr {
	if a.Key == slog.LevelKey {
		a.Value = slog.StringValue(Level(a.Value.Any().(slog.Level)).String())
	}
	return a
}
