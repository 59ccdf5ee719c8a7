// Package logger wraps log/slog with context plumbing. The TUI owns stdout,
// so the default logger discards everything; cmd wires a file-backed one when
// logging is requested.
package logger

import (
	"context"
	"io"
	"log/slog"
)

type Logger struct {
	*slog.Logger
}

func New(w io.Writer, level slog.Level) *Logger {
	log := slog.New(slog.NewTextHandler(w, &slog.HandlerOptions{
		Level: level,
	}))

	return &Logger{Logger: log}
}

func Discard() *Logger {
	return New(io.Discard, slog.LevelError)
}

type loggerContextKey string

const contextKeyValue loggerContextKey = "context-logger"

func NewContext(ctx context.Context, l *Logger) context.Context {
	return context.WithValue(ctx, contextKeyValue, l)
}

func FromContext(ctx context.Context) *Logger {
	if l := ctx.Value(contextKeyValue); l != nil {
		return l.(*Logger)
	}

	return Discard()
}
