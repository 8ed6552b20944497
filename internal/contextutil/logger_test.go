package contextutil

import (
	"context"
	"io"
	"log/slog"
	"testing"
)

func TestLoggerFromContext(t *testing.T) {
	custom := slog.New(slog.NewTextHandler(io.Discard, nil))
	fallback := slog.New(slog.NewTextHandler(io.Discard, nil))

	tests := []struct {
		name string
		ctx  context.Context
		want *slog.Logger
	}{
		{name: "logger in context", ctx: WithLogger(context.Background(), custom), want: custom},
		{name: "no logger", ctx: context.Background(), want: fallback},
		{name: "nil context", ctx: nil, want: fallback},
		{name: "wrong type under key", ctx: context.WithValue(context.Background(), loggerKey, "logger"), want: fallback},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := LoggerFromContextOr(tt.ctx, fallback); got != tt.want {
				t.Errorf("LoggerFromContextOr() = %p, want %p", got, tt.want)
			}
		})
	}

	if LoggerFromContext(context.Background()) != slog.Default() {
		t.Error("LoggerFromContext() should fall back to slog.Default()")
	}
}
