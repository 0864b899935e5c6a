package logger

import (
	"bytes"
	"errors"
	"log/slog"
	"strings"
	"testing"

	"github.com/ellavondegurechaff/recipe-store/internal/config"
)

func TestCustomHandler(t *testing.T) {
	tests := []struct {
		name     string
		log      func(l *slog.Logger)
		want     []string
		dontWant []string
	}{
		{
			name: "info with type",
			log: func(l *slog.Logger) {
				l.Info("Query executed", slog.String("type", "db"), slog.Int("rows", 3))
			},
			want:     []string{"[recipes]", "INFO", "DB", "Query executed", "rows=3"},
			dontWant: []string{"type="},
		},
		{
			name: "error details appended",
			log: func(l *slog.Logger) {
				l.Error("Commit failed", slog.Any("error", errors.New("boom")))
			},
			want: []string{"ERROR", "ERR", "Commit failed: boom"},
		},
		{
			name: "debug filtered",
			log: func(l *slog.Logger) {
				l.Debug("hidden")
			},
			dontWant: []string{"hidden"},
		},
		{
			name: "groups qualify keys",
			log: func(l *slog.Logger) {
				l.WithGroup("req").With(slog.String("id", "abc")).Info("handled")
			},
			want: []string{"req.id=abc"},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var buf bytes.Buffer
			l := New("recipes", config.LogConfig{Level: slog.LevelInfo, Format: "pretty"}, &buf)
			tt.log(l)

			out := buf.String()
			for _, w := range tt.want {
				if !strings.Contains(out, w) {
					t.Errorf("output %q does not contain %q", out, w)
				}
			}
			for _, w := range tt.dontWant {
				if strings.Contains(out, w) {
					t.Errorf("output %q unexpectedly contains %q", out, w)
				}
			}
		})
	}
}

func TestNewFormats(t *testing.T) {
	var buf bytes.Buffer
	l := New("recipes", config.LogConfig{Level: slog.LevelInfo, Format: "json"}, &buf)
	l.Info("started", slog.String("type", "sys"))

	if !strings.HasPrefix(buf.String(), "{") || !strings.Contains(buf.String(), `"msg":"started"`) {
		t.Errorf("json output = %q", buf.String())
	}
}
