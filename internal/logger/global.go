package logger

import (
	"context"
	"log/slog"
	"time"
)

// LogRequest logs a finished HTTP request
func LogRequest(level slog.Level, msg string, attrs ...any) {
	baseAttrs := []any{slog.String("type", "http")}
	slog.Log(context.Background(), level, msg, append(baseAttrs, attrs...)...)
}

// LogQuery logs database operations
func LogQuery(operation, query string, duration time.Duration, rowsAffected int64, err error) {
	attrs := []any{
		slog.String("type", "db"),
		slog.String("operation", operation),
		slog.Duration("took", duration),
	}

	if err != nil {
		slog.Error("Query failed", append(attrs,
			slog.String("query", query),
			slog.Any("error", err),
		)...)
		return
	}

	slog.Debug("Query executed", append(attrs,
		slog.String("query", query),
		slog.Int64("affected_rows", rowsAffected),
	)...)
}

// LogSystem logs system events
func LogSystem(msg string, attrs ...any) {
	baseAttrs := []any{slog.String("type", "sys")}
	slog.Info(msg, append(baseAttrs, attrs...)...)
}

// LogError logs error events
func LogError(msg string, err error, attrs ...any) {
	baseAttrs := []any{
		slog.String("type", "error"),
		slog.Any("error", err),
	}
	slog.Error(msg, append(baseAttrs, attrs...)...)
}
