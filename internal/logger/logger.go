package logger

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"os"
	"path/filepath"
	"runtime"
	"strings"
	"sync"
	"time"

	"github.com/ellavondegurechaff/recipe-store/internal/config"
)

const (
	colorReset  = "\033[0m"
	colorRed    = "\033[31m"
	colorGreen  = "\033[32m"
	colorYellow = "\033[33m"
	colorBlue   = "\033[34m"
	colorPurple = "\033[35m"
	colorCyan   = "\033[36m"
	colorWhite  = "\033[37m"
)

type LogType string

const (
	TypeHTTP   LogType = "HTTP"
	TypeDB     LogType = "DB"
	TypeSystem LogType = "SYS"
	TypeError  LogType = "ERR"
)

// New builds the process logger described by cfg.
func New(app string, cfg config.LogConfig, w io.Writer) *slog.Logger {
	opts := &slog.HandlerOptions{Level: cfg.Level, AddSource: cfg.AddSource}
	switch cfg.Format {
	case "json":
		return slog.New(slog.NewJSONHandler(w, opts))
	case "text":
		return slog.New(slog.NewTextHandler(w, opts))
	default:
		return slog.New(NewHandler(app, w, opts))
	}
}

// CustomHandler renders one colored line per record:
//
//	[app] [15:04:05] [INFO] [DB] message key=value ...
type CustomHandler struct {
	app    string
	opts   *slog.HandlerOptions
	out    io.Writer
	mu     *sync.Mutex
	attrs  []slog.Attr
	groups []string
}

func NewHandler(app string, w io.Writer, opts *slog.HandlerOptions) *CustomHandler {
	if w == nil {
		w = os.Stdout
	}
	if opts == nil {
		opts = &slog.HandlerOptions{Level: slog.LevelDebug}
	}
	return &CustomHandler{
		app:    app,
		opts:   opts,
		out:    w,
		mu:     &sync.Mutex{},
		attrs:  make([]slog.Attr, 0),
		groups: make([]string, 0),
	}
}

func (h *CustomHandler) Enabled(_ context.Context, level slog.Level) bool {
	minLevel := slog.LevelInfo
	if h.opts.Level != nil {
		minLevel = h.opts.Level.Level()
	}
	return level >= minLevel
}

func (h *CustomHandler) WithAttrs(attrs []slog.Attr) slog.Handler {
	prefixed := make([]slog.Attr, 0, len(attrs))
	for _, a := range attrs {
		prefixed = append(prefixed, h.qualify(a))
	}
	return &CustomHandler{
		app:    h.app,
		opts:   h.opts,
		out:    h.out,
		mu:     h.mu,
		attrs:  append(append([]slog.Attr{}, h.attrs...), prefixed...),
		groups: h.groups,
	}
}

func (h *CustomHandler) WithGroup(name string) slog.Handler {
	if name == "" {
		return h
	}
	return &CustomHandler{
		app:    h.app,
		opts:   h.opts,
		out:    h.out,
		mu:     h.mu,
		attrs:  h.attrs,
		groups: append(append([]string{}, h.groups...), name),
	}
}

func (h *CustomHandler) Handle(_ context.Context, r slog.Record) error {
	levelColor, levelText := levelStyle(r.Level)

	all := make([]slog.Attr, 0, len(h.attrs)+r.NumAttrs())
	all = append(all, h.attrs...)
	r.Attrs(func(a slog.Attr) bool {
		all = append(all, h.qualify(a))
		return true
	})

	logType := TypeSystem
	if r.Level >= slog.LevelError {
		logType = TypeError
	}
	var errorDetails string
	var b strings.Builder
	for _, a := range all {
		switch a.Key {
		case "type":
			logType = LogType(strings.ToUpper(a.Value.String()))
			continue
		case "error":
			errorDetails = a.Value.String()
			continue
		}
		fmt.Fprintf(&b, " %s=%v", a.Key, a.Value.Any())
	}

	message := r.Message
	if errorDetails != "" {
		message = fmt.Sprintf("%s: %s", message, errorDetails)
	}
	if h.opts.AddSource && r.PC != 0 {
		if file, line := sourceLocation(r.PC); file != "" {
			message = fmt.Sprintf("%s (%s:%d)", message, file, line)
		}
	}

	timestamp := r.Time
	if timestamp.IsZero() {
		timestamp = time.Now()
	}

	h.mu.Lock()
	defer h.mu.Unlock()
	_, err := fmt.Fprintf(h.out, "%s[%s] [%s] [%s%s%s] [%s%s%s] %s%s%s%s\n",
		colorWhite,
		h.app,
		timestamp.Format("15:04:05"),
		levelColor, levelText, colorWhite,
		typeColor(logType), logType, colorWhite,
		colorReset,
		message,
		colorCyan+b.String(),
		colorReset,
	)
	return err
}

func (h *CustomHandler) qualify(a slog.Attr) slog.Attr {
	if len(h.groups) == 0 {
		return a
	}
	a.Key = strings.Join(h.groups, ".") + "." + a.Key
	return a
}

func levelStyle(level slog.Level) (string, string) {
	switch {
	case level >= slog.LevelError:
		return colorRed, "ERROR"
	case level >= slog.LevelWarn:
		return colorYellow, "WARN"
	case level >= slog.LevelInfo:
		return colorGreen, "INFO"
	default:
		return colorPurple, "DEBUG"
	}
}

func typeColor(t LogType) string {
	switch t {
	case TypeDB:
		return colorBlue
	case TypeHTTP:
		return colorCyan
	case TypeError:
		return colorRed
	default:
		return colorPurple
	}
}

func sourceLocation(pc uintptr) (string, int) {
	frame, _ := runtime.CallersFrames([]uintptr{pc}).Next()
	if frame.File == "" {
		return "", 0
	}
	return filepath.Base(frame.File), frame.Line
}
