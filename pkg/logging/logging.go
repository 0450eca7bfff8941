package logging

import (
	"io"
	"log/slog"
	"os"
	"strings"
	"time"

	"github.com/lmittmann/tint"
	"github.com/pkg/errors"
)

// ParseLevel maps a config string to a slog level.
func ParseLevel(level string) (result slog.Level, err error) {
	switch strings.ToLower(strings.TrimSpace(level)) {
	case "debug":
		result = slog.LevelDebug
	case "", "info":
		result = slog.LevelInfo
	case "warn", "warning":
		result = slog.LevelWarn
	case "error":
		result = slog.LevelError
	default:
		result = slog.LevelInfo
		err = errors.Errorf("unknown log level %q", level)
	}
	return result, err
}

// New returns a colorized logger writing to w.  Color is dropped when w is not a terminal.
func New(w io.Writer, level slog.Level) (logger *slog.Logger) {
	noColor := true
	if f, ok := w.(*os.File); ok {
		if info, err := f.Stat(); err == nil {
			noColor = info.Mode()&os.ModeCharDevice == 0
		}
	}

	logger = slog.New(tint.NewHandler(w, &tint.Options{
		Level:      level,
		TimeFormat: time.Kitchen,
		NoColor:    noColor,
	}))
	return logger
}

// Discard returns a logger that drops everything.
func Discard() (logger *slog.Logger) {
	logger = slog.New(slog.NewTextHandler(io.Discard, nil))
	return logger
}
