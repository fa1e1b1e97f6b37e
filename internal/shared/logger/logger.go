package logger

import (
	"io"
	"log/slog"
	"os"
	"strings"
	"time"

	"github.com/lmittmann/tint"
	"golang.org/x/term"

	"walletpay/internal/shared/config"
)

var Logger *slog.Logger

// Init builds the process logger. When debug is set every level carries its
// source location; otherwise only warn and error do.
func Init(cfg *config.LoggerConfig, debug bool) error {
	var writer io.Writer
	switch strings.ToLower(cfg.OutputPath) {
	case "stdout", "":
		writer = os.Stdout
	case "stderr":
		writer = os.Stderr
	default:
		file, err := os.OpenFile(cfg.OutputPath, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0666)
		if err != nil {
			return err
		}
		writer = file
	}

	showSourceLevels := []slog.Level{slog.LevelWarn, slog.LevelError}
	if debug {
		showSourceLevels = []slog.Level{slog.LevelDebug, slog.LevelInfo, slog.LevelWarn, slog.LevelError}
	}

	Logger = slog.New(newHandler(writer, cfg.Format, ParseLevel(cfg.Level), showSourceLevels))
	slog.SetDefault(Logger)

	return nil
}

func newHandler(writer io.Writer, format string, level slog.Leveler, showSourceLevels []slog.Level) slog.Handler {
	if format == "json" {
		baseHandler := slog.NewJSONHandler(writer, &slog.HandlerOptions{
			Level:     level,
			AddSource: false,
		})
		return NewConditionalSourceHandler(baseHandler, showSourceLevels...)
	}

	baseHandler := tint.NewHandler(writer, &tint.Options{
		Level:       level,
		TimeFormat:  time.DateTime,
		AddSource:   false,
		NoColor:     !isTerminal(writer),
		ReplaceAttr: replaceErrorAttr,
	})
	return NewConditionalSourceHandler(baseHandler, showSourceLevels...)
}

func replaceErrorAttr(groups []string, a slog.Attr) slog.Attr {
	if a.Key == "error" && a.Value.Kind() == slog.KindAny {
		if err, ok := a.Value.Any().(error); ok {
			return tint.Err(err)
		}
	}
	return a
}

// ParseLevel maps a config level name to a slog level, defaulting to info.
func ParseLevel(level string) slog.Level {
	switch strings.ToLower(strings.TrimSpace(level)) {
	case "debug":
		return slog.LevelDebug
	case "warn", "warning":
		return slog.LevelWarn
	case "error":
		return slog.LevelError
	default:
		return slog.LevelInfo
	}
}

func isTerminal(w io.Writer) bool {
	if f, ok := w.(*os.File); ok {
		return term.IsTerminal(int(f.Fd()))
	}
	return false
}

func Get() *slog.Logger {
	if Logger == nil {
		Logger = slog.New(newHandler(os.Stdout, "console", slog.LevelInfo, []slog.Level{slog.LevelWarn, slog.LevelError}))
		slog.SetDefault(Logger)
	}
	return Logger
}

func Sync() error {
	return nil
}
