package logs

import (
	"context"
	"io"
	"log/slog"
	"os"
	"strings"

	"shiptrack/config"

	"github.com/pkg/errors"
	"go.uber.org/fx"
	"gopkg.in/natefinch/lumberjack.v2"
)

// Params defines the parameters required for the logger
type Params struct {
	fx.In

	Lifecycle fx.Lifecycle `optional:"true"`
	Config    *config.Config
}

// New creates and initializes slog.Logger. When a log file is configured the
// output is duplicated into a size-rotated file.
func New(params Params) (*slog.Logger, error) {
	cfg := params.Config.Env.Log

	level, err := parseLogLevel(cfg.Level)
	if err != nil {
		return nil, err
	}

	var out io.Writer = os.Stdout
	if cfg.File.Path != "" {
		rotator := newRotator(cfg.File)
		out = io.MultiWriter(os.Stdout, rotator)

		if params.Lifecycle != nil {
			params.Lifecycle.Append(fx.Hook{
				OnStop: func(context.Context) error {
					return rotator.Close()
				},
			})
		}
	}

	return newLogger(out, cfg.Pretty, level), nil
}

func newLogger(out io.Writer, pretty bool, level slog.Level) *slog.Logger {
	opts := &slog.HandlerOptions{Level: level}
	if pretty {
		return slog.New(slog.NewTextHandler(out, opts))
	}

	return slog.New(slog.NewJSONHandler(out, opts))
}

func newRotator(cfg config.LogFile) *lumberjack.Logger {
	return &lumberjack.Logger{
		Filename:   cfg.Path,
		MaxSize:    cfg.MaxSizeMB,
		MaxBackups: cfg.MaxBackups,
		MaxAge:     cfg.MaxAgeDays,
		Compress:   cfg.Compress,
	}
}

// parseLogLevel converts string log level to slog.Level. An empty level means info.
func parseLogLevel(level string) (slog.Level, error) {
	switch strings.ToLower(level) {
	case "debug":
		return slog.LevelDebug, nil
	case "info", "":
		return slog.LevelInfo, nil
	case "warn":
		return slog.LevelWarn, nil
	case "error":
		return slog.LevelError, nil
	default:
		return slog.LevelInfo, errors.Errorf("unknown log level: %s", level)
	}
}
