package logger

import (
	"io"
	"log/slog"
	"os"
	"strings"
)

// Options configures a logger. Output defaults to stdout. When LevelVar is
// set it is initialised from Level and gates the handler, so the level can be
// changed after construction.
type Options struct {
	Level       string
	LevelVar    *slog.LevelVar
	AddSource   bool
	Environment string
	Output      io.Writer
}

// New returns a logger writing text records in dev and staging and JSON
// records in prod, each tagged with the environment.
func New(lvl string, addSource bool, environment string) *slog.Logger {
	return NewWithOptions(Options{
		Level:       lvl,
		AddSource:   addSource,
		Environment: environment,
	})
}

func NewWithOptions(o Options) *slog.Logger {
	out := o.Output
	if out == nil {
		out = os.Stdout
	}

	var level slog.Leveler = ParseLevel(o.Level)
	if o.LevelVar != nil {
		o.LevelVar.Set(ParseLevel(o.Level))
		level = o.LevelVar
	}

	opts := &slog.HandlerOptions{
		Level:     level,
		AddSource: o.AddSource,
	}

	var handler slog.Handler
	if strings.ToLower(o.Environment) == "prod" {
		handler = slog.NewJSONHandler(out, opts)
	} else {
		handler = slog.NewTextHandler(out, opts)
	}

	return slog.New(handler).With(
		slog.String("environment", o.Environment),
	)
}

// Discard returns a logger that drops every record.
func Discard() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

// ParseLevel maps a level name to a slog level, defaulting to info.
func ParseLevel(level string) slog.Level {
	switch strings.ToLower(level) {
	case "debug":
		return slog.LevelDebug
	case "info":
		return slog.LevelInfo
	case "warn":
		return slog.LevelWarn
	case "error":
		return slog.LevelError
	default:
		return slog.LevelInfo
	}
}
