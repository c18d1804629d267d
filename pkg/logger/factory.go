package logger

import (
	"fmt"
	"io"
	"log/slog"
	"os"
	"strings"
)

// Format represents logger output format.
type Format string

const (
	FormatJSON Format = "json"
	FormatText Format = "text"
)

// Option configures logger creation.
type Option func(*config)

// WithLevelName sets the level from its name ("debug", "info", "warn", "error").
// Unknown names leave the level unchanged.
func WithLevelName(name string) Option {
	return func(c *config) {
		if name == "" {
			return
		}
		var l slog.Level
		if err := l.UnmarshalText([]byte(strings.ToUpper(name))); err == nil {
			c.level = l
		}
	}
}

// WithFormat sets output format. Panics on unknown formats: misconfiguration
// should stop the program at startup.
func WithFormat(f Format) Option {
	return func(c *config) {
		switch f {
		case FormatJSON, FormatText:
			c.format = f
		default:
			panic(fmt.Errorf("invalid log format %q: must be %q or %q", f, FormatJSON, FormatText))
		}
	}
}

// WithOutput sets the destination. Nil writers are ignored.
func WithOutput(w io.Writer) Option {
	return func(c *config) {
		if w != nil {
			c.output = w
		}
	}
}

// WithAttr adds static attributes to every record.
func WithAttr(attrs ...slog.Attr) Option {
	return func(c *config) {
		c.attrs = append(c.attrs, attrs...)
	}
}

// WithContextExtractors registers functions that add attributes from context.
// Nil extractors are skipped.
func WithContextExtractors(extractors ...ContextExtractor) Option {
	return func(c *config) {
		for _, ex := range extractors {
			if ex != nil {
				c.extractors = append(c.extractors, ex)
			}
		}
	}
}

// WithEnvironment applies per-environment defaults: debug level and text output
// in development, info level and JSON elsewhere. Service and env are attached
// as attributes when service is non-empty.
func WithEnvironment(env, service string) Option {
	return func(c *config) {
		e := ParseEnvironment(env)
		switch e {
		case Development:
			c.level = slog.LevelDebug
			c.format = FormatText
		default:
			c.level = slog.LevelInfo
			c.format = FormatJSON
		}
		if service != "" {
			c.attrs = append(c.attrs,
				slog.String("service", service),
				slog.String("env", string(e)),
			)
		}
	}
}

// SetAsDefault installs l as the slog default logger.
func SetAsDefault(l *slog.Logger) {
	slog.SetDefault(l)
}

type config struct {
	level      slog.Level
	format     Format
	output     io.Writer
	attrs      []slog.Attr
	extractors []ContextExtractor
}

func defaultConfig() *config {
	return &config{
		level:  slog.LevelInfo,
		format: FormatJSON,
		output: os.Stderr,
	}
}

// New creates a configured slog.Logger. Without options it writes JSON at
// info level to stderr, keeping stdout free for command output.
func New(opts ...Option) *slog.Logger {
	cfg := defaultConfig()
	for _, opt := range opts {
		opt(cfg)
	}

	handlerOpts := &slog.HandlerOptions{Level: cfg.level}

	var handler slog.Handler
	if cfg.format == FormatText {
		handler = slog.NewTextHandler(cfg.output, handlerOpts)
	} else {
		handler = slog.NewJSONHandler(cfg.output, handlerOpts)
	}

	if len(cfg.attrs) > 0 {
		handler = handler.WithAttrs(cfg.attrs)
	}

	return slog.New(NewContextHandler(handler, cfg.extractors...))
}

// Discard returns a logger that drops every record.
func Discard() *slog.Logger {
	return slog.New(slog.DiscardHandler)
}
