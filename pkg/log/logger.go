package log

import (
	"context"
	"errors"
	"log/slog"
)

// ErrUnknownLevel is returned by ParseLevel for unrecognized level names.
var ErrUnknownLevel = errors.New("log: unknown level")

// Logger is the logging interface used across evq commands and tools.
type Logger interface {
	Debug(msg string, fields ...Field)
	Info(msg string, fields ...Field)
	Warn(msg string, fields ...Field)
	Error(msg string, fields ...Field)

	// With returns a Logger that attaches fields to every entry.
	With(fields ...Field) Logger

	// WithComponent tags entries with a component name.
	WithComponent(component string) Logger

	SetLevel(level Level)
	GetLevel() Level
}

// LoggerOption configures a logger under construction.
type LoggerOption func(*core)

// core holds the pipeline shared by a logger and everything derived from
// it via With, so SetLevel applies to the whole family.
type core struct {
	level     Level
	formatter Formatter
	outputs   []Output
}

type baseLogger struct {
	core    *core
	slogger *slog.Logger
}

// NewLogger creates a logger with the given options. Without options it
// logs at InfoLevel, text-formatted, to the console.
func NewLogger(options ...LoggerOption) Logger {
	c := &core{level: InfoLevel, formatter: &TextFormatter{}}
	for _, opt := range options {
		opt(c)
	}
	if len(c.outputs) == 0 {
		c.outputs = append(c.outputs, NewConsoleOutput())
	}
	return &baseLogger{core: c, slogger: slog.New(&bridgeHandler{core: c})}
}

// WithLevel sets the minimum log level.
func WithLevel(level Level) LoggerOption {
	return func(c *core) { c.level = level }
}

// WithFormatter sets the entry formatter.
func WithFormatter(f Formatter) LoggerOption {
	return func(c *core) { c.formatter = f }
}

// WithOutput adds an output to the logger.
func WithOutput(o Output) LoggerOption {
	return func(c *core) { c.outputs = append(c.outputs, o) }
}

func (l *baseLogger) Debug(msg string, fields ...Field) { l.log(slog.LevelDebug, msg, fields) }
func (l *baseLogger) Info(msg string, fields ...Field)  { l.log(slog.LevelInfo, msg, fields) }
func (l *baseLogger) Warn(msg string, fields ...Field)  { l.log(slog.LevelWarn, msg, fields) }
func (l *baseLogger) Error(msg string, fields ...Field) { l.log(slog.LevelError, msg, fields) }

func (l *baseLogger) log(level slog.Level, msg string, fields []Field) {
	l.slogger.LogAttrs(context.Background(), level, msg, attrsFromFields(fields)...)
}

func (l *baseLogger) With(fields ...Field) Logger {
	return &baseLogger{
		core:    l.core,
		slogger: l.slogger.With(attrsToAny(attrsFromFields(fields))...),
	}
}

func (l *baseLogger) WithComponent(component string) Logger {
	return l.With(Component(component))
}

func (l *baseLogger) SetLevel(level Level) { l.core.level = level }
func (l *baseLogger) GetLevel() Level      { return l.core.level }

func attrsFromFields(fields []Field) []slog.Attr {
	if len(fields) == 0 {
		return nil
	}
	attrs := make([]slog.Attr, 0, len(fields))
	for _, f := range fields {
		attrs = append(attrs, slog.Any(f.Key, f.Value))
	}
	return attrs
}

func attrsToAny(attrs []slog.Attr) []any {
	if len(attrs) == 0 {
		return nil
	}
	out := make([]any, len(attrs))
	for i := range attrs {
		out[i] = attrs[i]
	}
	return out
}
