// Package log provides evq's structured logging facade.
//
// # Overview
//
// The package exposes a small Logger interface with leveled methods and a
// Field type for structured context. Internally it is backed by the
// standard library's slog via a bridge handler that routes records through
// the formatter/output pipeline, so output stays consistent whether code
// logs through this facade or through an slog.Logger derived from it.
//
// Quick start
//
//	l := log.NewLogger(
//	    log.WithLevel(log.InfoLevel),
//	    log.WithFormatter(&log.TextFormatter{}),
//	    log.WithOutput(log.NewConsoleOutput()),
//	)
//	l = l.With(log.Component("bench"))
//	l.Info("run complete", log.Str("case", "cleanup"), log.Int("iters", 10000))
//
// File output rotates via lumberjack; use NewFileOutput for long-running
// processes that should not grow a single log file forever.
package log
