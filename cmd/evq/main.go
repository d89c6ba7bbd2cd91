package main

import (
	"os"

	benchcmd "github.com/rzbill/evq/internal/cmd/bench"
	democmd "github.com/rzbill/evq/internal/cmd/demo"
	logpkg "github.com/rzbill/evq/pkg/log"
	"github.com/spf13/cobra"
)

func main() {
	level, err := logpkg.ParseLevel(os.Getenv("EVQ_LOG_LEVEL"))
	if err != nil {
		level = logpkg.InfoLevel
	}

	var formatter logpkg.Formatter = &logpkg.TextFormatter{}
	if os.Getenv("EVQ_LOG_FORMAT") == "json" {
		formatter = &logpkg.JSONFormatter{}
	}

	outputs := []logpkg.LoggerOption{
		logpkg.WithLevel(level),
		logpkg.WithFormatter(formatter),
		logpkg.WithOutput(logpkg.NewConsoleOutput()),
	}
	if path := os.Getenv("EVQ_LOG_FILE"); path != "" {
		outputs = append(outputs, logpkg.WithOutput(logpkg.NewFileOutput(logpkg.FileOptions{
			Path:       path,
			MaxSizeMB:  50,
			MaxBackups: 3,
		})))
	}
	logger := logpkg.NewLogger(outputs...)

	rootCmd := &cobra.Command{
		Use:   "evq",
		Short: "evq event queue tools",
		Long:  "evq ships benchmark and demo drivers for the evq in-process event distribution primitives.",
	}
	rootCmd.AddCommand(benchcmd.NewCommand(logger))
	rootCmd.AddCommand(democmd.NewCommand(logger))

	if err := rootCmd.Execute(); err != nil {
		logger.Error("command failed", logpkg.Err(err))
		os.Exit(1)
	}
}
