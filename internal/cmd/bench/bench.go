// Package bench provides the evq bench subcommand.
package bench

import (
	"fmt"

	"github.com/rzbill/evq/internal/scenario"
	"github.com/rzbill/evq/pkg/log"
	"github.com/spf13/cobra"
)

// NewCommand builds the bench command, which runs the configured
// scenario cases and reports per-operation timings through the logger.
func NewCommand(logger log.Logger) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "bench",
		Short: "Run scenario benchmarks against the evq primitives",
		RunE: func(cmd *cobra.Command, args []string) error {
			path, _ := cmd.Flags().GetString("scenario")
			iters, _ := cmd.Flags().GetInt("iterations")
			caseNames, _ := cmd.Flags().GetStringSlice("cases")

			cfg, err := scenario.Load(path)
			if err != nil {
				return fmt.Errorf("load scenario: %w", err)
			}
			scenario.FromEnv(&cfg)
			if iters > 0 {
				cfg.Iterations = iters
			}
			if len(caseNames) > 0 {
				cfg.Cases = caseNames
			}

			results, err := scenario.Run(cfg, logger.WithComponent("bench"))
			if err != nil {
				return err
			}
			for _, r := range results {
				fmt.Printf("%-16s %8d iters  %12s total  %10s/op\n",
					r.Case, r.Iterations, r.Elapsed, r.PerOp())
			}
			return nil
		},
	}
	cmd.Flags().String("scenario", "", "Scenario YAML file (defaults to built-in config)")
	cmd.Flags().Int("iterations", 0, "Override iteration count")
	cmd.Flags().StringSlice("cases", nil, fmt.Sprintf("Cases to run (default all: %v)", scenario.CaseNames()))
	return cmd
}
