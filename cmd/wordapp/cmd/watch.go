package cmd

import (
	"fmt"
	"time"

	"github.com/povarna/generative-ai-agents/word-agent/internal/watch"
	"github.com/spf13/cobra"
)

func newWatchCmd() *cobra.Command {
	var (
		asJSON   bool
		debounce time.Duration
	)

	cmd := &cobra.Command{
		Use:   "watch FILE",
		Short: "Re-analyze every word in FILE whenever it changes",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := cmd.Context()
			out := cmd.OutOrStdout()
			path := args[0]

			report := func(path string) {
				results, err := watch.AnalyzeFile(ctx, path, deps.Analyzer, deps.Logger)
				if err != nil {
					deps.Logger.Error().Err(err).Str("file", path).Msg("Failed to analyze file")
					return
				}
				fmt.Fprintf(out, "== %s (%d words)\n", path, len(results))
				for _, result := range results {
					_ = printResult(out, result, asJSON)
				}
			}

			report(path)

			w, err := watch.NewWatcher(debounce, deps.Logger)
			if err != nil {
				return err
			}
			defer w.Stop()

			if err := w.Watch(path, report); err != nil {
				return err
			}

			<-ctx.Done()
			return nil
		},
	}

	cmd.Flags().BoolVar(&asJSON, "json", false, "Print one JSON result per line")
	cmd.Flags().DurationVar(&debounce, "debounce", watch.DefaultDebounce, "Quiet period before re-analyzing")
	return cmd
}
