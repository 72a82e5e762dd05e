package cmd

import (
	"bufio"
	"fmt"

	"github.com/povarna/generative-ai-agents/word-agent/internal/models"
	"github.com/spf13/cobra"
)

func newAnalyzeCmd() *cobra.Command {
	var asJSON bool

	cmd := &cobra.Command{
		Use:   "analyze [words...]",
		Short: "Analyze words given as arguments, or one per line on stdin",
		RunE: func(cmd *cobra.Command, args []string) error {
			words := args
			if len(words) == 0 {
				// Spaces are symbols too; only the line terminator is dropped.
				scanner := bufio.NewScanner(cmd.InOrStdin())
				for scanner.Scan() {
					if line := scanner.Text(); line != "" {
						words = append(words, line)
					}
				}
				if err := scanner.Err(); err != nil {
					return err
				}
			}

			failed := 0
			for i, word := range words {
				result, err := deps.Analyzer.Analyze(cmd.Context(), models.WordRequest{
					EventID: fmt.Sprintf("cli-%d", i+1),
					Word:    word,
					Source:  models.SourceCLI,
				})
				if err != nil {
					failed++
				}
				if err := printResult(cmd.OutOrStdout(), result, asJSON); err != nil {
					return err
				}
			}

			if failed > 0 {
				return fmt.Errorf("%d of %d words rejected", failed, len(words))
			}
			return nil
		},
	}

	cmd.Flags().BoolVar(&asJSON, "json", false, "Print one JSON result per line")
	return cmd
}
