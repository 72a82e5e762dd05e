package cmd

import (
	"encoding/json"
	"fmt"
	"io"

	"github.com/povarna/generative-ai-agents/word-agent/internal/models"
)

// formatResult renders a result the way the game shows it: "word: N".
func formatResult(result models.AnalysisResult) string {
	if result.Error != "" {
		return fmt.Sprintf("%s: error: %s", result.Word, result.Error)
	}
	if result.Length == 0 {
		return fmt.Sprintf("%s: 0", result.Word)
	}
	return fmt.Sprintf("%s: %d (%s)", result.Word, result.Length, result.Substring)
}

func printResult(out io.Writer, result models.AnalysisResult, asJSON bool) error {
	if asJSON {
		return json.NewEncoder(out).Encode(result)
	}
	_, err := fmt.Fprintln(out, formatResult(result))
	return err
}

func printWords(out io.Writer, words []string) {
	for i, word := range words {
		fmt.Fprintf(out, "%2d) %s\n", i+1, word)
	}
}
