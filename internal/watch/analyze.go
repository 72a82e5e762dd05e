package watch

import (
	"context"
	"fmt"
	"os"

	"github.com/povarna/generative-ai-agents/word-agent/internal/batch"
	"github.com/povarna/generative-ai-agents/word-agent/internal/models"
	"github.com/rs/zerolog"
)

// AnalyzeFile reads a word list in the batch input format and analyzes every
// word in file order. Unparseable lines come back as failed results.
func AnalyzeFile(ctx context.Context, path string, analyzer batch.Analyzer, logger *zerolog.Logger) ([]models.AnalysisResult, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("open word list: %w", err)
	}
	defer f.Close()

	var results []models.AnalysisResult
	for record := range batch.NewReader(f, logger).ReadAll(ctx) {
		if record.Error != nil {
			results = append(results, models.AnalysisResult{
				ID:    fmt.Sprintf("line-%d", record.LineNumber),
				Error: record.Error.Error(),
			})
			continue
		}

		result, _ := analyzer.Analyze(ctx, record.Request)
		results = append(results, result)
	}

	if err := ctx.Err(); err != nil {
		return results, err
	}
	return results, nil
}
