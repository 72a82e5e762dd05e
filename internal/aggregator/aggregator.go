package aggregator

import (
	"github.com/povarna/generative-ai-agents/word-agent/internal/models"
	"github.com/rs/zerolog"
)

type Aggregator struct {
	logger *zerolog.Logger
}

func NewAggregator(logger *zerolog.Logger) *Aggregator {
	return &Aggregator{
		logger: logger,
	}
}

// Aggregate summarizes a set of analysis results. Failed results count
// towards Total and Failed only; the longest word is the first one reaching
// the maximum length.
func (a *Aggregator) Aggregate(results []models.AnalysisResult) models.BatchSummary {
	summary := models.BatchSummary{
		Total:        len(results),
		Distribution: make(map[int]int),
	}

	lengthSum := 0
	for _, result := range results {
		if result.Error != "" {
			summary.Failed++
			continue
		}

		summary.Succeeded++
		lengthSum += result.Length
		summary.Distribution[result.Length]++

		if summary.Succeeded == 1 || result.Length > summary.MaxLength {
			summary.MaxLength = result.Length
			summary.LongestWord = result.Word
		}
	}

	if summary.Succeeded > 0 {
		summary.MeanLength = float64(lengthSum) / float64(summary.Succeeded)
	}

	a.logger.
		Info().
		Int("total", summary.Total).
		Int("failed", summary.Failed).
		Int("max_length", summary.MaxLength).
		Float64("mean_length", summary.MeanLength).
		Msg("aggregation complete")
	return summary
}
