package batch

import (
	"encoding/json"
	"fmt"
	"io"

	"github.com/povarna/generative-ai-agents/word-agent/internal/aggregator"
	"github.com/povarna/generative-ai-agents/word-agent/internal/models"
	"github.com/rs/zerolog"
)

const (
	FormatJSONL   = "jsonl"
	FormatSummary = "summary"
)

// Writer emits one JSON line per result, or, in summary format, a single
// aggregated document when closed.
type Writer struct {
	output  io.Writer
	format  string
	encoder *json.Encoder
	results []models.AnalysisResult
	agg     *aggregator.Aggregator
	logger  *zerolog.Logger
}

func NewWriter(output io.Writer, format string, logger *zerolog.Logger) (*Writer, error) {
	if format != FormatJSONL && format != FormatSummary {
		return nil, fmt.Errorf("unsupported format: %s", format)
	}

	return &Writer{
		output:  output,
		format:  format,
		encoder: json.NewEncoder(output),
		agg:     aggregator.NewAggregator(logger),
		logger:  logger,
	}, nil
}

func (w *Writer) Write(result models.AnalysisResult) error {
	w.results = append(w.results, result)

	if w.format == FormatSummary {
		return nil
	}
	return w.encoder.Encode(result)
}

// Summary aggregates everything written so far.
func (w *Writer) Summary() models.BatchSummary {
	return w.agg.Aggregate(w.results)
}

func (w *Writer) Close() error {
	if w.format != FormatSummary {
		return nil
	}
	return WriteSummary(w.output, w.Summary())
}

func WriteSummary(output io.Writer, summary models.BatchSummary) error {
	encoder := json.NewEncoder(output)
	encoder.SetIndent("", "  ")
	if err := encoder.Encode(summary); err != nil {
		return fmt.Errorf("failed to write summary: %w", err)
	}
	return nil
}
