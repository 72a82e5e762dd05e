package stream

import (
	"context"

	"github.com/povarna/generative-ai-agents/word-agent/internal/models"
)

const (
	DefaultStream        = "word-events"
	DefaultResultsStream = "word-results"
	DefaultGroup         = "word-group"
)

type StreamConsumer interface {
	Setup(ctx context.Context) error
	Start(ctx context.Context) error
	Stop() error
}

// WordAnalyzer is the part of the analyzer a consumer drives.
type WordAnalyzer interface {
	Analyze(ctx context.Context, request models.WordRequest) (models.AnalysisResult, error)
}
