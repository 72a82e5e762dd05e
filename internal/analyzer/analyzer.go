package analyzer

//go:generate mockgen -source=analyzer.go -destination=mocks/mock_analyzer.go -package=mocks

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/povarna/generative-ai-agents/word-agent/internal/models"
	"github.com/povarna/generative-ai-agents/word-agent/internal/prechecks"
	"github.com/povarna/generative-ai-agents/word-agent/internal/scanner"
	"github.com/rs/zerolog"
)

var (
	ErrInvalidWord     = errors.New("invalid word")
	ErrHistoryDisabled = errors.New("history store is not configured")
)

// PrecheckRunner validates a request before it is scanned
type PrecheckRunner interface {
	Run(request models.WordRequest) []models.StageResult
}

// Cache stores results keyed by word
type Cache interface {
	Get(ctx context.Context, word string) (*models.AnalysisResult, bool, error)
	Set(ctx context.Context, result models.AnalysisResult) error
}

// HistoryStore keeps a log of past analyses, most recent first
type HistoryStore interface {
	Record(ctx context.Context, result models.AnalysisResult) error
	Recent(ctx context.Context, limit int) ([]models.AnalysisResult, error)
}

type Analyzer struct {
	prechecks PrecheckRunner
	cache     Cache
	history   HistoryStore
	logger    *zerolog.Logger
}

// NewAnalyzer wires the analyzer. cache and history may be nil.
func NewAnalyzer(
	prechecks PrecheckRunner,
	cache Cache,
	history HistoryStore,
	logger *zerolog.Logger,
) *Analyzer {
	return &Analyzer{
		prechecks: prechecks,
		cache:     cache,
		history:   history,
		logger:    logger,
	}
}

func (a *Analyzer) Analyze(ctx context.Context, request models.WordRequest) (models.AnalysisResult, error) {
	now := time.Now()

	result := models.AnalysisResult{
		ID:   request.EventID,
		Word: request.Word,
	}

	if a.prechecks != nil {
		if failures := prechecks.Failures(a.prechecks.Run(request)); len(failures) > 0 {
			err := fmt.Errorf("%w: %s", ErrInvalidWord, prechecks.Reasons(failures))
			result.Error = err.Error()
			result.Duration = time.Since(now)
			result.AnalyzedAt = time.Now()
			a.logger.Warn().
				Str("id", request.EventID).
				Int("failed_checks", len(failures)).
				Msg("word rejected by prechecks")
			return result, err
		}
	}

	if cached, ok := a.lookup(ctx, request.Word); ok {
		result.Length = cached.Length
		result.Start = cached.Start
		result.End = cached.End
		result.Substring = cached.Substring
		result.Cached = true
	} else {
		span := scanner.LongestUniqueSpan(request.Word)
		result.Length = span.Len()
		result.Start = span.Start
		result.End = span.End
		result.Substring = scanner.Substring(request.Word, span)
	}

	result.Duration = time.Since(now)
	result.AnalyzedAt = time.Now()

	if !result.Cached && a.cache != nil {
		if err := a.cache.Set(ctx, result); err != nil {
			a.logger.Warn().Err(err).Str("id", request.EventID).Msg("failed to cache result")
		}
	}

	if a.history != nil {
		if err := a.history.Record(ctx, result); err != nil {
			a.logger.Warn().Err(err).Str("id", request.EventID).Msg("failed to record history")
		}
	}

	a.logger.Debug().
		Str("id", result.ID).
		Int("length", result.Length).
		Bool("cached", result.Cached).
		Dur("duration", result.Duration).
		Msg("analysis complete")

	return result, nil
}

// AnalyzeMany analyzes every request in order. Per-word failures are
// reported in the Error field of the matching result.
func (a *Analyzer) AnalyzeMany(ctx context.Context, requests []models.WordRequest) []models.AnalysisResult {
	results := make([]models.AnalysisResult, 0, len(requests))
	for _, request := range requests {
		if err := ctx.Err(); err != nil {
			results = append(results, models.AnalysisResult{
				ID:    request.EventID,
				Word:  request.Word,
				Error: err.Error(),
			})
			continue
		}

		result, _ := a.Analyze(ctx, request)
		results = append(results, result)
	}
	return results
}

func (a *Analyzer) History(ctx context.Context, limit int) ([]models.AnalysisResult, error) {
	if a.history == nil {
		return nil, ErrHistoryDisabled
	}
	return a.history.Recent(ctx, limit)
}

func (a *Analyzer) lookup(ctx context.Context, word string) (*models.AnalysisResult, bool) {
	if a.cache == nil {
		return nil, false
	}

	cached, ok, err := a.cache.Get(ctx, word)
	if err != nil {
		a.logger.Warn().Err(err).Msg("cache lookup failed")
		return nil, false
	}
	if !ok || cached == nil {
		return nil, false
	}
	return cached, true
}
