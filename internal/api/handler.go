package api

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"strconv"

	"github.com/emicklei/go-restful/v3"
	"github.com/povarna/generative-ai-agents/word-agent/internal/aggregator"
	"github.com/povarna/generative-ai-agents/word-agent/internal/analyzer"
	"github.com/povarna/generative-ai-agents/word-agent/internal/api/middleware"
	"github.com/povarna/generative-ai-agents/word-agent/internal/config"
	"github.com/povarna/generative-ai-agents/word-agent/internal/grouping"
	"github.com/povarna/generative-ai-agents/word-agent/internal/keypad"
	"github.com/povarna/generative-ai-agents/word-agent/internal/models"
	"github.com/povarna/generative-ai-agents/word-agent/internal/wordgen"
	"github.com/rs/zerolog"
)

const (
	defaultWordCount    = 10
	maxWordCount        = 100
	defaultHistoryLimit = 20
)

type WordAnalyzer interface {
	Analyze(ctx context.Context, request models.WordRequest) (models.AnalysisResult, error)
	AnalyzeMany(ctx context.Context, requests []models.WordRequest) []models.AnalysisResult
	History(ctx context.Context, limit int) ([]models.AnalysisResult, error)
}

type Handler struct {
	analyzer   WordAnalyzer
	generator  wordgen.Generator
	aggregator *aggregator.Aggregator
	logger     *zerolog.Logger
}

// NewHandler builds the HTTP handler. generator may be nil, in which case
// the generating endpoints answer 503.
func NewHandler(analyzer WordAnalyzer, generator wordgen.Generator, logger *zerolog.Logger) *Handler {
	return &Handler{
		analyzer:   analyzer,
		generator:  generator,
		aggregator: aggregator.NewAggregator(logger),
		logger:     logger,
	}
}

// POST /api/v1/analyze
func (h *Handler) Analyze(req *restful.Request, resp *restful.Response) {
	var wordRequest models.WordRequest
	if err := req.ReadEntity(&wordRequest); err != nil {
		h.logger.Error().Err(err).Msg("Failed to parse request body")
		middleware.HandleError(resp, err, http.StatusBadRequest)
		return
	}
	if wordRequest.Source == "" {
		wordRequest.Source = models.SourceAPI
	}

	result, err := h.analyzer.Analyze(req.Request.Context(), wordRequest)
	if err != nil {
		middleware.HandleError(resp, err, statusFor(err))
		return
	}

	h.logger.Info().
		Str("event_id", result.ID).
		Int("length", result.Length).
		Bool("cached", result.Cached).
		Msg("Analysis complete")

	resp.WriteHeaderAndEntity(http.StatusOK, result)
}

// POST /api/v1/analyze/batch
func (h *Handler) AnalyzeBatch(req *restful.Request, resp *restful.Response) {
	var batchRequest BatchRequest
	if err := req.ReadEntity(&batchRequest); err != nil {
		h.logger.Error().Err(err).Msg("Failed to parse request body")
		middleware.HandleError(resp, err, http.StatusBadRequest)
		return
	}
	if err := batchRequest.Validate(); err != nil {
		middleware.HandleError(resp, err, http.StatusBadRequest)
		return
	}

	requests := make([]models.WordRequest, len(batchRequest.Words))
	for i, word := range batchRequest.Words {
		requests[i] = models.WordRequest{
			EventID: fmt.Sprintf("batch-%d", i),
			Word:    word,
			Source:  models.SourceAPI,
		}
	}

	results := h.analyzer.AnalyzeMany(req.Request.Context(), requests)

	resp.WriteHeaderAndEntity(http.StatusOK, BatchResponse{
		Results: results,
		Summary: h.aggregator.Aggregate(results),
	})
}

// GET /api/v1/words?count=N
func (h *Handler) GenerateWords(req *restful.Request, resp *restful.Response) {
	if h.generator == nil {
		middleware.HandleError(resp, middleware.ErrGeneratorDisabled, http.StatusServiceUnavailable)
		return
	}

	count, err := positiveIntParam(req.QueryParameter("count"), defaultWordCount)
	if err != nil || count > maxWordCount {
		middleware.HandleError(resp, middleware.ErrInvalidCount, http.StatusBadRequest)
		return
	}

	words, err := h.generator.Generate(req.Request.Context(), count)
	if err != nil {
		middleware.HandleError(resp, err, statusFor(err))
		return
	}

	resp.WriteHeaderAndEntity(http.StatusOK, WordsResponse{Words: words})
}

// POST /api/v1/play generates one word and analyzes it.
func (h *Handler) Play(req *restful.Request, resp *restful.Response) {
	if h.generator == nil {
		middleware.HandleError(resp, middleware.ErrGeneratorDisabled, http.StatusServiceUnavailable)
		return
	}

	ctx := req.Request.Context()
	words, err := h.generator.Generate(ctx, 1)
	if err != nil {
		middleware.HandleError(resp, err, statusFor(err))
		return
	}
	if len(words) == 0 {
		middleware.HandleError(resp, wordgen.ErrNoWords, http.StatusBadGateway)
		return
	}

	result, err := h.analyzer.Analyze(ctx, models.WordRequest{
		EventID: "play",
		Word:    words[0],
		Source:  models.SourceGenerator,
	})
	if err != nil {
		middleware.HandleError(resp, err, statusFor(err))
		return
	}

	resp.WriteHeaderAndEntity(http.StatusOK, result)
}

// GET /api/v1/history?limit=N
func (h *Handler) History(req *restful.Request, resp *restful.Response) {
	limit, err := positiveIntParam(req.QueryParameter("limit"), defaultHistoryLimit)
	if err != nil {
		middleware.HandleError(resp, middleware.ErrInvalidLimit, http.StatusBadRequest)
		return
	}

	results, err := h.analyzer.History(req.Request.Context(), limit)
	if err != nil {
		middleware.HandleError(resp, err, statusFor(err))
		return
	}
	if results == nil {
		results = []models.AnalysisResult{}
	}

	resp.WriteHeaderAndEntity(http.StatusOK, HistoryResponse{Results: results})
}

// POST /api/v1/keypad
func (h *Handler) Keypad(req *restful.Request, resp *restful.Response) {
	var keypadRequest KeypadRequest
	if err := req.ReadEntity(&keypadRequest); err != nil {
		h.logger.Error().Err(err).Msg("Failed to parse request body")
		middleware.HandleError(resp, err, http.StatusBadRequest)
		return
	}

	combinations, err := keypad.Combinations(keypadRequest.Digits)
	if err != nil {
		middleware.HandleError(resp, err, statusFor(err))
		return
	}

	resp.WriteHeaderAndEntity(http.StatusOK, KeypadResponse{
		Digits:       keypadRequest.Digits,
		Combinations: combinations,
		Count:        len(combinations),
	})
}

// POST /api/v1/group
func (h *Handler) Group(req *restful.Request, resp *restful.Response) {
	var groupRequest GroupRequest
	if err := req.ReadEntity(&groupRequest); err != nil {
		h.logger.Error().Err(err).Msg("Failed to parse request body")
		middleware.HandleError(resp, err, http.StatusBadRequest)
		return
	}
	if err := groupRequest.Validate(); err != nil {
		middleware.HandleError(resp, err, http.StatusBadRequest)
		return
	}

	alphabet := groupRequest.Alphabet
	if alphabet == "" {
		alphabet = config.DefaultAlphabet
	}
	response := GroupResponse{Groups: grouping.ByFirstLetter(groupRequest.Names, alphabet)}

	if groupRequest.Letter != "" {
		letter, err := grouping.ParseLetter(groupRequest.Letter)
		if err != nil {
			middleware.HandleError(resp, err, statusFor(err))
			return
		}
		response.Letter = string(letter)
		response.Filtered = grouping.Filter(response.Groups, letter)
		if response.Filtered == nil {
			response.Filtered = []string{}
		}
	}

	resp.WriteHeaderAndEntity(http.StatusOK, response)
}

// Health handler GET API /api/v1/health
func (h *Handler) Health(req *restful.Request, resp *restful.Response) {
	resp.WriteHeaderAndEntity(http.StatusOK, HealthResponse{
		Status:  "ok",
		Version: "1.0.0",
	})
}

func statusFor(err error) int {
	switch {
	case errors.Is(err, analyzer.ErrInvalidWord):
		return http.StatusUnprocessableEntity
	case errors.Is(err, analyzer.ErrHistoryDisabled):
		return http.StatusServiceUnavailable
	case errors.Is(err, keypad.ErrNoDigits), errors.Is(err, keypad.ErrInvalidDigit), errors.Is(err, keypad.ErrTooManyDigits),
		errors.Is(err, grouping.ErrEmptyLetter), errors.Is(err, grouping.ErrDigitLetter):
		return http.StatusBadRequest
	case errors.Is(err, wordgen.ErrNoWords):
		return http.StatusBadGateway
	case errors.Is(err, context.Canceled), errors.Is(err, context.DeadlineExceeded):
		return http.StatusRequestTimeout
	default:
		return http.StatusInternalServerError
	}
}

func positiveIntParam(raw string, defaultValue int) (int, error) {
	if raw == "" {
		return defaultValue, nil
	}
	value, err := strconv.Atoi(raw)
	if err != nil {
		return 0, err
	}
	if value < 1 {
		return 0, fmt.Errorf("value %d is not positive", value)
	}
	return value, nil
}
