package api

import (
	"github.com/povarna/generative-ai-agents/word-agent/internal/api/middleware"
	"github.com/povarna/generative-ai-agents/word-agent/internal/grouping"
	"github.com/povarna/generative-ai-agents/word-agent/internal/models"
)

const MaxBatchSize = 1000

type HealthResponse struct {
	Status  string `json:"status" description:"Service status"`
	Version string `json:"version" description:"API version"`
}

type BatchRequest struct {
	Words []string `json:"words" description:"Words to analyze, each becomes one result"`
}

type BatchResponse struct {
	Results []models.AnalysisResult `json:"results" description:"One result per word, in request order"`
	Summary models.BatchSummary     `json:"summary" description:"Aggregated view over the results"`
}

type WordsResponse struct {
	Words []string `json:"words" description:"Generated words"`
}

type HistoryResponse struct {
	Results []models.AnalysisResult `json:"results" description:"Past analyses, most recent first"`
}

type KeypadRequest struct {
	Digits string `json:"digits" description:"Keypad digits 2-9, at most 8"`
}

type KeypadResponse struct {
	Digits       string   `json:"digits" description:"Digits as requested"`
	Combinations []string `json:"combinations" description:"Letter combinations in keypad order"`
	Count        int      `json:"count" description:"Number of combinations"`
}

type GroupRequest struct {
	Names    []string `json:"names" description:"Names to bucket"`
	Letter   string   `json:"letter,omitempty" description:"Optional filter, only its first character counts"`
	Alphabet string   `json:"alphabet,omitempty" description:"Bucket order; defaults to a-z"`
}

type GroupResponse struct {
	Groups   []grouping.Group `json:"groups" description:"Non-empty buckets in alphabet order"`
	Letter   string           `json:"letter,omitempty" description:"Normalised filter letter"`
	Filtered []string         `json:"filtered,omitempty" description:"Names under the filter letter"`
}

func (g *GroupRequest) Validate() error {
	if len(g.Names) == 0 {
		return middleware.ErrNoNames
	}
	if len(g.Names) > MaxBatchSize {
		return middleware.ErrBatchTooLarge
	}
	return nil
}

func (b *BatchRequest) Validate() error {
	if len(b.Words) == 0 {
		return middleware.ErrEmptyBatch
	}
	if len(b.Words) > MaxBatchSize {
		return middleware.ErrBatchTooLarge
	}
	return nil
}
