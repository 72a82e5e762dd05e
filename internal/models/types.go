package models

import (
	"time"
)

type Source string

const (
	SourceAPI       Source = "api"
	SourceStream    Source = "stream"
	SourceBatch     Source = "batch"
	SourceCLI       Source = "cli"
	SourceMCP       Source = "mcp"
	SourceGenerator Source = "generator"
)

// Input message

type WordRequest struct {
	EventID string `json:"event_id" jsonschema:"unique event identifier"`
	Word    string `json:"word" jsonschema:"word to analyze"`
	Source  Source `json:"source,omitempty" jsonschema:"where the word came from"`
}

// AnalysisResult is the outcome of scanning one word. Start and End are rune
// offsets into Word; End is exclusive.
type AnalysisResult struct {
	ID         string        `json:"id"`
	Word       string        `json:"word"`
	Length     int           `json:"length"`
	Start      int           `json:"start"`
	End        int           `json:"end"`
	Substring  string        `json:"substring"`
	Cached     bool          `json:"cached"`
	Error      string        `json:"error,omitempty"`
	Duration   time.Duration `json:"duration_ns"`
	AnalyzedAt time.Time     `json:"analyzed_at"`
}

// Aggregated view over many results
type BatchSummary struct {
	Total        int         `json:"total"`
	Succeeded    int         `json:"succeeded"`
	Failed       int         `json:"failed"`
	MaxLength    int         `json:"max_length"`
	MeanLength   float64     `json:"mean_length"`
	LongestWord  string      `json:"longest_word"`
	Distribution map[int]int `json:"distribution"`
}

// One precheck's output
type StageResult struct {
	Name     string        `json:"name"`
	Passed   bool          `json:"passed"`
	Reason   string        `json:"reason"`
	Duration time.Duration `json:"duration_ns"`
}
