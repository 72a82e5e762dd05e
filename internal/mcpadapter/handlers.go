package mcpadapter

import (
	"context"
	"fmt"

	"github.com/modelcontextprotocol/go-sdk/mcp"
	"github.com/povarna/generative-ai-agents/word-agent/internal/aggregator"
	"github.com/povarna/generative-ai-agents/word-agent/internal/api/middleware"
	"github.com/povarna/generative-ai-agents/word-agent/internal/models"
	"github.com/povarna/generative-ai-agents/word-agent/internal/wordgen"
)

const (
	defaultWordCount    = 5
	maxWordCount        = 100
	defaultHistoryLimit = 20
)

type WordAnalyzer interface {
	Analyze(ctx context.Context, request models.WordRequest) (models.AnalysisResult, error)
	AnalyzeMany(ctx context.Context, requests []models.WordRequest) []models.AnalysisResult
	History(ctx context.Context, limit int) ([]models.AnalysisResult, error)
}

// AnalyzeInput is the MCP tool input schema for a single word.
type AnalyzeInput struct {
	EventID string `json:"event_id,omitempty" jsonschema:"optional event identifier echoed in the result"`
	Word    string `json:"word" jsonschema:"word to analyze"`
}

// AnalyzeOutput is the outcome of one analysis. Offsets count characters.
type AnalyzeOutput struct {
	ID        string `json:"id,omitempty"`
	Word      string `json:"word"`
	Length    int    `json:"length" jsonschema:"length of the longest substring without repeating characters"`
	Start     int    `json:"start" jsonschema:"start offset of that substring"`
	End       int    `json:"end" jsonschema:"exclusive end offset of that substring"`
	Substring string `json:"substring"`
	Cached    bool   `json:"cached"`
	Error     string `json:"error,omitempty"`
}

type AnalyzeManyInput struct {
	Words []string `json:"words" jsonschema:"words to analyze"`
}

type AnalyzeManyOutput struct {
	Results     []AnalyzeOutput `json:"results"`
	Succeeded   int             `json:"succeeded"`
	Failed      int             `json:"failed"`
	MaxLength   int             `json:"max_length"`
	LongestWord string          `json:"longest_word"`
}

type GenerateInput struct {
	Count int `json:"count,omitempty" jsonschema:"number of words to generate (default: 5, max: 100)"`
}

type GenerateOutput struct {
	Words []string `json:"words"`
}

type HistoryInput struct {
	Limit int `json:"limit,omitempty" jsonschema:"maximum number of results (default: 20)"`
}

type HistoryOutput struct {
	Results []AnalyzeOutput `json:"results"`
}

// NewAnalyzeHandler returns a tool handler that uses the given analyzer.
// Pass the returned function to mcp.AddTool.
func NewAnalyzeHandler(analyzer WordAnalyzer) func(context.Context, *mcp.CallToolRequest, AnalyzeInput) (*mcp.CallToolResult, AnalyzeOutput, error) {
	return func(ctx context.Context, req *mcp.CallToolRequest, input AnalyzeInput) (*mcp.CallToolResult, AnalyzeOutput, error) {
		result, err := analyzer.Analyze(ctx, models.WordRequest{
			EventID: input.EventID,
			Word:    input.Word,
			Source:  models.SourceMCP,
		})
		if err != nil {
			return nil, AnalyzeOutput{}, err
		}
		return nil, toOutput(result), nil
	}
}

func NewAnalyzeManyHandler(analyzer WordAnalyzer, agg *aggregator.Aggregator) func(context.Context, *mcp.CallToolRequest, AnalyzeManyInput) (*mcp.CallToolResult, AnalyzeManyOutput, error) {
	return func(ctx context.Context, req *mcp.CallToolRequest, input AnalyzeManyInput) (*mcp.CallToolResult, AnalyzeManyOutput, error) {
		if len(input.Words) == 0 {
			return nil, AnalyzeManyOutput{}, middleware.ErrEmptyBatch
		}

		requests := make([]models.WordRequest, len(input.Words))
		for i, word := range input.Words {
			requests[i] = models.WordRequest{
				EventID: fmt.Sprintf("mcp-%d", i),
				Word:    word,
				Source:  models.SourceMCP,
			}
		}

		results := analyzer.AnalyzeMany(ctx, requests)
		summary := agg.Aggregate(results)

		return nil, AnalyzeManyOutput{
			Results:     toOutputs(results),
			Succeeded:   summary.Succeeded,
			Failed:      summary.Failed,
			MaxLength:   summary.MaxLength,
			LongestWord: summary.LongestWord,
		}, nil
	}
}

func NewGenerateHandler(generator wordgen.Generator) func(context.Context, *mcp.CallToolRequest, GenerateInput) (*mcp.CallToolResult, GenerateOutput, error) {
	return func(ctx context.Context, req *mcp.CallToolRequest, input GenerateInput) (*mcp.CallToolResult, GenerateOutput, error) {
		count := input.Count
		if count == 0 {
			count = defaultWordCount
		}
		if count < 0 || count > maxWordCount {
			return nil, GenerateOutput{}, middleware.ErrInvalidCount
		}

		words, err := generator.Generate(ctx, count)
		if err != nil {
			return nil, GenerateOutput{}, err
		}
		return nil, GenerateOutput{Words: words}, nil
	}
}

func NewHistoryHandler(analyzer WordAnalyzer) func(context.Context, *mcp.CallToolRequest, HistoryInput) (*mcp.CallToolResult, HistoryOutput, error) {
	return func(ctx context.Context, req *mcp.CallToolRequest, input HistoryInput) (*mcp.CallToolResult, HistoryOutput, error) {
		limit := input.Limit
		if limit <= 0 {
			limit = defaultHistoryLimit
		}

		results, err := analyzer.History(ctx, limit)
		if err != nil {
			return nil, HistoryOutput{}, err
		}
		return nil, HistoryOutput{Results: toOutputs(results)}, nil
	}
}

func toOutput(result models.AnalysisResult) AnalyzeOutput {
	return AnalyzeOutput{
		ID:        result.ID,
		Word:      result.Word,
		Length:    result.Length,
		Start:     result.Start,
		End:       result.End,
		Substring: result.Substring,
		Cached:    result.Cached,
		Error:     result.Error,
	}
}

func toOutputs(results []models.AnalysisResult) []AnalyzeOutput {
	outputs := make([]AnalyzeOutput, len(results))
	for i, result := range results {
		outputs[i] = toOutput(result)
	}
	return outputs
}
