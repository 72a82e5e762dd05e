package mcpadapter

import (
	"context"
	"errors"
	"sort"
	"testing"

	"github.com/modelcontextprotocol/go-sdk/mcp"
	"github.com/povarna/generative-ai-agents/word-agent/internal/aggregator"
	"github.com/povarna/generative-ai-agents/word-agent/internal/analyzer"
	"github.com/povarna/generative-ai-agents/word-agent/internal/api/middleware"
	"github.com/povarna/generative-ai-agents/word-agent/internal/prechecks"
	"github.com/rs/zerolog"
)

type stubGenerator struct {
	requested int
}

func (s *stubGenerator) Generate(_ context.Context, n int) ([]string, error) {
	s.requested = n
	words := make([]string, n)
	for i := range words {
		words[i] = "abc"
	}
	return words, nil
}

func newTestLogger() *zerolog.Logger {
	logger := zerolog.Nop()
	return &logger
}

func newTestAnalyzer() *analyzer.Analyzer {
	runner := prechecks.NewStageRunner([]prechecks.Checker{prechecks.NewLengthChecker(10)})
	return analyzer.NewAnalyzer(runner, nil, nil, newTestLogger())
}

func TestAnalyzeHandler(t *testing.T) {
	handler := NewAnalyzeHandler(newTestAnalyzer())

	_, output, err := handler(context.Background(), nil, AnalyzeInput{EventID: "m1", Word: "dvdf"})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if output.ID != "m1" || output.Length != 3 || output.Substring != "vdf" {
		t.Errorf("unexpected output: %+v", output)
	}
}

func TestAnalyzeHandler_RejectedWord(t *testing.T) {
	handler := NewAnalyzeHandler(newTestAnalyzer())

	_, _, err := handler(context.Background(), nil, AnalyzeInput{Word: "abcdefghijkl"})
	if !errors.Is(err, analyzer.ErrInvalidWord) {
		t.Errorf("expected ErrInvalidWord, got %v", err)
	}
}

func TestAnalyzeManyHandler(t *testing.T) {
	handler := NewAnalyzeManyHandler(newTestAnalyzer(), aggregator.NewAggregator(newTestLogger()))

	_, output, err := handler(context.Background(), nil, AnalyzeManyInput{Words: []string{"abcabcbb", "tmmzuxt", "abcdefghijkl"}})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(output.Results) != 3 {
		t.Fatalf("expected 3 results, got %d", len(output.Results))
	}
	if output.Succeeded != 2 || output.Failed != 1 {
		t.Errorf("unexpected counts: %+v", output)
	}
	if output.MaxLength != 5 || output.LongestWord != "tmmzuxt" {
		t.Errorf("unexpected longest: %d %q", output.MaxLength, output.LongestWord)
	}

	if _, _, err := handler(context.Background(), nil, AnalyzeManyInput{}); !errors.Is(err, middleware.ErrEmptyBatch) {
		t.Errorf("expected ErrEmptyBatch, got %v", err)
	}
}

func TestGenerateHandler(t *testing.T) {
	generator := &stubGenerator{}
	handler := NewGenerateHandler(generator)

	_, output, err := handler(context.Background(), nil, GenerateInput{})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if generator.requested != defaultWordCount || len(output.Words) != defaultWordCount {
		t.Errorf("expected default count %d, got %d words", defaultWordCount, len(output.Words))
	}

	if _, _, err := handler(context.Background(), nil, GenerateInput{Count: 1000}); !errors.Is(err, middleware.ErrInvalidCount) {
		t.Errorf("expected ErrInvalidCount, got %v", err)
	}
}

func TestHistoryHandler_Disabled(t *testing.T) {
	handler := NewHistoryHandler(newTestAnalyzer())

	if _, _, err := handler(context.Background(), nil, HistoryInput{}); !errors.Is(err, analyzer.ErrHistoryDisabled) {
		t.Errorf("expected ErrHistoryDisabled, got %v", err)
	}
}

func TestNewServer_ListsTools(t *testing.T) {
	ctx := context.Background()
	server := NewServer(newTestAnalyzer(), &stubGenerator{}, "test", newTestLogger())

	serverTransport, clientTransport := mcp.NewInMemoryTransports()
	serverSession, err := server.Connect(ctx, serverTransport, nil)
	if err != nil {
		t.Fatalf("server connect: %v", err)
	}
	defer serverSession.Close()

	client := mcp.NewClient(&mcp.Implementation{Name: "test-client", Version: "test"}, nil)
	session, err := client.Connect(ctx, clientTransport, nil)
	if err != nil {
		t.Fatalf("client connect: %v", err)
	}
	defer session.Close()

	tools, err := session.ListTools(ctx, nil)
	if err != nil {
		t.Fatalf("list tools: %v", err)
	}

	var names []string
	for _, tool := range tools.Tools {
		names = append(names, tool.Name)
	}
	sort.Strings(names)

	want := []string{"analysis_history", "analyze_word", "analyze_words", "generate_words"}
	if len(names) != len(want) {
		t.Fatalf("expected tools %v, got %v", want, names)
	}
	for i := range want {
		if names[i] != want[i] {
			t.Errorf("tool %d = %s, want %s", i, names[i], want[i])
		}
	}
}
