package wordgen

import (
	"context"
	"errors"
	"strings"
	"testing"

	"github.com/povarna/generative-ai-agents/word-agent/internal/config"
	"github.com/povarna/generative-ai-agents/word-agent/internal/llm"
	"github.com/rs/zerolog"
)

func testGeneratorConfig() config.GeneratorConfig {
	cfg := config.Default().Generator
	cfg.Provider = config.ProviderLLM
	return cfg
}

func TestLLMGenerator_Success(t *testing.T) {
	logger := zerolog.Nop()
	mockClient := &MockLLMClient{
		ResponseToReturn: &llm.LLMResponse{
			Content:    `{"words": ["abcabcbb", "pwwkewxx", "tmmzuxt"]}`,
			StopReason: "end_turn",
		},
	}

	gen, err := NewLLMGenerator(testGeneratorConfig(), mockClient, &logger)
	if err != nil {
		t.Fatalf("NewLLMGenerator failed: %v", err)
	}

	words, err := gen.Generate(context.Background(), 3)
	if err != nil {
		t.Fatalf("Generate failed: %v", err)
	}

	if len(words) != 3 || words[0] != "abcabcbb" || words[2] != "tmmzuxt" {
		t.Errorf("unexpected words: %v", words)
	}
	if !strings.Contains(mockClient.LastRequest.Prompt, "Generate 3 random words") {
		t.Errorf("prompt not rendered: %q", mockClient.LastRequest.Prompt)
	}
	if mockClient.LastRequest.System == "" || mockClient.LastRequest.Prefill != "{" {
		t.Errorf("expected system prompt and JSON prefill, got %+v", mockClient.LastRequest)
	}
	if mockClient.LastRequest.MaxTokens != 256 {
		t.Errorf("expected max tokens 256, got %d", mockClient.LastRequest.MaxTokens)
	}
}

func TestLLMGenerator_StripsMarkdownAndFilters(t *testing.T) {
	logger := zerolog.Nop()
	mockClient := &MockLLMClient{
		ResponseToReturn: &llm.LLMResponse{
			Content: "```json\n{\"words\": [\"short\", \"UPPERCASE\", \"  goodword  \", \"waytoolongword\", \"another\"]}\n```",
		},
	}

	gen, _ := NewLLMGenerator(testGeneratorConfig(), mockClient, &logger)

	words, err := gen.Generate(context.Background(), 5)
	if err != nil {
		t.Fatalf("Generate failed: %v", err)
	}

	if len(words) != 2 || words[0] != "goodword" || words[1] != "another" {
		t.Errorf("expected [goodword another], got %v", words)
	}
}

func TestLLMGenerator_TruncatesToRequested(t *testing.T) {
	logger := zerolog.Nop()
	mockClient := &MockLLMClient{
		ResponseToReturn: &llm.LLMResponse{Content: `{"words": ["abcdefg", "bcdefgh", "cdefghi"]}`},
	}

	gen, _ := NewLLMGenerator(testGeneratorConfig(), mockClient, &logger)

	words, err := gen.Generate(context.Background(), 2)
	if err != nil {
		t.Fatalf("Generate failed: %v", err)
	}
	if len(words) != 2 {
		t.Errorf("expected 2 words, got %v", words)
	}
}

func TestLLMGenerator_Errors(t *testing.T) {
	logger := zerolog.Nop()

	tests := []struct {
		name    string
		client  *MockLLMClient
		wantErr error
		wantMsg string
	}{
		{
			name:    "llm failure",
			client:  &MockLLMClient{ErrorToReturn: errors.New("ThrottlingException")},
			wantMsg: "LLM call failed",
		},
		{
			name:    "not json",
			client:  &MockLLMClient{ResponseToReturn: &llm.LLMResponse{Content: "here are some words: apple"}},
			wantMsg: "failed to deserialize",
		},
		{
			name:    "nothing usable",
			client:  &MockLLMClient{ResponseToReturn: &llm.LLMResponse{Content: `{"words": ["ab", "123456"]}`}},
			wantErr: ErrNoWords,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			gen, _ := NewLLMGenerator(testGeneratorConfig(), tt.client, &logger)

			_, err := gen.Generate(context.Background(), 3)
			if err == nil {
				t.Fatal("expected error, got nil")
			}
			if tt.wantErr != nil && !errors.Is(err, tt.wantErr) {
				t.Errorf("expected %v, got %v", tt.wantErr, err)
			}
			if tt.wantMsg != "" && !strings.Contains(err.Error(), tt.wantMsg) {
				t.Errorf("expected error containing %q, got %v", tt.wantMsg, err)
			}
		})
	}
}

func TestLLMGenerator_RetryFlag(t *testing.T) {
	logger := zerolog.Nop()
	mockClient := &MockLLMClient{ResponseToReturn: &llm.LLMResponse{Content: `{"words": ["abcdefg"]}`}}

	cfg := testGeneratorConfig()
	cfg.LLM.Model.Retry = true
	gen, _ := NewLLMGenerator(cfg, mockClient, &logger)

	if _, err := gen.Generate(context.Background(), 1); err != nil {
		t.Fatalf("Generate failed: %v", err)
	}
	if !mockClient.UsedRetry {
		t.Error("expected InvokeModelWithRetry to be used")
	}
}

func TestNewLLMGenerator_InvalidTemplate(t *testing.T) {
	logger := zerolog.Nop()
	cfg := testGeneratorConfig()
	cfg.LLM.Prompt = "{{.Invalid"

	if _, err := NewLLMGenerator(cfg, &MockLLMClient{}, &logger); err == nil {
		t.Error("expected error for invalid template")
	}
}

func TestNewGenerator(t *testing.T) {
	logger := zerolog.Nop()

	gen, err := NewGenerator(config.Default().Generator, nil, &logger)
	if err != nil {
		t.Fatalf("random provider failed: %v", err)
	}
	if _, ok := gen.(*RandomGenerator); !ok {
		t.Errorf("expected *RandomGenerator, got %T", gen)
	}

	if _, err := NewGenerator(testGeneratorConfig(), nil, &logger); err == nil {
		t.Error("expected error for llm provider without client")
	}

	gen, err = NewGenerator(testGeneratorConfig(), &MockLLMClient{}, &logger)
	if err != nil {
		t.Fatalf("llm provider failed: %v", err)
	}
	if _, ok := gen.(*LLMGenerator); !ok {
		t.Errorf("expected *LLMGenerator, got %T", gen)
	}

	cfg := config.Default().Generator
	cfg.Provider = "scraper"
	if _, err := NewGenerator(cfg, nil, &logger); err == nil {
		t.Error("expected error for unknown provider")
	}
}
