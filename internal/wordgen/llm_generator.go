package wordgen

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"strings"
	"text/template"
	"unicode/utf8"

	"github.com/povarna/generative-ai-agents/word-agent/internal/config"
	"github.com/povarna/generative-ai-agents/word-agent/internal/llm"
	"github.com/rs/zerolog"
)

const systemPrompt = "You generate word lists for a word game. Answer with the requested JSON document and nothing else."

// LLMGenerator asks a language model for words using a configurable prompt.
type LLMGenerator struct {
	cfg            config.GeneratorConfig
	promptTemplate *template.Template
	allowed        map[rune]struct{}
	llmClient      llm.LLMClient
	logger         *zerolog.Logger
}

type promptData struct {
	Count     int
	MinLength int
	MaxLength int
	Alphabet  string
}

type wordsResponse struct {
	Words []string `json:"words"`
}

func NewLLMGenerator(cfg config.GeneratorConfig, llmClient llm.LLMClient, logger *zerolog.Logger) (*LLMGenerator, error) {
	tmpl, err := template.New("wordgen").Parse(cfg.LLM.Prompt)
	if err != nil {
		return nil, fmt.Errorf("failed to parse generator prompt template: %w", err)
	}

	allowed := make(map[rune]struct{})
	for _, r := range cfg.Alphabet {
		allowed[r] = struct{}{}
	}

	return &LLMGenerator{
		cfg:            cfg,
		promptTemplate: tmpl,
		allowed:        allowed,
		llmClient:      llmClient,
		logger:         logger,
	}, nil
}

func (g *LLMGenerator) Generate(ctx context.Context, n int) ([]string, error) {
	if n <= 0 {
		return []string{}, nil
	}

	var buf bytes.Buffer
	err := g.promptTemplate.Execute(&buf, promptData{
		Count:     n,
		MinLength: g.cfg.MinLength,
		MaxLength: g.cfg.MaxLength,
		Alphabet:  g.cfg.Alphabet,
	})
	if err != nil {
		return nil, fmt.Errorf("template execution failed: %w", err)
	}

	request := llm.LLMRequest{
		System:      systemPrompt,
		Prompt:      buf.String(),
		Prefill:     "{",
		MaxTokens:   g.cfg.LLM.Model.MaxTokens,
		Temperature: g.cfg.LLM.Model.Temperature,
	}

	var resp *llm.LLMResponse
	if g.cfg.LLM.Model.Retry {
		resp, err = g.llmClient.InvokeModelWithRetry(ctx, request)
	} else {
		resp, err = g.llmClient.InvokeModel(ctx, request)
	}
	if err != nil {
		return nil, fmt.Errorf("LLM call failed: %w", err)
	}

	if resp.Truncated() {
		g.logger.Warn().
			Int("max_tokens", request.MaxTokens).
			Msg("LLM response hit the token limit")
	}

	var parsed wordsResponse
	if err := json.Unmarshal([]byte(stripMarkdownCodeBlock(resp.Content)), &parsed); err != nil {
		g.logger.Error().
			Err(err).
			Str("content", resp.Content).
			Msg("failed to deserialize LLM response")
		return nil, fmt.Errorf("failed to deserialize LLM response: %w", err)
	}

	words := make([]string, 0, n)
	for _, word := range parsed.Words {
		word = strings.TrimSpace(word)
		if !g.acceptable(word) {
			g.logger.Debug().Str("word", word).Msg("dropping word outside generator bounds")
			continue
		}
		words = append(words, word)
		if len(words) == n {
			break
		}
	}

	if len(words) == 0 {
		return nil, ErrNoWords
	}

	g.logger.Info().
		Int("requested", n).
		Int("received", len(parsed.Words)).
		Int("accepted", len(words)).
		Msg("LLM words generated")

	return words, nil
}

func (g *LLMGenerator) acceptable(word string) bool {
	length := utf8.RuneCountInString(word)
	if length < g.cfg.MinLength || length > g.cfg.MaxLength {
		return false
	}
	if len(g.allowed) == 0 {
		return true
	}
	for _, r := range word {
		if _, ok := g.allowed[r]; !ok {
			return false
		}
	}
	return true
}

// stripMarkdownCodeBlock removes markdown code block formatting if present
func stripMarkdownCodeBlock(content string) string {
	content = strings.TrimSpace(content)

	if strings.HasPrefix(content, "```") {
		firstNewline := strings.Index(content, "\n")
		if firstNewline == -1 {
			return content
		}

		closingBackticks := strings.LastIndex(content, "```")
		if closingBackticks == -1 || closingBackticks <= firstNewline {
			return content
		}

		content = strings.TrimSpace(content[firstNewline+1 : closingBackticks])
	}

	return content
}
