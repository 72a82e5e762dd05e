// Package wordgen produces candidate words for the substring game, either
// from a seeded random source or from an LLM.
package wordgen

import (
	"context"
	"errors"
	"fmt"

	"github.com/povarna/generative-ai-agents/word-agent/internal/config"
	"github.com/povarna/generative-ai-agents/word-agent/internal/llm"
	"github.com/rs/zerolog"
)

var ErrNoWords = errors.New("generator produced no usable words")

type Generator interface {
	Generate(ctx context.Context, n int) ([]string, error)
}

// NewGenerator builds the generator selected by cfg.Provider. The LLM client
// is only required for the llm provider.
func NewGenerator(cfg config.GeneratorConfig, llmClient llm.LLMClient, logger *zerolog.Logger) (Generator, error) {
	switch cfg.Provider {
	case config.ProviderRandom, "":
		return NewRandomGenerator(cfg, nil), nil
	case config.ProviderLLM:
		if llmClient == nil {
			return nil, fmt.Errorf("llm generator requires an LLM client")
		}
		return NewLLMGenerator(cfg, llmClient, logger)
	default:
		return nil, fmt.Errorf("unsupported generator provider: %s", cfg.Provider)
	}
}
