package config

import (
	"fmt"
	"os"
	"time"

	"gopkg.in/yaml.v3"
)

const (
	ProviderRandom = "random"
	ProviderLLM    = "llm"

	DefaultAlphabet      = "abcdefghijklmnopqrstuvwxyz"
	DefaultPath          = "configs/wordapp.yaml"
	DefaultMaxWordLength = 4096
)

const defaultPrompt = `Generate {{.Count}} random words.
Each word must be between {{.MinLength}} and {{.MaxLength}} characters long
and use only these characters: {{.Alphabet}}
Mix words with many repeated letters and words with none.
Respond with JSON only: {"words": ["<word>", ...]}`

// Load reads the YAML file at WORDAPP_CONFIG_PATH (or configs/wordapp.yaml).
// A missing file is not an error; Default() is returned instead.
func Load() (*Config, error) {
	path := os.Getenv("WORDAPP_CONFIG_PATH")
	if path == "" {
		path = DefaultPath
	}

	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return Default(), nil
		}
		return nil, err
	}

	return Parse(data)
}

// Parse decodes data over the built-in max_word_length, so a file that sets
// it to 0 (no limit) keeps that value. Other zero values get defaults.
func Parse(data []byte) (*Config, error) {
	cfg := seed()
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return nil, fmt.Errorf("failed to parse config: %w", err)
	}

	applyDefaults(&cfg)

	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	return &cfg, nil
}

// Default returns the configuration used when no file is present.
func Default() *Config {
	cfg := seed()
	applyDefaults(&cfg)
	return &cfg
}

func seed() Config {
	return Config{
		Analyzer: AnalyzerConfig{MaxWordLength: DefaultMaxWordLength},
	}
}

func applyDefaults(cfg *Config) {
	gen := &cfg.Generator
	if gen.Provider == "" {
		gen.Provider = ProviderRandom
	}
	if gen.Count == 0 {
		gen.Count = 10
	}
	if gen.MinLength == 0 {
		gen.MinLength = 6
	}
	if gen.MaxLength == 0 {
		gen.MaxLength = 10
	}
	if gen.Alphabet == "" {
		gen.Alphabet = DefaultAlphabet
	}
	if gen.LLM.Prompt == "" {
		gen.LLM.Prompt = defaultPrompt
	}
	if gen.LLM.Model.MaxTokens == 0 {
		gen.LLM.Model.MaxTokens = 256
	}

	if cfg.Analyzer.Cache.TTL == 0 {
		cfg.Analyzer.Cache.TTL = 30 * time.Minute
	}
	if cfg.Analyzer.Cache.Prefix == "" {
		cfg.Analyzer.Cache.Prefix = "substring:"
	}
}

func (c *Config) Validate() error {
	gen := c.Generator

	switch gen.Provider {
	case ProviderRandom, ProviderLLM:
	default:
		return fmt.Errorf("unsupported generator provider: %s", gen.Provider)
	}

	if gen.Count < 0 {
		return fmt.Errorf("generator count must not be negative, got %d", gen.Count)
	}
	if gen.MinLength < 1 {
		return fmt.Errorf("generator min_length must be at least 1, got %d", gen.MinLength)
	}
	if gen.MaxLength < gen.MinLength {
		return fmt.Errorf("generator max_length %d is lower than min_length %d", gen.MaxLength, gen.MinLength)
	}
	if c.Analyzer.MaxWordLength < 0 {
		return fmt.Errorf("analyzer max_word_length must not be negative, got %d", c.Analyzer.MaxWordLength)
	}
	if c.Analyzer.MaxWordLength > 0 && gen.MaxLength > c.Analyzer.MaxWordLength {
		return fmt.Errorf("generator max_length %d exceeds analyzer max_word_length %d", gen.MaxLength, c.Analyzer.MaxWordLength)
	}

	return nil
}
