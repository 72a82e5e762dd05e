package config

import "time"

// Config represents the complete word-agent configuration file
type Config struct {
	Generator GeneratorConfig `yaml:"generator"`
	Analyzer  AnalyzerConfig  `yaml:"analyzer"`
}

// GeneratorConfig controls where new words come from
type GeneratorConfig struct {
	Provider  string    `yaml:"provider"`
	Count     int       `yaml:"count"`
	MinLength int       `yaml:"min_length"`
	MaxLength int       `yaml:"max_length"`
	Alphabet  string    `yaml:"alphabet"`
	LLM       LLMConfig `yaml:"llm"`
}

// LLMConfig holds the prompt template and model parameters used by the
// LLM-backed generator
type LLMConfig struct {
	Prompt string      `yaml:"prompt"`
	Model  ModelConfig `yaml:"model"`
}

type ModelConfig struct {
	MaxTokens   int     `yaml:"max_tokens"`
	Temperature float64 `yaml:"temperature"`
	Retry       bool    `yaml:"retry"`
}

// AnalyzerConfig contains input limits and cache settings
type AnalyzerConfig struct {
	MaxWordLength int         `yaml:"max_word_length"`
	Alphabet      string      `yaml:"alphabet"`
	Cache         CacheConfig `yaml:"cache"`
}

type CacheConfig struct {
	Enabled bool          `yaml:"enabled"`
	TTL     time.Duration `yaml:"ttl"`
	Prefix  string        `yaml:"prefix"`
}
