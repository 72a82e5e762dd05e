package setup

import (
	"context"
	"errors"
	"fmt"
	"io"
	"os"
	"strconv"
	"time"

	"github.com/povarna/generative-ai-agents/word-agent/internal/analyzer"
	"github.com/povarna/generative-ai-agents/word-agent/internal/cache"
	"github.com/povarna/generative-ai-agents/word-agent/internal/config"
	"github.com/povarna/generative-ai-agents/word-agent/internal/database"
	"github.com/povarna/generative-ai-agents/word-agent/internal/llm"
	"github.com/povarna/generative-ai-agents/word-agent/internal/llm/bedrock"
	"github.com/povarna/generative-ai-agents/word-agent/internal/llm/gpt"
	"github.com/povarna/generative-ai-agents/word-agent/internal/localstore"
	"github.com/povarna/generative-ai-agents/word-agent/internal/prechecks"
	redisconn "github.com/povarna/generative-ai-agents/word-agent/internal/redis"
	applog "github.com/povarna/generative-ai-agents/word-agent/internal/setup/logger"
	"github.com/povarna/generative-ai-agents/word-agent/internal/wordgen"
	"github.com/rs/zerolog"
)

const (
	HistoryNone     = "none"
	HistoryPostgres = "postgres"
	HistoryBolt     = "bolt"
)

type Config struct {
	LogLevel        string
	LogFormat       string
	AWSRegion       string
	ClaudeModelID   string
	OpenAIKey       string
	OpenAIModelID   string
	DefaultProvider string
	RedisAddr       string
	RedisPassword   string
	CacheEnabled    bool
	HistoryBackend  string
	BoltPath        string
	Postgres        database.Config
	APIPort         string
	ShutdownTimeout time.Duration
}

type Dependencies struct {
	Analyzer  *analyzer.Analyzer
	Generator wordgen.Generator
	AppConfig *config.Config
	Logger    *zerolog.Logger

	closers []func() error
}

func LoadConfig() *Config {
	return &Config{
		LogLevel:        getEnv("LOG_LEVEL", "info"),
		LogFormat:       getEnv("LOG_FORMAT", "console"),
		AWSRegion:       getEnv("AWS_REGION", "us-east-1"),
		ClaudeModelID:   getEnv("CLAUDE_MODEL_ID", ""),
		OpenAIKey:       getEnv("OPEN_AI_KEY", ""),
		OpenAIModelID:   getEnv("OPEN_AI_MODEL_ID", ""),
		DefaultProvider: getEnv("DEFAULT_LLM_PROVIDER", "bedrock"),
		RedisAddr:       getEnv("REDIS_ADDR", "localhost:6379"),
		RedisPassword:   getEnv("REDIS_PASSWORD", ""),
		CacheEnabled:    getEnvBool("CACHE_ENABLED", false),
		HistoryBackend:  getEnv("HISTORY_BACKEND", HistoryNone),
		BoltPath:        getEnv("BOLT_PATH", "wordapp.db"),
		Postgres: database.Config{
			Host:     getEnv("POSTGRES_HOST", "localhost"),
			Port:     getEnv("POSTGRES_PORT", "5432"),
			User:     getEnv("POSTGRES_USER", "postgres"),
			Password: getEnv("POSTGRES_PASSWORD", ""),
			Database: getEnv("POSTGRES_DB", "word_agent"),
			SSLMode:  getEnv("POSTGRES_SSLMODE", "disable"),
		},
		APIPort:         getEnv("WORD_AGENT_API_PORT", "18082"),
		ShutdownTimeout: getEnvDuration("SHUTDOWN_TIMEOUT", 10*time.Second),
	}
}

// NewLogger builds the process logger from LOG_LEVEL and LOG_FORMAT.
func (c *Config) NewLogger(out io.Writer) zerolog.Logger {
	return applog.NewWithWriter(out, c.LogLevel, c.LogFormat)
}

// Wire builds the analyzer and generator from the environment and the YAML
// config. Call Close on the result to release stores and connections.
func Wire(ctx context.Context, cfg *Config, logger *zerolog.Logger) (*Dependencies, error) {
	appConfig, err := config.Load()
	if err != nil {
		return nil, fmt.Errorf("failed to load config: %w", err)
	}

	deps := &Dependencies{
		AppConfig: appConfig,
		Logger:    logger,
	}

	// PreChecks
	stageRunner := prechecks.NewStageRunner([]prechecks.Checker{
		prechecks.NewEncodingChecker(),
		prechecks.NewLengthChecker(appConfig.Analyzer.MaxWordLength),
		prechecks.NewAlphabetChecker(appConfig.Analyzer.Alphabet),
	})

	var resultCache analyzer.Cache
	if cfg.CacheEnabled && appConfig.Analyzer.Cache.Enabled {
		client, err := redisconn.ConnectRedis(ctx, redisconn.Options{
			Addr:       cfg.RedisAddr,
			Password:   cfg.RedisPassword,
			MaxRetries: 3,
		}, logger)
		if err != nil {
			return nil, fmt.Errorf("failed to connect result cache: %w", err)
		}
		deps.closers = append(deps.closers, client.Close)
		resultCache = cache.NewRedisResultCache(client, appConfig.Analyzer.Cache.Prefix, appConfig.Analyzer.Cache.TTL)
	}

	history, err := createHistoryStore(ctx, cfg, deps)
	if err != nil {
		_ = deps.Close()
		return nil, err
	}

	deps.Analyzer = analyzer.NewAnalyzer(stageRunner, resultCache, history, logger)

	var llmClient llm.LLMClient
	if appConfig.Generator.Provider == config.ProviderLLM {
		llmClient, err = createLLMClient(ctx, cfg.DefaultProvider, cfg)
		if err != nil {
			_ = deps.Close()
			return nil, fmt.Errorf("failed to create LLM client: %w", err)
		}
	}

	deps.Generator, err = wordgen.NewGenerator(appConfig.Generator, llmClient, logger)
	if err != nil {
		_ = deps.Close()
		return nil, fmt.Errorf("failed to create word generator: %w", err)
	}

	logger.Debug().
		Str("generator", appConfig.Generator.Provider).
		Bool("cache", resultCache != nil).
		Str("history", cfg.HistoryBackend).
		Msg("Dependencies wired")

	return deps, nil
}

// Close releases everything Wire opened, in reverse order.
func (d *Dependencies) Close() error {
	var errs []error
	for i := len(d.closers) - 1; i >= 0; i-- {
		if err := d.closers[i](); err != nil {
			errs = append(errs, err)
		}
	}
	d.closers = nil
	return errors.Join(errs...)
}

func createHistoryStore(ctx context.Context, cfg *Config, deps *Dependencies) (analyzer.HistoryStore, error) {
	switch cfg.HistoryBackend {
	case HistoryNone, "":
		return nil, nil
	case HistoryBolt:
		store, err := localstore.NewStore(cfg.BoltPath)
		if err != nil {
			return nil, fmt.Errorf("failed to open history file: %w", err)
		}
		deps.closers = append(deps.closers, store.Close)
		return store, nil
	case HistoryPostgres:
		db, err := database.New(ctx, cfg.Postgres)
		if err != nil {
			return nil, err
		}
		deps.closers = append(deps.closers, func() error {
			db.Close()
			return nil
		})
		if err := db.Ping(ctx); err != nil {
			return nil, fmt.Errorf("failed to reach database: %w", err)
		}
		if err := db.EnsureSchema(ctx); err != nil {
			return nil, err
		}
		return db, nil
	default:
		return nil, fmt.Errorf("unsupported history backend: %s", cfg.HistoryBackend)
	}
}

func getEnv(key string, defaultValue string) string {
	value := os.Getenv(key)
	if value == "" {
		value = defaultValue
	}

	return value
}

func getEnvBool(key string, defaultValue bool) bool {
	value, err := strconv.ParseBool(os.Getenv(key))
	if err != nil {
		return defaultValue
	}

	return value
}

func getEnvDuration(key string, defaultValue time.Duration) time.Duration {
	value, err := time.ParseDuration(os.Getenv(key))
	if err != nil {
		return defaultValue
	}

	return value
}

func createLLMClient(ctx context.Context, provider string, cfg *Config) (llm.LLMClient, error) {
	switch provider {
	case "bedrock":
		return bedrock.NewClient(ctx, cfg.AWSRegion, cfg.ClaudeModelID)
	case "openai":
		return gpt.NewClient(cfg.OpenAIKey, cfg.OpenAIModelID)
	default:
		return nil, fmt.Errorf("unsupported LLM provider: %s", provider)
	}
}
