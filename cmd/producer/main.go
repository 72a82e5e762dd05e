package main

import (
	"context"
	"flag"
	"fmt"
	"os"
	"strings"
	"time"

	"github.com/joho/godotenv"
	"github.com/povarna/generative-ai-agents/word-agent/internal/config"
	"github.com/povarna/generative-ai-agents/word-agent/internal/models"
	red "github.com/povarna/generative-ai-agents/word-agent/internal/redis"
	"github.com/povarna/generative-ai-agents/word-agent/internal/setup"
	"github.com/povarna/generative-ai-agents/word-agent/internal/stream"
	streamredis "github.com/povarna/generative-ai-agents/word-agent/internal/stream/redis"
	"github.com/povarna/generative-ai-agents/word-agent/internal/wordgen"
	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
)

// wordList collects repeated -w flags.
type wordList []string

func (w *wordList) String() string     { return strings.Join(*w, ",") }
func (w *wordList) Set(v string) error { *w = append(*w, v); return nil }

func main() {
	var words wordList
	flag.Var(&words, "w", "Word to publish (repeatable)")
	generate := flag.Int("generate", 0, "Publish N random words from the configured alphabet")
	streamName := flag.String("stream", stream.DefaultStream, "Stream name")
	flag.Parse()

	if len(words) == 0 && *generate <= 0 {
		fmt.Fprintln(os.Stderr, "Usage: producer -w <word> [-w <word>...] | -generate N")
		flag.PrintDefaults()
		os.Exit(1)
	}

	_ = godotenv.Load()
	cfg := setup.LoadConfig()

	zerolog.TimeFieldFormat = zerolog.TimeFormatUnix
	log.Logger = cfg.NewLogger(os.Stderr)

	if err := run(cfg, words, *generate, *streamName); err != nil {
		log.Error().Err(err).Msg("producer failed")
		os.Exit(1)
	}
}

func run(cfg *setup.Config, words []string, generate int, streamName string) error {
	ctx := context.Background()

	source := models.SourceCLI
	if generate > 0 {
		appConfig, err := config.Load()
		if err != nil {
			return err
		}
		generated, err := wordgen.NewRandomGenerator(appConfig.Generator, nil).Generate(ctx, generate)
		if err != nil {
			return err
		}
		words = append(words, generated...)
		source = models.SourceGenerator
	}

	client, err := red.ConnectRedis(ctx, red.Options{
		Addr:       cfg.RedisAddr,
		Password:   cfg.RedisPassword,
		MaxRetries: 3,
	}, &log.Logger)
	if err != nil {
		return err
	}
	defer client.Close()

	runID := time.Now().UnixNano()
	for i, word := range words {
		request := models.WordRequest{
			EventID: fmt.Sprintf("%d-%d", runID, i),
			Word:    word,
			Source:  source,
		}

		id, err := streamredis.Publish(ctx, client, streamName, request)
		if err != nil {
			return err
		}

		log.Info().Str("stream", streamName).Str("id", id).Str("event_id", request.EventID).Str("word", word).Msg("Published successfully!")
	}
	return nil
}
