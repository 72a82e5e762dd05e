package redis

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"strings"
	"time"

	"github.com/povarna/generative-ai-agents/word-agent/internal/models"
	"github.com/redis/go-redis/v9"
	"github.com/rs/zerolog"
)

const (
	payloadField = "payload"

	readCount            = 10
	readBlock            = 2 * time.Second
	defaultRetryInterval = 30 * time.Second
)

// Analyzer is satisfied by the word analyzer service.
type Analyzer interface {
	Analyze(ctx context.Context, request models.WordRequest) (models.AnalysisResult, error)
}

type Consumer struct {
	client        redis.Cmdable
	stream        string
	resultsStream string
	groupID       string
	consumerName  string
	retryInterval time.Duration
	analyzer      Analyzer
	logger        *zerolog.Logger
}

func NewConsumer(client redis.Cmdable, cfg *RedisStreamConfig, analyzer Analyzer, logger *zerolog.Logger) *Consumer {
	return &Consumer{
		client:        client,
		stream:        cfg.Stream,
		resultsStream: cfg.ResultsStream,
		groupID:       cfg.Group,
		consumerName:  cfg.ConsumerName,
		retryInterval: defaultRetryInterval,
		analyzer:      analyzer,
		logger:        logger,
	}
}

func (c *Consumer) Setup(ctx context.Context) error {
	err := c.client.XGroupCreateMkStream(ctx, c.stream, c.groupID, "0").Err()
	if err != nil && !strings.HasPrefix(err.Error(), "BUSYGROUP") {
		return err
	}
	return nil
}

func (c *Consumer) Start(ctx context.Context) error {
	c.logger.Info().
		Str("stream", c.stream).
		Str("group", c.groupID).
		Str("consumer", c.consumerName).
		Msg("Consumer started")

	// Entries left pending by a previous run are retried before new ones.
	c.retryPending(ctx)
	lastRetry := time.Now()

	for {
		if ctx.Err() != nil {
			return ctx.Err()
		}

		if time.Since(lastRetry) >= c.retryInterval {
			c.retryPending(ctx)
			lastRetry = time.Now()
		}

		if err := c.poll(ctx); err != nil {
			if ctx.Err() != nil {
				return ctx.Err()
			}
			c.logger.Error().Err(err).Msg("Failed to read from stream")
		}
	}
}

// poll reads one batch of new messages and processes them.
func (c *Consumer) poll(ctx context.Context) error {
	streams, err := c.client.XReadGroup(ctx, &redis.XReadGroupArgs{
		Group:    c.groupID,
		Consumer: c.consumerName,
		Streams:  []string{c.stream, ">"},
		Count:    readCount,
		Block:    readBlock,
	}).Result()
	if err != nil {
		if errors.Is(err, redis.Nil) {
			// timeout, no message
			return nil
		}
		return err
	}

	for _, s := range streams {
		for _, msg := range s.Messages {
			c.process(ctx, msg)
		}
	}
	return nil
}

// retryPending walks the entries delivered to this consumer but never acked,
// oldest first. Entries that fail again stay pending for the next pass.
func (c *Consumer) retryPending(ctx context.Context) {
	cursor := "0"
	for ctx.Err() == nil {
		streams, err := c.client.XReadGroup(ctx, &redis.XReadGroupArgs{
			Group:    c.groupID,
			Consumer: c.consumerName,
			Streams:  []string{c.stream, cursor},
			Count:    readCount,
			Block:    -1,
		}).Result()
		if err != nil {
			if !errors.Is(err, redis.Nil) {
				c.logger.Error().Err(err).Msg("Failed to read pending entries")
			}
			return
		}

		read := 0
		for _, s := range streams {
			for _, msg := range s.Messages {
				c.logger.Debug().Str("id", msg.ID).Msg("Retrying pending message")
				c.process(ctx, msg)
				cursor = msg.ID
				read++
			}
		}
		if read < readCount {
			return
		}
	}
}

// Stop closes the underlying client when the consumer owns one.
func (c *Consumer) Stop() error {
	if closer, ok := c.client.(io.Closer); ok {
		return closer.Close()
	}
	return nil
}

func (c *Consumer) process(ctx context.Context, msg redis.XMessage) {
	c.logger.Debug().Str("id", msg.ID).Msg("Message received")

	request, err := decodePayload(msg)
	if err != nil {
		c.logger.Error().Err(err).Str("id", msg.ID).Msg("Failed to decode message")
		c.ack(ctx, msg.ID) // bad message, ACK to skip it
		return
	}

	result, err := c.analyzer.Analyze(ctx, request)
	if err != nil {
		c.logger.Warn().Err(err).Str("id", msg.ID).Str("event_id", request.EventID).Msg("Word rejected")
	} else {
		c.logger.Info().
			Str("id", msg.ID).
			Str("event_id", request.EventID).
			Int("length", result.Length).
			Bool("cached", result.Cached).
			Msg("Analysis complete")
	}

	if err := c.publish(ctx, result); err != nil {
		// Left pending; retryPending picks it up again.
		c.logger.Error().Err(err).Str("id", msg.ID).Msg("Failed to publish result")
		return
	}

	c.ack(ctx, msg.ID)
}

func (c *Consumer) publish(ctx context.Context, result models.AnalysisResult) error {
	if c.resultsStream == "" {
		return nil
	}

	data, err := json.Marshal(result)
	if err != nil {
		return err
	}

	return c.client.XAdd(ctx, &redis.XAddArgs{
		Stream: c.resultsStream,
		Values: map[string]any{payloadField: string(data)},
	}).Err()
}

func (c *Consumer) ack(ctx context.Context, msgID string) {
	if err := c.client.XAck(ctx, c.stream, c.groupID, msgID).Err(); err != nil {
		c.logger.Error().Err(err).Str("id", msgID).Msg("Failed to ACK message")
	}
}

func decodePayload(msg redis.XMessage) (models.WordRequest, error) {
	var request models.WordRequest

	payload, ok := msg.Values[payloadField].(string)
	if !ok {
		return request, fmt.Errorf("missing %s field", payloadField)
	}

	if err := json.Unmarshal([]byte(payload), &request); err != nil {
		return request, err
	}

	if request.EventID == "" {
		request.EventID = msg.ID
	}
	if request.Source == "" {
		request.Source = models.SourceStream
	}
	return request, nil
}

// Publish adds a word request to stream in the format the consumer reads.
func Publish(ctx context.Context, client redis.Cmdable, stream string, request models.WordRequest) (string, error) {
	data, err := json.Marshal(request)
	if err != nil {
		return "", err
	}

	return client.XAdd(ctx, &redis.XAddArgs{
		Stream: stream,
		Values: map[string]any{payloadField: string(data)},
	}).Result()
}
