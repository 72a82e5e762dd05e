package bedrock

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"math"
	"math/rand/v2"
	"strings"
	"time"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/service/bedrockruntime"
	"github.com/aws/smithy-go"
	"github.com/povarna/generative-ai-agents/word-agent/internal/llm"
)

const anthropicVersion = "bedrock-2023-05-31"

type claudeMessageRequest struct {
	AnthropicVersion string          `json:"anthropic_version"`
	MaxTokens        int             `json:"max_tokens"`
	Temperature      float64         `json:"temperature"`
	System           string          `json:"system,omitempty"`
	Messages         []claudeMessage `json:"messages"`
}

type claudeMessage struct {
	Role    string `json:"role"`
	Content string `json:"content"`
}

type claudeMessageResponse struct {
	Content []struct {
		Type string `json:"type"`
		Text string `json:"text"`
	} `json:"content"`
	StopReason string `json:"stop_reason"`
}

// Error codes Bedrock returns for conditions that clear up on their own.
var retryableCodes = map[string]bool{
	"ThrottlingException":         true,
	"TooManyRequestsException":    true,
	"ServiceUnavailableException": true,
	"InternalServerException":     true,
	"ModelNotReadyException":      true,
	"ModelTimeoutException":       true,
}

func newMessageRequest(request llm.LLMRequest) claudeMessageRequest {
	messages := []claudeMessage{{Role: "user", Content: request.Prompt}}
	if request.Prefill != "" {
		// Claude continues a trailing assistant turn instead of starting fresh.
		messages = append(messages, claudeMessage{Role: "assistant", Content: request.Prefill})
	}

	return claudeMessageRequest{
		AnthropicVersion: anthropicVersion,
		MaxTokens:        request.MaxTokens,
		Temperature:      request.Temperature,
		System:           request.System,
		Messages:         messages,
	}
}

func (c *Client) InvokeModel(ctx context.Context, request llm.LLMRequest) (*llm.LLMResponse, error) {
	body, err := json.Marshal(newMessageRequest(request))
	if err != nil {
		return nil, fmt.Errorf("unable to serialize claude request: %w", err)
	}

	output, err := c.Client.InvokeModel(ctx, &bedrockruntime.InvokeModelInput{
		ModelId:     aws.String(c.ModelID),
		Body:        body,
		Accept:      aws.String("application/json"),
		ContentType: aws.String("application/json"),
	})
	if err != nil {
		return nil, fmt.Errorf("unable to invoke claude model: %w", err)
	}

	text, stopReason, err := parseMessageResponse(output.Body)
	if err != nil {
		return nil, err
	}

	return &llm.LLMResponse{
		Content:    request.Prefill + text,
		StopReason: stopReason,
	}, nil
}

// parseMessageResponse joins the text blocks of a Messages API reply.
func parseMessageResponse(body []byte) (string, string, error) {
	var response claudeMessageResponse
	if err := json.Unmarshal(body, &response); err != nil {
		return "", "", fmt.Errorf("failed to unmarshal bedrock response: %w", err)
	}

	var text strings.Builder
	for _, block := range response.Content {
		if block.Type == "text" {
			text.WriteString(block.Text)
		}
	}
	return text.String(), response.StopReason, nil
}

// InvokeModelWithRetry makes up to MaxRetries attempts, backing off between
// them but not after the last one.
func (c *Client) InvokeModelWithRetry(ctx context.Context, request llm.LLMRequest) (*llm.LLMResponse, error) {
	attempts := max(c.MaxRetries, 1)

	var lastErr error
	for attempt := 0; attempt < attempts; attempt++ {
		if attempt > 0 {
			if err := c.sleep(ctx, calculateBackoff(attempt-1, c.InitialDelay, c.MaxDelay)); err != nil {
				return nil, err
			}
		}

		response, err := c.InvokeModel(ctx, request)
		if err == nil {
			return response, nil
		}
		if !isRetryableError(err) {
			return nil, fmt.Errorf("non-retryable error: %w", err)
		}
		lastErr = err
	}

	return nil, fmt.Errorf("giving up after %d attempts: %w", attempts, lastErr)
}

func (c *Client) sleep(ctx context.Context, d time.Duration) error {
	if c.wait != nil {
		return c.wait(ctx, d)
	}

	timer := time.NewTimer(d)
	defer timer.Stop()
	select {
	case <-ctx.Done():
		return ctx.Err()
	case <-timer.C:
		return nil
	}
}

func isRetryableError(err error) bool {
	if err == nil || errors.Is(err, context.Canceled) || errors.Is(err, context.DeadlineExceeded) {
		return false
	}

	var apiErr smithy.APIError
	if errors.As(err, &apiErr) {
		return retryableCodes[apiErr.ErrorCode()]
	}

	// Transport failures never reach the API and carry no error code.
	msg := err.Error()
	for _, marker := range []string{"ThrottlingException", "Rate exceeded", "ServiceUnavailableException", "connection reset", "EOF", "timeout"} {
		if strings.Contains(msg, marker) {
			return true
		}
	}
	return false
}

// calculateBackoff doubles initialDelay per attempt up to maxDelay, with
// +/-20% jitter.
func calculateBackoff(attempt int, initialDelay, maxDelay time.Duration) time.Duration {
	backoff := math.Min(float64(initialDelay)*math.Pow(2, float64(attempt)), float64(maxDelay))
	backoff += backoff * 0.2 * (2*rand.Float64() - 1)
	return time.Duration(backoff)
}
