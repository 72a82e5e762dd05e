// Package llm is the provider-neutral surface the word generator talks to.
// Providers live in the bedrock and gpt subpackages.
package llm

import (
	"context"
)

// LLMClient sends one prompt and returns the model's text.
type LLMClient interface {
	InvokeModel(ctx context.Context, request LLMRequest) (*LLMResponse, error)
	// InvokeModelWithRetry retries throttling and transient failures.
	InvokeModelWithRetry(ctx context.Context, request LLMRequest) (*LLMResponse, error)
}
