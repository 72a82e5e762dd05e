package wordgen

import (
	"context"

	"github.com/povarna/generative-ai-agents/word-agent/internal/llm"
)

// MockLLMClient records the last request and returns a canned response.
type MockLLMClient struct {
	ResponseToReturn *llm.LLMResponse
	ErrorToReturn    error
	WasCalled        bool
	UsedRetry        bool
	LastRequest      llm.LLMRequest
}

func (m *MockLLMClient) InvokeModel(ctx context.Context, request llm.LLMRequest) (*llm.LLMResponse, error) {
	m.WasCalled = true
	m.LastRequest = request
	return m.ResponseToReturn, m.ErrorToReturn
}

func (m *MockLLMClient) InvokeModelWithRetry(ctx context.Context, request llm.LLMRequest) (*llm.LLMResponse, error) {
	m.UsedRetry = true
	return m.InvokeModel(ctx, request)
}
