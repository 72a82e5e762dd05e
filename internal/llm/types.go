package llm

type LLMRequest struct {
	// System is sent as the system prompt when the provider supports one.
	System string
	Prompt string
	// Prefill starts the model's answer, e.g. "{" for a JSON reply. Providers
	// that support it return Content with the prefill included; others ignore it.
	Prefill     string
	MaxTokens   int
	Temperature float64
}

type LLMResponse struct {
	Content    string
	StopReason string
}

// Truncated reports whether the model stopped because it ran out of tokens.
// Claude reports "max_tokens" and OpenAI "length".
func (r *LLMResponse) Truncated() bool {
	return r.StopReason == "max_tokens" || r.StopReason == "length"
}
