package prechecks

import (
	"time"
	"unicode/utf8"

	"github.com/povarna/generative-ai-agents/word-agent/internal/models"
)

type EncodingChecker struct {
}

func NewEncodingChecker() *EncodingChecker {
	return &EncodingChecker{}
}

// Check rejects words that are not valid UTF-8. Every invalid byte would
// decode to U+FFFD and collide with the others inside the scanner.
func (c *EncodingChecker) Check(request models.WordRequest) models.StageResult {
	now := time.Now()

	result := models.StageResult{
		Name:   "encoding-checker",
		Passed: true,
		Reason: "Word is valid UTF-8",
	}

	if !utf8.ValidString(request.Word) {
		result.Passed = false
		result.Reason = "Word is not valid UTF-8"
	}

	result.Duration = time.Since(now)
	return result
}
