package prechecks

import (
	"fmt"
	"time"
	"unicode/utf8"

	"github.com/povarna/generative-ai-agents/word-agent/internal/models"
)

type LengthChecker struct {
	MaxLength int
}

func NewLengthChecker(maxLength int) *LengthChecker {
	return &LengthChecker{MaxLength: maxLength}
}

// Check rejects words longer than MaxLength runes. A MaxLength of zero
// disables the limit; the empty word always passes.
func (c *LengthChecker) Check(request models.WordRequest) models.StageResult {
	now := time.Now()

	result := models.StageResult{
		Name:   "length-checker",
		Passed: true,
		Reason: "Word length is acceptable",
	}

	if c.MaxLength > 0 {
		if length := utf8.RuneCountInString(request.Word); length > c.MaxLength {
			result.Passed = false
			result.Reason = fmt.Sprintf("Word has %d characters, the limit is %d", length, c.MaxLength)
		}
	}

	result.Duration = time.Since(now)
	return result
}
