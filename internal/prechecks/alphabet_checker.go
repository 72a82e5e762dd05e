package prechecks

import (
	"fmt"
	"strings"
	"time"

	"github.com/povarna/generative-ai-agents/word-agent/internal/models"
)

// AlphabetChecker restricts words to a fixed set of symbols. An empty
// alphabet accepts everything.
type AlphabetChecker struct {
	allowed map[rune]struct{}
}

func NewAlphabetChecker(alphabet string) *AlphabetChecker {
	allowed := make(map[rune]struct{})
	for _, r := range alphabet {
		allowed[r] = struct{}{}
	}

	return &AlphabetChecker{allowed: allowed}
}

func (c *AlphabetChecker) Check(request models.WordRequest) models.StageResult {
	now := time.Now()

	result := models.StageResult{
		Name:   "alphabet-checker",
		Passed: true,
		Reason: "All characters are allowed",
	}

	if len(c.allowed) == 0 {
		result.Duration = time.Since(now)
		return result
	}

	var invalid []string
	seen := make(map[rune]bool)
	for _, r := range request.Word {
		if _, ok := c.allowed[r]; ok || seen[r] {
			continue
		}
		seen[r] = true
		invalid = append(invalid, fmt.Sprintf("%q", r))
	}

	if len(invalid) > 0 {
		result.Passed = false
		result.Reason = fmt.Sprintf("Characters outside the alphabet: %s", strings.Join(invalid, ", "))
	}

	result.Duration = time.Since(now)
	return result
}
