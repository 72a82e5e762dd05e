package prechecks

import (
	"github.com/povarna/generative-ai-agents/word-agent/internal/models"
)

// Checker validates a word before it reaches the scanner.
type Checker interface {
	Check(request models.WordRequest) models.StageResult
}
