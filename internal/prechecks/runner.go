package prechecks

import (
	"strings"

	"github.com/povarna/generative-ai-agents/word-agent/internal/models"
)

type StageRunner struct {
	Checkers []Checker
}

func NewStageRunner(checkers []Checker) *StageRunner {
	return &StageRunner{
		Checkers: checkers,
	}
}

// Run executes every checker in order and returns all results.
func (r *StageRunner) Run(request models.WordRequest) []models.StageResult {
	stageResults := make([]models.StageResult, 0, len(r.Checkers))
	for _, checker := range r.Checkers {
		stageResults = append(stageResults, checker.Check(request))
	}

	return stageResults
}

// Failures keeps only the results that did not pass.
func Failures(results []models.StageResult) []models.StageResult {
	var failed []models.StageResult
	for _, res := range results {
		if !res.Passed {
			failed = append(failed, res)
		}
	}
	return failed
}

// Reasons joins the reasons of the given results into one message.
func Reasons(results []models.StageResult) string {
	reasons := make([]string, 0, len(results))
	for _, res := range results {
		reasons = append(reasons, res.Name+": "+res.Reason)
	}
	return strings.Join(reasons, "; ")
}
