package batch

import (
	"context"
	"maps"
	"slices"
	"sync"

	"github.com/povarna/generative-ai-agents/word-agent/internal/models"
	"github.com/rs/zerolog"
)

type Analyzer interface {
	Analyze(ctx context.Context, request models.WordRequest) (models.AnalysisResult, error)
}

// Processor fans records out to a fixed pool of workers. Results are
// emitted in input order whatever order the workers finish in.
type Processor struct {
	analyzer Analyzer
	workers  int
	logger   *zerolog.Logger
}

type indexedRecord struct {
	index  int
	record InputRecord
}

type indexedResult struct {
	index  int
	result models.AnalysisResult
}

func NewProcessor(analyzer Analyzer, workers int, logger *zerolog.Logger) *Processor {
	if workers < 1 {
		workers = 1
	}
	return &Processor{
		analyzer: analyzer,
		workers:  workers,
		logger:   logger,
	}
}

func (p *Processor) Process(ctx context.Context, records []InputRecord) <-chan models.AnalysisResult {
	jobs := make(chan indexedRecord)
	done := make(chan indexedResult, p.workers)
	results := make(chan models.AnalysisResult, p.workers)

	var wg sync.WaitGroup
	for i := range p.workers {
		wg.Add(1)
		go func(workerID int) {
			defer wg.Done()
			for job := range jobs {
				result := p.processOne(ctx, job.record)
				select {
				case done <- indexedResult{index: job.index, result: result}:
				case <-ctx.Done():
					return
				}
			}
			p.logger.Debug().Int("worker", workerID).Msg("Worker finished")
		}(i)
	}

	go func() {
		defer close(jobs)
		for i, record := range records {
			select {
			case jobs <- indexedRecord{index: i, record: record}:
			case <-ctx.Done():
				p.logger.Warn().Msg("Processing cancelled, dropping remaining records")
				return
			}
		}
	}()

	go func() {
		wg.Wait()
		close(done)
	}()

	go emitInOrder(ctx, done, results)

	return results
}

// emitInOrder holds back results that finish ahead of an earlier record.
// After a cancellation some indexes never arrive; what is held is then
// flushed in order, skipping the gaps.
func emitInOrder(ctx context.Context, done <-chan indexedResult, out chan<- models.AnalysisResult) {
	defer close(out)

	held := make(map[int]models.AnalysisResult)
	next := 0
	for r := range done {
		held[r.index] = r.result
		for {
			result, ok := held[next]
			if !ok {
				break
			}
			delete(held, next)
			next++
			select {
			case out <- result:
			case <-ctx.Done():
				return
			}
		}
	}

	for _, index := range slices.Sorted(maps.Keys(held)) {
		select {
		case out <- held[index]:
		case <-ctx.Done():
			return
		}
	}
}

func (p *Processor) processOne(ctx context.Context, record InputRecord) models.AnalysisResult {
	if record.Error != nil {
		return models.AnalysisResult{
			ID:    record.Request.EventID,
			Word:  record.Request.Word,
			Error: record.Error.Error(),
		}
	}

	result, err := p.analyzer.Analyze(ctx, record.Request)
	if err != nil {
		p.logger.Warn().Err(err).Int("line", record.LineNumber).Str("id", record.Request.EventID).Msg("Analysis failed")
	}
	return result
}
