package batch

import (
	"bufio"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"strings"

	"github.com/povarna/generative-ai-agents/word-agent/internal/models"
	"github.com/rs/zerolog"
)

const maxLineSize = 1024 * 1024

// InputRecord is one line of the input file. Error is set when the line could
// not be parsed; such records are reported but never analyzed.
type InputRecord struct {
	LineNumber int
	Request    models.WordRequest
	Error      error
}

type Reader struct {
	input  io.Reader
	logger *zerolog.Logger
}

func NewReader(input io.Reader, logger *zerolog.Logger) *Reader {
	return &Reader{
		input:  input,
		logger: logger,
	}
}

// ReadAll streams records until the input is exhausted or ctx is cancelled.
// A line whose first non-blank character is '{' is a JSON WordRequest; any
// other non-empty line is taken verbatim as a word, spaces included. Only the
// line terminator (\n or \r\n) is removed.
func (r *Reader) ReadAll(ctx context.Context) <-chan InputRecord {
	out := make(chan InputRecord)

	go func() {
		defer close(out)

		scanner := bufio.NewScanner(r.input)
		scanner.Buffer(make([]byte, 0, 64*1024), maxLineSize)

		lineNumber := 0
		for scanner.Scan() {
			lineNumber++

			line := scanner.Text()
			if line == "" {
				continue
			}

			record := parseLine(lineNumber, line)
			if record.Error != nil {
				r.logger.Warn().Int("line", lineNumber).Err(record.Error).Msg("Skipping malformed record")
			}

			select {
			case out <- record:
			case <-ctx.Done():
				return
			}
		}

		if err := scanner.Err(); err != nil {
			r.logger.Error().Err(err).Int("line", lineNumber).Msg("Failed to read input")
			select {
			case out <- InputRecord{LineNumber: lineNumber + 1, Error: err}:
			case <-ctx.Done():
			}
		}
	}()

	return out
}

func parseLine(lineNumber int, line string) InputRecord {
	record := InputRecord{LineNumber: lineNumber}

	if !strings.HasPrefix(strings.TrimLeft(line, " \t"), "{") {
		record.Request = models.WordRequest{
			EventID: fmt.Sprintf("line-%d", lineNumber),
			Word:    line,
			Source:  models.SourceBatch,
		}
		return record
	}

	var request models.WordRequest
	if err := json.Unmarshal([]byte(line), &request); err != nil {
		record.Error = fmt.Errorf("line %d: %w", lineNumber, err)
		return record
	}

	if request.EventID == "" {
		request.EventID = fmt.Sprintf("line-%d", lineNumber)
	}
	if request.Source == "" {
		request.Source = models.SourceBatch
	}
	record.Request = request
	return record
}
