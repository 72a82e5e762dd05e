package batch

import (
	"context"
	"strings"
	"testing"

	"github.com/povarna/generative-ai-agents/word-agent/internal/models"
	"github.com/rs/zerolog"
)

func newTestLogger() *zerolog.Logger {
	logger := zerolog.Nop()
	return &logger
}

func collect(ch <-chan InputRecord) []InputRecord {
	var records []InputRecord
	for record := range ch {
		records = append(records, record)
	}
	return records
}

func TestReader_InvalidJSON(t *testing.T) {
	file := strings.NewReader(`{"event_id":"1","word":`)

	reader := NewReader(file, newTestLogger())
	records := collect(reader.ReadAll(context.Background()))

	if len(records) != 1 {
		t.Fatalf("expected 1 record, got %d", len(records))
	}
	if records[0].Error == nil {
		t.Errorf("expected parse error for invalid JSON, but got none")
	}
}

func TestReader_ValidFile(t *testing.T) {
	inputFile := `{"event_id":"1","word":"abcabcbb"}
  {"event_id":"2","word":"pwwkew","source":"api"}`

	reader := NewReader(strings.NewReader(inputFile), newTestLogger())
	records := collect(reader.ReadAll(context.Background()))

	if len(records) != 2 {
		t.Fatalf("Expected 2 word requests. Got: %d", len(records))
	}
	for _, record := range records {
		if record.Error != nil {
			t.Errorf("Error reading the word request record. Got: %s", record.Error)
		}
	}
	if records[0].Request.Source != models.SourceBatch {
		t.Errorf("expected default source batch, got %s", records[0].Request.Source)
	}
	if records[1].Request.Source != models.SourceAPI {
		t.Errorf("expected explicit source to be kept, got %s", records[1].Request.Source)
	}
}

func TestReader_PlainWordsAndBlankLines(t *testing.T) {
	inputFile := "abcabcbb\n\n  tmmzuxt  \n{\"word\":\"abba\"}\n"

	reader := NewReader(strings.NewReader(inputFile), newTestLogger())
	records := collect(reader.ReadAll(context.Background()))

	if len(records) != 3 {
		t.Fatalf("expected 3 records, got %d", len(records))
	}

	expected := []struct {
		id   string
		word string
		line int
	}{
		{"line-1", "abcabcbb", 1},
		{"line-3", "  tmmzuxt  ", 3},
		{"line-4", "abba", 4},
	}
	for i, e := range expected {
		if records[i].Request.EventID != e.id || records[i].Request.Word != e.word || records[i].LineNumber != e.line {
			t.Errorf("record %d = %+v, want id %s word %s line %d", i, records[i], e.id, e.word, e.line)
		}
	}
}

func TestReader_KeepsSpacesInWords(t *testing.T) {
	testCases := []struct {
		name  string
		input string
		want  []string
	}{
		{name: "surrounding spaces", input: " ab \n", want: []string{" ab "}},
		{name: "crlf terminator", input: "abc \r\npwwkew\r\n", want: []string{"abc ", "pwwkew"}},
		{name: "whitespace-only word", input: "   \n\n", want: []string{"   "}},
		{name: "tab inside", input: "a\tb\ta", want: []string{"a\tb\ta"}},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			records := collect(NewReader(strings.NewReader(tc.input), newTestLogger()).ReadAll(context.Background()))
			if len(records) != len(tc.want) {
				t.Fatalf("expected %d records, got %d", len(tc.want), len(records))
			}
			for i, want := range tc.want {
				if records[i].Request.Word != want {
					t.Errorf("record %d word = %q, want %q", i, records[i].Request.Word, want)
				}
			}
		})
	}
}

func TestReader_ContextCancellation(t *testing.T) {
	var lines []string
	for i := 0; i < 100; i++ {
		lines = append(lines, `{"event_id":"1","word":"abcdef"}`)
	}
	file := strings.NewReader(strings.Join(lines, "\n"))

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()
	reader := NewReader(file, newTestLogger())

	ch := reader.ReadAll(ctx)
	count := 0
	for range ch {
		count++
		if count == 5 {
			cancel() // Cancel after 5 records
			break
		}
	}

	// Should have stopped early
	if count >= 100 {
		t.Errorf("expected early cancellation, but read all records")
	}
}
