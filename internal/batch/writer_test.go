package batch

import (
	"bytes"
	"encoding/json"
	"strings"
	"testing"

	"github.com/povarna/generative-ai-agents/word-agent/internal/models"
)

func TestWriter_UnsupportedFormat(t *testing.T) {
	if _, err := NewWriter(&bytes.Buffer{}, "csv", newTestLogger()); err == nil {
		t.Error("expected error for unsupported format")
	}
}

func TestWriter_JSONL(t *testing.T) {
	var buf bytes.Buffer
	writer, err := NewWriter(&buf, FormatJSONL, newTestLogger())
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	results := []models.AnalysisResult{
		{ID: "1", Word: "abc", Length: 3, Substring: "abc"},
		{ID: "2", Word: "aa", Length: 1, Substring: "a"},
	}
	for _, r := range results {
		if err := writer.Write(r); err != nil {
			t.Fatalf("Write: %v", err)
		}
	}
	if err := writer.Close(); err != nil {
		t.Fatalf("Close: %v", err)
	}

	lines := strings.Split(strings.TrimSpace(buf.String()), "\n")
	if len(lines) != 2 {
		t.Fatalf("expected 2 lines, got %d: %q", len(lines), buf.String())
	}

	var decoded models.AnalysisResult
	if err := json.Unmarshal([]byte(lines[1]), &decoded); err != nil {
		t.Fatalf("line is not JSON: %v", err)
	}
	if decoded.ID != "2" || decoded.Substring != "a" {
		t.Errorf("unexpected decoded result: %+v", decoded)
	}
}

func TestWriter_Summary(t *testing.T) {
	var buf bytes.Buffer
	writer, err := NewWriter(&buf, FormatSummary, newTestLogger())
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	_ = writer.Write(models.AnalysisResult{Word: "abcd", Length: 4})
	_ = writer.Write(models.AnalysisResult{Word: "ab", Length: 2})
	_ = writer.Write(models.AnalysisResult{Word: "zzzz", Error: "invalid word"})

	if buf.Len() != 0 {
		t.Errorf("summary format must not write before Close, got %q", buf.String())
	}
	if err := writer.Close(); err != nil {
		t.Fatalf("Close: %v", err)
	}

	var summary models.BatchSummary
	if err := json.Unmarshal(buf.Bytes(), &summary); err != nil {
		t.Fatalf("summary is not JSON: %v", err)
	}
	if summary.Total != 3 || summary.Succeeded != 2 || summary.Failed != 1 {
		t.Errorf("unexpected counts: %+v", summary)
	}
	if summary.MaxLength != 4 || summary.LongestWord != "abcd" {
		t.Errorf("unexpected longest: %+v", summary)
	}
	if summary.MeanLength != 3 {
		t.Errorf("expected mean 3, got %v", summary.MeanLength)
	}
}
