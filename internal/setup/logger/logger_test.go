package logger

import (
	"bytes"
	"encoding/json"
	"testing"

	"github.com/rs/zerolog"
)

func TestNewWithWriter_JSON(t *testing.T) {
	var buf bytes.Buffer
	log := NewWithWriter(&buf, "debug", "json")

	log.Debug().Str("word", "abc").Msg("analyzed")

	var entry map[string]any
	if err := json.Unmarshal(buf.Bytes(), &entry); err != nil {
		t.Fatalf("expected JSON output, got %q: %v", buf.String(), err)
	}
	if entry["word"] != "abc" || entry["message"] != "analyzed" {
		t.Errorf("unexpected entry: %v", entry)
	}
}

func TestNewWithWriter_Level(t *testing.T) {
	testCases := []struct {
		level    string
		expected zerolog.Level
	}{
		{level: "debug", expected: zerolog.DebugLevel},
		{level: "warn", expected: zerolog.WarnLevel},
		{level: "", expected: zerolog.InfoLevel},
		{level: "nonsense", expected: zerolog.InfoLevel},
	}

	for _, tc := range testCases {
		t.Run(tc.level, func(t *testing.T) {
			log := NewWithWriter(&bytes.Buffer{}, tc.level, "json")
			if log.GetLevel() != tc.expected {
				t.Errorf("level %q: got %v, want %v", tc.level, log.GetLevel(), tc.expected)
			}
		})
	}
}

func TestNewWithWriter_ConsoleFiltersBelowLevel(t *testing.T) {
	var buf bytes.Buffer
	log := NewWithWriter(&buf, "warn", "console")

	log.Info().Msg("hidden")
	if buf.Len() != 0 {
		t.Errorf("expected info to be filtered, got %q", buf.String())
	}

	log.Warn().Msg("shown")
	if !bytes.Contains(buf.Bytes(), []byte("shown")) {
		t.Errorf("expected warn message, got %q", buf.String())
	}
}
