package database

import "testing"

func TestConfig_ConnectionString(t *testing.T) {
	testCases := []struct {
		name     string
		config   Config
		expected string
	}{
		{
			name:     "explicit ssl mode",
			config:   Config{Host: "db", Port: "5432", User: "word", Password: "secret", Database: "words", SSLMode: "require"},
			expected: "postgresql://word:secret@db:5432/words?sslmode=require",
		},
		{
			name:     "default ssl mode",
			config:   Config{Host: "localhost", Port: "5433", User: "u", Password: "p", Database: "d"},
			expected: "postgresql://u:p@localhost:5433/d?sslmode=disable",
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			if got := tc.config.ConnectionString(); got != tc.expected {
				t.Errorf("ConnectionString() = %q, want %q", got, tc.expected)
			}
		})
	}
}
