//go:build !integration

package logger

import (
	"testing"
	"time"
)

func TestMatchPattern(t *testing.T) {
	tests := []struct {
		namespace string
		pattern   string
		expected  bool
	}{
		{"cli:validate", "*", true},
		{"cli:validate", "cli:validate", true},
		{"cli:validate", "cli:*", true},
		{"cli:validate", "*:validate", true},
		{"cli:validate", "cli:*ate", true},
		{"cli:validate", "parser:*", false},
		{"cli:validate", "", false},
		{"cli:validate", "cli", false},
	}

	for _, tt := range tests {
		if got := matchPattern(tt.namespace, tt.pattern); got != tt.expected {
			t.Errorf("matchPattern(%q, %q) = %v, want %v", tt.namespace, tt.pattern, got, tt.expected)
		}
	}
}

func TestFormatDuration(t *testing.T) {
	tests := []struct {
		d        time.Duration
		expected string
	}{
		{500 * time.Microsecond, "0ms"},
		{12 * time.Millisecond, "12ms"},
		{1500 * time.Millisecond, "1.5s"},
		{3 * time.Minute, "3m"},
	}

	for _, tt := range tests {
		if got := formatDuration(tt.d); got != tt.expected {
			t.Errorf("formatDuration(%v) = %q, want %q", tt.d, got, tt.expected)
		}
	}
}

func TestDisabledLoggerIsSilent(t *testing.T) {
	// Loggers are disabled unless DEBUG matches the namespace; emitting on a
	// disabled logger must be a no-op.
	log := New("test:silent")
	if log.Enabled() {
		t.Skip("DEBUG enables this namespace in the test environment")
	}
	log.Print("dropped")
	log.Printf("dropped %d", 1)
}
