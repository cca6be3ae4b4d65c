//go:build !integration

package console

import (
	"strings"
	"testing"
)

func TestFormatMessagesCarryGlyphs(t *testing.T) {
	tests := []struct {
		name   string
		format func(string) string
		glyph  string
	}{
		{"success", FormatSuccessMessage, "✓"},
		{"error", FormatErrorMessage, "✗"},
		{"warning", FormatWarningMessage, "⚠"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			out := tt.format("blueprints/automation/motion.yaml")
			if !strings.Contains(out, tt.glyph) {
				t.Errorf("output %q missing glyph %q", out, tt.glyph)
			}
			if !strings.Contains(out, "blueprints/automation/motion.yaml") {
				t.Errorf("output %q missing message", out)
			}
		})
	}
}

func TestFormatCountSummary(t *testing.T) {
	out := FormatCountSummary(3, 4, "files passed validation")
	if !strings.Contains(out, "3/4 files passed validation") {
		t.Errorf("FormatCountSummary() = %q", out)
	}

	out = FormatCountSummary(4, 4, "files passed validation")
	if !strings.Contains(out, "4/4 files passed validation") {
		t.Errorf("FormatCountSummary() = %q", out)
	}
}

func TestFormatInfoAndVerboseKeepText(t *testing.T) {
	if out := FormatInfoMessage("hello"); !strings.Contains(out, "hello") {
		t.Errorf("FormatInfoMessage() = %q", out)
	}
	if out := FormatVerboseMessage("hello"); !strings.Contains(out, "hello") {
		t.Errorf("FormatVerboseMessage() = %q", out)
	}
}
