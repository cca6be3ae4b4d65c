// Package console provides styled terminal output helpers: glyph-prefixed
// status messages and summary lines for the check drivers.
package console

import (
	"fmt"

	"github.com/charmbracelet/lipgloss"
)

var (
	successStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("10")) // green
	errorStyle   = lipgloss.NewStyle().Foreground(lipgloss.Color("9"))  // red
	warningStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("11")) // yellow
	infoStyle    = lipgloss.NewStyle().Foreground(lipgloss.Color("12")) // blue
	verboseStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("8"))  // gray
)

// FormatSuccessMessage formats a message with a green checkmark glyph.
func FormatSuccessMessage(msg string) string {
	return successStyle.Render("✓ " + msg)
}

// FormatErrorMessage formats a message with a red cross glyph.
func FormatErrorMessage(msg string) string {
	return errorStyle.Render("✗ " + msg)
}

// FormatWarningMessage formats a message with a yellow warning glyph.
func FormatWarningMessage(msg string) string {
	return warningStyle.Render("⚠ " + msg)
}

// FormatInfoMessage formats an informational message.
func FormatInfoMessage(msg string) string {
	return infoStyle.Render(msg)
}

// FormatVerboseMessage formats a low-priority diagnostic message.
func FormatVerboseMessage(msg string) string {
	return verboseStyle.Render(msg)
}

// FormatCountSummary renders the final per-check summary line, e.g.
// "12/14 files passed validation".
func FormatCountSummary(passed, total int, what string) string {
	line := fmt.Sprintf("%d/%d %s", passed, total, what)
	if passed == total {
		return successStyle.Render(line)
	}
	return errorStyle.Render(line)
}
