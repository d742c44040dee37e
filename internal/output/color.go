// Package output provides styled terminal rendering helpers for closetwatch.
package output

import (
	"os"

	"github.com/charmbracelet/lipgloss"
	"github.com/mattn/go-isatty"
)

// Color constants for consistent styling across the CLI.
var (
	ColorPrimary = lipgloss.Color("#b39ddb")
	ColorSuccess = lipgloss.Color("#81c784")
	ColorError   = lipgloss.Color("#e57373")
	ColorWarning = lipgloss.Color("#ffd54f")
	ColorMuted   = lipgloss.Color("#8a8a8a")
)

// Styles provides reusable lipgloss styles.
var (
	// StyleHeader is used for section headers.
	StyleHeader lipgloss.Style
	// StyleSuccess is used for positive values and well-covered scenarios.
	StyleSuccess lipgloss.Style
	// StyleError is used for blocked or poorly-covered scenarios.
	StyleError lipgloss.Style
	// StyleWarning is used for partial coverage.
	StyleWarning lipgloss.Style
	// StyleMuted is used for de-emphasized text.
	StyleMuted lipgloss.Style
	// StyleBold is used for emphasized text.
	StyleBold lipgloss.Style
	// StyleLabel is used for summary labels.
	StyleLabel lipgloss.Style
	// StyleValue is used for summary values.
	StyleValue lipgloss.Style
)

func init() {
	applyStyles(true)
}

// noColor tracks whether color output is disabled.
var noColor bool

// SetNoColor disables or enables color output globally. Package-level
// styles are rebuilt either way, so the call can be reversed.
func SetNoColor(disabled bool) {
	noColor = disabled
	applyStyles(!disabled)
}

func applyStyles(color bool) {
	if !color {
		plain := lipgloss.NewStyle()
		StyleHeader = plain
		StyleSuccess = plain
		StyleError = plain
		StyleWarning = plain
		StyleMuted = plain
		StyleBold = plain
		StyleLabel = plain.Width(26)
		StyleValue = plain.Width(10)
		return
	}
	StyleHeader = lipgloss.NewStyle().Foreground(ColorPrimary).Bold(true)
	StyleSuccess = lipgloss.NewStyle().Foreground(ColorSuccess)
	StyleError = lipgloss.NewStyle().Foreground(ColorError)
	StyleWarning = lipgloss.NewStyle().Foreground(ColorWarning)
	StyleMuted = lipgloss.NewStyle().Foreground(ColorMuted)
	StyleBold = lipgloss.NewStyle().Bold(true)
	StyleLabel = lipgloss.NewStyle().Width(26)
	StyleValue = lipgloss.NewStyle().Bold(true).Width(10)
}

// IsNoColor returns whether color output is currently disabled.
func IsNoColor() bool {
	return noColor
}

// DetectColor decides whether to style output: color must be enabled in
// config, not disabled by flag or NO_COLOR, and stdout must be a terminal.
func DetectColor(configured, noColorFlag bool) bool {
	if noColorFlag || !configured {
		return false
	}
	if _, ok := os.LookupEnv("NO_COLOR"); ok {
		return false
	}
	fd := os.Stdout.Fd()
	return isatty.IsTerminal(fd) || isatty.IsCygwinTerminal(fd)
}
