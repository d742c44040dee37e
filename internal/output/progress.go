package output

import (
	"fmt"
	"strings"
)

// CoverageBar renders a progress bar for a coverage percentage. Values above
// 100 fill the bar and keep their printed value.
// Example: "████████░░ 80%"
func CoverageBar(percent, width int) string {
	if width <= 0 {
		width = 20
	}
	filled := percent * width / 100
	if filled > width {
		filled = width
	}
	if filled < 0 {
		filled = 0
	}

	bar := strings.Repeat("█", filled) + strings.Repeat("░", width-filled)
	return fmt.Sprintf("%s %s", CoverageStyle(percent, bar), StyleMuted.Render(fmt.Sprintf("%d%%", percent)))
}

// CoverageStyle colors s by coverage band: green from 80, yellow from 50,
// red below.
func CoverageStyle(percent int, s string) string {
	switch {
	case percent >= 80:
		return StyleSuccess.Render(s)
	case percent >= 50:
		return StyleWarning.Render(s)
	default:
		return StyleError.Render(s)
	}
}

// TrendArrowPercent returns a styled trend indicator for a percentage-point
// delta. Positive delta shows an up arrow, negative shows down, zero a dash.
func TrendArrowPercent(delta int, higherIsBetter bool) string {
	if delta == 0 {
		return StyleMuted.Render("─")
	}

	isPositive := delta > 0
	isImproved := isPositive == higherIsBetter

	var arrow string
	if isPositive {
		arrow = fmt.Sprintf("▲ +%d%%", delta)
	} else {
		arrow = fmt.Sprintf("▼ %d%%", delta)
	}

	if isImproved {
		return StyleSuccess.Render(arrow)
	}
	return StyleError.Render(arrow)
}

// TrendArrowCount is TrendArrowPercent for plain counts.
func TrendArrowCount(delta int, higherIsBetter bool) string {
	if delta == 0 {
		return StyleMuted.Render("─")
	}
	arrow := fmt.Sprintf("▼ %d", delta)
	if delta > 0 {
		arrow = fmt.Sprintf("▲ +%d", delta)
	}
	if (delta > 0) == higherIsBetter {
		return StyleSuccess.Render(arrow)
	}
	return StyleError.Render(arrow)
}

// PriorityBadge renders a gap priority label.
func PriorityBadge(priority int, label string) string {
	switch priority {
	case 1:
		return StyleError.Bold(true).Render(label)
	case 2:
		return StyleWarning.Render(label)
	case 3:
		return StyleHeader.Render(label)
	default:
		return StyleMuted.Render(label)
	}
}

// Section returns a styled section header with a horizontal rule.
func Section(title string) string {
	header := StyleHeader.Render(title)
	rule := StyleMuted.Render(strings.Repeat("─", 66))
	return fmt.Sprintf("\n %s\n %s", header, rule)
}
