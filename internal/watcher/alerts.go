package watcher

import (
	"fmt"
	"time"

	"github.com/blackwell-systems/closetwatch/internal/coverage"
	"github.com/blackwell-systems/closetwatch/internal/wardrobe"
)

func analysisKey(a wardrobe.OutfitAnalysis) string {
	return a.ScenarioID + "/" + string(a.Season)
}

func label(a wardrobe.OutfitAnalysis) string {
	return fmt.Sprintf("%s (%s)", a.ScenarioName, a.Season)
}

// Compare detects notable changes between two reports. Alerts come back
// critical first, then warnings, then info, each in scenario order.
// Scenario and season pairs that disappear are reported after the rest.
func Compare(prev, curr *coverage.Report, th coverage.Thresholds) []Alert {
	now := time.Now()
	before := make(map[string]wardrobe.OutfitAnalysis, len(prev.Analyses))
	for _, a := range prev.Analyses {
		before[analysisKey(a)] = a
	}

	after := make(map[string]bool, len(curr.Analyses))
	var critical, warning, info []Alert
	for _, c := range curr.Analyses {
		after[analysisKey(c)] = true
		p, existed := before[analysisKey(c)]
		if !existed {
			info = append(info, Alert{
				Level:   LevelInfo,
				Title:   "New scenario: " + label(c),
				Message: fmt.Sprintf("%d of %d outfits (%d%%)", c.PossibleOutfits, c.TargetQuantity, c.CoveragePercent),
				Time:    now,
			})
			continue
		}

		for _, cat := range newlyMissing(p.MissingCategories, c.MissingCategories) {
			critical = append(critical, Alert{
				Level:   LevelCritical,
				Title:   "Blocked: " + label(c),
				Message: fmt.Sprintf("No %s items left for this scenario", cat),
				Time:    now,
			})
		}

		if p.CoveragePercent >= th.PoorlyCovered && c.CoveragePercent < th.PoorlyCovered {
			critical = append(critical, Alert{
				Level:   LevelCritical,
				Title:   "Poorly covered: " + label(c),
				Message: fmt.Sprintf("Coverage fell to %d%% (was %d%%)", c.CoveragePercent, p.CoveragePercent),
				Time:    now,
			})
			continue
		}

		switch {
		case c.CoveragePercent < p.CoveragePercent:
			warning = append(warning, Alert{
				Level:   LevelWarning,
				Title:   "Coverage dropped: " + label(c),
				Message: fmt.Sprintf("%d%% → %d%% (%d of %d outfits)", p.CoveragePercent, c.CoveragePercent, c.PossibleOutfits, c.TargetQuantity),
				Time:    now,
			})
		case p.CoveragePercent < th.WellCovered && c.CoveragePercent >= th.WellCovered:
			info = append(info, Alert{
				Level:   LevelInfo,
				Title:   "Well covered: " + label(c),
				Message: fmt.Sprintf("Coverage reached %d%%", c.CoveragePercent),
				Time:    now,
			})
		case c.CoveragePercent > p.CoveragePercent:
			info = append(info, Alert{
				Level:   LevelInfo,
				Title:   "Coverage improved: " + label(c),
				Message: fmt.Sprintf("%d%% → %d%%", p.CoveragePercent, c.CoveragePercent),
				Time:    now,
			})
		}
	}

	for _, p := range prev.Analyses {
		if after[analysisKey(p)] {
			continue
		}
		info = append(info, Alert{
			Level:   LevelInfo,
			Title:   "Scenario removed: " + label(p),
			Message: fmt.Sprintf("Was %d of %d outfits (%d%%)", p.PossibleOutfits, p.TargetQuantity, p.CoveragePercent),
			Time:    now,
		})
	}

	alerts := append(critical, warning...)
	return append(alerts, info...)
}

// newlyMissing returns categories in curr that were not in prev.
func newlyMissing(prev, curr []wardrobe.Category) []wardrobe.Category {
	had := make(map[wardrobe.Category]bool, len(prev))
	for _, c := range prev {
		had[c] = true
	}
	var out []wardrobe.Category
	for _, c := range curr {
		if !had[c] {
			out = append(out, c)
		}
	}
	return out
}
