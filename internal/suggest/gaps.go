package suggest

import "github.com/blackwell-systems/closetwatch/internal/wardrobe"

// BuildGaps lists the category gaps of one analysis: every required category
// of the winning alternative plus every category missing from any
// alternative. Each gap is classified with ClassifyPriority. Scenarios with
// no gap and no missing category produce nothing.
func BuildGaps(a wardrobe.OutfitAnalysis) []CategoryGap {
	if a.GapCount == 0 && len(a.MissingCategories) == 0 {
		return nil
	}

	missing := make(map[wardrobe.Category]bool, len(a.MissingCategories))
	for _, c := range a.MissingCategories {
		missing[c] = true
	}

	var gaps []CategoryGap
	seen := make(map[wardrobe.Category]bool)
	add := func(c wardrobe.Category, current int) {
		if seen[c] {
			return
		}
		seen[c] = true

		gt := GapMinor
		switch {
		case missing[c]:
			gt = GapCritical
		case c == a.BottleneckCategory:
			gt = GapBottleneck
		}
		gaps = append(gaps, CategoryGap{
			ScenarioID:       a.ScenarioID,
			ScenarioName:     a.ScenarioName,
			Season:           a.Season,
			Category:         c,
			GapType:          gt,
			CurrentItemCount: current,
			GapCount:         a.GapCount,
			Priority:         ClassifyPriority(c, current, a.GapCount, gt),
		})
	}

	for _, alt := range a.Alternatives {
		if alt.Name != a.BestAlternative {
			continue
		}
		for _, av := range alt.Availability {
			add(av.Category, av.Available)
		}
		break
	}
	for _, c := range a.MissingCategories {
		add(c, 0)
	}
	return gaps
}

// CollectGaps builds the gaps of every analysis and ranks them together.
func CollectGaps(analyses []wardrobe.OutfitAnalysis) []CategoryGap {
	var all []CategoryGap
	for _, a := range analyses {
		all = append(all, BuildGaps(a)...)
	}
	return RankGaps(all)
}

// ParseGapType validates a gap type name.
func ParseGapType(s string) (GapType, bool) {
	switch gt := GapType(s); gt {
	case GapCritical, GapBottleneck, GapMinor:
		return gt, true
	}
	return "", false
}
