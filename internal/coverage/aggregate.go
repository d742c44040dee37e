package coverage

import "github.com/blackwell-systems/closetwatch/internal/wardrobe"

// Thresholds controls how scenarios are classified in the summary.
type Thresholds struct {
	// WellCovered is the inclusive lower bound for a well-covered scenario.
	WellCovered int `json:"well_covered"`
	// PoorlyCovered is the exclusive upper bound for a poorly-covered scenario.
	PoorlyCovered int `json:"poorly_covered"`
	// DigestPerScenario is how many recommendations each poorly-covered
	// scenario contributes to the digest.
	DigestPerScenario int `json:"digest_per_scenario"`
	// DigestSize caps the digest.
	DigestSize int `json:"digest_size"`
}

// DefaultThresholds are the reference classification bounds.
var DefaultThresholds = Thresholds{
	WellCovered:       80,
	PoorlyCovered:     50,
	DigestPerScenario: 2,
	DigestSize:        3,
}

// Aggregate rolls per-scenario analyses into a portfolio summary. The overall
// percentage is clamped to [0, 100]; it is 0 when there are no targets.
func Aggregate(analyses []wardrobe.OutfitAnalysis, th Thresholds) wardrobe.CoverageSummary {
	sum := wardrobe.CoverageSummary{
		WellCovered:        []string{},
		PoorlyCovered:      []string{},
		TopRecommendations: []string{},
	}

	var digest []string
	for _, a := range analyses {
		sum.TotalTargets += a.TargetQuantity
		sum.TotalCurrent += a.PossibleOutfits
		sum.TotalGaps += Gap(a.PossibleOutfits, a.TargetQuantity)

		switch {
		case a.CoveragePercent >= th.WellCovered:
			sum.WellCovered = append(sum.WellCovered, a.ScenarioName)
		case a.CoveragePercent < th.PoorlyCovered:
			sum.PoorlyCovered = append(sum.PoorlyCovered, a.ScenarioName)
			recs := a.Recommendations
			if len(recs) > th.DigestPerScenario {
				recs = recs[:th.DigestPerScenario]
			}
			digest = append(digest, recs...)
		}
	}

	sum.OverallCoveragePercent = min(100, max(0, Percent(sum.TotalCurrent, sum.TotalTargets)))

	if len(digest) > th.DigestSize {
		digest = digest[:th.DigestSize]
	}
	sum.TopRecommendations = append(sum.TopRecommendations, digest...)
	return sum
}
