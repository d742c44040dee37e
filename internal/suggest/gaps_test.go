package suggest

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/blackwell-systems/closetwatch/internal/wardrobe"
)

func officeAnalysis() wardrobe.OutfitAnalysis {
	return wardrobe.OutfitAnalysis{
		ScenarioID:         "office",
		ScenarioName:       "Office Work",
		Season:             wardrobe.SeasonWinter,
		TargetQuantity:     5,
		PossibleOutfits:    1,
		GapCount:           4,
		BestAlternative:    "Business formal",
		BottleneckCategory: wardrobe.CategoryFootwear,
		MissingCategories:  []wardrobe.Category{wardrobe.CategoryOnePiece},
		Alternatives: []wardrobe.AlternativeResult{
			{
				Name:              "Dress",
				MissingCategories: []wardrobe.Category{wardrobe.CategoryOnePiece},
				Availability: []wardrobe.CategoryAvailability{
					{Category: wardrobe.CategoryOnePiece, Quantity: 1},
				},
			},
			{
				Name:               "Business formal",
				PossibleOutfits:    1,
				BottleneckCategory: wardrobe.CategoryFootwear,
				Availability: []wardrobe.CategoryAvailability{
					{Category: wardrobe.CategoryTop, Quantity: 1, Available: 3, Possible: 3},
					{Category: wardrobe.CategoryBottom, Quantity: 1, Available: 2, Possible: 2},
					{Category: wardrobe.CategoryFootwear, Quantity: 1, Available: 1, Possible: 1},
				},
			},
		},
	}
}

func TestBuildGaps(t *testing.T) {
	gaps := BuildGaps(officeAnalysis())
	require.Len(t, gaps, 4)

	byCategory := make(map[wardrobe.Category]CategoryGap)
	for _, g := range gaps {
		byCategory[g.Category] = g
		assert.Equal(t, "office", g.ScenarioID)
		assert.Equal(t, 4, g.GapCount)
	}

	assert.Equal(t, GapCritical, byCategory[wardrobe.CategoryOnePiece].GapType)
	assert.Equal(t, PriorityCritical, byCategory[wardrobe.CategoryOnePiece].Priority)

	assert.Equal(t, GapBottleneck, byCategory[wardrobe.CategoryFootwear].GapType)
	assert.Equal(t, PriorityHigh, byCategory[wardrobe.CategoryFootwear].Priority)

	// Tops with a gap above 3 are high priority.
	assert.Equal(t, PriorityHigh, byCategory[wardrobe.CategoryTop].Priority)
	assert.Equal(t, 3, byCategory[wardrobe.CategoryTop].CurrentItemCount)
}

func TestBuildGaps_FullyCovered(t *testing.T) {
	a := officeAnalysis()
	a.GapCount = 0
	a.MissingCategories = nil
	assert.Nil(t, BuildGaps(a))
}

func TestRankGaps(t *testing.T) {
	in := []CategoryGap{
		{Category: wardrobe.CategoryTop, Priority: PriorityMedium, GapCount: 2},
		{Category: wardrobe.CategoryFootwear, Priority: PriorityHigh, GapCount: 1},
		{Category: wardrobe.CategoryBottom, Priority: PriorityMedium, GapCount: 5},
		{Category: wardrobe.CategoryOnePiece, Priority: PriorityCritical, GapCount: 0},
		{Category: wardrobe.CategoryAccessory, Priority: PriorityMedium, GapCount: 2},
	}
	ranked := RankGaps(in)

	got := make([]wardrobe.Category, len(ranked))
	for i, g := range ranked {
		got[i] = g.Category
	}
	assert.Equal(t, []wardrobe.Category{
		wardrobe.CategoryOnePiece,
		wardrobe.CategoryFootwear,
		wardrobe.CategoryBottom,
		wardrobe.CategoryTop,
		wardrobe.CategoryAccessory,
	}, got)

	assert.Equal(t, wardrobe.CategoryTop, in[0].Category, "RankGaps mutated its input")
}

func TestRankGaps_Empty(t *testing.T) {
	assert.Empty(t, RankGaps(nil))
}

func TestCollectGaps(t *testing.T) {
	covered := officeAnalysis()
	covered.ScenarioID = "gym"
	covered.GapCount = 0
	covered.MissingCategories = nil

	gaps := CollectGaps([]wardrobe.OutfitAnalysis{covered, officeAnalysis()})
	require.Len(t, gaps, 4)
	assert.Equal(t, wardrobe.CategoryOnePiece, gaps[0].Category)
	for _, g := range gaps {
		assert.Equal(t, "office", g.ScenarioID)
	}
}

func TestParseGapType(t *testing.T) {
	gt, ok := ParseGapType("bottleneck")
	assert.True(t, ok)
	assert.Equal(t, GapBottleneck, gt)

	_, ok = ParseGapType("severe")
	assert.False(t, ok)
}
