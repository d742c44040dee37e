package coverage

import (
	"errors"
	"fmt"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/blackwell-systems/closetwatch/internal/suggest"
	"github.com/blackwell-systems/closetwatch/internal/wardrobe"
)

func TestEvaluate_BottleneckScenario(t *testing.T) {
	all := wardrobeOf(
		items(wardrobe.CategoryTop, 3),
		items(wardrobe.CategoryBottom, 2),
		items(wardrobe.CategoryFootwear, 1),
	)
	report, err := Evaluate(all, []wardrobe.OutfitRequirement{officeRequirement(5, basicAlternative("Business formal"))})
	require.NoError(t, err)
	require.Len(t, report.Analyses, 1)

	a := report.Analyses[0]
	assert.Equal(t, 1, a.PossibleOutfits)
	assert.Equal(t, wardrobe.CategoryFootwear, a.BottleneckCategory)
	assert.Equal(t, 20, a.CoveragePercent)
	assert.Equal(t, 4, a.GapCount)
	assert.Equal(t, "Business formal", a.BestAlternative)
	require.Len(t, a.Combinations, 1)
	assert.True(t, a.Combinations[0].Complete)

	found := false
	for _, r := range a.Recommendations {
		if strings.Contains(r, "Add 3 more footwear") {
			found = true
		}
	}
	assert.True(t, found, "expected an add-3-footwear recommendation, got %v", a.Recommendations)
	assert.LessOrEqual(t, len(a.Recommendations), 5)
}

func TestEvaluate_MissingCategoryBlocksEverything(t *testing.T) {
	all := wardrobeOf(
		items(wardrobe.CategoryTop, 20),
		items(wardrobe.CategoryBottom, 20),
	)
	report, err := Evaluate(all, []wardrobe.OutfitRequirement{officeRequirement(5, basicAlternative("Business formal"))})
	require.NoError(t, err)

	a := report.Analyses[0]
	assert.Equal(t, 0, a.PossibleOutfits)
	assert.Equal(t, []wardrobe.Category{wardrobe.CategoryFootwear}, a.MissingCategories)
	assert.Empty(t, a.Combinations)
	assert.NotNil(t, a.Combinations)
	require.NotEmpty(t, a.Recommendations)
	assert.Contains(t, a.Recommendations[0], "footwear")
}

func TestEvaluate_UntaggedItemsApplyToEveryScenario(t *testing.T) {
	all := []wardrobe.Item{
		{ID: "shirt", Category: wardrobe.CategoryTop},
		{ID: "chinos", Category: wardrobe.CategoryBottom},
		{ID: "loafers", Category: wardrobe.CategoryFootwear},
	}
	report, err := Evaluate(all, []wardrobe.OutfitRequirement{officeRequirement(1, basicAlternative("Business formal"))})
	require.NoError(t, err)

	a := report.Analyses[0]
	assert.Equal(t, 1, a.PossibleOutfits)
	assert.Empty(t, a.MissingCategories)
	assert.Equal(t, 100, a.CoveragePercent)
}

func TestEvaluate_MissingCategoryReportedOnce(t *testing.T) {
	all := wardrobeOf(
		items(wardrobe.CategoryTop, 3),
		items(wardrobe.CategoryBottom, 3),
	)
	smart := basicAlternative("Smart casual")
	report, err := Evaluate(all, []wardrobe.OutfitRequirement{officeRequirement(5, basicAlternative("Business formal"), smart)})
	require.NoError(t, err)

	a := report.Analyses[0]
	mentions := 0
	for _, r := range a.Recommendations {
		if strings.Contains(r, "footwear") {
			mentions++
		}
	}
	assert.Equal(t, 1, mentions, "footwear should be reported once: %v", a.Recommendations)
	assert.Contains(t, a.Recommendations[0], suggest.BlockedMessage(wardrobe.CategoryFootwear, "Business formal"))
	assert.Contains(t, a.Recommendations[0], suggest.BlockedMessage(wardrobe.CategoryFootwear, "Smart casual"))

	for _, r := range a.Recommendations {
		assert.NotContains(t, r, "go from 0 to", "no projection while footwear is missing")
	}
	assert.Equal(t, "5 more outfits needed for Office Work", a.Recommendations[len(a.Recommendations)-1])
}

func TestEvaluate_UnionOfMissingAcrossAlternatives(t *testing.T) {
	all := wardrobeOf(
		items(wardrobe.CategoryTop, 2),
		items(wardrobe.CategoryBottom, 2),
		items(wardrobe.CategoryFootwear, 2),
	)
	dress := wardrobe.OutfitAlternative{
		Name: "Dress",
		Required: []wardrobe.CategoryRequirement{
			{Category: wardrobe.CategoryOnePiece, Quantity: 1},
			{Category: wardrobe.CategoryFootwear, Quantity: 1},
		},
	}
	report, err := Evaluate(all, []wardrobe.OutfitRequirement{officeRequirement(2, dress, basicAlternative("Business formal"))})
	require.NoError(t, err)

	a := report.Analyses[0]
	assert.Equal(t, "Business formal", a.BestAlternative)
	assert.Equal(t, 2, a.PossibleOutfits)
	assert.Equal(t, []wardrobe.Category{wardrobe.CategoryOnePiece}, a.MissingCategories)
	// Gap is zero, so the only recommendation is the affirmative one.
	assert.Equal(t, []string{suggest.SufficientMessage("Office Work")}, a.Recommendations)
}

func TestEvaluate_WinnerRespectsPerCategoryBound(t *testing.T) {
	all := wardrobeOf(
		items(wardrobe.CategoryTop, 9),
		items(wardrobe.CategoryBottom, 4),
		items(wardrobe.CategoryFootwear, 5),
	)
	alt := wardrobe.OutfitAlternative{
		Name: "Layered",
		Required: []wardrobe.CategoryRequirement{
			{Category: wardrobe.CategoryTop, Quantity: 3},
			{Category: wardrobe.CategoryBottom, Quantity: 1},
			{Category: wardrobe.CategoryFootwear, Quantity: 2},
		},
	}
	report, err := Evaluate(all, []wardrobe.OutfitRequirement{officeRequirement(10, alt)})
	require.NoError(t, err)

	a := report.Analyses[0]
	idx := NewIndex(all, "office", wardrobe.SeasonWinter)
	for _, req := range alt.Required {
		assert.LessOrEqual(t, a.PossibleOutfits, len(idx.AvailableFor(req))/req.Quantity)
	}
	assert.Equal(t, 2, a.PossibleOutfits)
}

func TestEvaluate_InvalidQuantityIsFatal(t *testing.T) {
	bad := wardrobe.OutfitAlternative{
		Name:     "Broken",
		Required: []wardrobe.CategoryRequirement{{Category: wardrobe.CategoryTop, Quantity: 0}},
	}
	rec := &MemoryRecorder{}
	engine := NewEngine(Options{Recorder: rec})

	_, err := engine.Evaluate(items(wardrobe.CategoryTop, 3), []wardrobe.OutfitRequirement{
		officeRequirement(3, basicAlternative("Fine")),
		officeRequirement(3, bad),
	})
	require.Error(t, err)
	assert.True(t, errors.Is(err, wardrobe.ErrInvalidQuantity))
	assert.Empty(t, rec.Events(), "no scenario should be evaluated after a configuration error")
}

func TestEvaluate_EmptyInputs(t *testing.T) {
	report, err := Evaluate(nil, nil)
	require.NoError(t, err)
	assert.Empty(t, report.Analyses)
	assert.Equal(t, 0, report.Summary.OverallCoveragePercent)
	assert.Equal(t, 0, report.Summary.TotalTargets)

	report, err = Evaluate(nil, []wardrobe.OutfitRequirement{officeRequirement(3, basicAlternative("Business formal"))})
	require.NoError(t, err)
	assert.Equal(t, 0, report.Analyses[0].PossibleOutfits)
	assert.Len(t, report.Analyses[0].MissingCategories, 3)
}

func TestEvaluate_ZeroTargetIsNotAnError(t *testing.T) {
	all := wardrobeOf(
		items(wardrobe.CategoryTop, 1),
		items(wardrobe.CategoryBottom, 1),
		items(wardrobe.CategoryFootwear, 1),
	)
	report, err := Evaluate(all, []wardrobe.OutfitRequirement{officeRequirement(0, basicAlternative("Business formal"))})
	require.NoError(t, err)
	a := report.Analyses[0]
	assert.Equal(t, 0, a.CoveragePercent)
	assert.Equal(t, 0, a.GapCount)
	assert.Equal(t, []string{suggest.SufficientMessage("Office Work")}, a.Recommendations)
}

func TestEvaluate_ParallelPreservesOrder(t *testing.T) {
	var reqs []wardrobe.OutfitRequirement
	var all []wardrobe.Item
	for i := 0; i < 20; i++ {
		id := fmt.Sprintf("scenario-%02d", i)
		reqs = append(reqs, wardrobe.OutfitRequirement{
			ScenarioID:     id,
			ScenarioName:   id,
			Season:         wardrobe.SeasonSummer,
			TargetQuantity: 10,
			Alternatives: []wardrobe.OutfitAlternative{{
				Name:     "Tee",
				Required: []wardrobe.CategoryRequirement{{Category: wardrobe.CategoryTop, Quantity: 1}},
			}},
		})
		for j := 0; j < i%7; j++ {
			all = append(all, wardrobe.Item{
				ID:          fmt.Sprintf("%s-top-%d", id, j),
				Category:    wardrobe.CategoryTop,
				ScenarioIDs: []string{id},
			})
		}
	}

	sequential, err := NewEngine(Options{Workers: 1}).Evaluate(all, reqs)
	require.NoError(t, err)
	parallel, err := NewEngine(Options{Workers: 8}).Evaluate(all, reqs)
	require.NoError(t, err)

	assert.Equal(t, sequential, parallel)
	for i, a := range parallel.Analyses {
		assert.Equal(t, reqs[i].ScenarioID, a.ScenarioID)
		assert.Equal(t, i%7, a.PossibleOutfits)
	}
}

func TestEvaluate_RecordsEvents(t *testing.T) {
	rec := &MemoryRecorder{}
	engine := NewEngine(Options{Recorder: rec, Workers: 2})

	dress := wardrobe.OutfitAlternative{
		Name:     "Dress",
		Required: []wardrobe.CategoryRequirement{{Category: wardrobe.CategoryOnePiece, Quantity: 1}},
	}
	_, err := engine.Evaluate(items(wardrobe.CategoryTop, 2), []wardrobe.OutfitRequirement{
		officeRequirement(2, basicAlternative("Business formal"), dress),
		officeRequirement(1, dress),
	})
	require.NoError(t, err)

	assert.Equal(t, 3, rec.Count(EventAlternativeEvaluated))
	assert.Equal(t, 2, rec.Count(EventScenarioEvaluated))
	assert.Equal(t, 1, rec.Count(EventCoverageSummarized))

	events := rec.Events()
	last := events[len(events)-1]
	assert.Equal(t, EventCoverageSummarized, last.Event)
	summary, ok := last.Payload.(SummaryEvent)
	require.True(t, ok)
	assert.Equal(t, 2, summary.Scenarios)
}

func TestEngineAnalyze_SingleScenario(t *testing.T) {
	engine := NewEngine(Options{MaxCombinations: 2})
	all := wardrobeOf(
		items(wardrobe.CategoryTop, 5),
		items(wardrobe.CategoryBottom, 5),
		items(wardrobe.CategoryFootwear, 5),
	)
	a, err := engine.Analyze(all, officeRequirement(8, basicAlternative("Business formal")))
	require.NoError(t, err)
	assert.Equal(t, 5, a.PossibleOutfits)
	assert.Len(t, a.Combinations, 2)
	assert.Equal(t, 63, a.CoveragePercent)
}

func TestEvaluate_RecommendationsAlwaysBounded(t *testing.T) {
	var alts []wardrobe.OutfitAlternative
	for _, c := range wardrobe.Categories {
		alts = append(alts, wardrobe.OutfitAlternative{
			Name:     "Only " + string(c),
			Required: []wardrobe.CategoryRequirement{{Category: c, Quantity: 1}},
		})
	}
	report, err := Evaluate(nil, []wardrobe.OutfitRequirement{officeRequirement(12, alts...)})
	require.NoError(t, err)
	a := report.Analyses[0]
	assert.Len(t, a.Recommendations, 5)
	assert.Len(t, a.MissingCategories, len(wardrobe.Categories))
}
