package coverage

import (
	"fmt"

	"golang.org/x/sync/errgroup"

	"github.com/blackwell-systems/closetwatch/internal/suggest"
	"github.com/blackwell-systems/closetwatch/internal/wardrobe"
)

// Report is the full result of a coverage evaluation.
type Report struct {
	Analyses []wardrobe.OutfitAnalysis `json:"analyses"`
	Summary  wardrobe.CoverageSummary  `json:"summary"`
}

// Options tunes an Engine. Zero values fall back to the defaults.
type Options struct {
	MaxCombinations    int
	MaxRecommendations int
	Workers            int
	Thresholds         Thresholds
	Recorder           Recorder
}

// Engine evaluates wardrobe coverage for a list of outfit requirements.
type Engine struct {
	maxCombinations int
	workers         int
	thresholds      Thresholds
	recorder        Recorder
	recommender     *suggest.Generator
}

// NewEngine creates an engine from opts.
func NewEngine(opts Options) *Engine {
	e := &Engine{
		maxCombinations: opts.MaxCombinations,
		workers:         opts.Workers,
		thresholds:      opts.Thresholds,
		recorder:        opts.Recorder,
		recommender:     suggest.NewGenerator(opts.MaxRecommendations),
	}
	if e.maxCombinations <= 0 {
		e.maxCombinations = DefaultMaxCombinations
	}
	if e.workers <= 0 {
		e.workers = 1
	}
	if e.thresholds == (Thresholds{}) {
		e.thresholds = DefaultThresholds
	}
	if e.recorder == nil {
		e.recorder = NopRecorder{}
	}
	return e
}

// Evaluate runs the engine with default options.
func Evaluate(items []wardrobe.Item, requirements []wardrobe.OutfitRequirement) (*Report, error) {
	return NewEngine(Options{}).Evaluate(items, requirements)
}

// Evaluate validates every requirement, analyzes each scenario, and
// aggregates the results. Analyses come back in requirement order even when
// scenarios are evaluated concurrently. A requirement with a non-positive
// quantity fails the whole call before any scenario is evaluated.
func (e *Engine) Evaluate(items []wardrobe.Item, requirements []wardrobe.OutfitRequirement) (*Report, error) {
	for _, req := range requirements {
		if err := req.Validate(); err != nil {
			return nil, fmt.Errorf("validating requirements: %w", err)
		}
	}

	analyses := make([]wardrobe.OutfitAnalysis, len(requirements))

	var g errgroup.Group
	g.SetLimit(e.workers)
	for i, req := range requirements {
		g.Go(func() error {
			analyses[i] = e.analyze(items, req)
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return nil, err
	}

	summary := Aggregate(analyses, e.thresholds)
	e.recorder.Record(EventCoverageSummarized, SummaryEvent{
		Scenarios:              len(analyses),
		OverallCoveragePercent: summary.OverallCoveragePercent,
		TotalGaps:              summary.TotalGaps,
	})

	return &Report{Analyses: analyses, Summary: summary}, nil
}

// Analyze evaluates a single scenario with the engine's settings.
func (e *Engine) Analyze(items []wardrobe.Item, req wardrobe.OutfitRequirement) (wardrobe.OutfitAnalysis, error) {
	if err := req.Validate(); err != nil {
		return wardrobe.OutfitAnalysis{}, err
	}
	return e.analyze(items, req), nil
}

func (e *Engine) analyze(items []wardrobe.Item, req wardrobe.OutfitRequirement) wardrobe.OutfitAnalysis {
	idx := NewIndex(items, req.ScenarioID, req.Season)

	results := make([]wardrobe.AlternativeResult, len(req.Alternatives))
	for i, alt := range req.Alternatives {
		results[i] = EvaluateAlternative(idx, alt)
		e.recorder.Record(EventAlternativeEvaluated, AlternativeEvent{
			ScenarioID:      req.ScenarioID,
			Season:          string(req.Season),
			Alternative:     alt.Name,
			PossibleOutfits: results[i].PossibleOutfits,
			Bottleneck:      string(results[i].BottleneckCategory),
			Missing:         len(results[i].MissingCategories),
		})
	}

	sel := SelectBest(results)

	a := wardrobe.OutfitAnalysis{
		ScenarioID:         req.ScenarioID,
		ScenarioName:       req.ScenarioName,
		Season:             req.Season,
		TargetQuantity:     req.TargetQuantity,
		PossibleOutfits:    sel.PossibleOutfits,
		CoveragePercent:    Percent(sel.PossibleOutfits, req.TargetQuantity),
		GapCount:           Gap(sel.PossibleOutfits, req.TargetQuantity),
		BottleneckCategory: sel.BottleneckCategory,
		MissingCategories:  sel.MissingCategories,
		Combinations:       []wardrobe.OutfitCombination{},
		Alternatives:       results,
	}
	if sel.Best >= 0 {
		winner := req.Alternatives[sel.Best]
		a.BestAlternative = winner.Name
		a.Combinations = Combinations(idx, winner, sel.PossibleOutfits, e.maxCombinations)
	}

	a.Recommendations = e.recommender.Generate(&suggest.RecommendationContext{
		ScenarioName:               req.ScenarioName,
		PossibleOutfits:            a.PossibleOutfits,
		GapCount:                   a.GapCount,
		MissingCategories:          a.MissingCategories,
		BottleneckCategory:         a.BottleneckCategory,
		BlockedAlternatives:        blockedAlternatives(results),
		AlternativeRecommendations: sel.Recommendations,
	})

	e.recorder.Record(EventScenarioEvaluated, ScenarioEvent{
		ScenarioID:      req.ScenarioID,
		Season:          string(req.Season),
		PossibleOutfits: a.PossibleOutfits,
		TargetQuantity:  a.TargetQuantity,
		CoveragePercent: a.CoveragePercent,
		IndexedItems:    idx.Count(),
	})
	return a
}

// blockedAlternatives maps each missing category to the alternatives it
// blocks.
func blockedAlternatives(results []wardrobe.AlternativeResult) map[wardrobe.Category][]string {
	blocked := make(map[wardrobe.Category][]string)
	for _, r := range results {
		for _, c := range r.MissingCategories {
			blocked[c] = append(blocked[c], r.Name)
		}
	}
	return blocked
}
