// Package suggest turns coverage gaps into ordered recommendations and ranks
// category gaps by urgency.
package suggest

import "github.com/blackwell-systems/closetwatch/internal/wardrobe"

// Priority levels for category gaps. Lower is more urgent.
const (
	PriorityCritical = 1
	PriorityHigh     = 2
	PriorityMedium   = 3
	PriorityLow      = 4
)

// GapType describes why a category shows up as a gap.
type GapType string

// Gap types.
const (
	// GapCritical marks a required category with nothing available.
	GapCritical GapType = "critical"
	// GapBottleneck marks the category that limits the winning alternative.
	GapBottleneck GapType = "bottleneck"
	// GapMinor marks any other required category of a short scenario.
	GapMinor GapType = "minor"
)

// CategoryGap is one category-level shortfall within a scenario.
type CategoryGap struct {
	ScenarioID       string            `json:"scenario_id"`
	ScenarioName     string            `json:"scenario_name"`
	Season           wardrobe.Season   `json:"season"`
	Category         wardrobe.Category `json:"category"`
	GapType          GapType           `json:"gap_type"`
	CurrentItemCount int               `json:"current_item_count"`
	GapCount         int               `json:"gap_count"`
	Priority         int               `json:"priority"`
}

// RecommendationContext carries everything the recommendation rules read
// for a single scenario.
type RecommendationContext struct {
	ScenarioName       string
	PossibleOutfits    int
	GapCount           int
	MissingCategories  []wardrobe.Category
	BottleneckCategory wardrobe.Category

	// BlockedAlternatives names, per missing category, the alternatives it
	// blocks in alternative order.
	BlockedAlternatives map[wardrobe.Category][]string

	// AlternativeRecommendations are free-text messages produced while
	// evaluating the scenario's alternatives.
	AlternativeRecommendations []string
}

// Rule examines the context and the recommendations emitted so far, and
// returns new recommendations to append.
type Rule func(ctx *RecommendationContext, existing []string) []string
