// Package wardrobe defines the clothing inventory and outfit requirement model
// shared by the coverage engine, the catalogue loader, and the CLI.
package wardrobe

// Category is the single clothing category an item belongs to.
type Category string

// The closed set of clothing categories.
const (
	CategoryTop       Category = "top"
	CategoryBottom    Category = "bottom"
	CategoryOnePiece  Category = "one-piece"
	CategoryOuterwear Category = "outerwear"
	CategoryFootwear  Category = "footwear"
	CategoryAccessory Category = "accessory"
	CategoryOther     Category = "other"
)

// Categories lists every valid category in display order.
var Categories = []Category{
	CategoryTop,
	CategoryBottom,
	CategoryOnePiece,
	CategoryOuterwear,
	CategoryFootwear,
	CategoryAccessory,
	CategoryOther,
}

// Valid reports whether c is one of the known categories.
func (c Category) Valid() bool {
	for _, known := range Categories {
		if c == known {
			return true
		}
	}
	return false
}

// Season is a wearing season.
type Season string

// The closed set of seasons.
const (
	SeasonSpring Season = "spring"
	SeasonSummer Season = "summer"
	SeasonFall   Season = "fall"
	SeasonWinter Season = "winter"
)

// Seasons lists every valid season in calendar order.
var Seasons = []Season{SeasonSpring, SeasonSummer, SeasonFall, SeasonWinter}

// Valid reports whether s is one of the known seasons.
func (s Season) Valid() bool {
	for _, known := range Seasons {
		if s == known {
			return true
		}
	}
	return false
}

// Item is a read-only snapshot of one piece of clothing.
type Item struct {
	ID       string   `json:"id"`
	Name     string   `json:"name,omitempty"`
	Category Category `json:"category"`

	// Seasons the item can be worn in. Empty means every season.
	Seasons []Season `json:"seasons,omitempty"`

	// ScenarioIDs the item is suitable for. Empty means every scenario.
	ScenarioIDs []string `json:"scenario_ids,omitempty"`
}

// WearableIn reports whether the item applies to the given season.
func (it Item) WearableIn(season Season) bool {
	if len(it.Seasons) == 0 {
		return true
	}
	for _, s := range it.Seasons {
		if s == season {
			return true
		}
	}
	return false
}

// SuitableFor reports whether the item can be used for the given scenario.
// An untagged item is not scenario-restricted.
func (it Item) SuitableFor(scenarioID string) bool {
	if len(it.ScenarioIDs) == 0 {
		return true
	}
	for _, id := range it.ScenarioIDs {
		if id == scenarioID {
			return true
		}
	}
	return false
}

// CategoryRequirement is one slot of an outfit template.
type CategoryRequirement struct {
	Category Category `json:"category"`

	// Quantity is the number of items of Category needed per outfit.
	Quantity int `json:"quantity"`

	// Interchangeable categories whose items may fill this slot, in
	// declaration order.
	Interchangeable []Category `json:"interchangeable,omitempty"`
}

// OutfitAlternative is a named way of dressing for a scenario.
type OutfitAlternative struct {
	Name     string                `json:"name"`
	Required []CategoryRequirement `json:"required"`

	// Optional requirements are informational and do not affect counts.
	Optional []CategoryRequirement `json:"optional,omitempty"`
}

// OutfitRequirement is the set of alternatives for one scenario and season,
// with the number of outfits needed per period already resolved.
type OutfitRequirement struct {
	ScenarioID     string              `json:"scenario_id"`
	ScenarioName   string              `json:"scenario_name"`
	Season         Season              `json:"season"`
	TargetQuantity int                 `json:"target_quantity"`
	Alternatives   []OutfitAlternative `json:"alternatives"`
}

// OutfitCombination is one concrete outfit assembled from the wardrobe.
type OutfitCombination struct {
	Items       []Item `json:"items"`
	Alternative string `json:"alternative"`
	Complete    bool   `json:"complete"`
}

// CategoryAvailability records how one required slot was satisfied.
type CategoryAvailability struct {
	Category  Category `json:"category"`
	Quantity  int      `json:"quantity"`
	Available int      `json:"available"`
	Possible  int      `json:"possible"`
}

// AlternativeResult is the evaluation of one alternative.
type AlternativeResult struct {
	Name               string                 `json:"name"`
	PossibleOutfits    int                    `json:"possible_outfits"`
	BottleneckCategory Category               `json:"bottleneck_category,omitempty"`
	MissingCategories  []Category             `json:"missing_categories,omitempty"`
	Recommendations    []string               `json:"recommendations,omitempty"`
	Availability       []CategoryAvailability `json:"availability,omitempty"`
}

// OutfitAnalysis is the coverage result for one scenario and season.
type OutfitAnalysis struct {
	ScenarioID         string              `json:"scenario_id"`
	ScenarioName       string              `json:"scenario_name"`
	Season             Season              `json:"season"`
	TargetQuantity     int                 `json:"target_quantity"`
	PossibleOutfits    int                 `json:"possible_outfits"`
	CoveragePercent    int                 `json:"coverage_percent"`
	GapCount           int                 `json:"gap_count"`
	BestAlternative    string              `json:"best_alternative,omitempty"`
	BottleneckCategory Category            `json:"bottleneck_category,omitempty"`
	MissingCategories  []Category          `json:"missing_categories"`
	Combinations       []OutfitCombination `json:"combinations"`
	Recommendations    []string            `json:"recommendations"`
	Alternatives       []AlternativeResult `json:"alternatives,omitempty"`
}

// CoverageSummary rolls every analysis into one portfolio view.
type CoverageSummary struct {
	OverallCoveragePercent int      `json:"overall_coverage_percent"`
	TotalTargets           int      `json:"total_targets"`
	TotalCurrent           int      `json:"total_current"`
	TotalGaps              int      `json:"total_gaps"`
	WellCovered            []string `json:"well_covered"`
	PoorlyCovered          []string `json:"poorly_covered"`
	TopRecommendations     []string `json:"top_recommendations"`
}

// WellCoveredCount returns the number of well-covered scenarios.
func (s CoverageSummary) WellCoveredCount() int { return len(s.WellCovered) }

// PoorlyCoveredCount returns the number of poorly-covered scenarios.
func (s CoverageSummary) PoorlyCoveredCount() int { return len(s.PoorlyCovered) }
