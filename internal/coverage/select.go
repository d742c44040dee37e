package coverage

import "github.com/blackwell-systems/closetwatch/internal/wardrobe"

// Selection is the outcome of choosing among a scenario's alternatives.
type Selection struct {
	// Best is the index of the winning alternative, or -1 when there are none.
	Best int

	PossibleOutfits    int
	BottleneckCategory wardrobe.Category

	// MissingCategories and Recommendations are unions across every
	// alternative, in alternative order, deduplicated.
	MissingCategories []wardrobe.Category
	Recommendations   []string
}

// SelectBest picks the alternative with the strictly greatest outfit count;
// the first-listed alternative wins ties.
func SelectBest(results []wardrobe.AlternativeResult) Selection {
	sel := Selection{
		Best:              -1,
		MissingCategories: []wardrobe.Category{},
		Recommendations:   []string{},
	}

	seenCategory := make(map[wardrobe.Category]bool)
	seenRec := make(map[string]bool)

	for i, r := range results {
		if sel.Best < 0 || r.PossibleOutfits > results[sel.Best].PossibleOutfits {
			sel.Best = i
		}
		for _, c := range r.MissingCategories {
			if !seenCategory[c] {
				seenCategory[c] = true
				sel.MissingCategories = append(sel.MissingCategories, c)
			}
		}
		for _, rec := range r.Recommendations {
			if !seenRec[rec] {
				seenRec[rec] = true
				sel.Recommendations = append(sel.Recommendations, rec)
			}
		}
	}

	if sel.Best >= 0 {
		sel.PossibleOutfits = results[sel.Best].PossibleOutfits
		sel.BottleneckCategory = results[sel.Best].BottleneckCategory
	}
	return sel
}
