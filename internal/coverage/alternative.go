package coverage

import (
	"github.com/blackwell-systems/closetwatch/internal/suggest"
	"github.com/blackwell-systems/closetwatch/internal/wardrobe"
)

// EvaluateAlternative computes how many outfits an alternative can assemble
// from the index. Each required slot contributes floor(available/quantity);
// the smallest contribution is the outfit count and its category the
// bottleneck (first one wins ties). Any required slot with nothing available
// blocks the alternative entirely.
//
// Requirements must already be validated; a non-positive quantity panics
// via division by zero, so callers go through Engine.Evaluate.
func EvaluateAlternative(idx *Index, alt wardrobe.OutfitAlternative) wardrobe.AlternativeResult {
	res := wardrobe.AlternativeResult{Name: alt.Name}

	minimum := -1
	for _, req := range alt.Required {
		available := len(idx.AvailableFor(req))
		avail := wardrobe.CategoryAvailability{
			Category:  req.Category,
			Quantity:  req.Quantity,
			Available: available,
		}

		if available == 0 {
			res.MissingCategories = append(res.MissingCategories, req.Category)
			res.Recommendations = append(res.Recommendations, suggest.BlockedMessage(req.Category, alt.Name))
			res.Availability = append(res.Availability, avail)
			continue
		}

		possible := available / req.Quantity
		avail.Possible = possible
		res.Availability = append(res.Availability, avail)

		if minimum < 0 || possible < minimum {
			minimum = possible
			res.BottleneckCategory = req.Category
		}
	}

	if len(res.MissingCategories) > 0 {
		res.PossibleOutfits = 0
		return res
	}
	res.PossibleOutfits = max(0, minimum)
	return res
}
