package coverage

import "github.com/blackwell-systems/closetwatch/internal/wardrobe"

// DefaultMaxCombinations caps the number of sample outfits per scenario.
const DefaultMaxCombinations = 10

// Combinations materializes up to min(possible, limit) sample outfits for an
// alternative. Outfit i takes the contiguous slice [i*q, i*q+q) from every
// required slot's pool. This is a deterministic sample, not an enumeration of
// every assignment.
func Combinations(idx *Index, alt wardrobe.OutfitAlternative, possible, limit int) []wardrobe.OutfitCombination {
	n := min(possible, limit)
	if n <= 0 {
		return []wardrobe.OutfitCombination{}
	}

	pools := make([][]wardrobe.Item, len(alt.Required))
	for i, req := range alt.Required {
		pools[i] = idx.AvailableFor(req)
	}

	combos := make([]wardrobe.OutfitCombination, 0, n)
	for i := 0; i < n; i++ {
		combo := wardrobe.OutfitCombination{Alternative: alt.Name, Complete: true}
		for j, req := range alt.Required {
			start := i * req.Quantity
			end := start + req.Quantity
			pool := pools[j]
			if end > len(pool) {
				combo.Complete = false
				end = len(pool)
			}
			if start < end {
				combo.Items = append(combo.Items, pool[start:end]...)
			}
		}
		combos = append(combos, combo)
	}
	return combos
}
