// Package coverage computes how many complete outfits a wardrobe can assemble
// for each scenario and season, which categories limit it, and how the
// results roll up across scenarios.
//
// Every function in this package is pure: inputs are never mutated and no
// I/O happens here. Observability goes through an injected Recorder.
package coverage

import "github.com/blackwell-systems/closetwatch/internal/wardrobe"

// Index groups the items available for one scenario and season by category.
// Relative item order is preserved within each category.
type Index struct {
	scenarioID string
	season     wardrobe.Season
	byCategory map[wardrobe.Category][]wardrobe.Item
}

// NewIndex filters items to those suitable for scenarioID (tagged for it or
// untagged) and wearable in season, then groups the survivors by category.
func NewIndex(items []wardrobe.Item, scenarioID string, season wardrobe.Season) *Index {
	idx := &Index{
		scenarioID: scenarioID,
		season:     season,
		byCategory: make(map[wardrobe.Category][]wardrobe.Item),
	}
	for _, it := range items {
		if !it.SuitableFor(scenarioID) || !it.WearableIn(season) {
			continue
		}
		idx.byCategory[it.Category] = append(idx.byCategory[it.Category], it)
	}
	return idx
}

// Category returns the filtered items of a single category.
func (idx *Index) Category(c wardrobe.Category) []wardrobe.Item {
	return idx.byCategory[c]
}

// Count returns the total number of indexed items.
func (idx *Index) Count() int {
	n := 0
	for _, items := range idx.byCategory {
		n += len(items)
	}
	return n
}

// AvailableFor returns the pool that can fill a requirement slot: the slot's
// own category followed by each interchangeable category in declaration
// order. Items are not deduplicated across pools.
func (idx *Index) AvailableFor(req wardrobe.CategoryRequirement) []wardrobe.Item {
	own := idx.byCategory[req.Category]
	n := len(own)
	for _, c := range req.Interchangeable {
		n += len(idx.byCategory[c])
	}

	pool := make([]wardrobe.Item, 0, n)
	pool = append(pool, own...)
	for _, c := range req.Interchangeable {
		pool = append(pool, idx.byCategory[c]...)
	}
	return pool
}
