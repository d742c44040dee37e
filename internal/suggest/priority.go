package suggest

import "github.com/blackwell-systems/closetwatch/internal/wardrobe"

// ClassifyPriority maps a category gap to an urgency level. Branches are
// evaluated in order and the first match wins:
//
//   - critical gap type: PriorityCritical
//   - footwear with fewer than 2 items: PriorityHigh
//   - tops or bottoms more than 3 outfits short: PriorityHigh
//   - any remaining gap: PriorityMedium
//   - otherwise: PriorityLow
func ClassifyPriority(category wardrobe.Category, currentItemCount, gapCount int, gapType GapType) int {
	switch {
	case gapType == GapCritical:
		return PriorityCritical
	case category == wardrobe.CategoryFootwear && currentItemCount < 2:
		return PriorityHigh
	case (category == wardrobe.CategoryTop || category == wardrobe.CategoryBottom) && gapCount > 3:
		return PriorityHigh
	case gapCount > 0:
		return PriorityMedium
	default:
		return PriorityLow
	}
}

// PriorityLabel returns the display label for a priority.
func PriorityLabel(priority int) string {
	switch priority {
	case PriorityCritical:
		return "CRITICAL"
	case PriorityHigh:
		return "HIGH"
	case PriorityMedium:
		return "MEDIUM"
	case PriorityLow:
		return "LOW"
	default:
		return "UNKNOWN"
	}
}
