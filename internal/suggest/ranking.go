package suggest

import "sort"

// RankGaps orders gaps by priority (most urgent first), then by gap count
// descending. Equal gaps keep their input order. The input is not modified.
func RankGaps(gaps []CategoryGap) []CategoryGap {
	sorted := make([]CategoryGap, len(gaps))
	copy(sorted, gaps)
	sort.SliceStable(sorted, func(i, j int) bool {
		if sorted[i].Priority != sorted[j].Priority {
			return sorted[i].Priority < sorted[j].Priority
		}
		return sorted[i].GapCount > sorted[j].GapCount
	})
	return sorted
}
