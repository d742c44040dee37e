package coverage

import "math"

// Percent returns round(100*current/target), or 0 when target is not
// positive. It never divides by zero.
func Percent(current, target int) int {
	if target <= 0 {
		return 0
	}
	return int(math.Round(100 * float64(current) / float64(target)))
}

// Gap returns how many outfits are still missing to reach target.
func Gap(current, target int) int {
	return max(0, target-current)
}
