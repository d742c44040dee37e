package suggest

import (
	"fmt"
	"strings"

	"github.com/blackwell-systems/closetwatch/internal/wardrobe"
)

// DefaultMaxRecommendations caps the recommendations for one scenario.
const DefaultMaxRecommendations = 5

// maxBottleneckPurchase caps the quantity suggested for a single category.
const maxBottleneckPurchase = 3

// shoppingSessionThreshold is the gap above which a shopping session is suggested.
const shoppingSessionThreshold = 5

// Generator applies recommendation rules in order and caps the result.
type Generator struct {
	rules []Rule
	limit int
}

// NewGenerator creates a generator with the built-in rules, in priority
// order: blocking categories, bottleneck quantity, alternative digest,
// volume note.
func NewGenerator(limit int) *Generator {
	if limit <= 0 {
		limit = DefaultMaxRecommendations
	}
	return &Generator{
		rules: []Rule{
			BlockingCategories,
			BottleneckQuantity,
			AlternativeDigest,
			VolumeNote,
		},
		limit: limit,
	}
}

// Generate returns at most the generator's limit of recommendations. A
// scenario with no gap gets exactly one affirmative message.
func (g *Generator) Generate(ctx *RecommendationContext) []string {
	if ctx.GapCount == 0 {
		return []string{SufficientMessage(ctx.ScenarioName)}
	}

	recs := []string{}
	for _, rule := range g.rules {
		recs = append(recs, rule(ctx, recs)...)
	}
	if len(recs) > g.limit {
		recs = recs[:g.limit]
	}
	return recs
}

// SufficientMessage is the single recommendation for a fully covered scenario.
func SufficientMessage(scenario string) string {
	return fmt.Sprintf("You have sufficient outfits for %s", scenario)
}

// BlockedMessage is the message an alternative carries for a required
// category with nothing available.
func BlockedMessage(c wardrobe.Category, alternative string) string {
	return fmt.Sprintf("no %s for %q", c, alternative)
}

// BlockingCategories emits one message per missing category, deduplicated.
// The message embeds the BlockedMessage of every alternative the category
// blocks, so the digest does not repeat them.
func BlockingCategories(ctx *RecommendationContext, _ []string) []string {
	var out []string
	seen := make(map[wardrobe.Category]bool)
	for _, c := range ctx.MissingCategories {
		if seen[c] {
			continue
		}
		seen[c] = true

		alts := ctx.BlockedAlternatives[c]
		if len(alts) == 0 {
			out = append(out, fmt.Sprintf("Add %s items: none are available for %s", c, ctx.ScenarioName))
			continue
		}
		reasons := make([]string, len(alts))
		for i, alt := range alts {
			reasons[i] = BlockedMessage(c, alt)
		}
		out = append(out, fmt.Sprintf("Add %s items: %s", c, strings.Join(reasons, ", ")))
	}
	return out
}

// BottleneckQuantity suggests a bounded purchase in the bottleneck category.
// While a category is missing no outfit can be assembled, so the projection
// stays at the current count.
func BottleneckQuantity(ctx *RecommendationContext, _ []string) []string {
	if ctx.BottleneckCategory == "" || ctx.GapCount <= 0 {
		return nil
	}
	n := min(ctx.GapCount, maxBottleneckPurchase)
	if len(ctx.MissingCategories) > 0 {
		return []string{fmt.Sprintf("Add %d more %s items once missing categories are filled (currently %d outfits)",
			n, ctx.BottleneckCategory, ctx.PossibleOutfits)}
	}
	return []string{fmt.Sprintf("Add %d more %s items to go from %d to %d outfits",
		n, ctx.BottleneckCategory, ctx.PossibleOutfits, ctx.PossibleOutfits+n)}
}

// AlternativeDigest appends alternative messages that are not already
// contained in an earlier recommendation (case-sensitive).
func AlternativeDigest(ctx *RecommendationContext, existing []string) []string {
	var out []string
	for _, rec := range ctx.AlternativeRecommendations {
		if containedIn(rec, existing) || containedIn(rec, out) {
			continue
		}
		out = append(out, rec)
	}
	return out
}

// VolumeNote closes the list with the size of the remaining gap.
func VolumeNote(ctx *RecommendationContext, _ []string) []string {
	switch {
	case ctx.GapCount > shoppingSessionThreshold:
		return []string{fmt.Sprintf("Plan a shopping session for %s: %d more outfits needed", ctx.ScenarioName, ctx.GapCount)}
	case ctx.GapCount > 0:
		return []string{fmt.Sprintf("%d more outfits needed for %s", ctx.GapCount, ctx.ScenarioName)}
	default:
		return nil
	}
}

func containedIn(s string, list []string) bool {
	for _, existing := range list {
		if strings.Contains(existing, s) {
			return true
		}
	}
	return false
}
