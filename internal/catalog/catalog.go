package catalog

import (
	"fmt"
	"log"

	"github.com/blackwell-systems/closetwatch/internal/wardrobe"
)

// Scenario is a lifestyle context with an outfit frequency.
type Scenario struct {
	ID        string    `json:"id"`
	Name      string    `json:"name"`
	Frequency Frequency `json:"frequency"`
}

// Template holds the outfit alternatives for a scenario in a set of seasons.
type Template struct {
	ScenarioID string `json:"scenario_id"`

	// Seasons the template applies to. Empty means every season.
	Seasons []wardrobe.Season `json:"seasons,omitempty"`

	Alternatives []wardrobe.OutfitAlternative `json:"alternatives"`
}

// AppliesTo reports whether the template covers season.
func (t Template) AppliesTo(season wardrobe.Season) bool {
	if len(t.Seasons) == 0 {
		return true
	}
	for _, s := range t.Seasons {
		if s == season {
			return true
		}
	}
	return false
}

// Catalog is the loaded scenario and template catalogue.
type Catalog struct {
	Scenarios []Scenario `json:"scenarios"`
	Templates []Template `json:"templates"`
}

// LoadWardrobe reads and validates a wardrobe inventory file.
func LoadWardrobe(path string) ([]wardrobe.Item, error) {
	var f wardrobeFile
	if err := decodeFile(path, &f); err != nil {
		return nil, err
	}

	items := make([]wardrobe.Item, 0, len(f.Items))
	seen := make(map[string]bool, len(f.Items))
	for _, spec := range f.Items {
		if seen[spec.ID] {
			return nil, fmt.Errorf("item %q: %w", spec.ID, ErrDuplicateID)
		}
		seen[spec.ID] = true

		items = append(items, wardrobe.Item{
			ID:          spec.ID,
			Name:        spec.Name,
			Category:    wardrobe.Category(spec.Category),
			Seasons:     toSeasons(spec.Seasons),
			ScenarioIDs: spec.Scenarios,
		})
	}
	return items, nil
}

// LoadCatalog reads and validates a scenario and template catalogue.
func LoadCatalog(path string) (*Catalog, error) {
	var f catalogFile
	if err := decodeFile(path, &f); err != nil {
		return nil, err
	}

	cat := &Catalog{}
	known := make(map[string]bool, len(f.Scenarios))
	for _, spec := range f.Scenarios {
		if known[spec.ID] {
			return nil, fmt.Errorf("scenario %q: %w", spec.ID, ErrDuplicateID)
		}
		known[spec.ID] = true

		period, err := ParsePeriod(spec.Frequency.Period)
		if err != nil {
			return nil, fmt.Errorf("scenario %q: %w", spec.ID, err)
		}
		cat.Scenarios = append(cat.Scenarios, Scenario{
			ID:        spec.ID,
			Name:      spec.Name,
			Frequency: Frequency{Count: spec.Frequency.Count, Period: period},
		})
	}

	for _, spec := range f.Templates {
		if !known[spec.Scenario] {
			return nil, fmt.Errorf("template for %q: %w", spec.Scenario, ErrUnknownScenario)
		}
		tmpl := Template{
			ScenarioID: spec.Scenario,
			Seasons:    toSeasons(spec.Seasons),
		}
		for _, a := range spec.Alternatives {
			alt := wardrobe.OutfitAlternative{
				Name:     a.Name,
				Required: toRequirements(a.Required),
				Optional: toRequirements(a.Optional),
			}
			if err := alt.Validate(); err != nil {
				return nil, fmt.Errorf("template for %q: %w", spec.Scenario, err)
			}
			tmpl.Alternatives = append(tmpl.Alternatives, alt)
		}
		cat.Templates = append(cat.Templates, tmpl)
	}

	for _, sc := range cat.Scenarios {
		if cat.templateCount(sc.ID) == 0 {
			log.Printf("warning: scenario %q has no outfit templates and will be skipped", sc.ID)
		}
	}
	return cat, nil
}

// Scenario returns the scenario with the given id.
func (c *Catalog) Scenario(id string) (Scenario, bool) {
	for _, s := range c.Scenarios {
		if s.ID == id {
			return s, true
		}
	}
	return Scenario{}, false
}

// Requirements builds one outfit requirement per scenario (catalogue order)
// and season (given order). The first template of the scenario that applies
// to the season supplies the alternatives; pairs without a template are
// skipped. An empty seasons list means every season.
func (c *Catalog) Requirements(seasons []wardrobe.Season, planning Period) []wardrobe.OutfitRequirement {
	if len(seasons) == 0 {
		seasons = wardrobe.Seasons
	}

	var reqs []wardrobe.OutfitRequirement
	for _, sc := range c.Scenarios {
		target := sc.Frequency.Target(planning)
		for _, season := range seasons {
			tmpl, ok := c.templateFor(sc.ID, season)
			if !ok {
				continue
			}
			reqs = append(reqs, wardrobe.OutfitRequirement{
				ScenarioID:     sc.ID,
				ScenarioName:   sc.Name,
				Season:         season,
				TargetQuantity: target,
				Alternatives:   tmpl.Alternatives,
			})
		}
	}
	return reqs
}

func (c *Catalog) templateFor(scenarioID string, season wardrobe.Season) (Template, bool) {
	for _, t := range c.Templates {
		if t.ScenarioID == scenarioID && t.AppliesTo(season) {
			return t, true
		}
	}
	return Template{}, false
}

func (c *Catalog) templateCount(scenarioID string) int {
	n := 0
	for _, t := range c.Templates {
		if t.ScenarioID == scenarioID {
			n++
		}
	}
	return n
}

// ParseSeasons validates season names given on the command line.
func ParseSeasons(names []string) ([]wardrobe.Season, error) {
	seasons := make([]wardrobe.Season, 0, len(names))
	for _, n := range names {
		s := wardrobe.Season(n)
		if !s.Valid() {
			return nil, fmt.Errorf("unknown season %q (want one of spring, summer, fall, winter)", n)
		}
		seasons = append(seasons, s)
	}
	return seasons, nil
}

func toSeasons(names []string) []wardrobe.Season {
	if len(names) == 0 {
		return nil
	}
	out := make([]wardrobe.Season, len(names))
	for i, n := range names {
		out[i] = wardrobe.Season(n)
	}
	return out
}

func toRequirements(specs []requirementSpec) []wardrobe.CategoryRequirement {
	if len(specs) == 0 {
		return nil
	}
	out := make([]wardrobe.CategoryRequirement, len(specs))
	for i, spec := range specs {
		qty := 1
		if spec.Quantity != nil {
			qty = *spec.Quantity
		}
		req := wardrobe.CategoryRequirement{
			Category: wardrobe.Category(spec.Category),
			Quantity: qty,
		}
		for _, c := range spec.Interchangeable {
			req.Interchangeable = append(req.Interchangeable, wardrobe.Category(c))
		}
		out[i] = req
	}
	return out
}
