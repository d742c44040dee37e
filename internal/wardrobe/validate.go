package wardrobe

import (
	"errors"
	"fmt"
)

// ErrInvalidQuantity is returned for a requirement whose quantity is not
// positive. It is a configuration error and is never recovered from.
var ErrInvalidQuantity = errors.New("requirement quantity must be at least 1")

// Validate checks the requirement's quantity.
func (r CategoryRequirement) Validate() error {
	if r.Quantity <= 0 {
		return fmt.Errorf("category %s quantity %d: %w", r.Category, r.Quantity, ErrInvalidQuantity)
	}
	return nil
}

// Validate checks every required and optional requirement of the alternative.
func (a OutfitAlternative) Validate() error {
	for _, r := range a.Required {
		if err := r.Validate(); err != nil {
			return fmt.Errorf("alternative %q: %w", a.Name, err)
		}
	}
	for _, r := range a.Optional {
		if err := r.Validate(); err != nil {
			return fmt.Errorf("alternative %q (optional): %w", a.Name, err)
		}
	}
	return nil
}

// Validate checks every alternative of the requirement.
func (r OutfitRequirement) Validate() error {
	for _, alt := range r.Alternatives {
		if err := alt.Validate(); err != nil {
			return fmt.Errorf("scenario %s/%s: %w", r.ScenarioID, r.Season, err)
		}
	}
	return nil
}
