// Package catalog loads wardrobe items and scenario templates from YAML or
// JSON files and turns them into outfit requirements for the coverage engine.
package catalog

import (
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/go-playground/validator/v10"
	"gopkg.in/yaml.v3"
)

// Sentinel errors for catalogue problems.
var (
	ErrUnknownScenario = errors.New("unknown scenario")
	ErrUnknownPeriod   = errors.New("unknown frequency period")
	ErrDuplicateID     = errors.New("duplicate id")
	ErrUnsupportedFile = errors.New("unsupported file extension")
)

var validate = validator.New()

// wardrobeFile is the on-disk shape of a wardrobe inventory.
type wardrobeFile struct {
	Items []itemSpec `yaml:"items" json:"items" validate:"dive"`
}

type itemSpec struct {
	ID        string   `yaml:"id" json:"id" validate:"required"`
	Name      string   `yaml:"name" json:"name"`
	Category  string   `yaml:"category" json:"category" validate:"required,oneof=top bottom one-piece outerwear footwear accessory other"`
	Seasons   []string `yaml:"seasons" json:"seasons" validate:"dive,oneof=spring summer fall winter"`
	Scenarios []string `yaml:"scenarios" json:"scenarios" validate:"dive,required"`
}

// catalogFile is the on-disk shape of the scenario and template catalogue.
type catalogFile struct {
	Scenarios []scenarioSpec `yaml:"scenarios" json:"scenarios" validate:"dive"`
	Templates []templateSpec `yaml:"templates" json:"templates" validate:"dive"`
}

type scenarioSpec struct {
	ID        string        `yaml:"id" json:"id" validate:"required"`
	Name      string        `yaml:"name" json:"name" validate:"required"`
	Frequency frequencySpec `yaml:"frequency" json:"frequency"`
}

type frequencySpec struct {
	Count  int    `yaml:"count" json:"count" validate:"gte=0"`
	Period string `yaml:"period" json:"period"`
}

type templateSpec struct {
	Scenario     string            `yaml:"scenario" json:"scenario" validate:"required"`
	Seasons      []string          `yaml:"seasons" json:"seasons" validate:"dive,oneof=spring summer fall winter"`
	Alternatives []alternativeSpec `yaml:"alternatives" json:"alternatives" validate:"required,dive"`
}

type alternativeSpec struct {
	Name     string            `yaml:"name" json:"name" validate:"required"`
	Required []requirementSpec `yaml:"required" json:"required" validate:"dive"`
	Optional []requirementSpec `yaml:"optional" json:"optional" validate:"dive"`
}

type requirementSpec struct {
	Category string `yaml:"category" json:"category" validate:"required,oneof=top bottom one-piece outerwear footwear accessory other"`
	// Quantity defaults to 1 when omitted.
	Quantity        *int     `yaml:"quantity" json:"quantity" validate:"omitempty,gte=1"`
	Interchangeable []string `yaml:"interchangeable" json:"interchangeable" validate:"dive,oneof=top bottom one-piece outerwear footwear accessory other"`
}

// decodeFile reads path and decodes it by extension, then validates the
// result's struct tags.
func decodeFile(path string, v any) error {
	data, err := os.ReadFile(path)
	if err != nil {
		return err
	}

	switch strings.ToLower(filepath.Ext(path)) {
	case ".yaml", ".yml":
		if err := yaml.Unmarshal(data, v); err != nil {
			return fmt.Errorf("parsing %s: %w", path, err)
		}
	case ".json":
		if err := json.Unmarshal(data, v); err != nil {
			return fmt.Errorf("parsing %s: %w", path, err)
		}
	default:
		return fmt.Errorf("%s: %w", path, ErrUnsupportedFile)
	}

	if err := validate.Struct(v); err != nil {
		return fmt.Errorf("validating %s: %w", path, err)
	}
	return nil
}
