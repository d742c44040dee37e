// Package config provides configuration loading and defaults for closetwatch.
package config

// DefaultConfigDir is the default location for closetwatch configuration.
const DefaultConfigDir = "~/.config/closetwatch"

// DefaultDBName is the filename for the SQLite snapshot database.
const DefaultDBName = "closetwatch.db"

// DefaultConfigFile is the filename for the YAML config.
const DefaultConfigFile = "config.yaml"

// DefaultWardrobeFile is the wardrobe inventory read when none is configured.
const DefaultWardrobeFile = "~/.config/closetwatch/wardrobe.yaml"

// DefaultCatalogFile is the scenario catalogue read when none is configured.
const DefaultCatalogFile = "~/.config/closetwatch/catalog.yaml"

// DefaultPlanningPeriod is the horizon outfit targets are computed over.
const DefaultPlanningPeriod = "week"

// DefaultWorkers bounds how many scenarios are evaluated concurrently.
const DefaultWorkers = 4

// DefaultCoverage holds the default coverage thresholds and limits.
var DefaultCoverage = Coverage{
	WellCovered:        80,
	PoorlyCovered:      50,
	MaxCombinations:    10,
	MaxRecommendations: 5,
	DigestSize:         3,
	DigestPerScenario:  2,
}

// DefaultOutput holds the default output preferences.
var DefaultOutput = Output{
	Color: true,
	Width: 80,
}
