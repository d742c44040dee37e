package config

import (
	"errors"
	"os"
	"path/filepath"
	"strings"

	"github.com/spf13/viper"

	"github.com/blackwell-systems/closetwatch/internal/coverage"
)

// EnvPrefix is prepended to environment overrides, e.g. CLOSETWATCH_WORKERS.
const EnvPrefix = "CLOSETWATCH"

// Config is the top-level closetwatch configuration.
type Config struct {
	WardrobeFile   string   `mapstructure:"wardrobe_file"`
	CatalogFile    string   `mapstructure:"catalog_file"`
	Seasons        []string `mapstructure:"seasons"`
	PlanningPeriod string   `mapstructure:"planning_period"`
	Workers        int      `mapstructure:"workers"`
	Coverage       Coverage `mapstructure:"coverage"`
	Output         Output   `mapstructure:"output"`
}

// Coverage holds the thresholds and limits the engine runs with.
type Coverage struct {
	WellCovered        int `mapstructure:"well_covered"`
	PoorlyCovered      int `mapstructure:"poorly_covered"`
	MaxCombinations    int `mapstructure:"max_combinations"`
	MaxRecommendations int `mapstructure:"max_recommendations"`
	DigestSize         int `mapstructure:"digest_size"`
	DigestPerScenario  int `mapstructure:"digest_per_scenario"`
}

// Output defines output preferences.
type Output struct {
	Color bool `mapstructure:"color"`
	Width int  `mapstructure:"width"`
}

// Validation errors returned by Load.
var (
	ErrInvalidThresholds = errors.New("poorly_covered must be below well_covered")
	ErrInvalidWorkers    = errors.New("workers must be at least 1")
)

// expandPath replaces a leading ~ with the user's home directory.
func expandPath(path string) string {
	if strings.HasPrefix(path, "~/") {
		home, err := os.UserHomeDir()
		if err != nil {
			return path
		}
		return filepath.Join(home, path[2:])
	}
	return path
}

// Load reads configuration from the given path (or the default location)
// and returns a Config with all defaults applied. Environment variables
// prefixed with CLOSETWATCH_ override file values.
func Load(cfgFile string) (*Config, error) {
	v := viper.New()

	v.SetDefault("wardrobe_file", DefaultWardrobeFile)
	v.SetDefault("catalog_file", DefaultCatalogFile)
	v.SetDefault("seasons", []string{})
	v.SetDefault("planning_period", DefaultPlanningPeriod)
	v.SetDefault("workers", DefaultWorkers)
	v.SetDefault("coverage.well_covered", DefaultCoverage.WellCovered)
	v.SetDefault("coverage.poorly_covered", DefaultCoverage.PoorlyCovered)
	v.SetDefault("coverage.max_combinations", DefaultCoverage.MaxCombinations)
	v.SetDefault("coverage.max_recommendations", DefaultCoverage.MaxRecommendations)
	v.SetDefault("coverage.digest_size", DefaultCoverage.DigestSize)
	v.SetDefault("coverage.digest_per_scenario", DefaultCoverage.DigestPerScenario)
	v.SetDefault("output.color", DefaultOutput.Color)
	v.SetDefault("output.width", DefaultOutput.Width)

	v.SetEnvPrefix(EnvPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	if cfgFile != "" {
		v.SetConfigFile(expandPath(cfgFile))
	} else {
		v.AddConfigPath(expandPath(DefaultConfigDir))
		v.SetConfigName("config")
		v.SetConfigType("yaml")
	}

	// Missing file is not an error.
	if err := v.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if !errors.As(err, &notFound) && !os.IsNotExist(err) {
			return nil, err
		}
	}

	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return nil, err
	}

	if cfg.Workers < 1 {
		return nil, ErrInvalidWorkers
	}
	if cfg.Coverage.PoorlyCovered >= cfg.Coverage.WellCovered {
		return nil, ErrInvalidThresholds
	}

	cfg.WardrobeFile = expandPath(cfg.WardrobeFile)
	cfg.CatalogFile = expandPath(cfg.CatalogFile)

	return &cfg, nil
}

// Thresholds converts the coverage section into engine thresholds.
func (c *Config) Thresholds() coverage.Thresholds {
	return coverage.Thresholds{
		WellCovered:       c.Coverage.WellCovered,
		PoorlyCovered:     c.Coverage.PoorlyCovered,
		DigestPerScenario: c.Coverage.DigestPerScenario,
		DigestSize:        c.Coverage.DigestSize,
	}
}

// EngineOptions builds coverage engine options from the configuration. The
// caller supplies the recorder.
func (c *Config) EngineOptions(rec coverage.Recorder) coverage.Options {
	return coverage.Options{
		MaxCombinations:    c.Coverage.MaxCombinations,
		MaxRecommendations: c.Coverage.MaxRecommendations,
		Workers:            c.Workers,
		Thresholds:         c.Thresholds(),
		Recorder:           rec,
	}
}

// DBPath returns the full path to the SQLite database.
func DBPath() string {
	return filepath.Join(expandPath(DefaultConfigDir), DefaultDBName)
}

// ConfigDir returns the expanded configuration directory.
func ConfigDir() string {
	return expandPath(DefaultConfigDir)
}
