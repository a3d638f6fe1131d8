package config

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"
)

// Config represents the top-level spendwell.yaml configuration.
type Config struct {
	Household HouseholdConfig `yaml:"household"`
	Formula   FormulaConfig   `yaml:"formula"`
	Forecast  ForecastConfig  `yaml:"forecast"`
	Data      DataConfig      `yaml:"data"`
}

// HouseholdConfig identifies the household.
type HouseholdConfig struct {
	Name string `yaml:"name"`
}

// FormulaConfig selects the safe-to-spend generation and period mode.
type FormulaConfig struct {
	// Variant is "paycheck_window" or "bucket_liability".
	Variant string `yaml:"variant"`
	// PaycheckTracking switches period identity from calendar months to
	// paycheck-opened periods.
	PaycheckTracking bool `yaml:"paycheck_tracking"`
	// CurrentPeriod is the date of the last approved paycheck, empty
	// until the first paycheck is approved.
	CurrentPeriod string `yaml:"current_period,omitempty"`
}

// ForecastConfig holds forecast defaults.
type ForecastConfig struct {
	HorizonDays int `yaml:"horizon_days"`
}

// DataConfig points at the household snapshot database.
type DataConfig struct {
	Path string `yaml:"path"`
}

// Load reads a spendwell.yaml file from disk.
func Load(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("reading config: %w", err)
	}
	var cfg Config
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return nil, fmt.Errorf("parsing config: %w", err)
	}
	return &cfg, nil
}

// Save writes a Config to a YAML file.
func Save(path string, cfg *Config) error {
	data, err := yaml.Marshal(cfg)
	if err != nil {
		return fmt.Errorf("marshaling config: %w", err)
	}
	if err := os.WriteFile(path, data, 0o644); err != nil {
		return fmt.Errorf("writing config: %w", err)
	}
	return nil
}

// Default returns a Config with sensible defaults for a new household.
func Default(householdName string) *Config {
	return &Config{
		Household: HouseholdConfig{Name: householdName},
		Formula: FormulaConfig{
			Variant:          "paycheck_window",
			PaycheckTracking: true,
		},
		Forecast: ForecastConfig{HorizonDays: 30},
		Data:     DataConfig{Path: "spendwell.db"},
	}
}

// PeriodID returns the active period identifier: the last approved
// paycheck date, or empty when paycheck tracking is off.
func (c *Config) PeriodID() string {
	if !c.Formula.PaycheckTracking {
		return ""
	}
	return c.Formula.CurrentPeriod
}
