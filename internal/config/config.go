// Package config loads and saves growcalc configuration from TOML.
package config

import (
	"fmt"
	"os"
	"path/filepath"
	"sort"

	"github.com/BurntSushi/toml"

	"github.com/nvasilyev/growcalc/internal/projection"
)

// Config holds all growcalc configuration.
type Config struct {
	Defaults   ParamSet            `toml:"defaults"`
	Appearance AppearanceConfig    `toml:"appearance"`
	Scenarios  map[string]ParamSet `toml:"scenario,omitempty"`
}

// ParamSet is a projection parameter bundle as stored in config and
// collected from flags. Rates are percentages here (the user-facing
// unit); ToParameters converts to the fractions the engine consumes.
type ParamSet struct {
	InitialInvestment   float64 `toml:"initial_investment"`
	MonthlyContribution float64 `toml:"monthly_contribution"`
	YearlyContribution  float64 `toml:"yearly_contribution"`
	InterestRatePct     float64 `toml:"interest_rate"`
	InvestmentPeriod    int     `toml:"investment_period"`
	CompoundingFreq     int     `toml:"compounding_freq"`
	InflationRatePct    float64 `toml:"inflation_rate"`
	TaxRatePct          float64 `toml:"tax_rate"`
	Currency            string  `toml:"currency"`
}

// AppearanceConfig holds theme settings.
type AppearanceConfig struct {
	Theme string `toml:"theme"`
}

// ToParameters converts the percent-based bundle into engine parameters.
func (ps ParamSet) ToParameters() projection.Parameters {
	return projection.Parameters{
		InitialInvestment:   ps.InitialInvestment,
		MonthlyContribution: ps.MonthlyContribution,
		YearlyContribution:  ps.YearlyContribution,
		InterestRate:        ps.InterestRatePct / 100,
		InvestmentPeriod:    ps.InvestmentPeriod,
		CompoundingFreq:     ps.CompoundingFreq,
		InflationRate:       ps.InflationRatePct / 100,
		TaxRate:             ps.TaxRatePct / 100,
		Currency:            ps.Currency,
	}
}

// DefaultConfig returns the default configuration.
func DefaultConfig() Config {
	return Config{
		Defaults: ParamSet{
			InitialInvestment:   100_000,
			MonthlyContribution: 10_000,
			YearlyContribution:  0,
			InterestRatePct:     10.0,
			InvestmentPeriod:    10,
			CompoundingFreq:     projection.CompoundMonthly,
			InflationRatePct:    5.0,
			TaxRatePct:          13.0,
			Currency:            "USD",
		},
		Appearance: AppearanceConfig{
			Theme: "flexoki-dark",
		},
	}
}

// Dir returns the XDG-compliant config directory.
func Dir() string {
	if xdg := os.Getenv("XDG_CONFIG_HOME"); xdg != "" {
		return filepath.Join(xdg, "growcalc")
	}
	home, _ := os.UserHomeDir()
	return filepath.Join(home, ".config", "growcalc")
}

// Path returns the full path to the config file.
func Path() string {
	return filepath.Join(Dir(), "config.toml")
}

// Load reads the config file, returning defaults if it doesn't exist.
func Load() (Config, error) {
	cfg := DefaultConfig()

	data, err := os.ReadFile(Path())
	if err != nil {
		if os.IsNotExist(err) {
			return cfg, nil
		}
		return cfg, fmt.Errorf("reading config: %w", err)
	}

	if err := toml.Unmarshal(data, &cfg); err != nil {
		return cfg, fmt.Errorf("parsing config: %w", err)
	}

	return cfg, nil
}

// Save writes the config to disk.
func Save(cfg Config) error {
	if err := os.MkdirAll(Dir(), 0o755); err != nil {
		return fmt.Errorf("creating config dir: %w", err)
	}

	f, err := os.OpenFile(Path(), os.O_WRONLY|os.O_CREATE|os.O_TRUNC, 0o600)
	if err != nil {
		return fmt.Errorf("creating config file: %w", err)
	}
	defer f.Close()

	enc := toml.NewEncoder(f)
	return enc.Encode(cfg)
}

// Exists returns true if a config file exists on disk.
func Exists() bool {
	_, err := os.Stat(Path())
	return err == nil
}

// Scenario returns the named saved parameter set.
func Scenario(cfg Config, name string) (ParamSet, error) {
	ps, ok := cfg.Scenarios[name]
	if !ok {
		return ParamSet{}, fmt.Errorf("scenario %q not found (have: %v)", name, ScenarioNames(cfg))
	}
	return ps, nil
}

// ScenarioNames returns the saved scenario names, sorted.
func ScenarioNames(cfg Config) []string {
	names := make([]string, 0, len(cfg.Scenarios))
	for name := range cfg.Scenarios {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}
