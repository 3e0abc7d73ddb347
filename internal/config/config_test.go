package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/nvasilyev/growcalc/internal/projection"
)

func useTempConfigDir(t *testing.T) string {
	t.Helper()
	dir := t.TempDir()
	t.Setenv("XDG_CONFIG_HOME", dir)
	return filepath.Join(dir, "growcalc")
}

func TestLoadReturnsDefaultsWhenMissing(t *testing.T) {
	useTempConfigDir(t)

	cfg, err := Load()
	if err != nil {
		t.Fatalf("Load() error: %v", err)
	}
	if cfg.Defaults.InvestmentPeriod != 10 {
		t.Fatalf("default period = %d, want 10", cfg.Defaults.InvestmentPeriod)
	}
	if cfg.Defaults.CompoundingFreq != projection.CompoundMonthly {
		t.Fatalf("default freq = %d, want monthly", cfg.Defaults.CompoundingFreq)
	}
	if cfg.Appearance.Theme != "flexoki-dark" {
		t.Fatalf("default theme = %q, want flexoki-dark", cfg.Appearance.Theme)
	}
}

func TestSaveLoadRoundTrip(t *testing.T) {
	useTempConfigDir(t)

	cfg := DefaultConfig()
	cfg.Defaults.InitialInvestment = 250_000
	cfg.Defaults.Currency = "EUR"
	cfg.Scenarios = map[string]ParamSet{
		"retirement": {
			InitialInvestment: 500_000,
			InterestRatePct:   7.0,
			InvestmentPeriod:  30,
			CompoundingFreq:   projection.CompoundQuarterly,
			Currency:          "USD",
		},
	}

	if err := Save(cfg); err != nil {
		t.Fatalf("Save() error: %v", err)
	}

	loaded, err := Load()
	if err != nil {
		t.Fatalf("Load() error: %v", err)
	}
	if loaded.Defaults.InitialInvestment != 250_000 {
		t.Fatalf("loaded principal = %v, want 250000", loaded.Defaults.InitialInvestment)
	}
	if loaded.Defaults.Currency != "EUR" {
		t.Fatalf("loaded currency = %q, want EUR", loaded.Defaults.Currency)
	}

	ps, err := Scenario(loaded, "retirement")
	if err != nil {
		t.Fatalf("Scenario() error: %v", err)
	}
	if ps.InvestmentPeriod != 30 || ps.CompoundingFreq != projection.CompoundQuarterly {
		t.Fatalf("scenario = %+v, want 30y quarterly", ps)
	}
}

func TestScenarioNotFound(t *testing.T) {
	useTempConfigDir(t)

	cfg := DefaultConfig()
	if _, err := Scenario(cfg, "nope"); err == nil {
		t.Fatal("Scenario() found a scenario in empty config")
	}
}

func TestParamSetToParametersConvertsPercents(t *testing.T) {
	ps := ParamSet{
		InitialInvestment: 100_000,
		InterestRatePct:   10.0,
		InvestmentPeriod:  10,
		CompoundingFreq:   12,
		InflationRatePct:  5.0,
		TaxRatePct:        13.0,
		Currency:          "USD",
	}

	p := ps.ToParameters()
	if p.InterestRate != 0.10 {
		t.Fatalf("InterestRate = %v, want 0.10", p.InterestRate)
	}
	if p.InflationRate != 0.05 {
		t.Fatalf("InflationRate = %v, want 0.05", p.InflationRate)
	}
	if p.TaxRate != 0.13 {
		t.Fatalf("TaxRate = %v, want 0.13", p.TaxRate)
	}
	if err := p.Validate(); err != nil {
		t.Fatalf("converted parameters invalid: %v", err)
	}
}

func TestSaveWritesRestrictivePermissions(t *testing.T) {
	useTempConfigDir(t)

	if err := Save(DefaultConfig()); err != nil {
		t.Fatalf("Save() error: %v", err)
	}

	info, err := os.Stat(Path())
	if err != nil {
		t.Fatalf("stat config: %v", err)
	}
	if perm := info.Mode().Perm(); perm != 0o600 {
		t.Fatalf("config file mode = %o, want 600", perm)
	}
}
