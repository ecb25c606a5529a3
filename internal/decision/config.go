package decision

import (
	"fmt"
	"os"

	"github.com/hashicorp/hcl/v2/gohcl"
	"github.com/hashicorp/hcl/v2/hclparse"
)

// Config holds every decision threshold in one place so tests and players can
// tune behavior without touching the rule table.
type Config struct {
	// CallEquityMargin is how far equity must exceed required equity, in
	// percentage points, before a call is recommended.
	CallEquityMargin float64 `hcl:"call_equity_margin,optional"`

	// RaiseEquityMargin is the additional surplus, in percentage points,
	// at which a strong made hand escalates a call to a raise.
	RaiseEquityMargin float64 `hcl:"raise_equity_margin,optional"`

	// ImpliedOddsMinOuts is the minimum draw outs for an implied-odds call
	// when direct pot odds alone do not justify it.
	ImpliedOddsMinOuts int `hcl:"implied_odds_min_outs,optional"`

	// ImpliedOddsMaxDeficit caps how far below required equity, in
	// percentage points, an implied-odds call is still considered.
	ImpliedOddsMaxDeficit float64 `hcl:"implied_odds_max_deficit,optional"`

	// ImpliedOddsStackRatio is the minimum hero stack, as a multiple of
	// the call amount, needed for future-street betting to pay the draw.
	ImpliedOddsStackRatio float64 `hcl:"implied_odds_stack_ratio,optional"`
}

// DefaultConfig returns the stock thresholds
func DefaultConfig() *Config {
	return &Config{
		CallEquityMargin:      0,
		RaiseEquityMargin:     20,
		ImpliedOddsMinOuts:    8,
		ImpliedOddsMaxDeficit: 5,
		ImpliedOddsStackRatio: 3,
	}
}

// LoadConfig loads thresholds from an HCL file. A missing file yields the
// defaults; fields omitted from the file keep their default values.
func LoadConfig(filename string) (*Config, error) {
	if _, err := os.Stat(filename); os.IsNotExist(err) {
		return DefaultConfig(), nil
	}

	parser := hclparse.NewParser()
	file, diags := parser.ParseHCLFile(filename)
	if diags.HasErrors() {
		return nil, fmt.Errorf("failed to parse HCL file: %s", diags.Error())
	}

	var config Config
	diags = gohcl.DecodeBody(file.Body, nil, &config)
	if diags.HasErrors() {
		return nil, fmt.Errorf("failed to decode HCL: %s", diags.Error())
	}

	defaults := DefaultConfig()
	if config.RaiseEquityMargin == 0 {
		config.RaiseEquityMargin = defaults.RaiseEquityMargin
	}
	if config.ImpliedOddsMinOuts == 0 {
		config.ImpliedOddsMinOuts = defaults.ImpliedOddsMinOuts
	}
	if config.ImpliedOddsMaxDeficit == 0 {
		config.ImpliedOddsMaxDeficit = defaults.ImpliedOddsMaxDeficit
	}
	if config.ImpliedOddsStackRatio == 0 {
		config.ImpliedOddsStackRatio = defaults.ImpliedOddsStackRatio
	}

	if err := config.Validate(); err != nil {
		return nil, err
	}
	return &config, nil
}

// Validate checks threshold sanity
func (c *Config) Validate() error {
	if c.CallEquityMargin < 0 {
		return fmt.Errorf("call_equity_margin must be non-negative, got %g", c.CallEquityMargin)
	}
	if c.RaiseEquityMargin < c.CallEquityMargin {
		return fmt.Errorf("raise_equity_margin (%g) must be at least call_equity_margin (%g)",
			c.RaiseEquityMargin, c.CallEquityMargin)
	}
	if c.ImpliedOddsMinOuts < 1 || c.ImpliedOddsMinOuts > 20 {
		return fmt.Errorf("implied_odds_min_outs must be between 1 and 20, got %d", c.ImpliedOddsMinOuts)
	}
	if c.ImpliedOddsMaxDeficit < 0 {
		return fmt.Errorf("implied_odds_max_deficit must be non-negative, got %g", c.ImpliedOddsMaxDeficit)
	}
	if c.ImpliedOddsStackRatio < 1 {
		return fmt.Errorf("implied_odds_stack_ratio must be at least 1, got %g", c.ImpliedOddsStackRatio)
	}
	return nil
}
