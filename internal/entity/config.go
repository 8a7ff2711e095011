package entity

import (
	"fmt"
	"strings"

	"github.com/joseph-ayodele/agent-insights/constants"
)

// AnalysisConfig controls one analysis run. It is passed by value into the
// aggregator; there is no process-wide mutable configuration.
type AnalysisConfig struct {
	TargetYear           int      `json:"target_year"`
	MinDepositsForActive int      `json:"min_deposits_for_active"`
	DepositKeywords      []string `json:"deposit_keywords,omitempty"`
	TopN                 int      `json:"top_n,omitempty"`
}

// DefaultAnalysisConfig returns the configuration the dashboards shipped
// with: threshold 20, top 10, the standard deposit keyword list.
func DefaultAnalysisConfig(year int) AnalysisConfig {
	return AnalysisConfig{
		TargetYear:           year,
		MinDepositsForActive: 20,
		DepositKeywords:      append([]string(nil), constants.DefaultDepositKeywords...),
		TopN:                 10,
	}
}

// WithDefaults fills zero-valued fields with their defaults and returns the
// result. The receiver is not modified.
func (c AnalysisConfig) WithDefaults() AnalysisConfig {
	if c.MinDepositsForActive == 0 {
		c.MinDepositsForActive = 20
	}
	if len(c.DepositKeywords) == 0 {
		c.DepositKeywords = append([]string(nil), constants.DefaultDepositKeywords...)
	}
	if c.TopN == 0 {
		c.TopN = 10
	}
	return c
}

// Fingerprint returns a stable string form of the config, used as part of
// the memoization cache key.
func (c AnalysisConfig) Fingerprint() string {
	return fmt.Sprintf("y=%d;min=%d;kw=%s;top=%d",
		c.TargetYear, c.MinDepositsForActive, strings.Join(c.DepositKeywords, ","), c.TopN)
}
