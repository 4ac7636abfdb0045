package lineup

import (
	"fmt"

	"github.com/jsvec/faceoff/core/model"
)

// BudgetPolicy defines the spend threshold and the penalty applied above it.
// Target is a soft ceiling strategies may consult; it never hard-rejects.
type BudgetPolicy struct {
	Base           float64 `json:"base"`
	PenaltyPerUnit float64 `json:"penalty_per_unit"`
	Target         float64 `json:"target"`
}

// Config groups optimizer settings.
type Config struct {
	Strategy string          `json:"strategy"`
	Budget   BudgetPolicy    `json:"budget"`
	Quota    model.RoleQuota `json:"quota"`

	// MinSubValuePerCost filters substitute candidates; relaxed when too
	// few candidates qualify.
	MinSubValuePerCost float64 `json:"min_sub_value_per_cost"`

	// MaxIterations caps the iterative strategy's improvement passes.
	MaxIterations int `json:"max_iterations"`
}

// SetDefaults fills zero values with the standard contest settings.
func (c *Config) SetDefaults() {
	if c.Strategy == "" {
		c.Strategy = "greedy"
	}
	if c.Budget.Base == 0 {
		c.Budget.Base = 100
	}
	if c.Budget.PenaltyPerUnit == 0 {
		c.Budget.PenaltyPerUnit = 0.01
	}
	if c.MinSubValuePerCost == 0 {
		c.MinSubValuePerCost = 0.5
	}
	if c.MaxIterations == 0 {
		c.MaxIterations = 100
	}
	if c.Quota.Starters == nil {
		c.Quota = model.DefaultQuota()
	}
}

// Validate rejects contradictory policy values before any selection work.
func (c Config) Validate() error {
	switch c.Strategy {
	case "greedy", "iterative", "advanced":
	default:
		return fmt.Errorf("lineup: unknown strategy %q", c.Strategy)
	}
	if c.Budget.Base < 0 {
		return fmt.Errorf("lineup: negative base budget %v", c.Budget.Base)
	}
	if c.Budget.PenaltyPerUnit < 0 {
		return fmt.Errorf("lineup: negative penalty rate %v", c.Budget.PenaltyPerUnit)
	}
	if c.Budget.Target < 0 {
		return fmt.Errorf("lineup: negative target budget %v", c.Budget.Target)
	}
	if c.MinSubValuePerCost < 0 {
		return fmt.Errorf("lineup: negative substitute threshold %v", c.MinSubValuePerCost)
	}
	if c.MaxIterations < 1 {
		return fmt.Errorf("lineup: iteration cap must be at least 1, got %d", c.MaxIterations)
	}
	for pos, n := range c.Quota.Starters {
		if n < 0 {
			return fmt.Errorf("lineup: negative starter quota for %s", pos)
		}
	}
	for pos, n := range c.Quota.Substitutes {
		if n < 0 {
			return fmt.Errorf("lineup: negative substitute quota for %s", pos)
		}
	}
	return nil
}
