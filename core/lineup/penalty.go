package lineup

// PenaltyFraction returns the effective-value discount for a total roster
// cost: zero at or below the base budget, growing linearly with the
// overspend and capped at 1.
func (p BudgetPolicy) PenaltyFraction(totalCost float64) float64 {
	if totalCost <= p.Base {
		return 0
	}
	f := (totalCost - p.Base) * p.PenaltyPerUnit
	if f > 1 {
		return 1
	}
	return f
}

// EffectiveValue discounts the raw value by the budget penalty.
func (p BudgetPolicy) EffectiveValue(rawValue, totalCost float64) float64 {
	return rawValue * (1 - p.PenaltyFraction(totalCost))
}
