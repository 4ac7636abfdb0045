package model

// Candidate is a scored player ready for selection. It is immutable once
// produced by the scoring engine; the optimizer only selects references.
type Candidate struct {
	Player

	// PoolIndex is the ingestion-order index used as the deterministic
	// tie-break during ranking.
	PoolIndex int

	ProjectedValue float64
	ValuePerCost   float64

	// Bonus is the correlation-derived extra already folded into
	// ProjectedValue when the bonus scorer produced this candidate.
	Bonus float64
}

// Lineup is one optimisation result: disjoint starter and substitute sets
// grouped by role, with aggregate cost and value figures. A Lineup is never
// mutated after construction; re-optimisation yields a new value.
type Lineup struct {
	Starters    map[Position][]Candidate `json:"starters"`
	Substitutes map[Position][]Candidate `json:"substitutes"`

	TotalCost       float64 `json:"total_cost"`
	RawValue        float64 `json:"raw_value"`
	PenaltyFraction float64 `json:"penalty_fraction"`
	EffectiveValue  float64 `json:"effective_value"`
}

// All returns every selected candidate, starters first, in role order.
func (l Lineup) All() []Candidate {
	var out []Candidate
	for _, pos := range Positions {
		out = append(out, l.Starters[pos]...)
	}
	for _, pos := range Positions {
		out = append(out, l.Substitutes[pos]...)
	}
	return out
}

// Size returns the number of filled slots.
func (l Lineup) Size() int { return len(l.All()) }

// Contains reports whether the player identified by id holds any slot.
func (l Lineup) Contains(id int) bool {
	for _, c := range l.All() {
		if c.ID == id {
			return true
		}
	}
	return false
}
