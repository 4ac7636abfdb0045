package lineup

import "github.com/jsvec/faceoff/core/model"

// Iterative starts from the greedy result and hill-climbs: one selected
// candidate at a time is swapped against an unselected candidate of the
// same role and same set, keeping the swap only when it strictly improves
// post-penalty effective value. Termination is guaranteed by the strict
// improvement requirement and the iteration cap.
type Iterative struct {
	seed Greedy
}

// SwapFunc is invoked for every accepted swap, letting callers observe the
// climb without coupling the strategy to a bus or logger.
type SwapFunc func(pos model.Position, set string, out, in model.Candidate, effective float64)

// Name implements Strategy.
func (Iterative) Name() string { return "iterative" }

// Build implements Strategy.
func (s Iterative) Build(cands []model.Candidate, cfg Config) (model.Lineup, model.ShortageReport) {
	return s.BuildObserved(cands, cfg, nil)
}

// BuildObserved runs the climb reporting accepted swaps through onSwap.
func (s Iterative) BuildObserved(cands []model.Candidate, cfg Config, onSwap SwapFunc) (model.Lineup, model.ShortageReport) {
	best, report := s.seed.Build(cands, cfg)
	grouped := groupByPosition(cands)

	for iter := 0; iter < cfg.MaxIterations; iter++ {
		improved := false
		for _, pos := range model.Positions {
			if s.improveSet(&best, grouped[pos], pos, "starters", cfg, onSwap) {
				improved = true
			}
			if s.improveSet(&best, grouped[pos], pos, "substitutes", cfg, onSwap) {
				improved = true
			}
		}
		if !improved {
			break
		}
	}
	return best, report
}

// improveSet tries every slot of one role set against every unselected
// same-role candidate and applies the single best strict improvement found.
// Returns whether a swap was accepted.
func (s Iterative) improveSet(best *model.Lineup, pool []model.Candidate, pos model.Position, set string, cfg Config, onSwap SwapFunc) bool {
	current := best.Starters[pos]
	if set == "substitutes" {
		current = best.Substitutes[pos]
	}
	if len(current) == 0 {
		return false
	}

	bestEffective := best.EffectiveValue
	bestSlot, bestAlt := -1, -1

	alternatives := unselected(pool, *best)
	for slot, out := range current {
		for altIdx, in := range alternatives {
			cost := best.TotalCost - out.Cost + in.Cost
			raw := best.RawValue - out.ProjectedValue + in.ProjectedValue
			effective := cfg.Budget.EffectiveValue(raw, cost)
			if effective > bestEffective {
				bestEffective = effective
				bestSlot, bestAlt = slot, altIdx
			}
		}
	}
	if bestSlot < 0 {
		return false
	}

	out := current[bestSlot]
	in := alternatives[bestAlt]
	next := replaceSlot(*best, pos, set, bestSlot, in, cfg.Budget)
	*best = next
	if onSwap != nil {
		onSwap(pos, set, out, in, next.EffectiveValue)
	}
	return true
}

// unselected filters pool down to candidates holding no lineup slot.
// Selection identity is the pool index, not the player ID: file-based pools
// may omit IDs, leaving several players at ID zero.
func unselected(pool []model.Candidate, l model.Lineup) []model.Candidate {
	selected := make(map[int]bool)
	for _, c := range l.All() {
		selected[c.PoolIndex] = true
	}
	var out []model.Candidate
	for _, c := range pool {
		if !selected[c.PoolIndex] {
			out = append(out, c)
		}
	}
	return out
}

// replaceSlot produces a new lineup with one slot swapped; lineups are
// values, never mutated in place.
func replaceSlot(l model.Lineup, pos model.Position, set string, slot int, in model.Candidate, policy BudgetPolicy) model.Lineup {
	starters := copySets(l.Starters)
	subs := copySets(l.Substitutes)
	if set == "starters" {
		starters[pos][slot] = in
	} else {
		subs[pos][slot] = in
	}
	return assemble(starters, subs, policy)
}

func copySets(in map[model.Position][]model.Candidate) map[model.Position][]model.Candidate {
	out := make(map[model.Position][]model.Candidate, len(in))
	for pos, cands := range in {
		cp := make([]model.Candidate, len(cands))
		copy(cp, cands)
		out[pos] = cp
	}
	return out
}
