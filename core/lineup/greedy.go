package lineup

import "github.com/jsvec/faceoff/core/model"

// Greedy fills the roster in two single-pass stages: starters by
// value-per-cost descending, substitutes by cost ascending above a minimum
// value threshold. No refinement afterwards.
type Greedy struct{}

// Name implements Strategy.
func (Greedy) Name() string { return "greedy" }

// Advanced selects exactly like Greedy; what sets it apart is the scorer
// built under the same name. The distinct type keeps run records, events
// and metrics labelled with the strategy that actually ran.
type Advanced struct {
	Greedy
}

// Name implements Strategy.
func (Advanced) Name() string { return "advanced" }

// Build implements Strategy.
func (g Greedy) Build(cands []model.Candidate, cfg Config) (model.Lineup, model.ShortageReport) {
	grouped := groupByPosition(cands)
	starters := make(map[model.Position][]model.Candidate)
	subs := make(map[model.Position][]model.Candidate)
	var report model.ShortageReport

	// Stage A: starters, best value first. Budget overspend is handled by
	// the penalty model, not by per-candidate rejection here.
	for _, pos := range model.Positions {
		want := cfg.Quota.Starters[pos]
		if want == 0 {
			continue
		}
		ranked := rankByValue(grouped[pos])
		take := want
		if take > len(ranked) {
			take = len(ranked)
		}
		starters[pos] = ranked[:take]
		if take < want {
			report.Shortages = append(report.Shortages, model.Shortage{
				Position: pos, Set: "starters", Wanted: want, Filled: take,
			})
		}
	}

	// Stage B: substitutes from the remaining pool, cheapest first among
	// candidates meeting the value threshold; the threshold is relaxed
	// rather than leaving a slot empty.
	for _, pos := range model.Positions {
		want := cfg.Quota.Substitutes[pos]
		if want == 0 {
			continue
		}
		remaining := exclude(grouped[pos], starters[pos])

		eligible := filterByValue(remaining, cfg.MinSubValuePerCost)
		relaxed := false
		if len(eligible) < want && len(remaining) > len(eligible) {
			eligible = remaining
			relaxed = true
		}

		ranked := rankByCost(eligible)
		take := want
		if take > len(ranked) {
			take = len(ranked)
		}
		subs[pos] = ranked[:take]
		if take < want || relaxed {
			report.Shortages = append(report.Shortages, model.Shortage{
				Position: pos, Set: "substitutes", Wanted: want, Filled: take, Relaxed: relaxed,
			})
		}
	}

	return assemble(starters, subs, cfg.Budget), report
}

func filterByValue(cands []model.Candidate, min float64) []model.Candidate {
	var out []model.Candidate
	for _, c := range cands {
		if c.ValuePerCost >= min {
			out = append(out, c)
		}
	}
	return out
}

// exclude removes the already-selected candidates from the pool slice.
func exclude(pool, selected []model.Candidate) []model.Candidate {
	if len(selected) == 0 {
		return pool
	}
	taken := make(map[int]struct{}, len(selected))
	for _, c := range selected {
		taken[c.PoolIndex] = struct{}{}
	}
	var out []model.Candidate
	for _, c := range pool {
		if _, ok := taken[c.PoolIndex]; !ok {
			out = append(out, c)
		}
	}
	return out
}
