package lineup

import (
	"sort"

	"github.com/jsvec/faceoff/core/model"
)

// Strategy turns scored candidates into a quota-respecting lineup. All
// strategies share one contract; they differ only in how they search the
// selection space, not in the shape of their result.
type Strategy interface {
	Name() string
	Build(cands []model.Candidate, cfg Config) (model.Lineup, model.ShortageReport)
}

// groupByPosition splits candidates by role tag preserving pool order, so
// every later stable sort keeps ingestion order as the tie-break.
func groupByPosition(cands []model.Candidate) map[model.Position][]model.Candidate {
	grouped := make(map[model.Position][]model.Candidate, len(model.Positions))
	for _, c := range cands {
		grouped[c.Position] = append(grouped[c.Position], c)
	}
	return grouped
}

// rankByValue orders candidates by value-per-cost descending, stable on
// pool order.
func rankByValue(cands []model.Candidate) []model.Candidate {
	out := make([]model.Candidate, len(cands))
	copy(out, cands)
	sort.SliceStable(out, func(i, j int) bool {
		return out[i].ValuePerCost > out[j].ValuePerCost
	})
	return out
}

// rankByCost orders candidates by cost ascending, stable on pool order.
func rankByCost(cands []model.Candidate) []model.Candidate {
	out := make([]model.Candidate, len(cands))
	copy(out, cands)
	sort.SliceStable(out, func(i, j int) bool {
		return out[i].Cost < out[j].Cost
	})
	return out
}

// assemble computes the aggregate figures and freezes the lineup value.
func assemble(starters, subs map[model.Position][]model.Candidate, policy BudgetPolicy) model.Lineup {
	l := model.Lineup{Starters: starters, Substitutes: subs}
	for _, c := range l.All() {
		l.TotalCost += c.Cost
		l.RawValue += c.ProjectedValue
	}
	l.PenaltyFraction = policy.PenaltyFraction(l.TotalCost)
	l.EffectiveValue = policy.EffectiveValue(l.RawValue, l.TotalCost)
	return l
}
