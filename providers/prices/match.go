package prices

import "github.com/jsvec/faceoff/core/model"

// MatchReport summarises a pool-against-prices matching pass. Unresolved
// players stay in the report instead of disappearing from the pool.
type MatchReport struct {
	Matched    int
	Unresolved []string
}

// Apply assigns prices to every player in the pool that can be resolved
// against the list. Players whose name cannot be resolved keep a zero cost
// and are listed in the report; the scoring engine excludes them later.
func Apply(pool []model.Player, list PriceList) ([]model.Player, MatchReport) {
	out := make([]model.Player, len(pool))
	copy(out, pool)

	var report MatchReport
	for i := range out {
		if price, ok := resolve(out[i], list); ok {
			out[i].Cost = price
			report.Matched++
			continue
		}
		report.Unresolved = append(report.Unresolved, out[i].Name)
	}
	return out, report
}

// resolve tries the canonical "LastName F." key first, then the full name
// with all its variants.
func resolve(p model.Player, list PriceList) (float64, bool) {
	if price, ok := list.Lookup(p.PriceKey()); ok {
		return price, true
	}
	return list.Lookup(p.Name)
}
