package scoring

import (
	"sort"

	"gonum.org/v1/gonum/stat"

	"github.com/jsvec/faceoff/core/model"
)

// bonusCap limits the total correlation bonus a single player can earn.
const bonusCap = 10.0

// positionBench holds per-role averages of the top performers, against
// which individual players are compared.
type positionBench struct {
	savePct     float64
	gaa         float64
	shootingPct float64
	pointsPerGP float64
}

// BonusScorer augments an inner Scorer with a correlation-derived bonus:
// players beating the top-ten average of their role in unmapped categories
// (save percentage, goals against average, shooting percentage, points per
// game) earn up to two extra points per category.
type BonusScorer struct {
	Inner Scorer
	bench map[model.Position]positionBench
}

// NewBonusScorer precomputes the top-performer benchmarks from the pool and
// wraps inner with the bonus model.
func NewBonusScorer(inner Scorer, pool []model.Player) *BonusScorer {
	b := &BonusScorer{Inner: inner, bench: make(map[model.Position]positionBench)}
	for _, pos := range model.Positions {
		b.bench[pos] = benchmark(topPerformers(pool, pos, 10))
	}
	return b
}

// topPerformers returns the n players of the role with the most current
// season points (wins for goalies).
func topPerformers(pool []model.Player, pos model.Position, n int) []model.Player {
	var group []model.Player
	for _, p := range pool {
		if p.Position == pos {
			group = append(group, p)
		}
	}
	sort.SliceStable(group, func(i, j int) bool {
		if pos == model.Goalie {
			return group[i].Current.Wins > group[j].Current.Wins
		}
		return group[i].Current.Points > group[j].Current.Points
	})
	if len(group) > n {
		group = group[:n]
	}
	return group
}

func benchmark(top []model.Player) positionBench {
	var savePcts, gaas, shootPcts, ppgs []float64
	for _, p := range top {
		if p.Current.SavePct > 0 {
			savePcts = append(savePcts, p.Current.SavePct)
		}
		if p.Current.GAA > 0 {
			gaas = append(gaas, p.Current.GAA)
		}
		if p.Current.ShootingPct > 0 {
			shootPcts = append(shootPcts, p.Current.ShootingPct)
		}
		if p.Current.GamesPlayed > 0 {
			ppgs = append(ppgs, p.Current.Points/float64(p.Current.GamesPlayed))
		}
	}
	return positionBench{
		savePct:     meanOrZero(savePcts),
		gaa:         meanOrZero(gaas),
		shootingPct: meanOrZero(shootPcts),
		pointsPerGP: meanOrZero(ppgs),
	}
}

func meanOrZero(xs []float64) float64 {
	if len(xs) == 0 {
		return 0
	}
	return stat.Mean(xs, nil)
}

// ProjectedValue implements Scorer by adding the capped bonus on top of the
// inner projection.
func (b *BonusScorer) ProjectedValue(p model.Player) (float64, error) {
	base, err := b.Inner.ProjectedValue(p)
	if err != nil {
		return 0, err
	}
	return base + b.Bonus(p), nil
}

// Bonus computes the correlation bonus for one player.
func (b *BonusScorer) Bonus(p model.Player) float64 {
	bench, ok := b.bench[p.Position]
	if !ok {
		return 0
	}
	bonus := 0.0
	if p.Position == model.Goalie {
		if bench.savePct > 0 && p.Current.SavePct > 0 {
			switch {
			case p.Current.SavePct >= bench.savePct*1.05:
				bonus += 2
			case p.Current.SavePct >= bench.savePct:
				bonus += 1
			}
		}
		if bench.gaa > 0 && p.Current.GAA > 0 {
			// Lower is better.
			switch {
			case p.Current.GAA <= bench.gaa*0.95:
				bonus += 2
			case p.Current.GAA <= bench.gaa:
				bonus += 1
			}
		}
	} else {
		if bench.shootingPct > 0 && p.Current.ShootingPct > 0 {
			switch {
			case p.Current.ShootingPct >= bench.shootingPct*1.1:
				bonus += 2
			case p.Current.ShootingPct >= bench.shootingPct:
				bonus += 1
			}
		}
		if bench.pointsPerGP > 0 && p.Current.GamesPlayed > 0 {
			ppg := p.Current.Points / float64(p.Current.GamesPlayed)
			switch {
			case ppg >= bench.pointsPerGP*1.1:
				bonus += 2
			case ppg >= bench.pointsPerGP:
				bonus += 1
			}
		}
	}
	if bonus > bonusCap {
		bonus = bonusCap
	}
	return bonus
}
