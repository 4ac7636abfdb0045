package scoring

import "github.com/jsvec/faceoff/core/model"

// regressionWeight caps how much of the projection the GameScore regression
// may contribute; the fit quality scales it down further.
const regressionWeight = 0.25

// minUsefulR2 is the fit quality below which the regression adds noise
// instead of signal and is ignored.
const minUsefulR2 = 0.2

// AdvancedScorer is the scorer behind the advanced strategy: the basic
// projection wrapped with the correlation bonus, pulled toward the
// pool-wide GameScore regression when the fit carries enough signal.
type AdvancedScorer struct {
	bonus  *BonusScorer
	model  GameScoreModel
	usable bool
	season float64
}

// NewAdvancedScorer fits the GameScore regression over the pool and wraps
// the basic scorer with the correlation bonus model.
func NewAdvancedScorer(cfg Config, pool []model.Player) *AdvancedScorer {
	m, ok := FitGameScoreModel(pool)
	return &AdvancedScorer{
		bonus:  NewBonusScorer(BasicScorer{Cfg: cfg}, pool),
		model:  m,
		usable: ok && m.R2 >= minUsefulR2,
		season: float64(cfg.SeasonLength),
	}
}

// ProjectedValue implements Scorer.
func (s *AdvancedScorer) ProjectedValue(p model.Player) (float64, error) {
	v, err := s.bonus.ProjectedValue(p)
	if err != nil {
		return 0, err
	}
	if !s.usable || p.Current.GamesPlayed <= 0 {
		return v, nil
	}
	reg := s.model.Project(GameScore(p.Position, p.Current)) * s.season
	w := regressionWeight * s.model.R2
	return (1-w)*v + w*reg, nil
}

// Bonus exposes the inner correlation bonus for reporting.
func (s *AdvancedScorer) Bonus(p model.Player) float64 { return s.bonus.Bonus(p) }
