package scoring

import (
	"context"
	"errors"
	"fmt"
	"runtime"
	"sync"

	"github.com/jsvec/faceoff/core/logger"
	"github.com/jsvec/faceoff/core/model"
)

// ErrZeroCost marks a candidate whose price is zero or negative. The caller
// excludes the candidate and continues; the run itself never aborts on it.
var ErrZeroCost = errors.New("scoring: zero or negative cost")

// ErrNoStats marks a candidate lacking the minimum statistical sample to
// score at all (no games in the current season and no baseline).
var ErrNoStats = errors.New("scoring: no usable statistics")

// Scorer projects a player's season fantasy value. Basic and bonus-augmented
// scoring share this single contract so strategies can swap one for the
// other without a separate code path.
type Scorer interface {
	ProjectedValue(p model.Player) (float64, error)
}

// BasicScorer blends current and prior season per-game rates through the
// logistic weight curve, or amplifies current-only rates for players without
// a baseline.
type BasicScorer struct {
	Cfg Config
}

// ProjectedValue implements Scorer.
func (s BasicScorer) ProjectedValue(p model.Player) (float64, error) {
	g := p.Current.GamesPlayed
	season := float64(s.Cfg.SeasonLength)

	currentRate := 0.0
	if g > 0 {
		currentRate = FantasyPoints(p.Position, p.Current) / float64(g)
	}

	if !p.HasBaseline() {
		if g <= 0 {
			return 0, ErrNoStats
		}
		return s.Cfg.Amplifier.Amplify(g) * currentRate * season, nil
	}

	priorRate := 0.0
	if p.Prior.GamesPlayed > 0 {
		priorRate = FantasyPoints(p.Position, *p.Prior) / float64(p.Prior.GamesPlayed)
	}
	if g <= 0 && p.Prior.GamesPlayed <= 0 {
		return 0, ErrNoStats
	}

	w := s.Cfg.Curve.CurrentWeight(g)
	return (w*currentRate + (1-w)*priorRate) * season, nil
}

// Exclusion records a candidate dropped during scoring together with the
// reason, so the caller can report instead of silently shrinking the pool.
type Exclusion struct {
	Player model.Player
	Reason error
}

// Engine turns raw players into scored candidates using an injected Scorer.
type Engine struct {
	scorer  Scorer
	log     logger.Logger
	workers int
}

// NewEngine creates an Engine. A nil logger or zero worker count fall back
// to sensible defaults.
func NewEngine(scorer Scorer, log logger.Logger, workers int) (*Engine, error) {
	if scorer == nil {
		return nil, fmt.Errorf("scoring: nil scorer")
	}
	if workers <= 0 {
		workers = runtime.NumCPU()
	}
	return &Engine{scorer: scorer, log: log, workers: workers}, nil
}

// Score produces a candidate for one player. poolIndex is the ingestion
// order used later as the deterministic tie-break.
func (e *Engine) Score(p model.Player, poolIndex int) (model.Candidate, error) {
	if err := p.Validate(); err != nil {
		return model.Candidate{}, err
	}
	if p.Cost <= 0 {
		return model.Candidate{}, fmt.Errorf("%s: %w", p.Name, ErrZeroCost)
	}
	value, err := e.scorer.ProjectedValue(p)
	if err != nil {
		return model.Candidate{}, fmt.Errorf("%s: %w", p.Name, err)
	}
	cand := model.Candidate{
		Player:         p,
		PoolIndex:      poolIndex,
		ProjectedValue: value,
		ValuePerCost:   value / p.Cost,
	}
	if b, ok := e.scorer.(interface{ Bonus(model.Player) float64 }); ok {
		cand.Bonus = b.Bonus(p)
	}
	return cand, nil
}

// ScorePool scores every player concurrently and reassembles the results in
// ingestion order. Players that cannot be scored are returned as exclusions
// rather than failing the run.
func (e *Engine) ScorePool(ctx context.Context, players []model.Player) ([]model.Candidate, []Exclusion) {
	type slot struct {
		cand model.Candidate
		err  error
	}
	slots := make([]slot, len(players))

	jobs := make(chan int)
	var wg sync.WaitGroup
	for w := 0; w < e.workers; w++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			for i := range jobs {
				cand, err := e.Score(players[i], i)
				slots[i] = slot{cand: cand, err: err}
			}
		}()
	}

feed:
	for i := range players {
		select {
		case jobs <- i:
		case <-ctx.Done():
			break feed
		}
	}
	close(jobs)
	wg.Wait()

	candidates := make([]model.Candidate, 0, len(players))
	var excluded []Exclusion
	for i, s := range slots {
		if s.err != nil {
			if e.log != nil {
				e.log.Warnf("excluding %s: %v", players[i].Name, s.err)
			}
			excluded = append(excluded, Exclusion{Player: players[i], Reason: s.err})
			continue
		}
		if s.cand.Name == "" {
			// Slot never ran because the context was cancelled.
			continue
		}
		candidates = append(candidates, s.cand)
	}
	return candidates, excluded
}
