package scoring

import (
	"math"
	"testing"

	"github.com/jsvec/faceoff/core/model"
)

func regressionPool(n int) []model.Player {
	var pool []model.Player
	for i := 1; i <= n; i++ {
		st := skaterStats(40, float64(i), float64(i))
		st.Shots = float64(i * 10)
		pool = append(pool, model.NewRookie(i, "Sample", "BOS", model.Forward, st))
	}
	return pool
}

func TestAdvancedScorer_FallsBackOnTinyPool(t *testing.T) {
	cfg := defaultConfig()
	pool := regressionPool(3)
	adv := NewAdvancedScorer(cfg, pool)
	bonus := NewBonusScorer(BasicScorer{Cfg: cfg}, pool)

	got, err := adv.ProjectedValue(pool[1])
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	want, err := bonus.ProjectedValue(pool[1])
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if math.Abs(got-want) > 1e-9 {
		t.Fatalf("without a fit the advanced score must equal the bonus score: %v vs %v", got, want)
	}
}

func TestAdvancedScorer_BlendsRegression(t *testing.T) {
	cfg := defaultConfig()
	pool := regressionPool(15)
	adv := NewAdvancedScorer(cfg, pool)
	if !adv.usable {
		t.Fatal("expected a usable fit over 15 aligned samples")
	}

	p := pool[7]
	bonusVal, err := adv.bonus.ProjectedValue(p)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	reg := adv.model.Project(GameScore(p.Position, p.Current)) * float64(cfg.SeasonLength)
	w := regressionWeight * adv.model.R2
	want := (1-w)*bonusVal + w*reg

	got, err := adv.ProjectedValue(p)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if math.Abs(got-want) > 1e-9 {
		t.Fatalf("blend = %v, want %v", got, want)
	}
}

func TestAdvancedScorer_PropagatesScorerErrors(t *testing.T) {
	cfg := defaultConfig()
	pool := regressionPool(15)
	adv := NewAdvancedScorer(cfg, pool)

	ghost := model.NewRookie(99, "Ghost", "SJS", model.Forward, model.SeasonStats{})
	if _, err := adv.ProjectedValue(ghost); err == nil {
		t.Fatal("expected an error for a player without games")
	}
}
