package lineup

import (
	"reflect"
	"testing"

	"github.com/jsvec/faceoff/core/model"
)

func TestIterativeNeverWorseThanGreedy(t *testing.T) {
	// Greedy starts the expensive high-ratio forward, pushing cost over
	// budget; swapping him out is the better post-penalty choice.
	pool := []model.Candidate{
		cand(0, "Ratio", model.Forward, 90, 1800),   // 20.0
		cand(1, "Steady", model.Forward, 30, 450),   // 15.0
		cand(2, "Anchor", model.Defense, 20, 260),   // 13.0
		cand(3, "Backup", model.Defense, 15, 150),   // 10.0
	}
	cfg := Config{Budget: BudgetPolicy{Base: 60, PenaltyPerUnit: 0.02}}
	cfg.SetDefaults()
	cfg.Quota = quota(map[model.Position]int{model.Forward: 1, model.Defense: 1}, nil)

	greedy, _ := Greedy{}.Build(pool, cfg)
	improved, _ := Iterative{}.Build(pool, cfg)

	if improved.EffectiveValue < greedy.EffectiveValue {
		t.Fatalf("iterative %v worse than greedy %v", improved.EffectiveValue, greedy.EffectiveValue)
	}
	if improved.EffectiveValue <= greedy.EffectiveValue {
		t.Fatalf("expected a strict improvement on this pool, greedy=%v iterative=%v",
			greedy.EffectiveValue, improved.EffectiveValue)
	}
	if got := improved.Starters[model.Forward][0].Name; got != "Steady" {
		t.Errorf("expected swap to Steady, got %s", got)
	}
}

func TestIterativeObservesAcceptedSwaps(t *testing.T) {
	pool := []model.Candidate{
		cand(0, "Ratio", model.Forward, 90, 1800),
		cand(1, "Steady", model.Forward, 30, 450),
	}
	cfg := Config{Budget: BudgetPolicy{Base: 60, PenaltyPerUnit: 0.03}}
	cfg.SetDefaults()
	cfg.Quota = quota(map[model.Position]int{model.Forward: 1}, nil)

	var swaps []string
	_, _ = Iterative{}.BuildObserved(pool, cfg, func(pos model.Position, set string, out, in model.Candidate, effective float64) {
		swaps = append(swaps, out.Name+"->"+in.Name)
	})
	if len(swaps) != 1 || swaps[0] != "Ratio->Steady" {
		t.Fatalf("expected one observed swap Ratio->Steady, got %v", swaps)
	}
}

func TestIterativeImprovesPoolWithoutPlayerIDs(t *testing.T) {
	// File-based pools may carry no player IDs at all, leaving every ID
	// zero. Swap alternatives are identified by pool index, so the climb
	// must still find the better forward.
	pool := []model.Candidate{
		cand(0, "Ratio", model.Forward, 90, 1800),
		cand(1, "Steady", model.Forward, 30, 450),
		cand(2, "Anchor", model.Defense, 20, 260),
		cand(3, "Backup", model.Defense, 15, 150),
	}
	for i := range pool {
		pool[i].ID = 0
	}
	cfg := Config{Budget: BudgetPolicy{Base: 60, PenaltyPerUnit: 0.02}}
	cfg.SetDefaults()
	cfg.Quota = quota(map[model.Position]int{model.Forward: 1, model.Defense: 1}, nil)

	greedy, _ := Greedy{}.Build(pool, cfg)
	improved, _ := Iterative{}.Build(pool, cfg)
	if improved.EffectiveValue <= greedy.EffectiveValue {
		t.Fatalf("expected a strict improvement despite zero IDs, greedy=%v iterative=%v",
			greedy.EffectiveValue, improved.EffectiveValue)
	}
	if got := improved.Starters[model.Forward][0].Name; got != "Steady" {
		t.Errorf("expected swap to Steady, got %s", got)
	}
}

func TestIterativeDeterministic(t *testing.T) {
	var pool []model.Candidate
	id := 0
	for _, pos := range model.Positions {
		for i := 0; i < 9; i++ {
			pool = append(pool, cand(id, string(pos)+"-p", pos, float64(6+i%4), float64(25+9*i)))
			id++
		}
	}
	cfg := Config{Budget: BudgetPolicy{Base: 50, PenaltyPerUnit: 0.02}}
	cfg.SetDefaults()

	first, _ := Iterative{}.Build(pool, cfg)
	second, _ := Iterative{}.Build(pool, cfg)
	if !reflect.DeepEqual(first, second) {
		t.Fatalf("same pool and config must yield the same lineup")
	}
}

func TestIterativeKeepsSeedWhenNoImprovementExists(t *testing.T) {
	pool := []model.Candidate{
		cand(0, "Only", model.Goalie, 10, 100),
	}
	cfg := Config{}
	cfg.SetDefaults()
	cfg.Quota = quota(map[model.Position]int{model.Goalie: 1}, nil)

	greedy, _ := Greedy{}.Build(pool, cfg)
	improved, _ := Iterative{}.Build(pool, cfg)
	if !reflect.DeepEqual(greedy, improved) {
		t.Fatalf("no alternatives means the greedy seed must survive unchanged")
	}
}

func TestIterativeSetsStayDisjoint(t *testing.T) {
	var pool []model.Candidate
	id := 0
	for _, pos := range model.Positions {
		for i := 0; i < 8; i++ {
			pool = append(pool, cand(id, string(pos)+"-p", pos, float64(5+i), float64(20+11*i)))
			id++
		}
	}
	cfg := Config{Budget: BudgetPolicy{Base: 40, PenaltyPerUnit: 0.02}}
	cfg.SetDefaults()

	l, _ := Iterative{}.Build(pool, cfg)
	seen := make(map[int]bool)
	for _, c := range l.All() {
		if seen[c.PoolIndex] {
			t.Fatalf("candidate %d holds two slots", c.PoolIndex)
		}
		seen[c.PoolIndex] = true
	}
}
