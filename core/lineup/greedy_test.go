package lineup

import (
	"math"
	"reflect"
	"testing"

	"github.com/jsvec/faceoff/core/model"
)

func cand(id int, name string, pos model.Position, cost, value float64) model.Candidate {
	return model.Candidate{
		Player:         model.Player{ID: id, Name: name, Position: pos, Cost: cost},
		PoolIndex:      id,
		ProjectedValue: value,
		ValuePerCost:   value / cost,
	}
}

func quota(starters, subs map[model.Position]int) model.RoleQuota {
	return model.RoleQuota{Starters: starters, Substitutes: subs}
}

func TestGreedyStartersByValuePerCost(t *testing.T) {
	// B carries the best value per cost despite the lowest raw value.
	pool := []model.Candidate{
		cand(0, "A", model.Forward, 20, 300), // 15.0
		cand(1, "B", model.Forward, 15, 250), // 16.67
		cand(2, "C", model.Forward, 30, 400), // 13.3
	}
	cfg := Config{
		Budget: BudgetPolicy{Base: 100, PenaltyPerUnit: 0.01},
		Quota:  quota(map[model.Position]int{model.Forward: 1}, nil),
	}
	cfg.SetDefaults()

	l, report := Greedy{}.Build(pool, cfg)
	if len(report.Shortages) != 0 {
		t.Fatalf("unexpected shortages: %+v", report.Shortages)
	}
	got := l.Starters[model.Forward]
	if len(got) != 1 || got[0].Name != "B" {
		t.Fatalf("expected B to start, got %+v", got)
	}
}

func TestGreedyTieBreakByPoolOrder(t *testing.T) {
	pool := []model.Candidate{
		cand(0, "First", model.Defense, 10, 100),
		cand(1, "Second", model.Defense, 10, 100),
	}
	cfg := Config{Quota: quota(map[model.Position]int{model.Defense: 1}, nil)}
	cfg.SetDefaults()

	l, _ := Greedy{}.Build(pool, cfg)
	if l.Starters[model.Defense][0].Name != "First" {
		t.Errorf("equal value-per-cost must resolve by ingestion order")
	}
}

func TestGreedySubstitutesCheapestAboveThreshold(t *testing.T) {
	pool := []model.Candidate{
		cand(0, "Star", model.Forward, 30, 600),   // starter
		cand(1, "Cheap", model.Forward, 5, 10),    // 2.0, cheapest eligible
		cand(2, "Mid", model.Forward, 12, 30),     // 2.5
		cand(3, "Dud", model.Forward, 4, 1),       // 0.25, below threshold
	}
	cfg := Config{MinSubValuePerCost: 0.5}
	cfg.SetDefaults()
	cfg.Quota = quota(
		map[model.Position]int{model.Forward: 1},
		map[model.Position]int{model.Forward: 1},
	)

	l, report := Greedy{}.Build(pool, cfg)
	subs := l.Substitutes[model.Forward]
	if len(subs) != 1 || subs[0].Name != "Cheap" {
		t.Fatalf("expected cheapest eligible substitute, got %+v", subs)
	}
	if len(report.Shortages) != 0 {
		t.Errorf("no shortage expected: %+v", report.Shortages)
	}
}

func TestGreedyRelaxesThresholdRatherThanLeavingSlotEmpty(t *testing.T) {
	pool := []model.Candidate{
		cand(0, "Star", model.Goalie, 30, 600),
		cand(1, "Backup", model.Goalie, 8, 2), // 0.25, below threshold
	}
	cfg := Config{MinSubValuePerCost: 0.5}
	cfg.SetDefaults()
	cfg.Quota = quota(
		map[model.Position]int{model.Goalie: 1},
		map[model.Position]int{model.Goalie: 1},
	)

	l, report := Greedy{}.Build(pool, cfg)
	if got := l.Substitutes[model.Goalie]; len(got) != 1 || got[0].Name != "Backup" {
		t.Fatalf("expected relaxed threshold to admit Backup, got %+v", got)
	}
	if report.Relaxations() != 1 {
		t.Errorf("relaxation must be reported, got %+v", report.Shortages)
	}
	if report.Infeasible() {
		t.Errorf("relaxed but filled lineup is feasible")
	}
}

func TestGreedyReportsPartialFulfilment(t *testing.T) {
	pool := []model.Candidate{
		cand(0, "Lone", model.Defense, 10, 100),
	}
	cfg := Config{}
	cfg.SetDefaults()
	cfg.Quota = quota(map[model.Position]int{model.Defense: 2, model.Forward: 1}, nil)

	l, report := Greedy{}.Build(pool, cfg)
	if l.Size() != 1 {
		t.Fatalf("expected the one available candidate selected, got %d", l.Size())
	}
	if !report.Infeasible() {
		t.Fatalf("unfilled quota must make the report infeasible")
	}
	if len(report.Shortages) != 2 {
		t.Errorf("expected shortages for defense and forward, got %+v", report.Shortages)
	}
}

func TestGreedyStarterAndSubstituteSetsAreDisjoint(t *testing.T) {
	var pool []model.Candidate
	id := 0
	for _, pos := range model.Positions {
		for i := 0; i < 8; i++ {
			pool = append(pool, cand(id, string(pos)+"-p", pos, float64(5+i), float64(40+10*i)))
			id++
		}
	}
	cfg := Config{}
	cfg.SetDefaults()

	l, _ := Greedy{}.Build(pool, cfg)
	seen := make(map[int]bool)
	for _, c := range l.All() {
		if seen[c.PoolIndex] {
			t.Fatalf("candidate %d selected twice", c.PoolIndex)
		}
		seen[c.PoolIndex] = true
	}
}

func TestGreedyDeterministicAcrossRuns(t *testing.T) {
	var pool []model.Candidate
	id := 0
	for _, pos := range model.Positions {
		for i := 0; i < 10; i++ {
			pool = append(pool, cand(id, string(pos)+"-p", pos, float64(4+i%5), float64(30+7*i)))
			id++
		}
	}
	cfg := Config{}
	cfg.SetDefaults()

	first, firstReport := Greedy{}.Build(pool, cfg)
	second, secondReport := Greedy{}.Build(pool, cfg)
	if !reflect.DeepEqual(first, second) {
		t.Fatalf("same pool and config must yield the same lineup")
	}
	if !reflect.DeepEqual(firstReport, secondReport) {
		t.Fatalf("same pool and config must yield the same report")
	}
}

func TestGreedyBudgetOverspendIsPenalisedNotRejected(t *testing.T) {
	pool := []model.Candidate{
		cand(0, "Pricey", model.Forward, 120, 2400),
	}
	cfg := Config{Budget: BudgetPolicy{Base: 100, PenaltyPerUnit: 0.01}}
	cfg.SetDefaults()
	cfg.Quota = quota(map[model.Position]int{model.Forward: 1}, nil)

	l, _ := Greedy{}.Build(pool, cfg)
	if l.Size() != 1 {
		t.Fatalf("expensive candidate must still be selectable")
	}
	if math.Abs(l.PenaltyFraction-0.20) > 1e-9 {
		t.Errorf("PenaltyFraction = %v, want 0.20", l.PenaltyFraction)
	}
	if math.Abs(l.EffectiveValue-1920) > 1e-9 {
		t.Errorf("EffectiveValue = %v, want 1920", l.EffectiveValue)
	}
}
