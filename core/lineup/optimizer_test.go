package lineup

import (
	"context"
	"path/filepath"
	"testing"

	"github.com/jsvec/faceoff/core/events"
	"github.com/jsvec/faceoff/core/lineup/history"
	"github.com/jsvec/faceoff/core/metrics"
	"github.com/jsvec/faceoff/core/model"
	"github.com/jsvec/faceoff/core/scoring"
	"github.com/jsvec/faceoff/internal/eventbus"
)

type captureSink struct {
	runs       []metrics.RunResult
	exclusions []metrics.ExclusionEvent
}

func (s *captureSink) RecordRun(r metrics.RunResult) error { s.runs = append(s.runs, r); return nil }
func (s *captureSink) RecordExclusion(e metrics.ExclusionEvent) error {
	s.exclusions = append(s.exclusions, e)
	return nil
}

func testPool() []model.Player {
	veteran := func(id int, name string, pos model.Position, cost float64, stats model.SeasonStats) model.Player {
		p := model.NewVeteran(id, name, "TST", pos, stats, stats)
		p.Cost = cost
		return p
	}
	skater := func(goals, assists float64) model.SeasonStats {
		return model.SeasonStats{
			GamesPlayed: 40, Goals: goals, Assists: assists,
			Points: goals + assists, Shots: goals * 8, PlusMinus: 5,
		}
	}
	goalie := func(wins, saves float64) model.SeasonStats {
		return model.SeasonStats{
			GamesPlayed: 30, Wins: wins, Losses: 30 - wins,
			Saves: saves, ShotsAgainst: saves * 1.1, GoalsAgainst: saves * 0.1,
		}
	}
	pool := []model.Player{
		veteran(1, "Top Goalie", model.Goalie, 25, goalie(22, 800)),
		veteran(2, "Backup Goalie", model.Goalie, 8, goalie(10, 500)),
		veteran(3, "Third Goalie", model.Goalie, 6, goalie(8, 420)),
	}
	id := 4
	for i := 0; i < 6; i++ {
		pool = append(pool, veteran(id, "Defender", model.Defense, float64(8+i), skater(4+float64(i), 18)))
		id++
	}
	for i := 0; i < 8; i++ {
		pool = append(pool, veteran(id, "Winger", model.Forward, float64(6+i), skater(10+2*float64(i), 20)))
		id++
	}
	// One unpriced player that must be excluded, not fatal.
	broken := model.NewRookie(id, "Unpriced", "TST", model.Forward, skater(5, 5))
	pool = append(pool, broken)
	return pool
}

func newTestOptimizer(t *testing.T, strategy Strategy, opts ...Option) *Optimizer {
	t.Helper()
	var scfg scoring.Config
	scfg.SetDefaults()
	engine, err := scoring.NewEngine(scoring.BasicScorer{Cfg: scfg}, nil, 2)
	if err != nil {
		t.Fatalf("engine: %v", err)
	}
	cfg := Config{}
	cfg.SetDefaults()
	opt, err := NewOptimizer(engine, strategy, cfg, nil, opts...)
	if err != nil {
		t.Fatalf("optimizer: %v", err)
	}
	return opt
}

func TestOptimizerRunRecordsAndPersists(t *testing.T) {
	sink := &captureSink{}
	store, err := history.NewJSONLStore(filepath.Join(t.TempDir(), "runs.jsonl"))
	if err != nil {
		t.Fatalf("store: %v", err)
	}
	opt := newTestOptimizer(t, Greedy{}, WithMetrics(sink), WithHistory(store))

	res, err := opt.Run(context.Background(), testPool())
	if err != nil {
		t.Fatalf("run: %v", err)
	}
	if res.RunID == "" {
		t.Fatalf("run must carry an id")
	}
	if len(res.Excluded) != 1 || res.Excluded[0].Player.Name != "Unpriced" {
		t.Fatalf("expected the unpriced player excluded, got %+v", res.Excluded)
	}
	if res.Lineup.Size() == 0 {
		t.Fatalf("expected a non-empty lineup")
	}

	if len(sink.runs) != 1 {
		t.Fatalf("expected one recorded run, got %d", len(sink.runs))
	}
	rec := sink.runs[0]
	if rec.RunID != res.RunID || rec.Strategy != "greedy" {
		t.Errorf("run record mismatch: %+v", rec)
	}
	if rec.Scored != len(res.Candidates) || rec.Excluded != 1 {
		t.Errorf("pool counters mismatch: %+v", rec)
	}
	if len(sink.exclusions) != 1 {
		t.Errorf("expected one exclusion record, got %d", len(sink.exclusions))
	}

	stored, err := store.Query(context.Background(), history.Query{})
	if err != nil {
		t.Fatalf("query: %v", err)
	}
	if len(stored) != 1 || stored[0].ID != res.RunID {
		t.Fatalf("expected the run persisted, got %+v", stored)
	}
	if len(stored[0].Roster) != res.Lineup.Size() {
		t.Errorf("roster size %d, lineup size %d", len(stored[0].Roster), res.Lineup.Size())
	}
}

func TestOptimizerPublishesEvents(t *testing.T) {
	bus := eventbus.New()
	ch := bus.Subscribe()
	opt := newTestOptimizer(t, Greedy{}, WithBus(bus))

	res, err := opt.Run(context.Background(), testPool())
	if err != nil {
		t.Fatalf("run: %v", err)
	}

	var sawExclusion, sawRun bool
drain:
	for {
		select {
		case e := <-ch:
			switch ev := e.(type) {
			case events.ExclusionEvent:
				sawExclusion = true
			case events.RunEvent:
				sawRun = true
				if ev.RunID != res.RunID {
					t.Errorf("run event id %s, want %s", ev.RunID, res.RunID)
				}
			}
		default:
			break drain
		}
	}
	if !sawExclusion || !sawRun {
		t.Fatalf("expected exclusion and run events, got exclusion=%v run=%v", sawExclusion, sawRun)
	}
}

func TestOptimizerEmptyPoolFails(t *testing.T) {
	opt := newTestOptimizer(t, Greedy{})
	if _, err := opt.Run(context.Background(), nil); err == nil {
		t.Fatalf("expected an error for an empty pool")
	}
}

func TestOptimizerIterativeMatchesOrBeatsGreedy(t *testing.T) {
	pool := testPool()
	greedyRes, err := newTestOptimizer(t, Greedy{}).Run(context.Background(), pool)
	if err != nil {
		t.Fatalf("greedy run: %v", err)
	}
	iterRes, err := newTestOptimizer(t, Iterative{}).Run(context.Background(), pool)
	if err != nil {
		t.Fatalf("iterative run: %v", err)
	}
	if iterRes.Lineup.EffectiveValue < greedyRes.Lineup.EffectiveValue {
		t.Fatalf("iterative %v must not trail greedy %v",
			iterRes.Lineup.EffectiveValue, greedyRes.Lineup.EffectiveValue)
	}
}
