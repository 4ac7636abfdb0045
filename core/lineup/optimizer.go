package lineup

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"

	"github.com/jsvec/faceoff/core/events"
	"github.com/jsvec/faceoff/core/lineup/history"
	"github.com/jsvec/faceoff/core/logger"
	"github.com/jsvec/faceoff/core/metrics"
	"github.com/jsvec/faceoff/core/model"
	"github.com/jsvec/faceoff/core/scoring"
	"github.com/jsvec/faceoff/internal/eventbus"
)

// Optimizer wires the scoring engine and a strategy into one run: score the
// pool, build the lineup, then fan the outcome out to the bus, the metrics
// sink and the history store.
type Optimizer struct {
	engine   *scoring.Engine
	strategy Strategy
	cfg      Config
	log      logger.Logger
	sink     metrics.MetricsSink
	store    history.Store
	bus      eventbus.EventBus
}

// Result is the complete outcome of one optimisation run.
type Result struct {
	RunID      string
	Lineup     model.Lineup
	Report     model.ShortageReport
	Candidates []model.Candidate
	Excluded   []scoring.Exclusion
	Duration   time.Duration
}

// NewOptimizer builds an Optimizer. Sink, store and bus are optional; nil
// values disable the corresponding output.
func NewOptimizer(engine *scoring.Engine, strategy Strategy, cfg Config, log logger.Logger, opts ...Option) (*Optimizer, error) {
	if engine == nil {
		return nil, fmt.Errorf("lineup: nil engine")
	}
	if strategy == nil {
		return nil, fmt.Errorf("lineup: nil strategy")
	}
	cfg.SetDefaults()
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	o := &Optimizer{engine: engine, strategy: strategy, cfg: cfg, log: log}
	for _, opt := range opts {
		opt(o)
	}
	return o, nil
}

// Option customises optional Optimizer outputs.
type Option func(*Optimizer)

// WithMetrics attaches a metrics sink.
func WithMetrics(sink metrics.MetricsSink) Option {
	return func(o *Optimizer) { o.sink = sink }
}

// WithHistory attaches a run history store.
func WithHistory(store history.Store) Option {
	return func(o *Optimizer) { o.store = store }
}

// WithBus attaches an event bus for pipeline events.
func WithBus(bus eventbus.EventBus) Option {
	return func(o *Optimizer) { o.bus = bus }
}

// Run executes one full optimisation over the player pool. Exclusions and
// shortages never abort the run; only an empty scored pool does.
func (o *Optimizer) Run(ctx context.Context, players []model.Player) (Result, error) {
	start := time.Now()
	runID := uuid.NewString()

	cands, excluded := o.engine.ScorePool(ctx, players)
	for _, ex := range excluded {
		o.publish(events.ExclusionEvent{Player: ex.Player.Name, Reason: ex.Reason.Error()})
		if rec, ok := o.sink.(metrics.ExclusionRecorder); ok {
			_ = rec.RecordExclusion(metrics.ExclusionEvent{
				Player: ex.Player.Name, Reason: ex.Reason.Error(), Time: time.Now(),
			})
		}
	}
	if len(cands) == 0 {
		return Result{RunID: runID, Excluded: excluded}, fmt.Errorf("lineup: no scorable candidates in a pool of %d", len(players))
	}

	built, report := o.build(cands)
	for _, s := range report.Shortages {
		if s.Relaxed {
			o.publish(events.RelaxationEvent{Position: s.Position, Wanted: s.Wanted, Eligible: s.Filled})
		}
	}

	res := Result{
		RunID:      runID,
		Lineup:     built,
		Report:     report,
		Candidates: cands,
		Excluded:   excluded,
		Duration:   time.Since(start),
	}
	o.publish(events.RunEvent{
		RunID:      runID,
		Strategy:   o.strategy.Name(),
		Infeasible: report.Infeasible(),
		Effective:  built.EffectiveValue,
	})

	if o.log != nil {
		o.log.Infof("run %s: %s lineup of %d players, cost %.1f, effective value %.2f",
			runID, o.strategy.Name(), built.Size(), built.TotalCost, built.EffectiveValue)
	}

	o.record(res)
	if err := o.persist(ctx, res); err != nil && o.log != nil {
		o.log.Errorf("run %s: history append failed: %v", runID, err)
	}
	return res, nil
}

// build dispatches to the strategy; the iterative strategy gets a swap
// observer so accepted swaps reach the bus.
func (o *Optimizer) build(cands []model.Candidate) (model.Lineup, model.ShortageReport) {
	if it, ok := o.strategy.(Iterative); ok && o.bus != nil {
		return it.BuildObserved(cands, o.cfg, func(pos model.Position, set string, out, in model.Candidate, effective float64) {
			o.publish(events.SwapEvent{Position: pos, Set: set, Out: out.Name, In: in.Name, Effective: effective})
		})
	}
	return o.strategy.Build(cands, o.cfg)
}

func (o *Optimizer) publish(e any) {
	if o.bus != nil {
		o.bus.Publish(e)
	}
}

func (o *Optimizer) record(res Result) {
	if o.sink == nil {
		return
	}
	err := o.sink.RecordRun(metrics.RunResult{
		RunID:           res.RunID,
		Strategy:        o.strategy.Name(),
		PoolSize:        len(res.Candidates) + len(res.Excluded),
		Scored:          len(res.Candidates),
		Excluded:        len(res.Excluded),
		Shortages:       len(res.Report.Shortages),
		Relaxations:     res.Report.Relaxations(),
		Infeasible:      res.Report.Infeasible(),
		TotalCost:       res.Lineup.TotalCost,
		RawValue:        res.Lineup.RawValue,
		EffectiveValue:  res.Lineup.EffectiveValue,
		PenaltyFraction: res.Lineup.PenaltyFraction,
		Duration:        res.Duration,
		Time:            time.Now(),
	})
	if err != nil && o.log != nil {
		o.log.Warnf("run %s: metrics sink rejected record: %v", res.RunID, err)
	}
}

func (o *Optimizer) persist(ctx context.Context, res Result) error {
	if o.store == nil {
		return nil
	}
	rec := history.RunRecord{
		ID:              res.RunID,
		Timestamp:       time.Now().UTC(),
		Strategy:        o.strategy.Name(),
		TotalCost:       res.Lineup.TotalCost,
		RawValue:        res.Lineup.RawValue,
		EffectiveValue:  res.Lineup.EffectiveValue,
		PenaltyFraction: res.Lineup.PenaltyFraction,
		Infeasible:      res.Report.Infeasible(),
	}
	appendRoster := func(set string, m map[model.Position][]model.Candidate) {
		for _, pos := range model.Positions {
			for _, c := range m[pos] {
				rec.Roster = append(rec.Roster, history.RosterEntry{
					Name:     c.Name,
					Position: string(c.Position),
					Team:     c.Team,
					Set:      set,
					Cost:     c.Cost,
					Value:    c.ProjectedValue,
				})
			}
		}
	}
	appendRoster("starters", res.Lineup.Starters)
	appendRoster("substitutes", res.Lineup.Substitutes)
	return o.store.Append(ctx, rec)
}
