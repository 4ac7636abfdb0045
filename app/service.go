package app

import (
	"context"
	"fmt"
	"os"
	"sort"
	"time"

	"github.com/jsvec/faceoff/app/plugins"
	"github.com/jsvec/faceoff/config"
	"github.com/jsvec/faceoff/core/lineup"
	"github.com/jsvec/faceoff/core/lineup/history"
	coremetrics "github.com/jsvec/faceoff/core/metrics"
	"github.com/jsvec/faceoff/core/model"
	"github.com/jsvec/faceoff/core/scoring"
	"github.com/jsvec/faceoff/infra/logger"
	"github.com/jsvec/faceoff/infra/metrics"
	"github.com/jsvec/faceoff/internal/eventbus"
	"github.com/jsvec/faceoff/providers/nhl"
	"github.com/jsvec/faceoff/providers/pool"
	"github.com/jsvec/faceoff/providers/prices"
)

// Service assembles the pipeline from configuration: pool acquisition,
// pricing, scoring and lineup selection.
type Service struct {
	cfg    *config.Config
	log    logger.Logger
	sink   coremetrics.MetricsSink
	store  history.Store
	bus    *eventbus.Bus
	events *Events

	promEnabled bool
	promPort    string
}

// New creates a Service from the configuration.
func New(cfg *config.Config) (*Service, error) {
	logg := logger.New("service")

	sink, err := coremetrics.NewMetricsSink(cfg.SinkModules())
	if err != nil {
		return nil, fmt.Errorf("metrics sink: %w", err)
	}
	store, err := plugins.NewStore(cfg.History.Backend, cfg.HistoryModule().Conf)
	if err != nil {
		return nil, fmt.Errorf("history store: %w", err)
	}

	bus := eventbus.New()
	ev := newEvents()
	go ev.forward(bus.Subscribe())

	return &Service{
		cfg:         cfg,
		log:         logg,
		sink:        sink,
		store:       store,
		bus:         bus,
		events:      ev,
		promEnabled: cfg.Metrics.PrometheusEnabled,
		promPort:    cfg.Metrics.PrometheusPort,
	}, nil
}

// Events exposes the typed pipeline event streams for subscribers.
func (s *Service) Events() *Events { return s.events }

// History exposes the run history store.
func (s *Service) History() history.Store { return s.store }

// Pool loads the candidate pool from the configured source and applies the
// price list when one is configured. Players the price list cannot resolve
// keep a zero cost and are excluded later by the scoring engine.
func (s *Service) Pool(ctx context.Context) ([]model.Player, prices.MatchReport, error) {
	var (
		players []model.Player
		err     error
	)
	switch s.cfg.Data.Source {
	case "api":
		players, err = s.apiPool(ctx)
	default:
		players, err = pool.LoadFile(s.cfg.Data.Source, s.cfg.Data.File)
	}
	if err != nil {
		return nil, prices.MatchReport{}, err
	}
	if s.cfg.Data.PriceFile == "" {
		return players, prices.MatchReport{}, nil
	}

	f, err := os.Open(s.cfg.Data.PriceFile)
	if err != nil {
		return nil, prices.MatchReport{}, fmt.Errorf("price file: %w", err)
	}
	defer f.Close()
	list, err := prices.ParseCSV(f)
	if err != nil {
		return nil, prices.MatchReport{}, fmt.Errorf("price file: %w", err)
	}
	priced, report := prices.Apply(players, list)
	for _, name := range report.Unresolved {
		s.log.Warnf("no price for %s", name)
	}
	s.log.Infof("pool of %d players, %d priced", len(priced), report.Matched)
	return priced, report, nil
}

func (s *Service) apiPool(ctx context.Context) ([]model.Player, error) {
	maxAge := time.Duration(s.cfg.Data.CacheMaxAgeHours) * time.Hour
	store, err := nhl.NewCacheStore(s.cfg.Data.CacheDir, maxAge)
	if err != nil {
		return nil, fmt.Errorf("cache store: %w", err)
	}
	client := nhl.NewClient(store, logger.New("nhl"))
	client.ForceRefresh = s.cfg.Data.ForceRefresh

	season := s.cfg.Data.Season
	if season == "" {
		season = nhl.CurrentSeason(time.Now())
	}

	teams := s.cfg.Data.Teams
	if len(teams) == 0 {
		teams, err = client.Teams(ctx)
		if err != nil {
			return nil, fmt.Errorf("team list: %w", err)
		}
	}
	if s.cfg.Data.Gameday != "" {
		playing, err := client.TeamsPlaying(ctx, s.cfg.Data.Gameday)
		if err != nil {
			return nil, fmt.Errorf("schedule %s: %w", s.cfg.Data.Gameday, err)
		}
		teams = intersect(teams, playing)
	}

	var players []model.Player
	for _, team := range teams {
		roster, err := client.Roster(ctx, team, season)
		if err != nil {
			s.log.Warnf("roster %s: %v", team, err)
			continue
		}
		for _, entry := range roster {
			p, err := client.Player(ctx, entry.ID, season)
			if err != nil {
				s.log.Warnf("player %s (%d): %v", entry.Name, entry.ID, err)
				continue
			}
			p.Team = team
			players = append(players, p)
		}
	}
	if len(players) == 0 {
		return nil, fmt.Errorf("no players loaded for teams %v", teams)
	}
	return players, nil
}

func intersect(a, b []string) []string {
	in := make(map[string]bool, len(b))
	for _, t := range b {
		in[t] = true
	}
	var out []string
	for _, t := range a {
		if in[t] {
			out = append(out, t)
		}
	}
	return out
}

// Optimize scores the pool and builds a lineup with the configured
// strategy.
func (s *Service) Optimize(ctx context.Context, players []model.Player) (lineup.Result, error) {
	engine, err := s.engine(players)
	if err != nil {
		return lineup.Result{}, err
	}
	strategy, err := plugins.NewStrategy(s.cfg.Lineup.Strategy, nil)
	if err != nil {
		return lineup.Result{}, err
	}
	opt, err := lineup.NewOptimizer(engine, strategy, s.cfg.Lineup, s.log,
		lineup.WithMetrics(s.sink),
		lineup.WithHistory(s.store),
		lineup.WithBus(s.bus),
	)
	if err != nil {
		return lineup.Result{}, err
	}
	return opt.Run(ctx, players)
}

// Rankings scores the pool without selecting a lineup, ordered by projected
// value descending.
func (s *Service) Rankings(ctx context.Context, players []model.Player) ([]model.Candidate, error) {
	engine, err := s.engine(players)
	if err != nil {
		return nil, err
	}
	cands, _ := engine.ScorePool(ctx, players)
	if len(cands) == 0 {
		return nil, fmt.Errorf("no scorable candidates in a pool of %d", len(players))
	}
	sort.SliceStable(cands, func(i, j int) bool {
		return cands[i].ProjectedValue > cands[j].ProjectedValue
	})
	return cands, nil
}

func (s *Service) engine(players []model.Player) (*scoring.Engine, error) {
	scorer, err := plugins.NewScorer(s.cfg.Lineup.Strategy, s.cfg.Scoring, players)
	if err != nil {
		return nil, err
	}
	return scoring.NewEngine(scorer, s.log, 0)
}

// Run executes the whole pipeline once. When Prometheus is enabled the
// scrape endpoint is served until the context is cancelled.
func (s *Service) Run(ctx context.Context) (lineup.Result, error) {
	if s.promEnabled {
		go func() {
			if err := metrics.StartPromServer(ctx, s.promPort); err != nil {
				s.log.Errorf("prom server: %v", err)
			}
		}()
	}
	players, _, err := s.Pool(ctx)
	if err != nil {
		return lineup.Result{}, err
	}
	return s.Optimize(ctx, players)
}

// Close releases resources held by the service.
func (s *Service) Close() error {
	s.bus.Close()
	return s.store.Close()
}
