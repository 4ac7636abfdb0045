package metrics

import (
	"strconv"

	coremetrics "github.com/jsvec/faceoff/core/metrics"
	"github.com/prometheus/client_golang/prometheus"
)

// PromSink records optimisation runs in Prometheus metrics.
type PromSink struct {
	runs       *prometheus.CounterVec
	exclusions *prometheus.CounterVec
	duration   *prometheus.HistogramVec
	effective  *prometheus.GaugeVec
	cost       *prometheus.GaugeVec
	penalty    *prometheus.GaugeVec
	poolSize   prometheus.Gauge
}

// NewPromSink registers run metrics on the default Prometheus registerer.
// The Prometheus server should be started separately using cfg.PrometheusPort.
func NewPromSink(cfg coremetrics.Config) (coremetrics.MetricsSink, error) {
	return NewPromSinkWithRegistry(cfg, prometheus.DefaultRegisterer)
}

// NewPromSinkWithRegistry registers metrics on the provided registerer.
// A nil registerer defaults to the global Prometheus registerer.
func NewPromSinkWithRegistry(cfg coremetrics.Config, reg prometheus.Registerer) (coremetrics.MetricsSink, error) {
	if reg == nil {
		reg = prometheus.DefaultRegisterer
	}
	runs := prometheus.NewCounterVec(prometheus.CounterOpts{
		Name: "lineup_runs_total",
		Help: "Total number of optimisation runs",
	}, []string{"strategy", "infeasible"})
	exclusions := prometheus.NewCounterVec(prometheus.CounterOpts{
		Name: "lineup_pool_exclusions_total",
		Help: "Candidates dropped from the scoring pool",
	}, []string{"reason"})
	duration := prometheus.NewHistogramVec(prometheus.HistogramOpts{
		Name:    "lineup_run_duration_seconds",
		Help:    "Time spent scoring the pool and building the lineup",
		Buckets: prometheus.DefBuckets,
	}, []string{"strategy"})
	effective := prometheus.NewGaugeVec(prometheus.GaugeOpts{
		Name: "lineup_effective_value",
		Help: "Post-penalty value of the last built lineup",
	}, []string{"strategy"})
	cost := prometheus.NewGaugeVec(prometheus.GaugeOpts{
		Name: "lineup_total_cost",
		Help: "Roster cost of the last built lineup",
	}, []string{"strategy"})
	penalty := prometheus.NewGaugeVec(prometheus.GaugeOpts{
		Name: "lineup_penalty_fraction",
		Help: "Budget penalty fraction of the last built lineup",
	}, []string{"strategy"})
	poolSize := prometheus.NewGauge(prometheus.GaugeOpts{
		Name: "lineup_pool_players_total",
		Help: "Number of players entering the scoring pool",
	})

	s := &PromSink{
		runs:       runs,
		exclusions: exclusions,
		duration:   duration,
		effective:  effective,
		cost:       cost,
		penalty:    penalty,
		poolSize:   poolSize,
	}
	if err := registerCounterVec(reg, &s.runs); err != nil {
		return nil, err
	}
	if err := registerCounterVec(reg, &s.exclusions); err != nil {
		return nil, err
	}
	if err := reg.Register(s.duration); err != nil {
		if are, ok := err.(prometheus.AlreadyRegisteredError); ok {
			s.duration = are.ExistingCollector.(*prometheus.HistogramVec)
		} else {
			return nil, err
		}
	}
	if err := registerGaugeVec(reg, &s.effective); err != nil {
		return nil, err
	}
	if err := registerGaugeVec(reg, &s.cost); err != nil {
		return nil, err
	}
	if err := registerGaugeVec(reg, &s.penalty); err != nil {
		return nil, err
	}
	if err := reg.Register(s.poolSize); err != nil {
		if are, ok := err.(prometheus.AlreadyRegisteredError); ok {
			s.poolSize = are.ExistingCollector.(prometheus.Gauge)
		} else {
			return nil, err
		}
	}
	return s, nil
}

func registerCounterVec(reg prometheus.Registerer, vec **prometheus.CounterVec) error {
	if err := reg.Register(*vec); err != nil {
		if are, ok := err.(prometheus.AlreadyRegisteredError); ok {
			*vec = are.ExistingCollector.(*prometheus.CounterVec)
			return nil
		}
		return err
	}
	return nil
}

func registerGaugeVec(reg prometheus.Registerer, vec **prometheus.GaugeVec) error {
	if err := reg.Register(*vec); err != nil {
		if are, ok := err.(prometheus.AlreadyRegisteredError); ok {
			*vec = are.ExistingCollector.(*prometheus.GaugeVec)
			return nil
		}
		return err
	}
	return nil
}

// RecordRun publishes one run's counters and gauges.
func (s *PromSink) RecordRun(res coremetrics.RunResult) error {
	s.runs.WithLabelValues(res.Strategy, strconv.FormatBool(res.Infeasible)).Inc()
	s.duration.WithLabelValues(res.Strategy).Observe(res.Duration.Seconds())
	s.effective.WithLabelValues(res.Strategy).Set(res.EffectiveValue)
	s.cost.WithLabelValues(res.Strategy).Set(res.TotalCost)
	s.penalty.WithLabelValues(res.Strategy).Set(res.PenaltyFraction)
	s.poolSize.Set(float64(res.PoolSize))
	return nil
}

// RecordExclusion counts one dropped candidate by reason.
func (s *PromSink) RecordExclusion(ev coremetrics.ExclusionEvent) error {
	s.exclusions.WithLabelValues(ev.Reason).Inc()
	return nil
}
