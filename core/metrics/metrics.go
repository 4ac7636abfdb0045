// Package metrics defines the sink interfaces the pipeline reports into.
// Implementations live in infra/metrics.
package metrics

import "time"

// RunResult summarises one optimisation run for observability purposes.
type RunResult struct {
	RunID           string
	Strategy        string
	PoolSize        int
	Scored          int
	Excluded        int
	Shortages       int
	Relaxations     int
	Infeasible      bool
	TotalCost       float64
	RawValue        float64
	EffectiveValue  float64
	PenaltyFraction float64
	Duration        time.Duration
	Time            time.Time
}

// MetricsSink records optimisation runs.
type MetricsSink interface {
	RecordRun(res RunResult) error
}

// ExclusionEvent captures one candidate dropped from the pool.
type ExclusionEvent struct {
	Player string
	Reason string
	Time   time.Time
}

// ExclusionRecorder records pool exclusions when the sink supports it.
type ExclusionRecorder interface {
	RecordExclusion(ev ExclusionEvent) error
}

// NopSink discards every record.
type NopSink struct{}

func (NopSink) RecordRun(RunResult) error            { return nil }
func (NopSink) RecordExclusion(ExclusionEvent) error { return nil }
