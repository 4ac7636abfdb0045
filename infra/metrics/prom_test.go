package metrics

import (
	"testing"
	"time"

	"github.com/prometheus/client_golang/prometheus"

	coremetrics "github.com/jsvec/faceoff/core/metrics"
)

func TestPromSinkRecordRun(t *testing.T) {
	reg := prometheus.NewRegistry()
	sink, err := NewPromSinkWithRegistry(coremetrics.Config{}, reg)
	if err != nil {
		t.Fatalf("new sink: %v", err)
	}
	res := coremetrics.RunResult{
		RunID:           "run-1",
		Strategy:        "iterative",
		PoolSize:        100,
		Scored:          98,
		Excluded:        2,
		TotalCost:       105,
		RawValue:        1300,
		EffectiveValue:  1235,
		PenaltyFraction: 0.05,
		Duration:        200 * time.Millisecond,
		Time:            time.Now(),
	}
	if err := sink.RecordRun(res); err != nil {
		t.Fatalf("record run: %v", err)
	}
	ps := sink.(*PromSink)
	if err := ps.RecordExclusion(coremetrics.ExclusionEvent{Player: "X", Reason: "no usable statistics"}); err != nil {
		t.Fatalf("record exclusion: %v", err)
	}

	fams, err := reg.Gather()
	if err != nil {
		t.Fatalf("gather: %v", err)
	}
	want := map[string]bool{
		"lineup_runs_total":            false,
		"lineup_pool_exclusions_total": false,
		"lineup_run_duration_seconds":  false,
		"lineup_effective_value":       false,
		"lineup_total_cost":            false,
		"lineup_penalty_fraction":      false,
		"lineup_pool_players_total":    false,
	}
	for _, f := range fams {
		if _, ok := want[f.GetName()]; ok {
			want[f.GetName()] = true
		}
	}
	for name, seen := range want {
		if !seen {
			t.Errorf("metric %s not gathered", name)
		}
	}
}

func TestPromSinkRegisterTwice(t *testing.T) {
	reg := prometheus.NewRegistry()
	if _, err := NewPromSinkWithRegistry(coremetrics.Config{}, reg); err != nil {
		t.Fatalf("first registration: %v", err)
	}
	if _, err := NewPromSinkWithRegistry(coremetrics.Config{}, reg); err != nil {
		t.Fatalf("second registration must reuse collectors: %v", err)
	}
}
