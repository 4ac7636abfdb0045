package metrics

import (
	"testing"

	"github.com/jsvec/faceoff/core/factory"
)

func TestNewMetricsSinkDefaultsToNop(t *testing.T) {
	s, err := NewMetricsSink(nil)
	if err != nil {
		t.Fatalf("new sink: %v", err)
	}
	if _, ok := s.(NopSink); !ok {
		t.Fatalf("expected NopSink, got %T", s)
	}
}

func TestNewMetricsSinkMulti(t *testing.T) {
	if err := RegisterMetricsSink("test-count", func(map[string]any) (MetricsSink, error) {
		return &countSink{}, nil
	}); err != nil {
		t.Fatalf("register: %v", err)
	}
	cfgs := []factory.ModuleConfig{
		{Type: "test-count"},
		{Type: "test-count"},
	}
	s, err := NewMetricsSink(cfgs)
	if err != nil {
		t.Fatalf("new sink: %v", err)
	}
	m, ok := s.(*MultiSink)
	if !ok {
		t.Fatalf("expected MultiSink, got %T", s)
	}
	if len(m.Sinks) != 2 {
		t.Fatalf("expected 2 sub-sinks, got %d", len(m.Sinks))
	}
}

func TestNewMetricsSinkUnknownType(t *testing.T) {
	if _, err := NewMetricsSink([]factory.ModuleConfig{{Type: "does-not-exist"}}); err == nil {
		t.Fatalf("expected an error for an unknown sink type")
	}
}
