package metrics

// MultiSink fans run records out to multiple sinks.
type MultiSink struct {
	Sinks []MetricsSink
}

// NewMultiSink creates a MultiSink with the provided sinks.
func NewMultiSink(sinks ...MetricsSink) *MultiSink {
	return &MultiSink{Sinks: sinks}
}

// RecordRun forwards the record to all sinks, returning the first error encountered.
func (m *MultiSink) RecordRun(res RunResult) error {
	for _, s := range m.Sinks {
		if err := s.RecordRun(res); err != nil {
			return err
		}
	}
	return nil
}

// RecordExclusion forwards exclusion events to sinks that support them.
func (m *MultiSink) RecordExclusion(ev ExclusionEvent) error {
	for _, s := range m.Sinks {
		if rec, ok := s.(ExclusionRecorder); ok {
			if err := rec.RecordExclusion(ev); err != nil {
				return err
			}
		}
	}
	return nil
}
