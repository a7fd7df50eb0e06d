package metrics

// MultiSink fans production records out to multiple sinks.
type MultiSink struct {
	Sinks []Sink
}

// NewMultiSink creates a MultiSink with the provided sinks.
func NewMultiSink(sinks ...Sink) *MultiSink {
	return &MultiSink{Sinks: sinks}
}

// RecordProduction forwards the records to all sinks, returning the first
// error encountered.
func (m *MultiSink) RecordProduction(records []ProductionRecord) error {
	for _, s := range m.Sinks {
		if err := s.RecordProduction(records); err != nil {
			return err
		}
	}
	return nil
}
