package metrics

import (
	"errors"
	"testing"
)

type captureSink struct {
	records []ProductionRecord
	err     error
}

func (s *captureSink) RecordProduction(records []ProductionRecord) error {
	if s.err != nil {
		return s.err
	}
	s.records = append(s.records, records...)
	return nil
}

func TestMultiSinkFanout(t *testing.T) {
	a := &captureSink{}
	b := &captureSink{}
	m := NewMultiSink(a, b)
	if err := m.RecordProduction([]ProductionRecord{{Station: "s1", EnergyBTU: 10}}); err != nil {
		t.Fatalf("record: %v", err)
	}
	if len(a.records) != 1 || len(b.records) != 1 {
		t.Fatalf("expected both sinks to record, got %d and %d", len(a.records), len(b.records))
	}
}

func TestMultiSinkFirstError(t *testing.T) {
	boom := errors.New("boom")
	m := NewMultiSink(&captureSink{err: boom}, &captureSink{})
	if err := m.RecordProduction([]ProductionRecord{{}}); !errors.Is(err, boom) {
		t.Fatalf("expected boom, got %v", err)
	}
}
