// Package metrics defines the sink interface production readings flow
// through. Sinks like the Prometheus and InfluxDB implementations record
// per-round station output and can be combined with NewMultiSink.
package metrics

import "time"

// ProductionRecord represents one station conversion to be recorded.
type ProductionRecord struct {
	RunID      string    `json:"run_id"`
	Station    string    `json:"station"`
	Fuel       string    `json:"fuel"`
	Round      int       `json:"round"`
	EnergyBTU  uint64    `json:"energy_btu"`
	ProducedAt time.Time `json:"produced_at"`
}

// Sink records production results for observability purposes.
type Sink interface {
	RecordProduction(records []ProductionRecord) error
}

// NopSink implements Sink with no-op methods.
type NopSink struct{}

func (NopSink) RecordProduction([]ProductionRecord) error { return nil }
