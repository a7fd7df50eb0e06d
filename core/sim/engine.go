// Package sim drives a configured set of stations round by round and
// aggregates what they produce.
package sim

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"
	"gonum.org/v1/gonum/stat"

	"github.com/enerva/fuelcore/core/logger"
	"github.com/enerva/fuelcore/core/metrics"
	"github.com/enerva/fuelcore/core/station"
)

// Config holds the simulation parameters.
type Config struct {
	// Rounds is how many times every station converts fuel.
	Rounds int `json:"rounds"`
	// Amount is the fuel quantity loaded into each container.
	Amount uint32 `json:"amount"`
}

// SetDefaults applies sane defaults.
func (c *Config) SetDefaults() {
	if c.Rounds == 0 {
		c.Rounds = 10
	}
	if c.Amount == 0 {
		c.Amount = 10
	}
}

// Validate checks mandatory fields.
func (c Config) Validate() error {
	if c.Rounds < 1 {
		return fmt.Errorf("rounds must be positive")
	}
	return nil
}

// StationReport aggregates one station's output over a run.
type StationReport struct {
	Station   string
	Fuel      string
	TotalBTU  uint64
	MeanBTU   float64
	StdDevBTU float64
}

// Report is the outcome of a full simulation run.
type Report struct {
	RunID    string
	Rounds   int
	TotalBTU uint64
	Stations []StationReport
}

// Engine runs every station for a fixed number of rounds, forwarding each
// round's production to the metrics sink.
type Engine struct {
	cfg      Config
	stations []station.Station
	sink     metrics.Sink
	log      logger.Logger
}

// NewEngine builds an engine. A nil sink records nothing; a nil logger logs
// nothing.
func NewEngine(cfg Config, stations []station.Station, sink metrics.Sink, log logger.Logger) *Engine {
	if sink == nil {
		sink = metrics.NopSink{}
	}
	if log == nil {
		log = nopLogger{}
	}
	return &Engine{cfg: cfg, stations: stations, sink: sink, log: log}
}

type nopLogger struct{}

func (nopLogger) Debugf(string, ...any)         {}
func (nopLogger) Debugw(string, map[string]any) {}
func (nopLogger) Infof(string, ...any)          {}
func (nopLogger) Warnf(string, ...any)          {}
func (nopLogger) Errorf(string, ...any)         {}

// Run executes the configured rounds and returns the aggregated report. It
// stops between rounds if the context is canceled.
func (e *Engine) Run(ctx context.Context) (Report, error) {
	runID := uuid.NewString()
	outputs := make([][]float64, len(e.stations))
	for i := range outputs {
		outputs[i] = make([]float64, 0, e.cfg.Rounds)
	}

	e.log.Infof("run %s: %d stations, %d rounds, amount %d", runID, len(e.stations), e.cfg.Rounds, e.cfg.Amount)
	for round := 1; round <= e.cfg.Rounds; round++ {
		select {
		case <-ctx.Done():
			return Report{}, ctx.Err()
		default:
		}

		records := make([]metrics.ProductionRecord, 0, len(e.stations))
		for i, st := range e.stations {
			out := st.Produce(e.cfg.Amount)
			outputs[i] = append(outputs[i], float64(out))
			records = append(records, metrics.ProductionRecord{
				RunID:      runID,
				Station:    st.Name(),
				Fuel:       st.Fuel(),
				Round:      round,
				EnergyBTU:  uint64(out),
				ProducedAt: time.Now(),
			})
			e.log.Debugw("production", map[string]any{
				"station": st.Name(),
				"fuel":    st.Fuel(),
				"round":   round,
				"btu":     uint64(out),
			})
		}
		if err := e.sink.RecordProduction(records); err != nil {
			e.log.Errorf("record production: %v", err)
		}
	}

	report := Report{RunID: runID, Rounds: e.cfg.Rounds}
	for i, st := range e.stations {
		var total uint64
		for _, out := range outputs[i] {
			total += uint64(out)
		}
		report.Stations = append(report.Stations, StationReport{
			Station:   st.Name(),
			Fuel:      st.Fuel(),
			TotalBTU:  total,
			MeanBTU:   stat.Mean(outputs[i], nil),
			StdDevBTU: stat.PopStdDev(outputs[i], nil),
		})
		report.TotalBTU += total
	}
	return report, nil
}
