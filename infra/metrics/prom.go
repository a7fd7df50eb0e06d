package metrics

import (
	"github.com/prometheus/client_golang/prometheus"

	coremetrics "github.com/enerva/fuelcore/core/metrics"
)

// PromSink records production readings in Prometheus metrics.
type PromSink struct {
	energy *prometheus.CounterVec
	output *prometheus.HistogramVec
}

// NewPromSink registers production metrics on the provided Prometheus
// registerer. If reg is nil, the default registerer is used. If the
// collectors are already registered, the existing ones are reused.
func NewPromSink(reg prometheus.Registerer) (*PromSink, error) {
	if reg == nil {
		reg = prometheus.DefaultRegisterer
	}
	energy := prometheus.NewCounterVec(prometheus.CounterOpts{
		Name: "production_energy_btu_total",
		Help: "Total energy produced in base units",
	}, []string{"station", "fuel"})
	output := prometheus.NewHistogramVec(prometheus.HistogramOpts{
		Name:    "production_output_btu",
		Help:    "Energy produced per conversion in base units",
		Buckets: prometheus.ExponentialBuckets(10, 4, 8),
	}, []string{"station", "fuel"})

	if err := reg.Register(energy); err != nil {
		if are, ok := err.(prometheus.AlreadyRegisteredError); ok {
			energy = are.ExistingCollector.(*prometheus.CounterVec)
		} else {
			return nil, err
		}
	}
	if err := reg.Register(output); err != nil {
		if are, ok := err.(prometheus.AlreadyRegisteredError); ok {
			output = are.ExistingCollector.(*prometheus.HistogramVec)
		} else {
			return nil, err
		}
	}

	return &PromSink{energy: energy, output: output}, nil
}

// RecordProduction increments the counter and observes the histogram for
// each reading.
func (s *PromSink) RecordProduction(records []coremetrics.ProductionRecord) error {
	for _, r := range records {
		s.energy.WithLabelValues(r.Station, r.Fuel).Add(float64(r.EnergyBTU))
		s.output.WithLabelValues(r.Station, r.Fuel).Observe(float64(r.EnergyBTU))
	}
	return nil
}
