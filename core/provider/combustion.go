package provider

import (
	"sync"

	"github.com/enerva/fuelcore/core/fuel"
	"github.com/enerva/fuelcore/core/unit"
)

// InternalCombustion burns fuel at an efficiency that decays with use: once
// per decay-interval calls, the current efficiency drops by one percent,
// saturating at zero. The step takes effect on the very call at which the
// interval elapses.
//
// The call counter and current efficiency sit behind a mutex even though
// ProvideEnergy reads like a pure conversion; a shared engine called from
// multiple goroutines must not lose or double-apply decay steps.
type InternalCombustion[U unit.Unit[U], F fuel.Fuel[U]] struct {
	decay uint32

	mu         sync.Mutex
	count      uint32
	efficiency uint8
}

// NewInternalCombustion builds an engine that loses one percent of
// efficiency per decay calls. Initial efficiencies above 100 saturate at 100.
func NewInternalCombustion[U unit.Unit[U], F fuel.Fuel[U]](decay uint32, efficiency uint8) *InternalCombustion[U, F] {
	return &InternalCombustion[U, F]{decay: decay, efficiency: min(efficiency, 100)}
}

func (e *InternalCombustion[U, F]) ProvideEnergy(c fuel.Container[U, F]) U {
	e.mu.Lock()
	if e.count == e.decay {
		e.count = 0
		if e.efficiency > 0 {
			e.efficiency--
		}
	}
	e.count++
	efficiency := e.efficiency
	e.mu.Unlock()

	raw := c.Fuel().EnergyDensity().BTU() * unit.BTU(c.Amount())
	adjusted := raw * unit.BTU(efficiency) / 100
	var out U
	return out.FromBTU(adjusted)
}

// Efficiency reports the engine's current efficiency percent.
func (e *InternalCombustion[U, F]) Efficiency() uint8 {
	e.mu.Lock()
	defer e.mu.Unlock()
	return e.efficiency
}
