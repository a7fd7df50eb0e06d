package provider

import (
	"github.com/enerva/fuelcore/core/fuel"
	"github.com/enerva/fuelcore/core/unit"
)

// OmniGenerator converts any fuel at a fixed efficiency. Stateless and
// deterministic.
type OmniGenerator[U unit.Unit[U], F fuel.Fuel[U]] struct {
	efficiency uint8
}

// NewOmniGenerator builds a generator with the given efficiency percent.
// Values above 100 saturate at 100.
func NewOmniGenerator[U unit.Unit[U], F fuel.Fuel[U]](efficiency uint8) OmniGenerator[U, F] {
	return OmniGenerator[U, F]{efficiency: min(efficiency, 100)}
}

func (g OmniGenerator[U, F]) ProvideEnergy(c fuel.Container[U, F]) U {
	raw := c.Fuel().EnergyDensity().BTU() * unit.BTU(c.Amount())
	adjusted := unit.BTU(float64(raw) * float64(g.efficiency) / 100)
	var out U
	return out.FromBTU(adjusted)
}
