package provider

import (
	"github.com/enerva/fuelcore/core/fuel"
	"github.com/enerva/fuelcore/core/unit"
)

// GreenEngine converts renewable fuels at perfect efficiency. The fuel
// parameter is bounded by the renewable marker, so instantiating the engine
// with a non-renewable fuel does not compile.
type GreenEngine[U unit.Unit[U], F fuel.RenewableFuel[U]] struct{}

func (GreenEngine[U, F]) ProvideEnergy(c fuel.Container[U, F]) U {
	raw := c.Fuel().EnergyDensity().BTU() * unit.BTU(c.Amount())
	var out U
	return out.FromBTU(raw)
}

// BritishEngine converts fuels whose native unit is the base unit, which in
// practice means blended fuels. Perfect efficiency; instantiating it with a
// native-unit fuel does not compile.
type BritishEngine[F fuel.Fuel[unit.BTU]] struct{}

func (BritishEngine[F]) ProvideEnergy(c fuel.Container[unit.BTU, F]) unit.BTU {
	return c.Fuel().EnergyDensity() * unit.BTU(c.Amount())
}
