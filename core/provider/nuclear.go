package provider

import (
	"github.com/enerva/fuelcore/core/fuel"
	"github.com/enerva/fuelcore/core/unit"
)

// NuclearReactor converts fuel at a fixed 99% efficiency. It is intended for
// Uranium, but the conversion depends on nothing beyond the fuel's density,
// so the capability stays generic over any fuel.
type NuclearReactor[U unit.Unit[U], F fuel.Fuel[U]] struct{}

func (NuclearReactor[U, F]) ProvideEnergy(c fuel.Container[U, F]) U {
	raw := c.Fuel().EnergyDensity().BTU() * unit.BTU(c.Amount())
	adjusted := raw * 99 / 100
	var out U
	return out.FromBTU(adjusted)
}
