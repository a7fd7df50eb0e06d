// Package provider defines the capability for turning fuel into energy and
// the built-in provider implementations. Each provider defines exactly one
// policy-specific primitive, ProvideEnergy; the partial-efficiency behavior
// is shared so every provider scales energy identically.
package provider

import (
	"github.com/enerva/fuelcore/core/fuel"
	"github.com/enerva/fuelcore/core/unit"
)

// Provider converts a container of fuel F into energy in the fuel's native
// unit. Implementations may hold internal state (see InternalCombustion) but
// the conversion is exposed as a read-only capability.
type Provider[U unit.Unit[U], F fuel.Fuel[U]] interface {
	ProvideEnergy(c fuel.Container[U, F]) U
}

// WithEfficiency converts the container at the given efficiency percent.
// Percents above 100 saturate at 100. The provider's ideal energy is scaled
// in base units through a float64 intermediate and truncated, so ties round
// down.
func WithEfficiency[U unit.Unit[U], F fuel.Fuel[U]](p Provider[U, F], c fuel.Container[U, F], percent uint8) U {
	if percent > 100 {
		percent = 100
	}
	ideal := p.ProvideEnergy(c).BTU()
	scaled := unit.BTU(float64(ideal) * float64(percent) / 100)
	var out U
	return out.FromBTU(scaled)
}

// Ideal converts the container at 100% efficiency.
func Ideal[U unit.Unit[U], F fuel.Fuel[U]](p Provider[U, F], c fuel.Container[U, F]) U {
	return WithEfficiency(p, c, 100)
}
