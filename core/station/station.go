// Package station adapts typed provider/fuel pairings to a runtime surface.
// The generic core resolves unit safety at compile time; a Station closes
// over one concrete pairing so the simulation engine can drive a mixed set
// of them without knowing the instantiations.
package station

import (
	"github.com/enerva/fuelcore/core/fuel"
	"github.com/enerva/fuelcore/core/provider"
	"github.com/enerva/fuelcore/core/unit"
)

// Station is one named energy source: a provider bound to a fuel.
type Station struct {
	name    string
	fuel    string
	convert func(amount uint32) unit.BTU
}

// New wires a provider and a fuel value into a station. Each Produce call
// fills a fresh container with the given amount and reports the provider's
// output in base units.
func New[U unit.Unit[U], F fuel.Fuel[U]](name, fuelName string, f F, p provider.Provider[U, F]) Station {
	return Station{
		name: name,
		fuel: fuelName,
		convert: func(amount uint32) unit.BTU {
			return p.ProvideEnergy(fuel.NewContainer[U](f, amount)).BTU()
		},
	}
}

// Name returns the station's configured name.
func (s Station) Name() string { return s.name }

// Fuel returns the label of the fuel the station consumes.
func (s Station) Fuel() string { return s.fuel }

// Produce converts amount units of the station's fuel into energy.
func (s Station) Produce(amount uint32) unit.BTU { return s.convert(amount) }
