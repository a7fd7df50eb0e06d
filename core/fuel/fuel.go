// Package fuel models fuel types as type-level capabilities. A fuel exposes
// its native unit and a fixed energy density; it never carries instance
// state, so providers can be generic over "any fuel" without runtime tags.
package fuel

import "github.com/enerva/fuelcore/core/unit"

// Fuel is the capability a fuel type exposes: the energy contained in one
// unit of fuel, expressed in the fuel's native unit U.
type Fuel[U unit.Unit[U]] interface {
	EnergyDensity() U
}

// Renewable marks a fuel as backed by a renewable source. It adds no
// behavior; it exists only to bound generic fuel parameters.
type Renewable interface {
	isRenewable()
}

// RenewableFuel bounds a generic fuel parameter to renewable fuels.
type RenewableFuel[U unit.Unit[U]] interface {
	Fuel[U]
	Renewable
}

// Diesel produces energy in joules with a density of 100 base units.
type Diesel struct{}

func (Diesel) EnergyDensity() unit.Joule { return 100 * unit.JoulesPerBTU }

// LithiumBattery produces energy in calories with a density of 200 base
// units. It is the one renewable fuel in the built-in set.
type LithiumBattery struct{}

func (LithiumBattery) EnergyDensity() unit.Calorie { return 200 * unit.CaloriesPerBTU }

func (LithiumBattery) isRenewable() {}

// Uranium produces energy in joules with a density of 1000 base units.
type Uranium struct{}

func (Uranium) EnergyDensity() unit.Joule { return 1000 * unit.JoulesPerBTU }
