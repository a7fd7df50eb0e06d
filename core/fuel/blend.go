package fuel

import "github.com/enerva/fuelcore/core/unit"

// Blend mixes two fuels into a new fuel type. Its density is the floor
// average of the two densities once converted to the base unit, and its
// native unit is the base unit, so any provider can consume it like an
// ordinary fuel.
type Blend[U1 unit.Unit[U1], F1 Fuel[U1], U2 unit.Unit[U2], F2 Fuel[U2]] struct {
	first  F1
	second F2
}

// NewBlend mixes first and second in equal parts.
func NewBlend[U1 unit.Unit[U1], F1 Fuel[U1], U2 unit.Unit[U2], F2 Fuel[U2]](first F1, second F2) Blend[U1, F1, U2, F2] {
	return Blend[U1, F1, U2, F2]{first: first, second: second}
}

func (b Blend[U1, F1, U2, F2]) EnergyDensity() unit.BTU {
	return (b.first.EnergyDensity().BTU() + b.second.EnergyDensity().BTU()) / 2
}

// WeightedBlend mixes two fuels with a configurable ratio: weight percent of
// the density comes from the first fuel, the remainder from the second. Each
// term is floor-divided independently before summing.
type WeightedBlend[U1 unit.Unit[U1], F1 Fuel[U1], U2 unit.Unit[U2], F2 Fuel[U2]] struct {
	first  F1
	second F2
	weight uint8
}

// NewWeightedBlend mixes first and second, attributing weight percent of the
// density to first. Weights above 100 saturate at 100.
func NewWeightedBlend[U1 unit.Unit[U1], F1 Fuel[U1], U2 unit.Unit[U2], F2 Fuel[U2]](first F1, second F2, weight uint8) WeightedBlend[U1, F1, U2, F2] {
	if weight > 100 {
		weight = 100
	}
	return WeightedBlend[U1, F1, U2, F2]{first: first, second: second, weight: weight}
}

func (b WeightedBlend[U1, F1, U2, F2]) EnergyDensity() unit.BTU {
	w := unit.BTU(b.weight)
	d1 := b.first.EnergyDensity().BTU() * w / 100
	d2 := b.second.EnergyDensity().BTU() * (100 - w) / 100
	return d1 + d2
}
