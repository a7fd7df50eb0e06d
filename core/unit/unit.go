// Package unit defines the energy units used across the module. BTU is the
// canonical base unit: all cross-unit arithmetic routes through it. Joule and
// Calorie are native units tied to the base unit by fixed integer ratios.
package unit

// BTU is the canonical base unit of energy.
type BTU uint32

// Joule is a native energy unit. 1055 joule magnitudes make one BTU.
type Joule uint32

// Calorie is a native energy unit. 251 calorie magnitudes make one BTU.
type Calorie uint32

const (
	// JoulesPerBTU is the fixed conversion ratio between Joule and BTU.
	JoulesPerBTU Joule = 1055
	// CaloriesPerBTU is the fixed conversion ratio between Calorie and BTU.
	CaloriesPerBTU Calorie = 251
)

// Unit constrains a type to an energy unit: an unsigned magnitude that
// converts to and from the base unit. Narrowing to BTU floor-divides, so a
// round-trip through the base unit can lose up to ratio-1 magnitudes; the
// widening direction multiplies and is exact.
type Unit[U any] interface {
	~uint32
	BTU() BTU
	FromBTU(b BTU) U
}

// BTU converts j to the base unit, discarding any remainder.
func (j Joule) BTU() BTU { return BTU(j / JoulesPerBTU) }

// FromBTU converts a base-unit quantity to joules.
func (Joule) FromBTU(b BTU) Joule { return Joule(b) * JoulesPerBTU }

// BTU converts c to the base unit, discarding any remainder.
func (c Calorie) BTU() BTU { return BTU(c / CaloriesPerBTU) }

// FromBTU converts a base-unit quantity to calories.
func (Calorie) FromBTU(b BTU) Calorie { return Calorie(b) * CaloriesPerBTU }

// BTU returns b unchanged. The base unit satisfies Unit so that fuels whose
// native unit already is the base unit flow through the same generic code.
func (b BTU) BTU() BTU { return b }

// FromBTU returns b unchanged.
func (BTU) FromBTU(b BTU) BTU { return b }
