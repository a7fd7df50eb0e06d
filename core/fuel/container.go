package fuel

import "github.com/enerva/fuelcore/core/unit"

// Container pairs an amount of fuel with its fuel type. It is immutable and
// logically consumed by a single provider conversion.
type Container[U unit.Unit[U], F Fuel[U]] struct {
	fuel   F
	amount uint32
}

// NewContainer fills a container with amount units of f. A zero amount is
// legal and yields zero energy.
func NewContainer[U unit.Unit[U], F Fuel[U]](f F, amount uint32) Container[U, F] {
	return Container[U, F]{fuel: f, amount: amount}
}

// Amount reports how many units of fuel the container holds.
func (c Container[U, F]) Amount() uint32 { return c.amount }

// Fuel returns the contained fuel value. Plain fuels are empty structs;
// combinator fuels carry their blend configuration here.
func (c Container[U, F]) Fuel() F { return c.fuel }
