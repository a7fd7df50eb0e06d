package config

import (
	"fmt"

	"github.com/enerva/fuelcore/core/fuel"
	"github.com/enerva/fuelcore/core/provider"
	"github.com/enerva/fuelcore/core/station"
	"github.com/enerva/fuelcore/core/unit"
)

// StationConfig describes one energy station to simulate.
//
// The typed API enforces provider/fuel admissibility at compile time; this
// layer rebuilds the same pairings from a closed set of names, so an
// inadmissible combination (say a green engine on diesel) is rejected here
// with a configuration error instead.
type StationConfig struct {
	Name     string `json:"name"`
	Provider string `json:"provider"` // nuclear | combustion | omni | green | british
	Fuel     string `json:"fuel"`     // diesel | uranium | lithium_battery | diesel_lithium_blend | diesel_lithium_weighted
	// Efficiency configures combustion and omni providers; values above 100
	// saturate at 100.
	Efficiency uint8 `json:"efficiency"`
	// DecayInterval is the calls-per-efficiency-step of a combustion engine.
	DecayInterval uint32 `json:"decay_interval"`
	// BlendWeight is the first-fuel percentage of a weighted blend.
	BlendWeight uint8 `json:"blend_weight"`
}

// SetDefaults applies sane defaults.
func (c *StationConfig) SetDefaults() {
	if c.Efficiency == 0 {
		c.Efficiency = 100
	}
	if c.DecayInterval == 0 {
		c.DecayInterval = 10
	}
	if c.BlendWeight == 0 {
		c.BlendWeight = 50
	}
}

// Validate checks mandatory fields and membership in the closed name sets.
func (c StationConfig) Validate() error {
	if c.Name == "" {
		return fmt.Errorf("name is required")
	}
	switch c.Provider {
	case "nuclear", "combustion", "omni", "green", "british":
	default:
		return fmt.Errorf("unknown provider %s", c.Provider)
	}
	switch c.Fuel {
	case "diesel", "uranium", "lithium_battery", "diesel_lithium_blend", "diesel_lithium_weighted":
	default:
		return fmt.Errorf("unknown fuel %s", c.Fuel)
	}
	return nil
}

// Build constructs the station, pairing the named provider with the named
// fuel. Inadmissible pairings return an error.
func (c StationConfig) Build() (station.Station, error) {
	switch c.Fuel {
	case "diesel":
		return buildStandard[unit.Joule](c, fuel.Diesel{})
	case "uranium":
		return buildStandard[unit.Joule](c, fuel.Uranium{})
	case "lithium_battery":
		if c.Provider == "green" {
			ge := provider.GreenEngine[unit.Calorie, fuel.LithiumBattery]{}
			return station.New[unit.Calorie](c.Name, c.Fuel, fuel.LithiumBattery{}, ge), nil
		}
		return buildStandard[unit.Calorie](c, fuel.LithiumBattery{})
	case "diesel_lithium_blend":
		b := fuel.NewBlend[unit.Joule, fuel.Diesel, unit.Calorie, fuel.LithiumBattery](fuel.Diesel{}, fuel.LithiumBattery{})
		if c.Provider == "british" {
			be := provider.BritishEngine[fuel.Blend[unit.Joule, fuel.Diesel, unit.Calorie, fuel.LithiumBattery]]{}
			return station.New[unit.BTU](c.Name, c.Fuel, b, be), nil
		}
		return buildStandard[unit.BTU](c, b)
	case "diesel_lithium_weighted":
		wb := fuel.NewWeightedBlend[unit.Joule, fuel.Diesel, unit.Calorie, fuel.LithiumBattery](fuel.Diesel{}, fuel.LithiumBattery{}, c.BlendWeight)
		if c.Provider == "british" {
			be := provider.BritishEngine[fuel.WeightedBlend[unit.Joule, fuel.Diesel, unit.Calorie, fuel.LithiumBattery]]{}
			return station.New[unit.BTU](c.Name, c.Fuel, wb, be), nil
		}
		return buildStandard[unit.BTU](c, wb)
	default:
		return station.Station{}, fmt.Errorf("unknown fuel %s", c.Fuel)
	}
}

func buildStandard[U unit.Unit[U], F fuel.Fuel[U]](c StationConfig, f F) (station.Station, error) {
	switch c.Provider {
	case "nuclear":
		return station.New[U](c.Name, c.Fuel, f, provider.NuclearReactor[U, F]{}), nil
	case "combustion":
		ic := provider.NewInternalCombustion[U, F](c.DecayInterval, c.Efficiency)
		return station.New[U](c.Name, c.Fuel, f, ic), nil
	case "omni":
		return station.New[U](c.Name, c.Fuel, f, provider.NewOmniGenerator[U, F](c.Efficiency)), nil
	case "green", "british":
		return station.Station{}, fmt.Errorf("provider %s cannot consume fuel %s", c.Provider, c.Fuel)
	default:
		return station.Station{}, fmt.Errorf("unknown provider %s", c.Provider)
	}
}

// BuildStations constructs every configured station.
func BuildStations(cfgs []StationConfig) ([]station.Station, error) {
	stations := make([]station.Station, 0, len(cfgs))
	for _, c := range cfgs {
		st, err := c.Build()
		if err != nil {
			return nil, fmt.Errorf("station %s: %w", c.Name, err)
		}
		stations = append(stations, st)
	}
	return stations, nil
}
