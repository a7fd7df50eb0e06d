package provider

import (
	"sync"
	"testing"

	"github.com/enerva/fuelcore/core/fuel"
	"github.com/enerva/fuelcore/core/unit"
)

func dieselAmount(amount uint32) fuel.Container[unit.Joule, fuel.Diesel] {
	return fuel.NewContainer[unit.Joule](fuel.Diesel{}, amount)
}

func TestCombustionDecaySequence(t *testing.T) {
	ic := NewInternalCombustion[unit.Joule, fuel.Diesel](3, 120)
	want := []unit.BTU{1000, 1000, 1000, 990}
	for i, expected := range want {
		got := ic.ProvideEnergy(dieselAmount(10)).BTU()
		if got != expected {
			t.Fatalf("call %d: expected %v got %v", i+1, expected, got)
		}
	}
}

func TestCombustionDecayContinues(t *testing.T) {
	ic := NewInternalCombustion[unit.Joule, fuel.Diesel](2, 100)
	// Counter 0,1 keep 100%; the third call trips the interval, then every
	// second call after that.
	want := []unit.BTU{1000, 1000, 990, 990, 980, 980, 970}
	for i, expected := range want {
		got := ic.ProvideEnergy(dieselAmount(10)).BTU()
		if got != expected {
			t.Fatalf("call %d: expected %v got %v", i+1, expected, got)
		}
	}
}

func TestCombustionEfficiencySaturatesAtZero(t *testing.T) {
	ic := NewInternalCombustion[unit.Joule, fuel.Diesel](1, 2)
	want := []unit.BTU{20, 10, 0, 0, 0}
	for i, expected := range want {
		got := ic.ProvideEnergy(dieselAmount(10)).BTU()
		if got != expected {
			t.Fatalf("call %d: expected %v got %v", i+1, expected, got)
		}
	}
	if eff := ic.Efficiency(); eff != 0 {
		t.Fatalf("efficiency must stay at 0, got %d", eff)
	}
}

func TestCombustionInitialEfficiencySaturates(t *testing.T) {
	ic := NewInternalCombustion[unit.Joule, fuel.Diesel](10, 255)
	if eff := ic.Efficiency(); eff != 100 {
		t.Fatalf("expected 100 got %d", eff)
	}
}

// With a decay interval of 1 every call but the first steps the efficiency
// down by one, so concurrent callers that lost or doubled steps would show
// up as a wrong final efficiency.
func TestCombustionConcurrentDecay(t *testing.T) {
	ic := NewInternalCombustion[unit.Joule, fuel.Diesel](1, 100)
	const calls = 51
	var wg sync.WaitGroup
	for i := 0; i < calls; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			ic.ProvideEnergy(dieselAmount(1))
		}()
	}
	wg.Wait()
	if eff := ic.Efficiency(); eff != 100-(calls-1) {
		t.Fatalf("expected %d got %d", 100-(calls-1), eff)
	}
}
