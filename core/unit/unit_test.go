package unit

import "testing"

func TestJouleConversion(t *testing.T) {
	if got := Joule(105500).BTU(); got != 100 {
		t.Fatalf("expected 100 got %v", got)
	}
	if got := (Joule(0)).FromBTU(100); got != 105500 {
		t.Fatalf("expected 105500 got %v", got)
	}
}

func TestCalorieConversion(t *testing.T) {
	if got := Calorie(502).BTU(); got != 2 {
		t.Fatalf("expected 2 got %v", got)
	}
	if got := (Calorie(0)).FromBTU(200); got != 50200 {
		t.Fatalf("expected 50200 got %v", got)
	}
}

func TestBTUIdentity(t *testing.T) {
	if got := BTU(42).BTU(); got != 42 {
		t.Fatalf("expected 42 got %v", got)
	}
	if got := (BTU(0)).FromBTU(42); got != 42 {
		t.Fatalf("expected 42 got %v", got)
	}
}

// Narrowing floor-divides, so a round-trip may lose magnitudes but never
// gains any, and the loss stays below the conversion ratio.
func TestRoundTripLossBounds(t *testing.T) {
	for _, q := range []Joule{0, 1, 1054, 1055, 1056, 99999, 105500, 4000000} {
		back := (Joule(0)).FromBTU(q.BTU())
		if back > q {
			t.Fatalf("round trip of %v grew to %v", q, back)
		}
		if q-back >= JoulesPerBTU {
			t.Fatalf("round trip of %v lost %v, more than the ratio", q, q-back)
		}
	}
	for _, q := range []Calorie{0, 1, 250, 251, 252, 50200, 123456} {
		back := (Calorie(0)).FromBTU(q.BTU())
		if back > q {
			t.Fatalf("round trip of %v grew to %v", q, back)
		}
		if q-back >= CaloriesPerBTU {
			t.Fatalf("round trip of %v lost %v, more than the ratio", q, q-back)
		}
	}
}
