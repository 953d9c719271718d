package game

import (
	"math"
	"testing"
)

func TestCanyonXDeterministic(t *testing.T) {
	for _, y := range []float64{-5000, -1, 0, 1, 317.5, 99999.25} {
		a := CanyonX(y)
		b := CanyonX(y)
		if a != b {
			t.Fatalf("CanyonX(%v) not deterministic: %v vs %v", y, a, b)
		}
	}
}

func TestCanyonSlopeMatchesDerivative(t *testing.T) {
	const h = 1e-5
	for y := -2000.0; y <= 2000.0; y += 97.3 {
		got := CanyonSlope(y)
		want := (CanyonX(y+h) - CanyonX(y-h)) / (2 * h)
		if math.Abs(got-want) > 1e-5 {
			t.Fatalf("slope at y=%v: got %v, finite difference %v", y, got, want)
		}
	}
}

func TestCanyonXBounded(t *testing.T) {
	limit := CanyonAmp1 + CanyonAmp2
	for y := -100000.0; y <= 100000.0; y += 613.7 {
		if x := math.Abs(CanyonX(y)); x > limit {
			t.Fatalf("CanyonX(%v) = %v exceeds amplitude bound %v", y, x, limit)
		}
	}
}

// The corridor floor must be flat exactly where the steering wants the ship
// to be: terrain attenuation and steering share the one CanyonX.
func TestCenterlineIsFlat(t *testing.T) {
	for y := 0.0; y < 10000; y += 41.3 {
		center := Vec2{X: CanyonX(y), Y: y}
		if h := TerrainHeight(center); h != 0 {
			t.Fatalf("terrain height %v on the centerline at y=%v", h, y)
		}
		// Still flat across the inner corridor width.
		edge := Vec2{X: CanyonX(y) + CorridorInnerWidth - 0.01, Y: y}
		if h := TerrainHeight(edge); h != 0 {
			t.Fatalf("terrain height %v just inside the corridor at y=%v", h, y)
		}
	}
}
