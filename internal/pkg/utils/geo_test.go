package utils

import (
	"math"
	"testing"
)

func TestCalculateHaversineDistance_Identity(t *testing.T) {
	points := [][2]float64{
		{0, 0},
		{-7.7598, 110.3953},
		{89.9, -179.9},
	}
	for _, p := range points {
		if d := CalculateHaversineDistance(p[0], p[1], p[0], p[1]); d != 0 {
			t.Errorf("distance(%v,%v to itself) = %v, want 0", p[0], p[1], d)
		}
	}
}

func TestCalculateHaversineDistance_Symmetry(t *testing.T) {
	a := [2]float64{-7.7598, 110.3953}
	b := [2]float64{-7.7610, 110.4001}
	d1 := CalculateHaversineDistance(a[0], a[1], b[0], b[1])
	d2 := CalculateHaversineDistance(b[0], b[1], a[0], a[1])
	if math.Abs(d1-d2) > 1e-9 {
		t.Errorf("distance not symmetric: %v vs %v", d1, d2)
	}
	if d1 <= 0 {
		t.Errorf("distance between distinct points = %v, want > 0", d1)
	}
}

func TestCalculateHaversineDistance_KnownDistance(t *testing.T) {
	// Satu derajat lintang di khatulistiwa sekitar 111.19 km.
	d := CalculateHaversineDistance(0, 0, 1, 0)
	if d < 110000 || d > 112000 {
		t.Errorf("one degree latitude = %v m, want ~111195 m", d)
	}
}

func TestIsLocationValid(t *testing.T) {
	cases := []struct {
		name                            string
		distance, accuracy, radius, max float64
		want                            bool
	}{
		{"inside radius with margin", 50, 30, 100, 200, true},
		{"outside radius plus margin", 150, 30, 100, 200, false},
		{"exactly at radius plus margin", 130, 30, 100, 200, true},
		{"accuracy over max rejects regardless of distance", 0, 201, 100, 200, false},
		{"accuracy at max is allowed", 10, 200, 100, 200, true},
		{"far away even with big accuracy margin", 500, 199, 100, 200, false},
	}
	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			got := IsLocationValid(c.distance, c.accuracy, c.radius, c.max)
			if got != c.want {
				t.Errorf("IsLocationValid(%v,%v,%v,%v) = %v, want %v",
					c.distance, c.accuracy, c.radius, c.max, got, c.want)
			}
		})
	}
}

func TestIsLocationValid_AccuracyAboveMaxAlwaysInvalid(t *testing.T) {
	for _, distance := range []float64{0, 1, 50, 1000} {
		if IsLocationValid(distance, MaxAccuracyMeters+1, 100, MaxAccuracyMeters) {
			t.Errorf("accuracy above max must be invalid at distance %v", distance)
		}
	}
}
