package geo

import (
	"math"
	"testing"
)

func TestHaversineKm_SamePoint(t *testing.T) {
	p := Point{Lat: 18.4861, Lng: -69.9312}
	if d := HaversineKm(p, p); d != 0 {
		t.Errorf("distance from a point to itself should be 0, got %g", d)
	}
}

func TestHaversineKm_Symmetric(t *testing.T) {
	a := Point{Lat: 18.4861, Lng: -69.9312} // Santo Domingo
	b := Point{Lat: 19.4517, Lng: -70.6970} // Santiago

	ab := HaversineKm(a, b)
	ba := HaversineKm(b, a)
	if math.Abs(ab-ba) > 1e-9 {
		t.Errorf("distance should be symmetric: %g vs %g", ab, ba)
	}
}

func TestHaversineKm_KnownDistance(t *testing.T) {
	// One degree of latitude is about 111.2 km.
	a := Point{Lat: 18.0, Lng: -69.0}
	b := Point{Lat: 19.0, Lng: -69.0}

	d := HaversineKm(a, b)
	if math.Abs(d-111.2) > 1.0 {
		t.Errorf("expected ~111.2 km per degree of latitude, got %g", d)
	}
}

func TestValidateCoordinates(t *testing.T) {
	tests := []struct {
		name     string
		lat, lng float64
		want     bool
	}{
		{"valid", 18.5, -69.9, true},
		{"boundary", 90, 180, true},
		{"lat too high", 90.1, 0, false},
		{"lat too low", -90.1, 0, false},
		{"lng too high", 0, 180.1, false},
		{"lng too low", 0, -180.1, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := ValidateCoordinates(tt.lat, tt.lng); got != tt.want {
				t.Errorf("ValidateCoordinates(%g, %g) = %v, want %v", tt.lat, tt.lng, got, tt.want)
			}
		})
	}
}
