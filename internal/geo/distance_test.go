package geo

import (
	"math"
	"testing"
)

func TestDistanceKM_ZeroDistance(t *testing.T) {
	d := DistanceKM(12.90, 77.60, 12.90, 77.60)
	if d < 0 || d > 1e-9 {
		t.Fatalf("expected ~0, got %v", d)
	}
}

func TestDistanceKM_Symmetric(t *testing.T) {
	a := DistanceKM(12.90, 77.60, 55.75, 37.61)
	b := DistanceKM(55.75, 37.61, 12.90, 77.60)
	if math.Abs(a-b) > 1e-9 {
		t.Fatalf("distance not symmetric: %v vs %v", a, b)
	}
}

func TestDistanceKM_KnownValues(t *testing.T) {
	tests := []struct {
		name                   string
		lat1, lng1, lat2, lng2 float64
		wantKM                 float64
		tolKM                  float64
	}{
		{
			name: "bangalore cafe to ngo",
			lat1: 12.90, lng1: 77.60,
			lat2: 12.91, lng2: 77.61,
			wantKM: 1.55,
			tolKM:  0.05,
		},
		{
			name: "one degree of latitude",
			lat1: 0, lng1: 0,
			lat2: 1, lng2: 0,
			wantKM: 111.19,
			tolKM:  0.5,
		},
		{
			name: "antipodal-ish long haul",
			lat1: 51.5074, lng1: -0.1278, // London
			lat2: 40.7128, lng2: -74.0060, // New York
			wantKM: 5570,
			tolKM:  20,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := DistanceKM(tt.lat1, tt.lng1, tt.lat2, tt.lng2)
			if math.Abs(got-tt.wantKM) > tt.tolKM {
				t.Fatalf("DistanceKM = %v, want %v ± %v", got, tt.wantKM, tt.tolKM)
			}
		})
	}
}
