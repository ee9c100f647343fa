package service

import (
	"math"
	"testing"

	"github.com/hetpatoliya0206/ZeroWaste-Connect/internal/domain"

	"github.com/google/uuid"
)

func TestExpiryWeightedScorer(t *testing.T) {
	s := ExpiryWeightedScorer{Weight: 0.5}

	if got := s.Score(10, 4); got != 12 {
		t.Fatalf("Score(10, 4) = %v, want 12", got)
	}
	if got := s.Score(0, 0); got != 0 {
		t.Fatalf("Score(0, 0) = %v, want 0", got)
	}
}

func ngoAt(name string, lat, lng float64) *domain.Account {
	return &domain.Account{
		ID:   uuid.New(),
		Name: name,
		Role: domain.RoleNGO,
		Lat:  lat,
		Lng:  lng,
	}
}

func TestRankCandidates_NearestFirst(t *testing.T) {
	donor := &domain.Account{Name: "Cafe X", Role: domain.RoleDonor, Lat: 12.90, Lng: 77.60}

	near := ngoAt("Helping Hands", 12.91, 77.61)
	far := ngoAt("Distant Aid", 13.10, 77.80)

	ranked := rankCandidates(ExpiryWeightedScorer{Weight: 0.5}, donor, []*domain.Account{far, near}, 4)
	if len(ranked) != 2 {
		t.Fatalf("expected 2 candidates, got %d", len(ranked))
	}
	if ranked[0].ngo.Name != "Helping Hands" {
		t.Fatalf("expected Helping Hands first, got %s", ranked[0].ngo.Name)
	}
	if ranked[0].score >= ranked[1].score {
		t.Fatalf("ranking not ascending: %v >= %v", ranked[0].score, ranked[1].score)
	}
	if math.Abs(ranked[0].distanceKM-1.55) > 0.05 {
		t.Fatalf("unexpected distance %v", ranked[0].distanceKM)
	}
}

func TestRankCandidates_ExpiryAppliedToAll(t *testing.T) {
	// Expiry is the same for every candidate, so ordering must stay purely
	// distance-driven no matter how long the window is.
	donor := &domain.Account{Name: "Cafe X", Role: domain.RoleDonor, Lat: 12.90, Lng: 77.60}

	near := ngoAt("near", 12.91, 77.61)
	far := ngoAt("far", 13.10, 77.80)

	short := rankCandidates(ExpiryWeightedScorer{Weight: 0.5}, donor, []*domain.Account{far, near}, 1)
	long := rankCandidates(ExpiryWeightedScorer{Weight: 0.5}, donor, []*domain.Account{far, near}, 48)

	if short[0].ngo.Name != long[0].ngo.Name {
		t.Fatalf("expiry window changed the winner: %s vs %s", short[0].ngo.Name, long[0].ngo.Name)
	}
	if long[0].score <= short[0].score {
		t.Fatalf("longer expiry should raise the score: %v <= %v", long[0].score, short[0].score)
	}
}

func TestRankCandidates_TieBreakByID(t *testing.T) {
	donor := &domain.Account{Name: "Cafe X", Role: domain.RoleDonor, Lat: 12.90, Lng: 77.60}

	// Same location, same score. Ordering must fall back to the account id.
	a := ngoAt("a", 12.91, 77.61)
	b := ngoAt("b", 12.91, 77.61)

	ranked := rankCandidates(ExpiryWeightedScorer{Weight: 0.5}, donor, []*domain.Account{a, b}, 4)
	rankedSwapped := rankCandidates(ExpiryWeightedScorer{Weight: 0.5}, donor, []*domain.Account{b, a}, 4)

	if ranked[0].ngo.ID != rankedSwapped[0].ngo.ID {
		t.Fatalf("tie-break not stable across input order")
	}
	if ranked[0].ngo.ID.String() > ranked[1].ngo.ID.String() {
		t.Fatalf("tie-break should order by account id")
	}
}

func TestUtilizationPct(t *testing.T) {
	tests := []struct {
		capacity, baseline int
		want               float64
	}{
		{40, 50, 20},
		{50, 50, 0},
		{0, 50, 100},
		{10, 0, 0}, // baseline never set
		{1, 3, 66.67},
	}

	for _, tt := range tests {
		if got := utilizationPct(tt.capacity, tt.baseline); got != tt.want {
			t.Fatalf("utilizationPct(%d, %d) = %v, want %v", tt.capacity, tt.baseline, got, tt.want)
		}
	}
}
