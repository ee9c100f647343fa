package service

import (
	"sort"

	"github.com/hetpatoliya0206/ZeroWaste-Connect/internal/domain"
	"github.com/hetpatoliya0206/ZeroWaste-Connect/internal/geo"
)

// Scorer ranks a candidate NGO; lower is better. Kept behind an interface so
// the weighting can be tuned without touching selection.
type Scorer interface {
	Score(distanceKM float64, expiryHours int) float64
}

// ExpiryWeightedScorer is the default heuristic: distance plus a weighted
// expiry term. A long window drowns out distance and any eligible NGO will
// do; a short window makes distance dominate.
type ExpiryWeightedScorer struct {
	Weight float64
}

func (s ExpiryWeightedScorer) Score(distanceKM float64, expiryHours int) float64 {
	return distanceKM + float64(expiryHours)*s.Weight
}

type candidate struct {
	ngo        *domain.Account
	distanceKM float64
	score      float64
}

// rankCandidates scores each eligible NGO against the donor location and
// returns them best-first. Equal scores fall back to account id order so
// selection is reproducible.
func rankCandidates(scorer Scorer, donor *domain.Account, ngos []*domain.Account, expiryHours int) []candidate {
	ranked := make([]candidate, 0, len(ngos))
	for _, ngo := range ngos {
		dist := geo.DistanceKM(donor.Lat, donor.Lng, ngo.Lat, ngo.Lng)
		ranked = append(ranked, candidate{
			ngo:        ngo,
			distanceKM: dist,
			score:      scorer.Score(dist, expiryHours),
		})
	}

	sort.Slice(ranked, func(i, j int) bool {
		if ranked[i].score != ranked[j].score {
			return ranked[i].score < ranked[j].score
		}
		return ranked[i].ngo.ID.String() < ranked[j].ngo.ID.String()
	})

	return ranked
}
