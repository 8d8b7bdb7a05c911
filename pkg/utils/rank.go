package utils

import (
	"sort"

	"github.com/danuarts/stylora-backend/app/models"
)

// MergePools concatenates the two geo candidate pools, online pool first.
// The pools are never re-interleaved; ties in the rank key keep this order.
func MergePools(online, offline []models.StylistCandidate) []models.StylistCandidate {
	merged := make([]models.StylistCandidate, 0, len(online)+len(offline))
	merged = append(merged, online...)
	merged = append(merged, offline...)
	return merged
}

// RankCandidates sorts the merged candidate set in place by the requested
// sort key, descending. Unrecognized keys fall back to avg_rating. The sort
// is stable so equal candidates keep their merge order.
func RankCandidates(candidates []models.StylistCandidate, sortKey string) {
	var key func(c models.StylistCandidate) float64
	switch sortKey {
	case models.SortMostPreferred:
		key = func(c models.StylistCandidate) float64 { return float64(c.StylistFavCount) }
	case models.SortCompletedServices:
		key = func(c models.StylistCandidate) float64 { return float64(c.CompletedOrderCount) }
	default:
		key = func(c models.StylistCandidate) float64 { return c.AvgRating }
	}

	sort.SliceStable(candidates, func(i, j int) bool {
		return key(candidates[i]) > key(candidates[j])
	})
}
