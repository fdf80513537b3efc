package usecase

import (
	"sort"

	"adcamp/internal/core/domain"
)

// rankTopBids orders campaigns by bid descending and truncates to n. The
// comparison is exact decimal, never binary float, so close bids keep
// their true order; ties keep the store's stable order.
func rankTopBids(campaigns []domain.Campaign, n int) []domain.Campaign {
	ranked := make([]domain.Campaign, len(campaigns))
	copy(ranked, campaigns)
	sort.SliceStable(ranked, func(i, j int) bool {
		return ranked[i].Bid.Cmp(ranked[j].Bid) > 0
	})
	if len(ranked) > n {
		ranked = ranked[:n]
	}
	return ranked
}
