package port

import (
	"context"

	"adcamp/internal/core/domain"
)

// AuctionCache caches fetch-top-bids results per country. It is a latency
// optimisation only: a miss, an error or a nil cache all fall through to
// the store and must never change observable results.
type AuctionCache interface {
	// GetTopBids returns the cached ranking for countryID and whether the
	// key was present.
	GetTopBids(ctx context.Context, countryID string) ([]domain.Campaign, bool, error)
	// SetTopBids stores the ranking for countryID with the cache's TTL.
	SetTopBids(ctx context.Context, countryID string, campaigns []domain.Campaign) error
	// InvalidateCountries drops the cached rankings for the given
	// countries after a campaign mutation touching them.
	InvalidateCountries(ctx context.Context, countryIDs []string) error
}
