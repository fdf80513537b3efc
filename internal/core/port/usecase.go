package port

import (
	"context"

	"adcamp/internal/core/domain"
)

// The usecase interfaces are the inbound ports. Payloads are decoded JSON
// bodies (json.Number for numbers); failures are *domain.Error values the
// HTTP adapter translates to a status and body shape.

// AdvertiserUseCase covers advertiser CRUD and its delete cascade.
type AdvertiserUseCase interface {
	Create(ctx context.Context, payload map[string]any) (*domain.Advertiser, error)
	List(ctx context.Context) ([]domain.Advertiser, error)
	Get(ctx context.Context, id string) (*domain.Advertiser, error)
	Filter(ctx context.Context, filter map[string]string) ([]domain.Advertiser, error)
	Update(ctx context.Context, id string, payload map[string]any) (*domain.Advertiser, error)
	// Delete removes the advertiser and bulk-deletes every campaign that
	// referenced it.
	Delete(ctx context.Context, id string) error
}

// CampaignUseCase covers campaign CRUD, the bid auction and the
// publisher-attachment transitions.
type CampaignUseCase interface {
	Create(ctx context.Context, payload map[string]any) (*domain.Campaign, error)
	List(ctx context.Context) ([]domain.Campaign, error)
	Get(ctx context.Context, id string) (*domain.Campaign, error)
	Filter(ctx context.Context, filter map[string]string) ([]domain.Campaign, error)
	Update(ctx context.Context, id string, payload map[string]any) (*domain.Campaign, error)
	Delete(ctx context.Context, id string) error

	// FetchTopBids returns at most three campaigns targeting countryID,
	// ordered by bid descending with exact decimal comparison. A malformed
	// or unknown country yields an empty result, not an error.
	FetchTopBids(ctx context.Context, countryID string) ([]domain.Campaign, error)

	// AttachPublisher appends the publisher to the campaign's publishers
	// list with a zero result and mirrors the campaign id into the
	// publisher's campaigns_id. Re-attaching appends a second entry.
	AttachPublisher(ctx context.Context, campaignID, publisherID string) (*domain.Campaign, error)
	// UpdatePublisherResult rewrites the result of every matching entry in
	// the campaign's publishers list; the publisher document is untouched.
	UpdatePublisherResult(ctx context.Context, campaignID, publisherID string, result float64) (*domain.Campaign, error)
	// DetachPublisher removes every matching entry from the campaign's
	// publishers list and the campaign id from the publisher's campaigns_id.
	DetachPublisher(ctx context.Context, campaignID, publisherID string) (*domain.Campaign, error)
}

// PublisherUseCase covers publisher CRUD and its delete cascade.
type PublisherUseCase interface {
	Create(ctx context.Context, payload map[string]any) (*domain.Publisher, error)
	List(ctx context.Context) ([]domain.Publisher, error)
	Get(ctx context.Context, id string) (*domain.Publisher, error)
	Filter(ctx context.Context, filter map[string]string) ([]domain.Publisher, error)
	Update(ctx context.Context, id string, payload map[string]any) (*domain.Publisher, error)
	// Delete removes the publisher and strips its entries from every
	// campaign that attached it.
	Delete(ctx context.Context, id string) error
}

// CountryUseCase exposes the read-only country catalogue.
type CountryUseCase interface {
	List(ctx context.Context) ([]domain.Country, error)
}
