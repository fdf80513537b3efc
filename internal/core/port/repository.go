package port

import (
	"context"

	"adcamp/internal/core/domain"
)

// The repository interfaces below are the outbound ports onto the entity
// store (a document database). Find methods return (nil, nil) when the
// entity does not exist; errors are reserved for store failures. Filter
// maps hold raw query-string values; implementations translate known
// fields and make a filter with a malformed id match nothing.

// AdvertiserRepository persists advertisers.
type AdvertiserRepository interface {
	Create(ctx context.Context, a *domain.Advertiser) (*domain.Advertiser, error)
	FindAll(ctx context.Context) ([]domain.Advertiser, error)
	FindByID(ctx context.Context, id string) (*domain.Advertiser, error)
	FindByFilter(ctx context.Context, filter map[string]string) ([]domain.Advertiser, error)
	Update(ctx context.Context, id string, a *domain.Advertiser) (*domain.Advertiser, error)
	// Delete removes the advertiser and returns the deleted document, or
	// (nil, nil) when it did not exist.
	Delete(ctx context.Context, id string) (*domain.Advertiser, error)
}

// CampaignRepository persists campaigns.
type CampaignRepository interface {
	Create(ctx context.Context, c *domain.Campaign) (*domain.Campaign, error)
	FindAll(ctx context.Context) ([]domain.Campaign, error)
	FindByID(ctx context.Context, id string) (*domain.Campaign, error)
	FindByFilter(ctx context.Context, filter map[string]string) ([]domain.Campaign, error)
	// FindByCountry returns campaigns whose countries_id contains countryID,
	// in stable store order.
	FindByCountry(ctx context.Context, countryID string) ([]domain.Campaign, error)
	// FindByPublisher returns campaigns whose publishers list contains an
	// entry for publisherID (the reverse attachment query).
	FindByPublisher(ctx context.Context, publisherID string) ([]domain.Campaign, error)
	Update(ctx context.Context, id string, c *domain.Campaign) (*domain.Campaign, error)
	Delete(ctx context.Context, id string) (*domain.Campaign, error)
	// DeleteByAdvertiser bulk-deletes every campaign referencing the
	// advertiser and returns how many were removed.
	DeleteByAdvertiser(ctx context.Context, advertiserID string) (int64, error)
}

// PublisherRepository persists publishers.
type PublisherRepository interface {
	Create(ctx context.Context, p *domain.Publisher) (*domain.Publisher, error)
	FindAll(ctx context.Context) ([]domain.Publisher, error)
	FindByID(ctx context.Context, id string) (*domain.Publisher, error)
	FindByFilter(ctx context.Context, filter map[string]string) ([]domain.Publisher, error)
	// FindByCampaign returns publishers whose campaigns_id contains
	// campaignID.
	FindByCampaign(ctx context.Context, campaignID string) ([]domain.Publisher, error)
	Update(ctx context.Context, id string, p *domain.Publisher) (*domain.Publisher, error)
	Delete(ctx context.Context, id string) (*domain.Publisher, error)
}

// CountryRepository reads the country reference data.
type CountryRepository interface {
	FindAll(ctx context.Context) ([]domain.Country, error)
	FindByID(ctx context.Context, id string) (*domain.Country, error)
}
