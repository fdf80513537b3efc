package usecase

import (
	"context"

	"adcamp/internal/core/domain"
	"adcamp/internal/core/port"
	"adcamp/internal/core/validate"
)

// Campaigns can be fetched top-3 per country; this many entries per
// auction answer.
const topBidCount = 3

// CampaignUseCase implements port.CampaignUseCase: CRUD with referential
// gates, the bid auction and the publisher-attachment transitions. The
// cache is optional; a nil cache turns every auction read into a straight
// store query.
type CampaignUseCase struct {
	campaigns    port.CampaignRepository
	advertisers  port.AdvertiserRepository
	countries    port.CountryRepository
	relationship *RelationshipService
	attachments  *AttachmentService
	cache        port.AuctionCache
}

// NewCampaignUseCase wires the campaign business logic.
func NewCampaignUseCase(
	campaigns port.CampaignRepository,
	advertisers port.AdvertiserRepository,
	countries port.CountryRepository,
	relationship *RelationshipService,
	attachments *AttachmentService,
	cache port.AuctionCache,
) *CampaignUseCase {
	return &CampaignUseCase{
		campaigns:    campaigns,
		advertisers:  advertisers,
		countries:    countries,
		relationship: relationship,
		attachments:  attachments,
		cache:        cache,
	}
}

// Create validates the payload shape, confirms the advertiser and every
// country exist, persists the campaign with an empty publishers list and
// appends it to the advertiser's campaigns_id.
func (u *CampaignUseCase) Create(ctx context.Context, payload map[string]any) (*domain.Campaign, error) {
	if errs := validate.Entity(validate.Campaign, payload); len(errs) > 0 {
		return nil, domain.NewValidationError(errs)
	}

	advertiserID := stringField(payload, "advertiser_id")
	advertiser, err := u.advertisers.FindByID(ctx, advertiserID)
	if err != nil {
		return nil, err
	}
	if advertiser == nil {
		return nil, domain.NewReferenceNotFoundError("advertiser_id")
	}

	countriesID := stringList(payload, "countries_id")
	var missing []string
	for _, id := range countriesID {
		country, err := u.countries.FindByID(ctx, id)
		if err != nil {
			return nil, err
		}
		if country == nil {
			missing = append(missing, id)
		}
	}
	if len(missing) > 0 {
		return nil, domain.NewReferenceListNotFoundError("countries_id", missing)
	}

	campaign := campaignFromPayload(payload)
	created, err := u.campaigns.Create(ctx, &campaign)
	if err != nil {
		return nil, err
	}
	if err := u.relationship.OnCampaignCreated(ctx, created.AdvertiserID, created.ID); err != nil {
		return nil, err
	}
	u.invalidate(ctx, created.CountriesID)
	return created, nil
}

func (u *CampaignUseCase) List(ctx context.Context) ([]domain.Campaign, error) {
	return u.campaigns.FindAll(ctx)
}

func (u *CampaignUseCase) Get(ctx context.Context, id string) (*domain.Campaign, error) {
	if !domain.IsID(id) {
		return nil, domain.NewInvalidFieldError("id")
	}
	campaign, err := u.campaigns.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if campaign == nil {
		return nil, domain.NewNotFoundError("campaign")
	}
	return campaign, nil
}

func (u *CampaignUseCase) Filter(ctx context.Context, filter map[string]string) ([]domain.Campaign, error) {
	return u.campaigns.FindByFilter(ctx, filter)
}

// Update merges the body over the stored campaign and revalidates the
// result. advertiser_id and publishers are immutable: their mere presence
// in the body is rejected before anything else runs.
func (u *CampaignUseCase) Update(ctx context.Context, id string, payload map[string]any) (*domain.Campaign, error) {
	for _, field := range []string{"advertiser_id", "publishers"} {
		if _, ok := payload[field]; ok {
			return nil, domain.NewImmutableFieldError(field)
		}
	}
	if !domain.IsID(id) {
		return nil, domain.NewInvalidFieldError("id")
	}

	existing, err := u.campaigns.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if existing == nil {
		return nil, domain.NewNotFoundError("campaign")
	}

	merged := mergePayload(campaignToPayload(existing), payload)
	if errs := validate.Entity(validate.Campaign, merged); len(errs) > 0 {
		return nil, domain.NewValidationError(errs)
	}

	campaign := campaignFromPayload(merged)
	campaign.AdvertiserID = existing.AdvertiserID
	campaign.Publishers = existing.Publishers

	updated, err := u.campaigns.Update(ctx, id, &campaign)
	if err != nil {
		return nil, err
	}
	if updated == nil {
		return nil, domain.NewNotFoundError("campaign")
	}
	u.invalidate(ctx, append(existing.CountriesID, updated.CountriesID...))
	return updated, nil
}

// Delete removes the campaign, prunes it from its advertiser's
// campaigns_id and from every attached publisher's campaigns_id.
func (u *CampaignUseCase) Delete(ctx context.Context, id string) error {
	if !domain.IsID(id) {
		return domain.NewInvalidFieldError("id")
	}
	deleted, err := u.campaigns.Delete(ctx, id)
	if err != nil {
		return err
	}
	if deleted == nil {
		return domain.NewNotFoundError("campaign")
	}
	if err := u.relationship.OnCampaignDeleted(ctx, deleted.AdvertiserID, id); err != nil {
		return err
	}
	if err := u.attachments.PruneCampaign(ctx, id); err != nil {
		return err
	}
	u.invalidate(ctx, deleted.CountriesID)
	return nil
}

// FetchTopBids answers the auction: at most three campaigns targeting the
// country, ordered by bid descending. A malformed country id matches
// nothing and yields an empty result.
func (u *CampaignUseCase) FetchTopBids(ctx context.Context, countryID string) ([]domain.Campaign, error) {
	if !domain.IsID(countryID) {
		return []domain.Campaign{}, nil
	}
	if u.cache != nil {
		if cached, ok, err := u.cache.GetTopBids(ctx, countryID); err == nil && ok {
			return cached, nil
		}
	}
	campaigns, err := u.campaigns.FindByCountry(ctx, countryID)
	if err != nil {
		return nil, err
	}
	top := rankTopBids(campaigns, topBidCount)
	if u.cache != nil {
		// Best effort; the store already answered.
		_ = u.cache.SetTopBids(ctx, countryID, top)
	}
	return top, nil
}

func (u *CampaignUseCase) AttachPublisher(ctx context.Context, campaignID, publisherID string) (*domain.Campaign, error) {
	updated, err := u.attachments.Attach(ctx, campaignID, publisherID)
	if err != nil {
		return nil, err
	}
	u.invalidate(ctx, updated.CountriesID)
	return updated, nil
}

func (u *CampaignUseCase) UpdatePublisherResult(ctx context.Context, campaignID, publisherID string, result float64) (*domain.Campaign, error) {
	updated, err := u.attachments.UpdateResult(ctx, campaignID, publisherID, result)
	if err != nil {
		return nil, err
	}
	u.invalidate(ctx, updated.CountriesID)
	return updated, nil
}

func (u *CampaignUseCase) DetachPublisher(ctx context.Context, campaignID, publisherID string) (*domain.Campaign, error) {
	updated, err := u.attachments.Detach(ctx, campaignID, publisherID)
	if err != nil {
		return nil, err
	}
	u.invalidate(ctx, updated.CountriesID)
	return updated, nil
}

// invalidate drops cached auction results for the given countries. Cache
// failures are ignored: the next read falls through to the store.
func (u *CampaignUseCase) invalidate(ctx context.Context, countryIDs []string) {
	if u.cache == nil {
		return
	}
	_ = u.cache.InvalidateCountries(ctx, countryIDs)
}
