package usecase

import (
	"context"

	"adcamp/internal/core/domain"
	"adcamp/internal/core/port"
)

// AdvertiserUseCase implements port.AdvertiserUseCase. Advertisers only
// carry a name; campaigns_id is server-owned and maintained by the
// relationship service, so create and update both check the name inline
// and never accept a campaigns_id from the client.
type AdvertiserUseCase struct {
	advertisers  port.AdvertiserRepository
	relationship *RelationshipService
	attachments  *AttachmentService
	cache        port.AuctionCache
}

// NewAdvertiserUseCase wires the advertiser business logic.
func NewAdvertiserUseCase(
	advertisers port.AdvertiserRepository,
	relationship *RelationshipService,
	attachments *AttachmentService,
	cache port.AuctionCache,
) *AdvertiserUseCase {
	return &AdvertiserUseCase{
		advertisers:  advertisers,
		relationship: relationship,
		attachments:  attachments,
		cache:        cache,
	}
}

func (u *AdvertiserUseCase) Create(ctx context.Context, payload map[string]any) (*domain.Advertiser, error) {
	name, _ := payload["name"].(string)
	if name == "" {
		return nil, domain.NewRequiredFieldError("name")
	}
	advertiser := domain.Advertiser{Name: name, CampaignsID: []string{}}
	return u.advertisers.Create(ctx, &advertiser)
}

func (u *AdvertiserUseCase) List(ctx context.Context) ([]domain.Advertiser, error) {
	return u.advertisers.FindAll(ctx)
}

func (u *AdvertiserUseCase) Get(ctx context.Context, id string) (*domain.Advertiser, error) {
	if !domain.IsID(id) {
		return nil, domain.NewInvalidFieldError("id")
	}
	advertiser, err := u.advertisers.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if advertiser == nil {
		return nil, domain.NewNotFoundError("advertiser")
	}
	return advertiser, nil
}

func (u *AdvertiserUseCase) Filter(ctx context.Context, filter map[string]string) ([]domain.Advertiser, error) {
	return u.advertisers.FindByFilter(ctx, filter)
}

// Update changes the name only; campaigns_id is carried over untouched.
func (u *AdvertiserUseCase) Update(ctx context.Context, id string, payload map[string]any) (*domain.Advertiser, error) {
	name, _ := payload["name"].(string)
	if name == "" {
		return nil, domain.NewRequiredFieldError("name")
	}
	if !domain.IsID(id) {
		return nil, domain.NewInvalidFieldError("id")
	}
	existing, err := u.advertisers.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if existing == nil {
		return nil, domain.NewNotFoundError("advertiser")
	}
	existing.Name = name
	updated, err := u.advertisers.Update(ctx, id, existing)
	if err != nil {
		return nil, err
	}
	if updated == nil {
		return nil, domain.NewNotFoundError("advertiser")
	}
	return updated, nil
}

// Delete removes the advertiser and bulk-deletes every campaign that
// referenced it. Each deleted campaign is pruned from its attached
// publishers' campaigns_id and its countries' cached auctions are dropped,
// the same cleanup a direct campaign delete runs.
func (u *AdvertiserUseCase) Delete(ctx context.Context, id string) error {
	if !domain.IsID(id) {
		return domain.NewInvalidFieldError("id")
	}
	deleted, err := u.advertisers.Delete(ctx, id)
	if err != nil {
		return err
	}
	if deleted == nil {
		return domain.NewNotFoundError("advertiser")
	}
	campaigns, err := u.relationship.OnAdvertiserDeleted(ctx, id)
	if err != nil {
		return err
	}
	countries := make([]string, 0)
	for _, campaign := range campaigns {
		if err := u.attachments.PruneCampaign(ctx, campaign.ID); err != nil {
			return err
		}
		countries = append(countries, campaign.CountriesID...)
	}
	if u.cache != nil && len(countries) > 0 {
		_ = u.cache.InvalidateCountries(ctx, countries)
	}
	return nil
}
