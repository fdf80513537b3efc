package usecase

import (
	"context"

	"adcamp/internal/core/domain"
	"adcamp/internal/core/port"
)

// RelationshipService keeps the advertiser→campaigns back-reference in
// step with campaign lifecycle events. Every operation is one extra read
// and one extra write against the store, with no transaction around the
// read-modify-write: concurrent writers on the same advertiser race and
// the last write wins.
type RelationshipService struct {
	advertisers port.AdvertiserRepository
	campaigns   port.CampaignRepository
}

// NewRelationshipService returns a maintainer over the given repositories.
func NewRelationshipService(advertisers port.AdvertiserRepository, campaigns port.CampaignRepository) *RelationshipService {
	return &RelationshipService{advertisers: advertisers, campaigns: campaigns}
}

// OnCampaignCreated appends campaignID to the advertiser's campaigns_id.
// Callers verify the advertiser exists before creating the campaign, so a
// missing advertiser here is surfaced as a not-found condition.
func (s *RelationshipService) OnCampaignCreated(ctx context.Context, advertiserID, campaignID string) error {
	advertiser, err := s.advertisers.FindByID(ctx, advertiserID)
	if err != nil {
		return err
	}
	if advertiser == nil {
		return domain.NewReferenceNotFoundError("advertiser_id")
	}
	advertiser.CampaignsID = append(advertiser.CampaignsID, campaignID)
	_, err = s.advertisers.Update(ctx, advertiserID, advertiser)
	return err
}

// OnCampaignDeleted removes campaignID from the advertiser's campaigns_id.
func (s *RelationshipService) OnCampaignDeleted(ctx context.Context, advertiserID, campaignID string) error {
	advertiser, err := s.advertisers.FindByID(ctx, advertiserID)
	if err != nil {
		return err
	}
	if advertiser == nil {
		return domain.NewReferenceNotFoundError("advertiser_id")
	}
	kept := make([]string, 0, len(advertiser.CampaignsID))
	for _, id := range advertiser.CampaignsID {
		if id != campaignID {
			kept = append(kept, id)
		}
	}
	advertiser.CampaignsID = kept
	_, err = s.advertisers.Update(ctx, advertiserID, advertiser)
	return err
}

// OnAdvertiserDeleted bulk-deletes every campaign referencing the
// advertiser and returns the deleted campaigns. The advertiser document is
// already gone, but each removed campaign still needs its attached
// publishers pruned and its countries' cached auctions dropped, so the
// caller gets the doomed set from the one read before the bulk delete.
func (s *RelationshipService) OnAdvertiserDeleted(ctx context.Context, advertiserID string) ([]domain.Campaign, error) {
	campaigns, err := s.campaigns.FindByFilter(ctx, map[string]string{"advertiser_id": advertiserID})
	if err != nil {
		return nil, err
	}
	if _, err := s.campaigns.DeleteByAdvertiser(ctx, advertiserID); err != nil {
		return nil, err
	}
	return campaigns, nil
}
