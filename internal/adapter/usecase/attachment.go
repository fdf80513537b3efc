package usecase

import (
	"context"

	"adcamp/internal/core/domain"
	"adcamp/internal/core/port"
)

// AttachmentService drives the campaign⇄publisher attachment transitions.
// A (campaign, publisher) pair is either detached (no entry on either
// side) or attached (an entry with a result score in campaign.publishers
// and the campaign id in publisher.campaigns_id); both sides are written
// on every transition so the two views stay consistent.
//
// Re-attaching an already attached publisher appends a second entry
// instead of failing; that matches the reference behavior and is flagged
// as a product decision, not fixed here.
type AttachmentService struct {
	campaigns  port.CampaignRepository
	publishers port.PublisherRepository
}

// NewAttachmentService returns an attachment service over the given
// repositories.
func NewAttachmentService(campaigns port.CampaignRepository, publishers port.PublisherRepository) *AttachmentService {
	return &AttachmentService{campaigns: campaigns, publishers: publishers}
}

// lookup runs the shared transition guards: both ids must be well-formed,
// the campaign must exist, then the publisher must exist.
func (s *AttachmentService) lookup(ctx context.Context, campaignID, publisherID string) (*domain.Campaign, *domain.Publisher, error) {
	if !domain.IsID(campaignID) {
		return nil, nil, domain.NewInvalidFieldError("campaign_id")
	}
	if !domain.IsID(publisherID) {
		return nil, nil, domain.NewInvalidFieldError("publisher_id")
	}
	campaign, err := s.campaigns.FindByID(ctx, campaignID)
	if err != nil {
		return nil, nil, err
	}
	if campaign == nil {
		return nil, nil, domain.NewNotFoundError("campaign")
	}
	publisher, err := s.publishers.FindByID(ctx, publisherID)
	if err != nil {
		return nil, nil, err
	}
	if publisher == nil {
		return nil, nil, domain.NewNotFoundError("publisher")
	}
	return campaign, publisher, nil
}

// Attach appends the publisher to the campaign's publishers list with a
// zero result and mirrors the campaign id into publisher.campaigns_id.
func (s *AttachmentService) Attach(ctx context.Context, campaignID, publisherID string) (*domain.Campaign, error) {
	campaign, publisher, err := s.lookup(ctx, campaignID, publisherID)
	if err != nil {
		return nil, err
	}

	campaign.Publishers = append(campaign.Publishers, domain.PublisherEntry{
		PublisherID:     publisherID,
		PublisherResult: 0,
	})
	updated, err := s.campaigns.Update(ctx, campaignID, campaign)
	if err != nil {
		return nil, err
	}

	publisher.CampaignsID = append(publisher.CampaignsID, campaignID)
	if _, err := s.publishers.Update(ctx, publisherID, publisher); err != nil {
		return nil, err
	}
	return updated, nil
}

// UpdateResult rewrites publisher_result for every entry matching the
// publisher (a map over the full list, not a single-entry lookup). The
// publisher document is untouched.
func (s *AttachmentService) UpdateResult(ctx context.Context, campaignID, publisherID string, result float64) (*domain.Campaign, error) {
	campaign, _, err := s.lookup(ctx, campaignID, publisherID)
	if err != nil {
		return nil, err
	}

	for i := range campaign.Publishers {
		if campaign.Publishers[i].PublisherID == publisherID {
			campaign.Publishers[i].PublisherResult = result
		}
	}
	return s.campaigns.Update(ctx, campaignID, campaign)
}

// Detach removes every matching entry from the campaign's publishers list
// and the campaign id from the publisher's campaigns_id.
func (s *AttachmentService) Detach(ctx context.Context, campaignID, publisherID string) (*domain.Campaign, error) {
	campaign, publisher, err := s.lookup(ctx, campaignID, publisherID)
	if err != nil {
		return nil, err
	}

	campaign.Publishers = withoutPublisher(campaign.Publishers, publisherID)
	updated, err := s.campaigns.Update(ctx, campaignID, campaign)
	if err != nil {
		return nil, err
	}

	kept := make([]string, 0, len(publisher.CampaignsID))
	for _, id := range publisher.CampaignsID {
		if id != campaignID {
			kept = append(kept, id)
		}
	}
	publisher.CampaignsID = kept
	if _, err := s.publishers.Update(ctx, publisherID, publisher); err != nil {
		return nil, err
	}
	return updated, nil
}

// DetachFromAllCampaigns strips the publisher's entries from every
// campaign that attached it. It is driven from the publisher side after a
// delete, so the publisher's own document is not touched. The countries of
// the campaigns that changed are returned for cache invalidation.
func (s *AttachmentService) DetachFromAllCampaigns(ctx context.Context, publisherID string) ([]string, error) {
	campaigns, err := s.campaigns.FindByPublisher(ctx, publisherID)
	if err != nil {
		return nil, err
	}
	countries := make([]string, 0)
	for i := range campaigns {
		campaign := campaigns[i]
		campaign.Publishers = withoutPublisher(campaign.Publishers, publisherID)
		if _, err := s.campaigns.Update(ctx, campaign.ID, &campaign); err != nil {
			return countries, err
		}
		countries = append(countries, campaign.CountriesID...)
	}
	return countries, nil
}

// PruneCampaign removes a deleted campaign's id from every publisher that
// was attached to it, keeping publisher.campaigns_id a faithful view of
// the attachment relation.
func (s *AttachmentService) PruneCampaign(ctx context.Context, campaignID string) error {
	publishers, err := s.publishers.FindByCampaign(ctx, campaignID)
	if err != nil {
		return err
	}
	for i := range publishers {
		publisher := publishers[i]
		kept := make([]string, 0, len(publisher.CampaignsID))
		for _, id := range publisher.CampaignsID {
			if id != campaignID {
				kept = append(kept, id)
			}
		}
		publisher.CampaignsID = kept
		if _, err := s.publishers.Update(ctx, publisher.ID, &publisher); err != nil {
			return err
		}
	}
	return nil
}

func withoutPublisher(entries []domain.PublisherEntry, publisherID string) []domain.PublisherEntry {
	kept := make([]domain.PublisherEntry, 0, len(entries))
	for _, e := range entries {
		if e.PublisherID != publisherID {
			kept = append(kept, e)
		}
	}
	return kept
}
