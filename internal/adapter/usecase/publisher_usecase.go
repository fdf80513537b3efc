package usecase

import (
	"context"

	"adcamp/internal/core/domain"
	"adcamp/internal/core/port"
	"adcamp/internal/core/validate"
)

// PublisherUseCase implements port.PublisherUseCase. campaigns_id is
// server-owned: reset on create, rejected on update, and mutated only by
// the attachment service.
type PublisherUseCase struct {
	publishers  port.PublisherRepository
	countries   port.CountryRepository
	attachments *AttachmentService
	cache       port.AuctionCache
}

// NewPublisherUseCase wires the publisher business logic.
func NewPublisherUseCase(
	publishers port.PublisherRepository,
	countries port.CountryRepository,
	attachments *AttachmentService,
	cache port.AuctionCache,
) *PublisherUseCase {
	return &PublisherUseCase{
		publishers:  publishers,
		countries:   countries,
		attachments: attachments,
		cache:       cache,
	}
}

// Create validates the payload shape and confirms the country exists
// before persisting with an empty campaigns_id.
func (u *PublisherUseCase) Create(ctx context.Context, payload map[string]any) (*domain.Publisher, error) {
	if errs := validate.Entity(validate.Publisher, payload); len(errs) > 0 {
		return nil, domain.NewValidationError(errs)
	}

	countryID := stringField(payload, "country_id")
	country, err := u.countries.FindByID(ctx, countryID)
	if err != nil {
		return nil, err
	}
	if country == nil {
		return nil, domain.NewNotFoundError("country_id")
	}

	publisher := publisherFromPayload(payload)
	return u.publishers.Create(ctx, &publisher)
}

func (u *PublisherUseCase) List(ctx context.Context) ([]domain.Publisher, error) {
	return u.publishers.FindAll(ctx)
}

func (u *PublisherUseCase) Get(ctx context.Context, id string) (*domain.Publisher, error) {
	if !domain.IsID(id) {
		return nil, domain.NewInvalidFieldError("id")
	}
	publisher, err := u.publishers.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if publisher == nil {
		return nil, domain.NewNotFoundError("publisher")
	}
	return publisher, nil
}

func (u *PublisherUseCase) Filter(ctx context.Context, filter map[string]string) ([]domain.Publisher, error) {
	return u.publishers.FindByFilter(ctx, filter)
}

// Update rejects campaigns_id outright, re-checks a changed country_id
// against the country catalogue, then merges and revalidates.
func (u *PublisherUseCase) Update(ctx context.Context, id string, payload map[string]any) (*domain.Publisher, error) {
	if _, ok := payload["campaigns_id"]; ok {
		return nil, domain.NewImmutableFieldError("campaigns_id")
	}
	if !domain.IsID(id) {
		return nil, domain.NewInvalidFieldError("id")
	}

	if countryID := stringField(payload, "country_id"); domain.IsID(countryID) {
		country, err := u.countries.FindByID(ctx, countryID)
		if err != nil {
			return nil, err
		}
		if country == nil {
			return nil, domain.NewNotFoundError("country_id")
		}
	}

	existing, err := u.publishers.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if existing == nil {
		return nil, domain.NewNotFoundError("publisher")
	}

	merged := mergePayload(publisherToPayload(existing), payload)
	if errs := validate.Entity(validate.Publisher, merged); len(errs) > 0 {
		return nil, domain.NewValidationError(errs)
	}

	publisher := publisherFromPayload(merged)
	publisher.CampaignsID = existing.CampaignsID

	updated, err := u.publishers.Update(ctx, id, &publisher)
	if err != nil {
		return nil, err
	}
	if updated == nil {
		return nil, domain.NewNotFoundError("publisher")
	}
	return updated, nil
}

// Delete removes the publisher and strips its entries from every campaign
// that attached it, leaving other attachments intact.
func (u *PublisherUseCase) Delete(ctx context.Context, id string) error {
	if !domain.IsID(id) {
		return domain.NewInvalidFieldError("id")
	}
	deleted, err := u.publishers.Delete(ctx, id)
	if err != nil {
		return err
	}
	if deleted == nil {
		return domain.NewNotFoundError("publisher")
	}
	countries, err := u.attachments.DetachFromAllCampaigns(ctx, id)
	if u.cache != nil && len(countries) > 0 {
		_ = u.cache.InvalidateCountries(ctx, countries)
	}
	return err
}
