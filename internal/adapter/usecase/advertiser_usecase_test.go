package usecase

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"adcamp/internal/core/domain"
)

func TestAdvertiserCreate(t *testing.T) {
	f := newFixture()

	created, err := f.advertiserUC.Create(context.Background(), map[string]any{"name": "acme"})
	require.NoError(t, err)
	assert.NotEmpty(t, created.ID)
	assert.Equal(t, "acme", created.Name)
	assert.NotNil(t, created.CampaignsID)
	assert.Empty(t, created.CampaignsID)
}

func TestAdvertiserCreateRequiresName(t *testing.T) {
	f := newFixture()

	for _, payload := range []map[string]any{
		{},
		{"name": ""},
		{"name": 42},
	} {
		_, err := f.advertiserUC.Create(context.Background(), payload)
		domainErr := asDomainError(t, err)
		assert.Equal(t, domain.KindBadRequest, domainErr.Kind)
		assert.Equal(t, "name is required", domainErr.Message())
	}
}

func TestAdvertiserUpdate(t *testing.T) {
	f := newFixture()
	ctx := context.Background()
	advertiser := f.seedAdvertiser(t, "acme")
	advertiser.CampaignsID = []string{nextID()}
	_, err := f.advertisers.Update(ctx, advertiser.ID, advertiser)
	require.NoError(t, err)

	updated, err := f.advertiserUC.Update(ctx, advertiser.ID, map[string]any{"name": "globex"})
	require.NoError(t, err)
	assert.Equal(t, "globex", updated.Name)
	assert.Equal(t, advertiser.CampaignsID, updated.CampaignsID, "campaigns_id must be carried over")

	_, err = f.advertiserUC.Update(ctx, advertiser.ID, map[string]any{})
	assert.Equal(t, "name is required", asDomainError(t, err).Message())

	_, err = f.advertiserUC.Update(ctx, nextID(), map[string]any{"name": "x"})
	assert.Equal(t, "advertiser not found", asDomainError(t, err).Message())
}

func TestAdvertiserDeleteCascadesCampaigns(t *testing.T) {
	f := newFixture()
	ctx := context.Background()
	advertiser := f.seedAdvertiser(t, "acme")
	other := f.seedAdvertiser(t, "globex")
	country := f.seedCountry("Chile")

	_, err := f.campaignUC.Create(ctx, campaignPayload(advertiser.ID, "1", country.ID))
	require.NoError(t, err)
	_, err = f.campaignUC.Create(ctx, campaignPayload(advertiser.ID, "2", country.ID))
	require.NoError(t, err)
	kept, err := f.campaignUC.Create(ctx, campaignPayload(other.ID, "3", country.ID))
	require.NoError(t, err)

	require.NoError(t, f.advertiserUC.Delete(ctx, advertiser.ID))

	remaining, err := f.campaigns.FindAll(ctx)
	require.NoError(t, err)
	require.Len(t, remaining, 1)
	assert.Equal(t, kept.ID, remaining[0].ID)
}

func TestAdvertiserDeleteInvalidatesAuctionCache(t *testing.T) {
	f := newFixture()
	ctx := context.Background()
	advertiser := f.seedAdvertiser(t, "acme")
	country := f.seedCountry("Chile")
	_, err := f.campaignUC.Create(ctx, campaignPayload(advertiser.ID, "9", country.ID))
	require.NoError(t, err)

	// Prime the cache, then cascade-delete the campaign via its advertiser.
	top, err := f.campaignUC.FetchTopBids(ctx, country.ID)
	require.NoError(t, err)
	require.Len(t, top, 1)

	f.cache.invalidated = nil
	require.NoError(t, f.advertiserUC.Delete(ctx, advertiser.ID))
	assert.Contains(t, f.cache.invalidated, country.ID)

	top, err = f.campaignUC.FetchTopBids(ctx, country.ID)
	require.NoError(t, err)
	assert.Empty(t, top, "the cascade must not leave deleted campaigns in the auction")
}

func TestAdvertiserDeletePrunesPublisherBackrefs(t *testing.T) {
	f := newFixture()
	ctx := context.Background()
	advertiser := f.seedAdvertiser(t, "acme")
	other := f.seedAdvertiser(t, "globex")
	country := f.seedCountry("Chile")
	publisher := f.seedPublisher(t, "blog", country.ID)

	doomed, err := f.campaignUC.Create(ctx, campaignPayload(advertiser.ID, "1", country.ID))
	require.NoError(t, err)
	kept, err := f.campaignUC.Create(ctx, campaignPayload(other.ID, "2", country.ID))
	require.NoError(t, err)
	for _, campaignID := range []string{doomed.ID, kept.ID} {
		_, err = f.campaignUC.AttachPublisher(ctx, campaignID, publisher.ID)
		require.NoError(t, err)
	}

	require.NoError(t, f.advertiserUC.Delete(ctx, advertiser.ID))

	stored, err := f.publishers.FindByID(ctx, publisher.ID)
	require.NoError(t, err)
	assert.Equal(t, []string{kept.ID}, stored.CampaignsID, "cascade-deleted campaigns must be pruned, surviving ones kept")
}

func TestAdvertiserGet(t *testing.T) {
	f := newFixture()
	ctx := context.Background()
	advertiser := f.seedAdvertiser(t, "acme")

	got, err := f.advertiserUC.Get(ctx, advertiser.ID)
	require.NoError(t, err)
	assert.Equal(t, advertiser.ID, got.ID)

	_, err = f.advertiserUC.Get(ctx, "short")
	assert.Equal(t, "id is invalid", asDomainError(t, err).Message())

	_, err = f.advertiserUC.Get(ctx, nextID())
	assert.Equal(t, "advertiser not found", asDomainError(t, err).Message())
}
