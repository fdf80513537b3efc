package usecase

import (
	"context"
	"fmt"
	"sync"

	"adcamp/internal/core/domain"
)

// In-memory repository fakes. They keep entities in insertion order so
// the auction's stable tie-break can be asserted, and return shallow
// copies the way the store adapters decode fresh documents.

var idSeq struct {
	sync.Mutex
	n int
}

func nextID() string {
	idSeq.Lock()
	defer idSeq.Unlock()
	idSeq.n++
	return fmt.Sprintf("%024x", idSeq.n)
}

type fakeAdvertiserRepo struct {
	items []domain.Advertiser
}

func (r *fakeAdvertiserRepo) Create(_ context.Context, a *domain.Advertiser) (*domain.Advertiser, error) {
	created := *a
	if created.ID == "" {
		created.ID = nextID()
	}
	r.items = append(r.items, created)
	out := created
	return &out, nil
}

func (r *fakeAdvertiserRepo) FindAll(context.Context) ([]domain.Advertiser, error) {
	return append([]domain.Advertiser{}, r.items...), nil
}

func (r *fakeAdvertiserRepo) FindByID(_ context.Context, id string) (*domain.Advertiser, error) {
	for _, a := range r.items {
		if a.ID == id {
			out := a
			return &out, nil
		}
	}
	return nil, nil
}

func (r *fakeAdvertiserRepo) FindByFilter(_ context.Context, filter map[string]string) ([]domain.Advertiser, error) {
	out := []domain.Advertiser{}
	for _, a := range r.items {
		if name, ok := filter["name"]; ok && a.Name != name {
			continue
		}
		out = append(out, a)
	}
	return out, nil
}

func (r *fakeAdvertiserRepo) Update(_ context.Context, id string, a *domain.Advertiser) (*domain.Advertiser, error) {
	for i := range r.items {
		if r.items[i].ID == id {
			updated := *a
			updated.ID = id
			r.items[i] = updated
			out := updated
			return &out, nil
		}
	}
	return nil, nil
}

func (r *fakeAdvertiserRepo) Delete(_ context.Context, id string) (*domain.Advertiser, error) {
	for i := range r.items {
		if r.items[i].ID == id {
			out := r.items[i]
			r.items = append(r.items[:i], r.items[i+1:]...)
			return &out, nil
		}
	}
	return nil, nil
}

type fakeCampaignRepo struct {
	items []domain.Campaign
}

func (r *fakeCampaignRepo) Create(_ context.Context, c *domain.Campaign) (*domain.Campaign, error) {
	created := *c
	if created.ID == "" {
		created.ID = nextID()
	}
	r.items = append(r.items, created)
	out := created
	return &out, nil
}

func (r *fakeCampaignRepo) FindAll(context.Context) ([]domain.Campaign, error) {
	return append([]domain.Campaign{}, r.items...), nil
}

func (r *fakeCampaignRepo) FindByID(_ context.Context, id string) (*domain.Campaign, error) {
	for _, c := range r.items {
		if c.ID == id {
			out := c
			return &out, nil
		}
	}
	return nil, nil
}

func (r *fakeCampaignRepo) FindByFilter(_ context.Context, filter map[string]string) ([]domain.Campaign, error) {
	out := []domain.Campaign{}
	for _, c := range r.items {
		if name, ok := filter["name"]; ok && c.Name != name {
			continue
		}
		if advertiserID, ok := filter["advertiser_id"]; ok && c.AdvertiserID != advertiserID {
			continue
		}
		out = append(out, c)
	}
	return out, nil
}

func (r *fakeCampaignRepo) FindByCountry(_ context.Context, countryID string) ([]domain.Campaign, error) {
	out := []domain.Campaign{}
	for _, c := range r.items {
		for _, id := range c.CountriesID {
			if id == countryID {
				out = append(out, c)
				break
			}
		}
	}
	return out, nil
}

func (r *fakeCampaignRepo) FindByPublisher(_ context.Context, publisherID string) ([]domain.Campaign, error) {
	out := []domain.Campaign{}
	for _, c := range r.items {
		for _, e := range c.Publishers {
			if e.PublisherID == publisherID {
				out = append(out, c)
				break
			}
		}
	}
	return out, nil
}

func (r *fakeCampaignRepo) Update(_ context.Context, id string, c *domain.Campaign) (*domain.Campaign, error) {
	for i := range r.items {
		if r.items[i].ID == id {
			updated := *c
			updated.ID = id
			r.items[i] = updated
			out := updated
			return &out, nil
		}
	}
	return nil, nil
}

func (r *fakeCampaignRepo) Delete(_ context.Context, id string) (*domain.Campaign, error) {
	for i := range r.items {
		if r.items[i].ID == id {
			out := r.items[i]
			r.items = append(r.items[:i], r.items[i+1:]...)
			return &out, nil
		}
	}
	return nil, nil
}

func (r *fakeCampaignRepo) DeleteByAdvertiser(_ context.Context, advertiserID string) (int64, error) {
	kept := r.items[:0]
	var deleted int64
	for _, c := range r.items {
		if c.AdvertiserID == advertiserID {
			deleted++
			continue
		}
		kept = append(kept, c)
	}
	r.items = kept
	return deleted, nil
}

type fakePublisherRepo struct {
	items []domain.Publisher
}

func (r *fakePublisherRepo) Create(_ context.Context, p *domain.Publisher) (*domain.Publisher, error) {
	created := *p
	if created.ID == "" {
		created.ID = nextID()
	}
	r.items = append(r.items, created)
	out := created
	return &out, nil
}

func (r *fakePublisherRepo) FindAll(context.Context) ([]domain.Publisher, error) {
	return append([]domain.Publisher{}, r.items...), nil
}

func (r *fakePublisherRepo) FindByID(_ context.Context, id string) (*domain.Publisher, error) {
	for _, p := range r.items {
		if p.ID == id {
			out := p
			return &out, nil
		}
	}
	return nil, nil
}

func (r *fakePublisherRepo) FindByFilter(_ context.Context, filter map[string]string) ([]domain.Publisher, error) {
	out := []domain.Publisher{}
	for _, p := range r.items {
		if name, ok := filter["name"]; ok && p.Name != name {
			continue
		}
		if countryID, ok := filter["country_id"]; ok && p.CountryID != countryID {
			continue
		}
		out = append(out, p)
	}
	return out, nil
}

func (r *fakePublisherRepo) FindByCampaign(_ context.Context, campaignID string) ([]domain.Publisher, error) {
	out := []domain.Publisher{}
	for _, p := range r.items {
		for _, id := range p.CampaignsID {
			if id == campaignID {
				out = append(out, p)
				break
			}
		}
	}
	return out, nil
}

func (r *fakePublisherRepo) Update(_ context.Context, id string, p *domain.Publisher) (*domain.Publisher, error) {
	for i := range r.items {
		if r.items[i].ID == id {
			updated := *p
			updated.ID = id
			r.items[i] = updated
			out := updated
			return &out, nil
		}
	}
	return nil, nil
}

func (r *fakePublisherRepo) Delete(_ context.Context, id string) (*domain.Publisher, error) {
	for i := range r.items {
		if r.items[i].ID == id {
			out := r.items[i]
			r.items = append(r.items[:i], r.items[i+1:]...)
			return &out, nil
		}
	}
	return nil, nil
}

type fakeCountryRepo struct {
	items []domain.Country
}

func (r *fakeCountryRepo) FindAll(context.Context) ([]domain.Country, error) {
	return append([]domain.Country{}, r.items...), nil
}

func (r *fakeCountryRepo) FindByID(_ context.Context, id string) (*domain.Country, error) {
	for _, c := range r.items {
		if c.ID == id {
			out := c
			return &out, nil
		}
	}
	return nil, nil
}

// fakeAuctionCache records cache traffic so tests can assert hits and
// invalidations.
type fakeAuctionCache struct {
	entries     map[string][]domain.Campaign
	sets        int
	hits        int
	invalidated []string
}

func newFakeAuctionCache() *fakeAuctionCache {
	return &fakeAuctionCache{entries: map[string][]domain.Campaign{}}
}

func (c *fakeAuctionCache) GetTopBids(_ context.Context, countryID string) ([]domain.Campaign, bool, error) {
	cached, ok := c.entries[countryID]
	if ok {
		c.hits++
	}
	return cached, ok, nil
}

func (c *fakeAuctionCache) SetTopBids(_ context.Context, countryID string, campaigns []domain.Campaign) error {
	c.entries[countryID] = campaigns
	c.sets++
	return nil
}

func (c *fakeAuctionCache) InvalidateCountries(_ context.Context, countryIDs []string) error {
	for _, id := range countryIDs {
		delete(c.entries, id)
		c.invalidated = append(c.invalidated, id)
	}
	return nil
}
