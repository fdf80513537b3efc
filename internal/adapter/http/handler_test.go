package httpadapter

import (
	"context"
	"encoding/json"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"adcamp/internal/core/domain"
	"adcamp/internal/core/port"
)

// Stubs implement the inbound ports with overridable functions; the
// embedded interface panics on any method a test forgot to provide, which
// doubles as a routing assertion.

type advertiserStub struct {
	port.AdvertiserUseCase
	createFn func(ctx context.Context, payload map[string]any) (*domain.Advertiser, error)
	deleteFn func(ctx context.Context, id string) error
}

func (s *advertiserStub) Create(ctx context.Context, payload map[string]any) (*domain.Advertiser, error) {
	return s.createFn(ctx, payload)
}

func (s *advertiserStub) Delete(ctx context.Context, id string) error {
	return s.deleteFn(ctx, id)
}

type campaignStub struct {
	port.CampaignUseCase
	createFn       func(ctx context.Context, payload map[string]any) (*domain.Campaign, error)
	updateFn       func(ctx context.Context, id string, payload map[string]any) (*domain.Campaign, error)
	fetchFn        func(ctx context.Context, countryID string) ([]domain.Campaign, error)
	attachFn       func(ctx context.Context, campaignID, publisherID string) (*domain.Campaign, error)
	updateResultFn func(ctx context.Context, campaignID, publisherID string, result float64) (*domain.Campaign, error)
	detachFn       func(ctx context.Context, campaignID, publisherID string) (*domain.Campaign, error)
}

func (s *campaignStub) Create(ctx context.Context, payload map[string]any) (*domain.Campaign, error) {
	return s.createFn(ctx, payload)
}

func (s *campaignStub) Update(ctx context.Context, id string, payload map[string]any) (*domain.Campaign, error) {
	return s.updateFn(ctx, id, payload)
}

func (s *campaignStub) FetchTopBids(ctx context.Context, countryID string) ([]domain.Campaign, error) {
	return s.fetchFn(ctx, countryID)
}

func (s *campaignStub) AttachPublisher(ctx context.Context, campaignID, publisherID string) (*domain.Campaign, error) {
	return s.attachFn(ctx, campaignID, publisherID)
}

func (s *campaignStub) UpdatePublisherResult(ctx context.Context, campaignID, publisherID string, result float64) (*domain.Campaign, error) {
	return s.updateResultFn(ctx, campaignID, publisherID, result)
}

func (s *campaignStub) DetachPublisher(ctx context.Context, campaignID, publisherID string) (*domain.Campaign, error) {
	return s.detachFn(ctx, campaignID, publisherID)
}

type publisherStub struct {
	port.PublisherUseCase
	createFn func(ctx context.Context, payload map[string]any) (*domain.Publisher, error)
}

func (s *publisherStub) Create(ctx context.Context, payload map[string]any) (*domain.Publisher, error) {
	return s.createFn(ctx, payload)
}

type countryStub struct {
	port.CountryUseCase
	listFn func(ctx context.Context) ([]domain.Country, error)
}

func (s *countryStub) List(ctx context.Context) ([]domain.Country, error) {
	return s.listFn(ctx)
}

func newTestHandler(
	advertisers port.AdvertiserUseCase,
	campaigns port.CampaignUseCase,
	publishers port.PublisherUseCase,
	countries port.CountryUseCase,
) http.Handler {
	logger := slog.New(slog.NewTextHandler(io.Discard, nil))
	return NewHandler(advertisers, campaigns, publishers, countries, logger).Router()
}

func doRequest(t *testing.T, h http.Handler, method, path, body string) *httptest.ResponseRecorder {
	t.Helper()
	var reader io.Reader
	if body != "" {
		reader = strings.NewReader(body)
	}
	req := httptest.NewRequest(method, path, reader)
	rr := httptest.NewRecorder()
	h.ServeHTTP(rr, req)
	return rr
}

func mustBid(t *testing.T, s string) domain.Bid {
	t.Helper()
	b, err := domain.ParseBid(s)
	require.NoError(t, err)
	return b
}

const (
	testCampaignID  = "64de37b61fa2dc3a04b7a001"
	testPublisherID = "64de37b61fa2dc3a04b7a002"
	testCountryID   = "64de37b61fa2dc3a04b7a003"
)

func TestAdvertiserStore(t *testing.T) {
	stub := &advertiserStub{
		createFn: func(_ context.Context, payload map[string]any) (*domain.Advertiser, error) {
			assert.Equal(t, "acme", payload["name"])
			return &domain.Advertiser{ID: "64de37b61fa2dc3a04b7a010", Name: "acme", CampaignsID: []string{}}, nil
		},
	}
	h := newTestHandler(stub, nil, nil, nil)

	rr := doRequest(t, h, http.MethodPost, "/advertisers", `{"name":"acme"}`)
	assert.Equal(t, http.StatusCreated, rr.Code)
	assert.JSONEq(t, `{"id":"64de37b61fa2dc3a04b7a010","name":"acme","campaigns_id":[]}`, rr.Body.String())
}

func TestAdvertiserStoreMissingName(t *testing.T) {
	stub := &advertiserStub{
		createFn: func(context.Context, map[string]any) (*domain.Advertiser, error) {
			return nil, domain.NewRequiredFieldError("name")
		},
	}
	h := newTestHandler(stub, nil, nil, nil)

	rr := doRequest(t, h, http.MethodPost, "/advertisers", `{}`)
	assert.Equal(t, http.StatusBadRequest, rr.Code)
	assert.JSONEq(t, `{"error":"name is required"}`, rr.Body.String())
}

func TestAdvertiserDeleteNoContent(t *testing.T) {
	stub := &advertiserStub{
		deleteFn: func(_ context.Context, id string) error {
			assert.Equal(t, testCampaignID, id)
			return nil
		},
	}
	h := newTestHandler(stub, nil, nil, nil)

	rr := doRequest(t, h, http.MethodDelete, "/advertisers/"+testCampaignID, "")
	assert.Equal(t, http.StatusNoContent, rr.Code)
	assert.Empty(t, rr.Body.String())
}

func TestCampaignStoreValidationBatch(t *testing.T) {
	stub := &campaignStub{
		createFn: func(context.Context, map[string]any) (*domain.Campaign, error) {
			return nil, domain.NewValidationError([]string{"name is required", "bid is invalid"})
		},
	}
	h := newTestHandler(nil, stub, nil, nil)

	rr := doRequest(t, h, http.MethodPost, "/campaigns", `{"bid":-1}`)
	assert.Equal(t, http.StatusBadRequest, rr.Code)
	assert.JSONEq(t, `{"errors":["name is required","bid is invalid"]}`, rr.Body.String())
}

func TestCampaignStoreDanglingReference(t *testing.T) {
	stub := &campaignStub{
		createFn: func(context.Context, map[string]any) (*domain.Campaign, error) {
			return nil, domain.NewReferenceNotFoundError("advertiser_id")
		},
	}
	h := newTestHandler(nil, stub, nil, nil)

	rr := doRequest(t, h, http.MethodPost, "/campaigns", `{"name":"x"}`)
	assert.Equal(t, http.StatusNotFound, rr.Code)
	assert.JSONEq(t, `{"message":"advertiser_id not found"}`, rr.Body.String())
}

func TestCampaignStoreKeepsBidPrecision(t *testing.T) {
	stub := &campaignStub{
		createFn: func(_ context.Context, payload map[string]any) (*domain.Campaign, error) {
			// UseNumber keeps the bid textual instead of a float64.
			assert.Equal(t, json.Number("0.10000000000000000001"), payload["bid"])
			return &domain.Campaign{
				ID:           testCampaignID,
				Name:         "x",
				AdvertiserID: "64de37b61fa2dc3a04b7a010",
				CampaignType: domain.CampaignTypeCPC,
				CountriesID:  []string{testCountryID},
				Bid:          mustBid(t, "0.10000000000000000001"),
				Publishers:   []domain.PublisherEntry{},
			}, nil
		},
	}
	h := newTestHandler(nil, stub, nil, nil)

	rr := doRequest(t, h, http.MethodPost, "/campaigns", `{"name":"x","bid":0.10000000000000000001}`)
	assert.Equal(t, http.StatusCreated, rr.Code)
	assert.Contains(t, rr.Body.String(), `"bid":0.10000000000000000001`)
}

func TestCampaignUpdateImmutableField(t *testing.T) {
	stub := &campaignStub{
		updateFn: func(_ context.Context, id string, payload map[string]any) (*domain.Campaign, error) {
			assert.Equal(t, testCampaignID, id)
			return nil, domain.NewImmutableFieldError("advertiser_id")
		},
	}
	h := newTestHandler(nil, stub, nil, nil)

	rr := doRequest(t, h, http.MethodPut, "/campaigns/"+testCampaignID, `{"advertiser_id":"whatever"}`)
	assert.Equal(t, http.StatusBadRequest, rr.Code)
	assert.JSONEq(t, `{"error":"advertiser_id can not be updated"}`, rr.Body.String())
}

func TestCampaignFetch(t *testing.T) {
	stub := &campaignStub{
		fetchFn: func(_ context.Context, countryID string) ([]domain.Campaign, error) {
			assert.Equal(t, testCountryID, countryID)
			return []domain.Campaign{
				{ID: "64de37b61fa2dc3a04b7a020", Bid: mustBid(t, "999"), CountriesID: []string{testCountryID}, Publishers: []domain.PublisherEntry{}},
				{ID: "64de37b61fa2dc3a04b7a021", Bid: mustBid(t, "30"), CountriesID: []string{testCountryID}, Publishers: []domain.PublisherEntry{}},
				{ID: "64de37b61fa2dc3a04b7a022", Bid: mustBid(t, "20"), CountriesID: []string{testCountryID}, Publishers: []domain.PublisherEntry{}},
			}, nil
		},
	}
	h := newTestHandler(nil, stub, nil, nil)

	rr := doRequest(t, h, http.MethodGet, "/campaigns/fetch?country_id="+testCountryID, "")
	assert.Equal(t, http.StatusOK, rr.Code)
	body := rr.Body.String()
	assert.Less(t, strings.Index(body, `"bid":999`), strings.Index(body, `"bid":30`))
	assert.Less(t, strings.Index(body, `"bid":30`), strings.Index(body, `"bid":20`))
}

func TestCampaignAttachPublisher(t *testing.T) {
	stub := &campaignStub{
		attachFn: func(_ context.Context, campaignID, publisherID string) (*domain.Campaign, error) {
			assert.Equal(t, testCampaignID, campaignID)
			assert.Equal(t, testPublisherID, publisherID)
			return &domain.Campaign{
				ID:         testCampaignID,
				Publishers: []domain.PublisherEntry{{PublisherID: testPublisherID, PublisherResult: 0}},
			}, nil
		},
	}
	h := newTestHandler(nil, stub, nil, nil)

	rr := doRequest(t, h, http.MethodPost, "/campaigns/"+testCampaignID+"/publishers",
		`{"publisher_id":"`+testPublisherID+`"}`)
	assert.Equal(t, http.StatusOK, rr.Code)
	assert.Contains(t, rr.Body.String(), `"publisher_id":"`+testPublisherID+`"`)
	assert.Contains(t, rr.Body.String(), `"publisher_result":0`)
}

func TestCampaignUpdatePublisherResult(t *testing.T) {
	stub := &campaignStub{
		updateResultFn: func(_ context.Context, campaignID, publisherID string, result float64) (*domain.Campaign, error) {
			assert.Equal(t, testCampaignID, campaignID)
			assert.Equal(t, testPublisherID, publisherID)
			assert.Equal(t, 12.5, result)
			return &domain.Campaign{
				ID:         testCampaignID,
				Publishers: []domain.PublisherEntry{{PublisherID: testPublisherID, PublisherResult: 12.5}},
			}, nil
		},
	}
	h := newTestHandler(nil, stub, nil, nil)

	rr := doRequest(t, h, http.MethodPut,
		"/campaigns/"+testCampaignID+"/publishers/"+testPublisherID,
		`{"publisher_result":12.5}`)
	assert.Equal(t, http.StatusOK, rr.Code)
}

func TestCampaignUpdatePublisherResultRejectsNonNumber(t *testing.T) {
	h := newTestHandler(nil, &campaignStub{}, nil, nil)

	rr := doRequest(t, h, http.MethodPut,
		"/campaigns/"+testCampaignID+"/publishers/"+testPublisherID,
		`{"publisher_result":"a lot"}`)
	assert.Equal(t, http.StatusBadRequest, rr.Code)
	assert.JSONEq(t, `{"error":"publisher_result is invalid"}`, rr.Body.String())
}

func TestCampaignDetachPublisherInvalidID(t *testing.T) {
	stub := &campaignStub{
		detachFn: func(_ context.Context, _, publisherID string) (*domain.Campaign, error) {
			assert.Equal(t, "oops", publisherID)
			return nil, domain.NewInvalidFieldError("publisher_id")
		},
	}
	h := newTestHandler(nil, stub, nil, nil)

	rr := doRequest(t, h, http.MethodDelete, "/campaigns/"+testCampaignID+"/publishers/oops", "")
	assert.Equal(t, http.StatusBadRequest, rr.Code)
	assert.JSONEq(t, `{"error":"publisher_id is invalid"}`, rr.Body.String())
}

func TestPublisherStoreUnknownCountry(t *testing.T) {
	stub := &publisherStub{
		createFn: func(context.Context, map[string]any) (*domain.Publisher, error) {
			return nil, domain.NewNotFoundError("country_id")
		},
	}
	h := newTestHandler(nil, nil, stub, nil)

	rr := doRequest(t, h, http.MethodPost, "/publishers", `{"name":"blog","country_id":"`+testCountryID+`"}`)
	assert.Equal(t, http.StatusNotFound, rr.Code)
	assert.JSONEq(t, `{"error":"country_id not found"}`, rr.Body.String())
}

func TestCountryIndex(t *testing.T) {
	stub := &countryStub{
		listFn: func(context.Context) ([]domain.Country, error) {
			return []domain.Country{{ID: testCountryID, Name: "Chile"}}, nil
		},
	}
	h := newTestHandler(nil, nil, nil, stub)

	rr := doRequest(t, h, http.MethodGet, "/countries", "")
	assert.Equal(t, http.StatusOK, rr.Code)
	assert.JSONEq(t, `[{"id":"`+testCountryID+`","name":"Chile"}]`, rr.Body.String())
}

func TestInvalidJSONBody(t *testing.T) {
	h := newTestHandler(&advertiserStub{}, nil, nil, nil)

	rr := doRequest(t, h, http.MethodPost, "/advertisers", `{"name":`)
	assert.Equal(t, http.StatusBadRequest, rr.Code)
	assert.JSONEq(t, `{"error":"invalid JSON"}`, rr.Body.String())
}

func TestInternalErrorsAreOpaque(t *testing.T) {
	stub := &countryStub{
		listFn: func(context.Context) ([]domain.Country, error) {
			return nil, io.ErrUnexpectedEOF
		},
	}
	h := newTestHandler(nil, nil, nil, stub)

	rr := doRequest(t, h, http.MethodGet, "/countries", "")
	assert.Equal(t, http.StatusInternalServerError, rr.Code)
	assert.JSONEq(t, `{"error":"internal error"}`, rr.Body.String())
}

func TestRequestIDHeader(t *testing.T) {
	stub := &countryStub{
		listFn: func(context.Context) ([]domain.Country, error) { return []domain.Country{}, nil },
	}
	h := newTestHandler(nil, nil, nil, stub)

	rr := doRequest(t, h, http.MethodGet, "/countries", "")
	assert.NotEmpty(t, rr.Header().Get("X-Request-Id"))
}

func TestCORSPreflight(t *testing.T) {
	h := newTestHandler(nil, nil, nil, &countryStub{})

	rr := doRequest(t, h, http.MethodOptions, "/countries", "")
	assert.Equal(t, http.StatusNoContent, rr.Code)
	assert.Equal(t, "*", rr.Header().Get("Access-Control-Allow-Origin"))
}
