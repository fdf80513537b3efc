package usecase

import (
	"encoding/json"

	"adcamp/internal/core/domain"
)

// Payloads are decoded JSON bodies (UseNumber, so numbers arrive as
// json.Number). Update paths merge the stored entity back into payload
// form and overlay the request body, so every field passes the same
// validation rules the create path uses.

func stringField(payload map[string]any, key string) string {
	s, _ := payload[key].(string)
	return s
}

func stringList(payload map[string]any, key string) []string {
	list, _ := payload[key].([]any)
	out := make([]string, 0, len(list))
	for _, el := range list {
		if s, ok := el.(string); ok {
			out = append(out, s)
		}
	}
	return out
}

func bidField(payload map[string]any, key string) domain.Bid {
	var raw string
	switch v := payload[key].(type) {
	case json.Number:
		raw = v.String()
	case string:
		raw = v
	case float64:
		n, _ := json.Marshal(v)
		raw = string(n)
	default:
		return domain.Bid{}
	}
	bid, _ := domain.ParseBid(raw)
	return bid
}

func anyList(values []string) []any {
	out := make([]any, 0, len(values))
	for _, v := range values {
		out = append(out, v)
	}
	return out
}

func campaignFromPayload(payload map[string]any) domain.Campaign {
	return domain.Campaign{
		Name:         stringField(payload, "name"),
		AdvertiserID: stringField(payload, "advertiser_id"),
		CampaignType: stringField(payload, "campaign_type"),
		CountriesID:  stringList(payload, "countries_id"),
		Bid:          bidField(payload, "bid"),
		Publishers:   []domain.PublisherEntry{},
	}
}

func campaignToPayload(c *domain.Campaign) map[string]any {
	return map[string]any{
		"name":          c.Name,
		"advertiser_id": c.AdvertiserID,
		"campaign_type": c.CampaignType,
		"countries_id":  anyList(c.CountriesID),
		"bid":           json.Number(c.Bid.String()),
	}
}

func publisherFromPayload(payload map[string]any) domain.Publisher {
	return domain.Publisher{
		Name:        stringField(payload, "name"),
		CountryID:   stringField(payload, "country_id"),
		CampaignsID: []string{},
	}
}

func publisherToPayload(p *domain.Publisher) map[string]any {
	return map[string]any{
		"name":       p.Name,
		"country_id": p.CountryID,
	}
}

func mergePayload(base, overlay map[string]any) map[string]any {
	merged := make(map[string]any, len(base)+len(overlay))
	for k, v := range base {
		merged[k] = v
	}
	for k, v := range overlay {
		merged[k] = v
	}
	return merged
}
