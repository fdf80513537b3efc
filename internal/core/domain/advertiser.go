package domain

// Advertiser owns campaigns. CampaignsID is server-owned: it is reset on
// create and mutated only by the relationship maintainer when campaigns
// are created or deleted.
type Advertiser struct {
	ID          string   `json:"id"`
	Name        string   `json:"name"`
	CampaignsID []string `json:"campaigns_id"`
}

// Publisher serves campaigns for a country. CampaignsID is server-owned:
// reset on create, immutable through direct update, and mutated only by
// the publisher-attachment transitions.
type Publisher struct {
	ID          string   `json:"id"`
	Name        string   `json:"name"`
	CountryID   string   `json:"country_id"`
	CampaignsID []string `json:"campaigns_id"`
}

// Country is read-only reference data; only listing is exposed.
type Country struct {
	ID   string `json:"id"`
	Name string `json:"name"`
}
