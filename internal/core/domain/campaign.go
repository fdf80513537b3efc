package domain

// Campaign type enumerates the allowed billing models.
const (
	CampaignTypeCPM = "CPM"
	CampaignTypeCPC = "CPC"
	CampaignTypeCPI = "CPI"
)

// CampaignTypes lists the valid campaign_type values in declaration order.
var CampaignTypes = []string{CampaignTypeCPM, CampaignTypeCPC, CampaignTypeCPI}

// ValidCampaignType reports whether t is one of the allowed campaign types.
func ValidCampaignType(t string) bool {
	for _, v := range CampaignTypes {
		if t == v {
			return true
		}
	}
	return false
}

// PublisherEntry is one publisher's membership in a campaign's publishers
// list together with its performance result. It is one side of the
// attachment relation; the mirror side lives in Publisher.CampaignsID.
type PublisherEntry struct {
	PublisherID     string  `json:"publisher_id"`
	PublisherResult float64 `json:"publisher_result"`
}

// Campaign represents an advertising campaign. AdvertiserID and Publishers
// are immutable through the update path; Publishers is server-owned and
// always starts empty regardless of client input.
type Campaign struct {
	ID           string           `json:"id"`
	Name         string           `json:"name"`
	AdvertiserID string           `json:"advertiser_id"`
	CampaignType string           `json:"campaign_type"`
	CountriesID  []string         `json:"countries_id"`
	Bid          Bid              `json:"bid"`
	Publishers   []PublisherEntry `json:"publishers"`
}
