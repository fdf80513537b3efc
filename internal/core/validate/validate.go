// Package validate holds the entity validation engine: declarative,
// ordered field rules checked against a decoded JSON payload. It is pure
// and synchronous; referential checks against the store happen elsewhere,
// strictly after shape validation passes.
package validate

import (
	"encoding/json"

	"adcamp/internal/core/domain"
)

// Kind selects the rule set for an entity.
type Kind string

const (
	Advertiser Kind = "advertiser"
	Campaign   Kind = "campaign"
	Publisher  Kind = "publisher"
)

type check func(v any) bool

type field struct {
	name     string
	required bool
	check    check
}

// Rules are evaluated in declaration order. The first failing rule for a
// field is reported; failures accumulate across fields.
var rules = map[Kind][]field{
	Advertiser: {
		{name: "name", required: true, check: nonEmptyString},
	},
	Campaign: {
		{name: "name", required: true, check: nonEmptyString},
		{name: "advertiser_id", required: true, check: idString},
		{name: "campaign_type", required: true, check: campaignType},
		{name: "countries_id", required: true, check: idList},
		{name: "bid", required: true, check: positiveNumber},
	},
	Publisher: {
		{name: "name", required: true, check: nonEmptyString},
		{name: "country_id", required: true, check: idString},
	},
}

// Entity validates payload against the rule set for kind and returns the
// ordered list of error messages: "<field> is required" for an absent or
// null required field, "<field> is invalid" for a present value failing
// its format rule. An empty result means the payload is valid.
func Entity(kind Kind, payload map[string]any) []string {
	var errs []string
	for _, f := range rules[kind] {
		v, ok := payload[f.name]
		if !ok || v == nil || v == "" {
			if f.required {
				errs = append(errs, f.name+" is required")
			}
			continue
		}
		if !f.check(v) {
			errs = append(errs, f.name+" is invalid")
		}
	}
	return errs
}

func nonEmptyString(v any) bool {
	s, ok := v.(string)
	return ok && s != ""
}

func idString(v any) bool {
	s, ok := v.(string)
	return ok && domain.IsID(s)
}

func campaignType(v any) bool {
	s, ok := v.(string)
	return ok && domain.ValidCampaignType(s)
}

// idList requires a non-empty array where every element is a well-formed
// identifier.
func idList(v any) bool {
	list, ok := v.([]any)
	if !ok || len(list) == 0 {
		return false
	}
	for _, el := range list {
		s, ok := el.(string)
		if !ok || !domain.IsID(s) {
			return false
		}
	}
	return true
}

// positiveNumber accepts a JSON number or a numeric string and requires a
// strictly positive decimal value. Bodies are decoded with UseNumber, so
// numbers arrive as json.Number and keep their full precision.
func positiveNumber(v any) bool {
	var s string
	switch n := v.(type) {
	case json.Number:
		s = n.String()
	case string:
		s = n
	case float64:
		b, err := domain.ParseBid(jsonFloat(n))
		return err == nil && b.Positive()
	default:
		return false
	}
	b, err := domain.ParseBid(s)
	return err == nil && b.Positive()
}

func jsonFloat(f float64) string {
	n, _ := json.Marshal(f)
	return string(n)
}
