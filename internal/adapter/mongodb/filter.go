package mongodb

import (
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
)

// Filter translation for the /filter endpoints. Only known fields are
// honoured; unknown query parameters are ignored. A malformed identifier
// or bid makes the whole filter unsatisfiable (the caller answers with an
// empty list, not an error), matching how stray ids behave in queries.

func advertiserFilter(params map[string]string) (bson.M, bool) {
	filter := bson.M{}
	for key, value := range params {
		switch key {
		case "name":
			filter[key] = value
		case "campaigns_id":
			oid, err := primitive.ObjectIDFromHex(value)
			if err != nil {
				return nil, false
			}
			filter[key] = oid
		}
	}
	return filter, true
}

func campaignFilter(params map[string]string) (bson.M, bool) {
	filter := bson.M{}
	for key, value := range params {
		switch key {
		case "name", "campaign_type":
			filter[key] = value
		case "advertiser_id", "countries_id":
			oid, err := primitive.ObjectIDFromHex(value)
			if err != nil {
				return nil, false
			}
			filter[key] = oid
		case "bid":
			dec, err := primitive.ParseDecimal128(value)
			if err != nil {
				return nil, false
			}
			filter[key] = dec
		}
	}
	return filter, true
}

func publisherFilter(params map[string]string) (bson.M, bool) {
	filter := bson.M{}
	for key, value := range params {
		switch key {
		case "name":
			filter[key] = value
		case "country_id", "campaigns_id":
			oid, err := primitive.ObjectIDFromHex(value)
			if err != nil {
				return nil, false
			}
			filter[key] = oid
		}
	}
	return filter, true
}
