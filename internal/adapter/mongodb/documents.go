// Package mongodb implements the entity-store ports on a MongoDB
// database. Documents carry ObjectID identifiers and Decimal128 bids;
// conversion to and from the domain types happens at this boundary only.
package mongodb

import (
	"fmt"

	"go.mongodb.org/mongo-driver/bson/primitive"

	"adcamp/internal/core/domain"
)

type advertiserDoc struct {
	ID          primitive.ObjectID   `bson:"_id,omitempty"`
	Name        string               `bson:"name"`
	CampaignsID []primitive.ObjectID `bson:"campaigns_id"`
}

type publisherEntryDoc struct {
	PublisherID     primitive.ObjectID `bson:"publisher_id"`
	PublisherResult float64            `bson:"publisher_result"`
}

type campaignDoc struct {
	ID           primitive.ObjectID   `bson:"_id,omitempty"`
	Name         string               `bson:"name"`
	AdvertiserID primitive.ObjectID   `bson:"advertiser_id"`
	CampaignType string               `bson:"campaign_type"`
	CountriesID  []primitive.ObjectID `bson:"countries_id"`
	Bid          primitive.Decimal128 `bson:"bid"`
	Publishers   []publisherEntryDoc  `bson:"publishers"`
}

type publisherDoc struct {
	ID          primitive.ObjectID   `bson:"_id,omitempty"`
	Name        string               `bson:"name"`
	CountryID   primitive.ObjectID   `bson:"country_id"`
	CampaignsID []primitive.ObjectID `bson:"campaigns_id"`
}

type countryDoc struct {
	ID   primitive.ObjectID `bson:"_id,omitempty"`
	Name string             `bson:"name"`
}

func oidFromHex(s string) (primitive.ObjectID, error) {
	oid, err := primitive.ObjectIDFromHex(s)
	if err != nil {
		return primitive.NilObjectID, fmt.Errorf("object id %q: %w", s, err)
	}
	return oid, nil
}

func oidsFromHex(ids []string) ([]primitive.ObjectID, error) {
	out := make([]primitive.ObjectID, 0, len(ids))
	for _, id := range ids {
		oid, err := oidFromHex(id)
		if err != nil {
			return nil, err
		}
		out = append(out, oid)
	}
	return out, nil
}

func hexIDs(oids []primitive.ObjectID) []string {
	out := make([]string, 0, len(oids))
	for _, oid := range oids {
		out = append(out, oid.Hex())
	}
	return out
}

func advertiserToDoc(a *domain.Advertiser) (*advertiserDoc, error) {
	doc := advertiserDoc{Name: a.Name}
	var err error
	if a.ID != "" {
		if doc.ID, err = oidFromHex(a.ID); err != nil {
			return nil, err
		}
	}
	if doc.CampaignsID, err = oidsFromHex(a.CampaignsID); err != nil {
		return nil, err
	}
	return &doc, nil
}

func advertiserFromDoc(doc *advertiserDoc) domain.Advertiser {
	return domain.Advertiser{
		ID:          doc.ID.Hex(),
		Name:        doc.Name,
		CampaignsID: hexIDs(doc.CampaignsID),
	}
}

func campaignToDoc(c *domain.Campaign) (*campaignDoc, error) {
	doc := campaignDoc{Name: c.Name, CampaignType: c.CampaignType}
	var err error
	if c.ID != "" {
		if doc.ID, err = oidFromHex(c.ID); err != nil {
			return nil, err
		}
	}
	if doc.AdvertiserID, err = oidFromHex(c.AdvertiserID); err != nil {
		return nil, err
	}
	if doc.CountriesID, err = oidsFromHex(c.CountriesID); err != nil {
		return nil, err
	}
	if doc.Bid, err = primitive.ParseDecimal128(c.Bid.String()); err != nil {
		return nil, fmt.Errorf("bid %s: %w", c.Bid, err)
	}
	doc.Publishers = make([]publisherEntryDoc, 0, len(c.Publishers))
	for _, p := range c.Publishers {
		oid, err := oidFromHex(p.PublisherID)
		if err != nil {
			return nil, err
		}
		doc.Publishers = append(doc.Publishers, publisherEntryDoc{
			PublisherID:     oid,
			PublisherResult: p.PublisherResult,
		})
	}
	return &doc, nil
}

func campaignFromDoc(doc *campaignDoc) (domain.Campaign, error) {
	bid, err := domain.ParseBid(doc.Bid.String())
	if err != nil {
		return domain.Campaign{}, err
	}
	publishers := make([]domain.PublisherEntry, 0, len(doc.Publishers))
	for _, p := range doc.Publishers {
		publishers = append(publishers, domain.PublisherEntry{
			PublisherID:     p.PublisherID.Hex(),
			PublisherResult: p.PublisherResult,
		})
	}
	return domain.Campaign{
		ID:           doc.ID.Hex(),
		Name:         doc.Name,
		AdvertiserID: doc.AdvertiserID.Hex(),
		CampaignType: doc.CampaignType,
		CountriesID:  hexIDs(doc.CountriesID),
		Bid:          bid,
		Publishers:   publishers,
	}, nil
}

func publisherToDoc(p *domain.Publisher) (*publisherDoc, error) {
	doc := publisherDoc{Name: p.Name}
	var err error
	if p.ID != "" {
		if doc.ID, err = oidFromHex(p.ID); err != nil {
			return nil, err
		}
	}
	if doc.CountryID, err = oidFromHex(p.CountryID); err != nil {
		return nil, err
	}
	if doc.CampaignsID, err = oidsFromHex(p.CampaignsID); err != nil {
		return nil, err
	}
	return &doc, nil
}

func publisherFromDoc(doc *publisherDoc) domain.Publisher {
	return domain.Publisher{
		ID:          doc.ID.Hex(),
		Name:        doc.Name,
		CountryID:   doc.CountryID.Hex(),
		CampaignsID: hexIDs(doc.CampaignsID),
	}
}

func countryFromDoc(doc *countryDoc) domain.Country {
	return domain.Country{ID: doc.ID.Hex(), Name: doc.Name}
}
