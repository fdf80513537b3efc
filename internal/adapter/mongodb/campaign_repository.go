package mongodb

import (
	"context"
	"errors"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	"adcamp/internal/core/domain"
)

// CampaignRepository implements port.CampaignRepository on the "campaigns"
// collection. The country and publisher lookups rely on the indexes
// created by the migrations in db/migrations.
type CampaignRepository struct {
	col *mongo.Collection
}

// NewCampaignRepository returns a new repository instance.
func NewCampaignRepository(db *mongo.Database) *CampaignRepository {
	return &CampaignRepository{col: db.Collection("campaigns")}
}

func (r *CampaignRepository) Create(ctx context.Context, c *domain.Campaign) (*domain.Campaign, error) {
	doc, err := campaignToDoc(c)
	if err != nil {
		return nil, err
	}
	if doc.ID.IsZero() {
		doc.ID = primitive.NewObjectID()
	}
	if _, err := r.col.InsertOne(ctx, doc); err != nil {
		return nil, err
	}
	created, err := campaignFromDoc(doc)
	if err != nil {
		return nil, err
	}
	return &created, nil
}

func (r *CampaignRepository) FindAll(ctx context.Context) ([]domain.Campaign, error) {
	return r.find(ctx, bson.M{})
}

func (r *CampaignRepository) FindByID(ctx context.Context, id string) (*domain.Campaign, error) {
	oid, err := oidFromHex(id)
	if err != nil {
		return nil, nil
	}
	var doc campaignDoc
	err = r.col.FindOne(ctx, bson.M{"_id": oid}).Decode(&doc)
	if errors.Is(err, mongo.ErrNoDocuments) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	c, err := campaignFromDoc(&doc)
	if err != nil {
		return nil, err
	}
	return &c, nil
}

func (r *CampaignRepository) FindByFilter(ctx context.Context, params map[string]string) ([]domain.Campaign, error) {
	filter, ok := campaignFilter(params)
	if !ok {
		return []domain.Campaign{}, nil
	}
	return r.find(ctx, filter)
}

// FindByCountry returns campaigns targeting countryID in stable _id order,
// which is the tie-break order the auction relies on.
func (r *CampaignRepository) FindByCountry(ctx context.Context, countryID string) ([]domain.Campaign, error) {
	oid, err := oidFromHex(countryID)
	if err != nil {
		return []domain.Campaign{}, nil
	}
	return r.find(ctx, bson.M{"countries_id": oid})
}

func (r *CampaignRepository) FindByPublisher(ctx context.Context, publisherID string) ([]domain.Campaign, error) {
	oid, err := oidFromHex(publisherID)
	if err != nil {
		return []domain.Campaign{}, nil
	}
	return r.find(ctx, bson.M{"publishers.publisher_id": oid})
}

func (r *CampaignRepository) Update(ctx context.Context, id string, c *domain.Campaign) (*domain.Campaign, error) {
	oid, err := oidFromHex(id)
	if err != nil {
		return nil, nil
	}
	doc, err := campaignToDoc(c)
	if err != nil {
		return nil, err
	}
	update := bson.M{"$set": bson.M{
		"name":          doc.Name,
		"advertiser_id": doc.AdvertiserID,
		"campaign_type": doc.CampaignType,
		"countries_id":  doc.CountriesID,
		"bid":           doc.Bid,
		"publishers":    doc.Publishers,
	}}
	opts := options.FindOneAndUpdate().SetReturnDocument(options.After)

	var updated campaignDoc
	err = r.col.FindOneAndUpdate(ctx, bson.M{"_id": oid}, update, opts).Decode(&updated)
	if errors.Is(err, mongo.ErrNoDocuments) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	out, err := campaignFromDoc(&updated)
	if err != nil {
		return nil, err
	}
	return &out, nil
}

func (r *CampaignRepository) Delete(ctx context.Context, id string) (*domain.Campaign, error) {
	oid, err := oidFromHex(id)
	if err != nil {
		return nil, nil
	}
	var doc campaignDoc
	err = r.col.FindOneAndDelete(ctx, bson.M{"_id": oid}).Decode(&doc)
	if errors.Is(err, mongo.ErrNoDocuments) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	c, err := campaignFromDoc(&doc)
	if err != nil {
		return nil, err
	}
	return &c, nil
}

func (r *CampaignRepository) DeleteByAdvertiser(ctx context.Context, advertiserID string) (int64, error) {
	oid, err := oidFromHex(advertiserID)
	if err != nil {
		return 0, nil
	}
	res, err := r.col.DeleteMany(ctx, bson.M{"advertiser_id": oid})
	if err != nil {
		return 0, err
	}
	return res.DeletedCount, nil
}

func (r *CampaignRepository) find(ctx context.Context, filter bson.M) ([]domain.Campaign, error) {
	cursor, err := r.col.Find(ctx, filter)
	if err != nil {
		return nil, err
	}
	defer cursor.Close(ctx)

	out := make([]domain.Campaign, 0)
	for cursor.Next(ctx) {
		var doc campaignDoc
		if err := cursor.Decode(&doc); err != nil {
			return nil, err
		}
		c, err := campaignFromDoc(&doc)
		if err != nil {
			return nil, err
		}
		out = append(out, c)
	}
	return out, cursor.Err()
}
