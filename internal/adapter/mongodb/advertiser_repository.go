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

// AdvertiserRepository implements port.AdvertiserRepository on the
// "advertisers" collection.
type AdvertiserRepository struct {
	col *mongo.Collection
}

// NewAdvertiserRepository returns a new repository instance.
func NewAdvertiserRepository(db *mongo.Database) *AdvertiserRepository {
	return &AdvertiserRepository{col: db.Collection("advertisers")}
}

func (r *AdvertiserRepository) Create(ctx context.Context, a *domain.Advertiser) (*domain.Advertiser, error) {
	doc, err := advertiserToDoc(a)
	if err != nil {
		return nil, err
	}
	if doc.ID.IsZero() {
		doc.ID = primitive.NewObjectID()
	}
	if _, err := r.col.InsertOne(ctx, doc); err != nil {
		return nil, err
	}
	created := advertiserFromDoc(doc)
	return &created, nil
}

func (r *AdvertiserRepository) FindAll(ctx context.Context) ([]domain.Advertiser, error) {
	return r.find(ctx, bson.M{})
}

func (r *AdvertiserRepository) FindByID(ctx context.Context, id string) (*domain.Advertiser, error) {
	oid, err := oidFromHex(id)
	if err != nil {
		return nil, nil
	}
	var doc advertiserDoc
	err = r.col.FindOne(ctx, bson.M{"_id": oid}).Decode(&doc)
	if errors.Is(err, mongo.ErrNoDocuments) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	a := advertiserFromDoc(&doc)
	return &a, nil
}

func (r *AdvertiserRepository) FindByFilter(ctx context.Context, params map[string]string) ([]domain.Advertiser, error) {
	filter, ok := advertiserFilter(params)
	if !ok {
		return []domain.Advertiser{}, nil
	}
	return r.find(ctx, filter)
}

func (r *AdvertiserRepository) Update(ctx context.Context, id string, a *domain.Advertiser) (*domain.Advertiser, error) {
	oid, err := oidFromHex(id)
	if err != nil {
		return nil, nil
	}
	doc, err := advertiserToDoc(a)
	if err != nil {
		return nil, err
	}
	update := bson.M{"$set": bson.M{"name": doc.Name, "campaigns_id": doc.CampaignsID}}
	opts := options.FindOneAndUpdate().SetReturnDocument(options.After)

	var updated advertiserDoc
	err = r.col.FindOneAndUpdate(ctx, bson.M{"_id": oid}, update, opts).Decode(&updated)
	if errors.Is(err, mongo.ErrNoDocuments) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	out := advertiserFromDoc(&updated)
	return &out, nil
}

func (r *AdvertiserRepository) Delete(ctx context.Context, id string) (*domain.Advertiser, error) {
	oid, err := oidFromHex(id)
	if err != nil {
		return nil, nil
	}
	var doc advertiserDoc
	err = r.col.FindOneAndDelete(ctx, bson.M{"_id": oid}).Decode(&doc)
	if errors.Is(err, mongo.ErrNoDocuments) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	a := advertiserFromDoc(&doc)
	return &a, nil
}

func (r *AdvertiserRepository) find(ctx context.Context, filter bson.M) ([]domain.Advertiser, error) {
	cursor, err := r.col.Find(ctx, filter)
	if err != nil {
		return nil, err
	}
	defer cursor.Close(ctx)

	out := make([]domain.Advertiser, 0)
	for cursor.Next(ctx) {
		var doc advertiserDoc
		if err := cursor.Decode(&doc); err != nil {
			return nil, err
		}
		out = append(out, advertiserFromDoc(&doc))
	}
	return out, cursor.Err()
}
