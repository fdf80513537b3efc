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

// PublisherRepository implements port.PublisherRepository on the
// "publishers" collection.
type PublisherRepository struct {
	col *mongo.Collection
}

// NewPublisherRepository returns a new repository instance.
func NewPublisherRepository(db *mongo.Database) *PublisherRepository {
	return &PublisherRepository{col: db.Collection("publishers")}
}

func (r *PublisherRepository) Create(ctx context.Context, p *domain.Publisher) (*domain.Publisher, error) {
	doc, err := publisherToDoc(p)
	if err != nil {
		return nil, err
	}
	if doc.ID.IsZero() {
		doc.ID = primitive.NewObjectID()
	}
	if _, err := r.col.InsertOne(ctx, doc); err != nil {
		return nil, err
	}
	created := publisherFromDoc(doc)
	return &created, nil
}

func (r *PublisherRepository) FindAll(ctx context.Context) ([]domain.Publisher, error) {
	return r.find(ctx, bson.M{})
}

func (r *PublisherRepository) FindByID(ctx context.Context, id string) (*domain.Publisher, error) {
	oid, err := oidFromHex(id)
	if err != nil {
		return nil, nil
	}
	var doc publisherDoc
	err = r.col.FindOne(ctx, bson.M{"_id": oid}).Decode(&doc)
	if errors.Is(err, mongo.ErrNoDocuments) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	p := publisherFromDoc(&doc)
	return &p, nil
}

func (r *PublisherRepository) FindByFilter(ctx context.Context, params map[string]string) ([]domain.Publisher, error) {
	filter, ok := publisherFilter(params)
	if !ok {
		return []domain.Publisher{}, nil
	}
	return r.find(ctx, filter)
}

func (r *PublisherRepository) FindByCampaign(ctx context.Context, campaignID string) ([]domain.Publisher, error) {
	oid, err := oidFromHex(campaignID)
	if err != nil {
		return []domain.Publisher{}, nil
	}
	return r.find(ctx, bson.M{"campaigns_id": oid})
}

func (r *PublisherRepository) Update(ctx context.Context, id string, p *domain.Publisher) (*domain.Publisher, error) {
	oid, err := oidFromHex(id)
	if err != nil {
		return nil, nil
	}
	doc, err := publisherToDoc(p)
	if err != nil {
		return nil, err
	}
	update := bson.M{"$set": bson.M{
		"name":         doc.Name,
		"country_id":   doc.CountryID,
		"campaigns_id": doc.CampaignsID,
	}}
	opts := options.FindOneAndUpdate().SetReturnDocument(options.After)

	var updated publisherDoc
	err = r.col.FindOneAndUpdate(ctx, bson.M{"_id": oid}, update, opts).Decode(&updated)
	if errors.Is(err, mongo.ErrNoDocuments) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	out := publisherFromDoc(&updated)
	return &out, nil
}

func (r *PublisherRepository) Delete(ctx context.Context, id string) (*domain.Publisher, error) {
	oid, err := oidFromHex(id)
	if err != nil {
		return nil, nil
	}
	var doc publisherDoc
	err = r.col.FindOneAndDelete(ctx, bson.M{"_id": oid}).Decode(&doc)
	if errors.Is(err, mongo.ErrNoDocuments) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	p := publisherFromDoc(&doc)
	return &p, nil
}

func (r *PublisherRepository) find(ctx context.Context, filter bson.M) ([]domain.Publisher, error) {
	cursor, err := r.col.Find(ctx, filter)
	if err != nil {
		return nil, err
	}
	defer cursor.Close(ctx)

	out := make([]domain.Publisher, 0)
	for cursor.Next(ctx) {
		var doc publisherDoc
		if err := cursor.Decode(&doc); err != nil {
			return nil, err
		}
		out = append(out, publisherFromDoc(&doc))
	}
	return out, cursor.Err()
}
