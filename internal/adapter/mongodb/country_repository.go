package mongodb

import (
	"context"
	"errors"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"

	"adcamp/internal/core/domain"
)

// CountryRepository reads the "countries" collection. Countries are
// reference data seeded at startup; no write operations are exposed.
type CountryRepository struct {
	col *mongo.Collection
}

// NewCountryRepository returns a new repository instance.
func NewCountryRepository(db *mongo.Database) *CountryRepository {
	return &CountryRepository{col: db.Collection("countries")}
}

func (r *CountryRepository) FindAll(ctx context.Context) ([]domain.Country, error) {
	cursor, err := r.col.Find(ctx, bson.M{})
	if err != nil {
		return nil, err
	}
	defer cursor.Close(ctx)

	out := make([]domain.Country, 0)
	for cursor.Next(ctx) {
		var doc countryDoc
		if err := cursor.Decode(&doc); err != nil {
			return nil, err
		}
		out = append(out, countryFromDoc(&doc))
	}
	return out, cursor.Err()
}

func (r *CountryRepository) FindByID(ctx context.Context, id string) (*domain.Country, error) {
	oid, err := oidFromHex(id)
	if err != nil {
		return nil, nil
	}
	var doc countryDoc
	err = r.col.FindOne(ctx, bson.M{"_id": oid}).Decode(&doc)
	if errors.Is(err, mongo.ErrNoDocuments) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	c := countryFromDoc(&doc)
	return &c, nil
}
