package db

import (
	"context"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
)

// countryNames is the reference catalogue inserted on first start. The
// countries collection is read-only from the API's perspective, so the
// seed is the only writer.
var countryNames = []string{
	"Argentina",
	"Australia",
	"Brazil",
	"Canada",
	"Chile",
	"China",
	"France",
	"Germany",
	"India",
	"Japan",
	"Mexico",
	"Portugal",
	"Spain",
	"United Kingdom",
	"United States",
}

// SeedCountries inserts the country catalogue when the countries
// collection is empty. It is idempotent across restarts.
func SeedCountries(ctx context.Context, database *mongo.Database) error {
	col := database.Collection("countries")

	count, err := col.CountDocuments(ctx, bson.M{})
	if err != nil {
		return err
	}
	if count > 0 {
		return nil
	}

	docs := make([]any, 0, len(countryNames))
	for _, name := range countryNames {
		docs = append(docs, bson.M{"name": name})
	}
	_, err = col.InsertMany(ctx, docs)
	return err
}
