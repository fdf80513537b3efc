package db

import (
	"context"
	"time"

	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	"adcamp/internal/config/configs"
)

// NewMongoDatabase connects to MongoDB with the provided configuration
// and verifies connectivity by pinging with a 5 second timeout. If the
// ping fails, the client is disconnected and an error is returned. The
// caller must disconnect the returned client when it is no longer needed.
func NewMongoDatabase(ctx context.Context, cfg configs.Mongo) (*mongo.Client, *mongo.Database, error) {
	client, err := mongo.Connect(ctx, options.Client().ApplyURI(cfg.Addr.String()))
	if err != nil {
		return nil, nil, err
	}

	ctxPing, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()
	if err = client.Ping(ctxPing, nil); err != nil {
		_ = client.Disconnect(ctx)
		return nil, nil, err
	}
	return client, client.Database(cfg.Database), nil
}
