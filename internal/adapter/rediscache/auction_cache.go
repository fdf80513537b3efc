// Package rediscache caches auction results in Redis. The store stays the
// source of truth; Redis only serves the hot fetch-top-bids path and is
// dropped on every campaign write touching a country.
package rediscache

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"

	"adcamp/internal/core/domain"
)

// AuctionCache implements port.AuctionCache with one JSON value per
// country under "auction:<country_id>:top".
type AuctionCache struct {
	rdb *redis.Client
	ttl time.Duration
}

// NewAuctionCache wraps an existing client. TTL bounds staleness when an
// invalidation is lost.
func NewAuctionCache(rdb *redis.Client, ttl time.Duration) *AuctionCache {
	return &AuctionCache{rdb: rdb, ttl: ttl}
}

// Config holds the Redis connection settings.
type Config struct {
	Addr     string
	Password string
	DB       int
}

// NewClient connects to Redis and verifies the connection with a ping.
func NewClient(cfg Config) (*redis.Client, error) {
	rdb := redis.NewClient(&redis.Options{
		Addr:     cfg.Addr,
		Password: cfg.Password,
		DB:       cfg.DB,
	})

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	if err := rdb.Ping(ctx).Err(); err != nil {
		return nil, fmt.Errorf("connect to redis: %w", err)
	}
	return rdb, nil
}

func auctionKey(countryID string) string {
	return fmt.Sprintf("auction:%s:top", countryID)
}

func (c *AuctionCache) GetTopBids(ctx context.Context, countryID string) ([]domain.Campaign, bool, error) {
	val, err := c.rdb.Get(ctx, auctionKey(countryID)).Result()
	if errors.Is(err, redis.Nil) {
		return nil, false, nil
	}
	if err != nil {
		return nil, false, err
	}
	var campaigns []domain.Campaign
	if err := json.Unmarshal([]byte(val), &campaigns); err != nil {
		// Stale or incompatible payload: treat as a miss and drop it.
		c.rdb.Del(ctx, auctionKey(countryID))
		return nil, false, nil
	}
	return campaigns, true, nil
}

func (c *AuctionCache) SetTopBids(ctx context.Context, countryID string, campaigns []domain.Campaign) error {
	payload, err := json.Marshal(campaigns)
	if err != nil {
		return err
	}
	return c.rdb.Set(ctx, auctionKey(countryID), payload, c.ttl).Err()
}

func (c *AuctionCache) InvalidateCountries(ctx context.Context, countryIDs []string) error {
	if len(countryIDs) == 0 {
		return nil
	}
	keys := make([]string, 0, len(countryIDs))
	for _, id := range countryIDs {
		keys = append(keys, auctionKey(id))
	}
	return c.rdb.Del(ctx, keys...).Err()
}
