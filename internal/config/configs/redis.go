package configs

import "time"

// Redis configures the auction result cache. An empty Addr disables the
// cache and every fetch goes straight to the store.
type Redis struct {
	Addr     string `env:"ADDRESS" envDefault:""`
	Password string `env:"PASSWORD" envDefault:""`
	DB       int    `env:"DB" envDefault:"0"`
	// AuctionTTL bounds how stale a cached per-country ranking can get
	// when an invalidation is lost.
	AuctionTTL time.Duration `env:"AUCTION_TTL" envDefault:"30s"`
}

// Enabled reports whether a cache address was configured.
func (c Redis) Enabled() bool {
	return c.Addr != ""
}
