package configs

import "net/url"

// Mongo holds configuration for connecting to the MongoDB database backing
// the entity store. The Addr field is a full connection string including
// the database name; the same string is handed to the migration runner.
type Mongo struct {
	// Addr is a MongoDB connection string. The path component names the
	// database.
	Addr url.URL `env:"ADDRESS" envDefault:"mongodb://localhost:27017/adcamp"`
	// Database is the database name; it should match the path component
	// of Addr.
	Database string `env:"DATABASE" envDefault:"adcamp"`
	// RunMigrations controls whether index migrations are executed on
	// startup. Only honoured by main.
	RunMigrations bool `env:"RUN_MIGRATIONS" envDefault:"false"`
	// SeedCountries controls whether the country catalogue is inserted
	// when the countries collection is empty.
	SeedCountries bool `env:"SEED_COUNTRIES" envDefault:"true"`
}
