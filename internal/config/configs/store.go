package configs

import "strings"

const (
	BackendPostgres = "postgres"
	BackendRedis    = "redis"
)

// Store selects which adapter backs the catalog and the counters. Seed
// inserts the demo catalog into that backend on startup.
type Store struct {
	Backend string `env:"BACKEND" envDefault:"postgres"`
	Seed    bool   `env:"SEED" envDefault:"false"`
}

// Kind normalises Backend. Unknown values fall back to postgres.
func (c Store) Kind() string {
	switch strings.ToLower(c.Backend) {
	case BackendRedis:
		return BackendRedis
	default:
		return BackendPostgres
	}
}
