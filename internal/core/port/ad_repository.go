package port

import (
	"context"

	"tribe-pulse-ads/internal/core/domain"
)

// CatalogSource supplies an up-to-date snapshot of the advertisement
// catalog. Staleness tolerance is the caller's concern.
type CatalogSource interface {
	// ListAds returns every advertisement known to the store, active or
	// not, with its selection attributes, totals and segments. Per-day
	// buckets and unique clicks are left nil; read them with GetAd.
	// Malformed records are rejected during ingestion.
	ListAds(ctx context.Context) ([]domain.Advertisement, error)
}

// CounterStore is the write-back side of the store. Implementations must
// apply increments atomically on the store so concurrent writers never
// lose updates; clients never read-modify-write.
type CounterStore interface {
	// Increment adds delta to the counter addressed by field. It returns
	// domain.ErrAdNotFound for unknown ids.
	Increment(ctx context.Context, adID string, field domain.Field, delta int64) error
	// TouchUniqueClick stores a server-assigned timestamp under
	// uniqueClicks.<userID>, overwriting any previous value.
	TouchUniqueClick(ctx context.Context, adID, userID string) error
}

// StatsReader reads counters back for reporting.
type StatsReader interface {
	// GetAd returns one advertisement with every counter populated. It
	// returns domain.ErrAdNotFound for unknown ids.
	GetAd(ctx context.Context, adID string) (*domain.Advertisement, error)
	GetStats(ctx context.Context, req domain.StatsReq) (*domain.Stats, error)
}

// AdRepository is the full outbound port implemented by the store
// adapters.
type AdRepository interface {
	CatalogSource
	CounterStore
	StatsReader
}
