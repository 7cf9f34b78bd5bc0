package db

import (
	"context"
	"fmt"

	"tribe-pulse-ads/internal/core/domain"
)

// CatalogWriter is implemented by every store backend.
type CatalogWriter interface {
	Upsert(ctx context.Context, ad domain.Advertisement) error
}

// DemoCatalog returns the advertisements inserted by Seed. It covers every
// priority, both premium markers and one inactive record.
func DemoCatalog() []domain.Advertisement {
	ads := make([]domain.Advertisement, 0, 8)
	for i, p := range []int{1, 2, 3, 3, 4, 5} {
		ads = append(ads, domain.Advertisement{
			ID:         fmt.Sprintf("demo-%d", i+1),
			ContentURL: fmt.Sprintf("https://example.com/reel/%d.mp4", i+1),
			IsActive:   true,
			Priority:   p,
		})
	}
	ads = append(ads,
		domain.Advertisement{
			ID:         "demo-premium",
			ContentURL: "https://example.com/reel/premium.mp4",
			IsActive:   true,
			Priority:   2,
			IsPremium:  true,
			Segments: map[string]domain.SegmentMetrics{
				"music": {},
				"tech":  {},
			},
		},
		domain.Advertisement{
			ID:         "demo-paused",
			ContentURL: "https://example.com/reel/paused.mp4",
			Priority:   5,
		},
	)
	return ads
}

// Seed inserts the demo catalog. Existing records keep their counters.
func Seed(ctx context.Context, w CatalogWriter) error {
	for _, ad := range DemoCatalog() {
		if err := w.Upsert(ctx, ad); err != nil {
			return fmt.Errorf("seed %s: %w", ad.ID, err)
		}
	}
	return nil
}
