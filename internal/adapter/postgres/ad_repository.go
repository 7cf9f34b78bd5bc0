package postgres

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"log/slog"
	"time"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/jackc/pgx/v5/pgxpool"

	"tribe-pulse-ads/internal/core/domain"
)

const foreignKeyViolation = "23503"

// AdRepository implements port.AdRepository using pgxpool for PostgreSQL.
// Totals live on the ads row, per-day buckets in ad_daily_counters and
// the unique-click map in ad_unique_clicks. Every counter write is a
// single atomic statement.
type AdRepository struct {
	pool   *pgxpool.Pool
	logger *slog.Logger
}

// NewAdRepository returns a new repository instance.
func NewAdRepository(pool *pgxpool.Pool, logger *slog.Logger) *AdRepository {
	if logger == nil {
		logger = slog.New(slog.DiscardHandler)
	}
	return &AdRepository{pool: pool, logger: logger}
}

// dayKey renders DATE columns independently of the session DateStyle.
const dayKey = "to_char(d.day, 'YYYY-MM-DD')"

const catalogQuery = `
        SELECT a.id, a.content_url, a.is_active, a.priority, a.is_premium,
               a.impressions, a.clicks, a.segments
        FROM ads a
        ORDER BY a.id`

const fullAdQuery = `
        SELECT
            a.id,
            a.content_url,
            a.is_active,
            a.priority,
            a.is_premium,
            a.impressions,
            a.clicks,
            a.segments,
            COALESCE((SELECT jsonb_object_agg(` + dayKey + `, d.impressions)
                      FROM ad_daily_counters d WHERE d.ad_id = a.id AND d.impressions > 0), '{}'::jsonb),
            COALESCE((SELECT jsonb_object_agg(` + dayKey + `, d.clicks)
                      FROM ad_daily_counters d WHERE d.ad_id = a.id AND d.clicks > 0), '{}'::jsonb),
            COALESCE((SELECT jsonb_object_agg(u.user_id, u.clicked_at)
                      FROM ad_unique_clicks u WHERE u.ad_id = a.id), '{}'::jsonb)
        FROM ads a
        WHERE a.id = $1`

// adRow holds the scanned columns before the jsonb ones are decoded.
type adRow struct {
	Ad                                  domain.Advertisement
	Segments, Daily, DailyClicks, Users []byte
}

// ListAds returns the catalog with totals and segments. Per-day buckets
// and unique clicks are not loaded.
func (r *AdRepository) ListAds(ctx context.Context) ([]domain.Advertisement, error) {
	rows, err := r.pool.Query(ctx, catalogQuery)
	if err != nil {
		return nil, fmt.Errorf("list ads: %w", err)
	}

	raw, err := pgx.CollectRows(rows, func(row pgx.CollectableRow) (adRow, error) {
		var ar adRow
		err := row.Scan(
			&ar.Ad.ID,
			&ar.Ad.ContentURL,
			&ar.Ad.IsActive,
			&ar.Ad.Priority,
			&ar.Ad.IsPremium,
			&ar.Ad.Impressions,
			&ar.Ad.Clicks,
			&ar.Segments,
		)
		return ar, err
	})
	if err != nil {
		return nil, fmt.Errorf("scan ads: %w", err)
	}

	ads := make([]domain.Advertisement, 0, len(raw))
	for _, ar := range raw {
		ad, err := decodeAdRow(ar)
		if err != nil {
			r.logger.Warn("skipping advertisement",
				slog.String("ad_id", ar.Ad.ID),
				slog.Any("error", err),
			)
			continue
		}
		ads = append(ads, ad)
	}
	return ads, nil
}

// GetAd returns one advertisement with its counter maps.
func (r *AdRepository) GetAd(ctx context.Context, adID string) (*domain.Advertisement, error) {
	var ar adRow
	err := r.pool.QueryRow(ctx, fullAdQuery, adID).Scan(
		&ar.Ad.ID,
		&ar.Ad.ContentURL,
		&ar.Ad.IsActive,
		&ar.Ad.Priority,
		&ar.Ad.IsPremium,
		&ar.Ad.Impressions,
		&ar.Ad.Clicks,
		&ar.Segments,
		&ar.Daily,
		&ar.DailyClicks,
		&ar.Users,
	)
	if errors.Is(err, pgx.ErrNoRows) {
		return nil, domain.ErrAdNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("get ad %s: %w", adID, err)
	}
	ad, err := decodeAdRow(ar)
	if err != nil {
		return nil, err
	}
	return &ad, nil
}

// decodeAdRow unmarshals the jsonb columns that were scanned. Nil columns
// leave the matching map nil.
func decodeAdRow(ar adRow) (domain.Advertisement, error) {
	ad := ar.Ad
	var errs []error
	for _, col := range []struct {
		raw []byte
		dst any
	}{
		{ar.Segments, &ad.Segments},
		{ar.Daily, &ad.DailyImpressions},
		{ar.DailyClicks, &ad.DailyClicks},
		{ar.Users, &ad.UniqueClicks},
	} {
		if col.raw == nil {
			continue
		}
		if err := json.Unmarshal(col.raw, col.dst); err != nil {
			errs = append(errs, fmt.Errorf("%w: %v", domain.ErrMalformedAd, err))
		}
	}
	errs = append(errs, ad.Validate())
	return ad, errors.Join(errs...)
}

// Upsert writes the descriptive columns of ad, leaving counters alone.
func (r *AdRepository) Upsert(ctx context.Context, ad domain.Advertisement) error {
	if ad.ID == "" {
		return domain.ErrMalformedAd
	}
	segments := ad.Segments
	if segments == nil {
		segments = map[string]domain.SegmentMetrics{}
	}
	raw, err := json.Marshal(segments)
	if err != nil {
		return fmt.Errorf("marshal segments: %w", err)
	}
	_, err = r.pool.Exec(ctx, `
        INSERT INTO ads (id, content_url, is_active, priority, is_premium, segments)
        VALUES ($1, $2, $3, $4, $5, $6)
        ON CONFLICT (id) DO UPDATE SET
            content_url = EXCLUDED.content_url,
            is_active   = EXCLUDED.is_active,
            priority    = EXCLUDED.priority,
            is_premium  = EXCLUDED.is_premium,
            segments    = EXCLUDED.segments,
            updated_at  = now()`,
		ad.ID, ad.ContentURL, ad.IsActive, ad.Priority, ad.IsPremium, raw)
	if err != nil {
		return fmt.Errorf("upsert ad %s: %w", ad.ID, err)
	}
	return nil
}

// Increment adds delta to the counter addressed by field.
func (r *AdRepository) Increment(ctx context.Context, adID string, field domain.Field, delta int64) error {
	switch field.Kind {
	case domain.FieldImpressions:
		return r.incrementTotal(ctx, `UPDATE ads SET impressions = impressions + $1, updated_at = now() WHERE id = $2`, adID, delta)
	case domain.FieldClicks:
		return r.incrementTotal(ctx, `UPDATE ads SET clicks = clicks + $1, updated_at = now() WHERE id = $2`, adID, delta)
	case domain.FieldDailyImpressions:
		return r.incrementDaily(ctx, `
            INSERT INTO ad_daily_counters (ad_id, day, impressions) VALUES ($1, $2, $3)
            ON CONFLICT (ad_id, day) DO UPDATE SET impressions = ad_daily_counters.impressions + EXCLUDED.impressions`,
			adID, field.Day, delta)
	case domain.FieldDailyClicks:
		return r.incrementDaily(ctx, `
            INSERT INTO ad_daily_counters (ad_id, day, clicks) VALUES ($1, $2, $3)
            ON CONFLICT (ad_id, day) DO UPDATE SET clicks = ad_daily_counters.clicks + EXCLUDED.clicks`,
			adID, field.Day, delta)
	default:
		return fmt.Errorf("field %v is not a counter", field.Kind)
	}
}

func (r *AdRepository) incrementTotal(ctx context.Context, query, adID string, delta int64) error {
	tag, err := r.pool.Exec(ctx, query, delta, adID)
	if err != nil {
		return err
	}
	if tag.RowsAffected() == 0 {
		return domain.ErrAdNotFound
	}
	return nil
}

func (r *AdRepository) incrementDaily(ctx context.Context, query, adID string, day domain.Day, delta int64) error {
	_, err := r.pool.Exec(ctx, query, adID, day.Time(), delta)
	return mapErr(err)
}

// TouchUniqueClick stamps uniqueClicks.<userID> with the database clock.
func (r *AdRepository) TouchUniqueClick(ctx context.Context, adID, userID string) error {
	if userID == "" {
		return domain.ErrMissingUser
	}
	_, err := r.pool.Exec(ctx, `
        INSERT INTO ad_unique_clicks (ad_id, user_id, clicked_at) VALUES ($1, $2, now())
        ON CONFLICT (ad_id, user_id) DO UPDATE SET clicked_at = now()`,
		adID, userID)
	return mapErr(err)
}

// GetStats returns totals and the per-day buckets within the range.
func (r *AdRepository) GetStats(ctx context.Context, req domain.StatsReq) (*domain.Stats, error) {
	stats := &domain.Stats{
		AdID:             req.AdID,
		DailyImpressions: map[domain.Day]int64{},
		DailyClicks:      map[domain.Day]int64{},
	}
	err := r.pool.QueryRow(ctx, `
        SELECT a.impressions, a.clicks,
               (SELECT count(*) FROM ad_unique_clicks u WHERE u.ad_id = a.id)
        FROM ads a WHERE a.id = $1`, req.AdID).
		Scan(&stats.Impressions, &stats.Clicks, &stats.UniqueClicks)
	if errors.Is(err, pgx.ErrNoRows) {
		return nil, domain.ErrAdNotFound
	}
	if err != nil {
		return nil, err
	}

	args := []any{req.AdID, nil, nil}
	if !req.From.IsZero() {
		args[1] = req.From.Time()
	}
	if !req.To.IsZero() {
		args[2] = req.To.Time()
	}
	rows, err := r.pool.Query(ctx, `
        SELECT day, impressions, clicks FROM ad_daily_counters
        WHERE ad_id = $1
          AND ($2::date IS NULL OR day >= $2::date)
          AND ($3::date IS NULL OR day <= $3::date)
        ORDER BY day`, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()
	for rows.Next() {
		var (
			day         time.Time
			imps, click int64
		)
		if err = rows.Scan(&day, &imps, &click); err != nil {
			return nil, err
		}
		d := domain.DayOf(day)
		if imps > 0 {
			stats.DailyImpressions[d] = imps
		}
		if click > 0 {
			stats.DailyClicks[d] = click
		}
	}
	return stats, rows.Err()
}

func mapErr(err error) error {
	var pgErr *pgconn.PgError
	if errors.As(err, &pgErr) && pgErr.Code == foreignKeyViolation {
		return domain.ErrAdNotFound
	}
	return err
}
