package redis

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"log/slog"
	"strconv"
	"strings"
	"time"

	goredis "github.com/redis/go-redis/v9"

	"tribe-pulse-ads/internal/core/domain"
)

const (
	catalogKey  = "ads:catalog"
	adKeyPrefix = "ad:"

	fieldContentURL = "content_url"
	fieldIsActive   = "is_active"
	fieldPriority   = "priority"
	fieldIsPremium  = "is_premium"
	fieldSegments   = "segments"

	notFoundReply = "AD_NOT_FOUND"
)

// incrementScript refuses to create counters for unknown advertisements.
var incrementScript = goredis.NewScript(`
if redis.call('EXISTS', KEYS[1]) == 0 then
  return redis.error_reply('AD_NOT_FOUND')
end
return redis.call('HINCRBY', KEYS[1], ARGV[1], ARGV[2])
`)

// touchScript stamps a field with the Redis server clock in microseconds.
var touchScript = goredis.NewScript(`
if redis.call('EXISTS', KEYS[1]) == 0 then
  return redis.error_reply('AD_NOT_FOUND')
end
local t = redis.call('TIME')
local us = string.rep('0', 6 - string.len(t[2])) .. t[2]
return redis.call('HSET', KEYS[1], ARGV[1], t[1] .. us)
`)

// AdStore keeps each advertisement in a hash named ad:<id> whose fields
// are the dotted counter paths, e.g. dailyImpressions.2026-01-02. The set
// ads:catalog lists every id.
type AdStore struct {
	client *goredis.Client
	logger *slog.Logger
}

// NewAdStore returns a store backed by client.
func NewAdStore(client *goredis.Client, logger *slog.Logger) *AdStore {
	if logger == nil {
		logger = slog.New(slog.DiscardHandler)
	}
	return &AdStore{client: client, logger: logger}
}

func adKey(id string) string {
	return adKeyPrefix + id
}

// Upsert writes the descriptive attributes of ad and registers it in the
// catalog. Counters are left untouched.
func (s *AdStore) Upsert(ctx context.Context, ad domain.Advertisement) error {
	if ad.ID == "" {
		return domain.ErrMalformedAd
	}
	values := map[string]any{
		fieldContentURL: ad.ContentURL,
		fieldIsActive:   strconv.FormatBool(ad.IsActive),
		fieldPriority:   strconv.Itoa(ad.Priority),
		fieldIsPremium:  strconv.FormatBool(ad.IsPremium),
	}
	if len(ad.Segments) > 0 {
		raw, err := json.Marshal(ad.Segments)
		if err != nil {
			return fmt.Errorf("marshal segments: %w", err)
		}
		values[fieldSegments] = string(raw)
	}

	pipe := s.client.TxPipeline()
	pipe.HSet(ctx, adKey(ad.ID), values)
	pipe.SAdd(ctx, catalogKey, ad.ID)
	if _, err := pipe.Exec(ctx); err != nil {
		return fmt.Errorf("upsert ad %s: %w", ad.ID, err)
	}
	return nil
}

// catalogFields are the hash fields read for selection. Counter maps are
// not loaded; they grow with days and users.
var catalogFields = []string{
	fieldContentURL,
	fieldIsActive,
	fieldPriority,
	fieldIsPremium,
	fieldSegments,
	domain.ImpressionsField().Path(),
	domain.ClicksField().Path(),
}

// ListAds returns a snapshot of the catalog without per-day or per-user
// counters. Malformed records are logged and skipped.
func (s *AdStore) ListAds(ctx context.Context) ([]domain.Advertisement, error) {
	ids, err := s.client.SMembers(ctx, catalogKey).Result()
	if err != nil {
		return nil, fmt.Errorf("list catalog ids: %w", err)
	}
	if len(ids) == 0 {
		return []domain.Advertisement{}, nil
	}

	pipe := s.client.Pipeline()
	cmds := make([]*goredis.SliceCmd, len(ids))
	for i, id := range ids {
		cmds[i] = pipe.HMGet(ctx, adKey(id), catalogFields...)
	}
	if _, err = pipe.Exec(ctx); err != nil {
		return nil, fmt.Errorf("load catalog: %w", err)
	}

	ads := make([]domain.Advertisement, 0, len(ids))
	for i, cmd := range cmds {
		fields := make(map[string]string, len(catalogFields))
		for j, v := range cmd.Val() {
			if str, ok := v.(string); ok {
				fields[catalogFields[j]] = str
			}
		}
		if len(fields) == 0 {
			continue
		}
		ad, err := decodeAd(ids[i], fields)
		if err != nil {
			s.logger.Warn("skipping advertisement",
				slog.String("ad_id", ids[i]),
				slog.Any("error", err),
			)
			continue
		}
		ad.UniqueClicks, ad.DailyImpressions, ad.DailyClicks = nil, nil, nil
		ads = append(ads, ad)
	}
	return ads, nil
}

// Increment applies HINCRBY on the field path of the advertisement hash.
func (s *AdStore) Increment(ctx context.Context, adID string, field domain.Field, delta int64) error {
	path := field.Path()
	if path == "" || field.Kind == domain.FieldUniqueClick {
		return fmt.Errorf("field %v is not a counter", field.Kind)
	}
	err := incrementScript.Run(ctx, s.client, []string{adKey(adID)}, path, delta).Err()
	return mapErr(err)
}

// TouchUniqueClick stores the Redis server time under uniqueClicks.<user>.
func (s *AdStore) TouchUniqueClick(ctx context.Context, adID, userID string) error {
	if userID == "" {
		return domain.ErrMissingUser
	}
	path := domain.UniqueClickField(userID).Path()
	err := touchScript.Run(ctx, s.client, []string{adKey(adID)}, path).Err()
	return mapErr(err)
}

// GetAd reads the whole advertisement hash.
func (s *AdStore) GetAd(ctx context.Context, adID string) (*domain.Advertisement, error) {
	fields, err := s.client.HGetAll(ctx, adKey(adID)).Result()
	if err != nil {
		return nil, fmt.Errorf("get ad %s: %w", adID, err)
	}
	if len(fields) == 0 {
		return nil, domain.ErrAdNotFound
	}
	ad, err := decodeAd(adID, fields)
	if err != nil {
		return nil, err
	}
	return &ad, nil
}

// GetStats derives the counter snapshot from GetAd.
func (s *AdStore) GetStats(ctx context.Context, req domain.StatsReq) (*domain.Stats, error) {
	ad, err := s.GetAd(ctx, req.AdID)
	if err != nil {
		return nil, err
	}

	stats := &domain.Stats{
		AdID:             ad.ID,
		Impressions:      ad.Impressions,
		Clicks:           ad.Clicks,
		UniqueClicks:     int64(len(ad.UniqueClicks)),
		DailyImpressions: map[domain.Day]int64{},
		DailyClicks:      map[domain.Day]int64{},
	}
	for d, n := range ad.DailyImpressions {
		if req.InRange(d) {
			stats.DailyImpressions[d] = n
		}
	}
	for d, n := range ad.DailyClicks {
		if req.InRange(d) {
			stats.DailyClicks[d] = n
		}
	}
	return stats, nil
}

func mapErr(err error) error {
	if err == nil {
		return nil
	}
	if strings.Contains(err.Error(), notFoundReply) {
		return domain.ErrAdNotFound
	}
	return err
}

func decodeAd(id string, fields map[string]string) (domain.Advertisement, error) {
	ad := domain.Advertisement{
		ID:               id,
		ContentURL:       fields[fieldContentURL],
		UniqueClicks:     map[string]time.Time{},
		DailyImpressions: map[domain.Day]int64{},
		DailyClicks:      map[domain.Day]int64{},
	}

	raw, ok := fields[fieldPriority]
	if !ok {
		return ad, fmt.Errorf("%w: missing priority", domain.ErrMalformedAd)
	}
	p, err := strconv.Atoi(raw)
	if err != nil {
		return ad, fmt.Errorf("%w: priority %q", domain.ErrMalformedAd, raw)
	}
	ad.Priority = p

	if ad.IsActive, err = parseFlag(fields[fieldIsActive]); err != nil {
		return ad, err
	}
	if ad.IsPremium, err = parseFlag(fields[fieldIsPremium]); err != nil {
		return ad, err
	}
	if seg := fields[fieldSegments]; seg != "" {
		if err = json.Unmarshal([]byte(seg), &ad.Segments); err != nil {
			return ad, fmt.Errorf("%w: segments: %v", domain.ErrMalformedAd, err)
		}
	}

	for name, value := range fields {
		f, ok := domain.ParseField(name)
		if !ok {
			continue
		}
		if f.Kind == domain.FieldUniqueClick {
			us, err := strconv.ParseInt(value, 10, 64)
			if err != nil {
				return ad, fmt.Errorf("%w: %s: %v", domain.ErrMalformedAd, name, err)
			}
			ad.UniqueClicks[f.UserID] = time.UnixMicro(us).UTC()
			continue
		}
		n, err := strconv.ParseInt(value, 10, 64)
		if err != nil {
			return ad, fmt.Errorf("%w: %s: %v", domain.ErrMalformedAd, name, err)
		}
		switch f.Kind {
		case domain.FieldImpressions:
			ad.Impressions = n
		case domain.FieldClicks:
			ad.Clicks = n
		case domain.FieldDailyImpressions:
			ad.DailyImpressions[f.Day] = n
		case domain.FieldDailyClicks:
			ad.DailyClicks[f.Day] = n
		}
	}
	return ad, ad.Validate()
}

func parseFlag(v string) (bool, error) {
	if v == "" {
		return false, nil
	}
	b, err := strconv.ParseBool(v)
	if err != nil {
		return false, errors.Join(domain.ErrMalformedAd, err)
	}
	return b, nil
}
