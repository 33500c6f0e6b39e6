package storage

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"hackscout/internal/model"

	"github.com/redis/go-redis/v9"
)

// RedisStore persists scraped records per source so consumers other than the
// scraping process (dashboards, bots) can read the latest snapshot.
type RedisStore struct {
	rdb *redis.Client
}

func NewRedisStore(rdb *redis.Client) *RedisStore {
	return &RedisStore{rdb: rdb}
}

func recordsKey(source string) string {
	return fmt.Sprintf("hack:records:%s", source)
}

func refreshedKey(source string) string {
	return fmt.Sprintf("hack:refreshed:%s", source)
}

// SaveRecords replaces the stored snapshot for a source and stamps the
// refresh time. The snapshot expires after ttl.
func (s *RedisStore) SaveRecords(ctx context.Context, source string, records []model.ScrapedRecord, ttl time.Duration) error {
	b, err := json.Marshal(records)
	if err != nil {
		return err
	}
	if err := s.rdb.Set(ctx, recordsKey(source), b, ttl).Err(); err != nil {
		return err
	}
	return s.rdb.Set(ctx, refreshedKey(source), time.Now().UTC().Format(time.RFC3339), ttl).Err()
}

// Records returns the stored snapshot for a source, or nil when absent or
// expired.
func (s *RedisStore) Records(ctx context.Context, source string) ([]model.ScrapedRecord, error) {
	b, err := s.rdb.Get(ctx, recordsKey(source)).Bytes()
	if err == redis.Nil {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	var out []model.ScrapedRecord
	if err := json.Unmarshal(b, &out); err != nil {
		return nil, err
	}
	return out, nil
}

// LastRefreshed returns when a source snapshot was last written, or the zero
// time when unknown.
func (s *RedisStore) LastRefreshed(ctx context.Context, source string) (time.Time, error) {
	v, err := s.rdb.Get(ctx, refreshedKey(source)).Result()
	if err == redis.Nil {
		return time.Time{}, nil
	}
	if err != nil {
		return time.Time{}, err
	}
	return time.Parse(time.RFC3339, v)
}
