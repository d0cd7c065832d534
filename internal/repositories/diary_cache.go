package repositories

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"
	"github.com/jasik/momsnagging-api/internal/logger"
)

// DiaryCalendarCacheRepository provides cached month calendars using Redis
type DiaryCalendarCacheRepository struct {
	client *redis.Client
	exp    time.Duration // expiration duration for cached calendars
}

// NewDiaryCalendarCacheRepository creates a new repository instance with optional TTL
func NewDiaryCalendarCacheRepository(client *redis.Client, expiration time.Duration) *DiaryCalendarCacheRepository {
	return &DiaryCalendarCacheRepository{
		client: client,
		exp:    expiration,
	}
}

func calendarKey(userID int64, year, month int) string {
	return fmt.Sprintf("diary_calendar:%d:%04d-%02d", userID, year, month)
}

// GetMonth fetches the cached per-day existence flags for a user's month
func (r *DiaryCalendarCacheRepository) GetMonth(ctx context.Context, userID int64, year, month int) ([]bool, error) {
	key := calendarKey(userID, year, month)

	val, err := r.client.Get(ctx, key).Result()
	if err != nil {
		logger.Log.Infow(
			"key", key,
			"result", val,
			"error", err,
		)
		if err == redis.Nil {
			return nil, fmt.Errorf("calendar not found in cache for %s", key)
		}
		return nil, err
	}

	var days []bool
	if err := json.Unmarshal([]byte(val), &days); err != nil {
		logger.Log.Infow(
			"key", key,
			"value", val,
			"error", err,
		)
		return nil, err
	}

	logger.Log.Infow(
		"key", key,
		"result", len(days),
		"error", nil,
	)

	return days, nil
}

// SetMonth caches the per-day existence flags for a user's month with expiration
func (r *DiaryCalendarCacheRepository) SetMonth(ctx context.Context, userID int64, year, month int, days []bool) error {
	key := calendarKey(userID, year, month)

	data, err := json.Marshal(days)
	if err != nil {
		return err
	}

	err = r.client.Set(ctx, key, string(data), r.exp).Err()

	logger.Log.Infow(
		"key", key,
		"days", len(days),
		"result", "ok",
		"error", err,
	)

	return err
}

// DeleteMonth drops the cached calendar for a user's month, used on diary writes
func (r *DiaryCalendarCacheRepository) DeleteMonth(ctx context.Context, userID int64, year, month int) error {
	key := calendarKey(userID, year, month)
	err := r.client.Del(ctx, key).Err()

	logger.Log.Infow(
		"key", key,
		"result", "deleted",
		"error", err,
	)

	return err
}
