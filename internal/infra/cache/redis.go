package cache

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"yacht-charter/internal/domain/calendar"
	"yacht-charter/internal/pkg/config"
	"yacht-charter/internal/pkg/errs"
	"yacht-charter/internal/usecase/queries"

	"github.com/google/uuid"
	"github.com/redis/go-redis/v9"
)

// RedisCache stores each calendar window under its own key with its own TTL.
// Window keys embed the yacht's generation counter; invalidation bumps the
// counter, so older windows become unreachable and expire on their own.
type RedisCache struct {
	client      *redis.Client
	calendarTTL time.Duration
}

func NewRedisCache(cfg config.RedisConfig) *RedisCache {
	return NewRedisCacheWithClient(
		redis.NewClient(&redis.Options{Addr: cfg.Addr, Password: cfg.Password, DB: cfg.DB}),
		cfg.CalendarTTL,
	)
}

func NewRedisCacheWithClient(client *redis.Client, ttl time.Duration) *RedisCache {
	return &RedisCache{client: client, calendarTTL: ttl}
}

func (c *RedisCache) Ping(ctx context.Context) error {
	return c.client.Ping(ctx).Err()
}

func (c *RedisCache) Close() error {
	return c.client.Close()
}

func (c *RedisCache) GetCalendar(ctx context.Context, yachtID uuid.UUID, window calendar.Range) (*queries.CalendarView, int64, error) {
	gen, err := c.generation(ctx, yachtID)
	if err != nil {
		return nil, 0, err
	}
	data, err := c.client.Get(ctx, windowKey(yachtID, gen, window)).Bytes()
	if err != nil {
		if errors.Is(err, redis.Nil) {
			return nil, gen, nil
		}
		return nil, 0, errs.Wrap(err, "failed to read calendar cache")
	}

	var view queries.CalendarView
	if err := json.Unmarshal(data, &view); err != nil {
		return nil, 0, errs.Wrap(err, "failed to decode cached calendar")
	}
	return &view, gen, nil
}

// PutCalendar writes the window under the generation observed by the miss
// that produced it.
func (c *RedisCache) PutCalendar(ctx context.Context, view *queries.CalendarView, window calendar.Range, generation int64) error {
	payload, err := json.Marshal(view)
	if err != nil {
		return errs.Wrap(err, "failed to encode calendar")
	}
	if err := c.client.Set(ctx, windowKey(view.YachtID, generation, window), payload, c.calendarTTL).Err(); err != nil {
		return errs.Wrap(err, "failed to write calendar cache")
	}
	return nil
}

// InvalidateYacht moves the yacht to a new generation.
func (c *RedisCache) InvalidateYacht(ctx context.Context, yachtID uuid.UUID) error {
	if err := c.client.Incr(ctx, generationKey(yachtID)).Err(); err != nil {
		return errs.Wrap(err, "failed to invalidate calendar cache")
	}
	return nil
}

func (c *RedisCache) generation(ctx context.Context, yachtID uuid.UUID) (int64, error) {
	gen, err := c.client.Get(ctx, generationKey(yachtID)).Int64()
	if err != nil {
		if errors.Is(err, redis.Nil) {
			return 0, nil
		}
		return 0, errs.Wrap(err, "failed to read calendar generation")
	}
	return gen, nil
}

func generationKey(yachtID uuid.UUID) string {
	return fmt.Sprintf("cache:calendar:{%s}:gen", yachtID)
}

func windowKey(yachtID uuid.UUID, generation int64, window calendar.Range) string {
	return fmt.Sprintf("cache:calendar:{%s}:%d:%s:%s", yachtID, generation,
		calendar.FormatDate(window.Start()), calendar.FormatDate(window.End()))
}
