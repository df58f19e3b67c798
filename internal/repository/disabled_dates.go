package repository

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"
)

const disabledDatesPrefix = "motbooker:disabled_dates:"

// DisabledDatesCache stores the disabled days of each month as a JSON
// array under one key per month.
type DisabledDatesCache struct {
	client *redis.Client
	ttl    time.Duration
}

func NewDisabledDatesCache(client *redis.Client, ttl time.Duration) *DisabledDatesCache {
	return &DisabledDatesCache{client: client, ttl: ttl}
}

func disabledDatesKey(year, month int) string {
	return fmt.Sprintf("%s%04d-%02d", disabledDatesPrefix, year, month)
}

// Get reports ok=false on a miss.
func (c *DisabledDatesCache) Get(ctx context.Context, year, month int) ([]string, bool, error) {
	raw, err := c.client.Get(ctx, disabledDatesKey(year, month)).Bytes()
	if errors.Is(err, redis.Nil) {
		return nil, false, nil
	}
	if err != nil {
		return nil, false, fmt.Errorf("get disabled dates: %w", err)
	}

	var dates []string
	if err = json.Unmarshal(raw, &dates); err != nil {
		return nil, false, fmt.Errorf("decode disabled dates: %w", err)
	}
	return dates, true, nil
}

func (c *DisabledDatesCache) Set(ctx context.Context, year, month int, dates []string) error {
	if dates == nil {
		dates = []string{}
	}
	raw, err := json.Marshal(dates)
	if err != nil {
		return fmt.Errorf("encode disabled dates: %w", err)
	}

	if err = c.client.Set(ctx, disabledDatesKey(year, month), raw, c.ttl).Err(); err != nil {
		return fmt.Errorf("set disabled dates: %w", err)
	}
	return nil
}
