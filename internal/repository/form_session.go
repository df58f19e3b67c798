package repository

import (
	"context"
	"fmt"
	"slices"
	"time"

	"github.com/redis/go-redis/v9"
)

const formSessionPrefix = "motbooker:form_session:"

// FormSessionStore keeps each public form session's excluded dates in a
// Redis set that expires with the session.
type FormSessionStore struct {
	client *redis.Client
	ttl    time.Duration
}

func NewFormSessionStore(client *redis.Client, ttl time.Duration) *FormSessionStore {
	return &FormSessionStore{client: client, ttl: ttl}
}

func formSessionKey(sessionID string) string {
	return formSessionPrefix + sessionID + ":excluded"
}

func (s *FormSessionStore) Exclude(ctx context.Context, sessionID, date string) error {
	key := formSessionKey(sessionID)
	_, err := s.client.TxPipelined(ctx, func(pipe redis.Pipeliner) error {
		pipe.SAdd(ctx, key, date)
		pipe.Expire(ctx, key, s.ttl)
		return nil
	})
	if err != nil {
		return fmt.Errorf("exclude date: %w", err)
	}
	return nil
}

// Excluded returns the session's excluded dates in calendar order.
func (s *FormSessionStore) Excluded(ctx context.Context, sessionID string) ([]string, error) {
	dates, err := s.client.SMembers(ctx, formSessionKey(sessionID)).Result()
	if err != nil {
		return nil, fmt.Errorf("get excluded dates: %w", err)
	}
	slices.Sort(dates)
	return dates, nil
}
