package repository

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"

	"go-loyalty-admin/internal/model"
)

const keySession = "session:%s"

type redisSessionStore struct {
	rdb *redis.Client
}

// NewRedisSessionStore connects to the durable key-value store backing
// sessions. The write is a single SET of the serialized session, so persist
// and expiry are atomic.
func NewRedisSessionStore(addr string) (SessionStore, error) {
	rdb := redis.NewClient(&redis.Options{Addr: addr})

	ctx, cancel := context.WithTimeout(context.Background(), 2*time.Second)
	defer cancel()
	if err := rdb.Ping(ctx).Err(); err != nil {
		return nil, fmt.Errorf("redis ping: %w", err)
	}
	return &redisSessionStore{rdb: rdb}, nil
}

func (s *redisSessionStore) Save(ctx context.Context, session *model.Session, ttl time.Duration) error {
	payload, err := json.Marshal(session)
	if err != nil {
		return err
	}
	return s.rdb.Set(ctx, fmt.Sprintf(keySession, session.ID), payload, ttl).Err()
}

func (s *redisSessionStore) Find(ctx context.Context, id string) (*model.Session, error) {
	payload, err := s.rdb.Get(ctx, fmt.Sprintf(keySession, id)).Bytes()
	if errors.Is(err, redis.Nil) {
		return nil, ErrSessionNotFound
	}
	if err != nil {
		return nil, err
	}
	var session model.Session
	if err := json.Unmarshal(payload, &session); err != nil {
		return nil, err
	}
	return &session, nil
}

func (s *redisSessionStore) Delete(ctx context.Context, id string) error {
	return s.rdb.Del(ctx, fmt.Sprintf(keySession, id)).Err()
}
