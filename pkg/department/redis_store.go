package department

import (
	"context"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"github.com/redis/go-redis/v9"
)

// RedisStore persists the last-department map in redis, one key per user.
type RedisStore struct {
	client    redis.UniversalClient
	keyPrefix string
}

func NewRedisStore(client redis.UniversalClient, keyPrefix string) *RedisStore {
	return &RedisStore{client: client, keyPrefix: keyPrefix}
}

func (s *RedisStore) key(userID uuid.UUID) string {
	return s.keyPrefix + userID.String()
}

func (s *RedisStore) Get(ctx context.Context, userID uuid.UUID) (string, error) {
	id, err := s.client.Get(ctx, s.key(userID)).Result()
	if err != nil {
		if errors.Is(err, redis.Nil) {
			return "", ErrNotFound
		}
		return "", errors.Wrap(err, "redis store: get")
	}
	return id, nil
}

func (s *RedisStore) Set(ctx context.Context, userID uuid.UUID, departmentID string) error {
	if err := s.client.Set(ctx, s.key(userID), departmentID, 0).Err(); err != nil {
		return errors.Wrap(err, "redis store: set")
	}
	return nil
}
