package session

import (
	"context"

	"pacientes-service/internal/app/contracts"
	"pacientes-service/internal/pkg/exceptions"

	"github.com/redis/go-redis/v9"
)

// redisStore backs the session in Redis for shared deployments (several
// bridge instances on a kiosk observing one resident identity). Session
// keys carry no TTL; logout is the only thing that removes them.
type redisStore struct {
	client *redis.Client
}

func NewRedisStore(client *redis.Client) contracts.SessionStore {
	return &redisStore{client: client}
}

func (s *redisStore) Get(ctx context.Context, key string) (string, error) {
	value, err := s.client.Get(ctx, key).Result()
	if err == redis.Nil {
		return "", contracts.ErrKeyNotFound
	}
	if err != nil {
		return "", exceptions.ErrStorageRead(err, key)
	}
	return value, nil
}

func (s *redisStore) Set(ctx context.Context, key string, value string) error {
	err := s.client.Set(ctx, key, value, 0).Err()
	if err != nil {
		return exceptions.ErrStorageWrite(err, key)
	}
	return nil
}

func (s *redisStore) Delete(ctx context.Context, key string) error {
	err := s.client.Del(ctx, key).Err()
	if err != nil {
		return exceptions.ErrStorageDelete(err, key)
	}
	return nil
}
