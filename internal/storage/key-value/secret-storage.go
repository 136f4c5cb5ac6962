package key_value

import (
	"context"
	"errors"
	"fmt"
	"github.com/redis/go-redis/v9"
)

// SecretStorage reads secrets from fields of a single Redis hash.
type SecretStorage struct {
	rdb     *redis.Client
	hashKey string
}

func NewSecretStorage(rdb *redis.Client, hashKey string) *SecretStorage {
	return &SecretStorage{
		rdb:     rdb,
		hashKey: hashKey,
	}
}

func (s *SecretStorage) Lookup(ctx context.Context, key string) (string, bool, error) {
	value, err := s.rdb.HGet(ctx, s.hashKey, key).Result()
	if err != nil {
		if errors.Is(err, redis.Nil) {
			return "", false, nil
		}
		return "", false, fmt.Errorf("failed to get secret %s from %s: %w", key, s.hashKey, err)
	}
	if value == "" {
		return "", false, nil
	}
	return value, true, nil
}
