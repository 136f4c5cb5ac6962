package env

import (
	"context"
	"os"
)

// SecretStorage reads secrets from the process environment.
type SecretStorage struct{}

func NewSecretStorage() *SecretStorage {
	return &SecretStorage{}
}

func (s *SecretStorage) Lookup(_ context.Context, key string) (string, bool, error) {
	value := os.Getenv(key)
	if value == "" {
		return "", false, nil
	}
	return value, true, nil
}
