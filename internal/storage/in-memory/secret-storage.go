package in_memory

import (
	"context"
	"errors"
	"fmt"
	"github.com/BurntSushi/toml"
	"io/fs"
)

type SecretStorage struct {
	secrets map[string]string
}

func NewSecretStorage(secrets map[string]string) *SecretStorage {
	copied := make(map[string]string, len(secrets))
	for key, value := range secrets {
		copied[key] = value
	}
	return &SecretStorage{
		secrets: copied,
	}
}

// LoadSecretStorage reads top-level string keys of a TOML secrets file.
// A missing file yields an empty storage.
func LoadSecretStorage(path string) (*SecretStorage, error) {
	raw := make(map[string]any)
	if _, err := toml.DecodeFile(path, &raw); err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return NewSecretStorage(nil), nil
		}
		return nil, fmt.Errorf("failed to decode secrets file %s: %w", path, err)
	}
	secrets := make(map[string]string, len(raw))
	for key, value := range raw {
		if str, ok := value.(string); ok {
			secrets[key] = str
		}
	}
	return NewSecretStorage(secrets), nil
}

func (s *SecretStorage) Lookup(_ context.Context, key string) (string, bool, error) {
	value, ok := s.secrets[key]
	if !ok || value == "" {
		return "", false, nil
	}
	return value, true, nil
}
