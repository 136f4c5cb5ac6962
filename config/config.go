package config

import (
	"errors"
	"github.com/ilyakaznacheev/cleanenv"
	"io/fs"
	"os"
)

type HTTP struct {
	Address string `yaml:"address" env:"HTTP_ADDRESS" env-default:":8501"`
}

// OpenAIBaseURL is the API host without the version path: "/v1" is appended on start,
// a trailing "/v1" is tolerated.
type OpenAI struct {
	OpenAIBaseURL string `yaml:"open_ai_base_url" env:"OPENAI_BASE_URL"`
}

type Secrets struct {
	File      string `yaml:"file" env:"SECRETS_FILE" env-default:"secrets.toml"`
	RedisAddr string `yaml:"redis_addr" env:"SECRETS_REDIS_ADDR"`
	RedisKey  string `yaml:"redis_key" env:"SECRETS_REDIS_KEY" env-default:"secrets"`
}

type Config struct {
	HTTP    HTTP    `yaml:"http"`
	OpenAI  OpenAI  `yaml:"openai"`
	Secrets Secrets `yaml:"secrets"`
}

// LoadConfig reads cfgPath when it exists and applies environment overrides.
// A missing file is not an error: the environment alone is enough to start.
func LoadConfig(cfgPath string) (*Config, error) {
	var cfg Config
	if _, err := os.Stat(cfgPath); err != nil {
		if !errors.Is(err, fs.ErrNotExist) {
			return nil, err
		}
		if err = cleanenv.ReadEnv(&cfg); err != nil {
			return nil, err
		}
		return &cfg, nil
	}
	if err := cleanenv.ReadConfig(cfgPath, &cfg); err != nil {
		return nil, err
	}
	return &cfg, nil
}
