package main

import (
	"context"
	"errors"
	"github.com/iamvkosarev/expert-chat/config"
	"github.com/iamvkosarev/expert-chat/internal/app"
	"github.com/joho/godotenv"
	"io/fs"
	"log"
	"os"
)

const defaultConfigPath = "config/config.yaml"

func main() {
	if err := godotenv.Load(); err != nil && !errors.Is(err, fs.ErrNotExist) {
		log.Printf("failed to load .env: %v\n", err)
	}

	cfgPath := os.Getenv("CONFIG_PATH")
	if cfgPath == "" {
		cfgPath = defaultConfigPath
	}
	cfg, err := config.LoadConfig(cfgPath)
	if err != nil {
		log.Fatalf("failed to load config: %v", err)
	}

	if err = app.Run(context.Background(), cfg); err != nil {
		log.Fatalf("server stopped: %v", err)
	}
}
