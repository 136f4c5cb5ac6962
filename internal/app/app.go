package app

import (
	"context"
	"fmt"
	"github.com/gofiber/fiber/v2"
	"github.com/iamvkosarev/expert-chat/config"
	httpapi "github.com/iamvkosarev/expert-chat/internal/api/http"
	"github.com/iamvkosarev/expert-chat/internal/api/http/handlers"
	"github.com/iamvkosarev/expert-chat/internal/storage/env"
	in_memory "github.com/iamvkosarev/expert-chat/internal/storage/in-memory"
	key_value "github.com/iamvkosarev/expert-chat/internal/storage/key-value"
	"github.com/iamvkosarev/expert-chat/internal/usecase"
	openai_tools "github.com/iamvkosarev/expert-chat/pkg/openai-tools"
	"github.com/redis/go-redis/v9"
	"github.com/sourcegraph/conc"
	"log"
	"net"
	"net/url"
	"os"
	"os/signal"
	"strings"
	"syscall"
)

// Run serves the web form until ctx is cancelled or the process gets SIGINT/SIGTERM.
func Run(ctx context.Context, cfg *config.Config) error {
	app, cleanup, err := newServer(cfg, openai_tools.CountToken)
	if err != nil {
		return err
	}
	defer cleanup()

	ln, err := net.Listen("tcp", cfg.HTTP.Address)
	if err != nil {
		return fmt.Errorf("failed to listen on %s: %w", cfg.HTTP.Address, err)
	}

	ctx, stop := signal.NotifyContext(ctx, os.Interrupt, syscall.SIGTERM)
	defer stop()

	var serveErr error
	wg := conc.NewWaitGroup()
	wg.Go(
		func() {
			log.Printf("HTTP server listening on %s", ln.Addr())
			if err := app.Listener(ln); err != nil && ctx.Err() == nil {
				serveErr = fmt.Errorf("failed to serve: %w", err)
			}
			stop()
		},
	)
	wg.Go(
		func() {
			<-ctx.Done()
			if err := app.Shutdown(); err != nil {
				log.Printf("failed to shutdown server: %v\n", err)
			}
			_ = ln.Close()
		},
	)
	wg.Wait()
	return serveErr
}

func newServer(cfg *config.Config, countToken usecase.TokenCounter) (*fiber.App, func(), error) {
	openAICfg := cfg.OpenAI
	if openAICfg.OpenAIBaseURL != "" {
		base := strings.TrimSuffix(strings.TrimRight(openAICfg.OpenAIBaseURL, "/"), "/v1")
		baseURL, err := url.JoinPath(base, "/v1")
		if err != nil {
			return nil, nil, err
		}
		openAICfg.OpenAIBaseURL = baseURL
	}

	fileSecrets, err := in_memory.LoadSecretStorage(cfg.Secrets.File)
	if err != nil {
		return nil, nil, fmt.Errorf("failed to load secrets: %w", err)
	}
	sources := []usecase.SecretSource{fileSecrets}

	cleanup := func() {}
	if cfg.Secrets.RedisAddr != "" {
		rdb := redis.NewClient(
			&redis.Options{
				Addr: cfg.Secrets.RedisAddr,
			},
		)
		cleanup = func() {
			if err := rdb.Close(); err != nil {
				log.Printf("failed to close redis client: %v\n", err)
			}
		}
		sources = append(sources, key_value.NewSecretStorage(rdb, cfg.Secrets.RedisKey))
	}
	sources = append(sources, env.NewSecretStorage())

	credentialUsecase := usecase.NewCredentialUsecase(
		usecase.CredentialUsecaseDeps{
			Sources: sources,
		},
		usecase.OpenAIAPIKeyName,
		usecase.MissingKeyRemediation(cfg.Secrets.File, usecase.OpenAIAPIKeyName),
	)

	openAIUsecase := usecase.NewOpenAIUsecase(
		usecase.OpenAIUsecaseDeps{
			Credential: credentialUsecase,
			NewClient:  usecase.NewOpenAIClientFactory(openAICfg),
			CountToken: countToken,
		},
	)

	expertUsecase := usecase.NewExpertUsecase(
		usecase.ExpertUsecaseDeps{
			Requester: openAIUsecase,
		},
	)

	app := httpapi.NewApp()
	httpapi.Register(app, handlers.NewConsultHandler(expertUsecase), handlers.NewHealthHandler())
	return app, cleanup, nil
}
