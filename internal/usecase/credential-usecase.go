package usecase

import (
	"context"
	"fmt"
	"github.com/iamvkosarev/expert-chat/internal/model"
)

const OpenAIAPIKeyName = "OPENAI_API_KEY"

type SecretSource interface {
	Lookup(ctx context.Context, key string) (string, bool, error)
}

type CredentialUsecaseDeps struct {
	// Sources are queried in order, the first hit wins.
	Sources []SecretSource
}

type CredentialUsecase struct {
	CredentialUsecaseDeps
	keyName     string
	remediation string
}

func NewCredentialUsecase(deps CredentialUsecaseDeps, keyName, remediation string) *CredentialUsecase {
	return &CredentialUsecase{
		CredentialUsecaseDeps: deps,
		keyName:               keyName,
		remediation:           remediation,
	}
}

func (c *CredentialUsecase) Resolve(ctx context.Context) (string, error) {
	for _, source := range c.Sources {
		value, ok, err := source.Lookup(ctx, c.keyName)
		if err != nil {
			return "", fmt.Errorf("failed to lookup secret %s: %w", c.keyName, err)
		}
		if ok {
			return value, nil
		}
	}
	return "", &model.ConfigurationError{Remediation: c.remediation}
}

func MissingKeyRemediation(secretsFile, keyName string) string {
	return fmt.Sprintf(
		"OpenAI APIキーが設定されていません。\n"+
			"シークレットファイル %s もしくは環境変数 %s にキーを設定してください。",
		secretsFile, keyName,
	)
}
