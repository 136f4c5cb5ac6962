package usecase

import (
	"context"
	"errors"
	"github.com/iamvkosarev/expert-chat/config"
	"github.com/iamvkosarev/expert-chat/internal/model"
	"github.com/sashabaranov/go-openai"
	"log"
)

const (
	OpenAIModel            = "gpt-4o-mini"
	OpenAIModelTemperature = float32(0.7)

	OpenAIRoleSystem  = openai.ChatMessageRoleSystem
	OpenAIRoleUser    = openai.ChatMessageRoleUser
	OpenAIRoleUnknown = "unknown"
)

var (
	ErrNoChoicesReturned = errors.New("no choices returned by model")
)

type ChatCompleter interface {
	CreateChatCompletion(ctx context.Context, req openai.ChatCompletionRequest) (openai.ChatCompletionResponse, error)
}

type ClientFactory func(apiKey string) ChatCompleter

type TokenCounter func(messages []openai.ChatCompletionMessage, model string) (int, error)

func NewOpenAIClientFactory(cfg config.OpenAI) ClientFactory {
	return func(apiKey string) ChatCompleter {
		clientConfig := openai.DefaultConfig(apiKey)
		if cfg.OpenAIBaseURL != "" {
			clientConfig.BaseURL = cfg.OpenAIBaseURL
		}
		return openai.NewClientWithConfig(clientConfig)
	}
}

type OpenAIUsecaseDeps struct {
	Credential *CredentialUsecase
	NewClient  ClientFactory
	// CountToken is optional, it only feeds logs.
	CountToken TokenCounter
}

type OpenAIUsecase struct {
	OpenAIUsecaseDeps
}

func NewOpenAIUsecase(deps OpenAIUsecaseDeps) *OpenAIUsecase {
	return &OpenAIUsecase{
		OpenAIUsecaseDeps: deps,
	}
}

// Ask sends a single system+user exchange and returns the reply text as is.
// Transport errors are returned unwrapped so their message reaches the user intact.
func (o *OpenAIUsecase) Ask(ctx context.Context, query, systemPrompt string) (string, error) {
	apiKey, err := o.Credential.Resolve(ctx)
	if err != nil {
		return "", err
	}

	messages := []model.Message{
		{Role: model.MessageRoleSystem, Content: systemPrompt},
		{Role: model.MessageRoleUser, Content: query},
	}
	chatMessages := make([]openai.ChatCompletionMessage, 0, len(messages))
	for _, message := range messages {
		chatMessages = append(
			chatMessages, openai.ChatCompletionMessage{
				Role:    parseMessageRoleToOpenAIRole(message.Role),
				Content: message.Content,
			},
		)
	}

	if o.CountToken != nil {
		if tokenCount, err := o.CountToken(chatMessages, OpenAIModel); err != nil {
			log.Printf("failed to count prompt tokens: %v\n", err)
		} else {
			log.Printf("prompt tokens: %d\n", tokenCount)
		}
	}

	req := openai.ChatCompletionRequest{
		Model:       OpenAIModel,
		Temperature: OpenAIModelTemperature,
		Messages:    chatMessages,
	}

	c := o.NewClient(apiKey)
	resp, err := c.CreateChatCompletion(ctx, req)
	if err != nil {
		log.Printf("failed to create chat completion: %v\n", err)
		return "", err
	}
	if len(resp.Choices) == 0 {
		return "", ErrNoChoicesReturned
	}
	return resp.Choices[0].Message.Content, nil
}

func parseMessageRoleToOpenAIRole(role model.MessageRole) string {
	switch role {
	case model.MessageRoleSystem:
		return OpenAIRoleSystem
	case model.MessageRoleUser:
		return OpenAIRoleUser
	default:
		return OpenAIRoleUnknown
	}
}
