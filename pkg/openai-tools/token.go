package openai_tools

import (
	"fmt"
	"github.com/pkoukk/tiktoken-go"
	tiktoken_loader "github.com/pkoukk/tiktoken-go-loader"
	"github.com/sashabaranov/go-openai"
)

const fallbackEncoding = "cl100k_base"

// Encodings are read from files embedded in the binary, never fetched over the network.
func init() {
	tiktoken.SetBpeLoader(tiktoken_loader.NewOfflineLoader())
}

// CountToken estimates prompt tokens of a chat request the way OpenAI bills them:
// every message costs three tokens of framing, the reply is primed with three more.
func CountToken(messages []openai.ChatCompletionMessage, model string) (int, error) {
	tkm, err := tiktoken.EncodingForModel(model)
	if err != nil {
		tkm, err = tiktoken.GetEncoding(fallbackEncoding)
		if err != nil {
			return 0, fmt.Errorf("failed to get encoding for model %s: %w", model, err)
		}
	}

	const tokensPerMessage = 3
	const tokensPerName = 1

	var tokenCount int
	for _, message := range messages {
		tokenCount += tokensPerMessage
		tokenCount += len(tkm.Encode(message.Content, nil, nil))
		tokenCount += len(tkm.Encode(message.Role, nil, nil))
		if message.Name != "" {
			tokenCount += len(tkm.Encode(message.Name, nil, nil))
			tokenCount += tokensPerName
		}
	}
	tokenCount += 3
	return tokenCount, nil
}
