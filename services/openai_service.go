package services

import (
	"context"
	"fmt"

	"github.com/sashabaranov/go-openai"

	"meetingbot/config"
	"meetingbot/models"
)

// LanguageModel produces one completion for a fully composed message
// list. The system turn is already first; roles are sent through
// unvalidated.
type LanguageModel interface {
	Complete(ctx context.Context, messages []models.ConversationTurn) (string, error)
}

// NewLanguageModel selects the client from LLM_BACKEND.
func NewLanguageModel() (LanguageModel, error) {
	apiKey := config.GetOpenAIKey()
	if apiKey == "" {
		return nil, fmt.Errorf("OPENAI_API_KEY is not set")
	}

	switch backend := config.GetLLMBackend(); backend {
	case "openai":
		return NewOpenAIClient(apiKey, config.GetOpenAIBaseURL(), config.GetOpenAIModel()), nil
	case "resty":
		return NewRestyChatClient(apiKey, config.GetOpenAIBaseURL(), config.GetOpenAIModel()), nil
	default:
		return nil, fmt.Errorf("unknown LLM backend %q", backend)
	}
}

// OpenAIClient calls the chat-completions API through the official-SDK
// style client.
type OpenAIClient struct {
	client *openai.Client
	model  string
}

func NewOpenAIClient(apiKey, baseURL, model string) *OpenAIClient {
	cfg := openai.DefaultConfig(apiKey)
	if baseURL != "" {
		cfg.BaseURL = baseURL
	}
	return &OpenAIClient{
		client: openai.NewClientWithConfig(cfg),
		model:  model,
	}
}

func (c *OpenAIClient) Complete(ctx context.Context, messages []models.ConversationTurn) (string, error) {
	request := openai.ChatCompletionRequest{Model: c.model}
	for _, turn := range messages {
		request.Messages = append(request.Messages, openai.ChatCompletionMessage{
			Role:    turn.Role,
			Content: turn.Content,
		})
	}

	resp, err := c.client.CreateChatCompletion(ctx, request)
	if err != nil {
		return "", err
	}
	if len(resp.Choices) == 0 {
		return "", fmt.Errorf("chat completion returned no choices")
	}
	return resp.Choices[0].Message.Content, nil
}
