package services

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/go-resty/resty/v2"

	"meetingbot/models"
)

const defaultChatCompletionsURL = "https://api.openai.com/v1/chat/completions"

// RestyChatClient posts the raw chat-completions JSON itself, for
// OpenAI-compatible servers that the SDK client chokes on.
type RestyChatClient struct {
	client *resty.Client
	url    string
	apiKey string
	model  string
}

func NewRestyChatClient(apiKey, baseURL, model string) *RestyChatClient {
	url := defaultChatCompletionsURL
	if baseURL != "" {
		url = baseURL + "/chat/completions"
	}
	return &RestyChatClient{
		client: resty.New(),
		url:    url,
		apiKey: apiKey,
		model:  model,
	}
}

func (c *RestyChatClient) Complete(ctx context.Context, messages []models.ConversationTurn) (string, error) {
	payload := make([]map[string]string, 0, len(messages))
	for _, turn := range messages {
		payload = append(payload, map[string]string{
			"role":    turn.Role,
			"content": turn.Content,
		})
	}

	requestBody := map[string]interface{}{
		"model":    c.model,
		"messages": payload,
	}

	resp, err := c.client.R().
		SetContext(ctx).
		SetHeader("Authorization", "Bearer "+c.apiKey).
		SetHeader("Content-Type", "application/json").
		SetBody(requestBody).
		Post(c.url)
	if err != nil {
		return "", err
	}
	if resp.IsError() {
		return "", fmt.Errorf("chat completion failed with status %s: %s", resp.Status(), resp.String())
	}

	var result struct {
		Choices []struct {
			Message struct {
				Content string `json:"content"`
			} `json:"message"`
		} `json:"choices"`
	}
	if err := json.Unmarshal(resp.Body(), &result); err != nil {
		return "", err
	}
	if len(result.Choices) == 0 {
		return "", fmt.Errorf("chat completion returned no choices")
	}
	return result.Choices[0].Message.Content, nil
}
