package utils

import (
	"context"
	"encoding/json"
	"fmt"

	openai "github.com/sashabaranov/go-openai"
)

// OpenAIGuideClient is the fallback guide provider, selected with
// GUIDE_PROVIDER=openai.
type OpenAIGuideClient struct {
	client *openai.Client
	model  string
}

func NewOpenAIGuideClient(apiKey, model string) GuideClientInterface {
	if model == "" {
		model = openai.GPT4oMini
	}
	return &OpenAIGuideClient{
		client: openai.NewClient(apiKey),
		model:  model,
	}
}

func (c *OpenAIGuideClient) GenerateCityGuideJSON(ctx context.Context, city string) (string, error) {
	if city == "" {
		return "", fmt.Errorf("empty city")
	}

	prompt := fmt.Sprintf(guidePromptFormat, city, GuideSchema, city)

	resp, err := c.client.CreateChatCompletion(ctx, openai.ChatCompletionRequest{
		Model:       c.model,
		Temperature: 0.3,
		ResponseFormat: &openai.ChatCompletionResponseFormat{
			Type: openai.ChatCompletionResponseFormatTypeJSONObject,
		},
		Messages: []openai.ChatCompletionMessage{
			{Role: openai.ChatMessageRoleUser, Content: prompt},
		},
	})
	if err != nil {
		return "", fmt.Errorf("openai: %w", err)
	}
	if len(resp.Choices) == 0 {
		return "", fmt.Errorf("openai: no content")
	}

	content := resp.Choices[0].Message.Content
	if !json.Valid([]byte(content)) {
		return "", fmt.Errorf("openai: invalid JSON response")
	}

	return content, nil
}
