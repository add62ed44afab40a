package utils

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/google/generative-ai-go/genai"
	"google.golang.org/api/option"
)

// GeminiGuideClient implements GuideClientInterface using Google's Gemini models.
type GeminiGuideClient struct {
	client *genai.Client
	model  string
}

func NewGeminiGuideClient(apiKey, model string) (GuideClientInterface, error) {
	if model == "" {
		model = "gemini-1.5-flash" // free tier model
	}

	client, err := genai.NewClient(context.Background(), option.WithAPIKey(apiKey))
	if err != nil {
		return nil, fmt.Errorf("failed to create Gemini client: %w", err)
	}

	return &GeminiGuideClient{
		client: client,
		model:  model,
	}, nil
}

func (c *GeminiGuideClient) GenerateCityGuideJSON(ctx context.Context, city string) (string, error) {
	if city == "" {
		return "", fmt.Errorf("empty city")
	}

	m := c.client.GenerativeModel(c.model)
	// Force JSON-only output so no brace-matching cleanup is needed.
	m.ResponseMIMEType = "application/json"
	m.SetTopP(0.5)
	m.SetTopK(20)
	m.SetTemperature(0.3)

	prompt := fmt.Sprintf(guidePromptFormat, city, GuideSchema, city)

	resp, err := m.GenerateContent(ctx, genai.Text(prompt))
	if err != nil {
		return "", fmt.Errorf("gemini: %w", err)
	}
	if len(resp.Candidates) == 0 || len(resp.Candidates[0].Content.Parts) == 0 {
		return "", fmt.Errorf("gemini: no content")
	}

	content := fmt.Sprintf("%v", resp.Candidates[0].Content.Parts[0])
	if !json.Valid([]byte(content)) {
		return "", fmt.Errorf("gemini: invalid JSON response")
	}

	return content, nil
}
