package services

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"

	"tryonapi/config"
)

// GatewayGenerator talks to an OpenAI compatible chat completion endpoint.
type GatewayGenerator struct {
	Config *config.Config
	Client *http.Client
}

func NewGatewayGenerator(cfg *config.Config, client *http.Client) *GatewayGenerator {
	if client == nil {
		client = &http.Client{}
	}
	return &GatewayGenerator{Config: cfg, Client: client}
}

func (g *GatewayGenerator) GenerateTryOn(ctx context.Context, prompt string, personImage string) (MessageContent, error) {
	payload := ChatCompletionRequest{
		Model: g.Config.Model,
		Messages: []ChatMessage{
			{
				Role: "user",
				Content: MessageContent{
					Kind:  ContentParts,
					Parts: []ContentPart{NewTextPart(prompt), NewImagePart(personImage)},
				},
			},
		},
		Temperature: GenerationTemperature,
		MaxTokens:   GenerationMaxTokens,
	}
	body, err := json.Marshal(payload)
	if err != nil {
		return MessageContent{}, fmt.Errorf("failed to encode completion request: %w", err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, g.Config.GatewayURL, bytes.NewReader(body))
	if err != nil {
		return MessageContent{}, fmt.Errorf("failed to create HTTP request: %w", err)
	}
	req.Header.Set("Authorization", fmt.Sprintf("Bearer %s", g.Config.AIAPIKey))
	req.Header.Set("Content-Type", "application/json")

	resp, err := g.Client.Do(req)
	if err != nil {
		return MessageContent{}, fmt.Errorf("AI gateway unreachable: %w", err)
	}
	defer resp.Body.Close()

	respBody, err := io.ReadAll(resp.Body)
	if err != nil {
		return MessageContent{}, fmt.Errorf("failed to read AI gateway response: %w", err)
	}

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		fmt.Printf("[TryOn] AI service error: %d %s\n", resp.StatusCode, string(respBody))
		return MessageContent{}, ErrorFromUpstreamStatus(resp.StatusCode, string(respBody))
	}
	fmt.Printf("[TryOn] AI gateway responded with status %d\n", resp.StatusCode)

	content, err := ParseCompletionContent(respBody)
	if err != nil {
		return MessageContent{}, fmt.Errorf("failed to decode AI gateway response: %w", err)
	}
	return content, nil
}
