package services

import (
	"context"
	"encoding/base64"
	"fmt"
	"strings"

	"tryonapi/config"
)

const (
	GenerationTemperature = 0.8
	GenerationMaxTokens   = 4096
)

type TryOnGeneratorProvider interface {
	// GenerateTryOn sends the prompt and the person image upstream once and
	// returns the raw message content. Upstream failures are *TryOnError values.
	GenerateTryOn(ctx context.Context, prompt string, personImage string) (MessageContent, error)
}

// NewTryOnGenerator picks the backend named by the config.
func NewTryOnGenerator(cfg *config.Config) TryOnGeneratorProvider {
	if cfg.Backend == config.BackendGemini {
		return &GeminiGenerator{Config: cfg}
	}
	return NewGatewayGenerator(cfg, nil)
}

// ParseDataURL splits a base64 data URL into its MIME type and payload.
func ParseDataURL(dataURL string) (string, []byte, error) {
	if !strings.HasPrefix(dataURL, "data:") {
		return "", nil, fmt.Errorf("not a data URL")
	}
	header, payload, found := strings.Cut(strings.TrimPrefix(dataURL, "data:"), ",")
	if !found {
		return "", nil, fmt.Errorf("data URL has no payload")
	}
	mimeType, isBase64 := strings.CutSuffix(header, ";base64")
	if !isBase64 {
		return "", nil, fmt.Errorf("data URL is not base64 encoded")
	}
	if mimeType == "" {
		mimeType = "application/octet-stream"
	}
	data, err := base64.StdEncoding.DecodeString(payload)
	if err != nil {
		return "", nil, fmt.Errorf("failed to decode data URL payload: %w", err)
	}
	return mimeType, data, nil
}

func EncodeDataURL(mimeType string, data []byte) string {
	return fmt.Sprintf("data:%s;base64,%s", mimeType, base64.StdEncoding.EncodeToString(data))
}
