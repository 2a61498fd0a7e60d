package services

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"strings"

	"google.golang.org/genai"

	"tryonapi/config"
)

// GeminiGenerator sends the try-on prompt straight to the Gemini API.
type GeminiGenerator struct {
	Config *config.Config
}

func floatPointer(f float32) *float32 {
	return &f
}

func (g *GeminiGenerator) GenerateTryOn(ctx context.Context, prompt string, personImage string) (MessageContent, error) {
	personPart, err := personImagePart(personImage)
	if err != nil {
		return MessageContent{}, err
	}

	client, err := genai.NewClient(ctx, &genai.ClientConfig{
		APIKey:  g.Config.AIAPIKey,
		Backend: genai.BackendGeminiAPI,
	})
	if err != nil {
		return MessageContent{}, fmt.Errorf("failed to create genai client: %w", err)
	}

	parts := []*genai.Part{
		{Text: prompt},
		personPart,
	}
	result, err := client.Models.GenerateContent(ctx, g.Config.Model, []*genai.Content{{Role: "user", Parts: parts}}, &genai.GenerateContentConfig{
		Temperature:        floatPointer(GenerationTemperature),
		MaxOutputTokens:    GenerationMaxTokens,
		ResponseModalities: []string{"TEXT", "IMAGE"},
	})
	if err != nil {
		return MessageContent{}, classifyGeminiError(err)
	}
	fmt.Println("[TryOn] Gemini candidates received:", len(result.Candidates))

	if result.PromptFeedback != nil && result.PromptFeedback.BlockReason != "" {
		return MessageContent{}, NewUpstreamFailure(http.StatusBadRequest, fmt.Sprintf("content blocked: %s %s", result.PromptFeedback.BlockReason, result.PromptFeedback.BlockReasonMessage))
	}
	return GeminiResponseContent(result), nil
}

func personImagePart(personImage string) (*genai.Part, error) {
	if strings.HasPrefix(personImage, "data:") {
		mimeType, data, err := ParseDataURL(personImage)
		if err != nil {
			return nil, fmt.Errorf("invalid person image: %w", err)
		}
		return &genai.Part{InlineData: &genai.Blob{MIMEType: mimeType, Data: data}}, nil
	}
	return &genai.Part{FileData: &genai.FileData{FileURI: personImage, MIMEType: "image/jpeg"}}, nil
}

// GeminiResponseContent converts the first candidate into the shared content union.
// Inline images become data URL image parts.
func GeminiResponseContent(result *genai.GenerateContentResponse) MessageContent {
	if result == nil || len(result.Candidates) == 0 {
		return MessageContent{}
	}
	cand := result.Candidates[0]
	if cand.Content == nil || len(cand.Content.Parts) == 0 {
		return MessageContent{}
	}

	content := MessageContent{Kind: ContentParts}
	for _, part := range cand.Content.Parts {
		if part == nil || part.Thought {
			continue
		}
		if part.InlineData != nil && strings.HasPrefix(part.InlineData.MIMEType, "image/") && len(part.InlineData.Data) > 0 {
			content.Parts = append(content.Parts, NewImagePart(EncodeDataURL(part.InlineData.MIMEType, part.InlineData.Data)))
			continue
		}
		if part.Text != "" {
			content.Parts = append(content.Parts, NewTextPart(part.Text))
		}
	}
	return content
}

func classifyGeminiError(err error) error {
	var apiErr genai.APIError
	if errors.As(err, &apiErr) {
		return ErrorFromUpstreamStatus(apiErr.Code, apiErr.Message)
	}
	var apiErrPtr *genai.APIError
	if errors.As(err, &apiErrPtr) && apiErrPtr != nil {
		return ErrorFromUpstreamStatus(apiErrPtr.Code, apiErrPtr.Message)
	}
	return fmt.Errorf("gemini request failed: %w", err)
}
