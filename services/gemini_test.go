package services

import (
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"google.golang.org/genai"
)

func TestGeminiResponseContentInlineImage(t *testing.T) {
	result := &genai.GenerateContentResponse{
		Candidates: []*genai.Candidate{
			{
				Content: &genai.Content{
					Parts: []*genai.Part{
						{Text: "thinking", Thought: true},
						{Text: "Here you go"},
						{InlineData: &genai.Blob{MIMEType: "image/png", Data: []byte("hello")}},
					},
				},
			},
		},
	}

	content := GeminiResponseContent(result)
	require.Equal(t, ContentParts, content.Kind)
	require.Len(t, content.Parts, 2)

	image, ok, err := ExtractImage(content)
	require.NoError(t, err)
	assert.True(t, ok)
	assert.Equal(t, "data:image/png;base64,aGVsbG8=", image)
}

func TestGeminiResponseContentTextOnly(t *testing.T) {
	result := &genai.GenerateContentResponse{
		Candidates: []*genai.Candidate{
			{Content: &genai.Content{Parts: []*genai.Part{{Text: "I cannot do that"}}}},
		},
	}

	_, ok, err := ExtractImage(GeminiResponseContent(result))
	require.NoError(t, err)
	assert.False(t, ok)
}

func TestGeminiResponseContentEmpty(t *testing.T) {
	assert.Equal(t, ContentAbsent, GeminiResponseContent(nil).Kind)
	assert.Equal(t, ContentAbsent, GeminiResponseContent(&genai.GenerateContentResponse{}).Kind)
	assert.Equal(t, ContentAbsent, GeminiResponseContent(&genai.GenerateContentResponse{
		Candidates: []*genai.Candidate{{}},
	}).Kind)
}

func TestClassifyGeminiError(t *testing.T) {
	rateLimited := AsTryOnError(classifyGeminiError(genai.APIError{Code: http.StatusTooManyRequests, Message: "RESOURCE_EXHAUSTED"}))
	assert.Equal(t, RateLimited, rateLimited.Kind)

	failure := AsTryOnError(classifyGeminiError(genai.APIError{Code: http.StatusBadRequest, Message: "bad image"}))
	assert.Equal(t, UpstreamFailure, failure.Kind)
	assert.Equal(t, "AI处理失败: bad image", failure.Message)

	assert.Equal(t, Unclassified, AsTryOnError(classifyGeminiError(assert.AnError)).Kind)
}

func TestPersonImagePart(t *testing.T) {
	part, err := personImagePart("data:image/jpeg;base64,aGVsbG8=")
	require.NoError(t, err)
	require.NotNil(t, part.InlineData)
	assert.Equal(t, "image/jpeg", part.InlineData.MIMEType)
	assert.Equal(t, []byte("hello"), part.InlineData.Data)

	part, err = personImagePart("https://example.com/me.jpg")
	require.NoError(t, err)
	require.NotNil(t, part.FileData)
	assert.Equal(t, "https://example.com/me.jpg", part.FileData.FileURI)

	_, err = personImagePart("data:image/jpeg;base64,@@@")
	assert.Error(t, err)
}
