package services

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"tryonapi/config"
)

func TestParseDataURL(t *testing.T) {
	mimeType, data, err := ParseDataURL("data:image/png;base64,aGVsbG8=")
	require.NoError(t, err)
	assert.Equal(t, "image/png", mimeType)
	assert.Equal(t, []byte("hello"), data)
}

func TestParseDataURLErrors(t *testing.T) {
	for _, value := range []string{
		"https://example.com/x.png",
		"data:image/png;base64",
		"data:image/png,plain",
		"data:image/png;base64,@@@",
	} {
		_, _, err := ParseDataURL(value)
		assert.Error(t, err, value)
	}
}

func TestEncodeDataURLRoundTrip(t *testing.T) {
	encoded := EncodeDataURL("image/jpeg", []byte{1, 2, 3})
	mimeType, data, err := ParseDataURL(encoded)
	require.NoError(t, err)
	assert.Equal(t, "image/jpeg", mimeType)
	assert.Equal(t, []byte{1, 2, 3}, data)
}

func TestNewTryOnGenerator(t *testing.T) {
	gateway := NewTryOnGenerator(&config.Config{Backend: config.BackendGateway})
	assert.IsType(t, &GatewayGenerator{}, gateway)

	gemini := NewTryOnGenerator(&config.Config{Backend: config.BackendGemini})
	assert.IsType(t, &GeminiGenerator{}, gemini)
}
