package test

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"sync"

	"tryonapi/services"
)

func JsonString(model interface{}) string {
	bytes, _ := json.Marshal(model)
	return string(bytes)
}

func NewJSONRequest(method string, target string, param interface{}) *http.Request {
	req := httptest.NewRequest(method, target, strings.NewReader(JsonString(param)))
	req.Header.Add("Content-Type", "application/json")
	req.Header.Add("Accept", "application/json")
	return req
}

func NewRawJSONRequest(method string, target string, body string) *http.Request {
	req := httptest.NewRequest(method, target, strings.NewReader(body))
	req.Header.Add("Content-Type", "application/json")
	req.Header.Add("Accept", "application/json")
	return req
}

type GeneratorCall struct {
	Prompt      string
	PersonImage string
}

// GeneratorMock replays a fixed upstream outcome and records every call.
type GeneratorMock struct {
	Content services.MessageContent
	Err     error

	mu    sync.Mutex
	Calls []GeneratorCall
}

func (m *GeneratorMock) GenerateTryOn(ctx context.Context, prompt string, personImage string) (services.MessageContent, error) {
	m.mu.Lock()
	m.Calls = append(m.Calls, GeneratorCall{Prompt: prompt, PersonImage: personImage})
	m.mu.Unlock()
	return m.Content, m.Err
}

func (m *GeneratorMock) CallCount() int {
	m.mu.Lock()
	defer m.mu.Unlock()
	return len(m.Calls)
}

func TextContent(text string) services.MessageContent {
	return services.MessageContent{Kind: services.ContentText, Text: text}
}

func PartsContent(parts ...services.ContentPart) services.MessageContent {
	return services.MessageContent{Kind: services.ContentParts, Parts: parts}
}
