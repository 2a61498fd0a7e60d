package services

import (
	"bytes"
	"encoding/json"
	"errors"
	"fmt"
	"strings"
)

type ContentKind int

const (
	// ContentAbsent covers a missing key, null and other falsy values.
	ContentAbsent ContentKind = iota
	ContentText
	ContentParts
	// ContentOther is a present value of an unexpected JSON type.
	ContentOther
)

const (
	PartTypeText     = "text"
	PartTypeImageURL = "image_url"
)

type ImageURL struct {
	URL string `json:"url"`
}

type ContentPart struct {
	Type     string    `json:"type"`
	Text     string    `json:"text,omitempty"`
	ImageURL *ImageURL `json:"image_url,omitempty"`
}

func NewTextPart(text string) ContentPart {
	return ContentPart{Type: PartTypeText, Text: text}
}

func NewImagePart(url string) ContentPart {
	return ContentPart{Type: PartTypeImageURL, ImageURL: &ImageURL{URL: url}}
}

// MessageContent is the string-or-parts union carried by chat completion messages.
type MessageContent struct {
	Kind  ContentKind
	Text  string
	Parts []ContentPart
}

func (c MessageContent) MarshalJSON() ([]byte, error) {
	switch c.Kind {
	case ContentText:
		return json.Marshal(c.Text)
	case ContentParts:
		if c.Parts == nil {
			return []byte("[]"), nil
		}
		return json.Marshal(c.Parts)
	default:
		return []byte("null"), nil
	}
}

func (c *MessageContent) UnmarshalJSON(data []byte) error {
	*c = MessageContent{}
	trimmed := bytes.TrimSpace(data)
	if len(trimmed) == 0 {
		return nil
	}

	switch trimmed[0] {
	case 'n':
		return nil
	case '"':
		var text string
		if err := json.Unmarshal(trimmed, &text); err != nil {
			return fmt.Errorf("decode text content: %w", err)
		}
		if text != "" {
			c.Kind = ContentText
			c.Text = text
		}
		return nil
	case '[':
		var raw []json.RawMessage
		if err := json.Unmarshal(trimmed, &raw); err != nil {
			return fmt.Errorf("decode content parts: %w", err)
		}
		c.Kind = ContentParts
		c.Parts = make([]ContentPart, 0, len(raw))
		for _, item := range raw {
			var part ContentPart
			// parts we cannot read are skipped, they never hold the image
			if err := json.Unmarshal(item, &part); err != nil {
				continue
			}
			c.Parts = append(c.Parts, part)
		}
		return nil
	case 'f':
		return nil
	default:
		var number float64
		if err := json.Unmarshal(trimmed, &number); err == nil && number == 0 {
			return nil
		}
		c.Kind = ContentOther
		return nil
	}
}

type ChatMessage struct {
	Role    string         `json:"role"`
	Content MessageContent `json:"content"`
}

type ChatCompletionRequest struct {
	Model       string        `json:"model"`
	Messages    []ChatMessage `json:"messages"`
	Temperature float64       `json:"temperature"`
	MaxTokens   int           `json:"max_tokens"`
}

// ParseCompletionContent pulls choices[0].message.content out of a completion body.
// Any level with an unexpected shape reads as absent content; only a body that is
// not JSON at all is an error.
func ParseCompletionContent(body []byte) (MessageContent, error) {
	if !json.Valid(body) {
		return MessageContent{}, errors.New("completion body is not valid JSON")
	}

	var envelope map[string]json.RawMessage
	if json.Unmarshal(body, &envelope) != nil {
		return MessageContent{}, nil
	}
	var choices []json.RawMessage
	if json.Unmarshal(envelope["choices"], &choices) != nil || len(choices) == 0 {
		return MessageContent{}, nil
	}
	var choice map[string]json.RawMessage
	if json.Unmarshal(choices[0], &choice) != nil {
		return MessageContent{}, nil
	}
	var message map[string]json.RawMessage
	if json.Unmarshal(choice["message"], &message) != nil {
		return MessageContent{}, nil
	}
	raw, ok := message["content"]
	if !ok {
		return MessageContent{}, nil
	}

	var content MessageContent
	if content.UnmarshalJSON(raw) != nil {
		return MessageContent{}, nil
	}
	return content, nil
}

// ExtractImage resolves the generated image from the content union.
// The order is fixed: missing content fails, then the typed part scan, then the string check.
// ok is false when the content is present but holds no usable image.
func ExtractImage(content MessageContent) (image string, ok bool, err error) {
	switch content.Kind {
	case ContentAbsent:
		return "", false, NewTryOnError(NoImageProduced, nil)
	case ContentParts:
		for _, part := range content.Parts {
			if part.Type == PartTypeImageURL && part.ImageURL != nil && part.ImageURL.URL != "" {
				return part.ImageURL.URL, true, nil
			}
		}
		return "", false, nil
	case ContentText:
		if LooksLikeImageReference(content.Text) {
			return content.Text, true, nil
		}
		return "", false, nil
	default:
		return "", false, nil
	}
}

// LooksLikeImageReference accepts data:image URLs and absolute http(s) URLs.
func LooksLikeImageReference(value string) bool {
	return strings.HasPrefix(value, "data:image") || strings.HasPrefix(value, "http")
}
