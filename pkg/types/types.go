package types

import (
	"bytes"
	"encoding/json"
	"fmt"
)

// ChatMessage accepts both OpenAI content shapes: a plain string or a list of
// typed parts. Image and Images are non-standard fields some clients send
// with markdown links or bare URLs.
type ChatMessage struct {
	Role    string         `json:"role"`
	Content MessageContent `json:"content"`
	Image   string         `json:"image,omitempty"`
	Images  []string       `json:"images,omitempty"`
}

// MessageContent holds either Text or Parts.
type MessageContent struct {
	Text    string
	Parts   []ContentItem
	// IsParts is true when the payload was a JSON array.
	IsParts bool
}

// ContentItem is one entry of a multi-part message.
type ContentItem struct {
	Type     string    `json:"type"`
	Text     string    `json:"text,omitempty"`
	ImageURL *ImageURL `json:"image_url,omitempty"`
}

// ImageURL wraps an image reference.
type ImageURL struct {
	URL string `json:"url"`
}

func (c *MessageContent) UnmarshalJSON(b []byte) error {
	b = bytes.TrimSpace(b)
	switch {
	case len(b) == 0 || bytes.Equal(b, []byte("null")):
		*c = MessageContent{}
		return nil
	case b[0] == '"':
		var s string
		if err := json.Unmarshal(b, &s); err != nil {
			return err
		}
		*c = MessageContent{Text: s}
		return nil
	case b[0] == '[':
		var parts []ContentItem
		if err := json.Unmarshal(b, &parts); err != nil {
			return err
		}
		*c = MessageContent{Parts: parts, IsParts: true}
		return nil
	default:
		return fmt.Errorf("content must be a string or an array of parts")
	}
}

func (c MessageContent) MarshalJSON() ([]byte, error) {
	if c.IsParts {
		return json.Marshal(c.Parts)
	}
	return json.Marshal(c.Text)
}
