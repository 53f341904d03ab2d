package service

import (
	"regexp"

	"genhost/pkg/types"
)

var (
	// [alt](https://host/img.png)
	markdownURL = regexp.MustCompile(`\((https?://[^)]+)\)`)
	plainURL    = regexp.MustCompile(`https?://\S+`)
)

// extractImageURL pulls an image URL out of a markdown link or free text.
func extractImageURL(v string) string {
	if v == "" {
		return ""
	}
	if m := markdownURL.FindStringSubmatch(v); m != nil {
		return m[1]
	}
	return plainURL.FindString(v)
}

// normalizeMessages converts OpenAI-style messages into turns of text parts
// and image URLs. Both content shapes are accepted, plus the non-standard
// image/images fields some clients send.
func normalizeMessages(msgs []types.ChatMessage) []types.ChatTurn {
	out := make([]types.ChatTurn, 0, len(msgs))
	for _, m := range msgs {
		turn := types.ChatTurn{Role: m.Role}
		if m.Content.IsParts {
			for _, p := range m.Content.Parts {
				switch p.Type {
				case "text":
					turn.Text = append(turn.Text, p.Text)
				case "image_url":
					if p.ImageURL != nil && p.ImageURL.URL != "" {
						turn.Images = append(turn.Images, p.ImageURL.URL)
					}
				}
			}
		} else {
			turn.Text = []string{m.Content.Text}
		}
		if u := extractImageURL(m.Image); u != "" {
			turn.Images = append(turn.Images, u)
		}
		for _, it := range m.Images {
			if u := extractImageURL(it); u != "" {
				turn.Images = append(turn.Images, u)
			}
		}
		out = append(out, turn)
	}
	return out
}
