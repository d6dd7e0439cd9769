package api

import (
	"context"
	"net/http"
	"strings"
)

// Speech synthesizes text and returns the raw audio.
func (c *Client) Speech(ctx context.Context, text string) (*Audio, error) {
	if strings.TrimSpace(text) == "" {
		return nil, &Error{Kind: KindInvalid, Message: "text cannot be blank"}
	}
	data, hdr, err := c.roundTrip(ctx, call{
		method:   http.MethodPost,
		path:     "/api/tts/generate",
		body:     map[string]string{"text": text},
		fallback: "Failed to generate audio",
	})
	if err != nil {
		return nil, err
	}
	ct := hdr.Get("Content-Type")
	if ct == "" {
		ct = "audio/mpeg"
	}
	return &Audio{Data: data, ContentType: ct}, nil
}
