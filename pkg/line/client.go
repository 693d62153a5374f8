// Package line provides a client for pushing messages through the LINE
// Messaging API. A push carries the ordered segment sequence built by the
// dispatcher: text segments become text messages, image segments become
// image messages with the public URL.
package line

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"time"

	"github.com/medremind/appointment-notifier/internal/model"
)

const defaultBaseURL = "https://api.line.me"

// Client represents a LINE client used to push notifications.
type Client struct {
	token   string       // channel access token for authentication
	baseURL string
	client  *http.Client // HTTP client used to make requests
}

// NewClient creates a new LINE Client instance with the given channel
// access token.
func NewClient(token string, timeout time.Duration) *Client {
	return &Client{
		token:   token,
		baseURL: defaultBaseURL,
		client:  &http.Client{Timeout: timeout},
	}
}

// pushRequest represents the payload for the LINE push API.
type pushRequest struct {
	To       string        `json:"to"`       // user id to push messages to
	Messages []pushMessage `json:"messages"` // up to five message objects
}

type pushMessage struct {
	Type               string `json:"type"`
	Text               string `json:"text,omitempty"`
	OriginalContentURL string `json:"originalContentUrl,omitempty"`
	PreviewImageURL    string `json:"previewImageUrl,omitempty"`
}

// Push sends the segment sequence to the given LINE user ID.
//
// It constructs the request payload, sends an HTTP POST to the LINE
// Messaging API, and returns an error if the request fails or the API
// responds with a non-200 status.
func (c *Client) Push(ctx context.Context, to string, segments []model.MessageSegment) error {
	url := fmt.Sprintf("%s/v2/bot/message/push", c.baseURL)

	messages := make([]pushMessage, 0, len(segments))
	for _, seg := range segments {
		switch seg.Kind {
		case model.SegmentImage:
			messages = append(messages, pushMessage{
				Type:               "image",
				OriginalContentURL: seg.URL,
				PreviewImageURL:    seg.URL,
			})
		default:
			messages = append(messages, pushMessage{Type: "text", Text: seg.Text})
		}
	}

	body, err := json.Marshal(pushRequest{To: to, Messages: messages})
	if err != nil {
		return fmt.Errorf("marshal request: %w", err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, url, bytes.NewBuffer(body))
	if err != nil {
		return fmt.Errorf("build request: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("Authorization", "Bearer "+c.token)

	resp, err := c.client.Do(req)
	if err != nil {
		return fmt.Errorf("send request: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return fmt.Errorf("line API error: %s", resp.Status)
	}

	return nil
}
