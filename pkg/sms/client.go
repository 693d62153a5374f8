// Package sms pushes notifications over Twilio for records whose channel
// identity is a phone number. Text segments are joined into the body and
// image segments ride as media URLs; document links are already formatted
// as text lines by the dispatcher.
package sms

import (
	"context"
	"fmt"
	"strings"

	"github.com/twilio/twilio-go"
	twilioApi "github.com/twilio/twilio-go/rest/api/v2010"

	"github.com/medremind/appointment-notifier/internal/model"
)

type Client struct {
	client *twilio.RestClient
	from   string
}

func NewClient(accountSID, authToken, from string) *Client {
	return &Client{
		client: twilio.NewRestClientWithParams(twilio.ClientParams{
			Username: accountSID,
			Password: authToken,
		}),
		from: from,
	}
}

func (c *Client) Push(_ context.Context, to string, segments []model.MessageSegment) error {
	var lines []string
	var media []string

	for _, seg := range segments {
		switch seg.Kind {
		case model.SegmentImage:
			media = append(media, seg.URL)
		default:
			lines = append(lines, seg.Text)
		}
	}

	params := &twilioApi.CreateMessageParams{}
	params.SetTo(to)
	params.SetFrom(c.from)
	params.SetBody(strings.Join(lines, "\n"))
	if len(media) > 0 {
		params.SetMediaUrl(media)
	}

	resp, err := c.client.Api.CreateMessage(params)
	if err != nil {
		return fmt.Errorf("send sms: %w", err)
	}

	if resp.ErrorMessage != nil && *resp.ErrorMessage != "" {
		return fmt.Errorf("twilio error: %s", *resp.ErrorMessage)
	}

	return nil
}
