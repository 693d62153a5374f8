// Package dispatch builds the outbound message and pushes it through the
// configured delivery channel, exactly once per attempt. Retry policy
// lives in the job store, never here.
package dispatch

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/medremind/appointment-notifier/internal/model"
	"github.com/medremind/appointment-notifier/internal/rabbitmq/queue"
)

// Pusher delivers one ordered segment sequence to a channel identity.
type Pusher interface {
	Push(ctx context.Context, to string, segments []model.MessageSegment) error
}

// Result is the outcome of a single dispatch attempt.
type Result struct {
	Delivered bool
	Reason    string
}

type Dispatcher struct {
	pushers map[string]Pusher
	timeout time.Duration
}

// NewDispatcher creates a dispatcher over a channel registry, e.g.
// {"line": lineClient, "sms": smsClient}.
func NewDispatcher(pushers map[string]Pusher, timeout time.Duration) *Dispatcher {
	return &Dispatcher{pushers: pushers, timeout: timeout}
}

// BuildSegments assembles the ordered message: the rendered body first,
// then one segment per attachment. Images ride inline, documents become a
// formatted link line.
func BuildSegments(body string, attachments []model.AttachmentRef) []model.MessageSegment {
	segments := []model.MessageSegment{{Kind: model.SegmentText, Text: body}}

	for _, att := range attachments {
		if att.Media == model.MediaImage {
			segments = append(segments, model.MessageSegment{Kind: model.SegmentImage, URL: att.PublicURL})
			continue
		}

		segments = append(segments, model.MessageSegment{
			Kind: model.SegmentText,
			Text: fmt.Sprintf("เอกสารแนบ %s: %s", att.FileName, att.PublicURL),
		})
	}

	return segments
}

// Dispatch pushes the job's message with its attachments. The channel is
// invoked exactly once; transport failures and timeouts come back as a
// failed result for the caller to record.
func (d *Dispatcher) Dispatch(ctx context.Context, msg queue.DispatchMessage, attachments []model.AttachmentRef) Result {
	pusher, ok := d.pushers[msg.Channel]
	if !ok {
		return Result{Reason: fmt.Sprintf("unknown channel %q", msg.Channel)}
	}

	ctx, cancel := context.WithTimeout(ctx, d.timeout)
	defer cancel()

	if err := pusher.Push(ctx, msg.ChannelID, BuildSegments(msg.Message, attachments)); err != nil {
		if errors.Is(err, context.DeadlineExceeded) {
			return Result{Reason: "timeout"}
		}

		return Result{Reason: err.Error()}
	}

	return Result{Delivered: true}
}
