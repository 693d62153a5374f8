package line

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/medremind/appointment-notifier/internal/model"
)

func TestPush(t *testing.T) {
	var got pushRequest
	var auth string

	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		require.Equal(t, http.MethodPost, r.Method)
		require.Equal(t, "/v2/bot/message/push", r.URL.Path)
		auth = r.Header.Get("Authorization")
		require.NoError(t, json.NewDecoder(r.Body).Decode(&got))
		w.WriteHeader(http.StatusOK)
	}))
	defer srv.Close()

	c := NewClient("token-123", time.Second)
	c.baseURL = srv.URL

	segments := []model.MessageSegment{
		{Kind: model.SegmentText, Text: "วันนี้คุณมีนัดหมาย"},
		{Kind: model.SegmentImage, URL: "https://files.example.com/scan.png"},
		{Kind: model.SegmentText, Text: "เอกสารแนบ note.pdf: https://files.example.com/note.pdf"},
	}

	err := c.Push(context.Background(), "U123", segments)
	require.NoError(t, err)

	assert.Equal(t, "Bearer token-123", auth)
	assert.Equal(t, "U123", got.To)
	require.Len(t, got.Messages, 3)
	assert.Equal(t, "text", got.Messages[0].Type)
	assert.Equal(t, "image", got.Messages[1].Type)
	assert.Equal(t, "https://files.example.com/scan.png", got.Messages[1].OriginalContentURL)
	assert.Equal(t, "https://files.example.com/scan.png", got.Messages[1].PreviewImageURL)
	assert.Equal(t, "text", got.Messages[2].Type)
}

func TestPush_APIError(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		w.WriteHeader(http.StatusTooManyRequests)
	}))
	defer srv.Close()

	c := NewClient("token-123", time.Second)
	c.baseURL = srv.URL

	err := c.Push(context.Background(), "U123", []model.MessageSegment{{Kind: model.SegmentText, Text: "hi"}})
	require.Error(t, err)
	assert.Contains(t, err.Error(), "line API error")
}

func TestPush_ContextCancelled(t *testing.T) {
	// outlast the client deadline, then return so Close does not hang
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		time.Sleep(200 * time.Millisecond)
	}))
	defer srv.Close()

	c := NewClient("token-123", time.Second)
	c.baseURL = srv.URL

	ctx, cancel := context.WithTimeout(context.Background(), 20*time.Millisecond)
	defer cancel()

	err := c.Push(ctx, "U123", []model.MessageSegment{{Kind: model.SegmentText, Text: "hi"}})
	assert.Error(t, err)
}
