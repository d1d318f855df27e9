package httpclient

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestResponse_IsSuccess(t *testing.T) {
	tests := []struct {
		status   int
		expected bool
	}{
		{200, true},
		{201, true},
		{204, true},
		{299, true},
		{300, false},
		{404, false},
		{500, false},
	}

	for _, tt := range tests {
		resp := &Response{Status: tt.status}
		assert.Equal(t, tt.expected, resp.IsSuccess(), "status: %d", tt.status)
	}
}

func TestResponse_IsJSON(t *testing.T) {
	tests := []struct {
		contentType string
		expected    bool
	}{
		{"application/json", true},
		{"application/json; charset=utf-8", true},
		{"text/html", false},
		{"text/plain", false},
	}

	for _, tt := range tests {
		resp := &Response{ContentType: tt.contentType}
		assert.Equal(t, tt.expected, resp.IsJSON(), "content type: %s", tt.contentType)
	}
}

func TestResponse_HeaderIsCaseInsensitive(t *testing.T) {
	resp := &Response{Headers: map[string]string{"Content-Type": "application/json"}}

	assert.Equal(t, "application/json", resp.Header("content-type"))
	assert.Equal(t, "application/json", resp.Header("CONTENT-TYPE"))
	assert.Equal(t, "", resp.Header("X-Missing"))
}

func TestResponse_Field(t *testing.T) {
	resp := &Response{Body: `{"user":{"id":7,"tags":["a","b"]}}`}

	id, ok := resp.Field("user.id")
	require.True(t, ok)
	assert.Equal(t, float64(7), id)

	tag, ok := resp.Field("user.tags.1")
	require.True(t, ok)
	assert.Equal(t, "b", tag)

	_, ok = resp.Field("user.missing")
	assert.False(t, ok)
}

func TestResponse_DecodeJSON(t *testing.T) {
	resp := &Response{Body: `{"id": 1, "title": "hello"}`}

	var post struct {
		ID    int    `json:"id"`
		Title string `json:"title"`
	}
	require.NoError(t, resp.DecodeJSON(&post))
	assert.Equal(t, 1, post.ID)
	assert.Equal(t, "hello", post.Title)
}

func TestNewStats(t *testing.T) {
	resp := &Response{Status: 201, Body: "12345", ResponseTimeMs: 42}

	stats := NewStats("POST", "https://example.com/posts", resp)

	assert.Equal(t, "POST", stats.Method)
	assert.Equal(t, "https://example.com/posts", stats.URL)
	assert.Equal(t, 201, stats.StatusCode)
	assert.Equal(t, int64(42), stats.ResponseTimeMs)
	assert.Equal(t, 5, stats.ResponseSize)
	assert.WithinDuration(t, time.Now(), stats.Timestamp, time.Minute)
}
