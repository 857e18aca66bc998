package llm

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestServer(t *testing.T, status int, body string, inspect func(r *http.Request)) *httptest.Server {
	t.Helper()
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if inspect != nil {
			inspect(r)
		}
		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(status)
		_, _ = w.Write([]byte(body))
	}))
	t.Cleanup(server.Close)
	return server
}

func TestClient_Complete_Success(t *testing.T) {
	var got chatRequest
	server := newTestServer(t, http.StatusOK, `{
		"model": "grok-beta",
		"choices": [{"message": {"role": "assistant", "content": "Hello from grok"}}],
		"usage": {"prompt_tokens": 12, "completion_tokens": 4}
	}`, func(r *http.Request) {
		assert.Equal(t, http.MethodPost, r.Method)
		assert.Equal(t, "/chat/completions", r.URL.Path)
		assert.Equal(t, "Bearer test-key", r.Header.Get("Authorization"))
		require.NoError(t, json.NewDecoder(r.Body).Decode(&got))
	})

	client := NewClient(Config{APIKey: "test-key", BaseURL: server.URL}, nil)

	reply, err := client.Complete(context.Background(), "", "hi there")
	require.NoError(t, err)
	assert.Equal(t, "Hello from grok", reply)

	assert.Equal(t, DefaultModel, got.Model)
	require.Len(t, got.Messages, 1)
	assert.Equal(t, "user", got.Messages[0].Role)
	assert.Equal(t, "hi there", got.Messages[0].Content)
}

func TestClient_Complete_WithSystemPrompt(t *testing.T) {
	var got chatRequest
	server := newTestServer(t, http.StatusOK, `{"choices":[{"message":{"content":"ok"}}]}`, func(r *http.Request) {
		require.NoError(t, json.NewDecoder(r.Body).Decode(&got))
	})

	client := NewClient(Config{APIKey: "k", BaseURL: server.URL + "/", Model: "grok-2"}, nil)
	_, err := client.Complete(context.Background(), "be concise", "question")
	require.NoError(t, err)

	assert.Equal(t, "grok-2", got.Model)
	require.Len(t, got.Messages, 2)
	assert.Equal(t, "system", got.Messages[0].Role)
	assert.Equal(t, "be concise", got.Messages[0].Content)
}

func TestClient_Complete_MissingAPIKey(t *testing.T) {
	called := false
	server := newTestServer(t, http.StatusOK, `{}`, func(r *http.Request) { called = true })

	client := NewClient(Config{BaseURL: server.URL}, nil)
	assert.False(t, client.Configured())

	_, err := client.Complete(context.Background(), "", "hello")
	require.ErrorIs(t, err, ErrMissingAPIKey)
	assert.False(t, called, "no request should be sent without a key")
}

func TestClient_Complete_Failures(t *testing.T) {
	tests := []struct {
		name   string
		status int
		body   string
	}{
		{name: "server error", status: http.StatusInternalServerError, body: `{"error":{"message":"boom"}}`},
		{name: "rate limited is not retried", status: http.StatusTooManyRequests, body: `slow down`},
		{name: "provider error in body", status: http.StatusOK, body: `{"error":{"message":"model not found"}}`},
		{name: "no choices", status: http.StatusOK, body: `{"choices":[]}`},
		{name: "invalid json", status: http.StatusOK, body: `not json`},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			attempts := 0
			server := newTestServer(t, tt.status, tt.body, func(r *http.Request) { attempts++ })

			client := NewClient(Config{APIKey: "k", BaseURL: server.URL}, nil)
			_, err := client.Complete(context.Background(), "", "hello")

			require.ErrorIs(t, err, ErrRequestFailed)
			assert.Equal(t, 1, attempts)
		})
	}
}

func TestClient_Complete_Unreachable(t *testing.T) {
	server := httptest.NewServer(http.NotFoundHandler())
	url := server.URL
	server.Close()

	client := NewClient(Config{APIKey: "k", BaseURL: url}, nil)
	_, err := client.Complete(context.Background(), "", "hello")
	require.ErrorIs(t, err, ErrRequestFailed)
}

func TestNewClient_Defaults(t *testing.T) {
	client := NewClient(Config{APIKey: "k"}, nil)
	assert.Equal(t, DefaultModel, client.Model())
	assert.Equal(t, DefaultBaseURL, client.baseURL)
	assert.Equal(t, defaultTimeout, client.httpClient.Timeout)
}
