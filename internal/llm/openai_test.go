package llm

import (
	"context"
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/openai/openai-go/option"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"article_pipeline/internal/domain"
)

func TestOpenAI_Complete(t *testing.T) {
	var got map[string]any
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if !strings.HasSuffix(r.URL.Path, "/chat/completions") {
			http.NotFound(w, r)
			return
		}
		body, _ := io.ReadAll(r.Body)
		_ = json.Unmarshal(body, &got)

		w.Header().Set("Content-Type", "application/json")
		_, _ = io.WriteString(w, `{
			"id": "chatcmpl-1",
			"object": "chat.completion",
			"created": 1,
			"model": "test-model",
			"choices": [{"index": 0, "finish_reason": "stop", "message": {"role": "assistant", "content": "hello"}}]
		}`)
	}))
	defer srv.Close()

	client := NewOpenAI(Settings{APIKey: "sk-test", Model: "test-model", BaseURL: srv.URL + "/v1/", Temperature: 0.3},
		option.WithMaxRetries(0))

	out, err := client.Complete(context.Background(), Request{Messages: Prompt("be terse", "say hi")})
	require.NoError(t, err)

	assert.Equal(t, "hello", out)
	assert.Equal(t, "test-model", got["model"])
	assert.InDelta(t, 0.3, got["temperature"], 0.0001)
	msgs, _ := got["messages"].([]any)
	assert.Len(t, msgs, 2)
}

func TestOpenAI_EmptyChoices(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		_, _ = io.WriteString(w, `{"id":"x","object":"chat.completion","created":1,"model":"m","choices":[]}`)
	}))
	defer srv.Close()

	client := NewOpenAI(Settings{APIKey: "sk-test", Model: "m", BaseURL: srv.URL + "/v1/"}, option.WithMaxRetries(0))

	_, err := client.Complete(context.Background(), Request{Messages: Prompt("s", "u")})
	assert.ErrorContains(t, err, "empty choices")
}

func TestNew_RequiresCredentials(t *testing.T) {
	_, err := New(context.Background(), Settings{Provider: "openai", Model: "m"})
	assert.ErrorIs(t, err, domain.ErrConfiguration)

	_, err = New(context.Background(), Settings{Provider: "other", Model: "m", APIKey: "k"})
	assert.ErrorIs(t, err, domain.ErrConfiguration)

	c, err := New(context.Background(), Settings{Provider: "openai", Model: "m", APIKey: "k"})
	require.NoError(t, err)
	assert.IsType(t, &OpenAI{}, c)
}
