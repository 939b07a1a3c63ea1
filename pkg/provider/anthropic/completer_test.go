package anthropic_test

import (
	"context"
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/adrianliechti/toolify/pkg/provider"
	"github.com/adrianliechti/toolify/pkg/provider/anthropic"

	"github.com/stretchr/testify/require"
)

func TestComplete(t *testing.T) {
	var body map[string]any

	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		require.Equal(t, "/v1/messages", r.URL.Path)
		require.Equal(t, "test-key", r.Header.Get("X-Api-Key"))

		data, _ := io.ReadAll(r.Body)
		require.NoError(t, json.Unmarshal(data, &body))

		w.Header().Set("Content-Type", "application/json")
		w.Write([]byte(`{
			"id": "msg_1",
			"type": "message",
			"role": "assistant",
			"model": "claude-test",
			"content": [{"type": "text", "text": "foo"}],
			"stop_reason": "max_tokens",
			"usage": {"input_tokens": 20, "output_tokens": 5}
		}`))
	}))
	defer server.Close()

	c, err := anthropic.NewCompleter(server.URL, "claude-test", anthropic.WithToken("test-key"))
	require.NoError(t, err)

	file := provider.File{
		Name:        "a.pdf",
		Content:     []byte("%PDF-1.4"),
		ContentType: "application/pdf",
	}

	result, err := c.Complete(context.Background(), []provider.Message{
		provider.SystemMessage("You read documents."),
		provider.UserMessage("Extract the text.", file),
	}, nil)

	require.NoError(t, err)
	require.Equal(t, "foo", result.Text())
	require.Equal(t, provider.CompletionReasonLength, result.Reason)
	require.Equal(t, 20, result.Usage.InputTokens)

	require.Equal(t, "claude-test", body["model"])
	require.EqualValues(t, 8192, body["max_tokens"])

	system := body["system"].([]any)
	require.Equal(t, "You read documents.", system[0].(map[string]any)["text"])

	messages := body["messages"].([]any)
	require.Len(t, messages, 1)

	blocks := messages[0].(map[string]any)["content"].([]any)
	require.Len(t, blocks, 2)
	require.Equal(t, "document", blocks[0].(map[string]any)["type"])
	require.Equal(t, "text", blocks[1].(map[string]any)["type"])
}
