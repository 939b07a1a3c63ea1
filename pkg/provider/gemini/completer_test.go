package gemini_test

import (
	"context"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/adrianliechti/toolify/pkg/provider"
	"github.com/adrianliechti/toolify/pkg/provider/gemini"

	"github.com/stretchr/testify/require"
)

func TestComplete(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		require.True(t, strings.HasSuffix(r.URL.Path, "/models/gemini-test:generateContent"), r.URL.Path)

		w.Header().Set("Content-Type", "application/json")
		w.Write([]byte(`{
			"responseId": "resp-1",
			"candidates": [{
				"content": {"role": "model", "parts": [{"text": "bar"}]},
				"finishReason": "STOP"
			}],
			"usageMetadata": {"promptTokenCount": 7, "candidatesTokenCount": 1}
		}`))
	}))
	defer server.Close()

	c, err := gemini.NewCompleter(server.URL, "gemini-test", gemini.WithToken("test-key"))
	require.NoError(t, err)

	result, err := c.Complete(context.Background(), []provider.Message{
		provider.SystemMessage("Rewrite the text."),
		provider.UserMessage("foo"),
	}, nil)

	require.NoError(t, err)
	require.Equal(t, "bar", result.Text())
	require.Equal(t, provider.CompletionReasonStop, result.Reason)
	require.Equal(t, 7, result.Usage.InputTokens)
}
