package replicate

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestOutputURL(t *testing.T) {
	tests := []struct {
		output any
		url    string
	}{
		{"https://example.com/a.png", "https://example.com/a.png"},
		{[]any{"https://example.com/b.png"}, "https://example.com/b.png"},
		{map[string]any{"image": "https://example.com/c.png"}, "https://example.com/c.png"},
	}

	for _, tt := range tests {
		url, err := outputURL(tt.output)
		require.NoError(t, err)
		require.Equal(t, tt.url, url)
	}

	_, err := outputURL(nil)
	require.Error(t, err)

	_, err = outputURL([]any{})
	require.Error(t, err)
}

func TestDownload(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "image/png")
		w.Write([]byte("png-bytes"))
	}))
	defer server.Close()

	c, err := New("", "cjwbw/rembg", WithToken("test-token"))
	require.NoError(t, err)

	file, err := c.download(context.Background(), server.URL+"/out/result.png")
	require.NoError(t, err)

	require.Equal(t, "result.png", file.Name)
	require.Equal(t, "image/png", file.ContentType)
	require.Equal(t, []byte("png-bytes"), file.Content)
}
