package removebg_test

import (
	"context"
	"errors"
	"io"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/adrianliechti/toolify/pkg/errdefs"
	"github.com/adrianliechti/toolify/pkg/segmenter"
	"github.com/adrianliechti/toolify/pkg/segmenter/removebg"

	"github.com/stretchr/testify/require"
)

func TestSegment(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		require.Equal(t, "/v1.0/removebg", r.URL.Path)
		require.Equal(t, "test-key", r.Header.Get("X-Api-Key"))

		require.NoError(t, r.ParseMultipartForm(1<<20))
		require.Equal(t, "auto", r.FormValue("size"))

		f, _, err := r.FormFile("image_file")
		require.NoError(t, err)

		data, _ := io.ReadAll(f)
		require.Equal(t, []byte("input"), data)

		w.Header().Set("Content-Type", "image/png")
		w.Write([]byte("output"))
	}))
	defer server.Close()

	c, err := removebg.New(server.URL+"/v1.0/", removebg.WithToken("test-key"))
	require.NoError(t, err)

	result, err := c.Segment(context.Background(), segmenter.File{
		Name:        "photo.jpg",
		Content:     []byte("input"),
		ContentType: "image/jpeg",
	}, nil)

	require.NoError(t, err)
	require.Equal(t, "image/png", result.ContentType)
	require.Equal(t, []byte("output"), result.Content)
}

func TestSegmentUpstreamError(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		http.Error(w, `{"errors":[{"title":"Insufficient credits"}]}`, http.StatusPaymentRequired)
	}))
	defer server.Close()

	c, err := removebg.New(server.URL)
	require.NoError(t, err)

	_, err = c.Segment(context.Background(), segmenter.File{Content: []byte("input")}, nil)
	require.True(t, errors.Is(err, errdefs.ErrGeneration))
	require.ErrorContains(t, err, "402")
}
