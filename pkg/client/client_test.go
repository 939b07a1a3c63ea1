package client_test

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/adrianliechti/toolify/pkg/client"

	"github.com/stretchr/testify/require"
)

func TestParaphrase(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		require.Equal(t, "/v1/paraphrase", r.URL.Path)
		require.Equal(t, "req-1", r.Header.Get("X-Request-Id"))

		var body map[string]string
		require.NoError(t, json.NewDecoder(r.Body).Decode(&body))
		require.Equal(t, "hello", body["text"])
		require.Equal(t, "formal", body["style"])

		w.Header().Set("Content-Type", "application/json")
		w.Write([]byte(`{"success":true,"data":"Greetings"}`))
	}))

	defer server.Close()

	c := client.New(server.URL + "/")

	result, err := c.Paraphrases.New(t.Context(), client.ParaphraseRequest{Text: "hello", Style: "formal"}, client.WithRequestID("req-1"))
	require.NoError(t, err)
	require.Equal(t, "Greetings", result)
}

func TestMerge(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		require.Equal(t, "/v1/merge", r.URL.Path)

		var body map[string][]string
		require.NoError(t, json.NewDecoder(r.Body).Decode(&body))
		require.Len(t, body["documents"], 2)

		w.Write([]byte(`{"success":true,"data":"data:application/vnd.openxmlformats-officedocument.wordprocessingml.document;base64,UEs="}`))
	}))

	defer server.Close()

	c := client.New(server.URL)

	result, err := c.Documents.Merge(t.Context(), []string{"a", "b"})
	require.NoError(t, err)
	require.Contains(t, result, "base64,")
}

func TestError(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusBadRequest)
		w.Write([]byte(`{"success":false,"error":"please upload a PDF file"}`))
	}))

	defer server.Close()

	c := client.New(server.URL)

	_, err := c.Documents.Convert(t.Context(), "")

	var clientErr *client.Error
	require.ErrorAs(t, err, &clientErr)
	require.Equal(t, http.StatusBadRequest, clientErr.StatusCode)
	require.Equal(t, "please upload a PDF file", clientErr.Message)
}

func TestInvalidResponse(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusBadGateway)
		w.Write([]byte("upstream down"))
	}))

	defer server.Close()

	c := client.New(server.URL)

	_, err := c.Backgrounds.Remove(t.Context(), client.BackgroundRequest{Image: "x"})

	var clientErr *client.Error
	require.ErrorAs(t, err, &clientErr)
	require.Equal(t, http.StatusBadGateway, clientErr.StatusCode)
}
