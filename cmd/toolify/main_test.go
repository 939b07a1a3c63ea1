package main

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"os"
	"path/filepath"
	"testing"

	"github.com/adrianliechti/toolify/pkg/docx"

	"github.com/stretchr/testify/require"
)

func execute(t *testing.T, args ...string) (string, error) {
	t.Helper()

	var out bytes.Buffer

	cmd := newRootCommand()
	cmd.SetOut(&out)
	cmd.SetErr(&out)
	cmd.SetArgs(args)

	err := cmd.ExecuteContext(t.Context())

	return out.String(), err
}

func TestInspect(t *testing.T) {
	data, err := docx.Encode("Hello\nWorld")
	require.NoError(t, err)

	path := filepath.Join(t.TempDir(), "hello.docx")
	require.NoError(t, os.WriteFile(path, data, 0o600))

	out, err := execute(t, "inspect", path)
	require.NoError(t, err)
	require.Equal(t, "1\tHello\n2\tWorld\n", out)
}

func TestConvertRemote(t *testing.T) {
	encoded, err := docx.EncodeDocument("converted")
	require.NoError(t, err)

	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		require.Equal(t, "/v1/convert", r.URL.Path)

		var body map[string]string
		require.NoError(t, json.NewDecoder(r.Body).Decode(&body))
		require.Contains(t, body["document"], "data:application/pdf;base64,")

		json.NewEncoder(w).Encode(map[string]any{
			"success": true,
			"data":    encoded.String(),
		})
	}))

	defer server.Close()

	dir := t.TempDir()

	input := filepath.Join(dir, "report.pdf")
	require.NoError(t, os.WriteFile(input, []byte("%PDF-1.4\n%test\n"), 0o600))

	_, err = execute(t, "convert", input, "--url", server.URL)
	require.NoError(t, err)

	data, err := os.ReadFile(filepath.Join(dir, "report.docx"))
	require.NoError(t, err)

	paragraphs, err := docx.Paragraphs(data)
	require.NoError(t, err)
	require.Equal(t, []string{"converted"}, paragraphs)
}

func TestParaphraseRemoteError(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusBadRequest)
		w.Write([]byte(`{"success":false,"error":"please enter some text to paraphrase"}`))
	}))

	defer server.Close()

	_, err := execute(t, "paraphrase", " ", "--url", server.URL)
	require.ErrorContains(t, err, "please enter some text to paraphrase")
}

func TestMergeArgs(t *testing.T) {
	_, err := execute(t, "merge", "only-one.pdf")
	require.Error(t, err)
}
