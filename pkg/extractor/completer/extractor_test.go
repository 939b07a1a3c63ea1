package completer_test

import (
	"context"
	"errors"
	"testing"

	"github.com/adrianliechti/toolify/pkg/errdefs"
	"github.com/adrianliechti/toolify/pkg/extractor"
	"github.com/adrianliechti/toolify/pkg/extractor/completer"
	"github.com/adrianliechti/toolify/pkg/provider"

	"github.com/stretchr/testify/require"
)

type fakeCompleter struct {
	text string
	err  error

	messages []provider.Message
}

func (f *fakeCompleter) Complete(ctx context.Context, messages []provider.Message, options *provider.CompleteOptions) (*provider.Completion, error) {
	f.messages = messages

	if f.err != nil {
		return nil, f.err
	}

	return &provider.Completion{
		Message: &provider.Message{
			Role:    provider.MessageRoleAssistant,
			Content: provider.MessageContent{provider.TextContent(f.text)},
		},
	}, nil
}

var pdf = extractor.File{
	Name:        "a.pdf",
	Content:     []byte("%PDF-1.4"),
	ContentType: "application/pdf",
}

func TestExtract(t *testing.T) {
	c := &fakeCompleter{text: "  foo\nbar \n"}

	e, err := completer.New(c)
	require.NoError(t, err)

	doc, err := e.Extract(context.Background(), pdf, &extractor.ExtractOptions{Language: "deu"})
	require.NoError(t, err)
	require.Equal(t, "foo\nbar", doc.Text)

	require.Len(t, c.messages, 2)
	require.Equal(t, provider.MessageRoleSystem, c.messages[0].Role)
	require.Contains(t, c.messages[0].Content.String(), "deu")

	files := c.messages[1].Content.Files()
	require.Len(t, files, 1)
	require.Equal(t, "application/pdf", files[0].ContentType)
}

func TestExtractPlainText(t *testing.T) {
	c := &fakeCompleter{text: "# Title\n\nSome **bold** text.\n\n- one\n- two"}

	e, err := completer.New(c, completer.WithPlainText())
	require.NoError(t, err)

	doc, err := e.Extract(context.Background(), pdf, nil)
	require.NoError(t, err)
	require.Equal(t, "Title\nSome bold text.\none\ntwo", doc.Text)
}

func TestExtractErrors(t *testing.T) {
	tests := []struct {
		name      string
		completer *fakeCompleter
		file      extractor.File
	}{
		{"upstream failure", &fakeCompleter{err: errors.New("boom")}, pdf},
		{"empty output", &fakeCompleter{text: "   "}, pdf},
		{"unsupported type", &fakeCompleter{text: "x"}, extractor.File{ContentType: "text/csv"}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			e, err := completer.New(tt.completer)
			require.NoError(t, err)

			_, err = e.Extract(context.Background(), tt.file, nil)
			require.True(t, errors.Is(err, errdefs.ErrExtraction))
		})
	}
}

func TestFlatten(t *testing.T) {
	require.Equal(t, "plain", completer.Flatten("plain"))
	require.Equal(t, "line one\nline two", completer.Flatten("line one\nline two"))
	require.Equal(t, "code\nblock", completer.Flatten("```\ncode\nblock\n```"))
	require.Equal(t, "a\n---\nb", completer.Flatten("a\n\n---\n\nb"))
}
