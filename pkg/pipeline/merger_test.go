package pipeline_test

import (
	"context"
	"errors"
	"testing"

	"github.com/adrianliechti/toolify/pkg/document"
	"github.com/adrianliechti/toolify/pkg/docx"
	"github.com/adrianliechti/toolify/pkg/errdefs"
	"github.com/adrianliechti/toolify/pkg/extractor"
	"github.com/adrianliechti/toolify/pkg/pipeline"

	"github.com/stretchr/testify/require"
)

// fakeExtractor answers with the document payload itself; payloads starting
// with "fail" produce an extraction error.
type fakeExtractor struct {
	calls []string
}

func (f *fakeExtractor) Extract(ctx context.Context, file extractor.File, options *extractor.ExtractOptions) (*extractor.Document, error) {
	text := string(file.Content)
	f.calls = append(f.calls, text)

	if len(text) >= 4 && text[:4] == "fail" {
		return nil, errdefs.ErrExtraction
	}

	return &extractor.Document{Text: text}, nil
}

func pdfs(texts ...string) []document.Document {
	var docs []document.Document

	for _, t := range texts {
		docs = append(docs, document.New(document.ContentTypePDF, []byte(t)))
	}

	return docs
}

func TestMerge(t *testing.T) {
	e := &fakeExtractor{}
	m := pipeline.NewMerger(e)

	result, err := m.Merge(context.Background(), pdfs("foo", "bar"))
	require.NoError(t, err)

	require.Equal(t, "foo\n\n---\n\nbar\n\n---\n\n", result.Text)
	require.Equal(t, 2, result.Sources)
	require.Empty(t, result.Skipped)

	require.Equal(t, document.ContentTypeDOCX, result.Document.ContentType)
	require.NotEmpty(t, result.Document.Data)

	paragraphs, err := docx.Paragraphs(result.Document.Data)
	require.NoError(t, err)
	require.Equal(t, docx.Lines(result.Text), paragraphs)
}

func TestMergePreservesOrder(t *testing.T) {
	e := &fakeExtractor{}
	m := pipeline.NewMerger(e)

	text, _, err := m.Text(context.Background(), pdfs("c", "a", "b"))
	require.NoError(t, err)

	require.Equal(t, []string{"c", "a", "b"}, e.calls)
	require.Equal(t, "c"+pipeline.Separator+"a"+pipeline.Separator+"b"+pipeline.Separator, text)
}

func TestMergeSingleSource(t *testing.T) {
	m := pipeline.NewMerger(&fakeExtractor{})

	result, err := m.Merge(context.Background(), pdfs("only"))
	require.NoError(t, err)
	require.Equal(t, "only"+pipeline.Separator, result.Text)
}

func TestMergeSkipsFailedSources(t *testing.T) {
	m := pipeline.NewMerger(&fakeExtractor{}, pipeline.WithPolicy(pipeline.Skip))

	result, err := m.Merge(context.Background(), pdfs("fail-1", "bar", "fail-2"))
	require.NoError(t, err)

	require.Equal(t, "bar"+pipeline.Separator, result.Text)
	require.Equal(t, 1, result.Sources)
	require.Equal(t, []int{0, 2}, result.Skipped)
}

func TestMergeAllFail(t *testing.T) {
	m := pipeline.NewMerger(&fakeExtractor{})

	result, err := m.Merge(context.Background(), pdfs("fail-1", "fail-2"))
	require.Nil(t, result)
	require.True(t, errors.Is(err, errdefs.ErrNoContent))
}

func TestMergeAbort(t *testing.T) {
	e := &fakeExtractor{}
	m := pipeline.NewMerger(e, pipeline.WithPolicy(pipeline.Abort))

	_, err := m.Merge(context.Background(), pdfs("foo", "fail", "bar"))
	require.True(t, errors.Is(err, errdefs.ErrExtraction))
	require.Equal(t, []string{"foo", "fail"}, e.calls)
}
