package docx_test

import (
	"archive/zip"
	"bytes"
	"errors"
	"io"
	"testing"

	"github.com/adrianliechti/toolify/pkg/document"
	"github.com/adrianliechti/toolify/pkg/docx"
	"github.com/adrianliechti/toolify/pkg/errdefs"

	"github.com/stretchr/testify/require"
)

func TestEncodeHelloWorld(t *testing.T) {
	data, err := docx.Encode("Hello\nWorld")
	require.NoError(t, err)
	require.NotEmpty(t, data)

	paragraphs, err := docx.Paragraphs(data)
	require.NoError(t, err)
	require.Equal(t, []string{"Hello", "World"}, paragraphs)
}

func TestEncodeRoundTrip(t *testing.T) {
	for _, text := range []string{
		"single line",
		"foo\n\n---\n\nbar\n\n---\n\n",
		"  leading spaces\ttabs\nand <markup> & \"quotes\"",
		"windows\r\nline endings",
	} {
		data, err := docx.Encode(text)
		require.NoError(t, err)

		paragraphs, err := docx.Paragraphs(data)
		require.NoError(t, err)
		require.Equal(t, docx.Lines(text), paragraphs, text)
	}
}

func TestEncodeStructurallyIdempotent(t *testing.T) {
	a, err := docx.Encode("one\ntwo\nthree")
	require.NoError(t, err)

	b, err := docx.Encode("one\ntwo\nthree")
	require.NoError(t, err)

	require.Equal(t, part(t, a, "word/document.xml"), part(t, b, "word/document.xml"))
}

func TestEncodePackageParts(t *testing.T) {
	data, err := docx.Encode("\tindented\n\nafter blank")
	require.NoError(t, err)

	require.NotEmpty(t, part(t, data, "[Content_Types].xml"))
	require.NotEmpty(t, part(t, data, "word/styles.xml"))

	body := string(part(t, data, "word/document.xml"))
	require.Contains(t, body, `xml:space="preserve"`)
	require.Contains(t, body, "w:sectPr")

	paragraphs, err := docx.Paragraphs(data)
	require.NoError(t, err)
	require.Equal(t, []string{"\tindented", "", "after blank"}, paragraphs)
}

func TestEncodeDocument(t *testing.T) {
	doc, err := docx.EncodeDocument("Hello")
	require.NoError(t, err)

	require.Equal(t, document.ContentTypeDOCX, doc.ContentType)

	parsed, err := document.Parse(doc.String())
	require.NoError(t, err)
	require.Equal(t, doc.Data, parsed.Data)
}

func TestParagraphsInvalid(t *testing.T) {
	_, err := docx.Paragraphs([]byte("not a zip"))
	require.True(t, errors.Is(err, errdefs.ErrDecode))
}

func part(t *testing.T, data []byte, name string) []byte {
	t.Helper()

	r, err := zip.NewReader(bytes.NewReader(data), int64(len(data)))
	require.NoError(t, err)

	f, err := r.Open(name)
	require.NoError(t, err)
	defer f.Close()

	content, err := io.ReadAll(f)
	require.NoError(t, err)

	return content
}
