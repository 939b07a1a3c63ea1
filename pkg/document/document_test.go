package document_test

import (
	"errors"
	"testing"

	"github.com/adrianliechti/toolify/pkg/document"
	"github.com/adrianliechti/toolify/pkg/errdefs"

	"github.com/stretchr/testify/require"
)

func TestParse(t *testing.T) {
	doc, err := document.Parse("data:application/pdf;base64,JVBERi0xLjQ=")
	require.NoError(t, err)

	require.Equal(t, "application/pdf", doc.ContentType)
	require.Equal(t, []byte("%PDF-1.4"), doc.Data)
	require.True(t, doc.IsPDF())
	require.False(t, doc.IsImage())

	parsed, err := document.Parse(doc.String())
	require.NoError(t, err)
	require.Equal(t, doc, parsed)
}

func TestParseInvalid(t *testing.T) {
	for _, input := range []string{
		"",
		"JVBERi0xLjQ=",
		"data:application/pdf,plain",
		"data:application/pdf;base64,%%%",
		"data:application/pdf;base64,",
	} {
		_, err := document.Parse(input)
		require.Error(t, err, input)
		require.True(t, errors.Is(err, errdefs.ErrDecode), input)
	}
}

func TestFile(t *testing.T) {
	doc := document.New("image/png", []byte{1, 2, 3})
	file := doc.File("scan.png")

	require.Equal(t, "scan.png", file.Name)
	require.True(t, file.IsImage())
	require.Equal(t, "data:image/png;base64,AQID", file.DataURL())
}
