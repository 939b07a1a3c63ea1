package tabula_test

import (
	"context"
	"errors"
	"testing"

	"github.com/adrianliechti/toolify/pkg/errdefs"
	"github.com/adrianliechti/toolify/pkg/extractor"
	"github.com/adrianliechti/toolify/pkg/extractor/tabula"

	"github.com/stretchr/testify/require"
)

func TestExtractRejects(t *testing.T) {
	e, err := tabula.New()
	require.NoError(t, err)

	for _, file := range []extractor.File{
		{ContentType: "image/png", Content: []byte{0x89}},
		{ContentType: "application/pdf", Content: []byte("not a pdf")},
	} {
		_, err := e.Extract(context.Background(), file, nil)
		require.True(t, errors.Is(err, errdefs.ErrExtraction), file.ContentType)
	}
}
