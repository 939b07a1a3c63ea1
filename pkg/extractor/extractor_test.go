package extractor_test

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/adrianliechti/toolify/pkg/errdefs"
	"github.com/adrianliechti/toolify/pkg/extractor"

	"github.com/stretchr/testify/require"
)

type slowProvider struct{}

func (slowProvider) Extract(ctx context.Context, file extractor.File, options *extractor.ExtractOptions) (*extractor.Document, error) {
	<-ctx.Done()
	return nil, ctx.Err()
}

func TestWithTimeout(t *testing.T) {
	p := extractor.WithTimeout(slowProvider{}, 10*time.Millisecond)

	_, err := p.Extract(context.Background(), extractor.File{}, nil)

	require.True(t, errors.Is(err, errdefs.ErrExtraction))
	require.True(t, errors.Is(err, context.DeadlineExceeded))
}

func TestWithTimeoutDisabled(t *testing.T) {
	p := slowProvider{}
	require.Equal(t, extractor.Provider(p), extractor.WithTimeout(p, 0))
}
