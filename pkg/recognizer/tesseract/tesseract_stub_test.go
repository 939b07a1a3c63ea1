//go:build !ocr

package tesseract_test

import (
	"context"
	"errors"
	"testing"

	"github.com/adrianliechti/toolify/pkg/recognizer/tesseract"

	"github.com/stretchr/testify/require"
)

func TestFactoryNotEnabled(t *testing.T) {
	require.False(t, tesseract.Enabled())

	_, err := tesseract.Factory()(context.Background())
	require.True(t, errors.Is(err, tesseract.ErrNotEnabled))
}
