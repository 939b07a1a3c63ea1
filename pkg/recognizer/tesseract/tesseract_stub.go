//go:build !ocr

package tesseract

import (
	"context"
	"errors"
	"image"

	"github.com/adrianliechti/toolify/pkg/recognizer"
)

var _ recognizer.Engine = (*Engine)(nil)

// ErrNotEnabled is returned when Tesseract support was not compiled in.
// Rebuild with -tags ocr to enable it.
var ErrNotEnabled = errors.New("tesseract support not enabled; rebuild with -tags ocr")

type Engine struct{}

func New(ctx context.Context, options ...Option) (*Engine, error) {
	return nil, ErrNotEnabled
}

func (e *Engine) Recognize(ctx context.Context, img image.Image, language string) (string, error) {
	return "", ErrNotEnabled
}

func (e *Engine) Close() error {
	return nil
}

func Enabled() bool {
	return false
}
