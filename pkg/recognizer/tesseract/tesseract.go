//go:build ocr

package tesseract

import (
	"bytes"
	"context"
	"fmt"
	"image"
	"image/png"
	"strconv"

	"github.com/adrianliechti/toolify/pkg/recognizer"

	"github.com/otiai10/gosseract/v2"
)

var _ recognizer.Engine = (*Engine)(nil)

// Engine wraps one Tesseract API instance. Recognition runs with a single
// uniform text block layout and keeps interword spacing.
type Engine struct {
	client *gosseract.Client

	dpi int
}

func New(ctx context.Context, options ...Option) (*Engine, error) {
	cfg := &Config{
		dpi: DefaultDPI,
	}

	for _, option := range options {
		option(cfg)
	}

	if err := ctx.Err(); err != nil {
		return nil, err
	}

	client := gosseract.NewClient()

	if cfg.tessdata != "" {
		if err := client.SetTessdataPrefix(cfg.tessdata); err != nil {
			client.Close()
			return nil, fmt.Errorf("set tessdata prefix: %w", err)
		}
	}

	return &Engine{
		client: client,
		dpi:    cfg.dpi,
	}, nil
}

func (e *Engine) Recognize(ctx context.Context, img image.Image, language string) (string, error) {
	if err := ctx.Err(); err != nil {
		return "", err
	}

	var buf bytes.Buffer

	if err := png.Encode(&buf, img); err != nil {
		return "", fmt.Errorf("encode image: %w", err)
	}

	if err := e.client.SetLanguage(language); err != nil {
		return "", fmt.Errorf("set language: %w", err)
	}

	if err := e.client.SetPageSegMode(gosseract.PSM_SINGLE_BLOCK); err != nil {
		return "", fmt.Errorf("set page segmentation mode: %w", err)
	}

	if err := e.client.SetVariable(gosseract.SettableVariable("preserve_interword_spaces"), "1"); err != nil {
		return "", fmt.Errorf("set interword spacing: %w", err)
	}

	if err := e.client.SetVariable(gosseract.SettableVariable("user_defined_dpi"), strconv.Itoa(e.dpi)); err != nil {
		return "", fmt.Errorf("set dpi: %w", err)
	}

	if err := e.client.SetImageFromBytes(buf.Bytes()); err != nil {
		return "", fmt.Errorf("set image: %w", err)
	}

	text, err := e.client.Text()

	if err != nil {
		return "", fmt.Errorf("recognize text: %w", err)
	}

	return text, nil
}

func (e *Engine) Close() error {
	return e.client.Close()
}

// Enabled reports whether Tesseract support was compiled in.
func Enabled() bool {
	return true
}
