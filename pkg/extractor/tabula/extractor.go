package tabula

import (
	"context"
	"fmt"
	"os"
	"strings"

	"github.com/adrianliechti/toolify/pkg/errdefs"
	"github.com/adrianliechti/toolify/pkg/extractor"

	"github.com/tsawler/tabula"
)

var _ extractor.Provider = (*Extractor)(nil)

// Extractor reads the text layer of PDF files locally. Scanned documents
// without a text layer yield no text and fail with errdefs.ErrExtraction.
type Extractor struct {
	excludeHeaders bool
}

type Option func(*Extractor)

func WithoutHeadersAndFooters() Option {
	return func(e *Extractor) {
		e.excludeHeaders = true
	}
}

func New(options ...Option) (*Extractor, error) {
	e := &Extractor{}

	for _, option := range options {
		option(e)
	}

	return e, nil
}

func (e *Extractor) Extract(ctx context.Context, file extractor.File, options *extractor.ExtractOptions) (*extractor.Document, error) {
	if !file.IsPDF() {
		return nil, fmt.Errorf("%w: %w: %s", errdefs.ErrExtraction, extractor.ErrUnsupported, file.ContentType)
	}

	if err := ctx.Err(); err != nil {
		return nil, fmt.Errorf("%w: %w", errdefs.ErrExtraction, err)
	}

	f, err := os.CreateTemp("", "toolify-*.pdf")

	if err != nil {
		return nil, err
	}

	defer os.Remove(f.Name())

	if _, err := f.Write(file.Content); err != nil {
		f.Close()
		return nil, err
	}

	if err := f.Close(); err != nil {
		return nil, err
	}

	ex := tabula.Open(f.Name()).JoinParagraphs()

	if e.excludeHeaders {
		ex = ex.ExcludeHeadersAndFooters()
	}

	text, warnings, err := ex.Text()

	if err != nil {
		return nil, fmt.Errorf("%w: %w", errdefs.ErrExtraction, err)
	}

	text = strings.TrimSpace(text)

	if text == "" {
		return nil, fmt.Errorf("%w: document has no text layer", errdefs.ErrExtraction)
	}

	result := &extractor.Document{
		Text: text,
	}

	for _, w := range warnings {
		result.Warnings = append(result.Warnings, fmt.Sprint(w))
	}

	return result, nil
}
