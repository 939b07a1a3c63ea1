package extractor

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/adrianliechti/toolify/pkg/errdefs"
	"github.com/adrianliechti/toolify/pkg/provider"
)

type Provider interface {
	Extract(ctx context.Context, file File, options *ExtractOptions) (*Document, error)
}

var (
	ErrUnsupported = errors.New("unsupported type")
)

type ExtractOptions struct {
	// Language hints the expected document language, e.g. "eng" or "deu".
	Language string
}

type File = provider.File

type Document struct {
	Text string `json:"text"`

	Warnings []string `json:"warnings,omitempty"`
}

// WithTimeout bounds every extraction call made through p.
func WithTimeout(p Provider, timeout time.Duration) Provider {
	if timeout <= 0 {
		return p
	}

	return &timeoutProvider{
		Provider: p,
		timeout:  timeout,
	}
}

type timeoutProvider struct {
	Provider
	timeout time.Duration
}

func (p *timeoutProvider) Extract(ctx context.Context, file File, options *ExtractOptions) (*Document, error) {
	ctx, cancel := context.WithTimeout(ctx, p.timeout)
	defer cancel()

	doc, err := p.Provider.Extract(ctx, file, options)

	if err != nil {
		if errors.Is(err, errdefs.ErrExtraction) {
			return nil, err
		}

		return nil, fmt.Errorf("%w: %w", errdefs.ErrExtraction, err)
	}

	return doc, nil
}
